package cmd

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/coda-lang/coda"
)

// loadSource reads a source file from the state's file system.
func loadSource(gs *globalState, path string) ([]byte, error) {
	data, err := afero.ReadFile(gs.fs, path)
	if err != nil {
		return nil, withExitCodeIfNone(fmt.Errorf("couldn't read %s: %w", path, err), UnreadableInput)
	}
	gs.logger.WithField("path", path).WithField("bytes", len(data)).Debug("Loaded source")
	return data, nil
}

// compileFile loads and compiles path. Diagnostics are printed and the
// returned error only carries the exit code.
func (c *rootCommand) compileFile(path string) (*coda.Unit, error) {
	src, err := loadSource(c.gs, path)
	if err != nil {
		return nil, err
	}

	conf := c.config.compileConfig()
	conf.Logger = c.gs.logger
	unit, err := coda.Compile(path, src, conf)
	if err != nil {
		diags, ok := coda.AsDiagnostics(err)
		if !ok {
			return nil, err
		}
		for _, d := range diags {
			c.gs.printError(fmt.Sprintf("%s: %s", path, d))
		}
		unit.Release()
		return nil, withExitCodeIfNone(errAlreadyReported, CompileFailed)
	}
	return unit, nil
}
