package cmd

import (
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const defaultConfigFileName = "coda.yaml"

// globalOptions holds the values that apply to every coda sub-command.
type globalOptions struct {
	ConfigFilePath string
	NoColor        bool
	Verbose        bool
	LogFormat      string
}

func getDefaultGlobalOptions() globalOptions {
	return globalOptions{
		ConfigFilePath: defaultConfigFileName,
		LogFormat:      "text",
	}
}

func consolidateGlobalOptions(defaults globalOptions, env map[string]string) globalOptions {
	result := defaults
	if val, ok := env["CODA_CONFIG"]; ok {
		result.ConfigFilePath = val
	}
	if val, ok := env["CODA_LOG_FORMAT"]; ok {
		result.LogFormat = val
	}
	if env["CODA_NO_COLOR"] != "" {
		result.NoColor = true
	}
	// https://no-color.org/: any value, even an empty one, disables color.
	if _, ok := env["NO_COLOR"]; ok {
		result.NoColor = true
	}
	return result
}

// globalState bundles everything a command touches in the outside world, so
// tests can swap any of it.
type globalState struct {
	fs      afero.Fs
	env     map[string]string
	cmdArgs []string

	stdout, stderr *consoleWriter
	logger         *logrus.Logger

	defaultFlags, flags globalOptions

	osExit func(int)
}

func newGlobalState() *globalState {
	outMutex := &sync.Mutex{}
	stdout := &consoleWriter{
		Writer: colorable.NewColorableStdout(),
		isTTY:  isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
		mutex:  outMutex,
	}
	stderr := &consoleWriter{
		Writer: colorable.NewColorableStderr(),
		isTTY:  isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()),
		mutex:  outMutex,
	}

	env := buildEnvMap(os.Environ())
	defaultFlags := getDefaultGlobalOptions()

	return &globalState{
		fs:           afero.NewOsFs(),
		env:          env,
		cmdArgs:      os.Args,
		stdout:       stdout,
		stderr:       stderr,
		logger:       newLogger(stderr),
		defaultFlags: defaultFlags,
		flags:        consolidateGlobalOptions(defaultFlags, env),
		osExit:       os.Exit,
	}
}

func newLogger(out *consoleWriter) *logrus.Logger {
	return &logrus.Logger{
		Out:       out,
		Formatter: &logrus.TextFormatter{ForceColors: out.isTTY},
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.InfoLevel,
	}
}

// buildEnvMap turns KEY=value pairs into a map. Later duplicates win.
func buildEnvMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, _ := strings.Cut(kv, "=")
		env[k] = v
	}
	return env
}
