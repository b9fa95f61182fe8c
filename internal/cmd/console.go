package cmd

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// consoleWriter serializes writes to a terminal stream shared by stdout
// and stderr.
type consoleWriter struct {
	io.Writer
	isTTY bool
	mutex *sync.Mutex
}

func (w *consoleWriter) Write(p []byte) (n int, err error) {
	w.mutex.Lock()
	n, err = w.Writer.Write(p)
	w.mutex.Unlock()
	return n, err
}

// colorizer returns c with color turned on only when w is a terminal and
// colors were not disabled.
func (gs *globalState) colorizer(w *consoleWriter, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if gs.flags.NoColor || !w.isTTY {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c
}

// printError writes "coda: ERROR: <msg>" to stderr.
func (gs *globalState) printError(msg any) {
	prefix := gs.colorizer(gs.stderr, color.FgRed, color.Bold).Sprint("ERROR:")
	_, _ = fmt.Fprintf(gs.stderr, "coda: %s %v\n", prefix, msg)
}
