package cmd

import "errors"

// ExitCode is the status the process exits with when an error reaches the
// top of a command.
type ExitCode uint8

const (
	InvalidConfig   ExitCode = 101
	UnreadableInput ExitCode = 102
	CompileFailed   ExitCode = 103
)

// HasExitCode is an error with an attached exit code.
type HasExitCode interface {
	error
	ExitCode() ExitCode
}

// withExitCodeIfNone attaches exitCode to err unless err already carries one.
func withExitCodeIfNone(err error, exitCode ExitCode) error {
	if err == nil {
		return nil
	}
	var ecerr HasExitCode
	if errors.As(err, &ecerr) {
		return err
	}
	return withExitCode{err, exitCode}
}

type withExitCode struct {
	error
	exitCode ExitCode
}

func (wh withExitCode) Unwrap() error {
	return wh.error
}

func (wh withExitCode) ExitCode() ExitCode {
	return wh.exitCode
}

var _ HasExitCode = withExitCode{}

// errAlreadyReported marks failures whose details were already printed.
var errAlreadyReported = errors.New("already reported")
