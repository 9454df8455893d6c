package uargs

import (
	"io"
	"os"
)

// Process boundaries used by ParseOrExit. Swappable so tests can capture
// output and observe exit codes without ending the test process.
var (
	osExit       func(int) = os.Exit
	stdoutWriter io.Writer = os.Stdout
	stderrWriter io.Writer = os.Stderr
)

// SetStdoutWriter redirects help and version output.
func SetStdoutWriter(w io.Writer) {
	stdoutWriter = w
}

// SetStderrWriter redirects error output.
func SetStderrWriter(w io.Writer) {
	stderrWriter = w
}

// SetExitFunc replaces the exit call made by ParseOrExit.
func SetExitFunc(fn func(int)) {
	osExit = fn
}
