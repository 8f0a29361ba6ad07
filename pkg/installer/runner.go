package installer

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/cli/safeexec"

	"github.com/ichi-raven/slang-fetch/pkg/platform"
)

// Runner executes external commands on behalf of the Installer
type Runner interface {
	Run(ctx context.Context, cmd platform.Command) error
}

// ExecRunner spawns commands as child processes, forwarding their output
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns an ExecRunner attached to the process' stdout and stderr
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run looks up cmd.Name on $PATH and executes it, waiting for it to exit.
// Any failure is reported as an *ExternalCommandError.
func (r *ExecRunner) Run(ctx context.Context, cmd platform.Command) error {
	// safeexec never resolves to the current directory on Windows
	path, err := safeexec.LookPath(cmd.Name)
	if err != nil {
		return &ExternalCommandError{Command: cmd, ExitCode: -1, Err: err}
	}

	c := exec.CommandContext(ctx, path, cmd.Args...)
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr
	err = c.Run()
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return &ExternalCommandError{Command: cmd, ExitCode: exitCode, Err: err}
	}
	return nil
}
