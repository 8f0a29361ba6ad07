package installer

import (
	"fmt"
	"strings"

	"github.com/ichi-raven/slang-fetch/pkg/platform"
)

// ExternalCommandError reports a download or extraction tool that could not be
// started or exited with a nonzero status
type ExternalCommandError struct {
	Command platform.Command
	// ExitCode is -1 when the process never ran to completion
	ExitCode int
	Err      error
}

func (e *ExternalCommandError) Error() string {
	cmdLine := strings.Join(append([]string{e.Command.Name}, e.Command.Args...), " ")
	if e.ExitCode >= 0 {
		return fmt.Sprintf("command '%s' exited with status %d: %v", cmdLine, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("command '%s' failed: %v", cmdLine, e.Err)
}

func (e *ExternalCommandError) Unwrap() error {
	return e.Err
}
