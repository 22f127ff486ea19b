package tools

import (
	"fmt"
	"strings"

	"github.com/joseph-ayodele/heritage-figures/internal/common"
)

// ToolError reports a failed external tool invocation. It matches common.ErrToolFailed.
type ToolError struct {
	Tool     string
	Args     []string
	ExitCode int // -1 when the process did not exit normally
	Stderr   string
	Err      error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Tool, strings.Join(e.Args, " "), e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + truncate(s, 512)
	}
	return msg
}

func (e *ToolError) Unwrap() []error {
	return []error{common.ErrToolFailed, e.Err}
}

func newToolError(tool string, args []string, stderr []byte, err error) error {
	return &ToolError{Tool: tool, Args: args, ExitCode: exitCode(err), Stderr: string(stderr), Err: err}
}
