package executor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// maxStderr bounds how much command stderr ends up in an error message.
const maxStderr = 2048

type implExecutor struct{}

// New creates a new Executor instance
func New() Executor {
	return &implExecutor{}
}

// Execute runs an external command with the given arguments
func (e *implExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return e.run(ctx, nil, name, args)
}

// ExecuteWithInput runs an external command feeding input to its stdin
func (e *implExecutor) ExecuteWithInput(ctx context.Context, input io.Reader, name string, args ...string) (string, error) {
	return e.run(ctx, input, name, args)
}

func (e *implExecutor) run(ctx context.Context, input io.Reader, name string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = input

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("command '%s' cancelled: %w", name, ctx.Err())
		}
		if msg := tail(strings.TrimSpace(stderr.String()), maxStderr); msg != "" {
			return "", fmt.Errorf("command '%s' failed: %w\nstderr: %s", name, err, msg)
		}
		return "", fmt.Errorf("command '%s' failed: %w", name, err)
	}

	return stdout.String(), nil
}

// tail keeps the last n bytes of s; error summaries sit at the end.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
