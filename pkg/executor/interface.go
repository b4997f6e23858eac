package executor

import (
	"context"
	"io"
)

// Executor runs external commands and returns their stdout
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// ExecuteWithInput runs a command with stdin read from input.
	ExecuteWithInput(ctx context.Context, input io.Reader, name string, args ...string) (string, error)
}
