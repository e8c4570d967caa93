// pkg/editor/editor.go
package editor

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vimstrap/vimstrap/pkg/pkgmgr"
)

// Invoker runs the editor in headless batch mode
type Invoker struct {
	Binary  string         // Editor binary, e.g. "vim"
	Runner  pkgmgr.Runner  // Subprocess runner (ExecRunner if nil)
	Timeout time.Duration  // Per-invocation timeout, 0 means no limit
	Logger  zerolog.Logger
}

// ToolError wraps a failed editor invocation with its captured output
type ToolError struct {
	Binary string
	Args   []string
	Output string
	Err    error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s %v: %v", e.Binary, e.Args, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// Batch launches the editor once with every command passed as a +directive,
// followed by a forced quit, and waits for it to exit. The user session never
// starts: the final directive quits the editor as soon as the commands have
// run.
func (i *Invoker) Batch(ctx context.Context, commands ...string) error {
	runner := i.Runner
	if runner == nil {
		runner = pkgmgr.ExecRunner{}
	}

	if i.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.Timeout)
		defer cancel()
	}

	args := make([]string, 0, len(commands)+1)
	for _, cmd := range commands {
		args = append(args, "+"+cmd)
	}
	args = append(args, "+qall!")

	i.Logger.Debug().Str("binary", i.Binary).Strs("args", args).Msg("running editor batch")

	out, err := runner.Run(ctx, i.Binary, args...)
	if err != nil {
		return &ToolError{Binary: i.Binary, Args: args, Output: string(out), Err: err}
	}

	return nil
}
