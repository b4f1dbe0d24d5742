package cli

import (
	"io"
	"log/slog"
)

// Middleware is a function that wraps a command.
type Middleware func(Command) Command

// Wrapped represents a command wrapped with a middleware. The embedded
// Command answers names and descriptions; Wrap, when set, replaces Run.
type Wrapped struct {
	Command
	Wrap func(ctx *Context, out, err io.Writer) bool
}

// Run executes the wrapped command.
func (w *Wrapped) Run(ctx *Context, out, err io.Writer) bool {
	if w.Wrap != nil {
		return w.Wrap(ctx, out, err)
	}
	return w.Command.Run(ctx, out, err)
}

// Apply wraps a command with any number of middlewares, innermost first.
func Apply(cmd Command, mws ...Middleware) Command {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}

// WithInvocationLog logs every dispatch at debug level before running the
// command.
func WithInvocationLog(log *slog.Logger) Middleware {
	return func(cmd Command) Command {
		return &Wrapped{
			Command: cmd,
			Wrap: func(ctx *Context, out, err io.Writer) bool {
				log.Debug("dispatching command", "command", ctx.Name, "args", ctx.Args)
				return cmd.Run(ctx, out, err)
			},
		}
	}
}
