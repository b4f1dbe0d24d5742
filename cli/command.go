package cli

import "io"

// Command is an invokable shell command.
//
// A command may expose several names (aliases); any of them selects the same
// instance. The first name is treated as canonical in listings and logs.
type Command interface {
	// Names returns the invocation names. Must be non-empty.
	Names() []string

	// Brief returns a one-line description used in the global help listing.
	Brief() string

	// Help returns the long description shown by "<name> help".
	// An empty string means the command has no long description.
	Help() string

	// Run executes the command. ctx carries the alias the command was
	// invoked as, the argument list, and the shared session values.
	// Returning false stops the driver loop.
	Run(ctx *Context, out, err io.Writer) bool
}

// Context is the session state shared between the driver and the active
// command. The driver owns it and rewrites Name and Args once per dispatched
// invocation, immediately before Run; Values persists across invocations so
// commands can leave state for each other.
type Context struct {
	Name   string
	Args   []string
	Values map[string]any
}

// NewContext returns an empty context with an initialized Values map.
func NewContext() *Context {
	return &Context{Values: make(map[string]any)}
}

func (c *Context) update(name string, args []string) {
	c.Name = name
	c.Args = args
}

// Func adapts a plain function to the Command interface, for hosts that do
// not want to define a type per command.
type Func struct {
	CommandNames []string
	Description  string
	Long         string
	Fn           func(ctx *Context, out, err io.Writer) bool
}

func (f *Func) Names() []string { return f.CommandNames }
func (f *Func) Brief() string   { return f.Description }
func (f *Func) Help() string    { return f.Long }

func (f *Func) Run(ctx *Context, out, err io.Writer) bool {
	if f.Fn == nil {
		return true
	}
	return f.Fn(ctx, out, err)
}
