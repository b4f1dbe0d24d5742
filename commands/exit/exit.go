package exit

import (
	"io"

	"github.com/keshon/shellcli/cli"
)

// Command terminates the shell loop.
type Command struct{}

func (c *Command) Names() []string { return []string{"exit", "quit", "bye"} }

func (c *Command) Brief() string { return "Exit the shell" }

func (c *Command) Help() string {
	return "Stops the read-dispatch loop and returns control to the host application."
}

func (c *Command) Run(ctx *cli.Context, out, errw io.Writer) bool {
	return false
}

func init() {
	cli.RegisterFactory(cli.BuiltinNamespace, func() (cli.Command, error) {
		return &Command{}, nil
	})
}
