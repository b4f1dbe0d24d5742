package version

import (
	"fmt"
	"io"

	"github.com/keshon/shellcli/cli"
)

// Version is the library version reported by the builtin version command.
var Version = "0.1.0"

func init() {
	cli.RegisterFactory(cli.BuiltinNamespace, func() (cli.Command, error) {
		return &cli.Func{
			CommandNames: []string{"version", "ver"},
			Description:  "Show the shell version",
			Fn: func(ctx *cli.Context, out, errw io.Writer) bool {
				fmt.Fprintln(out, "shellcli "+Version)
				return true
			},
		}, nil
	})
}
