package echo

import (
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/keshon/shellcli/cli"
)

// Command prints its arguments back to the output stream.
type Command struct{}

func (c *Command) Names() []string { return []string{"echo", "say"} }

func (c *Command) Brief() string { return "Echoes input" }

func (c *Command) Help() string {
	return `Prints the given arguments joined by single spaces.

Flags:
  -n, --no-newline   suppress the trailing newline
  -u, --upper        print in upper case`
}

func (c *Command) Run(ctx *cli.Context, out, errw io.Writer) bool {
	fs := flag.NewFlagSet(ctx.Name, flag.ContinueOnError)
	fs.SetOutput(errw)
	noNewline := fs.BoolP("no-newline", "n", false, "suppress the trailing newline")
	upper := fs.BoolP("upper", "u", false, "print in upper case")
	if err := fs.Parse(ctx.Args); err != nil {
		// pflag already reported the problem on errw.
		return true
	}

	text := strings.Join(fs.Args(), " ")
	if *upper {
		text = strings.ToUpper(text)
	}
	if *noNewline {
		fmt.Fprint(out, text)
	} else {
		fmt.Fprintln(out, text)
	}
	return true
}

func init() {
	cli.RegisterFactory(cli.BuiltinNamespace, func() (cli.Command, error) {
		return &Command{}, nil
	})
}
