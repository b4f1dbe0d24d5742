package hash

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"github.com/zeebo/xxh3"
	"golang.org/x/exp/mmap"

	"github.com/keshon/shellcli/cli"
)

// Command computes the xxh3-128 digest of its argument text, or of a file
// when --file is given.
type Command struct{}

func (c *Command) Names() []string { return []string{"hash", "sum"} }

func (c *Command) Brief() string { return "Hash text or a file with xxh3-128" }

func (c *Command) Help() string {
	return `Computes the xxh3-128 digest of the argument text joined by spaces.

Flags:
  -f, --file <path>   hash the contents of a file instead`
}

func (c *Command) Run(ctx *cli.Context, out, errw io.Writer) bool {
	fs := flag.NewFlagSet(ctx.Name, flag.ContinueOnError)
	fs.SetOutput(errw)
	file := fs.StringP("file", "f", "", "hash the contents of a file instead")
	if err := fs.Parse(ctx.Args); err != nil {
		return true
	}

	if *file != "" {
		sum, err := hashFile(*file)
		if err != nil {
			fmt.Fprintln(errw, "Error:", err)
			return true
		}
		fmt.Fprintln(out, sum)
		return true
	}

	if fs.NArg() == 0 {
		fmt.Fprintln(errw, "Usage: "+ctx.Name+" [-f <path>] <text>")
		return true
	}
	sum := xxh3.Hash128([]byte(strings.Join(fs.Args(), " ")))
	fmt.Fprintf(out, "%x\n", sum.Bytes())
	return true
}

func hashFile(path string) (string, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "open file %q", path)
	}
	defer reader.Close()

	data := make([]byte, reader.Len())
	if len(data) > 0 {
		if _, err := reader.ReadAt(data, 0); err != nil {
			return "", errors.Wrapf(err, "read file %q", path)
		}
	}
	return fmt.Sprintf("%x", xxh3.Hash128(data).Bytes()), nil
}

func init() {
	cli.RegisterFactory(cli.BuiltinNamespace, func() (cli.Command, error) {
		return &Command{}, nil
	})
}
