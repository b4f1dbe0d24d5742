package cli

import (
	"strings"

	shellwords "github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
)

// Splitter turns the remainder of an input line (everything after the
// command name) into an argument list.
type Splitter func(remainder string) ([]string, error)

// SplitWhitespace splits on arbitrary runs of whitespace, using the same
// whitespace set as the name/remainder division. This is the default
// splitter; argument text is passed through unmodified.
func SplitWhitespace(remainder string) ([]string, error) {
	return strings.FieldsFunc(remainder, isSpace), nil
}

// SplitQuoted splits like a POSIX shell would: quoting and escaping group
// words together. Hosts opt into this via Driver.WithSplitter.
func SplitQuoted(remainder string) ([]string, error) {
	args, err := shellwords.Parse(remainder)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing arguments %q", remainder)
	}
	return args, nil
}

// splitLine divides a trimmed input line into the lower-cased command name
// and the raw remainder. The name is never subdivided; only the first run of
// whitespace separates it from the rest.
func splitLine(line string) (name, remainder string) {
	i := strings.IndexFunc(line, isSpace)
	if i < 0 {
		return strings.ToLower(line), ""
	}
	name = strings.ToLower(line[:i])
	remainder = strings.TrimLeftFunc(line[i:], isSpace)
	return name, remainder
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
