package table

import (
	"fmt"
	"io"
	"strings"
)

// Table accumulates (key, value) rows and renders them as a two-column
// text table. Column widths follow the longest key and value seen so far.
type Table struct {
	out       io.Writer
	withLines bool

	keys   []string
	values []string

	longestKey   int
	longestValue int
}

// New creates a Table that renders to out. Borders are enabled by default.
func New(out io.Writer) *Table {
	return &Table{out: out, withLines: true}
}

// WithLines toggles bordered rendering. It is a render-time decision: the
// last value set before Print wins, regardless of rows already added.
func (t *Table) WithLines(withLines bool) *Table {
	t.withLines = withLines
	return t
}

// AddRow appends a row. Rows are never removed; empty strings are fine.
func (t *Table) AddRow(key, value string) {
	t.keys = append(t.keys, key)
	t.values = append(t.values, value)
	if len(key) > t.longestKey {
		t.longestKey = len(key)
	}
	if len(value) > t.longestValue {
		t.longestValue = len(value)
	}
}

// Print renders the table.
//
// The border line is a '+', totalWidth spaces, and a '+'. No dashes. This
// matches the wire-compatible format consumers already parse, so it stays.
func (t *Table) Print() {
	totalWidth := t.longestKey + t.longestValue + 1
	if t.withLines {
		totalWidth += 2
	}

	if t.withLines {
		t.printHorizontalLine(totalWidth)
	}
	for i := range t.keys {
		if t.withLines {
			fmt.Fprint(t.out, "| ")
		}
		fmt.Fprint(t.out, t.keys[i])
		fmt.Fprint(t.out, strings.Repeat(" ", t.longestKey-len(t.keys[i])))
		if t.withLines {
			fmt.Fprint(t.out, " | ")
		} else {
			fmt.Fprint(t.out, " ")
		}
		fmt.Fprint(t.out, t.values[i])
		fmt.Fprint(t.out, strings.Repeat(" ", t.longestValue-len(t.values[i])))
		if t.withLines {
			fmt.Fprint(t.out, " |")
		}
		fmt.Fprintln(t.out)
	}
	if t.withLines {
		t.printHorizontalLine(totalWidth)
	}
}

func (t *Table) printHorizontalLine(width int) {
	fmt.Fprintln(t.out, "+"+strings.Repeat(" ", width)+"+")
}
