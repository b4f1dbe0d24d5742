package hash_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/shellcli/cli"
	"github.com/keshon/shellcli/commands/hash"
)

func run(t *testing.T, args ...string) (string, string, bool) {
	t.Helper()
	var out, errw bytes.Buffer
	ctx := cli.NewContext()
	ctx.Name = "hash"
	ctx.Args = args
	cont := (&hash.Command{}).Run(ctx, &out, &errw)
	return out.String(), errw.String(), cont
}

func TestHashTextIsDeterministic(t *testing.T) {
	first, _, cont := run(t, "hello")
	require.True(t, cont)
	second, _, _ := run(t, "hello")
	assert.Equal(t, first, second)
	assert.Len(t, strings.TrimSpace(first), 32, "xxh3-128 renders as 32 hex chars")
}

func TestHashFileMatchesText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	fromText, _, _ := run(t, "hello")
	fromFile, _, cont := run(t, "--file", path)
	require.True(t, cont)
	assert.Equal(t, fromText, fromFile)
}

func TestHashMissingFile(t *testing.T) {
	out, errw, cont := run(t, "-f", filepath.Join(t.TempDir(), "nope"))
	require.True(t, cont, "an unreadable file must not stop the shell")
	assert.Empty(t, out)
	assert.Contains(t, errw, "nope")
}

func TestHashWithoutArguments(t *testing.T) {
	out, errw, cont := run(t)
	require.True(t, cont)
	assert.Empty(t, out)
	assert.Contains(t, errw, "Usage")
}
