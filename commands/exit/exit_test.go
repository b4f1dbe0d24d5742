package exit_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keshon/shellcli/cli"
	"github.com/keshon/shellcli/commands/exit"
)

func TestExitSignalsStop(t *testing.T) {
	cmd := &exit.Command{}
	assert.False(t, cmd.Run(cli.NewContext(), io.Discard, io.Discard))
	assert.Equal(t, []string{"exit", "quit", "bye"}, cmd.Names())
}
