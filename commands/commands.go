// Package commands pulls in the builtin command set. A blank import of this
// package makes the builtins discoverable under cli.BuiltinNamespace.
package commands

import (
	_ "github.com/keshon/shellcli/commands/echo"
	_ "github.com/keshon/shellcli/commands/exit"
	_ "github.com/keshon/shellcli/commands/hash"
	_ "github.com/keshon/shellcli/commands/version"
)
