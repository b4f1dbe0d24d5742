package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/keshon/shellcli/cli"
	_ "github.com/keshon/shellcli/commands"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	driver := cli.New().
		WithPrompt("shellcli> ").
		WithLogger(log).
		WithSplitter(cli.SplitQuoted).
		Use(cli.WithInvocationLog(log)).
		WithProvider(cli.Registered(), cli.BuiltinNamespace).
		WithShutdown(func() {
			fmt.Println("bye")
		})

	if err := driver.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
