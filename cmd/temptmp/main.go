package main

import (
	"os"

	"github.com/harun/temptmp/internal/cli"
)

func main() {
	err := cli.Execute()
	cli.Shutdown()
	if err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
