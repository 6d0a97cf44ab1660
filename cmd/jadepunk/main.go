package main

import (
	"os"

	"github.com/harkonenbade/jadepunk/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.Execute()))
}
