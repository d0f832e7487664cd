package main

import (
	"os"

	"github.com/dinero-dev/dinero/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
