package main

import (
	"os"

	"github.com/picmatch/marketplace/cmd/picmatch/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
