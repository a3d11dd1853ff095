package main

import (
	"os"

	"dutyroster/cmd/dutyroster/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
