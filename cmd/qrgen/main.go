package main

import (
	"os"

	"qrgen/cmd/qrgen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
