// Package main is the entry point for the userdirs CLI.
package main

import (
	"os"

	"github.com/thoreinstein/userdirs/cmd/userdirs/commands"
)

func main() {
	os.Exit(commands.Execute())
}
