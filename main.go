// Package main is the entry point for the helmbridge CLI application.
// It runs helm operations through a typed bridge, either against the local
// helm binary or a remote helmbridge server.
package main

import (
	"helmbridge/cli/cmd"
)

func main() {
	cmd.Execute()
}
