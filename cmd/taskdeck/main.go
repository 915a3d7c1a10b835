// Package main is the single-binary entrypoint for taskdeck.
package main

import "github.com/taskdeck/taskdeck/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
