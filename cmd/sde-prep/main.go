// Package main is the entry point for the sde-prep CLI.
//
// The binary bootstraps the interview prep tracker environment and serves
// the web UI. All functionality lives in the internal/cli package, which
// defines the cobra commands.
package main

import (
	"github.com/harsha-k-cheruku/sde-interview-prep/internal/cli"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	cli.Version = version
	cli.Execute(cli.NewRootCommand())
}
