// Package main is the entry point for the linode-coreos CLI.
//
// linode-coreos creates a Linode, boots a staging Linux on it, installs
// CoreOS onto a raw partition over SSH and reboots the node into it.
//
// For detailed usage information, run:
//
//	linode-coreos --help
package main

import (
	"fmt"
	"os"

	"github.com/Knight1/linodeapi/cmd/linode-coreos/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
