// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing and flag binding. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the linode-coreos CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linode-coreos",
		Short: "Provision a CoreOS node on Linode",
	}

	cmd.AddCommand(Provision())
	cmd.AddCommand(Plans())
	cmd.AddCommand(Datacenters())
	cmd.AddCommand(Version())

	return cmd
}
