package commands

import (
	"github.com/spf13/cobra"

	"github.com/Knight1/linodeapi/cmd/linode-coreos/handlers"
)

// Datacenters returns the read-only command that lists available
// datacenters.
func Datacenters() *cobra.Command {
	return &cobra.Command{
		Use:   "datacenters",
		Short: "List available datacenters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Datacenters(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
