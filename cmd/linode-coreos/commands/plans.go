package commands

import (
	"github.com/spf13/cobra"

	"github.com/Knight1/linodeapi/cmd/linode-coreos/handlers"
)

// Plans returns the read-only command that lists available plans.
func Plans() *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List available plans",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Plans(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
