package commands

import (
	"github.com/spf13/cobra"

	"github.com/Knight1/linodeapi/cmd/linode-coreos/handlers"
)

// Provision returns the command that creates a node and installs CoreOS
// onto it.
//
// Required flags:
//
//	--name: display label for the new Linode
//	--cloud-config: cloud-config payload, either literal or @path
//
// Optional flags:
//
//	--plan: plan ID (default: smallest tier)
//	--datacenter: datacenter ID (default: first available)
//	--token: etcd discovery token (default: fetch a fresh one)
//	--swap: swap partition size in MB (default: 2048)
//	--extra: extra raw data partition size in MB (default: 0)
//	--file, -f: YAML request file; flags override its fields
//	--plain: no TUI, no colors
//
// Environment variables:
//
//	LINODE_API_KEY: Linode API key (required)
func Provision() *cobra.Command {
	var opts handlers.ProvisionOptions

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Create a Linode and install CoreOS on it",
		Long: `Create a Linode and install CoreOS on it.

The node is brought up in two stages:
  1. A staging Linux is installed on a small boot disk and booted.
  2. Over SSH, the staging OS writes CoreOS onto a raw partition covering
     the rest of the disk, and the node is rebooted into it.

The cloud-config payload is pushed to the staging OS verbatim and consumed
by the installer. The etcd discovery token is fetched automatically unless
one is supplied.

Examples:
  # Smallest plan, fresh discovery token
  linode-coreos provision --name core1 --cloud-config @cloud-config.yaml

  # Join an existing cluster, no swap, 4 GB data partition
  linode-coreos provision --name core2 --cloud-config @cloud-config.yaml \
    --token 3e86b59982e49066c5d813af1c2e2579 --swap 0 --extra 4096

  # Request file
  linode-coreos provision -f node.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Provision(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Display label for the new Linode")
	cmd.Flags().IntVar(&opts.PlanID, "plan", 0, "Plan ID (default: smallest tier)")
	cmd.Flags().IntVar(&opts.DatacenterID, "datacenter", 0, "Datacenter ID (default: first available)")
	cmd.Flags().StringVar(&opts.Token, "token", "", "etcd discovery token (default: fetch a fresh one)")
	cmd.Flags().StringVar(&opts.CloudConfig, "cloud-config", "", "Cloud-config payload, literal or @path")
	cmd.Flags().IntVar(&opts.SwapMB, "swap", -1, "Swap partition size in MB")
	cmd.Flags().IntVar(&opts.ExtraMB, "extra", 0, "Extra raw data partition size in MB")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "YAML request file")
	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "Disable the TUI and colored output")

	return cmd
}
