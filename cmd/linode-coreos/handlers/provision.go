// Package handlers implements the execution logic behind the CLI commands.
package handlers

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/Knight1/linodeapi/internal/config"
	"github.com/Knight1/linodeapi/internal/discovery"
	"github.com/Knight1/linodeapi/internal/linode"
	"github.com/Knight1/linodeapi/internal/provisioning"
	"github.com/Knight1/linodeapi/internal/ui/tui"
	"github.com/Knight1/linodeapi/internal/util/prerequisites"
)

// ProvisionOptions carries the provision command's flag values.
type ProvisionOptions struct {
	Name         string
	PlanID       int
	DatacenterID int
	Token        string
	CloudConfig  string
	SwapMB       int // -1 when the flag was not given
	ExtraMB      int
	File         string
	Plain        bool
}

// Factory function variables - can be replaced in tests.
var (
	// newClient creates the provider API client.
	newClient = func(apiKey string) linode.Client { return linode.NewRealClient(apiKey) }

	// newTokenSource creates the discovery token client.
	newTokenSource = func() provisioning.TokenSource { return discovery.NewClient() }

	// runWithTUI wraps a run with the progress TUI.
	runWithTUI = tui.RunProvision

	// stdoutIsTerminal reports whether stdout is attached to a terminal.
	stdoutIsTerminal = func() bool { return isatty.IsTerminal(os.Stdout.Fd()) }
)

// Provision handles the provision command: it builds the immutable run
// configuration, preflights it, and drives the provisioning pipeline.
func Provision(ctx context.Context, opts ProvisionOptions) error {
	cfg, err := buildConfig(opts)
	if err != nil {
		return err
	}

	if results := prerequisites.CheckDefault(cfg); results.HasErrors() {
		return results.Error()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	client := newClient(cfg.APIKey)

	if cfg.DatacenterID == 0 {
		id, err := firstDatacenter(ctx, client)
		if err != nil {
			return err
		}
		cfg.DatacenterID = id
	}

	pCtx := provisioning.NewContext(ctx, cfg, client, newTokenSource(), provisioning.NewConsoleObserver(cfg.Plain))

	if !cfg.Plain && stdoutIsTerminal() {
		err = runWithTUI(cfg.Name, func(observer provisioning.Observer) error {
			pCtx.Observer = observer
			return provisioning.RunPhases(pCtx, provisioning.Phases())
		})
	} else {
		err = provisioning.RunPhases(pCtx, provisioning.Phases())
	}

	if err != nil {
		reportResources(pCtx.State)
		return err
	}
	return nil
}

// buildConfig assembles the run configuration: defaults, then the request
// file, then flags, which win.
func buildConfig(opts ProvisionOptions) (*config.Provision, error) {
	cfg := &config.Provision{
		APIKey: os.Getenv(config.EnvAPIKey),
		PlanID: config.DefaultPlanID,
		SwapMB: config.DefaultSwapMB,
		Plain:  opts.Plain,
	}

	if opts.File != "" {
		req, err := config.LoadRequestFile(opts.File)
		if err != nil {
			return nil, err
		}
		req.Apply(cfg)
	}

	if opts.Name != "" {
		cfg.Name = opts.Name
	}
	if opts.PlanID != 0 {
		cfg.PlanID = opts.PlanID
	}
	if opts.DatacenterID != 0 {
		cfg.DatacenterID = opts.DatacenterID
	}
	if opts.Token != "" {
		cfg.Token = opts.Token
	}
	if opts.SwapMB >= 0 {
		cfg.SwapMB = opts.SwapMB
	}
	if opts.ExtraMB != 0 {
		cfg.ExtraMB = opts.ExtraMB
	}
	if opts.CloudConfig != "" {
		payload, err := readPayload(opts.CloudConfig)
		if err != nil {
			return nil, err
		}
		cfg.CloudConfig = payload
	}

	return cfg, nil
}

// readPayload returns the literal payload, or the contents of the file it
// points at when prefixed with @.
func readPayload(value string) (string, error) {
	if !strings.HasPrefix(value, "@") {
		return value, nil
	}
	// #nosec G304
	data, err := os.ReadFile(strings.TrimPrefix(value, "@"))
	if err != nil {
		return "", fmt.Errorf("failed to read cloud-config file: %w", err)
	}
	return string(data), nil
}

// firstDatacenter resolves the "first available" datacenter default.
func firstDatacenter(ctx context.Context, client linode.Client) (int, error) {
	dcs, err := client.ListDatacenters(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list datacenters: %w", err)
	}
	if len(dcs) == 0 {
		return 0, fmt.Errorf("provider reports no datacenters")
	}
	return dcs[0].ID, nil
}

// reportResources lists the resources a failed run leaves behind. Nothing
// is rolled back; the operator cleans up by hand.
func reportResources(st *provisioning.State) {
	resources := st.Resources()
	if len(resources) == 0 {
		return
	}
	log.Printf("The failed run created resources that were NOT cleaned up:")
	for _, r := range resources {
		log.Printf("  %s", r)
	}
}
