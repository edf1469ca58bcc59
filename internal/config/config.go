// Package config holds the immutable inputs for one provisioning run.
package config

import (
	"fmt"
)

// Provision holds everything one provisioning run needs. It is constructed
// once in the command handler from flags, environment and (optionally) a
// request file, then passed by parameter; core packages never read ambient
// process state.
type Provision struct {
	// APIKey authenticates against the Linode API.
	APIKey string

	// Name is the display label for the new Linode and the host part of
	// its boot config labels.
	Name string

	// PlanID selects the plan; DatacenterID the location. A zero
	// DatacenterID means "first available".
	PlanID       int
	DatacenterID int

	// Token is the etcd discovery token. When empty a fresh one is
	// fetched exactly once per run.
	Token string

	// CloudConfig is the literal cloud-config payload pushed to the
	// staging OS and consumed by the installer.
	CloudConfig string

	// SwapMB and ExtraMB size the optional swap and data partitions.
	SwapMB  int
	ExtraMB int

	// Plain disables the TUI and colored output.
	Plain bool
}

// Validate checks the request before anything remote is created.
func (p *Provision) Validate() error {
	if p.APIKey == "" {
		return fmt.Errorf("no API key: set %s", EnvAPIKey)
	}
	if p.Name == "" {
		return fmt.Errorf("a node name is required")
	}
	if p.CloudConfig == "" {
		return fmt.Errorf("a cloud-config payload is required")
	}
	if p.PlanID <= 0 {
		return fmt.Errorf("invalid plan ID %d", p.PlanID)
	}
	if p.DatacenterID < 0 {
		return fmt.Errorf("invalid datacenter ID %d", p.DatacenterID)
	}
	if p.SwapMB < 0 {
		return fmt.Errorf("swap size must be non-negative, got %d MB", p.SwapMB)
	}
	if p.ExtraMB < 0 {
		return fmt.Errorf("extra disk size must be non-negative, got %d MB", p.ExtraMB)
	}
	return nil
}
