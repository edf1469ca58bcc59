// Package prerequisites verifies a provisioning request before anything
// remote is created. A failed check must abort the run with nothing to
// clean up.
package prerequisites

import (
	"fmt"
	"strings"

	"github.com/Knight1/linodeapi/internal/config"
)

// Requirement is a single named precondition on the request.
type Requirement struct {
	// Name identifies the requirement in diagnostics.
	Name string

	// Description explains what is expected.
	Description string

	// Satisfied checks the requirement against the request.
	Satisfied func(p *config.Provision) bool
}

// DefaultRequirements returns the preconditions every provisioning run must
// meet.
func DefaultRequirements() []Requirement {
	return []Requirement{
		{
			Name:        "api-key",
			Description: fmt.Sprintf("Linode API key (set %s)", config.EnvAPIKey),
			Satisfied:   func(p *config.Provision) bool { return p.APIKey != "" },
		},
		{
			Name:        "name",
			Description: "node name (--name)",
			Satisfied:   func(p *config.Provision) bool { return p.Name != "" },
		},
		{
			Name:        "cloud-config",
			Description: "cloud-config payload (--cloud-config or a request file)",
			Satisfied:   func(p *config.Provision) bool { return p.CloudConfig != "" },
		},
		{
			Name:        "sizes",
			Description: "non-negative swap and extra disk sizes",
			Satisfied:   func(p *config.Provision) bool { return p.SwapMB >= 0 && p.ExtraMB >= 0 },
		},
	}
}

// CheckResults contains the outcome of checking a request.
type CheckResults struct {
	Missing []Requirement
}

// HasErrors returns true when any requirement is unmet.
func (r *CheckResults) HasErrors() bool {
	return len(r.Missing) > 0
}

// Error aggregates the unmet requirements, or returns nil.
func (r *CheckResults) Error() error {
	if len(r.Missing) == 0 {
		return nil
	}
	parts := make([]string, len(r.Missing))
	for i, req := range r.Missing {
		parts[i] = req.Description
	}
	return fmt.Errorf("missing prerequisites: %s", strings.Join(parts, ", "))
}

// Check verifies the request against the given requirements.
func Check(p *config.Provision, reqs []Requirement) *CheckResults {
	results := &CheckResults{}
	for _, req := range reqs {
		if !req.Satisfied(p) {
			results.Missing = append(results.Missing, req)
		}
	}
	return results
}

// CheckDefault verifies the request against the default requirements.
func CheckDefault(p *config.Provision) *CheckResults {
	return Check(p, DefaultRequirements())
}
