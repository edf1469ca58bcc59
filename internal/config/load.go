package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RequestFile mirrors the YAML shape of a node request file. Fields left
// zero fall back to the corresponding flag or default.
type RequestFile struct {
	Name        string `yaml:"name"`
	Plan        int    `yaml:"plan"`
	Datacenter  int    `yaml:"datacenter"`
	Token       string `yaml:"token"`
	CloudConfig string `yaml:"cloud_config"`
	SwapMB      int    `yaml:"swap_mb"`
	ExtraMB     int    `yaml:"extra_mb"`
}

// LoadRequestFile reads and parses a node request from a YAML file.
func LoadRequestFile(path string) (*RequestFile, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file: %w", err)
	}

	var req RequestFile
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request file: %w", err)
	}
	return &req, nil
}

// Apply overlays the file's non-zero fields onto a Provision value.
func (r *RequestFile) Apply(p *Provision) {
	if r.Name != "" {
		p.Name = r.Name
	}
	if r.Plan != 0 {
		p.PlanID = r.Plan
	}
	if r.Datacenter != 0 {
		p.DatacenterID = r.Datacenter
	}
	if r.Token != "" {
		p.Token = r.Token
	}
	if r.CloudConfig != "" {
		p.CloudConfig = r.CloudConfig
	}
	if r.SwapMB != 0 {
		p.SwapMB = r.SwapMB
	}
	if r.ExtraMB != 0 {
		p.ExtraMB = r.ExtraMB
	}
}
