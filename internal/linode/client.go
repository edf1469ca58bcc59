// Package linode provides a wrapper around the legacy Linode action API.
package linode

import (
	"context"
)

// IP is a single address assigned to a Linode.
type IP struct {
	Address  string
	IsPublic bool
}

// Plan describes a purchasable Linode plan.
type Plan struct {
	ID     int
	Label  string
	RAMMB  int
	DiskGB int
	Hourly float64
}

// Datacenter describes a location a Linode can be created in.
type Datacenter struct {
	ID           int
	Location     string
	Abbreviation string
}

// Client defines the interface for driving the Linode API.
// It abstracts the underlying provider API so the provisioning
// pipeline can be tested against a mock.
type Client interface {
	// CreateLinode creates a new Linode in the given datacenter on the
	// given plan and returns its ID.
	CreateLinode(ctx context.Context, datacenterID, planID int) (int, error)

	// RenameLinode sets the display label of the Linode.
	// Callers treat a failure here as non-fatal.
	RenameLinode(ctx context.Context, linodeID int, label string) error

	// AddPrivateIP allocates a private address on the Linode. It must be
	// called before ListIPs so the private address is present in the listing.
	AddPrivateIP(ctx context.Context, linodeID int) error

	// ListIPs returns all addresses assigned to the Linode.
	ListIPs(ctx context.Context, linodeID int) ([]IP, error)

	// TotalDiskMB returns the total disk capacity of the Linode in MB.
	TotalDiskMB(ctx context.Context, linodeID int) (int, error)

	// CreateDiskFromDistribution creates a disk pre-installed with the given
	// distribution and root password, and returns the disk ID.
	CreateDiskFromDistribution(ctx context.Context, linodeID, distributionID int, label string, sizeMB int, rootPass string) (int, error)

	// CreateDisk creates an empty disk of the given filesystem type
	// ("raw" or "swap") and returns the disk ID.
	CreateDisk(ctx context.Context, linodeID int, label, fsType string, sizeMB int) (int, error)

	// ListDiskIDs returns the IDs of all disks on the Linode in creation
	// order. Boot configs reference disks positionally, so the order matters.
	ListDiskIDs(ctx context.Context, linodeID int) ([]int, error)

	// CreateConfig creates a boot configuration referencing the given disks
	// in order and returns the config ID.
	CreateConfig(ctx context.Context, linodeID, kernelID int, label string, diskIDs []int, rootDeviceNum int) (int, error)

	// Boot queues a boot job into the given configuration. It returns once
	// the job is queued; it does not wait for the Linode to come up.
	Boot(ctx context.Context, linodeID, configID int) error

	// Shutdown queues a shutdown job.
	Shutdown(ctx context.Context, linodeID int) error

	// ListPlans returns all available plans.
	ListPlans(ctx context.Context) ([]Plan, error)

	// ListDatacenters returns all available datacenters.
	ListDatacenters(ctx context.Context) ([]Datacenter, error)
}
