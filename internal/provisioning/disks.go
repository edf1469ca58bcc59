package provisioning

import (
	"fmt"

	"github.com/Knight1/linodeapi/internal/config"
	"github.com/Knight1/linodeapi/internal/diskplan"
	"github.com/Knight1/linodeapi/internal/util/secret"
)

// planPhase computes the partition layout from the Linode's total capacity
// and aborts when the requested sizes leave no room for the OS partition.
type planPhase struct{}

func (p *planPhase) Name() string { return "disk-plan" }

func (p *planPhase) Run(ctx *Context) error {
	total, err := ctx.Client.TotalDiskMB(ctx, ctx.State.LinodeID)
	if err != nil {
		return fmt.Errorf("failed to read disk capacity: %w", err)
	}

	layout := diskplan.Plan(total, ctx.Config.SwapMB, ctx.Config.ExtraMB)
	if err := layout.Validate(); err != nil {
		return err
	}

	ctx.State.Layout = layout
	ctx.Observer.Printf("Disk plan: %d MB total = %d boot + %d swap + %d extra + %d OS",
		layout.TotalMB, layout.BootMB, layout.SwapMB, layout.ExtraMB, layout.MainMB)
	return nil
}

// disksPhase creates the disks in their fixed order: staging OS, main raw
// OS partition, then the optional swap and extra data partitions. The boot
// configs reference disks positionally, so the creation order is the
// contract.
type disksPhase struct{}

func (p *disksPhase) Name() string { return "disks" }

func (p *disksPhase) Run(ctx *Context) error {
	st := ctx.State
	layout := st.Layout

	rootPass, err := secret.Password(config.RootPasswordLength)
	if err != nil {
		return err
	}
	st.RootPassword = rootPass

	created := 0
	if _, err := ctx.Client.CreateDiskFromDistribution(ctx, st.LinodeID, config.StagingDistributionID,
		fmt.Sprintf("%s-install", st.Label), layout.BootMB, rootPass); err != nil {
		return fmt.Errorf("failed to create staging disk: %w", err)
	}
	created++

	if _, err := ctx.Client.CreateDisk(ctx, st.LinodeID, "coreos", "raw", layout.MainMB); err != nil {
		return fmt.Errorf("failed to create OS disk: %w", err)
	}
	created++

	if layout.SwapMB > 0 {
		if _, err := ctx.Client.CreateDisk(ctx, st.LinodeID, "swap", "swap", layout.SwapMB); err != nil {
			return fmt.Errorf("failed to create swap disk: %w", err)
		}
		created++
	}

	if layout.ExtraMB > 0 {
		if _, err := ctx.Client.CreateDisk(ctx, st.LinodeID, "data", "raw", layout.ExtraMB); err != nil {
			return fmt.Errorf("failed to create extra disk: %w", err)
		}
		created++
	}

	ids, err := ctx.Client.ListDiskIDs(ctx, st.LinodeID)
	if err != nil {
		return fmt.Errorf("failed to list disks: %w", err)
	}
	if len(ids) != created {
		return fmt.Errorf("expected %d disks, provider lists %d", created, len(ids))
	}

	st.DiskIDs = ids
	ctx.Observer.Printf("Created %d disks: %v", created, ids)
	return nil
}
