package provisioning

import (
	"fmt"

	"github.com/Knight1/linodeapi/internal/config"
)

// configsPhase creates the two boot configs. Both reference the complete
// disk list in creation order with the same root device slot; only the
// kernel differs.
type configsPhase struct{}

func (p *configsPhase) Name() string { return "boot-configs" }

func (p *configsPhase) Run(ctx *Context) error {
	st := ctx.State

	stagingID, err := ctx.Client.CreateConfig(ctx, st.LinodeID, config.StagingKernelID,
		"install", st.DiskIDs, config.RootDeviceNum)
	if err != nil {
		return fmt.Errorf("failed to create staging boot config: %w", err)
	}
	st.StagingConfigID = stagingID

	targetID, err := ctx.Client.CreateConfig(ctx, st.LinodeID, config.TargetKernelID,
		"coreos", st.DiskIDs, config.RootDeviceNum)
	if err != nil {
		return fmt.Errorf("failed to create target boot config: %w", err)
	}
	st.TargetConfigID = targetID

	ctx.Observer.Printf("Boot configs: staging %d, target %d", stagingID, targetID)
	return nil
}
