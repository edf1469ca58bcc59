package provisioning

import (
	"fmt"
)

// createPhase creates the Linode from the requested datacenter and plan.
type createPhase struct{}

func (p *createPhase) Name() string { return "create" }

func (p *createPhase) Run(ctx *Context) error {
	id, err := ctx.Client.CreateLinode(ctx, ctx.Config.DatacenterID, ctx.Config.PlanID)
	if err != nil {
		return fmt.Errorf("failed to create linode: %w", err)
	}
	ctx.State.LinodeID = id
	ctx.Observer.Printf("Created linode %d (datacenter %d, plan %d)", id, ctx.Config.DatacenterID, ctx.Config.PlanID)
	return nil
}

// labelPhase renames the Linode to the requested name. Rename failure is
// the one non-fatal provider error: the run continues under the provider's
// default label.
type labelPhase struct{}

func (p *labelPhase) Name() string { return "label" }

func (p *labelPhase) Run(ctx *Context) error {
	st := ctx.State
	if err := ctx.Client.RenameLinode(ctx, st.LinodeID, ctx.Config.Name); err != nil {
		st.Label = fmt.Sprintf("linode%d", st.LinodeID)
		ctx.Observer.Printf("Rename failed (%v), continuing as %s", err, st.Label)
		return nil
	}
	st.Label = ctx.Config.Name
	return nil
}
