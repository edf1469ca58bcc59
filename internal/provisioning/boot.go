package provisioning

import (
	"fmt"

	"github.com/Knight1/linodeapi/internal/ssh"
)

// bootStagingPhase boots the Linode into the staging config. The boot call
// only queues the job; readiness is established by the wait phase.
type bootStagingPhase struct{}

func (p *bootStagingPhase) Name() string { return "boot-staging" }

func (p *bootStagingPhase) Run(ctx *Context) error {
	if err := ctx.Client.Boot(ctx, ctx.State.LinodeID, ctx.State.StagingConfigID); err != nil {
		return fmt.Errorf("failed to boot staging config: %w", err)
	}
	return nil
}

// waitSSHPhase blocks until the staging OS accepts root SSH, then leaves
// the established communicator on the context for the later phases.
type waitSSHPhase struct{}

func (p *waitSSHPhase) Name() string { return "wait-ssh" }

func (p *waitSSHPhase) Run(ctx *Context) error {
	st := ctx.State
	comm := ctx.NewCommunicator(st.PublicIP, "root", st.RootPassword, ctx.Timeouts.SSHConnect)

	ctx.Observer.Printf("Waiting up to %v for %s to accept SSH...", ctx.Timeouts.SSHWait, st.PublicIP)
	if err := ssh.WaitReady(ctx, comm, ctx.Timeouts.SSHProbeInterval, ctx.Timeouts.SSHWait); err != nil {
		return err
	}

	ctx.Comm = comm
	return nil
}

// bootTargetPhase shuts the staging OS down and boots the installed target
// config. Terminal state of a successful run.
type bootTargetPhase struct{}

func (p *bootTargetPhase) Name() string { return "boot-target" }

func (p *bootTargetPhase) Run(ctx *Context) error {
	st := ctx.State
	if err := ctx.Client.Shutdown(ctx, st.LinodeID); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	if err := ctx.Client.Boot(ctx, st.LinodeID, st.TargetConfigID); err != nil {
		return fmt.Errorf("failed to boot target config: %w", err)
	}
	ctx.Observer.Printf("Booting %s into CoreOS at %s", st.Label, st.PublicIP)
	return nil
}
