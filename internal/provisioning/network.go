package provisioning

import (
	"fmt"

	"github.com/Knight1/linodeapi/internal/netutil"
)

// networkPhase allocates the private address and resolves the public,
// private and gateway addresses. The private IP must be allocated before
// the listing, or the private class is absent from it.
type networkPhase struct{}

func (p *networkPhase) Name() string { return "network" }

func (p *networkPhase) Run(ctx *Context) error {
	st := ctx.State

	if err := ctx.Client.AddPrivateIP(ctx, st.LinodeID); err != nil {
		return fmt.Errorf("failed to add private IP: %w", err)
	}

	ips, err := ctx.Client.ListIPs(ctx, st.LinodeID)
	if err != nil {
		return fmt.Errorf("failed to list addresses: %w", err)
	}

	public, private, err := netutil.PickAddresses(ips)
	if err != nil {
		return err
	}

	gateway, err := netutil.Gateway(private)
	if err != nil {
		return fmt.Errorf("failed to derive gateway: %w", err)
	}

	st.PublicIP = public
	st.PrivateIP = private
	st.Gateway = gateway
	ctx.Observer.Printf("Addresses: public %s, private %s, gateway %s", public, private, gateway)
	return nil
}
