package provisioning

import (
	"context"
	"time"

	"github.com/Knight1/linodeapi/internal/config"
	"github.com/Knight1/linodeapi/internal/linode"
	"github.com/Knight1/linodeapi/internal/ssh"
)

// Context wraps all dependencies and state needed by provisioning phases.
type Context struct {
	context.Context

	Config   *config.Provision
	State    *State
	Client   linode.Client
	Tokens   TokenSource
	Observer Observer
	Timeouts *config.Timeouts

	// NewCommunicator builds the SSH communicator for the staging OS.
	NewCommunicator CommunicatorFactory

	// Comm is established by the wait phase and reused by the payload
	// and install phases.
	Comm ssh.Communicator
}

// NewContext creates a provisioning context with the default communicator
// factory and timeouts.
func NewContext(ctx context.Context, cfg *config.Provision, client linode.Client, tokens TokenSource, observer Observer) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		State:    NewState(),
		Client:   client,
		Tokens:   tokens,
		Observer: observer,
		Timeouts: config.LoadTimeouts(),
		NewCommunicator: func(host, user, password string, connectTimeout time.Duration) ssh.Communicator {
			return ssh.NewPasswordCommunicator(host, user, password, connectTimeout)
		},
	}
}
