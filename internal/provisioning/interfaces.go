package provisioning

import (
	"context"
	"time"

	"github.com/Knight1/linodeapi/internal/ssh"
)

// Phase is a single step of a provisioning run.
type Phase interface {
	// Name returns the short identifier of the phase.
	Name() string

	// Run executes the phase against the shared context.
	Run(ctx *Context) error
}

// TokenSource issues fresh discovery tokens.
type TokenSource interface {
	NewToken(ctx context.Context) (string, error)
}

// CommunicatorFactory builds a Communicator for the given host and
// credentials.
type CommunicatorFactory func(host, user, password string, connectTimeout time.Duration) ssh.Communicator
