// Package ssh executes commands and pushes files over SSH.
package ssh

import (
	"context"
)

// Communicator defines the interface for talking to a remote machine.
type Communicator interface {
	// Execute runs a command on the remote machine and returns its
	// combined output. A non-zero exit status is returned as an error
	// alongside whatever output was produced.
	Execute(ctx context.Context, command string) (string, error)

	// Push writes content to remotePath on the remote machine.
	Push(ctx context.Context, remotePath string, content []byte) error
}
