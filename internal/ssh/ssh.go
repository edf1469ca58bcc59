package ssh

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"time"

	"golang.org/x/crypto/ssh"
)

// PasswordCommunicator implements Communicator using password-authenticated
// SSH. A freshly installed staging OS only offers password auth, so there is
// no key material to verify the host against either.
type PasswordCommunicator struct {
	host           string
	user           string
	password       string
	connectTimeout time.Duration
}

// NewPasswordCommunicator creates a new PasswordCommunicator for host.
func NewPasswordCommunicator(host, user, password string, connectTimeout time.Duration) *PasswordCommunicator {
	return &PasswordCommunicator{
		host:           host,
		user:           user,
		password:       password,
		connectTimeout: connectTimeout,
	}
}

// Ensure interface compliance.
var _ Communicator = (*PasswordCommunicator)(nil)

func (c *PasswordCommunicator) dial(ctx context.Context) (*ssh.Client, error) {
	config := &ssh.ClientConfig{
		User: c.user,
		Auth: []ssh.AuthMethod{
			ssh.Password(c.password),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), // The machine was created seconds ago; there is no known host key.
		Timeout:         c.connectTimeout,
	}

	dialer := net.Dialer{Timeout: c.connectTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(c.host, "22"))
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", c.host, err)
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, c.host, config)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ssh handshake with %s failed: %w", c.host, err)
	}

	return ssh.NewClient(sshConn, chans, reqs), nil
}

// Execute runs a command on the remote machine and returns its combined output.
func (c *PasswordCommunicator) Execute(ctx context.Context, command string) (string, error) {
	client, err := c.dial(ctx)
	if err != nil {
		return "", err
	}
	defer client.Close() //nolint:errcheck

	session, err := client.NewSession()
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	defer session.Close() //nolint:errcheck

	output, err := session.CombinedOutput(command)
	if err != nil {
		return string(output), fmt.Errorf("remote command failed: %w", err)
	}
	return string(output), nil
}

// Push writes content to remotePath by streaming it into a remote cat.
func (c *PasswordCommunicator) Push(ctx context.Context, remotePath string, content []byte) error {
	client, err := c.dial(ctx)
	if err != nil {
		return err
	}
	defer client.Close() //nolint:errcheck

	session, err := client.NewSession()
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	defer session.Close() //nolint:errcheck

	session.Stdin = bytes.NewReader(content)
	if err := session.Run(fmt.Sprintf("cat > %q", remotePath)); err != nil {
		return fmt.Errorf("failed to write %s: %w", remotePath, err)
	}
	return nil
}
