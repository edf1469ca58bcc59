package config

import (
	"os"
	"time"
)

// Timeouts holds the configurable waits of the boot-readiness poll.
type Timeouts struct {
	SSHWait          time.Duration // Overall deadline for the machine to accept SSH after boot
	SSHProbeInterval time.Duration // Delay between readiness probes
	SSHConnect       time.Duration // Per-probe TCP/handshake timeout
}

// LoadTimeouts loads timeout configuration from environment variables.
// If a variable is not set or invalid, the default is used.
//
// Environment Variables:
//   - LINODE_COREOS_SSH_WAIT (default: 10m)
//   - LINODE_COREOS_SSH_PROBE_INTERVAL (default: 10s)
//   - LINODE_COREOS_SSH_CONNECT_TIMEOUT (default: 3s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		SSHWait:          parseDuration("LINODE_COREOS_SSH_WAIT", 10*time.Minute),
		SSHProbeInterval: parseDuration("LINODE_COREOS_SSH_PROBE_INTERVAL", 10*time.Second),
		SSHConnect:       parseDuration("LINODE_COREOS_SSH_CONNECT_TIMEOUT", 3*time.Second),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}

	return d
}
