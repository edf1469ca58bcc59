// Package netutil derives network parameters from provider address listings.
package netutil

import (
	"fmt"
	"net"
	"strings"

	"github.com/Knight1/linodeapi/internal/linode"
)

// Gateway returns the gateway address for an IPv4 address: the first three
// octets with the host octet replaced by 1.
func Gateway(addr string) (string, error) {
	ip := net.ParseIP(addr)
	if ip == nil || ip.To4() == nil {
		return "", fmt.Errorf("not an IPv4 address: %q", addr)
	}
	octets := strings.Split(addr, ".")
	return strings.Join(octets[:3], ".") + ".1", nil
}

// PickAddresses selects the first public and the first private address from
// a provider listing. It returns an error when either class is absent.
func PickAddresses(ips []linode.IP) (public, private string, err error) {
	for _, ip := range ips {
		if ip.IsPublic && public == "" {
			public = ip.Address
		}
		if !ip.IsPublic && private == "" {
			private = ip.Address
		}
	}
	if public == "" {
		return "", "", fmt.Errorf("no public address in listing of %d entries", len(ips))
	}
	if private == "" {
		return "", "", fmt.Errorf("no private address in listing of %d entries", len(ips))
	}
	return public, private, nil
}
