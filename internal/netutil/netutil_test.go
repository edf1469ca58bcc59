package netutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Knight1/linodeapi/internal/linode"
)

func TestGateway(t *testing.T) {
	t.Parallel()
	tests := []struct {
		addr string
		want string
	}{
		{"10.1.2.55", "10.1.2.1"},
		{"192.168.133.5", "192.168.133.1"},
		{"203.0.113.254", "203.0.113.1"},
		{"172.16.0.1", "172.16.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			t.Parallel()
			got, err := Gateway(tt.addr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGateway_Invalid(t *testing.T) {
	t.Parallel()
	for _, addr := range []string{"", "not-an-ip", "10.1.2", "fe80::1", "10.1.2.300"} {
		t.Run(addr, func(t *testing.T) {
			t.Parallel()
			_, err := Gateway(addr)
			require.Error(t, err)
		})
	}
}

func TestPickAddresses(t *testing.T) {
	t.Parallel()
	ips := []linode.IP{
		{Address: "203.0.113.10", IsPublic: true},
		{Address: "203.0.113.11", IsPublic: true},
		{Address: "192.168.133.5", IsPublic: false},
		{Address: "192.168.133.6", IsPublic: false},
	}

	public, private, err := PickAddresses(ips)
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.10", public)
	assert.Equal(t, "192.168.133.5", private)
}

func TestPickAddresses_OrderIndependent(t *testing.T) {
	t.Parallel()
	ips := []linode.IP{
		{Address: "192.168.133.5", IsPublic: false},
		{Address: "203.0.113.10", IsPublic: true},
	}

	public, private, err := PickAddresses(ips)
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.10", public)
	assert.Equal(t, "192.168.133.5", private)
}

func TestPickAddresses_MissingClass(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		ips  []linode.IP
	}{
		{"empty", nil},
		{"public only", []linode.IP{{Address: "203.0.113.10", IsPublic: true}}},
		{"private only", []linode.IP{{Address: "192.168.133.5", IsPublic: false}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := PickAddresses(tt.ips)
			require.Error(t, err)
		})
	}
}
