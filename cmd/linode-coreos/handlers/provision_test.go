package handlers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Knight1/linodeapi/internal/config"
	"github.com/Knight1/linodeapi/internal/linode"
)

// withClient swaps the client factory for the duration of a test.
func withClient(t *testing.T, client linode.Client) {
	t.Helper()
	original := newClient
	newClient = func(string) linode.Client { return client }
	t.Cleanup(func() { newClient = original })
}

func TestBuildConfig_FlagsOnly(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "key-from-env")

	cfg, err := buildConfig(ProvisionOptions{
		Name:         "etcd1",
		PlanID:       4,
		DatacenterID: 2,
		Token:        "abc123",
		CloudConfig:  "#cloud-config\n",
		SwapMB:       1024,
		ExtraMB:      4096,
	})
	require.NoError(t, err)

	assert.Equal(t, "key-from-env", cfg.APIKey)
	assert.Equal(t, "etcd1", cfg.Name)
	assert.Equal(t, 4, cfg.PlanID)
	assert.Equal(t, 2, cfg.DatacenterID)
	assert.Equal(t, "abc123", cfg.Token)
	assert.Equal(t, "#cloud-config\n", cfg.CloudConfig)
	assert.Equal(t, 1024, cfg.SwapMB)
	assert.Equal(t, 4096, cfg.ExtraMB)
}

func TestBuildConfig_Defaults(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "key")

	cfg, err := buildConfig(ProvisionOptions{Name: "etcd1", SwapMB: -1})
	require.NoError(t, err)

	assert.Equal(t, config.DefaultPlanID, cfg.PlanID)
	assert.Equal(t, config.DefaultSwapMB, cfg.SwapMB)
	assert.Zero(t, cfg.DatacenterID, "datacenter stays unset until resolved against the API")
}

func TestBuildConfig_SwapZeroDisablesSwap(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "key")

	cfg, err := buildConfig(ProvisionOptions{Name: "etcd1", SwapMB: 0})
	require.NoError(t, err)
	assert.Zero(t, cfg.SwapMB)
}

func TestBuildConfig_FileThenFlagsWin(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "key")

	path := filepath.Join(t.TempDir(), "request.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: from-file\nplan: 2\nswap_mb: 512\n"), 0o600))

	cfg, err := buildConfig(ProvisionOptions{Name: "from-flag", SwapMB: -1, File: path})
	require.NoError(t, err)

	assert.Equal(t, "from-flag", cfg.Name, "flag overrides the request file")
	assert.Equal(t, 2, cfg.PlanID, "file fills fields the flags left unset")
	assert.Equal(t, 512, cfg.SwapMB)
}

func TestBuildConfig_CloudConfigFromFile(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "key")

	path := filepath.Join(t.TempDir(), "cloud-config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("#cloud-config\ncoreos: {}\n"), 0o600))

	cfg, err := buildConfig(ProvisionOptions{Name: "etcd1", SwapMB: -1, CloudConfig: "@" + path})
	require.NoError(t, err)
	assert.Equal(t, "#cloud-config\ncoreos: {}\n", cfg.CloudConfig)
}

func TestBuildConfig_CloudConfigFileMissing(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "key")

	_, err := buildConfig(ProvisionOptions{Name: "etcd1", SwapMB: -1, CloudConfig: "@/does/not/exist"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cloud-config")
}

func TestProvision_MissingPrerequisites(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "")

	err := Provision(context.Background(), ProvisionOptions{SwapMB: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
	assert.Contains(t, err.Error(), "node name")
}

func TestProvision_ResolvesDefaultDatacenter(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "key")

	boom := errors.New("create rejected")
	var gotDatacenterID int
	withClient(t, &linode.MockClient{
		ListDatacentersFunc: func(context.Context) ([]linode.Datacenter, error) {
			return []linode.Datacenter{{ID: 3, Location: "Fremont, CA, USA", Abbreviation: "fremont"}}, nil
		},
		CreateLinodeFunc: func(_ context.Context, datacenterID, _ int) (int, error) {
			gotDatacenterID = datacenterID
			return 0, boom
		},
	})

	err := Provision(context.Background(), ProvisionOptions{
		Name:        "etcd1",
		Token:       "3e86b59982e49066c5d813af1c2e2579",
		CloudConfig: "#cloud-config\n",
		SwapMB:      -1,
		Plain:       true,
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 3, gotDatacenterID)
}

func TestProvision_NoDatacenters(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "key")

	withClient(t, &linode.MockClient{
		ListDatacentersFunc: func(context.Context) ([]linode.Datacenter, error) {
			return nil, nil
		},
	})

	err := Provision(context.Background(), ProvisionOptions{
		Name:        "etcd1",
		CloudConfig: "#cloud-config\n",
		SwapMB:      -1,
		Plain:       true,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no datacenters")
}

func TestProvision_PhaseFailurePropagates(t *testing.T) {
	t.Setenv(config.EnvAPIKey, "key")

	boom := errors.New("insufficient capacity")
	withClient(t, &linode.MockClient{
		CreateLinodeFunc: func(context.Context, int, int) (int, error) {
			return 0, boom
		},
	})

	err := Provision(context.Background(), ProvisionOptions{
		Name:         "etcd1",
		DatacenterID: 2,
		Token:        "3e86b59982e49066c5d813af1c2e2579",
		CloudConfig:  "#cloud-config\n",
		SwapMB:       -1,
		Plain:        true,
	})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "create phase failed")
}
