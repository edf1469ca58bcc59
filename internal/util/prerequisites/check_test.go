package prerequisites

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Knight1/linodeapi/internal/config"
)

func fullRequest() config.Provision {
	return config.Provision{
		APIKey:      "key",
		Name:        "node1",
		PlanID:      1,
		CloudConfig: "#cloud-config\n",
	}
}

func TestCheckDefault_AllSatisfied(t *testing.T) {
	t.Parallel()
	p := fullRequest()

	results := CheckDefault(&p)

	assert.False(t, results.HasErrors())
	assert.NoError(t, results.Error())
}

func TestCheckDefault_Missing(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(*config.Provision)
		want   string
	}{
		{"no api key", func(p *config.Provision) { p.APIKey = "" }, "API key"},
		{"no name", func(p *config.Provision) { p.Name = "" }, "--name"},
		{"no payload", func(p *config.Provision) { p.CloudConfig = "" }, "cloud-config"},
		{"negative swap", func(p *config.Provision) { p.SwapMB = -1 }, "non-negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := fullRequest()
			tt.mutate(&p)

			results := CheckDefault(&p)

			require.True(t, results.HasErrors())
			require.Error(t, results.Error())
			assert.Contains(t, results.Error().Error(), tt.want)
		})
	}
}

func TestCheck_CollectsAllMissing(t *testing.T) {
	t.Parallel()
	p := config.Provision{}

	results := CheckDefault(&p)

	require.True(t, results.HasErrors())
	assert.Len(t, results.Missing, 3)
}
