package diskplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		totalMB  int
		swapMB   int
		extraMB  int
		wantMain int
	}{
		{"default swap", 20480, 2048, 0, 16384},
		{"no swap no extra", 10240, 0, 0, 8192},
		{"swap and extra", 49152, 2048, 4096, 40960},
		{"exactly full", 6144, 2048, 2048, 0},
		{"oversubscribed", 4096, 4096, 0, -2048},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			layout := Plan(tt.totalMB, tt.swapMB, tt.extraMB)
			assert.Equal(t, tt.wantMain, layout.MainMB)
			assert.Equal(t, BootMB, layout.BootMB)
			assert.Equal(t, tt.totalMB, layout.BootMB+layout.SwapMB+layout.ExtraMB+layout.MainMB)
		})
	}
}

func TestLayout_Validate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		layout  Layout
		wantErr bool
	}{
		{"valid", Plan(20480, 2048, 0), false},
		{"main exactly zero", Plan(6144, 2048, 2048), true},
		{"main negative", Plan(4096, 4096, 0), true},
		{"negative swap", Plan(20480, -1, 0), true},
		{"negative extra", Plan(20480, 0, -512), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.layout.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
