package ssh

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyCommunicator fails a fixed number of probes before succeeding.
type flakyCommunicator struct {
	failures int
	attempts int
}

func (f *flakyCommunicator) Execute(_ context.Context, _ string) (string, error) {
	f.attempts++
	if f.attempts <= f.failures {
		return "", errors.New("connection refused")
	}
	return "", nil
}

func (f *flakyCommunicator) Push(_ context.Context, _ string, _ []byte) error {
	return nil
}

func TestWaitReady_SucceedsAfterFailures(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		failures int
	}{
		{"immediate", 0},
		{"one failure", 1},
		{"five failures", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			comm := &flakyCommunicator{failures: tt.failures}

			err := WaitReady(context.Background(), comm, time.Millisecond, time.Second)
			require.NoError(t, err)
			assert.Equal(t, tt.failures+1, comm.attempts)
		})
	}
}

func TestWaitReady_Deadline(t *testing.T) {
	t.Parallel()
	comm := &flakyCommunicator{failures: 1 << 30}

	err := WaitReady(context.Background(), comm, time.Millisecond, 50*time.Millisecond)
	require.Error(t, err)

	var deadlineErr *DeadlineError
	require.ErrorAs(t, err, &deadlineErr)
	assert.Positive(t, deadlineErr.Attempts)
	assert.Contains(t, deadlineErr.Error(), "not reachable")
}

func TestWaitReady_Cancelled(t *testing.T) {
	t.Parallel()
	comm := &flakyCommunicator{failures: 1 << 30}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WaitReady(ctx, comm, time.Millisecond, time.Minute)
	require.ErrorIs(t, err, context.Canceled)
}
