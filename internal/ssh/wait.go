package ssh

import (
	"context"
	"fmt"
	"log"
	"time"
)

// DeadlineError indicates the remote machine did not become reachable
// within the allowed wait.
type DeadlineError struct {
	Waited   time.Duration
	Attempts int
	LastErr  error
}

func (e *DeadlineError) Error() string {
	return fmt.Sprintf("machine not reachable after %v (%d attempts): %v", e.Waited.Round(time.Second), e.Attempts, e.LastErr)
}

func (e *DeadlineError) Unwrap() error {
	return e.LastErr
}

// WaitReady blocks until a minimal command succeeds on the remote machine.
//
// It probes immediately and then every probeInterval. Any probe failure
// (connection refused, timeout, auth not yet up, non-zero exit) keeps it
// waiting. It returns a DeadlineError when maxWait elapses, or ctx.Err()
// when the caller cancels.
func WaitReady(ctx context.Context, comm Communicator, probeInterval, maxWait time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, maxWait)
	defer cancel()

	start := time.Now()
	attempts := 0
	var lastErr error

	for {
		attempts++
		if _, err := comm.Execute(ctx, "true"); err == nil {
			return nil
		} else {
			lastErr = err
		}

		log.Printf("Machine not reachable yet (attempt %d): %v", attempts, lastErr)

		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return &DeadlineError{Waited: time.Since(start), Attempts: attempts, LastErr: lastErr}
			}
			return ctx.Err()
		case <-time.After(probeInterval):
		}
	}
}
