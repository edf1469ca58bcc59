package provisioning

import (
	"fmt"
	"time"
)

// RunPhases executes the given phases sequentially against ctx.
// The first failing phase aborts the run; nothing is rolled back.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Observer.Printf("Starting provisioning of %q with %d phases...", ctx.Config.Name, len(phases))

	for i, phase := range phases {
		phaseStart := time.Now()
		ctx.Observer.PhaseStart(phase.Name(), i+1, len(phases))

		if err := phase.Run(ctx); err != nil {
			ctx.Observer.PhaseFailed(phase.Name(), err)
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		ctx.Observer.PhaseDone(phase.Name(), time.Since(phaseStart))
	}

	ctx.Observer.Printf("Provisioning completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}

// Phases returns the full provisioning sequence in execution order.
func Phases() []Phase {
	return []Phase{
		&tokenPhase{},
		&createPhase{},
		&labelPhase{},
		&networkPhase{},
		&planPhase{},
		&disksPhase{},
		&configsPhase{},
		&bootStagingPhase{},
		&waitSSHPhase{},
		&payloadPhase{},
		&installPhase{},
		&bootTargetPhase{},
	}
}

// PhaseNames returns the names of the full sequence, for progress displays.
func PhaseNames() []string {
	phases := Phases()
	names := make([]string, len(phases))
	for i, p := range phases {
		names[i] = p.Name()
	}
	return names
}
