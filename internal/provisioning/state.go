package provisioning

import (
	"fmt"

	"github.com/Knight1/linodeapi/internal/diskplan"
)

// State holds the shared results of provisioning phases.
// It is progressively populated as each phase completes and is read by
// subsequent phases that need earlier results. It lives for exactly one run.
type State struct {
	// Populated by the token phase.
	Token string

	// Populated by the create and label phases.
	LinodeID int
	Label    string

	// Populated by the network phase.
	PublicIP  string
	PrivateIP string
	Gateway   string

	// Populated by the plan and disk phases.
	Layout       diskplan.Layout
	RootPassword string
	DiskIDs      []int // creation order

	// Populated by the boot-config phase.
	StagingConfigID int
	TargetConfigID  int
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{}
}

// Resources describes every provider resource created so far, so a failed
// run can report what needs manual cleanup.
func (s *State) Resources() []string {
	var out []string
	if s.LinodeID != 0 {
		out = append(out, fmt.Sprintf("linode %d (%s)", s.LinodeID, s.Label))
	}
	for _, id := range s.DiskIDs {
		out = append(out, fmt.Sprintf("disk %d", id))
	}
	if s.StagingConfigID != 0 {
		out = append(out, fmt.Sprintf("config %d (staging)", s.StagingConfigID))
	}
	if s.TargetConfigID != 0 {
		out = append(out, fmt.Sprintf("config %d (target)", s.TargetConfigID))
	}
	return out
}
