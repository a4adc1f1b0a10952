package trace

import "fmt"

// Phase tags the narrative stage a snapshot belongs to.
type Phase uint8

const (
	// PhaseInit covers variable setup and the initial grid scan.
	PhaseInit Phase = iota
	// PhaseBFSLoop covers loop condition checks, layer sizing and dequeues.
	PhaseBFSLoop
	// PhaseCheckAdjacent covers per-direction neighbor examination.
	PhaseCheckAdjacent
	// PhaseInfect covers the mutation of a newly infected cell and minute ends.
	PhaseInfect
	// PhaseComplete is terminal and appears exactly once, last.
	PhaseComplete
)

// String returns the phase tag.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "init"
	case PhaseBFSLoop:
		return "bfs_loop"
	case PhaseCheckAdjacent:
		return "check_adjacent"
	case PhaseInfect:
		return "infect"
	case PhaseComplete:
		return "complete"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Terminal reports whether p ends the trace.
func (p Phase) Terminal() bool {
	return p == PhaseComplete
}

// valid reports whether p is one of the declared phases.
func (p Phase) valid() bool {
	switch p {
	case PhaseInit, PhaseBFSLoop, PhaseCheckAdjacent, PhaseInfect, PhaseComplete:
		return true
	default:
		return false
	}
}
