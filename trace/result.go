package trace

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/fuck-algorithm/leetcode-994-rotting-oranges/narration"
)

// Unreachable is the FinalMinutes value when some fresh cell never rots.
const Unreachable = -1

// Outcome is the final answer derived from terminal state.
type Outcome struct {
	FinalMinutes int
	Success      bool
}

// Assemble derives the answer from the remaining fresh counter and the
// minute reached: success iff no fresh cell remains.
func Assemble(fresh, minute int) Outcome {
	if fresh == 0 {
		return Outcome{FinalMinutes: minute, Success: true}
	}
	return Outcome{FinalMinutes: Unreachable, Success: false}
}

// finish records the closing PhaseComplete snapshot and packages the result.
// describe renders the closing narrative for the derived outcome.
func (w *walker) finish(describe func(Outcome) string) *Result {
	out := Assemble(w.fresh, w.minute)
	w.newlyRotten = w.newlyRotten[:0]
	w.record(event{
		phase:       PhaseComplete,
		point:       narration.Return,
		description: describe(out),
		variables:   vars("fresh", w.fresh, "minutes", w.minute),
	})
	w.log.Debug("trace complete",
		zap.Int("finalMinutes", out.FinalMinutes),
		zap.Bool("success", out.Success),
		zap.Int("steps", len(w.rec.steps)),
	)
	return &Result{
		Steps:        w.rec.steps,
		FinalMinutes: out.FinalMinutes,
		Success:      out.Success,
	}
}

// completionMessage is the closing narrative after the BFS loop.
func completionMessage(fresh int) func(Outcome) string {
	return func(o Outcome) string {
		if o.Success {
			return fmt.Sprintf("Done: every orange rotted within %d minute(s), return %d", o.FinalMinutes, o.FinalMinutes)
		}
		return fmt.Sprintf("Done: %d fresh orange(s) are walled off and can never rot, return %d", fresh, o.FinalMinutes)
	}
}
