package bench

import "context"

// Func is the entry-point contract every workload satisfies. Implementations
// must be stateless top-level functions so descriptors stay inert data. The
// argument slice is workload-specific (iteration counts, worker counts); an
// empty slice selects the workload's defaults. The returned value is
// discarded by the runners but must be derived from the computation so the
// work cannot be eliminated as dead code.
type Func func(ctx context.Context, args []int) (int64, error)

// Workload describes one named unit of CPU work: an entry point, its
// arguments, and the baseline seconds its single unit of work is expected to
// take on the reference machine. Descriptors are immutable once a suite run
// starts.
type Workload struct {
	Name     string
	Fn       Func
	Args     []int
	Baseline float64 // seconds, must be > 0
}

// PhaseResult maps workload name to integer score for one phase. A workload
// that failed during execution is absent, not present with score 0.
type PhaseResult map[string]int

// SuiteResult is the final record of a completed run. Detail maps for
// disabled or empty phases are empty, never nil.
type SuiteResult struct {
	SingleCoreScore int `json:"sc_score"`
	MultiCoreScore  int `json:"mc_score"`
	SystemScore     int `json:"extra_score"`

	SingleCoreDetails PhaseResult `json:"details_sc"`
	MultiCoreDetails  PhaseResult `json:"details_mc"`
	SystemDetails     PhaseResult `json:"details_ex"`
}

// Phases selects which phases a run executes.
type Phases struct {
	SingleCore bool
	MultiCore  bool
	System     bool
}

// AllPhases selects every phase.
func AllPhases() Phases {
	return Phases{SingleCore: true, MultiCore: true, System: true}
}

// Any reports whether at least one phase is selected.
func (p Phases) Any() bool {
	return p.SingleCore || p.MultiCore || p.System
}
