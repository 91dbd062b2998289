package bench

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/utkarsh5026/silibench/internal/cpu"
)

// LogFunc receives one human-readable log line per event.
type LogFunc func(message string)

// ProgressFunc receives completion counts as the run advances:
// current descriptors finished out of total enabled descriptors.
type ProgressFunc func(current, total int)

// ErrAlreadyRunning is returned by Run when a suite is in flight.
var ErrAlreadyRunning = errors.New("bench: suite already running")

// Default cooldowns between measurements. The multi-core and system pauses
// are longer so core frequency and thermals settle after a full saturation
// burst before the next measurement starts.
const (
	DefaultSingleCoreCooldown = 500 * time.Millisecond
	DefaultMultiCoreCooldown  = time.Second
	DefaultSystemCooldown     = time.Second
)

// Engine sequences the three benchmark phases, owns cancellation state, and
// reports through the configured sinks. The logical core count is detected
// once at construction and never changes afterwards.
type Engine struct {
	log      LogFunc
	progress ProgressFunc
	cores    int

	singleCooldown time.Duration
	multiCooldown  time.Duration
	systemCooldown time.Duration
	pinWorkers     bool

	single []Workload
	multi  []Workload
	system []Workload

	running atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogSink sets the log sink. Defaults to printing to stdout.
func WithLogSink(fn LogFunc) Option {
	return func(e *Engine) {
		if fn != nil {
			e.log = fn
		}
	}
}

// WithProgressSink sets the progress sink. Defaults to a no-op.
func WithProgressSink(fn ProgressFunc) Option {
	return func(e *Engine) {
		if fn != nil {
			e.progress = fn
		}
	}
}

// WithCores overrides the detected logical core count. The value sizes the
// throughput pool, scales throughput scores, and parameterizes the default
// system catalogue.
func WithCores(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.cores = n
		}
	}
}

// WithCooldowns overrides the pauses inserted after each successful
// measurement. Zero values are honored, which tests rely on.
func WithCooldowns(single, multi, system time.Duration) Option {
	return func(e *Engine) {
		e.singleCooldown = single
		e.multiCooldown = multi
		e.systemCooldown = system
	}
}

// WithCPUAffinity pins throughput-phase pool workers to distinct cores.
func WithCPUAffinity() Option {
	return func(e *Engine) {
		e.pinWorkers = true
	}
}

// WithSingleCoreWorkloads replaces the default single-core catalogue.
func WithSingleCoreWorkloads(ws []Workload) Option {
	return func(e *Engine) {
		e.single = ws
	}
}

// WithThroughputWorkloads replaces the default multi-core catalogue.
func WithThroughputWorkloads(ws []Workload) Option {
	return func(e *Engine) {
		e.multi = ws
	}
}

// WithSystemWorkloads replaces the default system catalogue.
func WithSystemWorkloads(ws []Workload) Option {
	return func(e *Engine) {
		e.system = ws
	}
}

// New constructs an Engine. Without options it detects the host's logical
// core count and loads the default workload catalogues.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:            func(msg string) { fmt.Println(msg) },
		progress:       func(current, total int) {},
		cores:          cpu.LogicalCores(),
		singleCooldown: DefaultSingleCoreCooldown,
		multiCooldown:  DefaultMultiCoreCooldown,
		systemCooldown: DefaultSystemCooldown,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.single == nil {
		e.single = DefaultSingleCore()
	}
	if e.multi == nil {
		e.multi = DefaultThroughput()
	}
	if e.system == nil {
		e.system = DefaultSystem(e.cores)
	}

	return e
}

// CoreCount returns the logical core count detected at construction.
func (e *Engine) CoreCount() int {
	return e.cores
}

// Running reports whether a suite run is currently in flight.
func (e *Engine) Running() bool {
	return e.running.Load()
}

// Stop requests cancellation of the in-flight run. It is idempotent and safe
// to call from any goroutine, including concurrently with Run. Cancellation
// is observed at descriptor boundaries: the workload currently executing
// finishes and is still scored.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cancel != nil {
		e.cancel()
	}
}

// Run executes the selected phases in order: single-core, multi-core
// throughput, then system. It returns (nil, context.Canceled) exactly when
// the run was cancelled before completion, via Stop or the parent context.
// Only one run may be in flight per Engine.
func (e *Engine) Run(ctx context.Context, phases Phases) (*SuiteResult, error) {
	if !e.running.CompareAndSwap(false, true) {
		return nil, ErrAlreadyRunning
	}
	defer e.running.Store(false)

	ctx, cancel := context.WithCancel(ctx)
	e.mu.Lock()
	e.cancel = cancel
	e.mu.Unlock()
	defer func() {
		cancel()
		e.mu.Lock()
		e.cancel = nil
		e.mu.Unlock()
	}()

	total := 0
	if phases.SingleCore {
		total += len(e.single)
	}
	if phases.MultiCore {
		total += len(e.multi)
	}
	if phases.System {
		total += len(e.system)
	}
	prog := &progressTracker{fn: e.progress, total: total}

	scDetails := PhaseResult{}
	mcDetails := PhaseResult{}
	exDetails := PhaseResult{}

	if phases.SingleCore && ctx.Err() == nil {
		e.logf("\n[Phase 1] Single-Core Performance")
		scDetails = e.runSequential(ctx, e.single, prog)
	}

	if phases.MultiCore && ctx.Err() == nil {
		e.logf("\n[Phase 2] Multi-Core Throughput")
		mcDetails = e.runThroughput(ctx, e.multi, prog)
	}

	if phases.System && ctx.Err() == nil {
		e.logf("\n[Phase 3] System & Scaling Extras")
		exDetails = e.runSystem(ctx, e.system, prog)
	}

	if ctx.Err() != nil {
		return nil, context.Canceled
	}

	result := &SuiteResult{
		SingleCoreScore:   Average(scDetails),
		MultiCoreScore:    Average(mcDetails),
		SystemScore:       Average(exDetails),
		SingleCoreDetails: scDetails,
		MultiCoreDetails:  mcDetails,
		SystemDetails:     exDetails,
	}

	e.logf("%s", strings.Repeat("=", 40))
	e.logf("Single-Core Score:   %d", result.SingleCoreScore)
	e.logf("Multi-Core Score:    %d", result.MultiCoreScore)
	e.logf("System/Extra Score:  %d", result.SystemScore)
	e.logf("%s", strings.Repeat("=", 40))

	return result, nil
}

func (e *Engine) logf(format string, args ...any) {
	if len(args) == 0 {
		e.log(format)
		return
	}
	e.log(fmt.Sprintf(format, args...))
}

// progressTracker counts finished descriptors across all enabled phases.
type progressTracker struct {
	fn      ProgressFunc
	current int
	total   int
}

func (p *progressTracker) step() {
	p.current++
	p.fn(p.current, p.total)
}
