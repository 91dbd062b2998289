// Command silibench runs the synthetic CPU benchmark suite from a terminal:
// single-core, multi-core throughput, and system scaling phases, with scores
// rendered as tables or JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"syscall"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"

	"github.com/utkarsh5026/silibench/bench"
)

var (
	bold   = color.New(color.Bold)
	cyan   = color.New(color.FgCyan)
	red    = color.New(color.FgRed)
	faint  = color.New(color.Faint)
	scoreC = color.New(color.FgHiBlue, color.Bold)
)

func main() {
	var (
		runSingle = flag.Bool("single", true, "Run the single-core phase")
		runMulti  = flag.Bool("multi", true, "Run the multi-core throughput phase")
		runSystem = flag.Bool("system", true, "Run the system scaling phase")
		cores     = flag.Int("cores", 0, "Override detected core count (0 = detect)")
		pin       = flag.Bool("pin", false, "Pin throughput workers to distinct cores")
		jsonOut   = flag.Bool("json", false, "Emit the result as JSON instead of tables")
		verbose   = flag.Bool("v", false, "Print per-workload log lines")
	)
	flag.Parse()

	phases := bench.Phases{SingleCore: *runSingle, MultiCore: *runMulti, System: *runSystem}
	if !phases.Any() {
		_, _ = red.Fprintln(os.Stderr, "select at least one phase")
		os.Exit(2)
	}

	silent := *jsonOut
	if !silent {
		printHeader()
	}

	var bar *progressbar.ProgressBar
	logSink := func(msg string) {
		if silent || !*verbose {
			return
		}
		_, _ = faint.Println(msg)
	}
	progressSink := func(current, total int) {
		if silent {
			return
		}
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetDescription("Benchmarking"),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
			)
		}
		_ = bar.Set(current)
	}

	opts := []bench.Option{
		bench.WithLogSink(logSink),
		bench.WithProgressSink(progressSink),
	}
	if *cores > 0 {
		opts = append(opts, bench.WithCores(*cores))
	}
	if *pin {
		opts = append(opts, bench.WithCPUAffinity())
	}
	engine := bench.New(opts...)

	if !silent {
		printConfiguration(engine.CoreCount(), phases)
	}

	// Ctrl-C requests cooperative cancellation: the in-flight workload
	// finishes, remaining descriptors are skipped.
	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigC
		if !silent {
			fmt.Println()
			_, _ = red.Println("Stopping after the current workload...")
		}
		engine.Stop()
	}()

	result, err := engine.Run(context.Background(), phases)
	if bar != nil {
		_ = bar.Finish()
		fmt.Println()
	}
	if err != nil {
		if !silent {
			_, _ = red.Println("Benchmark cancelled, no result.")
		}
		os.Exit(1)
	}

	if *jsonOut {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			_, _ = red.Fprintf(os.Stderr, "failed to serialize result: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	printResults(result, phases)
}

func printHeader() {
	_, _ = bold.Println("╔════════════════════════════════════════════════════════════╗")
	_, _ = bold.Printf("║       %-52s ║\n", "SILIBENCH - Synthetic CPU Benchmark")
	_, _ = bold.Println("╚════════════════════════════════════════════════════════════╝")
	fmt.Println()
}

func printConfiguration(cores int, phases bench.Phases) {
	_, _ = bold.Println("⚙️  Configuration:")
	fmt.Printf("  OS/Arch:  %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("  Cores:    %d logical\n", cores)
	fmt.Printf("  Phases:   single=%v multi=%v system=%v\n",
		phases.SingleCore, phases.MultiCore, phases.System)
	fmt.Println()
}

func printResults(result *bench.SuiteResult, phases bench.Phases) {
	fmt.Println()
	if phases.SingleCore {
		printPhaseTable("SINGLE-CORE", result.SingleCoreDetails)
	}
	if phases.MultiCore {
		printPhaseTable("MULTI-CORE THROUGHPUT", result.MultiCoreDetails)
	}
	if phases.System {
		printPhaseTable("SYSTEM & SCALING", result.SystemDetails)
	}

	_, _ = bold.Println("═══════════════════════════════════════════")
	_, _ = bold.Println("📊 FINAL SCORES")
	_, _ = bold.Println("═══════════════════════════════════════════")
	_, _ = scoreC.Printf("  Single-Core:  %d\n", result.SingleCoreScore)
	_, _ = scoreC.Printf("  Multi-Core:   %d\n", result.MultiCoreScore)
	_, _ = scoreC.Printf("  System:       %d\n", result.SystemScore)
}

func printPhaseTable(title string, details bench.PhaseResult) {
	_, _ = cyan.Printf("── %s ──\n", title)
	if len(details) == 0 {
		_, _ = faint.Println("  (no scored workloads)")
		fmt.Println()
		return
	}

	names := make([]string, 0, len(details))
	for name := range details {
		names = append(names, name)
	}
	sort.Strings(names)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Workload", "Score")
	for _, name := range names {
		_ = table.Append(name, fmt.Sprintf("%d", details[name]))
	}
	_ = table.Render()
	fmt.Println()
}
