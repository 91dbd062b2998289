package bench

// Score normalizes a measured duration against a baseline into an integer
// score: floor((baseline / actual) * 1000 * scale). A degenerate measurement
// (actual <= 0) scores 0. The scale factor credits concurrently completed
// units of work: the throughput phase passes the worker count, so N workers
// finishing N units in the baseline's single-unit time score N times higher.
//
// Both baseline and actual are in seconds.
func Score(baseline, actual, scale float64) int {
	if actual <= 0 {
		return 0
	}
	return int((baseline / actual) * 1000 * scale)
}

// Average reduces a phase's scores to their integer mean. The average of an
// empty phase is defined as 0.
func Average(scores PhaseResult) int {
	if len(scores) == 0 {
		return 0
	}

	sum := 0
	for _, s := range scores {
		sum += s
	}
	return sum / len(scores)
}
