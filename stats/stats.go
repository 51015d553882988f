package stats

import (
	"time"
)

// CompileStatistics contains statistics about a single compilation: the runtime of each
// pass in the pipeline, of the lowering into a physical plan, and of the whole compilation
type CompileStatistics struct {
	started         bool
	finished        bool
	startTime       time.Time
	totalRuntime    int64
	passNames       []string
	passRuntimes    []int64
	loweringRuntime int64

	// temp vars
	currentPassStartTime     time.Time
	currentLoweringStartTime time.Time
}

// Start triggers statistics tracking, if it hasn't been started already
func (cs *CompileStatistics) Start(numPasses int) {
	if !cs.started {
		cs.started = true
		cs.startTime = time.Now()
		cs.passNames = make([]string, numPasses)
		cs.passRuntimes = make([]int64, numPasses)
	}
}

// Finish completes statistics tracking
func (cs *CompileStatistics) Finish() {
	if cs.started && !cs.finished {
		cs.totalRuntime = time.Since(cs.startTime).Nanoseconds()
		cs.finished = true
	}
}

// StartPass tracks the beginning of a pass
func (cs *CompileStatistics) StartPass() {
	cs.currentPassStartTime = time.Now()
}

// EndPass tracks the end of the pidx-th pass
func (cs *CompileStatistics) EndPass(pidx int, name string) {
	if pidx < 0 || pidx >= len(cs.passRuntimes) {
		return
	}
	cs.passNames[pidx] = name
	cs.passRuntimes[pidx] = time.Since(cs.currentPassStartTime).Nanoseconds()
}

// StartLowering tracks the beginning of physical plan generation
func (cs *CompileStatistics) StartLowering() {
	cs.currentLoweringStartTime = time.Now()
}

// EndLowering tracks the end of physical plan generation
func (cs *CompileStatistics) EndLowering() {
	cs.loweringRuntime = time.Since(cs.currentLoweringStartTime).Nanoseconds()
}

// GetStartTime returns the start time of the compilation
func (cs *CompileStatistics) GetStartTime() time.Time {
	return cs.startTime
}

// GetRuntime returns the running time of the compilation
func (cs *CompileStatistics) GetRuntime() time.Duration {
	if cs.finished {
		return time.Duration(cs.totalRuntime)
	}
	if !cs.started {
		return 0
	}
	return time.Since(cs.startTime)
}

// GetPassNames returns the names of the passes which have completed, in pipeline order
func (cs *CompileStatistics) GetPassNames() []string {
	return cs.passNames
}

// GetPassRuntimes returns the runtime of each pass, in pipeline order
func (cs *CompileStatistics) GetPassRuntimes() []time.Duration {
	runtimes := make([]time.Duration, len(cs.passRuntimes))
	for i, r := range cs.passRuntimes {
		runtimes[i] = time.Duration(r)
	}
	return runtimes
}

// GetLoweringRuntime returns the runtime of physical plan generation
func (cs *CompileStatistics) GetLoweringRuntime() time.Duration {
	return time.Duration(cs.loweringRuntime)
}

// IsFinished returns true iff the compilation has finished
func (cs *CompileStatistics) IsFinished() bool {
	return cs.finished
}
