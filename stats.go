package sifc

import "time"

// CompilationStatistics facilitates the retrieval of statistics about a finished compilation
type CompilationStatistics interface {
	// GetStartTime returns the time the compilation started
	GetStartTime() time.Time
	// GetRuntime returns the running time of the compilation
	GetRuntime() time.Duration
	// GetPassNames returns the names of the passes which completed, in application order
	GetPassNames() []string
	// GetPassRuntimes returns the runtime of each pass which completed, in application order
	GetPassRuntimes() []time.Duration
	// GetLoweringRuntime returns the time spent generating the physical plan
	GetLoweringRuntime() time.Duration
	// IsFinished returns true iff the compilation has ended, successfully or not
	IsFinished() bool
}
