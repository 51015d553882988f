// Package stats tracks timing statistics for a single compilation
package stats
