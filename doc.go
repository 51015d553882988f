// Package sifc contains the compilation core of Sif's distributed dataflow engine.
// A job arrives as an IR DAG (package ir) of vertices and edges annotated with execution
// properties (package property). The Compiler applies an ordered pipeline of passes
// (package pass) to the DAG, then lowers it into a physical plan of stages (package physical)
// which is handed to the runtime for scheduling.
package sifc
