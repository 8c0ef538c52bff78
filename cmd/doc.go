// Package cmd implements the command-line interface for the gollections
// library. It provides a small command structure for inspecting and
// benchmarking the collection types.
//
// The package is organized into several subpackages:
//
//   - bench: Commands for running collection micro-benchmarks
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See gollections -help for a list of all commands.
package cmd
