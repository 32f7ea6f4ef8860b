// Package main hosts the subsift CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into scan runs
// and configuration scaffolding. It centralizes configuration resolution,
// logging setup, signal handling, and the run lock so subcommands can focus
// on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
