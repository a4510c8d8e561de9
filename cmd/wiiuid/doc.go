// Package main hosts the wiiuid CLI entrypoint and command graph.
//
// The root command lists the title records of a Wii uid.sys file. Subcommands
// manage the persistent title catalog, scaffold configuration, and run
// preflight checks. Configuration resolution and logger setup live in the
// command context so individual commands only deal with presentation.
package main
