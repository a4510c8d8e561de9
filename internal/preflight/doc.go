// Package preflight provides readiness checks for the files and directories
// wiiuid depends on.
//
// The CLI "wiiuid check" command runs RunAll and renders one status line per
// Result. Each check is gated by its config toggle; disabled features are
// skipped.
package preflight
