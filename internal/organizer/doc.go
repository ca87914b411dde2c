// Package organizer materializes the output folder in Drive.
//
// It creates the destination folder once per run and copies every retained
// file into it, renamed with a sequential bijective base-26 letter prefix
// that encodes link order first and within-folder order second. Runs are
// deliberately not idempotent: each invocation creates a fresh folder unless
// the caller opts into replacing same-named predecessors.
package organizer
