// Package report renders the outcome of a run: the per-file listing shown
// for dry runs and stored as the run log, and a compact summary table.
package report
