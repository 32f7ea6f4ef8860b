// Package action applies verdict dispositions to subtitle files: report-only
// dry runs, deletion, or quarantine moves that never overwrite. Mutations
// honor cooperative cancellation and abort with ErrCancelled once shutdown is
// requested.
package action
