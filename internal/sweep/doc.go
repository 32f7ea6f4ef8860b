// Package sweep owns the scan loop: filesystem traversal, per-file verdict
// plumbing, the report stream, and the run counters. Faults are isolated per
// file; only cooperative cancellation stops the sweep early.
package sweep
