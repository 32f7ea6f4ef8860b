// Package decision turns raw subtitle text into exactly one terminal verdict
// per file: keep, short, unknown, wrong-language, or http-error. The engine
// owns the ordering guarantees (error-signature check before normalization,
// length gate before detection) and the strict confidence comparison.
package decision
