// Package textenc decodes subtitle bytes using a best-effort encoding chain.
package textenc
