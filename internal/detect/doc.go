// Package detect defines the language classification contract consumed by the
// decision engine and provides the lingua-backed production implementation.
// Decision logic depends only on the Detector interface so tests can inject a
// stub returning fixed (language, confidence) pairs.
package detect
