// Package config loads, normalizes, and validates subsift configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and canonicalizes language codes so the rest
// of the program only ever sees ISO 639-1 spellings. Always obtain settings
// through this package so downstream code receives sanitized paths and clear
// validation errors.
package config
