// Package language normalizes the language codes subsift accepts in
// configuration and renders display names for reports. It intentionally covers
// only the candidate set relevant to subtitle verification, not the full ISO
// registry.
package language
