// Package testsupport provides fixture helpers shared across package tests.
package testsupport
