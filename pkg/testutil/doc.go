// Package testutil provides file and environment helpers shared by the
// package tests.
//
// Helpers fail the test on error rather than returning one. Anything that
// touches process-wide state (environment, XDG directories) is restored
// when the test finishes.
package testutil
