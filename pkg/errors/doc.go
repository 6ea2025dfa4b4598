// Package errors provides coded errors for owlapi. Every failure a caller
// can act on carries an ErrorCode so tests and callers match on the code
// rather than on message text.
package errors
