// Package errors defines the closed set of failure modes for okgpg.
//
// Every failure in the relay is fatal to the whole process, so these
// types exist to carry detail into the final log line, not to let
// callers recover.  Plain I/O failures stay ordinary wrapped errors;
// the three conditions with protocol meaning get their own types.
package errors

import (
	"errors"
	"fmt"
)

// ProtocolError reports a violation of the wire protocol by the app:
// an unknown connection-type tag or a malformed frame.
type ProtocolError struct {
	Msg string
}

func (e *ProtocolError) Error() string { return "protocol error: " + e.Msg }

// Protocolf builds a ProtocolError from a format string.
func Protocolf(format string, args ...interface{}) *ProtocolError {
	return &ProtocolError{Msg: fmt.Sprintf(format, args...)}
}

// RemoteError reports a non-zero status code on the control
// connection: the app received the request and failed to carry it out.
type RemoteError struct {
	Status byte
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("an error has occurred in the app (status %d)", e.Status)
}

// LaunchError reports that the app could not be started at all.
type LaunchError struct {
	Cmd string // launcher command line
	Err error
}

func (e *LaunchError) Error() string { return fmt.Sprintf("launch %s: %v", e.Cmd, e.Err) }

func (e *LaunchError) Unwrap() error { return e.Err }

// ── Re-exports for convenience ───────────────────────────────────────
//
// These let callers use okgpg's errors package as a drop-in for the
// standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }
