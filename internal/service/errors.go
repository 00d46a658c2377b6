// Package service implements the booking engine: slot-range expansion,
// conflict handling, group-level cancellation and calendar assembly.
// Handlers stay thin; everything a request does to bookings happens
// here.
package service

import "errors"

// ErrWrongPassword is returned when a cancellation secret does not match
// the stored hash. Handlers should translate this into an HTTP 403
// response.
var ErrWrongPassword = errors.New("wrong password")

// ValidationError reports request input rejected before touching the
// store: an unknown slot label, a start not earlier than the end, a
// malformed date, or a missing name or password. Handlers should
// translate it into an HTTP 400 response carrying the message.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErr(msg string) error { return &ValidationError{msg: msg} }
