// +build !debug

// Package assert provides cheap, compile-time-toggleable invariant checks
// (spec §7 "internal invariant violation"). Build with -tags debug to turn
// them on; release builds compile Assert to a no-op so the call and its
// argument evaluation are eliminated entirely.
package assert

// DEBUG is true only in builds tagged "debug".
const DEBUG = false

// Assert does nothing in this build; the debug build's Assert panics with
// the formatted message if test is false. Callers should
// still guard the call with "if assert.DEBUG { ... }" because Go evaluates
// arguments eagerly even when Assert itself is a no-op.
func Assert(test bool, msg string, a ...interface{}) {}
