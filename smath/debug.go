//go:build !smath_nodebug

package smath

// debugChecks enables the assertions on Min, Max and Clamp. Build with
// -tags smath_nodebug to remove them.
const debugChecks = true
