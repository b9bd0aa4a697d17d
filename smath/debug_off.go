//go:build smath_nodebug

package smath

const debugChecks = false
