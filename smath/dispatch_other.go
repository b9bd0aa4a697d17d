//go:build !amd64 && !arm64

package smath

func init() {
	// Other architectures use the scalar hooks.
	setScalarMode()
}
