//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// Note: cpu.ARM64.HasASIMD is always true for ARMv8+
	switch {
	case cpu.ARM64.HasSVE:
		currentLevel = DispatchSVE
		currentWidth = 16 // report the architectural minimum; SVE length is implementation defined
	case cpu.ARM64.HasASIMD:
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
	default:
		setScalarMode()
	}
}
