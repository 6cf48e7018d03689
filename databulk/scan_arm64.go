package databulk

import "golang.org/x/sys/cpu"

// probeFastPath mirrors scan_amd64.go's reasoning for AArch64, where the
// scalar NEON-capable baseline is ASIMD.
func probeFastPath() bool {
	return cpu.ARM64.HasASIMD
}
