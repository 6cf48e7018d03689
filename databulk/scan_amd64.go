package databulk

import "golang.org/x/sys/cpu"

// probeFastPath is checked once, at package init, rather than per call:
// re-probing CPUID on every Data-state read would defeat the point of the
// fast path. SSE2 is baseline on amd64, so this is nearly always true; it
// still gates the word-parallel scan off cleanly on any future build target
// where that stops holding.
func probeFastPath() bool {
	return cpu.X86.HasSSE2
}
