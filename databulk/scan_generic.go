//go:build !amd64 && !arm64

package databulk

// probeFastPath is conservative on architectures this package has not been
// tuned for: the word-parallel path is plain Go with no architecture-
// specific assumptions, so it is safe to enable everywhere, but leaving it
// off on untuned architectures keeps the scalar path (the one every
// platform is guaranteed to behave well on) as the default until someone
// benchmarks the alternative there.
func probeFastPath() bool {
	return false
}
