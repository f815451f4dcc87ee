//go:build !amd64 || noasm

package simd

// detectCPU leaves every tier unavailable: no kernels are compiled in.
func detectCPU() {}
