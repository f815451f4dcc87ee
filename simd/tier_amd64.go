//go:build amd64 && !noasm

package simd

import "golang.org/x/sys/cpu"

func detectCPU() {
	// PSHUFB is SSSE3, PCMPESTRI is SSE4.2.
	hasSSE42 = cpu.X86.HasSSE42 && cpu.X86.HasSSSE3
	hasAVX2 = hasSSE42 && cpu.X86.HasAVX2
}
