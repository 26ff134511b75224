//go:build amd64

package probe

import "golang.org/x/sys/cpu"

// CPU feature detection flags, computed once at package init and used to
// dispatch to the fastest available backend.
var (
	hasAVX2 = cpu.X86.HasAVX2
	// hasAVX512 requires the three-feature gate the original C kernel's
	// __attribute__((target("avx512f,avx512vl,avx512dq"))) encodes.
	hasAVX512 = cpu.X86.HasAVX512F && cpu.X86.HasAVX512VL && cpu.X86.HasAVX512DQ
)
