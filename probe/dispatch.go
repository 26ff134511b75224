package probe

import "github.com/coregx/golomb/config"

// Dispatch selects a Backend once per search, in priority order:
//
//  1. cfg.ForceBackend, if set and available.
//  2. gather-512, if SIMD is enabled, the CPU supports it, and the caller
//     opted in via cfg.PreferAVX512 (GOLOMB_USE_AVX512).
//  3. gather-256, if SIMD is enabled and the CPU supports it.
//  4. scalar.
//
// The result is pure with respect to cfg: calling Dispatch again with the
// same cfg during the same process always returns the same backend choice
// (modulo the fixed, process-lifetime CPU feature flags) — there is no
// switching mid-search.
func Dispatch(cfg config.Config) Backend {
	switch cfg.ForceBackend {
	case config.BackendScalar:
		return Scalar{}
	case config.BackendGather256:
		if hasAVX2 {
			return Gather256{}
		}
	case config.BackendGather512:
		if hasAVX512 {
			return Gather512{}
		}
	}

	if !cfg.SIMDEnabled {
		return Scalar{}
	}
	if cfg.PreferAVX512 && hasAVX512 {
		return Gather512{}
	}
	if hasAVX2 {
		return Gather256{}
	}
	return Scalar{}
}
