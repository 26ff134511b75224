package config

import (
	"testing"
	"time"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestValidateRejectsShortInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CheckpointInterval = 500 * time.Millisecond
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for sub-second checkpoint interval")
	}
}

func TestValidateRejectsZeroWorkers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WorkerCount = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero worker count")
	}
}

func TestFromEnvNoHints(t *testing.T) {
	t.Setenv(EnvNoHints, "1")
	cfg := FromEnv()
	if cfg.HintsEnabled {
		t.Fatal("expected HintsEnabled=false when GOLOMB_NO_HINTS is set")
	}
}

func TestFromEnvAVX512(t *testing.T) {
	t.Setenv(EnvUseAVX512, "1")
	cfg := FromEnv()
	if !cfg.PreferAVX512 {
		t.Fatal("expected PreferAVX512=true when GOLOMB_USE_AVX512 is set")
	}
}

func TestFromEnvForceProbe(t *testing.T) {
	t.Setenv(EnvForceProbe, "gather512")
	cfg := FromEnv()
	if cfg.ForceBackend != BackendGather512 {
		t.Fatalf("expected BackendGather512, got %v", cfg.ForceBackend)
	}
}

func TestBackendString(t *testing.T) {
	cases := map[Backend]string{
		BackendAuto:      "auto",
		BackendScalar:    "scalar",
		BackendGather256: "gather256",
		BackendGather512: "gather512",
	}
	for b, want := range cases {
		if got := b.String(); got != want {
			t.Errorf("Backend(%d).String() = %q, want %q", b, got, want)
		}
	}
}
