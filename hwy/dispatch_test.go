package hwy

import "testing"

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("HWY_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("NoSimdEnv() with HWY_NO_SIMD=%q = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestDispatchSnapshot(t *testing.T) {
	info := Dispatch()
	if info.Level != CurrentLevel() || info.Width != CurrentWidth() || info.Name != CurrentName() {
		t.Errorf("Dispatch() = %+v, disagrees with Current*()", info)
	}
	if info.Width < 16 {
		t.Errorf("Dispatch().Width = %d, want at least 16", info.Width)
	}
	if info.Kernel != KernelName() {
		t.Errorf("Dispatch().Kernel = %q, want %q", info.Kernel, KernelName())
	}
	if info.Level == DispatchScalar && info.Kernel != "portable" {
		t.Errorf("scalar level runs kernel %q, want portable", info.Kernel)
	}
}

func TestForceScalarRestores(t *testing.T) {
	before := KernelName()
	restore := ForceScalar()
	if got := KernelName(); got != "portable" {
		t.Errorf("KernelName() after ForceScalar = %q, want portable", got)
	}
	// Results must not depend on the backend.
	a := NewUint16x8(0x7FFF, 0x8000, 0, 0xFFFF, 1, 2, 3, 4)
	b := NewUint16x8(0x8000, 0x7FFF, 0xFFFF, 0, 4, 3, 2, 1)
	scalarMin := MinUint16x8(a, b)
	restore()
	if got := KernelName(); got != before {
		t.Errorf("KernelName() after restore = %q, want %q", got, before)
	}
	if got := MinUint16x8(a, b); got != scalarMin {
		t.Errorf("MinUint16x8 differs across backends: %v vs %v", got, scalarMin)
	}
}

func TestCompiledKernelsIncludesActive(t *testing.T) {
	ks := compiledKernels()
	if len(ks) == 0 || ks[0] != &portableKernel {
		t.Fatalf("compiledKernels()[0] is not the portable kernel")
	}
	found := false
	for _, kk := range ks {
		if kk == active() {
			found = true
		}
	}
	if !found {
		t.Errorf("active kernel %q not in compiledKernels()", active().name)
	}
}
