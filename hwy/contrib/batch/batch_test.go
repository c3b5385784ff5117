package batch

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/simd128/hwy"
)

func randomVectors(n int, seed uint64) []hwy.Vector128 {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	vs := make([]hwy.Vector128, n)
	for i := range vs {
		vs[i] = hwy.Vector128FromHalves(rng.Uint64(), rng.Uint64())
	}
	return vs
}

func pools(t *testing.T) map[string]*Pool {
	p := NewPool(4)
	t.Cleanup(p.Close)
	return map[string]*Pool{"nil": nil, "pool4": p}
}

func TestBinary(t *testing.T) {
	const n = 3*SequentialThreshold + 7
	a := randomVectors(n, 1)
	b := randomVectors(n, 2)
	for name, pool := range pools(t) {
		t.Run(name, func(t *testing.T) {
			dst := make([]hwy.Vector128, n)
			if err := Binary(pool, dst, a, b, hwy.MinUint16x8); err != nil {
				t.Fatal(err)
			}
			for i := range dst {
				if want := hwy.MinUint16x8(a[i], b[i]); dst[i] != want {
					t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want)
				}
			}
		})
	}
}

func TestBinaryInPlace(t *testing.T) {
	a := randomVectors(16, 3)
	orig := append([]hwy.Vector128(nil), a...)
	one := hwy.SplatUint16x8(1)
	ones := make([]hwy.Vector128, len(a))
	for i := range ones {
		ones[i] = one
	}
	if err := Binary(nil, a, a, ones, hwy.AddSaturateUint16x8); err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if want := hwy.AddSaturateUint16x8(orig[i], one); a[i] != want {
			t.Errorf("a[%d] = %v, want %v", i, a[i], want)
		}
	}
}

func TestShift(t *testing.T) {
	const n = 2*SequentialThreshold + 1
	v := randomVectors(n, 4)
	for name, pool := range pools(t) {
		t.Run(name, func(t *testing.T) {
			for _, count := range []int{0, 3, 15, 16, -1} {
				dst := make([]hwy.Vector128, n)
				if err := Shift(pool, dst, v, count, hwy.ShiftRightByScalarUint16x8); err != nil {
					t.Fatal(err)
				}
				for i := range dst {
					if want := hwy.ShiftRightByScalarUint16x8(v[i], count); dst[i] != want {
						t.Fatalf("count=%d: dst[%d] = %v, want %v", count, i, dst[i], want)
					}
				}
			}
		})
	}
}

func TestLengthMismatch(t *testing.T) {
	a := make([]hwy.Vector128, 4)
	b := make([]hwy.Vector128, 5)
	if err := Binary(nil, a, a, b, hwy.MaxUint16x8); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Binary: got %v, want ErrLengthMismatch", err)
	}
	if err := Shift(nil, a, b, 1, hwy.ShiftLeftByScalarUint16x8); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Shift: got %v, want ErrLengthMismatch", err)
	}
	if err := Uint16(nil, make([]uint16, 3), make([]uint16, 3), make([]uint16, 2), hwy.MinUint16x8); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Uint16: got %v, want ErrLengthMismatch", err)
	}
}

func TestReduce(t *testing.T) {
	const n = 4*SequentialThreshold + 3
	vs := randomVectors(n, 5)
	var wantMin, wantMax hwy.Uint16x8Lanes
	for i := range wantMin {
		wantMin[i] = 0xFFFF
	}
	for _, v := range vs {
		for i, x := range v.Uint16Lanes() {
			wantMin[i] = min(wantMin[i], x)
			wantMax[i] = max(wantMax[i], x)
		}
	}
	for name, pool := range pools(t) {
		t.Run(name, func(t *testing.T) {
			got := Reduce(pool, vs, hwy.SplatUint16x8(0xFFFF), hwy.MinUint16x8)
			if got.Uint16Lanes() != wantMin {
				t.Errorf("min: got %v, want %v", got.Uint16Lanes(), wantMin)
			}
			got = Reduce(pool, vs, hwy.Vector128{}, hwy.MaxUint16x8)
			if got.Uint16Lanes() != wantMax {
				t.Errorf("max: got %v, want %v", got.Uint16Lanes(), wantMax)
			}
		})
	}
}

func TestReduceEmpty(t *testing.T) {
	init := hwy.SplatUint16x8(7)
	if got := Reduce(nil, nil, init, hwy.MinUint16x8); got != init {
		t.Errorf("got %v, want %v", got, init)
	}
}

func TestUint16Tail(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 9, 23, 8*SequentialThreshold + 5} {
		a := make([]uint16, n)
		b := make([]uint16, n)
		for i := range a {
			a[i] = uint16(65530 + i)
			b[i] = uint16(i * 3)
		}
		dst := make([]uint16, n+1)
		dst[n] = 0xBEEF
		pool := NewPool(3)
		err := Uint16(pool, dst[:n], a, b, hwy.AddSaturateUint16x8)
		pool.Close()
		if err != nil {
			t.Fatal(err)
		}
		for i := range n {
			want := uint16(min(uint32(a[i])+uint32(b[i]), 0xFFFF))
			if dst[i] != want {
				t.Fatalf("n=%d: dst[%d] = %d, want %d", n, i, dst[i], want)
			}
		}
		if dst[n] != 0xBEEF {
			t.Errorf("n=%d: wrote past the end", n)
		}
	}
}

func BenchmarkBinaryMin(b *testing.B) {
	const n = 1 << 16
	x := randomVectors(n, 6)
	y := randomVectors(n, 7)
	dst := make([]hwy.Vector128, n)
	pool := NewPool(0)
	defer pool.Close()
	for b.Loop() {
		_ = Binary(pool, dst, x, y, hwy.MinUint16x8)
	}
}
