package arith

import (
	"math"
	"testing"
)

func TestAddVsHost64(t *testing.T) {
	rng := newTestRNG("arith add 64")
	for n := 0; n < 30000; {
		xa := rng.next64()
		xb := rng.next64()
		if rng.next64()&1 == 0 {
			xb = closePair64(xa, xb)
		}
		ua, oka := unpack64(xa)
		ub, okb := unpack64(xb)
		if !oka || !okb {
			continue
		}
		n++
		got := pack64(Add(fmt64, NearEven, true, ua, ub))
		want := math.Float64bits(math.Float64frombits(xa) + math.Float64frombits(xb))
		if got != want {
			t.Fatalf("ERR: 0x%016X + 0x%016X -> 0x%016X, expected 0x%016X", xa, xb, got, want)
		}
	}
}

func TestSubVsHost64(t *testing.T) {
	rng := newTestRNG("arith sub 64")
	for n := 0; n < 30000; {
		xa := rng.next64()
		xb := closePair64(xa, rng.next64())
		ua, oka := unpack64(xa)
		ub, okb := unpack64(xb)
		if !oka || !okb {
			continue
		}
		n++
		ub.Sign = !ub.Sign
		got := pack64(Add(fmt64, NearEven, true, ua, ub))
		want := math.Float64bits(math.Float64frombits(xa) - math.Float64frombits(xb))
		if got != want {
			t.Fatalf("ERR: 0x%016X - 0x%016X -> 0x%016X, expected 0x%016X", xa, xb, got, want)
		}
	}
}

func TestMulVsHost64(t *testing.T) {
	rng := newTestRNG("arith mul 64")
	for n := 0; n < 30000; {
		xa := rng.next64()
		xb := rng.next64()
		ua, oka := unpack64(xa)
		ub, okb := unpack64(xb)
		if !oka || !okb {
			continue
		}
		n++
		got := pack64(Mul(fmt64, NearEven, true, ua, ub))
		want := math.Float64bits(math.Float64frombits(xa) * math.Float64frombits(xb))
		if got != want {
			t.Fatalf("ERR: 0x%016X * 0x%016X -> 0x%016X, expected 0x%016X", xa, xb, got, want)
		}
	}
}

func TestDivVsHost64(t *testing.T) {
	rng := newTestRNG("arith div 64")
	for n := 0; n < 20000; {
		xa := rng.next64()
		xb := rng.next64()
		ua, oka := unpack64(xa)
		ub, okb := unpack64(xb)
		if !oka || !okb {
			continue
		}
		n++
		got := pack64(Div(fmt64, NearEven, true, ua, ub))
		want := math.Float64bits(math.Float64frombits(xa) / math.Float64frombits(xb))
		if got != want {
			t.Fatalf("ERR: 0x%016X / 0x%016X -> 0x%016X, expected 0x%016X", xa, xb, got, want)
		}
	}
}

func TestSqrtVsHost64(t *testing.T) {
	rng := newTestRNG("arith sqrt 64")
	for n := 0; n < 20000; {
		xa := rng.next64() &^ (uint64(1) << 63)
		ua, ok := unpack64(xa)
		if !ok {
			continue
		}
		n++
		got := pack64(Sqrt(fmt64, NearEven, true, ua))
		want := math.Float64bits(math.Sqrt(math.Float64frombits(xa)))
		if got != want {
			t.Fatalf("ERR: sqrt(0x%016X) -> 0x%016X, expected 0x%016X", xa, got, want)
		}
	}
}

func TestMulAddVsHost64(t *testing.T) {
	rng := newTestRNG("arith fma 64")
	for n := 0; n < 20000; {
		xa := rng.next64()
		xb := rng.next64()
		xc := rng.next64()
		if rng.next64()&1 == 0 {
			// Pull c near the product's magnitude to hit the
			// cancellation and sticky paths.
			e := int64(xa>>52&0x7FF) + int64(xb>>52&0x7FF) - 1023 + int64(xc>>52&0x7FF)%5 - 2
			if e < 0 {
				e = 0
			}
			if e > 0x7FE {
				e = 0x7FE
			}
			xc = xc&^(uint64(0x7FF)<<52) | uint64(e)<<52
		}
		ua, oka := unpack64(xa)
		ub, okb := unpack64(xb)
		uc, okc := unpack64(xc)
		if !oka || !okb || !okc {
			continue
		}
		n++
		got := pack64(MulAdd(fmt64, NearEven, true, ua, ub, uc))
		want := math.Float64bits(math.FMA(math.Float64frombits(xa), math.Float64frombits(xb), math.Float64frombits(xc)))
		if got != want {
			t.Fatalf("ERR: fma(0x%016X, 0x%016X, 0x%016X) -> 0x%016X, expected 0x%016X",
				xa, xb, xc, got, want)
		}
	}
}

func TestRemVsHost64(t *testing.T) {
	rng := newTestRNG("arith rem 64")
	for n := 0; n < 20000; {
		xa := rng.next64()
		xb := rng.next64()
		if rng.next64()&1 == 0 {
			xb = closePair64(xa, xb)
		}
		ua, oka := unpack64(xa)
		ub, okb := unpack64(xb)
		if !oka || !okb {
			continue
		}
		n++
		r := Rem(fmt64, ua, ub)
		if r.Flags != 0 {
			t.Fatalf("ERR: rem(0x%016X, 0x%016X) raised flags %d", xa, xb, r.Flags)
		}
		got := pack64(r)
		want := math.Float64bits(math.Remainder(math.Float64frombits(xa), math.Float64frombits(xb)))
		if got != want {
			t.Fatalf("ERR: rem(0x%016X, 0x%016X) -> 0x%016X, expected 0x%016X", xa, xb, got, want)
		}
	}
}

func TestAddVsHost32(t *testing.T) {
	rng := newTestRNG("arith add 32")
	for n := 0; n < 30000; {
		v := rng.next64()
		xa := uint32(v)
		xb := uint32(v >> 32)
		if rng.next64()&1 == 0 {
			xb = closePair32(xa, xb)
		}
		ua, oka := unpack32(xa)
		ub, okb := unpack32(xb)
		if !oka || !okb {
			continue
		}
		n++
		got := pack32(Add(fmt32, NearEven, true, ua, ub))
		want := math.Float32bits(math.Float32frombits(xa) + math.Float32frombits(xb))
		if got != want {
			t.Fatalf("ERR: 0x%08X + 0x%08X -> 0x%08X, expected 0x%08X", xa, xb, got, want)
		}
	}
}

func TestMulVsHost32(t *testing.T) {
	rng := newTestRNG("arith mul 32")
	for n := 0; n < 30000; {
		v := rng.next64()
		xa := uint32(v)
		xb := uint32(v >> 32)
		ua, oka := unpack32(xa)
		ub, okb := unpack32(xb)
		if !oka || !okb {
			continue
		}
		n++
		got := pack32(Mul(fmt32, NearEven, true, ua, ub))
		want := math.Float32bits(math.Float32frombits(xa) * math.Float32frombits(xb))
		if got != want {
			t.Fatalf("ERR: 0x%08X * 0x%08X -> 0x%08X, expected 0x%08X", xa, xb, got, want)
		}
	}
}

func TestDivVsHost32(t *testing.T) {
	rng := newTestRNG("arith div 32")
	for n := 0; n < 20000; {
		v := rng.next64()
		xa := uint32(v)
		xb := uint32(v >> 32)
		ua, oka := unpack32(xa)
		ub, okb := unpack32(xb)
		if !oka || !okb {
			continue
		}
		n++
		got := pack32(Div(fmt32, NearEven, true, ua, ub))
		want := math.Float32bits(math.Float32frombits(xa) / math.Float32frombits(xb))
		if got != want {
			t.Fatalf("ERR: 0x%08X / 0x%08X -> 0x%08X, expected 0x%08X", xa, xb, got, want)
		}
	}
}

func TestSqrtVsHost32(t *testing.T) {
	rng := newTestRNG("arith sqrt 32")
	for n := 0; n < 20000; {
		xa := uint32(rng.next64()) &^ (uint32(1) << 31)
		ua, ok := unpack32(xa)
		if !ok {
			continue
		}
		n++
		got := pack32(Sqrt(fmt32, NearEven, true, ua))
		want := math.Float32bits(float32(math.Sqrt(float64(math.Float32frombits(xa)))))
		if got != want {
			t.Fatalf("ERR: sqrt(0x%08X) -> 0x%08X, expected 0x%08X", xa, got, want)
		}
	}
}
