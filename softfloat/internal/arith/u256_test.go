package arith

import "testing"

func TestU256Shifts(t *testing.T) {
	x := u256{w: [4]uint64{0x0123456789ABCDEF, 0xFEDCBA9876543210, 0x0F1E2D3C4B5A6978, 0x8796A5B4C3D2E1F0}}
	for _, k := range []int32{0, 1, 7, 63, 64, 65, 127, 128, 129, 191, 192, 255, 256, 300} {
		l := x.shl(k)
		r := x.shr(k)
		for i := int32(0); i < 256; i++ {
			want := x.bit(i - k)
			if l.bit(i) != want {
				t.Fatalf("ERR: shl %d bit %d", k, i)
			}
			want = x.bit(i + k)
			if r.bit(i) != want {
				t.Fatalf("ERR: shr %d bit %d", k, i)
			}
		}
	}
}

func TestU256ShrJam(t *testing.T) {
	x := u256{w: [4]uint64{1 << 10, 0, 1, 0}}
	if got := x.shrJam(10); got.w[0]&1 != 1 || got.w[0]>>1 != 0 {
		// bit 10 lands exactly on bit 0, nothing below was dropped
		t.Fatalf("ERR: jam landed wrong: %v", got)
	}
	if got := x.shrJam(11); got.w[0] != 1 {
		// the set bit is dropped and must leave a jam
		t.Fatalf("ERR: dropped bit not jammed: %v", got)
	}
	if got := x.shrJam(300); got.w[0] != 1 {
		t.Fatalf("ERR: full shift of nonzero not jammed: %v", got)
	}
	if got := (u256{}).shrJam(300); !got.isZero() {
		t.Fatalf("ERR: full shift of zero jammed: %v", got)
	}
}

func TestU256BitScan(t *testing.T) {
	var x u256
	if x.bitLen() != 0 || x.anyBelow(256) {
		t.Fatalf("ERR: zero scan")
	}
	x = x.setBit(130)
	if x.bitLen() != 131 {
		t.Fatalf("ERR: bitLen %d", x.bitLen())
	}
	if x.anyBelow(130) || !x.anyBelow(131) {
		t.Fatalf("ERR: anyBelow around the set bit")
	}
	x = x.setBit(0)
	if !x.anyBelow(1) {
		t.Fatalf("ERR: anyBelow(1) missed bit 0")
	}
}

func TestMul128(t *testing.T) {
	// (2^127 - 1)^2 = 2^254 - 2^128 + 1
	a := U128{Hi: 1<<63 - 1, Lo: ^uint64(0)}
	got := mul128(a, a)
	want := u256{w: [4]uint64{1, 0, ^uint64(0), 0x3FFFFFFFFFFFFFFF}}
	if got != want {
		t.Fatalf("ERR: mul128 = %016X %016X %016X %016X", got.w[3], got.w[2], got.w[1], got.w[0])
	}
	// Cross-check 64x64 products against the direct 128-bit result.
	rng := newTestRNG("u256 mul")
	for n := 0; n < 1000; n++ {
		x := rng.next64()
		y := rng.next64()
		p := mul128(U128{Lo: x}, U128{Lo: y})
		q := mul128(U128{Hi: x}, U128{Lo: y})
		if p.w[2] != 0 || p.w[3] != 0 {
			t.Fatalf("ERR: 64x64 product spilled: %v", p)
		}
		if q.w[0] != 0 || q.w[1] != p.w[0] || q.w[2] != p.w[1] || q.w[3] != 0 {
			t.Fatalf("ERR: shifted product mismatch: %v vs %v", q, p)
		}
	}
}

func TestU256AddSub(t *testing.T) {
	rng := newTestRNG("u256 addsub")
	for n := 0; n < 1000; n++ {
		var x, y u256
		for i := range x.w {
			x.w[i] = rng.next64()
			y.w[i] = rng.next64()
		}
		s := x.add(y)
		if d := s.sub(y); d != x {
			t.Fatalf("ERR: add/sub roundtrip: %v", d)
		}
		if x.cmp(y) != -y.cmp(x) {
			t.Fatalf("ERR: cmp asymmetry")
		}
	}
}
