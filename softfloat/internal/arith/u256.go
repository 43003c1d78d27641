package arith

import "math/bits"

// u256 is an unsigned 256-bit integer; w[0] is the least significant
// word. It is the working width for aligned additions and for the full
// product of two 128-bit significands.
type u256 struct {
	w [4]uint64
}

func u256From128(x U128) u256 {
	return u256{w: [4]uint64{x.Lo, x.Hi, 0, 0}}
}

// toU128 truncates to the low 128 bits. Callers must guarantee that
// the high words are zero.
func (x u256) toU128() U128 {
	return U128{Hi: x.w[1], Lo: x.w[0]}
}

func (x u256) isZero() bool {
	return x.w[0]|x.w[1]|x.w[2]|x.w[3] == 0
}

// bitLen returns the position of the highest set bit plus one, 0 for a
// zero value.
func (x u256) bitLen() int32 {
	for i := 3; i >= 0; i-- {
		if x.w[i] != 0 {
			return int32(64*i + bits.Len64(x.w[i]))
		}
	}
	return 0
}

// bit reports whether bit i is set. Out-of-range positions read as 0.
func (x u256) bit(i int32) bool {
	if i < 0 || i >= 256 {
		return false
	}
	return (x.w[i>>6]>>(uint(i)&63))&1 != 0
}

// anyBelow reports whether any bit strictly below position i is set.
// Positions at or above 256 cover the whole value.
func (x u256) anyBelow(i int32) bool {
	if i <= 0 {
		return false
	}
	if i >= 256 {
		return !x.isZero()
	}
	k := int(i >> 6)
	for j := 0; j < k; j++ {
		if x.w[j] != 0 {
			return true
		}
	}
	return x.w[k]&(1<<(uint(i)&63)-1) != 0
}

// shl shifts left by k bits. Bits shifted past bit 255 are lost; the
// callers arrange for k to stay within the headroom.
func (x u256) shl(k int32) u256 {
	if k <= 0 {
		return x
	}
	if k >= 256 {
		return u256{}
	}
	w, off := int(k>>6), uint(k)&63
	var r u256
	for i := 3; i >= w; i-- {
		v := x.w[i-w] << off
		if off != 0 && i-w > 0 {
			v |= x.w[i-w-1] >> (64 - off)
		}
		r.w[i] = v
	}
	return r
}

// shr shifts right by k bits, discarding the shifted-out bits.
func (x u256) shr(k int32) u256 {
	if k <= 0 {
		return x
	}
	if k >= 256 {
		return u256{}
	}
	w, off := int(k>>6), uint(k)&63
	var r u256
	for i := 0; i+w <= 3; i++ {
		v := x.w[i+w] >> off
		if off != 0 && i+w < 3 {
			v |= x.w[i+w+1] << (64 - off)
		}
		r.w[i] = v
	}
	return r
}

// shrJam shifts right by k bits and jams any discarded set bit into
// bit 0, preserving the "nonzero below this point" information that
// rounding needs.
func (x u256) shrJam(k int32) u256 {
	if k <= 0 {
		return x
	}
	if k >= 256 {
		var r u256
		if !x.isZero() {
			r.w[0] = 1
		}
		return r
	}
	r := x.shr(k)
	if x.anyBelow(k) {
		r.w[0] |= 1
	}
	return r
}

func (x u256) add(y u256) u256 {
	var r u256
	var c uint64
	r.w[0], c = bits.Add64(x.w[0], y.w[0], 0)
	r.w[1], c = bits.Add64(x.w[1], y.w[1], c)
	r.w[2], c = bits.Add64(x.w[2], y.w[2], c)
	r.w[3], _ = bits.Add64(x.w[3], y.w[3], c)
	return r
}

// sub computes x - y; x must not be less than y.
func (x u256) sub(y u256) u256 {
	var r u256
	var b uint64
	r.w[0], b = bits.Sub64(x.w[0], y.w[0], 0)
	r.w[1], b = bits.Sub64(x.w[1], y.w[1], b)
	r.w[2], b = bits.Sub64(x.w[2], y.w[2], b)
	r.w[3], _ = bits.Sub64(x.w[3], y.w[3], b)
	return r
}

func (x u256) cmp(y u256) int {
	for i := 3; i >= 0; i-- {
		switch {
		case x.w[i] < y.w[i]:
			return -1
		case x.w[i] > y.w[i]:
			return 1
		}
	}
	return 0
}

// setBit returns x with bit i set; i must be in [0, 255].
func (x u256) setBit(i int32) u256 {
	x.w[i>>6] |= 1 << (uint(i) & 63)
	return x
}

// mul128 returns the full 256-bit product of two 128-bit values.
func mul128(a, b U128) u256 {
	hll, lll := bits.Mul64(a.Lo, b.Lo)
	hlh, llh := bits.Mul64(a.Lo, b.Hi)
	hhl, lhl := bits.Mul64(a.Hi, b.Lo)
	hhh, lhh := bits.Mul64(a.Hi, b.Hi)

	var r u256
	var c1, c2, c uint64
	r.w[0] = lll
	r.w[1], c1 = bits.Add64(hll, llh, 0)
	r.w[1], c2 = bits.Add64(r.w[1], lhl, 0)
	r.w[2], c = bits.Add64(hlh, hhl, c1)
	c3 := c
	r.w[2], c = bits.Add64(r.w[2], lhh, c2)
	c3 += c
	r.w[3] = hhh + c3
	return r
}
