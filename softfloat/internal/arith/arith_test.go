package arith

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// Kernel tests cross-check the emulated arithmetic against the host
// FPU: for finite float64/float32 operands under round-to-nearest the
// host result is the correctly rounded one, so the kernel must agree
// bit for bit. Operand streams come from SHAKE256 so failures
// reproduce exactly on any machine.

var fmt64 = Format{ExpBits: 11, Prec: 53}
var fmt32 = Format{ExpBits: 8, Prec: 24}

type testRNG struct {
	sh sha3.ShakeHash
}

func newTestRNG(seed string) *testRNG {
	sh := sha3.NewShake256()
	sh.Write([]byte(seed))
	return &testRNG{sh: sh}
}

func (r *testRNG) next64() uint64 {
	var buf [8]byte
	r.sh.Read(buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

// unpack64 splits a float64 bit pattern into kernel form; the second
// return value is false for zero, infinity and NaN, which the kernel
// does not accept.
func unpack64(x uint64) (Unpacked, bool) {
	sign := x>>63 != 0
	exp := int32(x>>52) & 0x7FF
	frac := x & (1<<52 - 1)
	switch {
	case exp == 0x7FF:
		return Unpacked{}, false
	case exp == 0:
		if frac == 0 {
			return Unpacked{}, false
		}
		return Unpacked{Sign: sign, Exp: -1074, Sig: U128{Lo: frac}}, true
	}
	return Unpacked{Sign: sign, Exp: exp - 1075, Sig: U128{Lo: frac | 1<<52}}, true
}

func unpack32(x uint32) (Unpacked, bool) {
	sign := x>>31 != 0
	exp := int32(x>>23) & 0xFF
	frac := uint64(x & (1<<23 - 1))
	switch {
	case exp == 0xFF:
		return Unpacked{}, false
	case exp == 0:
		if frac == 0 {
			return Unpacked{}, false
		}
		return Unpacked{Sign: sign, Exp: -149, Sig: U128{Lo: frac}}, true
	}
	return Unpacked{Sign: sign, Exp: exp - 150, Sig: U128{Lo: frac | 1<<23}}, true
}

// pack64m assembles a float64 bit pattern from a rounded result,
// substituting the destination the given mode prescribes on overflow.
func pack64m(r Rounded, rm Mode) uint64 {
	var s uint64
	if r.Sign {
		s = 1 << 63
	}
	if r.Flags&Overflow != 0 {
		inf := s | 0x7FF0000000000000
		max := s | 0x7FEFFFFFFFFFFFFF
		switch rm {
		case MinMag:
			return max
		case Min:
			if r.Sign {
				return inf
			}
			return max
		case Max:
			if r.Sign {
				return max
			}
			return inf
		}
		return inf
	}
	return s | uint64(r.Exp)<<52 | r.Frac.Lo
}

func pack64(r Rounded) uint64 {
	return pack64m(r, NearEven)
}

func pack32(r Rounded) uint32 {
	var s uint32
	if r.Sign {
		s = 1 << 31
	}
	if r.Flags&Overflow != 0 {
		return s | 0x7F800000
	}
	return s | r.Exp<<23 | uint32(r.Frac.Lo)
}

// closePair64 rewrites b's exponent to sit within two binades of a's,
// so that alignment, cancellation and rounding paths all get traffic;
// uniformly random exponents would almost always make the sum collapse
// to the larger operand.
func closePair64(xa, xb uint64) uint64 {
	e := int64(xa>>52&0x7FF) + int64(xb>>52&0x7FF)%5 - 2
	if e < 0 {
		e = 0
	}
	if e > 0x7FE {
		e = 0x7FE
	}
	return xb&^(uint64(0x7FF)<<52) | uint64(e)<<52
}

func closePair32(xa, xb uint32) uint32 {
	e := int64(xa>>23&0xFF) + int64(xb>>23&0xFF)%5 - 2
	if e < 0 {
		e = 0
	}
	if e > 0xFE {
		e = 0xFE
	}
	return xb&^(uint32(0xFF)<<23) | uint32(e)<<23
}
