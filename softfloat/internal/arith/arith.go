// Package arith is the arithmetic kernel behind the softfloat package:
// bit-accurate rounding arithmetic on unpacked significands. The caller
// (the softfloat engine) unpacks operand bit patterns, screens NaN,
// infinity and zero special cases, and hands the kernel only finite
// nonzero magnitudes; the kernel computes the exact-or-rounded result
// for a destination format and reports the inexact/underflow/overflow
// conditions it observed. Packing the fields back into a bit pattern,
// substituting overflow values and merging flags into the caller's
// sticky accumulator are the caller's business.
//
// All six supported formats share one engine. Significands travel as
// 256-bit integers so that every operation, including the 113x113-bit
// product inside a binary128 fused multiply-add, is computed exactly
// before the single final rounding step.
package arith

import "math/bits"

// Format describes a destination format for rounding: the exponent
// field width and the significand precision (fraction bits plus the
// leading integer bit).
type Format struct {
	ExpBits uint32
	Prec    int32
}

func (f Format) bias() int32 { return int32(1)<<(f.ExpBits-1) - 1 }

// emin and emax bound the exponent of the leading significand bit of a
// normal value.
func (f Format) emin() int32 { return 1 - f.bias() }
func (f Format) emax() int32 { return f.bias() }

// Mode is a rounding mode. The values match the Berkeley SoftFloat
// encoding.
type Mode uint8

const (
	// NearEven rounds to nearest, ties to the even significand.
	NearEven Mode = iota
	// MinMag rounds toward zero.
	MinMag
	// Min rounds toward negative infinity.
	Min
	// Max rounds toward positive infinity.
	Max
	// NearMaxMag rounds to nearest, ties away from zero.
	NearMaxMag
)

// Flags is a set of exception conditions. The bit values match the
// Berkeley SoftFloat flag bits; the kernel itself only ever reports
// Inexact, Underflow and Overflow, the caller raises Infinite and
// Invalid from its special-case tables.
type Flags uint8

const (
	Inexact   Flags = 1 << iota // result differs from the exact value
	Underflow                   // tiny and inexact
	Overflow                    // exact value beyond the finite range
	Infinite                    // division by zero
	Invalid                     // invalid operation
)

// Unpacked is a finite nonzero value in sign-magnitude form:
// (-1)^Sign * Sig * 2^Exp. Sig may carry any normalization; only
// Sig != 0 is required.
type Unpacked struct {
	Sign bool
	Exp  int32
	Sig  U128
}

// Rounded is a value rounded into a destination format, as raw fields:
// a biased exponent and the fraction with the hidden bit stripped.
// When Flags contains Overflow the fields are meaningless and the
// caller substitutes the mode-dependent overflow value. A zero value
// with a sign is encoded as Exp == 0, Frac == 0.
type Rounded struct {
	Sign  bool
	Exp   uint32
	Frac  U128
	Flags Flags
}

// Range classifies an integer conversion result.
type Range uint8

const (
	RangeOK  Range = iota // value representable after rounding
	RangePos              // beyond the positive bound
	RangeNeg              // beyond the negative bound
)

// U128 is an unsigned 128-bit integer.
type U128 struct {
	Hi, Lo uint64
}

func (x U128) IsZero() bool { return x.Hi|x.Lo == 0 }

// BitLen returns the position of the highest set bit plus one, 0 for a
// zero value.
func (x U128) BitLen() int32 {
	if x.Hi != 0 {
		return int32(64 + bits.Len64(x.Hi))
	}
	return int32(bits.Len64(x.Lo))
}

// Bit reports whether bit i is set. Out-of-range positions read as 0.
func (x U128) Bit(i int32) bool {
	if i < 0 || i >= 128 {
		return false
	}
	if i >= 64 {
		return (x.Hi>>(uint(i)-64))&1 != 0
	}
	return (x.Lo>>uint(i))&1 != 0
}

func (x U128) Shl(k int32) U128 {
	if k <= 0 {
		return x
	}
	if k >= 128 {
		return U128{}
	}
	if k >= 64 {
		return U128{Hi: x.Lo << (uint(k) - 64)}
	}
	return U128{Hi: x.Hi<<uint(k) | x.Lo>>(64-uint(k)), Lo: x.Lo << uint(k)}
}

func (x U128) Shr(k int32) U128 {
	if k <= 0 {
		return x
	}
	if k >= 128 {
		return U128{}
	}
	if k >= 64 {
		return U128{Lo: x.Hi >> (uint(k) - 64)}
	}
	return U128{Hi: x.Hi >> uint(k), Lo: x.Lo>>uint(k) | x.Hi<<(64-uint(k))}
}

func (x U128) And(y U128) U128 { return U128{Hi: x.Hi & y.Hi, Lo: x.Lo & y.Lo} }
func (x U128) Or(y U128) U128  { return U128{Hi: x.Hi | y.Hi, Lo: x.Lo | y.Lo} }

func (x U128) Add64(v uint64) U128 {
	lo, c := bits.Add64(x.Lo, v, 0)
	return U128{Hi: x.Hi + c, Lo: lo}
}

// Sub computes x - y; x must not be less than y.
func (x U128) Sub(y U128) U128 {
	lo, borrow := bits.Sub64(x.Lo, y.Lo, 0)
	hi, _ := bits.Sub64(x.Hi, y.Hi, borrow)
	return U128{Hi: hi, Lo: lo}
}

func (x U128) Cmp(y U128) int {
	switch {
	case x.Hi != y.Hi:
		if x.Hi < y.Hi {
			return -1
		}
		return 1
	case x.Lo != y.Lo:
		if x.Lo < y.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// Ones returns a mask of the n lowest bits.
func Ones(n int32) U128 {
	switch {
	case n <= 0:
		return U128{}
	case n >= 128:
		return U128{Hi: ^uint64(0), Lo: ^uint64(0)}
	case n >= 64:
		return U128{Hi: 1<<(uint(n)-64) - 1, Lo: ^uint64(0)}
	}
	return U128{Lo: 1<<uint(n) - 1}
}

// norm128 shifts x so its leading bit is bit 127 and returns the shift
// amount. x must be nonzero.
func norm128(x U128) (U128, int32) {
	s := 128 - x.BitLen()
	return x.Shl(s), s
}

// Cmp orders two finite nonzero values, signs included.
func Cmp(a, b Unpacked) int {
	if a.Sign != b.Sign {
		if a.Sign {
			return -1
		}
		return 1
	}
	ma, sa := norm128(a.Sig)
	mb, sb := norm128(b.Sig)
	var c int
	switch ta, tb := a.Exp-sa, b.Exp-sb; {
	case ta < tb:
		c = -1
	case ta > tb:
		c = 1
	default:
		c = ma.Cmp(mb)
	}
	if a.Sign {
		c = -c
	}
	return c
}
