package arith

// addAnchor is the bit position the leading significand bit is aligned
// to before an addition. It leaves 64 bits of carry headroom above and
// enough window below that aligning a 128-bit significand by up to 64
// places drops nothing; larger alignments can only occur when the
// exponents differ by more than one, where at most one leading bit
// cancels and a sticky jam at bit 0 stays safely below the rounding
// point.
const addAnchor = 191

// fmaAnchor plays the same role for the fused multiply-add, where the
// product side carries up to 256 significand bits worth of information
// in 226 bits.
const fmaAnchor = 239

// alignTo normalizes u's significand so its leading bit sits at the
// given anchor, compensating in the returned exponent.
func alignTo(u Unpacked, anchor int32) (u256, int32) {
	return alignTo256(u256From128(u.Sig), u.Exp, anchor)
}

func alignTo256(m u256, exp int32, anchor int32) (u256, int32) {
	s := anchor + 1 - m.bitLen()
	return m.shl(s), exp - s
}

// Add computes a + b rounded into f, signs included. Both operands
// must be finite and nonzero; the caller screens special values and
// expresses subtraction by negating b's sign.
func Add(f Format, rm Mode, tinyAfter bool, a, b Unpacked) Rounded {
	return addAligned(f, rm, tinyAfter, alignedOperand(a), alignedOperand(b))
}

type aligned struct {
	sign bool
	exp  int32
	mag  u256
}

func alignedOperand(u Unpacked) aligned {
	m, e := alignTo(u, addAnchor)
	return aligned{sign: u.Sign, exp: e, mag: m}
}

// addAligned adds two magnitude-aligned operands. Both magnitudes have
// their leading bit at the same anchor, so ordering by |value| is a
// lexicographic comparison of exponent then magnitude.
func addAligned(f Format, rm Mode, tinyAfter bool, x, y aligned) Rounded {
	if x.exp < y.exp || (x.exp == y.exp && x.mag.cmp(y.mag) < 0) {
		x, y = y, x
	}
	ym := y.mag.shrJam(x.exp - y.exp)

	var m u256
	if x.sign == y.sign {
		m = x.mag.add(ym)
	} else {
		m = x.mag.sub(ym)
		if m.isZero() {
			// Exact cancellation of nonzero operands: the zero is
			// positive in every mode except toward negative infinity.
			return Rounded{Sign: rm == Min}
		}
	}
	return roundPack(f, rm, tinyAfter, x.sign, x.exp, m)
}
