package arith

// Rem computes the IEEE 754 remainder a - n*b, where n is a/b rounded
// to the nearest integer with ties to even. Operands must be finite
// and nonzero. The remainder is always exact, so no rounding mode is
// involved and no flags can arise; a zero remainder takes the sign
// of a.
func Rem(f Format, a, b Unpacked) Rounded {
	na, sa := norm128(a.Sig)
	nb, sb := norm128(b.Sig)
	ea, eb := a.Exp-sa, b.Exp-sb
	d := ea - eb

	if d < -1 {
		// |a| < |b|/2 (boundary included, where the tie keeps n = 0):
		// the quotient rounds to zero and a survives unchanged.
		return packExact(f, a)
	}
	if d == -1 {
		// |a|/|b| lies in (1/4, 1): n is 0 or 1, decided by comparing
		// 2|a| against |b|. Equality is a tie resolved toward n = 0.
		if na.Cmp(nb) > 0 {
			m := u256From128(nb).shl(1).sub(u256From128(na))
			return packRem(f, !a.Sign, eb-1, m)
		}
		return packExact(f, a)
	}

	// Binary long division of |a| by |b|, keeping the remainder and
	// the quotient parity. d can reach the full exponent span of the
	// format, so only O(d) word operations are spent per digit.
	r := u256From128(na)
	den := u256From128(nb)
	var q uint64
	for i := int32(0); i <= d; i++ {
		q <<= 1
		if r.cmp(den) >= 0 {
			r = r.sub(den)
			q |= 1
		}
		if i < d {
			r = r.shl(1)
		}
	}

	// r = |a| mod |b| at scale 2^eb. Move to the nearest multiple of
	// |b|, with the parity of the integer quotient breaking ties.
	sign := a.Sign
	twice := r.shl(1)
	if c := twice.cmp(den); c > 0 || (c == 0 && q&1 == 1) {
		r = den.sub(r)
		sign = !sign
	}
	if r.isZero() {
		return Rounded{Sign: a.Sign}
	}
	return packRem(f, sign, eb, r)
}

// packExact repacks a value already representable in f; it cannot set
// any flag.
func packExact(f Format, a Unpacked) Rounded {
	return roundPack(f, NearEven, false, a.Sign, a.Exp, u256From128(a.Sig))
}

func packRem(f Format, sign bool, exp int32, m u256) Rounded {
	return roundPack(f, NearEven, false, sign, exp, m)
}
