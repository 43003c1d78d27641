package arith

// Mul computes a * b rounded into f. The full 256-bit product feeds
// the rounding step, so no information is lost beforehand.
func Mul(f Format, rm Mode, tinyAfter bool, a, b Unpacked) Rounded {
	return roundPack(f, rm, tinyAfter, a.Sign != b.Sign, a.Exp+b.Exp, mul128(a.Sig, b.Sig))
}

// Div computes a / b rounded into f by restoring long division. The
// quotient is developed to Prec+3 bits and the final remainder is
// jammed into the sticky bit, which keeps the rounding decision exact.
func Div(f Format, rm Mode, tinyAfter bool, a, b Unpacked) Rounded {
	num, sa := norm128(a.Sig)
	den, sb := norm128(b.Sig)

	// With both significands normalized to bit 127 the ratio lies in
	// (1/2, 2), so n iterations produce a quotient of n or n-1 bits.
	n := f.Prec + 3
	r := u256From128(num)
	d := u256From128(den)
	var q U128
	for i := int32(0); i < n; i++ {
		q = q.Shl(1)
		if r.cmp(d) >= 0 {
			r = r.sub(d)
			q.Lo |= 1
		}
		if i < n-1 {
			r = r.shl(1)
		}
	}
	if !r.isZero() {
		q.Lo |= 1
	}
	exp := (a.Exp - sa) - (b.Exp - sb) - (n - 1)
	return roundPack(f, rm, tinyAfter, a.Sign != b.Sign, exp, u256From128(q))
}
