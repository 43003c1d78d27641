package arith

// MulAdd computes a*b + c with a single rounding into f. All three
// operands must be finite and nonzero. The exact double-width product
// is aligned against the addend in a 256-bit window, wide enough that
// even a binary128 product (226 bits) keeps its sticky information
// below the rounding point.
func MulAdd(f Format, rm Mode, tinyAfter bool, a, b, c Unpacked) Rounded {
	pm, pe := alignTo256(mul128(a.Sig, b.Sig), a.Exp+b.Exp, fmaAnchor)
	cm, ce := alignTo(c, fmaAnchor)

	x := aligned{sign: a.Sign != b.Sign, exp: pe, mag: pm}
	y := aligned{sign: c.Sign, exp: ce, mag: cm}
	return addAligned(f, rm, tinyAfter, x, y)
}
