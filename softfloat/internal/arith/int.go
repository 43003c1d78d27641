package arith

// ToInt rounds a to an integer and checks it against a destination of
// the given width (32 or 64), signed or unsigned. It returns the
// magnitude of the result, whether rounding discarded information, and
// the range status. Out-of-range results report no inexactness; the
// caller raises invalid and substitutes the saturation value instead.
// Negative values that round to zero are in range for any destination.
func ToInt(rm Mode, a Unpacked, width uint32, signed bool) (uint64, bool, Range) {
	t := a.Exp + a.Sig.BitLen() - 1
	if t >= 66 {
		// Far beyond any 64-bit bound; avoids building huge shifts.
		if a.Sign {
			return 0, false, RangeNeg
		}
		return 0, false, RangePos
	}

	m := u256From128(a.Sig)
	var r U128
	inexact := false
	if a.Exp >= 0 {
		r = m.shl(a.Exp).toU128()
	} else {
		d := -a.Exp
		inexact = m.anyBelow(d)
		r = m.shr(d).toU128()
		if roundsUp(rm, a.Sign, m, d) {
			r = r.Add64(1)
		}
	}

	if a.Sign {
		if !signed {
			if r.IsZero() {
				return 0, inexact, RangeOK
			}
			return 0, false, RangeNeg
		}
		bound := U128{Lo: 1}.Shl(int32(width) - 1)
		if r.Cmp(bound) > 0 {
			return 0, false, RangeNeg
		}
		// Equality is exactly the minimum representable value.
		return r.Lo, inexact, RangeOK
	}
	nb := int32(width)
	if signed {
		nb--
	}
	if r.Cmp(U128{Lo: 1}.Shl(nb)) >= 0 {
		return 0, false, RangePos
	}
	return r.Lo, inexact, RangeOK
}

// ToIntegral rounds a to an integral value without any format
// constraint. The result is exact by construction; the second return
// value reports that the result is zero (the caller keeps a's sign).
func ToIntegral(rm Mode, a Unpacked) (Unpacked, bool) {
	if a.Exp >= 0 {
		return a, false
	}
	m := u256From128(a.Sig)
	d := -a.Exp
	r := m.shr(d).toU128()
	if roundsUp(rm, a.Sign, m, d) {
		r = r.Add64(1)
	}
	if r.IsZero() {
		return Unpacked{Sign: a.Sign}, true
	}
	return Unpacked{Sign: a.Sign, Sig: r}, false
}
