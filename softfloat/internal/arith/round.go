package arith

// roundsUp decides whether dropping the d lowest bits of the magnitude
// m rounds the result away from zero under the given mode. d must be
// at least 1; bit d-1 of m is the half-way bit and everything below it
// is the sticky rest.
func roundsUp(rm Mode, sign bool, m u256, d int32) bool {
	switch rm {
	case NearEven:
		return m.bit(d-1) && (m.anyBelow(d-1) || m.bit(d))
	case NearMaxMag:
		return m.bit(d - 1)
	case MinMag:
		return false
	case Min:
		return sign && m.anyBelow(d)
	case Max:
		return !sign && m.anyBelow(d)
	}
	return false
}

// Round rounds a finite nonzero unpacked value into format f. It is
// the entry point used for format conversions and integer-to-float
// constructions; the arithmetic operations reach the same code through
// roundPack.
func Round(f Format, rm Mode, tinyAfter bool, a Unpacked) Rounded {
	return roundPack(f, rm, tinyAfter, a.Sign, a.Exp, u256From128(a.Sig))
}

// roundPack rounds the magnitude m * 2^exp into format f. m must be
// nonzero; bit 0 of m may carry a sticky jam from an earlier shift.
// tinyAfter selects tininess detection after rounding (as if the
// exponent range were unbounded) instead of before rounding.
func roundPack(f Format, rm Mode, tinyAfter bool, sign bool, exp int32, m u256) Rounded {
	p := f.Prec
	b := m.bitLen()
	t := exp + b - 1
	emin, emax := f.emin(), f.emax()

	if t >= emin {
		d := b - p
		if d <= 0 {
			// Exact at the destination precision. The value can
			// still sit beyond the finite range.
			if t > emax {
				return overflowOut(sign)
			}
			r := m.shl(-d).toU128()
			return Rounded{Sign: sign, Exp: uint32(t + f.bias()), Frac: r.And(Ones(p - 1))}
		}
		inexact := m.anyBelow(d)
		r := m.shr(d).toU128()
		if roundsUp(rm, sign, m, d) {
			r = r.Add64(1)
		}
		if r.Bit(p) {
			// Carry out of the significand: the result is an exact
			// power of two one binade up.
			r = r.Shr(1)
			t++
		}
		if t > emax {
			return overflowOut(sign)
		}
		var fl Flags
		if inexact {
			fl = Inexact
		}
		return Rounded{Sign: sign, Exp: uint32(t + f.bias()), Frac: r.And(Ones(p - 1)), Flags: fl}
	}

	// Below the normal range: round on the subnormal quantum
	// 2^(emin-p+1). Tininess holds unless, with an unbounded exponent
	// range, rounding at full precision would carry the value up to
	// exactly 2^emin.
	tiny := true
	if tinyAfter && t == emin-1 {
		if d := b - p; d > 0 && m.shr(d).toU128().Cmp(Ones(p)) == 0 && roundsUp(rm, sign, m, d) {
			tiny = false
		}
	}
	sh := (emin - p + 1) - exp
	var r U128
	inexact := false
	if sh <= 0 {
		r = m.shl(-sh).toU128()
	} else {
		inexact = m.anyBelow(sh)
		r = m.shr(sh).toU128()
		if roundsUp(rm, sign, m, sh) {
			r = r.Add64(1)
		}
	}
	var fl Flags
	if inexact {
		fl = Inexact
		if tiny {
			fl |= Underflow
		}
	}
	if r.Bit(p - 1) {
		// Rounded up to the smallest normal.
		return Rounded{Sign: sign, Exp: 1, Flags: fl}
	}
	return Rounded{Sign: sign, Exp: 0, Frac: r, Flags: fl}
}

func overflowOut(sign bool) Rounded {
	return Rounded{Sign: sign, Flags: Overflow | Inexact}
}
