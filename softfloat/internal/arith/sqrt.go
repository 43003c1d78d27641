package arith

// Sqrt computes the square root of a rounded into f. a must be finite,
// nonzero and positive. The root is developed bit by bit (restoring
// method) with enough excess precision that the remainder reduces to a
// sticky jam.
func Sqrt(f Format, rm Mode, tinyAfter bool, a Unpacked) Rounded {
	sig, s := norm128(a.Sig)
	e := a.Exp - s
	m := u256From128(sig)
	if e&1 != 0 {
		m = m.shl(1)
		e--
	}

	// Scale by an even amount so the root carries at least Prec+3
	// bits. Small formats already start with plenty.
	k := 2*(f.Prec+3) - m.bitLen()
	if k < 0 {
		k = 0
	}
	k &^= 1
	m = m.shl(k)
	e -= k

	rootBits := (m.bitLen() + 1) / 2
	rem := m
	var root u256
	for j := rootBits - 1; j >= 0; j-- {
		// (root + 2^j)^2 - root^2 = root*2^(j+1) + 2^(2j)
		trial := root.shl(j + 1).add(u256{}.setBit(2 * j))
		if rem.cmp(trial) >= 0 {
			rem = rem.sub(trial)
			root = root.setBit(j)
		}
	}
	if !rem.isZero() {
		root.w[0] |= 1
	}
	return roundPack(f, rm, tinyAfter, false, e/2, root)
}
