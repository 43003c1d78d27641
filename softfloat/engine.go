package softfloat

import "github.com/dalance/go-softfloat/softfloat/internal/arith"

// The engine functions implement one operation each over decoded bit
// patterns: screen the special operand classes, hand finite nonzero
// values to the arithmetic kernel, fold the rounded result back into
// an encoding, and merge flags into the caller's accumulator. The
// concrete float types are thin wrappers over these.

// packRounded folds a kernel result into an encoding, substituting the
// mode's overflow destination when the kernel reports overflow.
func packRounded(ctx *Context, fi *fmtInfo, rm RoundingMode, r arith.Rounded) arith.U128 {
	ctx.Raise(Flags(r.Flags))
	if r.Flags&arith.Overflow != 0 {
		return overflowValue(fi, rm, r.Sign)
	}
	return fi.packResult(r)
}

// overflowValue is the IEEE 754 overflow substitution: infinity when
// the mode rounds away from the value's sign side of zero, otherwise
// the largest finite value.
func overflowValue(fi *fmtInfo, rm RoundingMode, sign bool) arith.U128 {
	toInf := true
	switch rm {
	case TowardZero:
		toInf = false
	case TowardPositive:
		toInf = !sign
	case TowardNegative:
		toInf = sign
	}
	if toInf {
		return fi.inf(sign)
	}
	return fi.maxFinite(sign)
}

func addBits(ctx *Context, pol *nanPolicy, fi *fmtInfo, rm RoundingMode, a, b arith.U128, negate bool) arith.U128 {
	va := fi.decode(a)
	vb := fi.decode(b)
	if va.isNaN() || vb.isNaN() {
		return pol.propagate(ctx, fi, va, vb)
	}
	if negate {
		vb.sign = !vb.sign
	}
	switch {
	case va.cls == clsInf && vb.cls == clsInf:
		if va.sign != vb.sign {
			ctx.Raise(FlagInvalid)
			return pol.defaultNaN(fi)
		}
		return fi.inf(va.sign)
	case va.cls == clsInf:
		return fi.inf(va.sign)
	case vb.cls == clsInf:
		return fi.inf(vb.sign)
	case va.cls == clsZero && vb.cls == clsZero:
		if va.sign == vb.sign {
			return fi.zero(va.sign)
		}
		return fi.zero(rm == TowardNegative)
	case va.cls == clsZero:
		return vb.bits()
	case vb.cls == clsZero:
		return va.bits()
	}
	r := arith.Add(fi.kf, rm.kernel(), pol.tinyAfter, va.unpacked(), vb.unpacked())
	return packRounded(ctx, fi, rm, r)
}

func mulBits(ctx *Context, pol *nanPolicy, fi *fmtInfo, rm RoundingMode, a, b arith.U128) arith.U128 {
	va := fi.decode(a)
	vb := fi.decode(b)
	if va.isNaN() || vb.isNaN() {
		return pol.propagate(ctx, fi, va, vb)
	}
	sign := va.sign != vb.sign
	switch {
	case va.cls == clsInf && vb.cls == clsZero,
		va.cls == clsZero && vb.cls == clsInf:
		ctx.Raise(FlagInvalid)
		return pol.defaultNaN(fi)
	case va.cls == clsInf, vb.cls == clsInf:
		return fi.inf(sign)
	case va.cls == clsZero, vb.cls == clsZero:
		return fi.zero(sign)
	}
	r := arith.Mul(fi.kf, rm.kernel(), pol.tinyAfter, va.unpacked(), vb.unpacked())
	return packRounded(ctx, fi, rm, r)
}

func divBits(ctx *Context, pol *nanPolicy, fi *fmtInfo, rm RoundingMode, a, b arith.U128) arith.U128 {
	va := fi.decode(a)
	vb := fi.decode(b)
	if va.isNaN() || vb.isNaN() {
		return pol.propagate(ctx, fi, va, vb)
	}
	sign := va.sign != vb.sign
	switch {
	case va.cls == clsInf && vb.cls == clsInf,
		va.cls == clsZero && vb.cls == clsZero:
		ctx.Raise(FlagInvalid)
		return pol.defaultNaN(fi)
	case va.cls == clsInf:
		return fi.inf(sign)
	case vb.cls == clsInf:
		return fi.zero(sign)
	case vb.cls == clsZero:
		// Finite nonzero over zero is the division-by-zero condition.
		ctx.Raise(FlagInfinite)
		return fi.inf(sign)
	case va.cls == clsZero:
		return fi.zero(sign)
	}
	r := arith.Div(fi.kf, rm.kernel(), pol.tinyAfter, va.unpacked(), vb.unpacked())
	return packRounded(ctx, fi, rm, r)
}

func remBits(ctx *Context, pol *nanPolicy, fi *fmtInfo, a, b arith.U128) arith.U128 {
	va := fi.decode(a)
	vb := fi.decode(b)
	if va.isNaN() || vb.isNaN() {
		return pol.propagate(ctx, fi, va, vb)
	}
	switch {
	case va.cls == clsInf, vb.cls == clsZero:
		ctx.Raise(FlagInvalid)
		return pol.defaultNaN(fi)
	case vb.cls == clsInf, va.cls == clsZero:
		// The quotient rounds to zero; a survives unchanged.
		return va.bits()
	}
	r := arith.Rem(fi.kf, va.unpacked(), vb.unpacked())
	// The remainder is exact: no rounding mode, no flags.
	return fi.packResult(r)
}

func sqrtBits(ctx *Context, pol *nanPolicy, fi *fmtInfo, rm RoundingMode, a arith.U128) arith.U128 {
	v := fi.decode(a)
	switch {
	case v.isNaN():
		return pol.propagate(ctx, fi, v)
	case v.cls == clsZero:
		return v.bits()
	case v.sign:
		ctx.Raise(FlagInvalid)
		return pol.defaultNaN(fi)
	case v.cls == clsInf:
		return fi.inf(false)
	}
	r := arith.Sqrt(fi.kf, rm.kernel(), pol.tinyAfter, v.unpacked())
	return packRounded(ctx, fi, rm, r)
}

// fmaBits computes a*b + c with a single rounding. The special-case
// order matters: NaN in the product operands wins, then the invalid
// infinity-times-zero product (which still prefers a NaN c for its
// payload), then NaN c, then infinities, then exact zero products.
func fmaBits(ctx *Context, pol *nanPolicy, fi *fmtInfo, rm RoundingMode, a, b, c arith.U128) arith.U128 {
	va := fi.decode(a)
	vb := fi.decode(b)
	vc := fi.decode(c)
	if va.isNaN() || vb.isNaN() {
		return pol.propagate(ctx, fi, va, vb, vc)
	}
	signProd := va.sign != vb.sign
	prodInvalid := (va.cls == clsInf && vb.cls == clsZero) || (va.cls == clsZero && vb.cls == clsInf)
	if prodInvalid {
		ctx.Raise(FlagInvalid)
		if vc.isNaN() {
			return pol.propagate(ctx, fi, vc)
		}
		return pol.defaultNaN(fi)
	}
	if vc.isNaN() {
		return pol.propagate(ctx, fi, vc)
	}
	if va.cls == clsInf || vb.cls == clsInf {
		if vc.cls == clsInf && vc.sign != signProd {
			ctx.Raise(FlagInvalid)
			return pol.defaultNaN(fi)
		}
		return fi.inf(signProd)
	}
	if vc.cls == clsInf {
		return fi.inf(vc.sign)
	}
	if va.cls == clsZero || vb.cls == clsZero {
		// Exact zero product: the sum is c, except that 0 + 0 follows
		// the addition sign rules.
		if vc.cls == clsZero {
			if signProd == vc.sign {
				return fi.zero(signProd)
			}
			return fi.zero(rm == TowardNegative)
		}
		return vc.bits()
	}
	if vc.cls == clsZero {
		r := arith.Mul(fi.kf, rm.kernel(), pol.tinyAfter, va.unpacked(), vb.unpacked())
		return packRounded(ctx, fi, rm, r)
	}
	r := arith.MulAdd(fi.kf, rm.kernel(), pol.tinyAfter, va.unpacked(), vb.unpacked(), vc.unpacked())
	return packRounded(ctx, fi, rm, r)
}

// roundIntBits rounds to an integral value in the same format. With
// exact unset (the RoundToIntegral methods) the operation never raises
// inexact; zeros, infinities and quiet NaN payloads pass through.
func roundIntBits(ctx *Context, pol *nanPolicy, fi *fmtInfo, rm RoundingMode, a arith.U128, exact bool) arith.U128 {
	v := fi.decode(a)
	switch v.cls {
	case clsQNaN, clsSNaN:
		return pol.propagate(ctx, fi, v)
	case clsInf, clsZero:
		return v.bits()
	}
	u, isZero := arith.ToIntegral(rm.kernel(), v.unpacked())
	if isZero {
		if exact {
			ctx.Raise(FlagInexact)
		}
		return fi.zero(v.sign)
	}
	out := packRounded(ctx, fi, rm, arith.Round(fi.kf, rm.kernel(), pol.tinyAfter, u))
	if exact && out != a {
		ctx.Raise(FlagInexact)
	}
	return out
}
