package softfloat

import "github.com/dalance/go-softfloat/softfloat/internal/arith"

// cvtBits converts between two formats. Widening conversions are
// always exact; narrowing ones round under rm and can raise inexact,
// underflow and overflow like any arithmetic result.
func cvtBits(ctx *Context, pol *nanPolicy, src, dst *fmtInfo, rm RoundingMode, a arith.U128) arith.U128 {
	v := src.decode(a)
	switch v.cls {
	case clsQNaN, clsSNaN:
		return cvtNaN(ctx, pol, src, dst, v)
	case clsInf:
		return dst.inf(v.sign)
	case clsZero:
		return dst.zero(v.sign)
	}
	r := arith.Round(dst.kf, rm.kernel(), pol.tinyAfter, v.unpacked())
	return packRounded(ctx, dst, rm, r)
}

// cvtNaN carries a NaN across formats. A propagating profile keeps the
// sign and the high payload bits, left-aligned below the quiet bit the
// way Berkeley SoftFloat's common-NaN path does; other profiles
// substitute the canonical NaN. Signaling NaNs raise invalid either
// way.
func cvtNaN(ctx *Context, pol *nanPolicy, src, dst *fmtInfo, v fval) arith.U128 {
	if v.cls == clsSNaN {
		ctx.Raise(FlagInvalid)
	}
	if !pol.propagateFirst {
		return pol.defaultNaN(dst)
	}
	pay := v.frac
	if src.explicit {
		pay = pay.And(arith.Ones(63))
	}
	pay = pay.Shl(128 - src.fracBits).Shr(128 - dst.fracBits)
	frac := pay.Or(arith.U128{Lo: 1}.Shl(dst.fracBits - 1))
	if dst.explicit {
		frac.Lo |= 1 << 63
	}
	return dst.encode(v.sign, dst.expMax(), frac)
}

// toIntBits converts to a 32- or 64-bit integer, returning the result
// as a width-truncated two's complement pattern in a uint64. NaN and
// out-of-range inputs raise invalid and saturate per the architecture
// profile; they are never additionally inexact. In-range rounding
// raises inexact only when the caller asked for it.
func toIntBits(ctx *Context, pol *nanPolicy, fi *fmtInfo, rm RoundingMode, a arith.U128, width uint32, signed bool, exact bool) uint64 {
	v := fi.decode(a)
	sat := pol.sat(width, signed)
	switch v.cls {
	case clsQNaN, clsSNaN:
		ctx.Raise(FlagInvalid)
		return sat.nan
	case clsInf:
		ctx.Raise(FlagInvalid)
		if v.sign {
			return sat.neg
		}
		return sat.pos
	case clsZero:
		return 0
	}
	mag, inexact, rs := arith.ToInt(rm.kernel(), v.unpacked(), width, signed)
	switch rs {
	case arith.RangePos:
		ctx.Raise(FlagInvalid)
		return sat.pos
	case arith.RangeNeg:
		ctx.Raise(FlagInvalid)
		return sat.neg
	}
	if inexact && exact {
		ctx.Raise(FlagInexact)
	}
	if v.sign && signed {
		return uint64(-int64(mag))
	}
	return mag
}

// fromU64Bits builds a value from an unsigned integer, rounding when
// the destination cannot hold it exactly.
func fromU64Bits(ctx *Context, pol *nanPolicy, fi *fmtInfo, rm RoundingMode, x uint64) arith.U128 {
	if x == 0 {
		return fi.zero(false)
	}
	r := arith.Round(fi.kf, rm.kernel(), pol.tinyAfter, arith.Unpacked{Sig: arith.U128{Lo: x}})
	return packRounded(ctx, fi, rm, r)
}

func fromI64Bits(ctx *Context, pol *nanPolicy, fi *fmtInfo, rm RoundingMode, x int64) arith.U128 {
	if x == 0 {
		return fi.zero(false)
	}
	sign := x < 0
	mag := uint64(x)
	if sign {
		mag = uint64(-x)
	}
	r := arith.Round(fi.kf, rm.kernel(), pol.tinyAfter, arith.Unpacked{Sign: sign, Sig: arith.U128{Lo: mag}})
	return packRounded(ctx, fi, rm, r)
}
