package softfloat

import "github.com/dalance/go-softfloat/softfloat/internal/arith"

// compareBits orders two values of the same format. It returns the
// usual negative/zero/positive ordering and whether the operands are
// unordered (at least one NaN). Zeros of both signs compare equal.
// Quiet comparisons raise invalid only for a signaling NaN; signaling
// ones (the IEEE Lt/Le predicates) raise it for any NaN.
func compareBits(ctx *Context, fi *fmtInfo, a, b arith.U128, signaling bool) (int, bool) {
	va := fi.decode(a)
	vb := fi.decode(b)
	if va.isNaN() || vb.isNaN() {
		if signaling || va.cls == clsSNaN || vb.cls == clsSNaN {
			ctx.Raise(FlagInvalid)
		}
		return 0, true
	}
	za, zb := va.cls == clsZero, vb.cls == clsZero
	switch {
	case za && zb:
		return 0, false
	case za:
		if vb.sign {
			return 1, false
		}
		return -1, false
	case zb:
		if va.sign {
			return -1, false
		}
		return 1, false
	}
	if va.sign != vb.sign {
		if va.sign {
			return -1, false
		}
		return 1, false
	}
	var c int
	switch {
	case va.cls == clsInf && vb.cls == clsInf:
		return 0, false
	case va.cls == clsInf:
		c = 1
	case vb.cls == clsInf:
		c = -1
	default:
		return arith.Cmp(va.unpacked(), vb.unpacked()), false
	}
	if va.sign {
		c = -c
	}
	return c, false
}

func eqBits(ctx *Context, fi *fmtInfo, a, b arith.U128, signaling bool) bool {
	c, unordered := compareBits(ctx, fi, a, b, signaling)
	return !unordered && c == 0
}

func ltBits(ctx *Context, fi *fmtInfo, a, b arith.U128, signaling bool) bool {
	c, unordered := compareBits(ctx, fi, a, b, signaling)
	return !unordered && c < 0
}

func leBits(ctx *Context, fi *fmtInfo, a, b arith.U128, signaling bool) bool {
	c, unordered := compareBits(ctx, fi, a, b, signaling)
	return !unordered && c <= 0
}
