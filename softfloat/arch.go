package softfloat

import "github.com/dalance/go-softfloat/softfloat/internal/arith"

// Arch names the architecture behavior profile compiled into the
// package: "riscv" unless the softfloat_x86 or softfloat_arm build tag
// selects another. The profile fixes how NaN payloads propagate, what
// the canonical quiet NaN looks like, which values out-of-range
// integer conversions saturate to, and whether tininess is detected
// before or after rounding. Results are reproducible across hosts for
// a given profile; only the profile, never the hardware, changes them.
func Arch() string { return archName }

// nanPolicy is one architecture profile. The engine receives the
// active profile as an ordinary value, so tests can drive all three
// regardless of build tags.
type nanPolicy struct {
	name           string
	propagateFirst bool // keep the first NaN operand's payload, quieted
	tinyAfter      bool // tininess detected after rounding
	defaultNaNNeg  bool // canonical quiet NaN carries the sign bit
	i32, u32       intSat
	i64, u64       intSat
}

// intSat holds the substituted results of integer conversions from
// NaN, from above range, and from below range, as width-truncated
// two's complement patterns.
type intSat struct {
	nan, pos, neg uint64
}

var policyRISCV = nanPolicy{
	name:      "riscv",
	tinyAfter: true,
	i32:       intSat{nan: 0x7FFFFFFF, pos: 0x7FFFFFFF, neg: 0x80000000},
	u32:       intSat{nan: 0xFFFFFFFF, pos: 0xFFFFFFFF, neg: 0},
	i64:       intSat{nan: 0x7FFFFFFFFFFFFFFF, pos: 0x7FFFFFFFFFFFFFFF, neg: 0x8000000000000000},
	u64:       intSat{nan: ^uint64(0), pos: ^uint64(0), neg: 0},
}

// The x86 profile follows the 8086/SSE convention: NaN payloads
// propagate, the canonical NaN is the negative "indefinite" value, and
// signed conversions collapse every failure onto the integer
// indefinite pattern.
var policyX86 = nanPolicy{
	name:           "x86",
	propagateFirst: true,
	tinyAfter:      true,
	defaultNaNNeg:  true,
	i32:            intSat{nan: 0x80000000, pos: 0x80000000, neg: 0x80000000},
	u32:            intSat{nan: 0xFFFFFFFF, pos: 0xFFFFFFFF, neg: 0xFFFFFFFF},
	i64:            intSat{nan: 0x8000000000000000, pos: 0x8000000000000000, neg: 0x8000000000000000},
	u64:            intSat{nan: ^uint64(0), pos: ^uint64(0), neg: ^uint64(0)},
}

// The arm profile matches VFP default-NaN mode with tininess detected
// before rounding; NaN converts to integer zero.
var policyARM = nanPolicy{
	name: "arm",
	i32:  intSat{nan: 0, pos: 0x7FFFFFFF, neg: 0x80000000},
	u32:  intSat{nan: 0, pos: 0xFFFFFFFF, neg: 0},
	i64:  intSat{nan: 0, pos: 0x7FFFFFFFFFFFFFFF, neg: 0x8000000000000000},
	u64:  intSat{nan: 0, pos: ^uint64(0), neg: 0},
}

func (p *nanPolicy) sat(width uint32, signed bool) intSat {
	if width == 32 {
		if signed {
			return p.i32
		}
		return p.u32
	}
	if signed {
		return p.i64
	}
	return p.u64
}

// defaultNaN returns the profile's canonical quiet NaN in the given
// format.
func (p *nanPolicy) defaultNaN(fi *fmtInfo) arith.U128 {
	frac := arith.U128{Lo: 1}.Shl(fi.fracBits - 1)
	if fi.explicit {
		frac.Lo |= 1 << 63
	}
	return fi.encode(p.defaultNaNNeg, fi.expMax(), frac)
}

// quieten returns v's encoding with the quiet bit forced on (and, for
// Extended80, the integer bit, which real NaNs carry).
func quieten(fi *fmtInfo, v fval) arith.U128 {
	frac := v.frac.Or(arith.U128{Lo: 1}.Shl(fi.fracBits - 1))
	if fi.explicit {
		frac.Lo |= 1 << 63
	}
	return fi.encode(v.sign, v.exp, frac)
}

// propagate resolves an operation whose operands include at least one
// NaN. A signaling NaN raises invalid; the result is the first NaN
// operand quieted under a propagating profile, the canonical NaN
// otherwise.
func (p *nanPolicy) propagate(ctx *Context, fi *fmtInfo, vs ...fval) arith.U128 {
	for _, v := range vs {
		if v.cls == clsSNaN {
			ctx.Raise(FlagInvalid)
			break
		}
	}
	if p.propagateFirst {
		for _, v := range vs {
			if v.isNaN() {
				return quieten(fi, v)
			}
		}
	}
	return p.defaultNaN(fi)
}
