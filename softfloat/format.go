package softfloat

import "github.com/dalance/go-softfloat/softfloat/internal/arith"

// Format describes the bit-level geometry of an interchange format.
// ExpBits + FracBits + 1 == Width for every descriptor; Extended80's
// FracBits counts its full 64-bit significand field, explicit integer
// bit included.
type Format struct {
	Name     string
	Width    uint32
	ExpBits  uint32
	FracBits uint32
	Bias     int32
}

func (f Format) String() string { return f.Name }

var (
	Binary16   = Format{Name: "binary16", Width: 16, ExpBits: 5, FracBits: 10, Bias: 15}
	BFloat16   = Format{Name: "bfloat16", Width: 16, ExpBits: 8, FracBits: 7, Bias: 127}
	Binary32   = Format{Name: "binary32", Width: 32, ExpBits: 8, FracBits: 23, Bias: 127}
	Binary64   = Format{Name: "binary64", Width: 64, ExpBits: 11, FracBits: 52, Bias: 1023}
	Extended80 = Format{Name: "extended80", Width: 80, ExpBits: 15, FracBits: 64, Bias: 16383}
	Binary128  = Format{Name: "binary128", Width: 128, ExpBits: 15, FracBits: 112, Bias: 16383}
)

// fmtInfo is the engine-side view of a format. Bit patterns of every
// width travel through the engine as arith.U128; narrow formats live
// in the low bits, Extended80 keeps its sign/exponent word in Hi and
// the 64-bit significand in Lo.
type fmtInfo struct {
	pub      Format
	width    int32
	expBits  int32
	fracBits int32
	explicit bool // x87-style explicit integer bit
	kf       arith.Format
}

var (
	f16Info   = &fmtInfo{pub: Binary16, width: 16, expBits: 5, fracBits: 10, kf: arith.Format{ExpBits: 5, Prec: 11}}
	bf16Info  = &fmtInfo{pub: BFloat16, width: 16, expBits: 8, fracBits: 7, kf: arith.Format{ExpBits: 8, Prec: 8}}
	f32Info   = &fmtInfo{pub: Binary32, width: 32, expBits: 8, fracBits: 23, kf: arith.Format{ExpBits: 8, Prec: 24}}
	f64Info   = &fmtInfo{pub: Binary64, width: 64, expBits: 11, fracBits: 52, kf: arith.Format{ExpBits: 11, Prec: 53}}
	ext80Info = &fmtInfo{pub: Extended80, width: 80, expBits: 15, fracBits: 63, explicit: true, kf: arith.Format{ExpBits: 15, Prec: 64}}
	f128Info  = &fmtInfo{pub: Binary128, width: 128, expBits: 15, fracBits: 112, kf: arith.Format{ExpBits: 15, Prec: 113}}
)

func (fi *fmtInfo) expMax() uint32 { return 1<<uint(fi.expBits) - 1 }
func (fi *fmtInfo) bias() int32    { return fi.pub.Bias }

// cls is the coarse operand class the special-case tables dispatch on.
type cls uint8

const (
	clsZero cls = iota
	clsFinite
	clsInf
	clsQNaN
	clsSNaN
)

// fval is a decoded operand: the raw encoding fields plus its class.
// For Extended80, frac holds the full 64-bit significand including the
// explicit integer bit.
type fval struct {
	fi   *fmtInfo
	sign bool
	exp  uint32
	frac arith.U128
	cls  cls
}

func (v fval) isNaN() bool { return v.cls == clsQNaN || v.cls == clsSNaN }

// isSubnormal matches the encoding-level notion: a zero exponent field
// with a nonzero significand.
func (v fval) isSubnormal() bool { return v.exp == 0 && !v.frac.IsZero() }

// isNormal requires an in-range exponent field and, for Extended80,
// the integer bit the format makes explicit.
func (v fval) isNormal() bool {
	if v.exp == 0 || v.exp == v.fi.expMax() {
		return false
	}
	if v.fi.explicit {
		return v.frac.Bit(63)
	}
	return true
}

func (fi *fmtInfo) decode(x arith.U128) fval {
	v := fval{fi: fi}
	if fi.explicit {
		se := uint32(x.Hi)
		v.sign = se&0x8000 != 0
		v.exp = se & 0x7FFF
		v.frac = arith.U128{Lo: x.Lo}
		tail := x.Lo & (1<<63 - 1)
		switch {
		case v.exp == fi.expMax():
			switch {
			case tail == 0:
				v.cls = clsInf
			case x.Lo&(1<<62) != 0:
				v.cls = clsQNaN
			default:
				v.cls = clsSNaN
			}
		case x.Lo == 0:
			v.cls = clsZero
		default:
			v.cls = clsFinite
		}
		return v
	}
	v.sign = x.Bit(fi.width - 1)
	v.exp = uint32(x.Shr(fi.fracBits).Lo) & fi.expMax()
	v.frac = x.And(arith.Ones(fi.fracBits))
	switch {
	case v.exp == fi.expMax():
		switch {
		case v.frac.IsZero():
			v.cls = clsInf
		case v.frac.Bit(fi.fracBits - 1):
			v.cls = clsQNaN
		default:
			v.cls = clsSNaN
		}
	case v.exp == 0 && v.frac.IsZero():
		v.cls = clsZero
	default:
		v.cls = clsFinite
	}
	return v
}

func (fi *fmtInfo) encode(sign bool, exp uint32, frac arith.U128) arith.U128 {
	if fi.explicit {
		se := uint64(exp)
		if sign {
			se |= 0x8000
		}
		return arith.U128{Hi: se, Lo: frac.Lo}
	}
	x := frac.Or(arith.U128{Lo: uint64(exp)}.Shl(fi.fracBits))
	if sign {
		x = x.Or(arith.U128{Lo: 1}.Shl(fi.width - 1))
	}
	return x
}

// bits reassembles the operand's original encoding.
func (v fval) bits() arith.U128 { return v.fi.encode(v.sign, v.exp, v.frac) }

// packResult assembles a rounded kernel result into an encoding. The
// kernel reports the fraction with the leading significand bit
// stripped; on the explicit-integer-bit format a nonzero exponent
// means a normal value, so the bit is restored here. Subnormal
// results keep it clear.
func (fi *fmtInfo) packResult(r arith.Rounded) arith.U128 {
	frac := r.Frac
	if fi.explicit && r.Exp != 0 {
		frac.Lo |= 1 << 63
	}
	return fi.encode(r.Sign, r.Exp, frac)
}

// unpacked lifts a finite nonzero operand into kernel form. Extended80
// encodings whose integer bit disagrees with the exponent field are
// interpreted by value; the kernel renormalizes them.
func (v fval) unpacked() arith.Unpacked {
	fi := v.fi
	if fi.explicit {
		e := int32(v.exp)
		if e == 0 {
			e = 1
		}
		return arith.Unpacked{Sign: v.sign, Exp: e - fi.bias() - 63, Sig: v.frac}
	}
	if v.exp == 0 {
		return arith.Unpacked{Sign: v.sign, Exp: 1 - fi.bias() - fi.fracBits, Sig: v.frac}
	}
	sig := v.frac.Or(arith.U128{Lo: 1}.Shl(fi.fracBits))
	return arith.Unpacked{Sign: v.sign, Exp: int32(v.exp) - fi.bias() - fi.fracBits, Sig: sig}
}

func (fi *fmtInfo) zero(sign bool) arith.U128 { return fi.encode(sign, 0, arith.U128{}) }

func (fi *fmtInfo) inf(sign bool) arith.U128 {
	if fi.explicit {
		return fi.encode(sign, fi.expMax(), arith.U128{Lo: 1 << 63})
	}
	return fi.encode(sign, fi.expMax(), arith.U128{})
}

func (fi *fmtInfo) maxFinite(sign bool) arith.U128 {
	if fi.explicit {
		return fi.encode(sign, fi.expMax()-1, arith.U128{Lo: ^uint64(0)})
	}
	return fi.encode(sign, fi.expMax()-1, arith.Ones(fi.fracBits))
}
