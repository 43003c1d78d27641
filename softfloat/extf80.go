package softfloat

import "github.com/dalance/go-softfloat/softfloat/internal/arith"

// ExtF80 is an x87 80-bit extended-precision value: a 16-bit word
// holding sign and exponent, and a 64-bit significand whose integer
// bit is explicit (bit 63). Encodings whose integer bit disagrees with
// the exponent field (unnormals, pseudo-denormals) are accepted and
// interpreted by value; arithmetic results are always canonical. The
// method contracts match F64's.
type ExtF80 struct {
	signExp uint16
	sig     uint64
}

func ExtF80FromBits(signExp uint16, sig uint64) ExtF80 {
	return ExtF80{signExp: signExp, sig: sig}
}

// Bits returns the sign/exponent word and the significand.
func (a ExtF80) Bits() (uint16, uint64) { return a.signExp, a.sig }

func (a ExtF80) u() arith.U128 { return arith.U128{Hi: uint64(a.signExp), Lo: a.sig} }
func ext80Of(x arith.U128) ExtF80 {
	return ExtF80{signExp: uint16(x.Hi), sig: x.Lo}
}
func (a ExtF80) decode() fval { return ext80Info.decode(a.u()) }

func (ExtF80) Format() Format { return Extended80 }

func ExtF80PositiveZero() ExtF80     { return ext80Of(ext80Info.zero(false)) }
func ExtF80NegativeZero() ExtF80     { return ext80Of(ext80Info.zero(true)) }
func ExtF80PositiveInfinity() ExtF80 { return ext80Of(ext80Info.inf(false)) }
func ExtF80NegativeInfinity() ExtF80 { return ext80Of(ext80Info.inf(true)) }
func ExtF80QuietNaN() ExtF80         { return ext80Of(activePolicy.defaultNaN(ext80Info)) }

func ExtF80FromU32(ctx *Context, x uint32, rm RoundingMode) ExtF80 {
	return ext80Of(fromU64Bits(ctx, activePolicy, ext80Info, rm, uint64(x)))
}

func ExtF80FromU64(ctx *Context, x uint64, rm RoundingMode) ExtF80 {
	return ext80Of(fromU64Bits(ctx, activePolicy, ext80Info, rm, x))
}

func ExtF80FromI32(ctx *Context, x int32, rm RoundingMode) ExtF80 {
	return ext80Of(fromI64Bits(ctx, activePolicy, ext80Info, rm, int64(x)))
}

func ExtF80FromI64(ctx *Context, x int64, rm RoundingMode) ExtF80 {
	return ext80Of(fromI64Bits(ctx, activePolicy, ext80Info, rm, x))
}

func (a ExtF80) SignBit() bool    { return a.signExp>>15 != 0 }
func (a ExtF80) Exponent() uint32 { return uint32(a.signExp) & 0x7FFF }

// Fraction returns the significand without its explicit integer bit.
func (a ExtF80) Fraction() uint64 { return a.sig & (1<<63 - 1) }

// IntegerBit reports the explicit integer bit of the significand.
func (a ExtF80) IntegerBit() bool { return a.sig>>63 != 0 }

func (a ExtF80) IsNaN() bool          { return a.decode().isNaN() }
func (a ExtF80) IsSignalingNaN() bool { return a.decode().cls == clsSNaN }
func (a ExtF80) IsInf() bool          { return a.decode().cls == clsInf }
func (a ExtF80) IsZero() bool         { return a.decode().cls == clsZero }
func (a ExtF80) IsSubnormal() bool    { return a.decode().isSubnormal() }

func (a ExtF80) IsPositive() bool          { return !a.SignBit() }
func (a ExtF80) IsNegative() bool          { return a.SignBit() }
func (a ExtF80) IsPositiveZero() bool      { return a.IsZero() && !a.SignBit() }
func (a ExtF80) IsNegativeZero() bool      { return a.IsZero() && a.SignBit() }
func (a ExtF80) IsPositiveSubnormal() bool { return a.IsSubnormal() && !a.SignBit() }
func (a ExtF80) IsNegativeSubnormal() bool { return a.IsSubnormal() && a.SignBit() }
func (a ExtF80) IsPositiveNormal() bool    { return a.decode().isNormal() && !a.SignBit() }
func (a ExtF80) IsNegativeNormal() bool    { return a.decode().isNormal() && a.SignBit() }
func (a ExtF80) IsPositiveInfinity() bool  { return a.IsInf() && !a.SignBit() }
func (a ExtF80) IsNegativeInfinity() bool  { return a.IsInf() && a.SignBit() }

func (a ExtF80) Add(ctx *Context, b ExtF80, rm RoundingMode) ExtF80 {
	return ext80Of(addBits(ctx, activePolicy, ext80Info, rm, a.u(), b.u(), false))
}

func (a ExtF80) Sub(ctx *Context, b ExtF80, rm RoundingMode) ExtF80 {
	return ext80Of(addBits(ctx, activePolicy, ext80Info, rm, a.u(), b.u(), true))
}

func (a ExtF80) Mul(ctx *Context, b ExtF80, rm RoundingMode) ExtF80 {
	return ext80Of(mulBits(ctx, activePolicy, ext80Info, rm, a.u(), b.u()))
}

func (a ExtF80) Div(ctx *Context, b ExtF80, rm RoundingMode) ExtF80 {
	return ext80Of(divBits(ctx, activePolicy, ext80Info, rm, a.u(), b.u()))
}

func (a ExtF80) Rem(ctx *Context, b ExtF80) ExtF80 {
	return ext80Of(remBits(ctx, activePolicy, ext80Info, a.u(), b.u()))
}

func (a ExtF80) FusedMulAdd(ctx *Context, b, c ExtF80, rm RoundingMode) ExtF80 {
	return ext80Of(fmaBits(ctx, activePolicy, ext80Info, rm, a.u(), b.u(), c.u()))
}

func (a ExtF80) Sqrt(ctx *Context, rm RoundingMode) ExtF80 {
	return ext80Of(sqrtBits(ctx, activePolicy, ext80Info, rm, a.u()))
}

func (a ExtF80) RoundToIntegral(ctx *Context, rm RoundingMode) ExtF80 {
	return ext80Of(roundIntBits(ctx, activePolicy, ext80Info, rm, a.u(), false))
}

func (a ExtF80) Neg() ExtF80 { return ExtF80{signExp: a.signExp ^ 1<<15, sig: a.sig} }
func (a ExtF80) Abs() ExtF80 { return ExtF80{signExp: a.signExp &^ (1 << 15), sig: a.sig} }

func (a ExtF80) Eq(ctx *Context, b ExtF80) bool {
	return eqBits(ctx, ext80Info, a.u(), b.u(), false)
}

func (a ExtF80) Lt(ctx *Context, b ExtF80) bool {
	return ltBits(ctx, ext80Info, a.u(), b.u(), true)
}

func (a ExtF80) Le(ctx *Context, b ExtF80) bool {
	return leBits(ctx, ext80Info, a.u(), b.u(), true)
}

func (a ExtF80) LtQuiet(ctx *Context, b ExtF80) bool {
	return ltBits(ctx, ext80Info, a.u(), b.u(), false)
}

func (a ExtF80) LeQuiet(ctx *Context, b ExtF80) bool {
	return leBits(ctx, ext80Info, a.u(), b.u(), false)
}

func (a ExtF80) EqSignaling(ctx *Context, b ExtF80) bool {
	return eqBits(ctx, ext80Info, a.u(), b.u(), true)
}

func (a ExtF80) Compare(ctx *Context, b ExtF80) (int, bool) {
	return compareBits(ctx, ext80Info, a.u(), b.u(), false)
}

func (a ExtF80) ToF16(ctx *Context, rm RoundingMode) F16 {
	return f16Of(cvtBits(ctx, activePolicy, ext80Info, f16Info, rm, a.u()))
}

func (a ExtF80) ToBF16(ctx *Context, rm RoundingMode) BF16 {
	return bf16Of(cvtBits(ctx, activePolicy, ext80Info, bf16Info, rm, a.u()))
}

func (a ExtF80) ToF32(ctx *Context, rm RoundingMode) F32 {
	return f32Of(cvtBits(ctx, activePolicy, ext80Info, f32Info, rm, a.u()))
}

func (a ExtF80) ToF64(ctx *Context, rm RoundingMode) F64 {
	return f64Of(cvtBits(ctx, activePolicy, ext80Info, f64Info, rm, a.u()))
}

func (a ExtF80) ToExtF80(*Context, RoundingMode) ExtF80 { return a }

func (a ExtF80) ToF128(ctx *Context, rm RoundingMode) F128 {
	return f128Of(cvtBits(ctx, activePolicy, ext80Info, f128Info, rm, a.u()))
}

func (a ExtF80) ToU32(ctx *Context, rm RoundingMode, exact bool) uint32 {
	return uint32(toIntBits(ctx, activePolicy, ext80Info, rm, a.u(), 32, false, exact))
}

func (a ExtF80) ToU64(ctx *Context, rm RoundingMode, exact bool) uint64 {
	return toIntBits(ctx, activePolicy, ext80Info, rm, a.u(), 64, false, exact)
}

func (a ExtF80) ToI32(ctx *Context, rm RoundingMode, exact bool) int32 {
	return int32(uint32(toIntBits(ctx, activePolicy, ext80Info, rm, a.u(), 32, true, exact)))
}

func (a ExtF80) ToI64(ctx *Context, rm RoundingMode, exact bool) int64 {
	return int64(toIntBits(ctx, activePolicy, ext80Info, rm, a.u(), 64, true, exact))
}
