package softfloat

import "github.com/dalance/go-softfloat/softfloat/internal/arith"

// F16 is an IEEE 754 binary16 value held as its raw bit pattern: one
// sign bit, five exponent bits, ten fraction bits. The method
// contracts match F64's.
type F16 struct {
	bits uint16
}

func F16FromBits(b uint16) F16 { return F16{bits: b} }
func (a F16) Bits() uint16     { return a.bits }

func (a F16) u() arith.U128  { return arith.U128{Lo: uint64(a.bits)} }
func f16Of(x arith.U128) F16 { return F16{bits: uint16(x.Lo)} }
func (a F16) decode() fval   { return f16Info.decode(a.u()) }

func (F16) Format() Format { return Binary16 }

func F16PositiveZero() F16     { return f16Of(f16Info.zero(false)) }
func F16NegativeZero() F16     { return f16Of(f16Info.zero(true)) }
func F16PositiveInfinity() F16 { return f16Of(f16Info.inf(false)) }
func F16NegativeInfinity() F16 { return f16Of(f16Info.inf(true)) }
func F16QuietNaN() F16         { return f16Of(activePolicy.defaultNaN(f16Info)) }

func F16FromU32(ctx *Context, x uint32, rm RoundingMode) F16 {
	return f16Of(fromU64Bits(ctx, activePolicy, f16Info, rm, uint64(x)))
}

func F16FromU64(ctx *Context, x uint64, rm RoundingMode) F16 {
	return f16Of(fromU64Bits(ctx, activePolicy, f16Info, rm, x))
}

func F16FromI32(ctx *Context, x int32, rm RoundingMode) F16 {
	return f16Of(fromI64Bits(ctx, activePolicy, f16Info, rm, int64(x)))
}

func F16FromI64(ctx *Context, x int64, rm RoundingMode) F16 {
	return f16Of(fromI64Bits(ctx, activePolicy, f16Info, rm, x))
}

func (a F16) SignBit() bool    { return a.bits>>15 != 0 }
func (a F16) Exponent() uint32 { return uint32(a.bits>>10) & 0x1F }
func (a F16) Fraction() uint16 { return a.bits & 0x3FF }

func (a F16) IsNaN() bool          { return a.decode().isNaN() }
func (a F16) IsSignalingNaN() bool { return a.decode().cls == clsSNaN }
func (a F16) IsInf() bool          { return a.decode().cls == clsInf }
func (a F16) IsZero() bool         { return a.decode().cls == clsZero }
func (a F16) IsSubnormal() bool    { return a.decode().isSubnormal() }

func (a F16) IsPositive() bool          { return !a.SignBit() }
func (a F16) IsNegative() bool          { return a.SignBit() }
func (a F16) IsPositiveZero() bool      { return a.IsZero() && !a.SignBit() }
func (a F16) IsNegativeZero() bool      { return a.IsZero() && a.SignBit() }
func (a F16) IsPositiveSubnormal() bool { return a.IsSubnormal() && !a.SignBit() }
func (a F16) IsNegativeSubnormal() bool { return a.IsSubnormal() && a.SignBit() }
func (a F16) IsPositiveNormal() bool    { return a.decode().isNormal() && !a.SignBit() }
func (a F16) IsNegativeNormal() bool    { return a.decode().isNormal() && a.SignBit() }
func (a F16) IsPositiveInfinity() bool  { return a.IsInf() && !a.SignBit() }
func (a F16) IsNegativeInfinity() bool  { return a.IsInf() && a.SignBit() }

func (a F16) Add(ctx *Context, b F16, rm RoundingMode) F16 {
	return f16Of(addBits(ctx, activePolicy, f16Info, rm, a.u(), b.u(), false))
}

func (a F16) Sub(ctx *Context, b F16, rm RoundingMode) F16 {
	return f16Of(addBits(ctx, activePolicy, f16Info, rm, a.u(), b.u(), true))
}

func (a F16) Mul(ctx *Context, b F16, rm RoundingMode) F16 {
	return f16Of(mulBits(ctx, activePolicy, f16Info, rm, a.u(), b.u()))
}

func (a F16) Div(ctx *Context, b F16, rm RoundingMode) F16 {
	return f16Of(divBits(ctx, activePolicy, f16Info, rm, a.u(), b.u()))
}

func (a F16) Rem(ctx *Context, b F16) F16 {
	return f16Of(remBits(ctx, activePolicy, f16Info, a.u(), b.u()))
}

func (a F16) FusedMulAdd(ctx *Context, b, c F16, rm RoundingMode) F16 {
	return f16Of(fmaBits(ctx, activePolicy, f16Info, rm, a.u(), b.u(), c.u()))
}

func (a F16) Sqrt(ctx *Context, rm RoundingMode) F16 {
	return f16Of(sqrtBits(ctx, activePolicy, f16Info, rm, a.u()))
}

func (a F16) RoundToIntegral(ctx *Context, rm RoundingMode) F16 {
	return f16Of(roundIntBits(ctx, activePolicy, f16Info, rm, a.u(), false))
}

func (a F16) Neg() F16 { return F16{bits: a.bits ^ 1<<15} }
func (a F16) Abs() F16 { return F16{bits: a.bits &^ (1 << 15)} }

func (a F16) Eq(ctx *Context, b F16) bool      { return eqBits(ctx, f16Info, a.u(), b.u(), false) }
func (a F16) Lt(ctx *Context, b F16) bool      { return ltBits(ctx, f16Info, a.u(), b.u(), true) }
func (a F16) Le(ctx *Context, b F16) bool      { return leBits(ctx, f16Info, a.u(), b.u(), true) }
func (a F16) LtQuiet(ctx *Context, b F16) bool { return ltBits(ctx, f16Info, a.u(), b.u(), false) }
func (a F16) LeQuiet(ctx *Context, b F16) bool { return leBits(ctx, f16Info, a.u(), b.u(), false) }
func (a F16) EqSignaling(ctx *Context, b F16) bool {
	return eqBits(ctx, f16Info, a.u(), b.u(), true)
}

func (a F16) Compare(ctx *Context, b F16) (int, bool) {
	return compareBits(ctx, f16Info, a.u(), b.u(), false)
}

func (a F16) ToF16(*Context, RoundingMode) F16 { return a }

func (a F16) ToBF16(ctx *Context, rm RoundingMode) BF16 {
	return bf16Of(cvtBits(ctx, activePolicy, f16Info, bf16Info, rm, a.u()))
}

func (a F16) ToF32(ctx *Context, rm RoundingMode) F32 {
	return f32Of(cvtBits(ctx, activePolicy, f16Info, f32Info, rm, a.u()))
}

func (a F16) ToF64(ctx *Context, rm RoundingMode) F64 {
	return f64Of(cvtBits(ctx, activePolicy, f16Info, f64Info, rm, a.u()))
}

func (a F16) ToExtF80(ctx *Context, rm RoundingMode) ExtF80 {
	return ext80Of(cvtBits(ctx, activePolicy, f16Info, ext80Info, rm, a.u()))
}

func (a F16) ToF128(ctx *Context, rm RoundingMode) F128 {
	return f128Of(cvtBits(ctx, activePolicy, f16Info, f128Info, rm, a.u()))
}

func (a F16) ToU32(ctx *Context, rm RoundingMode, exact bool) uint32 {
	return uint32(toIntBits(ctx, activePolicy, f16Info, rm, a.u(), 32, false, exact))
}

func (a F16) ToU64(ctx *Context, rm RoundingMode, exact bool) uint64 {
	return toIntBits(ctx, activePolicy, f16Info, rm, a.u(), 64, false, exact)
}

func (a F16) ToI32(ctx *Context, rm RoundingMode, exact bool) int32 {
	return int32(uint32(toIntBits(ctx, activePolicy, f16Info, rm, a.u(), 32, true, exact)))
}

func (a F16) ToI64(ctx *Context, rm RoundingMode, exact bool) int64 {
	return int64(toIntBits(ctx, activePolicy, f16Info, rm, a.u(), 64, true, exact))
}
