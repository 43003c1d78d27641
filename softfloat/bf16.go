package softfloat

import "github.com/dalance/go-softfloat/softfloat/internal/arith"

// BF16 is a bfloat16 value held as its raw bit pattern: one sign bit,
// eight exponent bits, seven fraction bits. It shares binary32's
// exponent range at reduced precision, and all operations on it are
// correctly rounded like every other format here. The method contracts
// match F64's.
type BF16 struct {
	bits uint16
}

func BF16FromBits(b uint16) BF16 { return BF16{bits: b} }
func (a BF16) Bits() uint16      { return a.bits }

func (a BF16) u() arith.U128   { return arith.U128{Lo: uint64(a.bits)} }
func bf16Of(x arith.U128) BF16 { return BF16{bits: uint16(x.Lo)} }
func (a BF16) decode() fval    { return bf16Info.decode(a.u()) }

func (BF16) Format() Format { return BFloat16 }

func BF16PositiveZero() BF16     { return bf16Of(bf16Info.zero(false)) }
func BF16NegativeZero() BF16     { return bf16Of(bf16Info.zero(true)) }
func BF16PositiveInfinity() BF16 { return bf16Of(bf16Info.inf(false)) }
func BF16NegativeInfinity() BF16 { return bf16Of(bf16Info.inf(true)) }
func BF16QuietNaN() BF16         { return bf16Of(activePolicy.defaultNaN(bf16Info)) }

func BF16FromU32(ctx *Context, x uint32, rm RoundingMode) BF16 {
	return bf16Of(fromU64Bits(ctx, activePolicy, bf16Info, rm, uint64(x)))
}

func BF16FromU64(ctx *Context, x uint64, rm RoundingMode) BF16 {
	return bf16Of(fromU64Bits(ctx, activePolicy, bf16Info, rm, x))
}

func BF16FromI32(ctx *Context, x int32, rm RoundingMode) BF16 {
	return bf16Of(fromI64Bits(ctx, activePolicy, bf16Info, rm, int64(x)))
}

func BF16FromI64(ctx *Context, x int64, rm RoundingMode) BF16 {
	return bf16Of(fromI64Bits(ctx, activePolicy, bf16Info, rm, x))
}

func (a BF16) SignBit() bool    { return a.bits>>15 != 0 }
func (a BF16) Exponent() uint32 { return uint32(a.bits>>7) & 0xFF }
func (a BF16) Fraction() uint16 { return a.bits & 0x7F }

func (a BF16) IsNaN() bool          { return a.decode().isNaN() }
func (a BF16) IsSignalingNaN() bool { return a.decode().cls == clsSNaN }
func (a BF16) IsInf() bool          { return a.decode().cls == clsInf }
func (a BF16) IsZero() bool         { return a.decode().cls == clsZero }
func (a BF16) IsSubnormal() bool    { return a.decode().isSubnormal() }

func (a BF16) IsPositive() bool          { return !a.SignBit() }
func (a BF16) IsNegative() bool          { return a.SignBit() }
func (a BF16) IsPositiveZero() bool      { return a.IsZero() && !a.SignBit() }
func (a BF16) IsNegativeZero() bool      { return a.IsZero() && a.SignBit() }
func (a BF16) IsPositiveSubnormal() bool { return a.IsSubnormal() && !a.SignBit() }
func (a BF16) IsNegativeSubnormal() bool { return a.IsSubnormal() && a.SignBit() }
func (a BF16) IsPositiveNormal() bool    { return a.decode().isNormal() && !a.SignBit() }
func (a BF16) IsNegativeNormal() bool    { return a.decode().isNormal() && a.SignBit() }
func (a BF16) IsPositiveInfinity() bool  { return a.IsInf() && !a.SignBit() }
func (a BF16) IsNegativeInfinity() bool  { return a.IsInf() && a.SignBit() }

func (a BF16) Add(ctx *Context, b BF16, rm RoundingMode) BF16 {
	return bf16Of(addBits(ctx, activePolicy, bf16Info, rm, a.u(), b.u(), false))
}

func (a BF16) Sub(ctx *Context, b BF16, rm RoundingMode) BF16 {
	return bf16Of(addBits(ctx, activePolicy, bf16Info, rm, a.u(), b.u(), true))
}

func (a BF16) Mul(ctx *Context, b BF16, rm RoundingMode) BF16 {
	return bf16Of(mulBits(ctx, activePolicy, bf16Info, rm, a.u(), b.u()))
}

func (a BF16) Div(ctx *Context, b BF16, rm RoundingMode) BF16 {
	return bf16Of(divBits(ctx, activePolicy, bf16Info, rm, a.u(), b.u()))
}

func (a BF16) Rem(ctx *Context, b BF16) BF16 {
	return bf16Of(remBits(ctx, activePolicy, bf16Info, a.u(), b.u()))
}

func (a BF16) FusedMulAdd(ctx *Context, b, c BF16, rm RoundingMode) BF16 {
	return bf16Of(fmaBits(ctx, activePolicy, bf16Info, rm, a.u(), b.u(), c.u()))
}

func (a BF16) Sqrt(ctx *Context, rm RoundingMode) BF16 {
	return bf16Of(sqrtBits(ctx, activePolicy, bf16Info, rm, a.u()))
}

func (a BF16) RoundToIntegral(ctx *Context, rm RoundingMode) BF16 {
	return bf16Of(roundIntBits(ctx, activePolicy, bf16Info, rm, a.u(), false))
}

func (a BF16) Neg() BF16 { return BF16{bits: a.bits ^ 1<<15} }
func (a BF16) Abs() BF16 { return BF16{bits: a.bits &^ (1 << 15)} }

func (a BF16) Eq(ctx *Context, b BF16) bool      { return eqBits(ctx, bf16Info, a.u(), b.u(), false) }
func (a BF16) Lt(ctx *Context, b BF16) bool      { return ltBits(ctx, bf16Info, a.u(), b.u(), true) }
func (a BF16) Le(ctx *Context, b BF16) bool      { return leBits(ctx, bf16Info, a.u(), b.u(), true) }
func (a BF16) LtQuiet(ctx *Context, b BF16) bool { return ltBits(ctx, bf16Info, a.u(), b.u(), false) }
func (a BF16) LeQuiet(ctx *Context, b BF16) bool { return leBits(ctx, bf16Info, a.u(), b.u(), false) }
func (a BF16) EqSignaling(ctx *Context, b BF16) bool {
	return eqBits(ctx, bf16Info, a.u(), b.u(), true)
}

func (a BF16) Compare(ctx *Context, b BF16) (int, bool) {
	return compareBits(ctx, bf16Info, a.u(), b.u(), false)
}

func (a BF16) ToF16(ctx *Context, rm RoundingMode) F16 {
	return f16Of(cvtBits(ctx, activePolicy, bf16Info, f16Info, rm, a.u()))
}

func (a BF16) ToBF16(*Context, RoundingMode) BF16 { return a }

func (a BF16) ToF32(ctx *Context, rm RoundingMode) F32 {
	return f32Of(cvtBits(ctx, activePolicy, bf16Info, f32Info, rm, a.u()))
}

func (a BF16) ToF64(ctx *Context, rm RoundingMode) F64 {
	return f64Of(cvtBits(ctx, activePolicy, bf16Info, f64Info, rm, a.u()))
}

func (a BF16) ToExtF80(ctx *Context, rm RoundingMode) ExtF80 {
	return ext80Of(cvtBits(ctx, activePolicy, bf16Info, ext80Info, rm, a.u()))
}

func (a BF16) ToF128(ctx *Context, rm RoundingMode) F128 {
	return f128Of(cvtBits(ctx, activePolicy, bf16Info, f128Info, rm, a.u()))
}

func (a BF16) ToU32(ctx *Context, rm RoundingMode, exact bool) uint32 {
	return uint32(toIntBits(ctx, activePolicy, bf16Info, rm, a.u(), 32, false, exact))
}

func (a BF16) ToU64(ctx *Context, rm RoundingMode, exact bool) uint64 {
	return toIntBits(ctx, activePolicy, bf16Info, rm, a.u(), 64, false, exact)
}

func (a BF16) ToI32(ctx *Context, rm RoundingMode, exact bool) int32 {
	return int32(uint32(toIntBits(ctx, activePolicy, bf16Info, rm, a.u(), 32, true, exact)))
}

func (a BF16) ToI64(ctx *Context, rm RoundingMode, exact bool) int64 {
	return int64(toIntBits(ctx, activePolicy, bf16Info, rm, a.u(), 64, true, exact))
}
