package softfloat

import "github.com/dalance/go-softfloat/softfloat/internal/arith"

// F128 is an IEEE 754 binary128 value held as its raw bit pattern in
// two 64-bit words: one sign bit, fifteen exponent bits, and a 112-bit
// fraction whose top 48 bits live in hi. The method contracts match
// F64's.
type F128 struct {
	hi uint64
	lo uint64
}

func F128FromBits(hi, lo uint64) F128 { return F128{hi: hi, lo: lo} }

// Bits returns the high and low words of the encoding.
func (a F128) Bits() (uint64, uint64) { return a.hi, a.lo }

func (a F128) u() arith.U128   { return arith.U128{Hi: a.hi, Lo: a.lo} }
func f128Of(x arith.U128) F128 { return F128{hi: x.Hi, lo: x.Lo} }
func (a F128) decode() fval    { return f128Info.decode(a.u()) }

func (F128) Format() Format { return Binary128 }

func F128PositiveZero() F128     { return f128Of(f128Info.zero(false)) }
func F128NegativeZero() F128     { return f128Of(f128Info.zero(true)) }
func F128PositiveInfinity() F128 { return f128Of(f128Info.inf(false)) }
func F128NegativeInfinity() F128 { return f128Of(f128Info.inf(true)) }
func F128QuietNaN() F128         { return f128Of(activePolicy.defaultNaN(f128Info)) }

func F128FromU32(ctx *Context, x uint32, rm RoundingMode) F128 {
	return f128Of(fromU64Bits(ctx, activePolicy, f128Info, rm, uint64(x)))
}

func F128FromU64(ctx *Context, x uint64, rm RoundingMode) F128 {
	return f128Of(fromU64Bits(ctx, activePolicy, f128Info, rm, x))
}

func F128FromI32(ctx *Context, x int32, rm RoundingMode) F128 {
	return f128Of(fromI64Bits(ctx, activePolicy, f128Info, rm, int64(x)))
}

func F128FromI64(ctx *Context, x int64, rm RoundingMode) F128 {
	return f128Of(fromI64Bits(ctx, activePolicy, f128Info, rm, x))
}

func (a F128) SignBit() bool    { return a.hi>>63 != 0 }
func (a F128) Exponent() uint32 { return uint32(a.hi>>48) & 0x7FFF }

// Fraction returns the 112-bit fraction as high and low words.
func (a F128) Fraction() (uint64, uint64) { return a.hi & (1<<48 - 1), a.lo }

func (a F128) IsNaN() bool          { return a.decode().isNaN() }
func (a F128) IsSignalingNaN() bool { return a.decode().cls == clsSNaN }
func (a F128) IsInf() bool          { return a.decode().cls == clsInf }
func (a F128) IsZero() bool         { return a.decode().cls == clsZero }
func (a F128) IsSubnormal() bool    { return a.decode().isSubnormal() }

func (a F128) IsPositive() bool          { return !a.SignBit() }
func (a F128) IsNegative() bool          { return a.SignBit() }
func (a F128) IsPositiveZero() bool      { return a.IsZero() && !a.SignBit() }
func (a F128) IsNegativeZero() bool      { return a.IsZero() && a.SignBit() }
func (a F128) IsPositiveSubnormal() bool { return a.IsSubnormal() && !a.SignBit() }
func (a F128) IsNegativeSubnormal() bool { return a.IsSubnormal() && a.SignBit() }
func (a F128) IsPositiveNormal() bool    { return a.decode().isNormal() && !a.SignBit() }
func (a F128) IsNegativeNormal() bool    { return a.decode().isNormal() && a.SignBit() }
func (a F128) IsPositiveInfinity() bool  { return a.IsInf() && !a.SignBit() }
func (a F128) IsNegativeInfinity() bool  { return a.IsInf() && a.SignBit() }

func (a F128) Add(ctx *Context, b F128, rm RoundingMode) F128 {
	return f128Of(addBits(ctx, activePolicy, f128Info, rm, a.u(), b.u(), false))
}

func (a F128) Sub(ctx *Context, b F128, rm RoundingMode) F128 {
	return f128Of(addBits(ctx, activePolicy, f128Info, rm, a.u(), b.u(), true))
}

func (a F128) Mul(ctx *Context, b F128, rm RoundingMode) F128 {
	return f128Of(mulBits(ctx, activePolicy, f128Info, rm, a.u(), b.u()))
}

func (a F128) Div(ctx *Context, b F128, rm RoundingMode) F128 {
	return f128Of(divBits(ctx, activePolicy, f128Info, rm, a.u(), b.u()))
}

func (a F128) Rem(ctx *Context, b F128) F128 {
	return f128Of(remBits(ctx, activePolicy, f128Info, a.u(), b.u()))
}

func (a F128) FusedMulAdd(ctx *Context, b, c F128, rm RoundingMode) F128 {
	return f128Of(fmaBits(ctx, activePolicy, f128Info, rm, a.u(), b.u(), c.u()))
}

func (a F128) Sqrt(ctx *Context, rm RoundingMode) F128 {
	return f128Of(sqrtBits(ctx, activePolicy, f128Info, rm, a.u()))
}

func (a F128) RoundToIntegral(ctx *Context, rm RoundingMode) F128 {
	return f128Of(roundIntBits(ctx, activePolicy, f128Info, rm, a.u(), false))
}

func (a F128) Neg() F128 { return F128{hi: a.hi ^ 1<<63, lo: a.lo} }
func (a F128) Abs() F128 { return F128{hi: a.hi &^ (1 << 63), lo: a.lo} }

func (a F128) Eq(ctx *Context, b F128) bool      { return eqBits(ctx, f128Info, a.u(), b.u(), false) }
func (a F128) Lt(ctx *Context, b F128) bool      { return ltBits(ctx, f128Info, a.u(), b.u(), true) }
func (a F128) Le(ctx *Context, b F128) bool      { return leBits(ctx, f128Info, a.u(), b.u(), true) }
func (a F128) LtQuiet(ctx *Context, b F128) bool { return ltBits(ctx, f128Info, a.u(), b.u(), false) }
func (a F128) LeQuiet(ctx *Context, b F128) bool { return leBits(ctx, f128Info, a.u(), b.u(), false) }
func (a F128) EqSignaling(ctx *Context, b F128) bool {
	return eqBits(ctx, f128Info, a.u(), b.u(), true)
}

func (a F128) Compare(ctx *Context, b F128) (int, bool) {
	return compareBits(ctx, f128Info, a.u(), b.u(), false)
}

func (a F128) ToF16(ctx *Context, rm RoundingMode) F16 {
	return f16Of(cvtBits(ctx, activePolicy, f128Info, f16Info, rm, a.u()))
}

func (a F128) ToBF16(ctx *Context, rm RoundingMode) BF16 {
	return bf16Of(cvtBits(ctx, activePolicy, f128Info, bf16Info, rm, a.u()))
}

func (a F128) ToF32(ctx *Context, rm RoundingMode) F32 {
	return f32Of(cvtBits(ctx, activePolicy, f128Info, f32Info, rm, a.u()))
}

func (a F128) ToF64(ctx *Context, rm RoundingMode) F64 {
	return f64Of(cvtBits(ctx, activePolicy, f128Info, f64Info, rm, a.u()))
}

func (a F128) ToExtF80(ctx *Context, rm RoundingMode) ExtF80 {
	return ext80Of(cvtBits(ctx, activePolicy, f128Info, ext80Info, rm, a.u()))
}

func (a F128) ToF128(*Context, RoundingMode) F128 { return a }

func (a F128) ToU32(ctx *Context, rm RoundingMode, exact bool) uint32 {
	return uint32(toIntBits(ctx, activePolicy, f128Info, rm, a.u(), 32, false, exact))
}

func (a F128) ToU64(ctx *Context, rm RoundingMode, exact bool) uint64 {
	return toIntBits(ctx, activePolicy, f128Info, rm, a.u(), 64, false, exact)
}

func (a F128) ToI32(ctx *Context, rm RoundingMode, exact bool) int32 {
	return int32(uint32(toIntBits(ctx, activePolicy, f128Info, rm, a.u(), 32, true, exact)))
}

func (a F128) ToI64(ctx *Context, rm RoundingMode, exact bool) int64 {
	return int64(toIntBits(ctx, activePolicy, f128Info, rm, a.u(), 64, true, exact))
}
