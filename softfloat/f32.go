package softfloat

import (
	"math"

	"github.com/dalance/go-softfloat/softfloat/internal/arith"
)

// F32 is an IEEE 754 binary32 value held as its raw bit pattern. The
// method contracts match F64's.
type F32 struct {
	bits uint32
}

func F32FromBits(b uint32) F32 { return F32{bits: b} }
func (a F32) Bits() uint32     { return a.bits }

// F32FromFloat32 bridges a host float32 in by bit pattern, exactly.
func F32FromFloat32(v float32) F32 { return F32{bits: math.Float32bits(v)} }

// Float32 bridges out to the host type, exactly.
func (a F32) Float32() float32 { return math.Float32frombits(a.bits) }

func (a F32) u() arith.U128  { return arith.U128{Lo: uint64(a.bits)} }
func f32Of(x arith.U128) F32 { return F32{bits: uint32(x.Lo)} }
func (a F32) decode() fval   { return f32Info.decode(a.u()) }

func (F32) Format() Format { return Binary32 }

func F32PositiveZero() F32     { return f32Of(f32Info.zero(false)) }
func F32NegativeZero() F32     { return f32Of(f32Info.zero(true)) }
func F32PositiveInfinity() F32 { return f32Of(f32Info.inf(false)) }
func F32NegativeInfinity() F32 { return f32Of(f32Info.inf(true)) }
func F32QuietNaN() F32         { return f32Of(activePolicy.defaultNaN(f32Info)) }

func F32FromU32(ctx *Context, x uint32, rm RoundingMode) F32 {
	return f32Of(fromU64Bits(ctx, activePolicy, f32Info, rm, uint64(x)))
}

func F32FromU64(ctx *Context, x uint64, rm RoundingMode) F32 {
	return f32Of(fromU64Bits(ctx, activePolicy, f32Info, rm, x))
}

func F32FromI32(ctx *Context, x int32, rm RoundingMode) F32 {
	return f32Of(fromI64Bits(ctx, activePolicy, f32Info, rm, int64(x)))
}

func F32FromI64(ctx *Context, x int64, rm RoundingMode) F32 {
	return f32Of(fromI64Bits(ctx, activePolicy, f32Info, rm, x))
}

func (a F32) SignBit() bool    { return a.bits>>31 != 0 }
func (a F32) Exponent() uint32 { return a.bits >> 23 & 0xFF }
func (a F32) Fraction() uint32 { return a.bits & (1<<23 - 1) }

func (a F32) IsNaN() bool          { return a.decode().isNaN() }
func (a F32) IsSignalingNaN() bool { return a.decode().cls == clsSNaN }
func (a F32) IsInf() bool          { return a.decode().cls == clsInf }
func (a F32) IsZero() bool         { return a.decode().cls == clsZero }
func (a F32) IsSubnormal() bool    { return a.decode().isSubnormal() }

func (a F32) IsPositive() bool          { return !a.SignBit() }
func (a F32) IsNegative() bool          { return a.SignBit() }
func (a F32) IsPositiveZero() bool      { return a.IsZero() && !a.SignBit() }
func (a F32) IsNegativeZero() bool      { return a.IsZero() && a.SignBit() }
func (a F32) IsPositiveSubnormal() bool { return a.IsSubnormal() && !a.SignBit() }
func (a F32) IsNegativeSubnormal() bool { return a.IsSubnormal() && a.SignBit() }
func (a F32) IsPositiveNormal() bool    { return a.decode().isNormal() && !a.SignBit() }
func (a F32) IsNegativeNormal() bool    { return a.decode().isNormal() && a.SignBit() }
func (a F32) IsPositiveInfinity() bool  { return a.IsInf() && !a.SignBit() }
func (a F32) IsNegativeInfinity() bool  { return a.IsInf() && a.SignBit() }

func (a F32) Add(ctx *Context, b F32, rm RoundingMode) F32 {
	return f32Of(addBits(ctx, activePolicy, f32Info, rm, a.u(), b.u(), false))
}

func (a F32) Sub(ctx *Context, b F32, rm RoundingMode) F32 {
	return f32Of(addBits(ctx, activePolicy, f32Info, rm, a.u(), b.u(), true))
}

func (a F32) Mul(ctx *Context, b F32, rm RoundingMode) F32 {
	return f32Of(mulBits(ctx, activePolicy, f32Info, rm, a.u(), b.u()))
}

func (a F32) Div(ctx *Context, b F32, rm RoundingMode) F32 {
	return f32Of(divBits(ctx, activePolicy, f32Info, rm, a.u(), b.u()))
}

func (a F32) Rem(ctx *Context, b F32) F32 {
	return f32Of(remBits(ctx, activePolicy, f32Info, a.u(), b.u()))
}

func (a F32) FusedMulAdd(ctx *Context, b, c F32, rm RoundingMode) F32 {
	return f32Of(fmaBits(ctx, activePolicy, f32Info, rm, a.u(), b.u(), c.u()))
}

func (a F32) Sqrt(ctx *Context, rm RoundingMode) F32 {
	return f32Of(sqrtBits(ctx, activePolicy, f32Info, rm, a.u()))
}

func (a F32) RoundToIntegral(ctx *Context, rm RoundingMode) F32 {
	return f32Of(roundIntBits(ctx, activePolicy, f32Info, rm, a.u(), false))
}

func (a F32) Neg() F32 { return F32{bits: a.bits ^ 1<<31} }
func (a F32) Abs() F32 { return F32{bits: a.bits &^ (1 << 31)} }

func (a F32) Eq(ctx *Context, b F32) bool      { return eqBits(ctx, f32Info, a.u(), b.u(), false) }
func (a F32) Lt(ctx *Context, b F32) bool      { return ltBits(ctx, f32Info, a.u(), b.u(), true) }
func (a F32) Le(ctx *Context, b F32) bool      { return leBits(ctx, f32Info, a.u(), b.u(), true) }
func (a F32) LtQuiet(ctx *Context, b F32) bool { return ltBits(ctx, f32Info, a.u(), b.u(), false) }
func (a F32) LeQuiet(ctx *Context, b F32) bool { return leBits(ctx, f32Info, a.u(), b.u(), false) }
func (a F32) EqSignaling(ctx *Context, b F32) bool {
	return eqBits(ctx, f32Info, a.u(), b.u(), true)
}

func (a F32) Compare(ctx *Context, b F32) (int, bool) {
	return compareBits(ctx, f32Info, a.u(), b.u(), false)
}

func (a F32) ToF16(ctx *Context, rm RoundingMode) F16 {
	return f16Of(cvtBits(ctx, activePolicy, f32Info, f16Info, rm, a.u()))
}

func (a F32) ToBF16(ctx *Context, rm RoundingMode) BF16 {
	return bf16Of(cvtBits(ctx, activePolicy, f32Info, bf16Info, rm, a.u()))
}

func (a F32) ToF32(*Context, RoundingMode) F32 { return a }

func (a F32) ToF64(ctx *Context, rm RoundingMode) F64 {
	return f64Of(cvtBits(ctx, activePolicy, f32Info, f64Info, rm, a.u()))
}

func (a F32) ToExtF80(ctx *Context, rm RoundingMode) ExtF80 {
	return ext80Of(cvtBits(ctx, activePolicy, f32Info, ext80Info, rm, a.u()))
}

func (a F32) ToF128(ctx *Context, rm RoundingMode) F128 {
	return f128Of(cvtBits(ctx, activePolicy, f32Info, f128Info, rm, a.u()))
}

func (a F32) ToU32(ctx *Context, rm RoundingMode, exact bool) uint32 {
	return uint32(toIntBits(ctx, activePolicy, f32Info, rm, a.u(), 32, false, exact))
}

func (a F32) ToU64(ctx *Context, rm RoundingMode, exact bool) uint64 {
	return toIntBits(ctx, activePolicy, f32Info, rm, a.u(), 64, false, exact)
}

func (a F32) ToI32(ctx *Context, rm RoundingMode, exact bool) int32 {
	return int32(uint32(toIntBits(ctx, activePolicy, f32Info, rm, a.u(), 32, true, exact)))
}

func (a F32) ToI64(ctx *Context, rm RoundingMode, exact bool) int64 {
	return int64(toIntBits(ctx, activePolicy, f32Info, rm, a.u(), 64, true, exact))
}
