package softfloat

import (
	"math"

	"github.com/dalance/go-softfloat/softfloat/internal/arith"
)

// F64 is an IEEE 754 binary64 value held as its raw bit pattern. The
// zero value is +0.0. Arithmetic goes through the methods only; the
// host FPU is never involved, so results are identical on every
// platform for a given architecture profile.
type F64 struct {
	bits uint64
}

// F64FromBits reinterprets a bit pattern as an F64. Every pattern is
// valid.
func F64FromBits(b uint64) F64 { return F64{bits: b} }

// Bits returns the raw bit pattern.
func (a F64) Bits() uint64 { return a.bits }

// F64FromFloat64 bridges a host float64 in by bit pattern, exactly.
func F64FromFloat64(v float64) F64 { return F64{bits: math.Float64bits(v)} }

// Float64 bridges out to the host type, exactly.
func (a F64) Float64() float64 { return math.Float64frombits(a.bits) }

func (a F64) u() arith.U128  { return arith.U128{Lo: a.bits} }
func f64Of(x arith.U128) F64 { return F64{bits: x.Lo} }
func (a F64) decode() fval   { return f64Info.decode(a.u()) }

// Format reports the binary64 geometry.
func (F64) Format() Format { return Binary64 }

func F64PositiveZero() F64     { return f64Of(f64Info.zero(false)) }
func F64NegativeZero() F64     { return f64Of(f64Info.zero(true)) }
func F64PositiveInfinity() F64 { return f64Of(f64Info.inf(false)) }
func F64NegativeInfinity() F64 { return f64Of(f64Info.inf(true)) }

// F64QuietNaN returns the architecture profile's canonical quiet NaN.
func F64QuietNaN() F64 { return f64Of(activePolicy.defaultNaN(f64Info)) }

// F64FromU32 converts an unsigned integer; binary64 holds every uint32
// exactly, so rm is immaterial here and no flag can arise.
func F64FromU32(ctx *Context, x uint32, rm RoundingMode) F64 {
	return f64Of(fromU64Bits(ctx, activePolicy, f64Info, rm, uint64(x)))
}

// F64FromU64 converts an unsigned integer, rounding under rm when the
// value needs more than 53 bits.
func F64FromU64(ctx *Context, x uint64, rm RoundingMode) F64 {
	return f64Of(fromU64Bits(ctx, activePolicy, f64Info, rm, x))
}

func F64FromI32(ctx *Context, x int32, rm RoundingMode) F64 {
	return f64Of(fromI64Bits(ctx, activePolicy, f64Info, rm, int64(x)))
}

func F64FromI64(ctx *Context, x int64, rm RoundingMode) F64 {
	return f64Of(fromI64Bits(ctx, activePolicy, f64Info, rm, x))
}

// SignBit reports the raw sign bit, NaNs included.
func (a F64) SignBit() bool { return a.bits>>63 != 0 }

// Exponent returns the biased exponent field.
func (a F64) Exponent() uint32 { return uint32(a.bits>>52) & 0x7FF }

// Fraction returns the stored fraction field.
func (a F64) Fraction() uint64 { return a.bits & (1<<52 - 1) }

func (a F64) IsNaN() bool          { return a.decode().isNaN() }
func (a F64) IsSignalingNaN() bool { return a.decode().cls == clsSNaN }
func (a F64) IsInf() bool          { return a.decode().cls == clsInf }
func (a F64) IsZero() bool         { return a.decode().cls == clsZero }
func (a F64) IsSubnormal() bool    { return a.decode().isSubnormal() }

// IsPositive reports a clear sign bit; like the other sign-split
// predicates it answers for NaN patterns too.
func (a F64) IsPositive() bool          { return !a.SignBit() }
func (a F64) IsNegative() bool          { return a.SignBit() }
func (a F64) IsPositiveZero() bool      { return a.IsZero() && !a.SignBit() }
func (a F64) IsNegativeZero() bool      { return a.IsZero() && a.SignBit() }
func (a F64) IsPositiveSubnormal() bool { return a.IsSubnormal() && !a.SignBit() }
func (a F64) IsNegativeSubnormal() bool { return a.IsSubnormal() && a.SignBit() }
func (a F64) IsPositiveNormal() bool    { return a.decode().isNormal() && !a.SignBit() }
func (a F64) IsNegativeNormal() bool    { return a.decode().isNormal() && a.SignBit() }
func (a F64) IsPositiveInfinity() bool  { return a.IsInf() && !a.SignBit() }
func (a F64) IsNegativeInfinity() bool  { return a.IsInf() && a.SignBit() }

// Add returns a + b rounded under rm, merging any exception conditions
// into ctx.
func (a F64) Add(ctx *Context, b F64, rm RoundingMode) F64 {
	return f64Of(addBits(ctx, activePolicy, f64Info, rm, a.u(), b.u(), false))
}

// Sub returns a - b rounded under rm.
func (a F64) Sub(ctx *Context, b F64, rm RoundingMode) F64 {
	return f64Of(addBits(ctx, activePolicy, f64Info, rm, a.u(), b.u(), true))
}

// Mul returns a * b rounded under rm.
func (a F64) Mul(ctx *Context, b F64, rm RoundingMode) F64 {
	return f64Of(mulBits(ctx, activePolicy, f64Info, rm, a.u(), b.u()))
}

// Div returns a / b rounded under rm.
func (a F64) Div(ctx *Context, b F64, rm RoundingMode) F64 {
	return f64Of(divBits(ctx, activePolicy, f64Info, rm, a.u(), b.u()))
}

// Rem returns the IEEE 754 remainder a - n*b with n = a/b rounded to
// the nearest integer, ties to even. The remainder is exact, so it
// takes no rounding mode and never raises inexact.
func (a F64) Rem(ctx *Context, b F64) F64 {
	return f64Of(remBits(ctx, activePolicy, f64Info, a.u(), b.u()))
}

// FusedMulAdd returns a*b + c with a single rounding at the end.
func (a F64) FusedMulAdd(ctx *Context, b, c F64, rm RoundingMode) F64 {
	return f64Of(fmaBits(ctx, activePolicy, f64Info, rm, a.u(), b.u(), c.u()))
}

// Sqrt returns the square root rounded under rm. Negative nonzero
// operands raise invalid.
func (a F64) Sqrt(ctx *Context, rm RoundingMode) F64 {
	return f64Of(sqrtBits(ctx, activePolicy, f64Info, rm, a.u()))
}

// RoundToIntegral rounds to an integral value in the same format under
// rm. Following the usual quiet convention it never raises inexact.
func (a F64) RoundToIntegral(ctx *Context, rm RoundingMode) F64 {
	return f64Of(roundIntBits(ctx, activePolicy, f64Info, rm, a.u(), false))
}

// Neg flips the sign bit; a pure bit operation that applies to NaNs
// too and raises nothing.
func (a F64) Neg() F64 { return F64{bits: a.bits ^ 1<<63} }

// Abs clears the sign bit.
func (a F64) Abs() F64 { return F64{bits: a.bits &^ (1 << 63)} }

// Eq is the quiet equality predicate: unordered operands compare
// unequal, and only a signaling NaN raises invalid. Zeros of both
// signs are equal.
func (a F64) Eq(ctx *Context, b F64) bool {
	return eqBits(ctx, f64Info, a.u(), b.u(), false)
}

// Lt is the signaling less-than predicate: any NaN operand raises
// invalid and yields false.
func (a F64) Lt(ctx *Context, b F64) bool {
	return ltBits(ctx, f64Info, a.u(), b.u(), true)
}

// Le is the signaling less-or-equal predicate.
func (a F64) Le(ctx *Context, b F64) bool {
	return leBits(ctx, f64Info, a.u(), b.u(), true)
}

// LtQuiet is Lt without the invalid flag on quiet NaN operands.
func (a F64) LtQuiet(ctx *Context, b F64) bool {
	return ltBits(ctx, f64Info, a.u(), b.u(), false)
}

// LeQuiet is Le without the invalid flag on quiet NaN operands.
func (a F64) LeQuiet(ctx *Context, b F64) bool {
	return leBits(ctx, f64Info, a.u(), b.u(), false)
}

// EqSignaling is Eq raising invalid for any NaN operand.
func (a F64) EqSignaling(ctx *Context, b F64) bool {
	return eqBits(ctx, f64Info, a.u(), b.u(), true)
}

// Compare returns the ordering of a and b (negative, zero or positive)
// and whether they are unordered. It is quiet: only a signaling NaN
// raises invalid. When unordered is true the ordering is meaningless.
func (a F64) Compare(ctx *Context, b F64) (int, bool) {
	return compareBits(ctx, f64Info, a.u(), b.u(), false)
}

// ToF16 converts to binary16 under rm.
func (a F64) ToF16(ctx *Context, rm RoundingMode) F16 {
	return f16Of(cvtBits(ctx, activePolicy, f64Info, f16Info, rm, a.u()))
}

// ToBF16 converts to bfloat16 under rm.
func (a F64) ToBF16(ctx *Context, rm RoundingMode) BF16 {
	return bf16Of(cvtBits(ctx, activePolicy, f64Info, bf16Info, rm, a.u()))
}

// ToF32 converts to binary32 under rm.
func (a F64) ToF32(ctx *Context, rm RoundingMode) F32 {
	return f32Of(cvtBits(ctx, activePolicy, f64Info, f32Info, rm, a.u()))
}

// ToF64 is the identity conversion, kept so every format offers the
// full matrix.
func (a F64) ToF64(*Context, RoundingMode) F64 { return a }

// ToExtF80 converts to the 80-bit extended format; always exact.
func (a F64) ToExtF80(ctx *Context, rm RoundingMode) ExtF80 {
	return ext80Of(cvtBits(ctx, activePolicy, f64Info, ext80Info, rm, a.u()))
}

// ToF128 converts to binary128; always exact.
func (a F64) ToF128(ctx *Context, rm RoundingMode) F128 {
	return f128Of(cvtBits(ctx, activePolicy, f64Info, f128Info, rm, a.u()))
}

// ToU32 converts to an unsigned 32-bit integer, rounding under rm.
// NaN and out-of-range values raise invalid and saturate per the
// architecture profile. Inexact is raised only when exact is set.
func (a F64) ToU32(ctx *Context, rm RoundingMode, exact bool) uint32 {
	return uint32(toIntBits(ctx, activePolicy, f64Info, rm, a.u(), 32, false, exact))
}

// ToU64 converts to an unsigned 64-bit integer; see ToU32.
func (a F64) ToU64(ctx *Context, rm RoundingMode, exact bool) uint64 {
	return toIntBits(ctx, activePolicy, f64Info, rm, a.u(), 64, false, exact)
}

// ToI32 converts to a signed 32-bit integer; see ToU32.
func (a F64) ToI32(ctx *Context, rm RoundingMode, exact bool) int32 {
	return int32(uint32(toIntBits(ctx, activePolicy, f64Info, rm, a.u(), 32, true, exact)))
}

// ToI64 converts to a signed 64-bit integer; see ToU32.
func (a F64) ToI64(ctx *Context, rm RoundingMode, exact bool) int64 {
	return int64(toIntBits(ctx, activePolicy, f64Info, rm, a.u(), 64, true, exact))
}
