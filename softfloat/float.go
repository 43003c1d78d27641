package softfloat

// Float is the method surface shared by all six value types, for code
// generic over the format. T is the implementing type itself. Raw
// accessors whose widths differ per format (Bits, Fraction) are not
// part of it.
type Float[T any] interface {
	Format() Format

	SignBit() bool
	Exponent() uint32

	IsNaN() bool
	IsSignalingNaN() bool
	IsInf() bool
	IsZero() bool
	IsSubnormal() bool
	IsPositive() bool
	IsNegative() bool
	IsPositiveZero() bool
	IsNegativeZero() bool
	IsPositiveSubnormal() bool
	IsNegativeSubnormal() bool
	IsPositiveNormal() bool
	IsNegativeNormal() bool
	IsPositiveInfinity() bool
	IsNegativeInfinity() bool

	Add(ctx *Context, b T, rm RoundingMode) T
	Sub(ctx *Context, b T, rm RoundingMode) T
	Mul(ctx *Context, b T, rm RoundingMode) T
	Div(ctx *Context, b T, rm RoundingMode) T
	Rem(ctx *Context, b T) T
	FusedMulAdd(ctx *Context, b, c T, rm RoundingMode) T
	Sqrt(ctx *Context, rm RoundingMode) T
	RoundToIntegral(ctx *Context, rm RoundingMode) T
	Neg() T
	Abs() T

	Eq(ctx *Context, b T) bool
	Lt(ctx *Context, b T) bool
	Le(ctx *Context, b T) bool
	LtQuiet(ctx *Context, b T) bool
	LeQuiet(ctx *Context, b T) bool
	EqSignaling(ctx *Context, b T) bool
	Compare(ctx *Context, b T) (int, bool)

	ToF16(ctx *Context, rm RoundingMode) F16
	ToBF16(ctx *Context, rm RoundingMode) BF16
	ToF32(ctx *Context, rm RoundingMode) F32
	ToF64(ctx *Context, rm RoundingMode) F64
	ToExtF80(ctx *Context, rm RoundingMode) ExtF80
	ToF128(ctx *Context, rm RoundingMode) F128

	ToU32(ctx *Context, rm RoundingMode, exact bool) uint32
	ToU64(ctx *Context, rm RoundingMode, exact bool) uint64
	ToI32(ctx *Context, rm RoundingMode, exact bool) int32
	ToI64(ctx *Context, rm RoundingMode, exact bool) int64
}

var (
	_ Float[F16]    = F16{}
	_ Float[BF16]   = BF16{}
	_ Float[F32]    = F32{}
	_ Float[F64]    = F64{}
	_ Float[ExtF80] = ExtF80{}
	_ Float[F128]   = F128{}
)
