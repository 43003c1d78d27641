package softfloat

import (
	"testing"

	"github.com/dalance/go-softfloat/softfloat/internal/arith"
)

// The engine takes the architecture profile as a parameter, so all
// three profiles are testable from a single build; the build tags only
// decide which one the public API binds to.

func u64Of(x uint64) arith.U128 { return arith.U128{Lo: x} }

func TestPolicyDefaultNaNPatterns(t *testing.T) {
	cases := []struct {
		pol  *nanPolicy
		fi   *fmtInfo
		want arith.U128
	}{
		{&policyRISCV, f16Info, u64Of(0x7E00)},
		{&policyRISCV, bf16Info, u64Of(0x7FC0)},
		{&policyRISCV, f32Info, u64Of(0x7FC00000)},
		{&policyRISCV, f64Info, u64Of(0x7FF8000000000000)},
		{&policyRISCV, ext80Info, arith.U128{Hi: 0x7FFF, Lo: 0xC000000000000000}},
		{&policyRISCV, f128Info, arith.U128{Hi: 0x7FFF800000000000}},
		{&policyX86, f16Info, u64Of(0xFE00)},
		{&policyX86, f64Info, u64Of(0xFFF8000000000000)},
		{&policyX86, ext80Info, arith.U128{Hi: 0xFFFF, Lo: 0xC000000000000000}},
		{&policyX86, f128Info, arith.U128{Hi: 0xFFFF800000000000}},
		{&policyARM, f64Info, u64Of(0x7FF8000000000000)},
	}
	for _, tc := range cases {
		got := tc.pol.defaultNaN(tc.fi)
		if got != tc.want {
			t.Fatalf("ERR: %s %s default NaN: got %016X_%016X, expected %016X_%016X",
				tc.pol.name, tc.fi.pub.Name, got.Hi, got.Lo, tc.want.Hi, tc.want.Lo)
		}
	}
}

func TestPolicyNaNPropagation(t *testing.T) {
	one := u64Of(0x3FF0000000000000)
	snan := u64Of(0x7FF4000000000001)
	qnanA := u64Of(0xFFF8000012345678)
	qnanB := u64Of(0x7FF8000000ABCDEF)

	// A propagating profile keeps the first NaN operand, quieted.
	ctx := NewContext()
	got := mulBits(ctx, &policyX86, f64Info, TiesToEven, snan, one)
	if got.Lo != 0x7FFC000000000001 {
		t.Fatalf("ERR: x86 snan*1: got %016X", got.Lo)
	}
	if ctx.Flags() != FlagInvalid {
		t.Fatalf("ERR: x86 snan*1 flags: got %v", ctx.Flags())
	}

	ctx.Reset()
	got = mulBits(ctx, &policyX86, f64Info, TiesToEven, one, qnanA)
	if got.Lo != 0xFFF8000012345678 {
		t.Fatalf("ERR: x86 1*qnan: got %016X", got.Lo)
	}
	if ctx.Flags() != 0 {
		t.Fatalf("ERR: x86 1*qnan flags: got %v", ctx.Flags())
	}

	ctx.Reset()
	got = addBits(ctx, &policyX86, f64Info, TiesToEven, qnanA, qnanB, false)
	if got.Lo != qnanA.Lo {
		t.Fatalf("ERR: x86 qnan+qnan: got %016X, expected first operand", got.Lo)
	}

	// Substituting profiles always produce the canonical NaN.
	for _, pol := range []*nanPolicy{&policyRISCV, &policyARM} {
		ctx.Reset()
		got = mulBits(ctx, pol, f64Info, TiesToEven, one, qnanA)
		if got.Lo != 0x7FF8000000000000 {
			t.Fatalf("ERR: %s 1*qnan: got %016X", pol.name, got.Lo)
		}
		if ctx.Flags() != 0 {
			t.Fatalf("ERR: %s 1*qnan flags: got %v", pol.name, ctx.Flags())
		}

		ctx.Reset()
		got = mulBits(ctx, pol, f64Info, TiesToEven, snan, one)
		if got.Lo != 0x7FF8000000000000 {
			t.Fatalf("ERR: %s snan*1: got %016X", pol.name, got.Lo)
		}
		if ctx.Flags() != FlagInvalid {
			t.Fatalf("ERR: %s snan*1 flags: got %v", pol.name, ctx.Flags())
		}
	}
}

func TestPolicyIntSaturation(t *testing.T) {
	nan := u64Of(0x7FF8000000000000)
	big := u64Of(0x41E0000000000000) // 2^31
	negOne := u64Of(0xBFF0000000000000)

	cases := []struct {
		name   string
		pol    *nanPolicy
		in     arith.U128
		width  uint32
		signed bool
		want   uint64
	}{
		{"riscv nan i32", &policyRISCV, nan, 32, true, 0x7FFFFFFF},
		{"riscv nan u64", &policyRISCV, nan, 64, false, 0xFFFFFFFFFFFFFFFF},
		{"riscv neg u32", &policyRISCV, negOne, 32, false, 0},
		{"x86 nan i32", &policyX86, nan, 32, true, 0x80000000},
		{"x86 pos i32", &policyX86, big, 32, true, 0x80000000},
		{"x86 neg u32", &policyX86, negOne, 32, false, 0xFFFFFFFF},
		{"x86 neg u64", &policyX86, negOne, 64, false, 0xFFFFFFFFFFFFFFFF},
		{"x86 nan i64", &policyX86, nan, 64, true, 0x8000000000000000},
		{"arm nan i32", &policyARM, nan, 32, true, 0},
		{"arm nan u64", &policyARM, nan, 64, false, 0},
		{"arm pos i32", &policyARM, big, 32, true, 0x7FFFFFFF},
		{"arm neg u32", &policyARM, negOne, 32, false, 0},
	}
	for _, tc := range cases {
		ctx := NewContext()
		got := toIntBits(ctx, tc.pol, f64Info, TiesToEven, tc.in, tc.width, tc.signed, true)
		if got != tc.want {
			t.Fatalf("ERR: %s: got %016X, expected %016X", tc.name, got, tc.want)
		}
		if ctx.Flags() != FlagInvalid {
			t.Fatalf("ERR: %s flags: got %v", tc.name, ctx.Flags())
		}
	}
}

// (2^27-1)*(2^27+1)*2^-1076 = (2^54-1)*2^-1076 rounds up to the
// smallest binary64 normal. With tininess detected after rounding the
// result is not tiny; detected before rounding, it is.
func TestPolicyTininessMode(t *testing.T) {
	a := u64Of(0x1FFFFFFFFC000000)
	b := u64Of(0x2000000002000000)

	ctx := NewContext()
	got := mulBits(ctx, &policyRISCV, f64Info, TiesToEven, a, b)
	if got.Lo != 0x0010000000000000 {
		t.Fatalf("ERR: riscv result: got %016X", got.Lo)
	}
	if ctx.Flags() != FlagInexact {
		t.Fatalf("ERR: riscv flags: got %v, expected inexact only", ctx.Flags())
	}

	ctx.Reset()
	got = mulBits(ctx, &policyARM, f64Info, TiesToEven, a, b)
	if got.Lo != 0x0010000000000000 {
		t.Fatalf("ERR: arm result: got %016X", got.Lo)
	}
	if ctx.Flags() != FlagInexact|FlagUnderflow {
		t.Fatalf("ERR: arm flags: got %v, expected inexact|underflow", ctx.Flags())
	}
}

func TestPolicyNaNConversion(t *testing.T) {
	// Propagating profile: payload bits shift between fraction fields.
	ctx := NewContext()
	got := cvtBits(ctx, &policyX86, f32Info, f16Info, TiesToEven, u64Of(0x7FC12345))
	if got.Lo != 0x7E09 {
		t.Fatalf("ERR: x86 qnan f32->f16: got %04X", got.Lo)
	}
	if ctx.Flags() != 0 {
		t.Fatalf("ERR: x86 qnan f32->f16 flags: got %v", ctx.Flags())
	}

	ctx.Reset()
	got = cvtBits(ctx, &policyX86, f32Info, f16Info, TiesToEven, u64Of(0x7F812345))
	if got.Lo != 0x7E09 {
		t.Fatalf("ERR: x86 snan f32->f16: got %04X", got.Lo)
	}
	if ctx.Flags() != FlagInvalid {
		t.Fatalf("ERR: x86 snan f32->f16 flags: got %v", ctx.Flags())
	}

	// The explicit integer bit stays out of the payload and the sign
	// survives the trip.
	ctx.Reset()
	in := arith.U128{Hi: 0xFFFF, Lo: 0xC123456789ABCDEF}
	got = cvtBits(ctx, &policyX86, ext80Info, f16Info, TiesToEven, in)
	if got.Lo != 0xFE09 {
		t.Fatalf("ERR: x86 qnan ext80->f16: got %04X", got.Lo)
	}

	// Substituting profiles ignore the payload entirely.
	ctx.Reset()
	got = cvtBits(ctx, &policyRISCV, f32Info, f16Info, TiesToEven, u64Of(0x7FC12345))
	if got.Lo != 0x7E00 {
		t.Fatalf("ERR: riscv qnan f32->f16: got %04X", got.Lo)
	}

	// Widening a payload under the propagating profile keeps it
	// top-aligned below the quiet bit.
	ctx.Reset()
	got = cvtBits(ctx, &policyX86, f16Info, f32Info, TiesToEven, u64Of(0x7E09))
	if got.Lo != 0x7FC12000 {
		t.Fatalf("ERR: x86 qnan f16->f32: got %08X", got.Lo)
	}
}

func TestArchDefault(t *testing.T) {
	if Arch() != "riscv" {
		t.Fatalf("ERR: default profile: got %q", Arch())
	}
	if activePolicy != &policyRISCV {
		t.Fatalf("ERR: active policy does not match reported profile")
	}
}
