// Package softfloat implements IEEE 754 floating-point arithmetic
// in software, over plain integer operations. Results are specified at
// the bit level: a computation performed through this package yields
// the same encodings and the same exception flags on every platform,
// every architecture, and every run, regardless of the host FPU, its
// rounding configuration, or contractions applied by a compiler. The
// intended uses are deterministic simulation (lockstep networking,
// replays), hardware and ISA modelling, and testing of float-handling
// code against a known-good reference.
//
// Six formats are supported, each with its own value type: [F16]
// (binary16), [BF16] (bfloat16), [F32] (binary32), [F64] (binary64),
// [ExtF80] (x87 80-bit extended), and [F128] (binary128). A value is
// an immutable bit pattern; it is built from raw bits with the
// FromBits constructor of its type, from an integer with the
// FromU32/FromU64/FromI32/FromI64 constructors, or bridged from host
// floats with [F32FromFloat32] and [F64FromFloat64]. Every bit pattern
// of the right width is accepted, NaNs and non-canonical Extended80
// encodings included. All six types implement [Float], so code can be
// written generically over the format.
//
// Operations that can round take an explicit [RoundingMode]; there is
// no ambient mode. All five IEEE directions are available, including
// [TiesToAway]. Results are correctly rounded in all formats and all
// modes, and fused multiply-add rounds once.
//
// Exception flags accumulate in a [Context] supplied by the caller.
// Flags are sticky: operations only ever OR new flags in, and nothing
// clears them except [Context.Reset]. A Context is deliberately dumb
// state with no locking; give each goroutine (or each logical task,
// when flag attribution matters) its own. A nil *Context is accepted
// everywhere and simply discards flags.
//
// NaN handling differs between real architectures, so it is selected
// at build time rather than at run time. The default profile matches
// RISC-V: NaN results are always the canonical quiet NaN, integer
// conversions saturate the RISC-V way, and tininess is detected after
// rounding. Building with the softfloat_x86 tag switches to x87/SSE
// behaviour (NaN operands propagate their payloads, invalid integer
// conversions return the "integer indefinite"), and softfloat_arm to
// AArch64 behaviour (tininess before rounding, invalid conversions
// return zero on NaN). Setting both tags is a compile error; [Arch]
// reports the profile that was compiled in.
package softfloat
