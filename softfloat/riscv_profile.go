//go:build !softfloat_x86 && !softfloat_arm

package softfloat

// Default profile. Exactly one arch file may be selected; building
// with both softfloat_x86 and softfloat_arm fails to compile.
const archName = "riscv"

var activePolicy = &policyRISCV
