//go:build softfloat_x86

package softfloat

const archName = "x86"

var activePolicy = &policyX86
