//go:build softfloat_arm

package softfloat

const archName = "arm"

var activePolicy = &policyARM
