package softfloat

import "github.com/dalance/go-softfloat/softfloat/internal/arith"

// RoundingMode selects how an inexact result maps to a representable
// value. Every operation that can be inexact takes the mode as an
// explicit argument; no mode is ever carried in hidden state or
// defaulted.
type RoundingMode uint8

const (
	// TiesToEven rounds to the nearest value, ties to the even
	// significand (the IEEE 754 default).
	TiesToEven RoundingMode = iota
	// TowardZero truncates.
	TowardZero
	// TowardNegative rounds toward negative infinity.
	TowardNegative
	// TowardPositive rounds toward positive infinity.
	TowardPositive
	// TiesToAway rounds to the nearest value, ties away from zero.
	TiesToAway
)

func (rm RoundingMode) String() string {
	switch rm {
	case TiesToEven:
		return "TiesToEven"
	case TowardZero:
		return "TowardZero"
	case TowardNegative:
		return "TowardNegative"
	case TowardPositive:
		return "TowardPositive"
	case TiesToAway:
		return "TiesToAway"
	}
	return "RoundingMode(invalid)"
}

// kernel maps the mode onto the arithmetic kernel's encoding. The
// enumeration is closed; anything else is a programming error.
func (rm RoundingMode) kernel() arith.Mode {
	switch rm {
	case TiesToEven:
		return arith.NearEven
	case TowardZero:
		return arith.MinMag
	case TowardNegative:
		return arith.Min
	case TowardPositive:
		return arith.Max
	case TiesToAway:
		return arith.NearMaxMag
	}
	panic("softfloat: invalid rounding mode")
}
