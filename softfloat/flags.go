package softfloat

import "strings"

// Flags is a set of the five IEEE 754 exception conditions. The bit
// values match the Berkeley SoftFloat convention, so accumulated flags
// can be exchanged with code using that layout.
type Flags uint8

const (
	// FlagInexact reports a result that differs from the exact value.
	FlagInexact Flags = 1 << iota
	// FlagUnderflow reports a tiny and inexact result.
	FlagUnderflow
	// FlagOverflow reports a result beyond the finite range.
	FlagOverflow
	// FlagInfinite reports division of a finite nonzero value by zero.
	FlagInfinite
	// FlagInvalid reports an operation with no useful definition.
	FlagInvalid
)

const flagsMask = FlagInexact | FlagUnderflow | FlagOverflow | FlagInfinite | FlagInvalid

// FlagsFromBits rebuilds a flag set from its raw bit pattern; bits
// outside the five defined conditions are dropped.
func FlagsFromBits(b uint8) Flags { return Flags(b) & flagsMask }

// Bits returns the raw bit pattern of the flag set.
func (f Flags) Bits() uint8 { return uint8(f) }

func (f Flags) Inexact() bool   { return f&FlagInexact != 0 }
func (f Flags) Underflow() bool { return f&FlagUnderflow != 0 }
func (f Flags) Overflow() bool  { return f&FlagOverflow != 0 }
func (f Flags) Infinite() bool  { return f&FlagInfinite != 0 }
func (f Flags) Invalid() bool   { return f&FlagInvalid != 0 }

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for _, e := range []struct {
		bit  Flags
		name string
	}{
		{FlagInexact, "inexact"},
		{FlagUnderflow, "underflow"},
		{FlagOverflow, "overflow"},
		{FlagInfinite, "infinite"},
		{FlagInvalid, "invalid"},
	} {
		if f&e.bit != 0 {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, "|")
}

// Context accumulates exception flags across operations. Flags are
// sticky: an operation can only turn bits on, and they stay on until
// Reset. The caller owns the Context; operations sharing one must not
// run concurrently, but distinct Contexts are fully independent, so
// the usual arrangement is one per goroutine. A nil Context is allowed
// and simply discards flags.
type Context struct {
	flags Flags
}

// NewContext returns an empty flag accumulator.
func NewContext() *Context { return &Context{} }

// Flags returns the conditions accumulated so far.
func (c *Context) Flags() Flags {
	if c == nil {
		return 0
	}
	return c.flags
}

// Reset clears the accumulator.
func (c *Context) Reset() {
	if c != nil {
		c.flags = 0
	}
}

// Raise merges the given conditions into the accumulator. Operations
// use it internally; it is exported so a caller can re-inject flags
// saved from another accumulator.
func (c *Context) Raise(f Flags) {
	if c != nil {
		c.flags |= f
	}
}
