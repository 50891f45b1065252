package abi

import (
	"github.com/WilfredTA/fe/internal/options"
)

// Location identifies which kind of source buffer a decode reads from. The
// distinction affects only the bounds-checking policy, never the layout.
type Location uint8

const (
	// Calldata is a read-only buffer whose full extent is fixed at call
	// entry. Tail sections must appear in monotonically non-decreasing
	// offset order as they are consumed.
	Calldata Location = iota + 1

	// Memory is a mutable, randomly addressable buffer. Tail sections may
	// be visited in any order, including overlapping regions.
	Memory
)

func (l Location) String() string {
	switch l {
	case Calldata:
		return "calldata"
	case Memory:
		return "memory"
	default:
		return "unknown"
	}
}

// TailOrder is the policy applied to dynamic-member offsets while decoding
// one region.
type TailOrder uint8

const (
	// TailOrderDefault derives the policy from the location: strict for
	// calldata, any for memory.
	TailOrderDefault TailOrder = iota

	// TailOrderStrict requires tail offsets to be monotonically
	// non-decreasing within each region.
	TailOrderStrict

	// TailOrderAny accepts tails at any in-bounds offset, in any order.
	TailOrderAny
)

type decodeConfig struct {
	order TailOrder
}

// DecodeOption represents a functional option for configuring a decode.
// This is a type alias for the generic Option interface specialized for the
// decode configuration.
type DecodeOption = options.Option[*decodeConfig]

// WithTailOrder overrides the tail ordering policy that would otherwise be
// derived from the location. The strictness difference between calldata and
// memory is deliberate policy, not layout: use this option to apply either
// policy to either location.
func WithTailOrder(order TailOrder) DecodeOption {
	return options.NoError(func(c *decodeConfig) {
		c.order = order
	})
}

// resolve returns the effective tail order for the given location.
func (c *decodeConfig) resolve(loc Location) TailOrder {
	if c.order != TailOrderDefault {
		return c.order
	}
	if loc == Calldata {
		return TailOrderStrict
	}

	return TailOrderAny
}
