package graph

// Infinity returns the "no path" sentinel for W: its maximum value.
//
// No real path ever carries this length. Sums that would reach or exceed it
// saturate to it (see SaturatingAdd), so an overlong path is reported as
// unreachable instead of wrapping around to a small number.
func Infinity[W Weight]() W {
	return ^W(0)
}

// SaturatingAdd returns a+b, or Infinity when either operand is Infinity or
// the sum overflows W.
// Complexity: O(1).
func SaturatingAdd[W Weight](a, b W) W {
	inf := ^W(0)
	if a == inf || b == inf {
		return inf
	}
	s := a + b
	if s < a { // unsigned wrap-around
		return inf
	}

	return s
}
