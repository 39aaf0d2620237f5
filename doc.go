// Package wrapnum provides WrapNum, a bounded unsigned-integer value type.
//
// A WrapNum holds a magnitude confined to [0, wrap), where wrap is an
// exclusive upper bound chosen per value at construction time. The zero of
// the range is always reachable; the wrap itself is not. Typical consumers
// are modular counters, ring-buffer indices and cyclic identifiers.
//
// # Wraparound policy
//
// Add and Mul reduce their result modulo the left operand's wrap, so a sum
// or product that passes the wrap comes back around to zero. The reduction
// is exact: intermediates are computed with full carry/double-width
// arithmetic, never truncated at the storage width first. Sub and Rem
// operate on raw magnitudes instead — Sub fails on underflow rather than
// wrapping to a large value, and Rem uses the right operand (not the wrap)
// as its modulus. Under this policy every operation's result satisfies
// value < wrap, so Value always reads below Wrap.
//
// # Operands
//
// Each operator accepts either another WrapNum or a bare unsigned integer,
// of any unsigned width. The right operand is cast to the left operand's
// width before computing; a magnitude that does not fit is a
// *CastOverflowError, never a silent truncation. The result always carries
// the left operand's wrap — the right operand's wrap, if it has one, is
// discarded.
//
// # Value semantics
//
// WrapNum is a plain copyable aggregate of two scalars. The value-returning
// operators are pure; the Assign forms mutate only their receiver. Distinct
// copies may be used from multiple goroutines without synchronization.
package wrapnum
