package wrapnum

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/wrapnum/internal/hash"
)

// WrapNum is an unsigned integer confined to [0, wrap).
//
// The bound relationship value < wrap is validated once, by New. Every
// operator in this package preserves it (see the package documentation for
// the wraparound policy), so the raw magnitude returned by Value is always
// below Wrap.
type WrapNum[T constraints.Unsigned] struct {
	value T
	wrap  T
}

// New returns a WrapNum holding value with the exclusive upper bound wrap.
// It fails with ErrOutOfRange when value >= wrap; this also rejects a zero
// wrap, for which no magnitude is valid.
func New[T constraints.Unsigned](value, wrap T) (WrapNum[T], error) {
	if value >= wrap {
		return WrapNum[T]{}, fmt.Errorf("%w: value %d is not below wrap %d", ErrOutOfRange, value, wrap)
	}
	return WrapNum[T]{value: value, wrap: wrap}, nil
}

// MustNew is like New but panics when value >= wrap. Use it for
// compile-time-constant bounds where a violation is a programming error.
func MustNew[T constraints.Unsigned](value, wrap T) WrapNum[T] {
	n, err := New(value, wrap)
	if err != nil {
		panic(err)
	}
	return n
}

// Value returns the current magnitude. The raw stored magnitude is
// returned as-is, with no re-normalization; it is always below Wrap.
func (n WrapNum[T]) Value() T {
	return n.value
}

// Wrap returns the exclusive upper bound. No operation changes it.
func (n WrapNum[T]) Wrap() T {
	return n.wrap
}

// Equal reports whether n and other hold the same magnitude and the same
// wrap. Two values with equal magnitudes but different wraps are not equal.
func (n WrapNum[T]) Equal(other WrapNum[T]) bool {
	return n.value == other.value && n.wrap == other.wrap
}

// Hash returns a checksum of the (value, wrap) pair. It is consistent with
// Equal: equal values hash identically, and the wrap takes part in the
// hash, not only the magnitude.
func (n WrapNum[T]) Hash() uint32 {
	return hash.Uint64Pair(uint64(n.value), uint64(n.wrap))
}

// String implements fmt.Stringer.
func (n WrapNum[T]) String() string {
	return fmt.Sprintf("%d (mod %d)", n.value, n.wrap)
}
