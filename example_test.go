package wrapnum_test

import (
	"errors"
	"fmt"

	"github.com/hupe1980/wrapnum"
)

// ExampleNew demonstrates constructing a bounded value.
func ExampleNew() {
	n, err := wrapnum.New[uint32](4, 6)
	if err != nil {
		panic(err)
	}

	fmt.Println(n)
	// Output: 4 (mod 6)
}

// ExampleAdd demonstrates the wraparound behavior of addition: the sum is
// reduced by the left operand's wrap, and the right operand's wrap is
// discarded.
func ExampleAdd() {
	a := wrapnum.MustNew[uint32](3, 6)
	b := wrapnum.MustNew[uint32](4, 5)

	sum, err := wrapnum.Add(a, b)
	if err != nil {
		panic(err)
	}

	fmt.Println(sum)
	// Output: 1 (mod 6)
}

// ExampleAddValueAssign demonstrates a modular counter advanced in place by
// a bare operand.
func ExampleAddValueAssign() {
	cursor := wrapnum.MustNew[uint16](0, 8) // ring of 8 slots

	for i := 0; i < 11; i++ {
		if err := wrapnum.AddValueAssign(&cursor, uint16(1)); err != nil {
			panic(err)
		}
	}

	fmt.Println(cursor.Value())
	// Output: 3
}

// ExampleSub demonstrates that subtraction fails on underflow instead of
// silently wrapping.
func ExampleSub() {
	n := wrapnum.MustNew[uint32](5, 7)

	_, err := wrapnum.SubValue(n, uint32(6))
	fmt.Println(errors.Is(err, wrapnum.ErrUnderflow))
	// Output: true
}
