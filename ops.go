package wrapnum

import (
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/wrapnum/internal/conv"
	"github.com/hupe1980/wrapnum/internal/modmath"
)

// binOp combines two magnitudes at uint64 width. m is the left operand's
// wrap; a result must stay below m whenever the left magnitude does.
type binOp func(a, b, m uint64) (uint64, error)

func addOp(a, b, m uint64) (uint64, error) {
	return modmath.AddMod(a, b, m), nil
}

func mulOp(a, b, m uint64) (uint64, error) {
	return modmath.MulMod(a, b, m), nil
}

func subOp(a, b, _ uint64) (uint64, error) {
	if b > a {
		return 0, ErrUnderflow
	}
	return a - b, nil
}

func remOp(a, b, _ uint64) (uint64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a % b, nil
}

// compute casts the right operand into the left operand's width, applies op
// at uint64 width and rebuilds the result with the left operand's wrap.
func compute[T, U constraints.Unsigned](lhs WrapNum[T], rhs U, op binOp) (WrapNum[T], error) {
	r, ok := conv.Cast[T](rhs)
	if !ok {
		return WrapNum[T]{}, &CastOverflowError{Value: uint64(rhs), Max: uint64(maxUint[T]())}
	}

	v, err := op(uint64(lhs.value), uint64(r), uint64(lhs.wrap))
	if err != nil {
		return WrapNum[T]{}, err
	}

	return WrapNum[T]{value: T(v), wrap: lhs.wrap}, nil
}

// assign runs compute and writes the result through lhs. On error the
// receiver is left unchanged.
func assign[T, U constraints.Unsigned](lhs *WrapNum[T], rhs U, op binOp) error {
	out, err := compute(*lhs, rhs, op)
	if err != nil {
		return err
	}
	*lhs = out
	return nil
}

// maxUint returns the maximum value representable in T.
func maxUint[T constraints.Unsigned]() T {
	return ^T(0)
}

// Add returns lhs + rhs reduced modulo lhs's wrap. The result carries lhs's
// wrap; rhs's wrap is discarded.
func Add[T, U constraints.Unsigned](lhs WrapNum[T], rhs WrapNum[U]) (WrapNum[T], error) {
	return compute(lhs, rhs.value, addOp)
}

// AddValue returns lhs + rhs reduced modulo lhs's wrap, for a bare right
// operand. The operand does not have to be below lhs's wrap.
func AddValue[T, U constraints.Unsigned](lhs WrapNum[T], rhs U) (WrapNum[T], error) {
	return compute(lhs, rhs, addOp)
}

// AddAssign is the in-place form of Add.
func AddAssign[T, U constraints.Unsigned](lhs *WrapNum[T], rhs WrapNum[U]) error {
	return assign(lhs, rhs.value, addOp)
}

// AddValueAssign is the in-place form of AddValue.
func AddValueAssign[T, U constraints.Unsigned](lhs *WrapNum[T], rhs U) error {
	return assign(lhs, rhs, addOp)
}

// Mul returns lhs * rhs reduced modulo lhs's wrap. The result carries lhs's
// wrap; rhs's wrap is discarded.
func Mul[T, U constraints.Unsigned](lhs WrapNum[T], rhs WrapNum[U]) (WrapNum[T], error) {
	return compute(lhs, rhs.value, mulOp)
}

// MulValue returns lhs * rhs reduced modulo lhs's wrap, for a bare right
// operand.
func MulValue[T, U constraints.Unsigned](lhs WrapNum[T], rhs U) (WrapNum[T], error) {
	return compute(lhs, rhs, mulOp)
}

// MulAssign is the in-place form of Mul.
func MulAssign[T, U constraints.Unsigned](lhs *WrapNum[T], rhs WrapNum[U]) error {
	return assign(lhs, rhs.value, mulOp)
}

// MulValueAssign is the in-place form of MulValue.
func MulValueAssign[T, U constraints.Unsigned](lhs *WrapNum[T], rhs U) error {
	return assign(lhs, rhs, mulOp)
}

// Sub returns lhs - rhs on raw magnitudes; no reduction is applied (the
// difference is already below lhs's wrap). It fails with ErrUnderflow when
// rhs's magnitude exceeds lhs's — it never wraps or clamps.
func Sub[T, U constraints.Unsigned](lhs WrapNum[T], rhs WrapNum[U]) (WrapNum[T], error) {
	return compute(lhs, rhs.value, subOp)
}

// SubValue is Sub for a bare right operand.
func SubValue[T, U constraints.Unsigned](lhs WrapNum[T], rhs U) (WrapNum[T], error) {
	return compute(lhs, rhs, subOp)
}

// SubAssign is the in-place form of Sub.
func SubAssign[T, U constraints.Unsigned](lhs *WrapNum[T], rhs WrapNum[U]) error {
	return assign(lhs, rhs.value, subOp)
}

// SubValueAssign is the in-place form of SubValue.
func SubValueAssign[T, U constraints.Unsigned](lhs *WrapNum[T], rhs U) error {
	return assign(lhs, rhs, subOp)
}

// Rem returns lhs mod rhs. The right operand is the modulus here, not
// lhs's wrap; the result still carries lhs's wrap. It fails with
// ErrDivisionByZero when rhs's magnitude is zero.
func Rem[T, U constraints.Unsigned](lhs WrapNum[T], rhs WrapNum[U]) (WrapNum[T], error) {
	return compute(lhs, rhs.value, remOp)
}

// RemValue is Rem for a bare right operand.
func RemValue[T, U constraints.Unsigned](lhs WrapNum[T], rhs U) (WrapNum[T], error) {
	return compute(lhs, rhs, remOp)
}

// RemAssign is the in-place form of Rem.
func RemAssign[T, U constraints.Unsigned](lhs *WrapNum[T], rhs WrapNum[U]) error {
	return assign(lhs, rhs.value, remOp)
}

// RemValueAssign is the in-place form of RemValue.
func RemValueAssign[T, U constraints.Unsigned](lhs *WrapNum[T], rhs U) error {
	return assign(lhs, rhs, remOp)
}
