// Package conv provides safe unsigned integer width conversion.
//
// Cast performs a bounds-checked conversion between unsigned integer types
// of different bit widths, reporting loss instead of truncating. It is the
// single place where a right operand's magnitude is validated against the
// left operand's width.
//
// For conversions that are provably safe by domain constraints (e.g.,
// widening a magnitude that is already below a same-width bound), use a
// direct type cast instead to avoid overhead.
package conv
