package assertion

import (
	"reflect"
	"strconv"

	"github.com/cjwaldeck/scu/pkg/value"
)

// intSize is the byte width of the platform int/uint.
const intSize = strconv.IntSize / 8

// operand is one classified side of a generic equality check.
// The kind is inferred exactly once; comparison and formatting
// both read it from here and can never diverge.
type operand struct {
	kind value.Kind
	bits uint64
	size int
	f    float64
	str  string
	mem  []byte
	ptr  uintptr
}

// classify infers the value kind and size metadata of a Go value.
// An explicit type switch covers the closed set of builtin types;
// named types fall through to reflection.
func classify(v any) (operand, bool) {
	switch x := v.(type) {
	case nil:
		return operand{kind: value.Pointer}, true
	case int:
		return operand{kind: value.SignedInt, bits: uint64(int64(x)), size: intSize}, true
	case int8:
		return operand{kind: value.SignedInt, bits: uint64(int64(x)), size: 1}, true
	case int16:
		return operand{kind: value.SignedInt, bits: uint64(int64(x)), size: 2}, true
	case int32:
		return operand{kind: value.SignedInt, bits: uint64(int64(x)), size: 4}, true
	case int64:
		return operand{kind: value.SignedInt, bits: uint64(x), size: 8}, true
	case uint:
		return operand{kind: value.UnsignedInt, bits: uint64(x), size: intSize}, true
	case uint8:
		return operand{kind: value.UnsignedInt, bits: uint64(x), size: 1}, true
	case uint16:
		return operand{kind: value.UnsignedInt, bits: uint64(x), size: 2}, true
	case uint32:
		return operand{kind: value.UnsignedInt, bits: uint64(x), size: 4}, true
	case uint64:
		return operand{kind: value.UnsignedInt, bits: x, size: 8}, true
	case uintptr:
		return operand{kind: value.UnsignedInt, bits: uint64(x), size: intSize}, true
	case float32:
		return operand{kind: value.Float, f: float64(x)}, true
	case float64:
		return operand{kind: value.Float, f: x}, true
	case string:
		return operand{kind: value.String, str: x}, true
	case []byte:
		return operand{kind: value.Bytes, mem: x}, true
	}
	return classifyReflect(reflect.ValueOf(v))
}

// classifyReflect handles named types and pointers.
func classifyReflect(rv reflect.Value) (operand, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64:
		return operand{
			kind: value.SignedInt,
			bits: uint64(rv.Int()),
			size: int(rv.Type().Size()),
		}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return operand{
			kind: value.UnsignedInt,
			bits: rv.Uint(),
			size: int(rv.Type().Size()),
		}, true
	case reflect.Float32, reflect.Float64:
		return operand{kind: value.Float, f: rv.Float()}, true
	case reflect.String:
		return operand{kind: value.String, str: rv.String()}, true
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return operand{kind: value.Bytes, mem: rv.Bytes()}, true
		}
	case reflect.Pointer, reflect.UnsafePointer:
		return operand{kind: value.Pointer, ptr: rv.Pointer()}, true
	}
	return operand{}, false
}

// isInt reports whether an operand is one of the integer kinds.
func (o operand) isInt() bool {
	return o.kind == value.SignedInt || o.kind == value.UnsignedInt
}

// float returns the numeric value of an int or float operand.
func (o operand) float() float64 {
	if o.kind == value.SignedInt {
		return float64(int64(o.bits))
	}
	if o.kind == value.UnsignedInt {
		return float64(o.bits)
	}
	return o.f
}

// Equal is the kind-generic entry point: it classifies both
// operands and routes to the typed comparison matching their
// kinds. The two integer kinds are mutually comparable (each side
// masked to its own width), and an integer may be compared
// against a float, in which case the float rules apply. Operands
// of unrelated kinds are never equal.
func (c *Checker) Equal(
	loc Location,
	method, actualExpr, expectedExpr string,
	actual, expected any,
	invert, fatal bool,
) bool {
	ao, aok := classify(actual)
	eo, eok := classify(expected)

	switch {
	case !aok || !eok:
		return c.unsupported(loc, method, actualExpr, invert, fatal)
	case ao.isInt() && eo.isInt():
		return c.EqualInt(
			loc, method, actualExpr, expectedExpr,
			ao.bits, eo.bits, ao.size, eo.size,
			invert, fatal,
		)
	case (ao.kind == value.Float || eo.kind == value.Float) &&
		(ao.isInt() || ao.kind == value.Float) &&
		(eo.isInt() || eo.kind == value.Float):
		return c.EqualFloat(
			loc, method, actualExpr, expectedExpr,
			ao.float(), eo.float(),
			invert, fatal,
		)
	case ao.kind == value.Pointer && eo.kind == value.Pointer:
		return c.EqualPointer(
			loc, method, actualExpr, expectedExpr,
			ao.ptr, eo.ptr,
			invert, fatal,
		)
	case ao.kind == value.String && eo.kind == value.String:
		return c.EqualString(
			loc, method, actualExpr, expectedExpr,
			ao.str, eo.str, FullString,
			invert, fatal,
		)
	case ao.kind == value.Bytes && eo.kind == value.Bytes:
		return c.equalByteSlices(
			loc, method, actualExpr, expectedExpr,
			ao.mem, eo.mem,
			invert, fatal,
		)
	default:
		return c.unsupported(loc, method, actualExpr, invert, fatal)
	}
}

// equalByteSlices compares two whole byte slices. Slices of
// different lengths are a mismatch; each side is then dumped at
// its own length.
func (c *Checker) equalByteSlices(
	loc Location,
	method, actualExpr, expectedExpr string,
	actual, expected []byte,
	invert, fatal bool,
) bool {
	if len(actual) == len(expected) {
		return c.EqualMemory(
			loc, method, actualExpr, expectedExpr,
			actual, expected, len(actual),
			invert, fatal,
		)
	}

	c.sink.AccountAssert(fatal)
	if invert {
		return true
	}

	a := value.NewBuffer(c.limits.BytesBudget())
	value.FormatBytes(a, actual)
	e := value.NewBuffer(c.limits.BytesBudget())
	value.FormatBytes(e, expected)

	c.fail(c.record(
		loc, method, actualExpr, expectedExpr,
		a.String(), e.String(),
	), fatal)
	return false
}

// unsupported records a mismatch for operands with no common
// comparison rule. They are never equal, so the inverted form
// passes.
func (c *Checker) unsupported(
	loc Location,
	method, actualExpr string,
	invert, fatal bool,
) bool {
	c.sink.AccountAssert(fatal)
	if invert {
		return true
	}

	c.fail(&Failure{
		File:    loc.File,
		Line:    loc.Line,
		Method:  method,
		Message: "operands have no common comparison rule",
		Actual:  clamp(actualExpr, c.limits.ValueLength),
	}, fatal)
	return false
}
