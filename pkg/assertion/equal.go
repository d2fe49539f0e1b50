package assertion

import (
	"bytes"

	"github.com/cjwaldeck/scu/pkg/value"
)

// EqualInt compares two integers after masking each operand to
// its own declared byte width. Mismatched widths are allowed and
// resolved independently per side, so an 8-bit actual compares
// cleanly against a 32-bit literal without sign- or zero-extension
// noise. The same masks drive the diagnostic rendering, so the
// comparison and the formatted values can never disagree.
func (c *Checker) EqualInt(
	loc Location,
	method, actualExpr, expectedExpr string,
	actual, expected uint64,
	actualSize, expectedSize int,
	invert, fatal bool,
) bool {
	c.sink.AccountAssert(fatal)

	equal := actual&value.Mask(actualSize) ==
		expected&value.Mask(expectedSize)
	if equal != invert {
		return true
	}

	a := value.NewBuffer(c.limits.IntegerLength)
	value.FormatInteger(a, actual, actualSize)
	e := value.NewBuffer(c.limits.IntegerLength)
	value.FormatInteger(e, expected, expectedSize)

	c.fail(c.record(
		loc, method, actualExpr, expectedExpr,
		a.String(), e.String(),
	), fatal)
	return false
}

// EqualFloat compares two floating-point values for exact
// numeric equality. There is no epsilon tolerance; callers that
// want one must pre-round before asserting.
func (c *Checker) EqualFloat(
	loc Location,
	method, actualExpr, expectedExpr string,
	actual, expected float64,
	invert, fatal bool,
) bool {
	c.sink.AccountAssert(fatal)

	if (actual == expected) != invert {
		return true
	}

	a := value.NewBuffer(c.limits.FloatLength)
	value.FormatFloat(a, actual)
	e := value.NewBuffer(c.limits.FloatLength)
	value.FormatFloat(e, expected)

	c.fail(c.record(
		loc, method, actualExpr, expectedExpr,
		a.String(), e.String(),
	), fatal)
	return false
}

// EqualPointer compares two addresses by identity; pointees are
// never read. An empty expectedExpr marks the unary form (a null
// check): the expected diagnostic is omitted from the record
// instead of rendering a bogus value.
func (c *Checker) EqualPointer(
	loc Location,
	method, actualExpr, expectedExpr string,
	actual, expected uintptr,
	invert, fatal bool,
) bool {
	c.sink.AccountAssert(fatal)

	if (actual == expected) != invert {
		return true
	}

	a := value.NewBuffer(c.limits.PointerLength)
	value.FormatPointer(a, actual)

	var expectedValue string
	if expectedExpr != "" {
		e := value.NewBuffer(c.limits.PointerLength)
		value.FormatPointer(e, expected)
		expectedValue = e.String()
	}

	c.fail(c.record(
		loc, method, actualExpr, expectedExpr,
		a.String(), expectedValue,
	), fatal)
	return false
}

// FullString is the length sentinel selecting a whole-string
// comparison in EqualString.
const FullString = -1

// EqualString compares two strings, either in full (n ==
// FullString) or over a prefix of n bytes. On mismatch both sides
// are C-escaped so control characters stay visible in the
// diagnostic instead of corrupting terminal output.
func (c *Checker) EqualString(
	loc Location,
	method, actualExpr, expectedExpr string,
	actual, expected string,
	n int,
	invert, fatal bool,
) bool {
	c.sink.AccountAssert(fatal)

	a, e := actual, expected
	if n >= 0 {
		if len(a) > n {
			a = a[:n]
		}
		if len(e) > n {
			e = e[:n]
		}
	}

	if (a == e) != invert {
		return true
	}

	ab := value.NewBuffer(c.limits.StringLength)
	value.EscapeString(ab, actual)
	eb := value.NewBuffer(c.limits.StringLength)
	value.EscapeString(eb, expected)

	c.fail(c.record(
		loc, method, actualExpr, expectedExpr,
		ab.String(), eb.String(),
	), fatal)
	return false
}

// EqualMemory compares two memory blocks byte for byte over an
// explicit size. Both slices must hold at least size bytes; that
// is the caller's contract, exactly as with a raw memory compare.
// On mismatch both blocks are rendered as hex+ASCII dumps at the
// same size.
func (c *Checker) EqualMemory(
	loc Location,
	method, actualExpr, expectedExpr string,
	actual, expected []byte,
	size int,
	invert, fatal bool,
) bool {
	c.sink.AccountAssert(fatal)

	if bytes.Equal(actual[:size], expected[:size]) != invert {
		return true
	}

	a := value.NewBuffer(c.limits.BytesBudget())
	value.FormatBytes(a, actual[:size])
	e := value.NewBuffer(c.limits.BytesBudget())
	value.FormatBytes(e, expected[:size])

	c.fail(c.record(
		loc, method, actualExpr, expectedExpr,
		a.String(), e.String(),
	), fatal)
	return false
}
