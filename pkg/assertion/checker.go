package assertion

import (
	"fmt"

	"github.com/cjwaldeck/scu/pkg/value"
)

// Checker evaluates assertions against a Sink. Every entry point
// follows the same shape: notify the sink of the attempt, decide
// the kind-specific condition, and on `result == invert` build a
// failure record and hand it over. The invert flag makes each
// comparison serve both the equal and the not-equal form.
type Checker struct {
	sink   Sink
	limits Limits
}

// Option configures a Checker.
type Option func(*Checker)

// WithLimits overrides the default buffer limits.
func WithLimits(l Limits) Option {
	return func(c *Checker) { c.limits = l }
}

// NewChecker creates a Checker reporting to the given sink.
func NewChecker(sink Sink, opts ...Option) *Checker {
	c := &Checker{
		sink:   sink,
		limits: DefaultLimits(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Limits returns the buffer limits in effect.
func (c *Checker) Limits() Limits { return c.limits }

// Condition is the generic boolean entry point for non-equality
// predicates. It reports whether the assertion held.
func (c *Checker) Condition(
	loc Location,
	method, actualExpr string,
	condition, invert, fatal bool,
) bool {
	c.sink.AccountAssert(fatal)

	if condition != invert {
		return true
	}

	c.fail(&Failure{
		File:   loc.File,
		Line:   loc.Line,
		Method: method,
		Actual: clamp(actualExpr, c.limits.ValueLength),
	}, fatal)
	return false
}

// Conditionf is Condition with a printf-style failure message.
// The rendered message is truncated to the message limit.
func (c *Checker) Conditionf(
	loc Location,
	method, actualExpr string,
	condition, fatal bool,
	format string,
	args ...any,
) bool {
	c.sink.AccountAssert(fatal)

	if condition {
		return true
	}

	msg := value.NewBuffer(c.limits.MessageLength)
	msg.WriteString(fmt.Sprintf(format, args...))

	c.fail(&Failure{
		File:    loc.File,
		Line:    loc.Line,
		Method:  method,
		Message: msg.String(),
		Actual:  clamp(actualExpr, c.limits.ValueLength),
	}, fatal)
	return false
}

// fail hands a fully populated record to the sink. On a fatal
// assertion the sink does not return here.
func (c *Checker) fail(f *Failure, fatal bool) {
	c.sink.HandleFailure(f, fatal)
}

// record builds the common part of an equality failure.
func (c *Checker) record(
	loc Location,
	method, actualExpr, expectedExpr string,
	actualValue, expectedValue string,
) *Failure {
	return &Failure{
		File:          loc.File,
		Line:          loc.Line,
		Method:        method,
		Actual:        clamp(actualExpr, c.limits.ValueLength),
		Expected:      clamp(expectedExpr, c.limits.ValueLength),
		ActualValue:   clamp(actualValue, c.limits.ValueLength),
		ExpectedValue: clamp(expectedValue, c.limits.ValueLength),
	}
}
