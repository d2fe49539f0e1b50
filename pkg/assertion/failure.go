// Package assertion is the typed equality dispatcher of the scu
// harness core. Given two operands of a reported kind it decides
// equality under that kind's rules and, on a confirmed mismatch,
// renders both sides into bounded diagnostic strings and hands a
// structured failure record to the sink.
package assertion

// Location identifies the source position of an assertion call.
type Location struct {
	// File is the source file of the assertion.
	File string `json:"file"`

	// Line is the line number within File.
	Line int `json:"line"`
}

// Failure describes one confirmed assertion mismatch, ready for
// reporting. It is built inside the dispatcher at the moment the
// mismatch is confirmed and never mutated afterwards; ownership
// transfers to whoever receives it from the sink. Every string
// field is clamped to the configured Limits.
type Failure struct {
	// File is the source file of the failing assertion.
	File string `json:"file"`

	// Line is the line number within File.
	Line int `json:"line"`

	// Method is the assertion method name (e.g.,
	// "assert_equal_int").
	Method string `json:"method"`

	// Message is optional free text attached by the caller.
	Message string `json:"message,omitempty"`

	// Actual is the textual form of the actual-value
	// expression.
	Actual string `json:"actual,omitempty"`

	// Expected is the textual form of the expected-value
	// expression. Empty for unary assertions.
	Expected string `json:"expected,omitempty"`

	// ActualValue is the formatted actual value.
	ActualValue string `json:"actual_value,omitempty"`

	// ExpectedValue is the formatted expected value. Empty when
	// the expected side is absent.
	ExpectedValue string `json:"expected_value,omitempty"`
}

// Sink receives the two per-assertion notifications every entry
// point issues. AccountAssert fires once per attempt, before the
// condition is evaluated. HandleFailure fires once per confirmed
// failure; on a fatal failure it does not return to the test body
// but unwinds to the test-invocation boundary.
type Sink interface {
	// AccountAssert records that an assertion was attempted and
	// whether it was declared fatal.
	AccountAssert(isFatal bool)

	// HandleFailure takes ownership of a confirmed failure. It
	// must not return when isFatal is true.
	HandleFailure(f *Failure, isFatal bool)
}
