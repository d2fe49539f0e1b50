// Package account is the assertion accounting and failure
// propagation layer: every assertion funnels through a Tracker,
// which counts attempts, forwards confirmed failures to the
// external handler, and on a fatal failure abandons the current
// test without taking the run down.
package account

import (
	"github.com/cjwaldeck/scu/pkg/assertion"
	"github.com/cjwaldeck/scu/pkg/logging"
)

// Status constants for one test execution.
const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusAborted   = "aborted"
	StatusCompleted = "completed"
)

// Handler is the external failure sink. It receives ownership of
// each failure record and decides whether to retain or discard it
// after reporting.
type Handler interface {
	// HandleFailure takes ownership of one confirmed failure.
	HandleFailure(f *assertion.Failure)
}

// Tracker owns the per-test assertion counters and realizes the
// Running -> Aborted / Completed state machine. It implements
// assertion.Sink. One Tracker serves exactly one running test at
// a time; concurrent tests each need their own.
type Tracker struct {
	handler  Handler
	logger   logging.Logger
	test     TestCase
	status   string
	total    int
	fatal    int
	failures int
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger attaches a logger for per-failure debug
// diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(t *Tracker) { t.logger = l }
}

// WithTestCase attaches the identity of the test this tracker
// serves. Tags beyond the configured maximum are dropped.
func WithTestCase(tc TestCase, limits assertion.Limits) Option {
	return func(t *Tracker) { t.test = tc.ClampTags(limits.MaxTags) }
}

// NewTracker creates a Tracker forwarding failures to the given
// handler. A nil handler discards failures.
func NewTracker(handler Handler, opts ...Option) *Tracker {
	t := &Tracker{
		handler: handler,
		logger:  logging.NewNullLogger(),
		status:  StatusPending,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// abortSignal is the sentinel carried by the non-local exit of a
// fatal assertion. Run recovers it at the test-invocation
// boundary; anything else re-panics.
type abortSignal struct{}

// AccountAssert records one assertion attempt. It runs before
// the condition is evaluated, so the counts reflect assertions
// attempted, not merely assertions that ran to completion.
func (t *Tracker) AccountAssert(isFatal bool) {
	t.total++
	if isFatal {
		t.fatal++
	}
}

// HandleFailure forwards a confirmed failure to the handler.
// When the assertion was fatal it does not return: the current
// test body unwinds to the Run boundary and the test ends
// aborted.
func (t *Tracker) HandleFailure(f *assertion.Failure, isFatal bool) {
	t.failures++
	if t.handler != nil {
		t.handler.HandleFailure(f)
	}

	t.logger.Debug("assertion failed",
		logging.Field{Key: "test", Value: t.test.Name},
		logging.Field{Key: "method", Value: f.Method},
		logging.Field{Key: "file", Value: f.File},
		logging.Field{Key: "line", Value: f.Line},
		logging.Field{Key: "fatal", Value: isFatal},
	)

	if isFatal {
		t.status = StatusAborted
		panic(abortSignal{})
	}
}

// Run executes one test body at the invocation boundary.
// Counters are reset first; a fatal assertion inside the body
// unwinds back here and the status ends Aborted, otherwise it
// ends Completed. The final status is returned.
func (t *Tracker) Run(body func()) string {
	t.total, t.fatal, t.failures = 0, 0, 0
	t.status = StatusRunning

	t.logger.Debug("test started",
		logging.Field{Key: "test", Value: t.test.Name},
	)

	func() {
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(abortSignal); !ok {
					panic(r)
				}
			}
		}()
		body()
	}()

	if t.status == StatusRunning {
		t.status = StatusCompleted
	}

	t.logger.Debug("test finished",
		logging.Field{Key: "test", Value: t.test.Name},
		logging.Field{Key: "status", Value: t.status},
		logging.Field{Key: "assertions", Value: t.total},
	)
	return t.status
}

// Status returns the current state of the test this tracker
// serves.
func (t *Tracker) Status() string { return t.status }

// Assertions returns the attempted and fatal assertion counts.
func (t *Tracker) Assertions() (total, fatal int) {
	return t.total, t.fatal
}

// Failed reports whether any assertion failed during the last
// run.
func (t *Tracker) Failed() bool { return t.failures > 0 }

// Test returns the identity of the test this tracker serves.
func (t *Tracker) Test() TestCase { return t.test }
