package account

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjwaldeck/scu/pkg/assertion"
	"github.com/cjwaldeck/scu/pkg/logging"
)

func loc() assertion.Location {
	return assertion.Location{File: "device_test.c", Line: 7}
}

func TestTrackerCountsEveryAttempt(t *testing.T) {
	tr := NewTracker(nil)

	tr.Run(func() {
		tr.AccountAssert(false)
		tr.AccountAssert(true)
		tr.AccountAssert(false)
		tr.AccountAssert(true)
		tr.AccountAssert(true)
	})

	total, fatal := tr.Assertions()
	assert.Equal(t, 5, total)
	assert.Equal(t, 3, fatal)
}

func TestTrackerCompletesWhenAllPass(t *testing.T) {
	handler := NewCollectingHandler()
	tr := NewTracker(handler)
	c := assertion.NewChecker(tr)

	status := tr.Run(func() {
		c.Condition(loc(), "assert", "ok", true, false, false)
		c.EqualInt(loc(), "assert_equal_int", "a", "e", 3, 3, 4, 4, false, false)
	})

	assert.Equal(t, StatusCompleted, status)
	assert.False(t, tr.Failed())
	assert.Zero(t, handler.Len())
}

func TestTrackerContinuesAfterNonFatalFailure(t *testing.T) {
	handler := NewCollectingHandler()
	tr := NewTracker(handler)
	c := assertion.NewChecker(tr)

	reached := false
	status := tr.Run(func() {
		c.Condition(loc(), "assert", "ok", false, false, false)
		reached = true
	})

	assert.True(t, reached)
	assert.Equal(t, StatusCompleted, status)
	assert.True(t, tr.Failed())
	assert.Equal(t, 1, handler.Len())
}

func TestTrackerFatalFailureAbortsTest(t *testing.T) {
	handler := NewCollectingHandler()
	tr := NewTracker(handler)
	c := assertion.NewChecker(tr)

	reached := false
	status := tr.Run(func() {
		c.Condition(loc(), "assert", "ok", true, false, false)
		c.Condition(loc(), "assert_fatal", "broken", false, false, true)
		reached = true
		c.Condition(loc(), "assert", "never", true, false, false)
	})

	// Control never returned to the test body after the fatal
	// failure, so only two assertions were ever attempted.
	assert.False(t, reached)
	assert.Equal(t, StatusAborted, status)
	assert.Equal(t, StatusAborted, tr.Status())

	total, fatal := tr.Assertions()
	assert.Equal(t, 2, total)
	assert.Equal(t, 1, fatal)

	require.Equal(t, 1, handler.Len())
	assert.Equal(t, "assert_fatal", handler.Failures()[0].Method)
}

func TestTrackerRunResetsCounters(t *testing.T) {
	handler := NewCollectingHandler()
	tr := NewTracker(handler)
	c := assertion.NewChecker(tr)

	tr.Run(func() {
		c.Condition(loc(), "assert_fatal", "broken", false, false, true)
	})
	require.Equal(t, StatusAborted, tr.Status())

	// The next scheduled test starts with a fresh counter.
	status := tr.Run(func() {
		c.Condition(loc(), "assert", "ok", true, false, false)
	})

	assert.Equal(t, StatusCompleted, status)
	total, fatal := tr.Assertions()
	assert.Equal(t, 1, total)
	assert.Equal(t, 0, fatal)
	assert.False(t, tr.Failed())
}

func TestTrackerForeignPanicPropagates(t *testing.T) {
	tr := NewTracker(nil)

	assert.Panics(t, func() {
		tr.Run(func() { panic("unrelated") })
	})
}

func TestTrackerNilHandlerDiscardsFailures(t *testing.T) {
	tr := NewTracker(nil)
	c := assertion.NewChecker(tr)

	status := tr.Run(func() {
		c.Condition(loc(), "assert", "ok", false, false, false)
	})

	assert.Equal(t, StatusCompleted, status)
	assert.True(t, tr.Failed())
}

func TestTrackerLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewConsoleLoggerTo(&buf, true)

	tr := NewTracker(
		NewCollectingHandler(),
		WithLogger(logger),
		WithTestCase(
			TestCase{Name: "test_widget"},
			assertion.DefaultLimits(),
		),
	)
	c := assertion.NewChecker(tr)

	tr.Run(func() {
		c.Condition(loc(), "assert", "ok", false, false, false)
	})

	out := buf.String()
	assert.Contains(t, out, "assertion failed")
	assert.Contains(t, out, "test_widget")
	assert.Contains(t, out, "device_test.c")
}

func TestTrackerStatusLifecycle(t *testing.T) {
	tr := NewTracker(nil)
	assert.Equal(t, StatusPending, tr.Status())

	var during string
	tr.Run(func() { during = tr.Status() })

	assert.Equal(t, StatusRunning, during)
	assert.Equal(t, StatusCompleted, tr.Status())
}

func TestTestCaseClampTags(t *testing.T) {
	tc := TestCase{
		Name: "test_tags",
		Tags: []string{"a", "b", "c", "d"},
	}

	clamped := tc.ClampTags(2)
	assert.Equal(t, []string{"a", "b"}, clamped.Tags)

	// The original is untouched.
	assert.Len(t, tc.Tags, 4)

	assert.Equal(t, tc.Tags, tc.ClampTags(8).Tags)
	assert.Empty(t, tc.ClampTags(0).Tags)
}

func TestTestCaseHasTag(t *testing.T) {
	tc := TestCase{Name: "t", Tags: []string{"slow", "network"}}
	assert.True(t, tc.HasTag("slow"))
	assert.False(t, tc.HasTag("fast"))
}

func TestCollectingHandler(t *testing.T) {
	h := NewCollectingHandler()
	f1 := &assertion.Failure{Method: "assert_a"}
	f2 := &assertion.Failure{Method: "assert_b"}

	h.HandleFailure(f1)
	h.HandleFailure(f2)

	got := h.Failures()
	require.Len(t, got, 2)
	assert.Same(t, f1, got[0])
	assert.Same(t, f2, got[1])

	// The returned slice is a copy.
	got[0] = nil
	assert.Same(t, f1, h.Failures()[0])

	h.Reset()
	assert.Zero(t, h.Len())
}

// Parallel tests each own a Tracker but may share one handler.
func TestTrackersIsolatedAcrossConcurrentTests(t *testing.T) {
	handler := NewCollectingHandler()
	done := make(chan struct{})

	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()

			tr := NewTracker(handler)
			c := assertion.NewChecker(tr)
			tr.Run(func() {
				for j := 0; j < 100; j++ {
					c.Condition(loc(), "assert", "x", false, false, false)
				}
			})

			total, _ := tr.Assertions()
			assert.Equal(t, 100, total)
		}()
	}

	for i := 0; i < 4; i++ {
		<-done
	}
	assert.Equal(t, 400, handler.Len())
}
