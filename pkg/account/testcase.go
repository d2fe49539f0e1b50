package account

// TestCase identifies one test as known to the external runner:
// a name, an optional description, and grouping tags. Discovery
// and registration stay with the runner; the core only carries
// the identity for diagnostics and counter scoping.
type TestCase struct {
	// Name is the test function name.
	Name string `json:"name"`

	// Description is an optional human-readable summary.
	Description string `json:"description,omitempty"`

	// Tags holds grouping labels (e.g., "slow", "network").
	Tags []string `json:"tags,omitempty"`
}

// ClampTags returns a copy of the test case with at most max
// tags. Excess tags are dropped, mirroring the bounded tag table
// of a registered test case.
func (tc TestCase) ClampTags(max int) TestCase {
	if max < 0 {
		max = 0
	}
	if len(tc.Tags) <= max {
		return tc
	}
	out := tc
	out.Tags = append([]string(nil), tc.Tags[:max]...)
	return out
}

// HasTag reports whether the test case carries the given tag.
func (tc TestCase) HasTag(tag string) bool {
	for _, t := range tc.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
