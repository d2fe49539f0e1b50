package assertion

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Limits holds the buffer-size constants that bound every string
// the core produces. They are deliberately explicit: any output
// longer than its budget is truncated silently, never grown and
// never raised as an error.
type Limits struct {
	// MessageLength bounds the free-text failure message.
	MessageLength int `json:"message_length" yaml:"message_length"`

	// ValueLength bounds each formatted value stored in a
	// failure record, and the recorded expression texts.
	ValueLength int `json:"value_length" yaml:"value_length"`

	// IntegerLength is the display budget for one integer.
	IntegerLength int `json:"integer_length" yaml:"integer_length"`

	// FloatLength is the display budget for one float.
	FloatLength int `json:"float_length" yaml:"float_length"`

	// PointerLength is the display budget for one pointer.
	PointerLength int `json:"pointer_length" yaml:"pointer_length"`

	// StringLength is the display budget for one escaped
	// string operand.
	StringLength int `json:"string_length" yaml:"string_length"`

	// BytesLines caps the number of lines in a byte dump.
	BytesLines int `json:"bytes_lines" yaml:"bytes_lines"`

	// BytesLineWidth is the column budget for one dump line.
	BytesLineWidth int `json:"bytes_line_width" yaml:"bytes_line_width"`

	// MaxTags caps the number of tags recorded per test case.
	MaxTags int `json:"max_tags" yaml:"max_tags"`
}

// DefaultLimits returns the stock limits: a 1024-byte message, a
// 1024-byte record value (room for a full ten-line dump), and the
// per-kind display budgets.
func DefaultLimits() Limits {
	return Limits{
		MessageLength:  1024,
		ValueLength:    1024,
		IntegerLength:  64,
		FloatLength:    20,
		PointerLength:  20,
		StringLength:   256,
		BytesLines:     10,
		BytesLineWidth: 66,
		MaxTags:        8,
	}
}

// BytesBudget returns the total buffer budget for one byte dump.
func (l Limits) BytesBudget() int {
	return l.BytesLines * l.BytesLineWidth
}

// Validate checks that every limit is positive.
func (l Limits) Validate() error {
	fields := map[string]int{
		"message_length":   l.MessageLength,
		"value_length":     l.ValueLength,
		"integer_length":   l.IntegerLength,
		"float_length":     l.FloatLength,
		"pointer_length":   l.PointerLength,
		"string_length":    l.StringLength,
		"bytes_lines":      l.BytesLines,
		"bytes_line_width": l.BytesLineWidth,
		"max_tags":         l.MaxTags,
	}

	for name, v := range fields {
		if v <= 0 {
			return fmt.Errorf("limit %s must be positive, got %d", name, v)
		}
	}
	return nil
}

// LoadLimits reads a YAML limits file. Keys that are absent keep
// their default values.
func LoadLimits(path string) (Limits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Limits{}, fmt.Errorf(
			"failed to read limits file %s: %w", path, err,
		)
	}

	limits := DefaultLimits()
	if err := yaml.Unmarshal(data, &limits); err != nil {
		return Limits{}, fmt.Errorf(
			"failed to parse limits from %s: %w", path, err,
		)
	}

	if err := limits.Validate(); err != nil {
		return Limits{}, fmt.Errorf("limits file %s: %w", path, err)
	}
	return limits, nil
}

// clamp cuts s to at most max bytes.
func clamp(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
