package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Confidence keeps the classifier confidence exactly as the device reported
// it. Older app builds wrote the value as a string, newer ones as a number, so
// both JSON forms are accepted and the raw text is preserved.
type Confidence struct {
	raw string
}

// NewConfidence wraps a raw confidence value.
func NewConfidence(raw string) *Confidence {
	return &Confidence{raw: strings.TrimSpace(raw)}
}

// Raw returns the value as it was stored.
func (c Confidence) Raw() string {
	return c.raw
}

// Percent returns the confidence clamped to 0..100 and rounded to the nearest
// integer. Values that are not numbers yield 0.
func (c Confidence) Percent() int {
	v, err := strconv.ParseFloat(strings.TrimSuffix(c.raw, "%"), 64)
	if err != nil || math.IsNaN(v) {
		return 0
	}
	return int(math.Round(math.Min(math.Max(v, 0), 100)))
}

// String implements fmt.Stringer.
func (c Confidence) String() string {
	return c.raw
}

// MarshalJSON always writes the raw value as a JSON string.
func (c Confidence) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.raw)
}

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (c *Confidence) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return fmt.Errorf("empty confidence value")
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode confidence string: %w", err)
		}
		c.raw = strings.TrimSpace(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode confidence number: %w", err)
	}
	c.raw = n.String()
	return nil
}
