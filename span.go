package human

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Time formats an elapsed span as a compound hours/minutes/seconds string.
type Time struct {
	span time.Duration
}

// NewTime creates a span formatter for d. Negative durations are not
// meaningful and are rejected with ErrInvalidInput.
func NewTime(d time.Duration) (Time, error) {
	if d < 0 {
		return Time{}, fmt.Errorf("%w: duration must be non-negative, got %s", ErrInvalidInput, d)
	}
	return Time{span: d}, nil
}

// Concise renders the span with single-letter units, dropping leading zero
// components only: "0s", "5m 3s", "1h 0m 0s".
func (t Time) Concise() string {
	hours, minutes, seconds := t.components()
	parts := make([]string, 0, 3)
	if hours > 0 {
		parts = append(parts, strconv.FormatInt(hours, 10)+"h")
	}
	if minutes > 0 || len(parts) > 0 {
		parts = append(parts, strconv.FormatInt(minutes, 10)+"m")
	}
	parts = append(parts, strconv.FormatInt(seconds, 10)+"s")
	return strings.Join(parts, " ")
}

// Full spells the units out with pluralization, keeping all three
// components even when zero: "2 hours 0 minutes 5 seconds".
func (t Time) Full() string {
	hours, minutes, seconds := t.components()
	return pluralize(hours, "hour") + " " + pluralize(minutes, "minute") + " " + pluralize(seconds, "second")
}

// String renders the full form.
func (t Time) String() string {
	return t.Full()
}

// components splits the span into whole hours, minutes and seconds. The
// decomposition is exact: h*3600 + m*60 + s re-sums to the span's whole
// seconds.
func (t Time) components() (hours, minutes, seconds int64) {
	secs := int64(t.span / time.Second)
	return secs / 3600, (secs % 3600) / 60, secs % 60
}

func pluralize(n int64, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.FormatInt(n, 10) + " " + unit + "s"
}
