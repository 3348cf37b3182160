package human

import (
	"strconv"
	"time"
)

// durationBucket is one rung of the relative-time ladder: deltas under
// limit seconds are counted in this unit. A zero limit marks the final,
// unbounded rung.
type durationBucket struct {
	limit    int64
	secs     int64
	symbol   string
	singular string
	plural   string
}

var durationBuckets = []durationBucket{
	{limit: 60, secs: 1, symbol: "s", singular: "second", plural: "seconds"},
	{limit: 3600, secs: 60, symbol: "m", singular: "minute", plural: "minutes"},
	{limit: 86400, secs: 3600, symbol: "h", singular: "hour", plural: "hours"},
	{limit: 604800, secs: 86400, symbol: "d", singular: "day", plural: "days"},
	{limit: 2592000, secs: 604800, symbol: "wk", singular: "week", plural: "weeks"},
	{limit: 31536000, secs: 2592000, symbol: "mo", singular: "month", plural: "months"},
	{limit: 0, secs: 31536000, symbol: "yr", singular: "year", plural: "years"},
}

// bucketFor returns the floored count of the largest whole unit fitting
// secs, which must be non-negative.
func bucketFor(secs int64) (int64, durationBucket) {
	for _, b := range durationBuckets {
		if b.limit == 0 || secs < b.limit {
			return secs / b.secs, b
		}
	}
	last := durationBuckets[len(durationBuckets)-1]
	return secs / last.secs, last
}

// Duration formats the time elapsed since, or remaining until, a reference
// instant. The zero time.Time marks an absent reference and renders "-" in
// both styles.
type Duration struct {
	ref time.Time
	now func() time.Time
}

// NewDuration creates a relative-time formatter for ref. Pass the zero
// time.Time when no reference instant exists.
func NewDuration(ref time.Time) Duration {
	return Duration{ref: ref, now: time.Now}
}

// Concise renders the delta as a bare count of its largest whole unit, such
// as "45s", "1m" or "3d". Counts use floor division, so 75 seconds is "1m".
func (d Duration) Concise() string {
	if d.ref.IsZero() {
		return "-"
	}
	secs := d.delta()
	if secs < 0 {
		secs = -secs
	}
	count, b := bucketFor(secs)
	return strconv.FormatInt(count, 10) + b.symbol
}

// Full spells the delta out with an "ago" or "from now" qualifier, such as
// "5 minutes ago" or "2 hours from now". Deltas under ten seconds render
// "just now"; a whole day away renders "yesterday" or "tomorrow".
func (d Duration) Full() string {
	if d.ref.IsZero() {
		return "-"
	}
	secs := d.delta()
	if secs > -10 && secs < 10 {
		return "just now"
	}

	magnitude, qualifier := secs, " ago"
	if secs < 0 {
		magnitude, qualifier = -secs, " from now"
	}
	count, b := bucketFor(magnitude)
	if count == 1 && b.secs == 86400 {
		if secs < 0 {
			return "tomorrow"
		}
		return "yesterday"
	}

	word := b.plural
	if count == 1 {
		word = b.singular
	}
	return strconv.FormatInt(count, 10) + " " + word + qualifier
}

// String renders the full form.
func (d Duration) String() string {
	return d.Full()
}

// delta returns now minus the reference instant in whole seconds, positive
// for past references.
func (d Duration) delta() int64 {
	return int64(d.now().Sub(d.ref) / time.Second)
}
