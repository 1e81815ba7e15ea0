package domain

import (
	"math"
	"strconv"
)

func itoa(n int64) string { return strconv.FormatInt(n, 10) }

// DefaultIntervalBound is the sentinel magnitude Interval and SInterval
// use for +/-infinity unless internal/config overrides it: the range of
// a 16-bit signed integer, matching the bound the reference
// implementation's Interval/SInterval domains use.
const DefaultIntervalBound = math.MaxInt16

// NewDefaultInterval returns an Interval domain using DefaultIntervalBound.
func NewDefaultInterval() Interval {
	return NewInterval(-DefaultIntervalBound-1, DefaultIntervalBound)
}

// NewDefaultSInterval returns an SInterval domain using DefaultIntervalBound
// as its maximum representable offset.
func NewDefaultSInterval() SInterval {
	return NewSInterval(DefaultIntervalBound)
}
