package domain

// SIntervalVal represents the interval [Center-Offset, Center+Offset].
// It is the same information as IntervalVal in a different coordinate
// system, which gives widening a natural "offset only grows" reading
// that the [Low,High] representation doesn't.
type SIntervalVal struct {
	Center, Offset int64
	Bot            bool
}

// SInterval is the center/offset interval domain. MaxOffset is the
// sentinel standing in for an unbounded offset (+infinity).
type SInterval struct {
	MaxOffset int64
}

// NewSInterval returns an SInterval domain whose offsets saturate at max.
func NewSInterval(max int64) SInterval { return SInterval{MaxOffset: max} }

func (d SInterval) Name() string { return "sinterval" }

func (d SInterval) Top() SIntervalVal  { return SIntervalVal{Center: 0, Offset: d.MaxOffset} }
func (SInterval) Bottom() SIntervalVal { return SIntervalVal{Bot: true} }
func (d SInterval) Default() SIntervalVal { return d.Bottom() }

func (d SInterval) Equal(a, b SIntervalVal) bool {
	if a.Bot || b.Bot {
		return a.Bot == b.Bot
	}
	return a.Center == b.Center && a.Offset == b.Offset
}

func (d SInterval) Lub(a, b SIntervalVal) SIntervalVal {
	if a.Bot {
		return b
	}
	if b.Bot {
		return a
	}
	lo := min64(a.Center-a.Offset, b.Center-b.Offset)
	hi := max64(a.Center+a.Offset, b.Center+b.Offset)
	return d.fromBounds(lo, hi)
}

// Widen keeps the center where it settled and saturates the offset to
// MaxOffset the moment it grows, which bounds the number of iterations
// to two regardless of how the endpoints are moving.
func (d SInterval) Widen(prev, curr SIntervalVal) SIntervalVal {
	if prev.Bot {
		return curr
	}
	if curr.Bot {
		return prev
	}
	offset := curr.Offset
	if curr.Offset > prev.Offset {
		offset = d.MaxOffset
	}
	return SIntervalVal{Center: curr.Center, Offset: offset}
}

func (d SInterval) fromBounds(lo, hi int64) SIntervalVal {
	center := (lo + hi) / 2
	offset := hi - center
	if offset < center-lo {
		offset = center - lo
	}
	if offset > d.MaxOffset {
		offset = d.MaxOffset
	}
	return SIntervalVal{Center: center, Offset: offset}
}

func (d SInterval) Alpha(n int64) SIntervalVal { return SIntervalVal{Center: n, Offset: 0} }

func (d SInterval) AlphaSet(ns []int64) SIntervalVal {
	acc := d.Bottom()
	for _, n := range ns {
		acc = d.Lub(acc, d.Alpha(n))
	}
	return acc
}

func (d SInterval) Pos(a SIntervalVal) SIntervalVal { return a }

func (d SInterval) Neg(a SIntervalVal) SIntervalVal {
	if a.Bot {
		return a
	}
	return SIntervalVal{Center: -a.Center, Offset: a.Offset}
}

func (d SInterval) Add(a, b SIntervalVal) SIntervalVal {
	if a.Bot || b.Bot {
		return d.Bottom()
	}
	return d.saturate(SIntervalVal{Center: a.Center + b.Center, Offset: a.Offset + b.Offset})
}

func (d SInterval) Sub(a, b SIntervalVal) SIntervalVal {
	if a.Bot || b.Bot {
		return d.Bottom()
	}
	return d.saturate(SIntervalVal{Center: a.Center - b.Center, Offset: a.Offset + b.Offset})
}

// Mul takes the four corner products of the two intervals' endpoints and
// re-centres on their range: the reference implementation this is
// grounded on simply multiplies the two offsets, which is unsound once
// either interval straddles zero, so the new offset instead bounds every
// corner product's distance from the new center.
func (d SInterval) Mul(a, b SIntervalVal) SIntervalVal {
	if a.Bot || b.Bot {
		return d.Bottom()
	}
	aLo, aHi := a.Center-a.Offset, a.Center+a.Offset
	bLo, bHi := b.Center-b.Offset, b.Center+b.Offset
	c1, c2 := aLo*bLo, aLo*bHi
	c3, c4 := aHi*bLo, aHi*bHi
	lo := min64(min64(c1, c2), min64(c3, c4))
	hi := max64(max64(c1, c2), max64(c3, c4))
	return d.saturate(d.fromBounds(lo, hi))
}

func (d SInterval) Div(a, b SIntervalVal) SIntervalVal {
	if a.Bot || b.Bot {
		return d.Bottom()
	}
	if b.Center == 0 && b.Offset == 0 {
		return d.Bottom()
	}
	if b.Center-b.Offset <= 0 && b.Center+b.Offset >= 0 {
		return d.Top()
	}
	return d.saturate(SIntervalVal{Center: a.Center / b.Center, Offset: a.Offset / abs64(b.Center)})
}

// Rem is intentionally imprecise (collapses to Top whenever the divisor
// isn't the exact value zero): the offset representation doesn't carry
// enough information to bound a remainder's range precisely, a
// limitation already present in the implementation this domain is
// grounded on.
func (d SInterval) Rem(a, b SIntervalVal) SIntervalVal {
	if a.Bot || b.Bot {
		return d.Bottom()
	}
	if b.Center == 0 && b.Offset == 0 {
		return d.Bottom()
	}
	return d.Top()
}

// Pow is intentionally imprecise for the same reason as Rem.
func (d SInterval) Pow(a, b SIntervalVal) SIntervalVal {
	if a.Bot || b.Bot {
		return d.Bottom()
	}
	return d.Top()
}

func (d SInterval) saturate(a SIntervalVal) SIntervalVal {
	if a.Offset > d.MaxOffset {
		a.Offset = d.MaxOffset
	}
	return a
}

func (d SInterval) Lt(a, b SIntervalVal) bool {
	if a.Bot || b.Bot {
		return false
	}
	return a.Center-a.Offset < b.Center+b.Offset
}

func (d SInterval) Leq(a, b SIntervalVal) bool {
	if a.Bot || b.Bot {
		return false
	}
	return a.Center-a.Offset <= b.Center+b.Offset
}

func (d SInterval) Eq(a, b SIntervalVal) bool {
	if a.Bot || b.Bot {
		return false
	}
	return a.Center-a.Offset <= b.Center+b.Offset && a.Center+a.Offset >= b.Center-b.Offset
}

func (d SInterval) Geq(a, b SIntervalVal) bool {
	if a.Bot || b.Bot {
		return false
	}
	return a.Center+a.Offset >= b.Center-b.Offset
}

func (d SInterval) Gt(a, b SIntervalVal) bool {
	if a.Bot || b.Bot {
		return false
	}
	return a.Center+a.Offset > b.Center-b.Offset
}

func (d SInterval) Neq(a, b SIntervalVal) bool {
	if a.Bot || b.Bot {
		return false
	}
	return !(a.Offset == 0 && b.Offset == 0 && a.Center == b.Center)
}

func (d SInterval) String(a SIntervalVal) string {
	if a.Bot {
		return "bot"
	}
	if a.Offset >= d.MaxOffset {
		return itoa(a.Center) + " +-inf"
	}
	return itoa(a.Center) + " +-" + itoa(a.Offset)
}
