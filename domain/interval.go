package domain

// IntervalVal is a closed interval [Low, High], or the bottom element
// when Bot is set. Low/High sit at MinBound/MaxBound (see Interval) to
// stand in for -infinity/+infinity.
type IntervalVal struct {
	Low, High int64
	Bot       bool
}

// Interval is the interval-analysis domain. MinBound/MaxBound are the
// sentinels standing in for -infinity/+infinity; the reference
// implementation this is grounded on uses the range of a 16-bit signed
// integer, which is also this type's default so results are stable
// without configuration, but any two sentinels a caller's values will
// never reach can be used instead (see internal/config).
type Interval struct {
	MinBound, MaxBound int64
}

// NewInterval returns an Interval domain bounded by [min, max].
func NewInterval(min, max int64) Interval { return Interval{MinBound: min, MaxBound: max} }

func (d Interval) Name() string { return "interval" }

func (d Interval) Top() IntervalVal    { return IntervalVal{Low: d.MinBound, High: d.MaxBound} }
func (Interval) Bottom() IntervalVal   { return IntervalVal{Bot: true} }
func (d Interval) Default() IntervalVal { return d.Bottom() }

func (d Interval) Equal(a, b IntervalVal) bool {
	if a.Bot || b.Bot {
		return a.Bot == b.Bot
	}
	return a.Low == b.Low && a.High == b.High
}

func (d Interval) Lub(a, b IntervalVal) IntervalVal {
	if a.Bot {
		return b
	}
	if b.Bot {
		return a
	}
	return IntervalVal{Low: min64(a.Low, b.Low), High: max64(a.High, b.High)}
}

// Widen jumps any bound that moved outward straight to the corresponding
// sentinel, guaranteeing termination of an increasing chain in one step
// per bound.
func (d Interval) Widen(prev, curr IntervalVal) IntervalVal {
	if prev.Bot {
		return curr
	}
	if curr.Bot {
		return prev
	}
	w := IntervalVal{Low: curr.Low, High: curr.High}
	if curr.Low < prev.Low {
		w.Low = d.MinBound
	}
	if curr.High > prev.High {
		w.High = d.MaxBound
	}
	return w
}

// clamp saturates lo/hi into [MinBound, MaxBound]: a result that would
// fall outside the representable range is infinity on that side, not a
// wrapped or out-of-range finite value. Without this, repeatedly adding
// to an already-widened [0, MaxBound] interval would push High past
// MaxBound and the domain would stop recognizing it as +infinity.
func (d Interval) clamp(lo, hi int64) IntervalVal {
	if lo < d.MinBound {
		lo = d.MinBound
	}
	if hi > d.MaxBound {
		hi = d.MaxBound
	}
	return IntervalVal{Low: lo, High: hi}
}

func (d Interval) Alpha(n int64) IntervalVal { return d.clamp(n, n) }

func (d Interval) AlphaSet(ns []int64) IntervalVal {
	acc := d.Bottom()
	for _, n := range ns {
		acc = d.Lub(acc, d.Alpha(n))
	}
	return acc
}

func (d Interval) Pos(a IntervalVal) IntervalVal { return a }

func (d Interval) Neg(a IntervalVal) IntervalVal {
	if a.Bot {
		return a
	}
	return d.clamp(-a.High, -a.Low)
}

func (d Interval) Add(a, b IntervalVal) IntervalVal {
	if a.Bot || b.Bot {
		return d.Bottom()
	}
	return d.clamp(a.Low+b.Low, a.High+b.High)
}

func (d Interval) Sub(a, b IntervalVal) IntervalVal {
	if a.Bot || b.Bot {
		return d.Bottom()
	}
	return d.clamp(a.Low-b.High, a.High-b.Low)
}

// Mul uses the full four-corner product, the sound rule for intervals
// that may straddle zero: the extreme products can occur at any pairing
// of endpoints, not just the corresponding ones.
func (d Interval) Mul(a, b IntervalVal) IntervalVal {
	if a.Bot || b.Bot {
		return d.Bottom()
	}
	c1, c2 := a.Low*b.Low, a.Low*b.High
	c3, c4 := a.High*b.Low, a.High*b.High
	lo := min64(min64(c1, c2), min64(c3, c4))
	hi := max64(max64(c1, c2), max64(c3, c4))
	return d.clamp(lo, hi)
}

func (d Interval) Div(a, b IntervalVal) IntervalVal {
	if a.Bot || b.Bot {
		return d.Bottom()
	}
	if b.Low == 0 && b.High == 0 {
		return d.Bottom()
	}
	if b.Low <= 0 && b.High >= 0 {
		return d.Top()
	}
	c1, c2 := a.Low/b.Low, a.Low/b.High
	c3, c4 := a.High/b.Low, a.High/b.High
	lo := min64(min64(c1, c2), min64(c3, c4))
	hi := max64(max64(c1, c2), max64(c3, c4))
	return d.clamp(lo, hi)
}

// Rem bounds |a % b| by the divisor's largest magnitude minus one, on
// the side(s) the dividend's sign allows: % truncates, so the remainder
// takes the sign of a (as Go's % and the concrete executor compute it).
// A divisor that contains zero anywhere, including only at one end
// (e.g. [0;5]), gives Top, as in Div, since it admits a division by zero.
func (d Interval) Rem(a, b IntervalVal) IntervalVal {
	if a.Bot || b.Bot {
		return d.Bottom()
	}
	if b.Low == 0 && b.High == 0 {
		return d.Bottom()
	}
	if b.Low <= 0 && b.High >= 0 {
		return d.Top()
	}
	m := max64(abs64(b.Low), abs64(b.High)) - 1
	switch {
	case a.Low >= 0:
		return d.clamp(0, m)
	case a.High <= 0:
		return d.clamp(-m, 0)
	default:
		return d.clamp(-m, m)
	}
}

// Pow computes the interval of a^b over b's non-negative part; a
// negative exponent yields 0 (as Concrete.Pow computes it, While having
// no fractional results), and that 0 is folded into the result rather
// than rejected.
func (d Interval) Pow(a, b IntervalVal) IntervalVal {
	if a.Bot || b.Bot {
		return d.Bottom()
	}
	lo, hi := b.Low, b.High
	if hi < 0 {
		return d.Alpha(0)
	}
	result := d.Bottom()
	if lo < 0 {
		lo = 0
		result = d.Alpha(0)
	}
	if hi-lo > 64 || a.Low < -(1<<20) || a.High > (1<<20) {
		return d.Top()
	}
	base := a
	acc := d.Alpha(1)
	for exp := int64(0); exp <= hi; exp++ {
		if exp >= lo {
			result = d.Lub(result, acc)
		}
		acc = d.Mul(acc, base)
	}
	return result
}

func (d Interval) Lt(a, b IntervalVal) bool {
	if a.Bot || b.Bot {
		return false
	}
	return a.Low < b.High
}

func (d Interval) Leq(a, b IntervalVal) bool {
	if a.Bot || b.Bot {
		return false
	}
	return a.Low <= b.High
}

func (d Interval) Eq(a, b IntervalVal) bool {
	if a.Bot || b.Bot {
		return false
	}
	return a.Low <= b.High && a.High >= b.Low
}

func (d Interval) Geq(a, b IntervalVal) bool {
	if a.Bot || b.Bot {
		return false
	}
	return a.High >= b.Low
}

func (d Interval) Gt(a, b IntervalVal) bool {
	if a.Bot || b.Bot {
		return false
	}
	return a.High > b.Low
}

func (d Interval) Neq(a, b IntervalVal) bool {
	if a.Bot || b.Bot {
		return false
	}
	return !(a.Low == a.High && b.Low == b.High && a.Low == b.Low)
}

func (d Interval) String(a IntervalVal) string {
	if a.Bot {
		return "bot"
	}
	lo := "-inf"
	if a.Low != d.MinBound {
		lo = itoa(a.Low)
	}
	hi := "+inf"
	if a.High != d.MaxBound {
		hi = itoa(a.High)
	}
	return "[" + lo + "; " + hi + "]"
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func abs64(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}
