package domain

// ModuloVal is a residue class mod N, or Top/Bottom.
type ModuloVal struct {
	Residue int64
	Top     bool
	Bot     bool
}

// Modulo is congruence analysis: every integer abstracts to its residue
// modulo N. N is a runtime parameter (internal/config defaults it to 3)
// rather than a Go generic constant, since a fixed compile-time N would
// force a rebuild to analyze a program with a different modulus.
type Modulo struct {
	N int64
}

// NewModulo returns a Modulo domain with the given modulus. N must be >= 1.
func NewModulo(n int64) Modulo { return Modulo{N: n} }

func (d Modulo) Name() string { return "modulo" }

func (d Modulo) norm(r int64) int64 {
	r %= d.N
	if r < 0 {
		r += d.N
	}
	return r
}

func (d Modulo) Top() ModuloVal     { return ModuloVal{Top: true} }
func (Modulo) Bottom() ModuloVal    { return ModuloVal{Bot: true} }
func (d Modulo) Default() ModuloVal { return d.Bottom() }

func (d Modulo) Equal(a, b ModuloVal) bool {
	if a.Bot || b.Bot {
		return a.Bot == b.Bot
	}
	if a.Top || b.Top {
		return a.Top == b.Top
	}
	return a.Residue == b.Residue
}

func (d Modulo) Lub(a, b ModuloVal) ModuloVal {
	if a.Bot {
		return b
	}
	if b.Bot {
		return a
	}
	if a.Top || b.Top || a.Residue != b.Residue {
		return d.Top()
	}
	return a
}

// Widen is Lub: the lattice has height three (bottom, a residue, top)
// so a plain join already terminates immediately.
func (d Modulo) Widen(a, b ModuloVal) ModuloVal { return d.Lub(a, b) }

func (d Modulo) Alpha(n int64) ModuloVal { return ModuloVal{Residue: d.norm(n)} }

func (d Modulo) AlphaSet(ns []int64) ModuloVal {
	acc := d.Bottom()
	for _, n := range ns {
		acc = d.Lub(acc, d.Alpha(n))
	}
	return acc
}

func (d Modulo) Pos(a ModuloVal) ModuloVal { return a }

func (d Modulo) Neg(a ModuloVal) ModuloVal {
	if a.Bot || a.Top {
		return a
	}
	return ModuloVal{Residue: d.norm(-a.Residue)}
}

func (d Modulo) binary(a, b ModuloVal, f func(x, y int64) int64) ModuloVal {
	if a.Bot || b.Bot {
		return d.Bottom()
	}
	if a.Top || b.Top {
		return d.Top()
	}
	return ModuloVal{Residue: d.norm(f(a.Residue, b.Residue))}
}

func (d Modulo) Add(a, b ModuloVal) ModuloVal { return d.binary(a, b, func(x, y int64) int64 { return x + y }) }
func (d Modulo) Sub(a, b ModuloVal) ModuloVal { return d.binary(a, b, func(x, y int64) int64 { return x - y }) }
func (d Modulo) Mul(a, b ModuloVal) ModuloVal { return d.binary(a, b, func(x, y int64) int64 { return x * y }) }

// Div and Rem collapse to Top, except when the divisor's residue is
// exactly 0: a residue class mod N carries no information about
// magnitude or sign, so division and remainder by any other residue
// cannot be bounded without losing soundness, but a divisor whose
// abstracted residue is the singleton {0} means every concretization
// divides by zero, which is unreachable rather than imprecise.
func (d Modulo) Div(a, b ModuloVal) ModuloVal {
	if a.Bot || b.Bot {
		return d.Bottom()
	}
	if !b.Top && b.Residue == 0 {
		return d.Bottom()
	}
	return d.Top()
}

func (d Modulo) Rem(a, b ModuloVal) ModuloVal {
	if a.Bot || b.Bot {
		return d.Bottom()
	}
	if !b.Top && b.Residue == 0 {
		return d.Bottom()
	}
	return d.Top()
}

func (d Modulo) Pow(a, b ModuloVal) ModuloVal {
	if a.Bot || b.Bot {
		return d.Bottom()
	}
	return d.Top()
}

// Lt, Leq, Gt, Geq and Neq always report "may hold": a residue class
// with N >= 1 lifts to infinitely many integers in both directions, so
// no order relation or inequality can ever be ruled out from the residue
// alone. Only Eq is residue-sensitive. This replaces a draft that
// compared raw residues as if they were the represented integers
// (e.g. treating residue 2 as greater than residue -1 mod 3, which is
// meaningless: residue classes have no sign).
func (d Modulo) Lt(a, b ModuloVal) bool  { return !a.Bot && !b.Bot }
func (d Modulo) Leq(a, b ModuloVal) bool { return !a.Bot && !b.Bot }
func (d Modulo) Gt(a, b ModuloVal) bool  { return !a.Bot && !b.Bot }
func (d Modulo) Geq(a, b ModuloVal) bool { return !a.Bot && !b.Bot }
func (d Modulo) Neq(a, b ModuloVal) bool { return !a.Bot && !b.Bot }

func (d Modulo) Eq(a, b ModuloVal) bool {
	if a.Bot || b.Bot {
		return false
	}
	if a.Top || b.Top {
		return true
	}
	return a.Residue == b.Residue
}

func (d Modulo) String(a ModuloVal) string {
	switch {
	case a.Bot:
		return "bot"
	case a.Top:
		return "top"
	default:
		return itoa(a.Residue) + " (mod " + itoa(d.N) + ")"
	}
}
