package domain

// SignVal is an element of the Sign lattice: bottom, minus, zero, plus or
// top. The ordering of the iota values matters: it is the row/column
// index into the lookup tables below, transcribed from the reference
// sign-analysis implementation this domain is grounded on.
type SignVal int

const (
	signBot SignVal = iota
	signMinus
	signZero
	signPlus
	signTop
)

// Sign is the classic sign-analysis domain: every integer abstracts to
// whether it is negative, zero or positive.
type Sign struct{}

func (Sign) Name() string { return "sign" }

func (Sign) Top() SignVal     { return signTop }
func (Sign) Bottom() SignVal  { return signBot }
func (Sign) Default() SignVal { return signBot }

func (Sign) Equal(a, b SignVal) bool { return a == b }

var signLubTable = [25]SignVal{
	signBot, signMinus, signZero, signPlus, signTop,
	signMinus, signMinus, signTop, signTop, signTop,
	signZero, signTop, signZero, signTop, signTop,
	signPlus, signTop, signTop, signPlus, signTop,
	signTop, signTop, signTop, signTop, signTop,
}

func (Sign) Lub(a, b SignVal) SignVal { return signLubTable[int(a)*5+int(b)] }

// Widen is Lub: Sign has finite height (five elements), so a naive join
// already terminates in at most four steps and no separate widening
// operator is needed.
func (s Sign) Widen(a, b SignVal) SignVal { return s.Lub(a, b) }

func (Sign) Alpha(n int64) SignVal {
	switch {
	case n == 0:
		return signZero
	case n < 0:
		return signMinus
	default:
		return signPlus
	}
}

func (s Sign) AlphaSet(ns []int64) SignVal {
	acc := signBot
	for _, n := range ns {
		acc = s.Lub(acc, s.Alpha(n))
	}
	return acc
}

func (Sign) Pos(a SignVal) SignVal { return a }

var signNegTable = [5]SignVal{signBot, signPlus, signZero, signMinus, signTop}

func (Sign) Neg(a SignVal) SignVal { return signNegTable[a] }

var signAddTable = [25]SignVal{
	signBot, signBot, signBot, signBot, signBot,
	signBot, signMinus, signMinus, signTop, signTop,
	signBot, signMinus, signZero, signPlus, signTop,
	signBot, signTop, signPlus, signPlus, signTop,
	signBot, signTop, signTop, signTop, signTop,
}

func (Sign) Add(a, b SignVal) SignVal { return signAddTable[int(a)*5+int(b)] }

var signSubTable = [25]SignVal{
	signBot, signBot, signBot, signBot, signBot,
	signBot, signTop, signMinus, signMinus, signTop,
	signBot, signPlus, signZero, signMinus, signTop,
	signBot, signPlus, signPlus, signTop, signTop,
	signBot, signTop, signTop, signTop, signTop,
}

func (Sign) Sub(a, b SignVal) SignVal { return signSubTable[int(a)*5+int(b)] }

var signMulTable = [25]SignVal{
	signBot, signBot, signBot, signBot, signBot,
	signBot, signPlus, signZero, signMinus, signTop,
	signBot, signZero, signZero, signZero, signZero,
	signBot, signMinus, signZero, signPlus, signTop,
	signBot, signTop, signZero, signTop, signTop,
}

func (Sign) Mul(a, b SignVal) SignVal { return signMulTable[int(a)*5+int(b)] }

var signDivTable = [25]SignVal{
	signBot, signBot, signBot, signBot, signBot,
	signBot, signPlus, signBot, signMinus, signTop,
	signBot, signZero, signBot, signZero, signZero,
	signBot, signMinus, signBot, signPlus, signTop,
	signBot, signTop, signBot, signTop, signTop,
}

func (Sign) Div(a, b SignVal) SignVal { return signDivTable[int(a)*5+int(b)] }

var signRemTable = [25]SignVal{
	signBot, signBot, signBot, signBot, signBot,
	signBot, signMinus, signBot, signMinus, signMinus,
	signBot, signZero, signBot, signZero, signZero,
	signBot, signPlus, signBot, signPlus, signPlus,
	signBot, signTop, signBot, signTop, signTop,
}

func (Sign) Rem(a, b SignVal) SignVal { return signRemTable[int(a)*5+int(b)] }

var signPowTable = [25]SignVal{
	signBot, signBot, signBot, signBot, signBot,
	signBot, signZero, signPlus, signTop, signTop,
	signBot, signBot, signBot, signZero, signZero,
	signBot, signZero, signPlus, signPlus, signTop,
	signBot, signZero, signPlus, signTop, signTop,
}

func (Sign) Pow(a, b SignVal) SignVal { return signPowTable[int(a)*5+int(b)] }

var signLtTable = [25]bool{
	false, false, false, false, false,
	false, true, true, true, true,
	false, false, false, true, true,
	false, false, false, true, true,
	false, true, true, true, true,
}

func (Sign) Lt(a, b SignVal) bool { return signLtTable[int(a)*5+int(b)] }

var signLeqTable = [25]bool{
	false, false, false, false, false,
	false, true, true, true, true,
	false, false, true, true, true,
	false, false, false, true, true,
	false, true, true, true, true,
}

func (Sign) Leq(a, b SignVal) bool { return signLeqTable[int(a)*5+int(b)] }

var signEqTable = [25]bool{
	false, false, false, false, false,
	false, true, false, false, true,
	false, false, true, false, true,
	false, false, false, true, true,
	false, true, true, true, true,
}

func (Sign) Eq(a, b SignVal) bool { return signEqTable[int(a)*5+int(b)] }

func (s Sign) Geq(a, b SignVal) bool { return s.Leq(b, a) }
func (s Sign) Gt(a, b SignVal) bool  { return s.Lt(b, a) }

func (Sign) Neq(a, b SignVal) bool {
	if a == signBot || b == signBot {
		return false
	}
	return !(a == signZero && b == signZero)
}

func (Sign) String(a SignVal) string {
	switch a {
	case signBot:
		return "bot"
	case signMinus:
		return "-"
	case signZero:
		return "0"
	case signPlus:
		return "+"
	default:
		return "top"
	}
}
