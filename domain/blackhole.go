package domain

// Black is the single value of the BlackHole domain. It is the trivial
// one-point lattice: every concrete integer abstracts to it, every
// operation returns it, and every comparison might hold. It is a useful
// sanity baseline: an analysis that only ever reports Black for every
// variable is still sound, just maximally imprecise.
type Black struct{}

// BlackHole is the domain instance for Black.
type BlackHole struct{}

func (BlackHole) Name() string { return "blackhole" }

func (BlackHole) Top() Black     { return Black{} }
func (BlackHole) Bottom() Black  { return Black{} }
func (BlackHole) Default() Black { return Black{} }

func (BlackHole) Equal(Black, Black) bool { return true }

func (BlackHole) Lub(Black, Black) Black   { return Black{} }
func (BlackHole) Widen(Black, Black) Black { return Black{} }

func (BlackHole) Alpha(int64) Black        { return Black{} }
func (BlackHole) AlphaSet([]int64) Black   { return Black{} }

func (BlackHole) Pos(Black) Black      { return Black{} }
func (BlackHole) Neg(Black) Black      { return Black{} }
func (BlackHole) Add(Black, Black) Black { return Black{} }
func (BlackHole) Sub(Black, Black) Black { return Black{} }
func (BlackHole) Mul(Black, Black) Black { return Black{} }
func (BlackHole) Div(Black, Black) Black { return Black{} }
func (BlackHole) Rem(Black, Black) Black { return Black{} }
func (BlackHole) Pow(Black, Black) Black { return Black{} }

func (BlackHole) Lt(Black, Black) bool  { return true }
func (BlackHole) Leq(Black, Black) bool { return true }
func (BlackHole) Eq(Black, Black) bool  { return true }
func (BlackHole) Geq(Black, Black) bool { return true }
func (BlackHole) Gt(Black, Black) bool  { return true }
func (BlackHole) Neq(Black, Black) bool { return true }

func (BlackHole) String(Black) string { return "*" }
