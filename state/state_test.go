package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whilelang/interp/domain"
	"github.com/whilelang/interp/state"
)

func TestLoadUnboundReturnsDefault(t *testing.T) {
	d := domain.Sign{}
	s := state.New[domain.SignVal](d)
	assert.True(t, d.Equal(d.Default(), s.Load("x")))
}

func TestStoreDoesNotMutateReceiver(t *testing.T) {
	d := domain.Sign{}
	s := state.New[domain.SignVal](d)
	s2 := s.Store("x", d.Alpha(1))

	assert.True(t, d.Equal(d.Default(), s.Load("x")), "the original state must be unaffected")
	assert.True(t, d.Equal(d.Alpha(1), s2.Load("x")))
}

func TestNamesAreSorted(t *testing.T) {
	d := domain.Sign{}
	s := state.New[domain.SignVal](d)
	s = s.Store("z", d.Alpha(1)).Store("a", d.Alpha(2)).Store("m", d.Alpha(3))
	assert.Equal(t, []string{"a", "m", "z"}, s.Names())
}

func TestLubJoinsSharedVariablesPointwise(t *testing.T) {
	d := domain.Sign{}
	a := state.New[domain.SignVal](d).Store("x", d.Alpha(1))
	b := state.New[domain.SignVal](d).Store("x", d.Alpha(-1))

	joined := a.Lub(b)
	assert.True(t, d.Equal(d.Top(), joined.Load("x")), "joining a positive and negative sign value must go to top")
}

func TestLubCopiesUniqueVariablesAcross(t *testing.T) {
	d := domain.Sign{}
	a := state.New[domain.SignVal](d).Store("x", d.Alpha(1))
	b := state.New[domain.SignVal](d).Store("y", d.Alpha(2))

	joined := a.Lub(b)
	assert.True(t, d.Equal(d.Alpha(1), joined.Load("x")), "x only appears in a, so it must carry across unchanged")
	assert.True(t, d.Equal(d.Alpha(2), joined.Load("y")), "y only appears in b, so it must carry across unchanged")
}

func TestLubWithUnreachableIsIdentity(t *testing.T) {
	d := domain.Sign{}
	a := state.New[domain.SignVal](d).Store("x", d.Alpha(1))
	u := state.Unreachable[domain.SignVal](d)

	assert.True(t, a.Lub(u).Equal(a))
	assert.True(t, u.Lub(a).Equal(a))
}

func TestWidenCoversUnionOfKeys(t *testing.T) {
	d := domain.NewDefaultInterval()
	prev := state.New[domain.IntervalVal](d).Store("x", d.Alpha(0))
	curr := state.New[domain.IntervalVal](d).Store("x", d.Alpha(1)).Store("y", d.Alpha(5))

	widened := prev.Widen(curr)

	// y was never bound in prev, so it must be widened against the
	// domain's Default (= Bottom), not skipped: Widen(Bottom, Alpha(5))
	// returns its second argument, Alpha(5), rather than leaving y out
	// of the resulting state entirely.
	require.Contains(t, widened.Names(), "y")
	assert.True(t, d.Equal(d.Alpha(5), widened.Load("y")))
}

func TestWidenUnreachableIsIdentity(t *testing.T) {
	d := domain.Sign{}
	a := state.New[domain.SignVal](d).Store("x", d.Alpha(1))
	u := state.Unreachable[domain.SignVal](d)

	assert.True(t, u.Widen(a).Equal(a))
	assert.True(t, a.Widen(u).Equal(a))
}

func TestEqualRequiresSameReachability(t *testing.T) {
	d := domain.Sign{}
	a := state.New[domain.SignVal](d)
	u := state.Unreachable[domain.SignVal](d)
	assert.False(t, a.Equal(u))
}

func TestEqualIgnoresInsertionOrder(t *testing.T) {
	d := domain.Sign{}
	a := state.New[domain.SignVal](d).Store("x", d.Alpha(1)).Store("y", d.Alpha(2))
	b := state.New[domain.SignVal](d).Store("y", d.Alpha(2)).Store("x", d.Alpha(1))
	assert.True(t, a.Equal(b))
}

func TestLessEq(t *testing.T) {
	d := domain.Sign{}
	low := state.New[domain.SignVal](d).Store("x", d.Alpha(1))
	high := state.New[domain.SignVal](d).Store("x", d.Top())

	assert.True(t, low.LessEq(high))
	assert.False(t, high.LessEq(low))
	assert.True(t, low.LessEq(low))
}

func TestDumpFormatsUnreachableAndBound(t *testing.T) {
	d := domain.Sign{}
	u := state.Unreachable[domain.SignVal](d)
	assert.Equal(t, "[unreachable]", u.Dump())

	s := state.New[domain.SignVal](d).Store("x", d.Alpha(1))
	assert.Equal(t, "[x -> +]", s.Dump())
}
