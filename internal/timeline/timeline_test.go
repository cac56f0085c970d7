package timeline

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/pointmorph/internal/cloud"
	"github.com/san-kum/pointmorph/internal/layout"
	"github.com/san-kum/pointmorph/internal/palette"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, f, want float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{-1, 1, 0.25, -0.5},
		{3, 3, 0.7, 3},
	}
	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.f); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.f, got, tt.want)
		}
	}
}

func TestLerp_Monotonic(t *testing.T) {
	a, b := -0.8, 0.64
	prev := Lerp(a, b, 0)
	for i := 1; i <= 1000; i++ {
		got := Lerp(a, b, float64(i)/1000)
		if got < prev {
			t.Fatalf("Lerp decreased at f=%v", float64(i)/1000)
		}
		prev = got
	}
}

func TestAdvance_RotationWraps(t *testing.T) {
	tl, err := New(120, DefaultRotation)
	if err != nil {
		t.Fatal(err)
	}

	for cycle := 1; cycle <= 2*len(DefaultRotation); cycle++ {
		for i := 0; i < 120; i++ {
			tl.Advance()
		}
		if tl.Step() != 0 {
			t.Fatalf("cycle %d: step = %d, want 0", cycle, tl.Step())
		}
		if want := cycle % len(DefaultRotation); tl.Index() != want {
			t.Fatalf("cycle %d: index = %d, want %d", cycle, tl.Index(), want)
		}
	}
}

func TestAdvance_IndexOnlyOnWrap(t *testing.T) {
	tl, _ := New(10, DefaultRotation)
	for i := 1; i < 10; i++ {
		tl.Advance()
		if tl.Index() != 0 {
			t.Fatalf("index advanced early at step %d", tl.Step())
		}
	}
	tl.Advance()
	if tl.Index() != 1 || tl.Step() != 0 {
		t.Errorf("after 10 ticks: step=%d index=%d", tl.Step(), tl.Index())
	}
}

func TestFraction(t *testing.T) {
	tl, _ := New(120, DefaultRotation)

	if tl.Fraction() != 0 {
		t.Errorf("fraction at step 0 = %v", tl.Fraction())
	}

	for i := 0; i < 48; i++ {
		tl.Advance()
	}
	if got := tl.Fraction(); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("fraction at step 48 = %v, want 0.5", got)
	}

	for tl.Step() < 96 {
		tl.Advance()
	}
	if tl.Fraction() != 1 {
		t.Errorf("fraction at step 96 = %v, want 1", tl.Fraction())
	}

	for tl.Step() != 0 {
		tl.Advance()
		if f := tl.Fraction(); f < 0 || f > 1 {
			t.Fatalf("fraction %v out of range at step %d", f, tl.Step())
		}
		if tl.Step() > 96 && tl.Fraction() != 1 {
			t.Fatalf("fraction should hold at 1, got %v at step %d", tl.Fraction(), tl.Step())
		}
	}
}

func TestPair(t *testing.T) {
	tl, _ := New(2, DefaultRotation)

	want := [][2]layout.Kind{
		{layout.Phyllotaxis, layout.Spiral},
		{layout.Spiral, layout.Phyllotaxis},
		{layout.Phyllotaxis, layout.Grid},
		{layout.Grid, layout.Wave},
		{layout.Wave, layout.Phyllotaxis},
		{layout.Phyllotaxis, layout.Spiral},
	}

	for i, w := range want {
		cur, next := tl.Pair()
		if cur != w[0] || next != w[1] {
			t.Errorf("cycle %d: pair = (%s, %s), want (%s, %s)", i, cur, next, w[0], w[1])
		}
		tl.Advance()
		tl.Advance()
	}
}

func newPoints(t *testing.T, n int) []cloud.Point {
	t.Helper()
	s := cloud.NewSet(palette.Viridis)
	if err := s.SetCount(n); err != nil {
		t.Fatal(err)
	}
	return s.Points()
}

func TestTick_HoldsAtNextLayout(t *testing.T) {
	points := newPoints(t, 64)
	tl, _ := New(120, DefaultRotation)

	for tl.Step() < 96 {
		tl.Tick(points)
	}

	_, next := tl.Pair()
	for tl.Step() < 119 {
		for i := range points {
			a := points[i].Anchors.At(next)
			if math.Abs(points[i].X-a.X) > 1e-12 || math.Abs(points[i].Y-a.Y) > 1e-12 {
				t.Fatalf("step %d point %d at (%v, %v), want anchor %v", tl.Step(), i, points[i].X, points[i].Y, a)
			}
		}
		tl.Tick(points)
	}
}

func TestTick_StartsAtCurrentLayout(t *testing.T) {
	points := newPoints(t, 32)
	tl, _ := New(4, DefaultRotation)

	// four ticks wrap to step 0 of the second pair (spiral → phyllotaxis)
	for i := 0; i < 4; i++ {
		tl.Tick(points)
	}
	cur, _ := tl.Pair()
	if cur != layout.Spiral {
		t.Fatalf("current = %s, want spiral", cur)
	}
	for i := range points {
		if points[i].Pos() != points[i].Anchors.Spiral {
			t.Fatalf("point %d not on spiral anchor", i)
		}
	}
}

func TestTick_LeavesAnchorsAndColors(t *testing.T) {
	points := newPoints(t, 20)
	before := make([]cloud.Point, len(points))
	copy(before, points)

	tl, _ := New(10, DefaultRotation)
	for i := 0; i < 37; i++ {
		tl.Tick(points)
	}

	for i := range points {
		if points[i].Anchors != before[i].Anchors || points[i].Color != before[i].Color {
			t.Fatalf("point %d anchors or color changed", i)
		}
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New(0, DefaultRotation); !errors.Is(err, ErrInvalidSteps) {
		t.Errorf("expected ErrInvalidSteps, got %v", err)
	}
	if _, err := New(10, nil); !errors.Is(err, ErrEmptyRotation) {
		t.Errorf("expected ErrEmptyRotation, got %v", err)
	}
	if _, err := New(10, Rotation{layout.Kind(7)}); !errors.Is(err, layout.ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
	for _, share := range []float64{0, -0.5, 1.5, math.NaN()} {
		if _, err := New(10, DefaultRotation, WithShare(share)); !errors.Is(err, ErrInvalidShare) {
			t.Errorf("share %v: expected ErrInvalidShare, got %v", share, err)
		}
	}
}

func TestWithShare_Full(t *testing.T) {
	tl, _ := New(10, DefaultRotation, WithShare(1))
	for i := 0; i < 9; i++ {
		tl.Advance()
	}
	if got := tl.Fraction(); math.Abs(got-0.9) > 1e-12 {
		t.Errorf("share 1 at step 9 = %v, want 0.9", got)
	}
}

func TestNew_CopiesRotation(t *testing.T) {
	r := Rotation{layout.Grid, layout.Wave}
	tl, _ := New(5, r)
	r[0] = layout.Spiral
	if cur, _ := tl.Pair(); cur != layout.Grid {
		t.Error("timeline should not alias the caller's rotation")
	}
}

func TestParseRotation(t *testing.T) {
	r, err := ParseRotation([]string{"grid", "Wave", "spiral"})
	if err != nil {
		t.Fatal(err)
	}
	if len(r) != 3 || r[1] != layout.Wave {
		t.Errorf("got %v", r)
	}

	if _, err := ParseRotation(nil); !errors.Is(err, ErrEmptyRotation) {
		t.Errorf("expected ErrEmptyRotation, got %v", err)
	}
	if _, err := ParseRotation([]string{"grid", "blob"}); !errors.Is(err, layout.ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestCurve(t *testing.T) {
	tl, _ := New(120, DefaultRotation)
	c := tl.Curve()
	if len(c) != 120 {
		t.Fatalf("curve length %d", len(c))
	}
	if c[0] != 0 || c[96] != 1 || c[119] != 1 {
		t.Errorf("unexpected curve endpoints: %v %v %v", c[0], c[96], c[119])
	}
}

func BenchmarkTick(b *testing.B) {
	s := cloud.NewSet(palette.Viridis)
	if err := s.SetCount(10000); err != nil {
		b.Fatal(err)
	}
	points := s.Points()
	tl, _ := New(DefaultSteps, DefaultRotation)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tl.Tick(points)
	}
}
