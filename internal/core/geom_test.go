package core

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestVec2Ops(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: 2}

	if got := a.Add(b); got != (Vec2{X: 4, Y: 6}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 2, Y: 2}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Scale(2); got != (Vec2{X: 6, Y: 8}) {
		t.Errorf("Scale = %+v", got)
	}
	if got := (Vec2{}).Dist(a); !almostEqual(got, 5) {
		t.Errorf("Dist = %v, want 5", got)
	}
}

func TestVec2Heading(t *testing.T) {
	origin := Vec2{}

	cases := []struct {
		to   Vec2
		want float64
	}{
		{Vec2{X: 1, Y: 0}, 0},
		{Vec2{X: 0, Y: 1}, math.Pi / 2},
		{Vec2{X: -1, Y: 0}, math.Pi},
	}
	for _, tc := range cases {
		if got := origin.Heading(tc.to); !almostEqual(got, tc.want) {
			t.Errorf("Heading(%+v) = %v, want %v", tc.to, got, tc.want)
		}
	}
}

func TestNewBounds(t *testing.T) {
	b := NewBounds(80, 24, 1, 3, 2)

	if b.MinX != 1 || b.MaxX != 79 {
		t.Errorf("horizontal bounds = [%v, %v]", b.MinX, b.MaxX)
	}
	if b.MinY != 3 || b.MaxY != 22 {
		t.Errorf("vertical bounds = [%v, %v]", b.MinY, b.MaxY)
	}
	if !b.Valid() {
		t.Error("standard bounds reported invalid")
	}
	if got := b.Center(); got != (Vec2{X: 40, Y: 12.5}) {
		t.Errorf("Center = %+v", got)
	}
}

func TestBoundsInvalidWhenMarginsSwallowScreen(t *testing.T) {
	if NewBounds(2, 24, 1, 3, 2).Valid() {
		t.Error("zero-width bounds reported valid")
	}
	if NewBounds(80, 5, 1, 3, 2).Valid() {
		t.Error("zero-height bounds reported valid")
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}

	if !b.Contains(Vec2{X: 5, Y: 5}) {
		t.Error("interior point not contained")
	}
	if !b.Contains(Vec2{X: 0, Y: 10}) {
		t.Error("edge point not contained")
	}
	if b.Contains(Vec2{X: -0.1, Y: 5}) || b.Contains(Vec2{X: 5, Y: 10.1}) {
		t.Error("exterior point contained")
	}
}

func TestBoundsWrap(t *testing.T) {
	b := Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}

	// Past the right edge re-enters on the left carrying the overshoot.
	got := b.Wrap(Vec2{X: 10.5, Y: 5})
	if !almostEqual(got.X, 0.5) || got.Y != 5 {
		t.Errorf("Wrap right = %+v", got)
	}

	got = b.Wrap(Vec2{X: 5, Y: -0.25})
	if got.X != 5 || !almostEqual(got.Y, 9.75) {
		t.Errorf("Wrap top = %+v", got)
	}

	// Inside points are untouched.
	in := Vec2{X: 3, Y: 7}
	if got := b.Wrap(in); got != in {
		t.Errorf("Wrap moved an interior point to %+v", got)
	}
}

func TestBoundsInset(t *testing.T) {
	b := Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	in := b.Inset(2)

	if in.MinX != 2 || in.MinY != 2 || in.MaxX != 8 || in.MaxY != 8 {
		t.Errorf("Inset = %+v", in)
	}
	if b.Inset(6).Valid() {
		t.Error("over-inset bounds reported valid")
	}
}

func TestClamps(t *testing.T) {
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp high = %d", got)
	}
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp low = %d", got)
	}
	if got := ClampF(0.5, 0, 1); got != 0.5 {
		t.Errorf("ClampF interior = %v", got)
	}
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF high = %v", got)
	}
	if Min(2, 3) != 2 || Max(2, 3) != 3 {
		t.Error("Min/Max wrong")
	}
}
