// Package core provides fundamental types and utilities for the shapestorm
// simulation. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D point or velocity in simulation space.
// One unit corresponds to one terminal cell.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Heading returns the angle in radians from v toward o.
func (v Vec2) Heading(o Vec2) float64 {
	return math.Atan2(o.Y-v.Y, o.X-v.X)
}

// Bounds is an axis-aligned play-field rectangle in simulation space.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewBounds creates bounds from a screen size and asymmetric margins.
// Top and bottom margins differ from the side margins because the HUD
// occupies the top rows.
func NewBounds(screenW, screenH int, side, top, bottom float64) Bounds {
	return Bounds{
		MinX: side,
		MinY: top,
		MaxX: float64(screenW) - side,
		MaxY: float64(screenH) - bottom,
	}
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

// Valid reports whether the bounds enclose a positive area.
func (b Bounds) Valid() bool {
	return b.Width() > 0 && b.Height() > 0
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Vec2 {
	return Vec2{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Contains reports whether p lies inside the bounds.
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Inset returns the bounds shrunk by d on every side.
func (b Bounds) Inset(d float64) Bounds {
	return Bounds{MinX: b.MinX + d, MinY: b.MinY + d, MaxX: b.MaxX - d, MaxY: b.MaxY - d}
}

// Wrap maps p back into the bounds toroidally (opposite-edge re-entry).
func (b Bounds) Wrap(p Vec2) Vec2 {
	if p.X < b.MinX {
		p.X = b.MaxX - (b.MinX - p.X)
	} else if p.X > b.MaxX {
		p.X = b.MinX + (p.X - b.MaxX)
	}
	if p.Y < b.MinY {
		p.Y = b.MaxY - (b.MinY - p.Y)
	} else if p.Y > b.MaxY {
		p.Y = b.MinY + (p.Y - b.MaxY)
	}
	return p
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
