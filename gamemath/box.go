// Package gamemath provides pure geometry and vector math for the
// simulation. It has no dependencies on ebitengine, donburi, or resolv.
package gamemath

// Vec2 is a 2D position or velocity.
type Vec2 struct {
	X, Y float64
}

// Box is an axis-aligned bounding box with origin at the top-left.
type Box struct {
	X, Y, W, H float64
}

// Overlaps reports whether a and b strictly overlap. Boxes that only
// share an edge do not count as colliding.
func Overlaps(a, b Box) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Center returns the center point of the box.
func (b Box) Center() Vec2 {
	return Vec2{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Pos returns the top-left corner of the box.
func (b Box) Pos() Vec2 {
	return Vec2{X: b.X, Y: b.Y}
}
