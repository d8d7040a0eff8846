package model

import "math"

// Point represents a 2D point in image coordinates (origin top-left,
// Y increasing downward).
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Matrix represents a 2D affine transformation matrix in the form
//
//	[ m0 m2 m4 ]
//	[ m1 m3 m5 ]
//
// mapping (x, y) to (m0*x + m2*y + m4, m1*x + m3*y + m5).
type Matrix [6]float64

// Identity returns an identity matrix
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Apply applies the matrix transformation to a point
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Multiply returns m · other, the matrix that applies other first and m second.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		m[0]*other[0] + m[2]*other[1],
		m[1]*other[0] + m[3]*other[1],
		m[0]*other[2] + m[2]*other[3],
		m[1]*other[2] + m[3]*other[3],
		m[0]*other[4] + m[2]*other[5] + m[4],
		m[1]*other[4] + m[3]*other[5] + m[5],
	}
}

// Translate creates a translation matrix
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Scale creates a scaling matrix
func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Rotate creates a rotation matrix (angle in radians, positive is clockwise
// in image coordinates since Y grows downward).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout creates a rotation matrix about an arbitrary center point.
func RotateAbout(angle float64, center Point) Matrix {
	return Translate(center.X, center.Y).
		Multiply(Rotate(angle)).
		Multiply(Translate(-center.X, -center.Y))
}

// Invert returns the inverse matrix and true, or the identity and false when
// the matrix is singular.
func (m Matrix) Invert() (Matrix, bool) {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 {
		return Identity(), false
	}
	inv := Matrix{
		m[3] / det,
		-m[1] / det,
		-m[2] / det,
		m[0] / det,
		(m[2]*m[5] - m[3]*m[4]) / det,
		(m[1]*m[4] - m[0]*m[5]) / det,
	}
	return inv, true
}

// IsIdentity returns true if the matrix is an identity matrix
func (m Matrix) IsIdentity() bool {
	return m[0] == 1 && m[1] == 0 && m[2] == 0 && m[3] == 1 && m[4] == 0 && m[5] == 0
}

// Frame translates between a local coordinate frame (such as ROI-relative
// columns) and the enclosing full-image frame. Every intermediate pipeline
// result carries the frame its coordinates are expressed in, so conversions
// are explicit rather than scattered offset arithmetic.
type Frame struct {
	OffsetX float64
	OffsetY float64
}

// FrameOf returns the frame whose origin is the top-left corner of the ROI.
func FrameOf(roi ROI) Frame {
	return Frame{OffsetX: float64(roi.X0), OffsetY: float64(roi.Y0)}
}

// ToGlobal converts a point from the local frame to full-image coordinates.
func (f Frame) ToGlobal(p Point) Point {
	return Point{X: p.X + f.OffsetX, Y: p.Y + f.OffsetY}
}

// ToLocal converts a point from full-image coordinates to the local frame.
func (f Frame) ToLocal(p Point) Point {
	return Point{X: p.X - f.OffsetX, Y: p.Y - f.OffsetY}
}

// GlobalX converts a local column to a full-image column.
func (f Frame) GlobalX(x float64) float64 { return x + f.OffsetX }

// LocalX converts a full-image column to a local column.
func (f Frame) LocalX(x float64) float64 { return x - f.OffsetX }
