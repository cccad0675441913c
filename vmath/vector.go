// Package vmath provides the lattice and render-space vector and matrix
// types shared by the meshing core.
package vmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of scalar types a Vec can be built from: the integer
// lattice uses ints, the render-space path uses floats.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vec2 is a generic 2-component vector.
type Vec2[T Number] struct {
	X, Y T
}

func NewVec2[T Number](x, y T) Vec2[T] { return Vec2[T]{X: x, Y: y} }

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X + o.X, v.Y + o.Y} }
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X - o.X, v.Y - o.Y} }
func (v Vec2[T]) Mul(s T) Vec2[T]       { return Vec2[T]{v.X * s, v.Y * s} }

// GreaterOrEqual reports whether both components of v are >= the matching
// component of o, matching the original Vec2ui::operator>=. It is true
// only when both axes are at or past o, so it does not by itself detect a
// position that is out of bounds on one axis.
func (v Vec2[T]) GreaterOrEqual(o Vec2[T]) bool {
	return v.X >= o.X && v.Y >= o.Y
}

// Vec3 is a generic 3-component vector.
type Vec3[T Number] struct {
	X, Y, Z T
}

func NewVec3[T Number](x, y, z T) Vec3[T] { return Vec3[T]{X: x, Y: y, Z: z} }

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3[T]) Mul(s T) Vec3[T]       { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }

// Max returns the component-wise maximum, grounded on CBBox::GetSize's use
// of Vec3f::max to enforce a minimum voxel size of (1,1,1).
func (v Vec3[T]) Max(o Vec3[T]) Vec3[T] {
	r := v
	if o.X > r.X {
		r.X = o.X
	}
	if o.Y > r.Y {
		r.Y = o.Y
	}
	if o.Z > r.Z {
		r.Z = o.Z
	}
	return r
}

// Vec3i is the integer lattice position type used throughout the voxel
// space, chunk and bounding-box code.
type Vec3i = Vec3[int]

// Vec3f is the float render-space vector used by meshes, vertices and the
// scene graph.
type Vec3f = Vec3[float32]

// Vec2f is the float UV/pixel-rect vector.
type Vec2f = Vec2[float32]

// Vec2ui is the unsigned pixel-extent vector used by the texture packer and
// textures.
type Vec2ui = Vec2[uint]

// CrossF computes the 3-D cross product of two float vectors, used by the
// mesh builder's winding-correction check.
func CrossF(a, b Vec3f) Vec3f {
	return Vec3f{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// DotF computes the float dot product.
func DotF(a, b Vec3f) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// LengthF returns the Euclidean length of a float vector.
func LengthF(v Vec3f) float32 {
	return float32(math.Sqrt(float64(DotF(v, v))))
}

// NormalizeF returns v scaled to unit length, or v unchanged when its
// length is exactly zero.
func NormalizeF(v Vec3f) Vec3f {
	l := LengthF(v)
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// EqualApprox reports whether two float vectors are equal within epsilon,
// used by the mesh builder's winding-direction comparison.
func EqualApprox(a, b Vec3f, epsilon float32) bool {
	return absF(a.X-b.X) <= epsilon && absF(a.Y-b.Y) <= epsilon && absF(a.Z-b.Z) <= epsilon
}

func absF(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
