package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Mat4 wraps mgl32.Mat4 and adds the composition helpers the scene graph
// and mesh builder need: translation/scale construction, axis-angle
// rotation accumulation, and Euler-angle extraction.
type Mat4 struct {
	m mgl32.Mat4
}

// Identity returns the identity matrix.
func Identity() Mat4 { return Mat4{m: mgl32.Ident4()} }

// Translation builds a pure translation matrix.
func Translation(pos Vec3f) Mat4 {
	return Mat4{m: mgl32.Translate3D(pos.X, pos.Y, pos.Z)}
}

// Scale builds a pure scale matrix.
func Scale(s Vec3f) Mat4 {
	return Mat4{m: mgl32.Scale3D(s.X, s.Y, s.Z)}
}

// Rotate left-multiplies this matrix by a rotation of phi radians around
// axis, mirroring Mat4x4::Rotate's `*this = rotMat * (*this)` accumulation.
func (m Mat4) Rotate(axis Vec3f, phi float32) Mat4 {
	rot := mgl32.HomogRotate3D(phi, mgl32.Vec3{axis.X, axis.Y, axis.Z})
	return Mat4{m: rot.Mul4(m.m)}
}

// Mul composes two matrices (m * o).
func (m Mat4) Mul(o Mat4) Mat4 {
	return Mat4{m: m.m.Mul4(o.m)}
}

// MulVec3 transforms a point by this matrix (w implicitly 1).
func (m Mat4) MulVec3(v Vec3f) Vec3f {
	r := m.m.Mul4x1(mgl32.Vec4{v.X, v.Y, v.Z, 1})
	return Vec3f{r[0], r[1], r[2]}
}

// Raw exposes the underlying mgl32.Mat4 for code that needs it directly.
func (m Mat4) Raw() mgl32.Mat4 { return m.m }

// FromRaw wraps a raw mgl32.Mat4.
func FromRaw(raw mgl32.Mat4) Mat4 { return Mat4{m: raw} }

// GetEuler extracts the Z-X-Y Euler angles this matrix's rotation
// component encodes, translated directly from Mat4x4::GetEuler (the
// gimbal-lock branch triggers when the extracted z.x term is ±1).
func (m Mat4) GetEuler() Vec3f {
	// mgl32.Mat4 is column-major; element (row, col) is m.m[col*4+row].
	zx := m.m[2]
	zy := m.m[6]
	zz := m.m[10]
	yx := m.m[1]
	xx := m.m[0]
	xy := m.m[4]
	xz := m.m[8]

	var rot Vec3f
	if zx != 1 && zx != -1 {
		rot.Y = float32(-math.Asin(float64(zx)))
		cosY := float32(math.Cos(float64(rot.Y)))
		rot.X = float32(math.Atan2(float64(zy/cosY), float64(zz/cosY)))
		rot.Z = float32(math.Atan2(float64(yx/cosY), float64(xx/cosY)))
	} else if zx == -1 {
		rot.Y = math.Pi / 2
		rot.X = float32(math.Atan2(float64(xy), float64(xz)))
	} else {
		rot.Y = -math.Pi / 2
		rot.X = float32(math.Atan2(float64(-xy), float64(-xz)))
	}
	return rot
}
