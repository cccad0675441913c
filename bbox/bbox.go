// Package bbox implements the integer axis-aligned bounding box, the
// frustum culling test, and the AABB-vs-ray helper used by the meshing
// core and the mesher's scene walker.
package bbox

import "vcore/vmath"

// BBox is an axis-aligned box on the integer lattice, half-open at End
// (matching CBBox's Beg/End pair and ContainsPoint's `< End` test).
type BBox struct {
	Beg, End vmath.Vec3i
}

// New builds a BBox from its begin/end corners.
func New(beg, end vmath.Vec3i) BBox {
	return BBox{Beg: beg, End: end}
}

// Size returns the box's extent, floored to (1,1,1): a voxel always
// occupies at least a unit cube, matching CBBox::GetSize.
func (b BBox) Size() vmath.Vec3f {
	d := vmath.Vec3f{
		X: float32(b.End.X - b.Beg.X),
		Y: float32(b.End.Y - b.Beg.Y),
		Z: float32(b.End.Z - b.Beg.Z),
	}
	return d.Max(vmath.Vec3f{X: 1, Y: 1, Z: 1})
}

// ContainsPoint reports whether v lies within [Beg, End).
func (b BBox) ContainsPoint(v vmath.Vec3i) bool {
	return v.X >= b.Beg.X && v.Y >= b.Beg.Y && v.Z >= b.Beg.Z &&
		v.X < b.End.X && v.Y < b.End.Y && v.Z < b.End.Z
}

// Center returns the box's float-space center.
func (b BBox) Center() vmath.Vec3f {
	beg := vmath.Vec3f{X: float32(b.Beg.X), Y: float32(b.Beg.Y), Z: float32(b.Beg.Z)}
	end := vmath.Vec3f{X: float32(b.End.X), Y: float32(b.End.Y), Z: float32(b.End.Z)}
	return beg.Add(end).Mul(0.5)
}

// Extents returns the box's half-size, matching CBBox::GetExtents
// (`End - Center`).
func (b BBox) Extents() vmath.Vec3f {
	end := vmath.Vec3f{X: float32(b.End.X), Y: float32(b.End.Y), Z: float32(b.End.Z)}
	return end.Sub(b.Center())
}

// Translate returns a copy of b shifted by delta, used when reporting a
// chunk's inner bbox in world space (CChunk::inner_bbox).
func (b BBox) Translate(delta vmath.Vec3i) BBox {
	return BBox{Beg: b.Beg.Add(delta), End: b.End.Add(delta)}
}

// Inflate grows the box by margin on every axis, used to apply the
// configurable frustum culling margin before a visibility test.
func (b BBox) Inflate(margin int) BBox {
	d := vmath.Vec3i{X: margin, Y: margin, Z: margin}
	return BBox{Beg: b.Beg.Sub(d), End: b.End.Add(d)}
}
