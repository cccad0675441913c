// Package voxelizer projects a pair of orthographic plane images into a
// voxel space, the inverse of a mesher: pixels become voxel columns
// instead of voxels becoming triangles. Grounded on
// VoxelOptimizer/Voxel/PlanesVoxelizer.cpp's ProjectPlane/ProjectTexture
// pass, generalized from its fixed top/front pair to an arbitrary
// projection axis per spec.md's expanded §4.11 contract.
package voxelizer

import (
	"fmt"

	"image"

	"vcore/texture"
	"vcore/vcoreerr"
	"vcore/vmath"
	"vcore/voxel"
	"vcore/voxelspace"
)

// Axis selects which world axis a voxelizer projects along.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Voxelizer projects a front/back image pair into a voxel space along a
// fixed axis and depth.
type Voxelizer struct {
	axis  Axis
	depth int
}

// NewVoxelizer returns a voxelizer that fills depth voxels along axis per
// covered pixel.
func NewVoxelizer(axis Axis, depth int) *Voxelizer {
	if depth < 1 {
		depth = 1
	}
	return &Voxelizer{axis: axis, depth: depth}
}

// Voxelize projects front and back into a new voxel space. Each
// non-transparent front pixel seeds a column of voxels along the
// projection axis, colored with the front pixel's packed 0xAARRGGBB word
// (texture.Color.AsRGBA). The paired back
// pixel at the same (u, v) decides how deep the column runs: opaque
// in back means the column is a solid, opaqueMaterial-tagged slab
// spanning the full configured depth; transparent in back means the
// pixel is only a thin, transparentMaterial-tagged shell one voxel deep,
// matching ProjectPlane's ADD/SUBTRACT front/back carving.
//
// front and back must share identical bounds; a mismatch is reported as
// vcoreerr.ErrFormatCorrupt.
func (vz *Voxelizer) Voxelize(front, back image.Image, opaqueMaterial, transparentMaterial int) (*voxelspace.Space, error) {
	fb := front.Bounds()
	bb := back.Bounds()
	if fb.Dx() != bb.Dx() || fb.Dy() != bb.Dy() {
		return nil, fmt.Errorf("voxelizer: front/back plane dimensions differ (%dx%d vs %dx%d): %w",
			fb.Dx(), fb.Dy(), bb.Dx(), bb.Dy(), vcoreerr.ErrFormatCorrupt)
	}

	space := voxelspace.New()

	for v := 0; v < fb.Dy(); v++ {
		for u := 0; u < fb.Dx(); u++ {
			fr, fg, fbl, fa := front.At(fb.Min.X+u, fb.Min.Y+v).RGBA()
			if fa == 0 {
				continue
			}
			_, _, _, ba := back.At(bb.Min.X+u, bb.Min.Y+v).RGBA()

			color := texture.NewColor(uint8(fr>>8), uint8(fg>>8), uint8(fbl>>8), uint8(fa>>8))

			depth := 1
			material := transparentMaterial
			transparent := true
			if ba != 0 {
				depth = vz.depth
				material = opaqueMaterial
				transparent = false
			}

			for d := 0; d < depth; d++ {
				pos := vz.positionFor(u, v, d)
				space.Insert(pos, voxel.Voxel{
					Color:       int32(color.AsRGBA()),
					Material:    int16(material),
					Transparent: transparent,
				})
			}
		}
	}

	return space, nil
}

// positionFor maps a plane-space (u, v) pixel and a column depth offset
// to a world voxel position: AxisX gives (depth, v, u), AxisY gives
// (u, depth, v) and AxisZ gives (u, v, depth).
func (vz *Voxelizer) positionFor(u, v, depth int) vmath.Vec3i {
	switch vz.axis {
	case AxisX:
		return vmath.Vec3i{X: depth, Y: v, Z: u}
	case AxisY:
		return vmath.Vec3i{X: u, Y: depth, Z: v}
	default:
		return vmath.Vec3i{X: u, Y: v, Z: depth}
	}
}
