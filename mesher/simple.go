package mesher

import (
	"vcore/mesh"
	"vcore/meshbuilder"
	"vcore/vlog"
	"vcore/vmath"
	"vcore/voxel"
	"vcore/voxelmodel"
	"vcore/voxelspace"
)

// SimpleMesher emits one quad per exposed voxel face, with no merging
// across neighbouring faces. Grounded on
// VoxelOptimizer/Meshers/SimpleMesher.cpp and spec.md §4.3.1.
type SimpleMesher struct {
	base
}

// NewSimple returns a simple per-face mesher.
func NewSimple(logger vlog.Logger) *SimpleMesher {
	s := &SimpleMesher{}
	s.base = newBase(s, logger)
	return s
}

// faceOffsets pairs each visibility bit with the unit-cube face it
// represents: the outward normal and the four corners of that face in
// the builder's declared (top-left, top-right, bottom-left,
// bottom-right) order, for a unit voxel with Beg at the origin.
var faceOffsets = []struct {
	bit                    voxel.Visibility
	normal                 vmath.Vec3f
	tl, tr, bl, br         vmath.Vec3f
}{
	{voxel.Up, vmath.Vec3f{Y: 1},
		vmath.Vec3f{X: 0, Y: 1, Z: 0}, vmath.Vec3f{X: 1, Y: 1, Z: 0},
		vmath.Vec3f{X: 0, Y: 1, Z: 1}, vmath.Vec3f{X: 1, Y: 1, Z: 1}},
	{voxel.Down, vmath.Vec3f{Y: -1},
		vmath.Vec3f{X: 0, Y: 0, Z: 1}, vmath.Vec3f{X: 1, Y: 0, Z: 1},
		vmath.Vec3f{X: 0, Y: 0, Z: 0}, vmath.Vec3f{X: 1, Y: 0, Z: 0}},
	{voxel.Right, vmath.Vec3f{X: 1},
		vmath.Vec3f{X: 1, Y: 1, Z: 0}, vmath.Vec3f{X: 1, Y: 1, Z: 1},
		vmath.Vec3f{X: 1, Y: 0, Z: 0}, vmath.Vec3f{X: 1, Y: 0, Z: 1}},
	{voxel.Left, vmath.Vec3f{X: -1},
		vmath.Vec3f{X: 0, Y: 1, Z: 1}, vmath.Vec3f{X: 0, Y: 1, Z: 0},
		vmath.Vec3f{X: 0, Y: 0, Z: 1}, vmath.Vec3f{X: 0, Y: 0, Z: 0}},
	{voxel.Forward, vmath.Vec3f{Z: 1},
		vmath.Vec3f{X: 1, Y: 1, Z: 1}, vmath.Vec3f{X: 0, Y: 1, Z: 1},
		vmath.Vec3f{X: 1, Y: 0, Z: 1}, vmath.Vec3f{X: 0, Y: 0, Z: 1}},
	{voxel.Backward, vmath.Vec3f{Z: -1},
		vmath.Vec3f{X: 0, Y: 1, Z: 0}, vmath.Vec3f{X: 1, Y: 1, Z: 0},
		vmath.Vec3f{X: 0, Y: 0, Z: 0}, vmath.Vec3f{X: 1, Y: 0, Z: 0}},
}

func (s *SimpleMesher) meshChunk(model *voxelmodel.Model, coord voxelspace.ChunkCoord) (*mesh.Mesh, error) {
	chunk := model.Voxels().GetChunk(coord, false)
	if chunk == nil {
		return mesh.New(""), nil
	}
	origin := chunkOrigin(coord)

	b := meshbuilder.New()
	b.AddTextures(model.Textures)
	if model.TextureMap != nil {
		b.SetTextureMap(model.TextureMap)
	}

	box := chunk.InnerBBox()
	for x := box.Beg.X; x < box.End.X; x++ {
		for y := box.Beg.Y; y < box.End.Y; y++ {
			for z := box.Beg.Z; z < box.End.Z; z++ {
				local := vmath.Vec3i{X: x, Y: y, Z: z}
				v := chunk.Get(local)
				if !v.IsVisible() {
					continue
				}
				world := origin.Add(local)
				wf := vmath.Vec3f{X: float32(world.X), Y: float32(world.Y), Z: float32(world.Z)}
				for _, face := range faceOffsets {
					if !v.VisibilityMask.Has(face.bit) {
						continue
					}
					if err := b.AddFace(
						wf.Add(face.tl), wf.Add(face.tr), wf.Add(face.bl), wf.Add(face.br),
						face.normal, int(v.Color), int(v.Material),
					); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return b.Build()
}
