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

// LegacyGreedyMesher treats a whole chunk as one 3-D block and greedily
// merges same-key occupied cells into rectangular cuboids, emitting one
// quad per cuboid face rather than per exposed-face run. Coarser and
// seam-prone at chunk borders than GreedyMesher; kept for compatibility
// with content authored against it. Grounded on
// VoxelOptimizer/Meshers/GreedyMesher.hpp's chunk-as-block merge shape
// and spec.md §4.3.4.
type LegacyGreedyMesher struct {
	base
}

// NewLegacyGreedy returns the coarse, chunk-as-block greedy mesher.
func NewLegacyGreedy(logger vlog.Logger) *LegacyGreedyMesher {
	l := &LegacyGreedyMesher{}
	l.base = newBase(l, logger)
	return l
}

func (l *LegacyGreedyMesher) meshChunk(model *voxelmodel.Model, coord voxelspace.ChunkCoord) (*mesh.Mesh, error) {
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

	const edge = voxel.ChunkEdge
	box := chunk.InnerBBox()
	var visited [edge * edge * edge]bool
	idx := func(x, y, z int) int { return (x*edge+y)*edge + z }

	for x := box.Beg.X; x < box.End.X; x++ {
		for y := box.Beg.Y; y < box.End.Y; y++ {
			for z := box.Beg.Z; z < box.End.Z; z++ {
				if visited[idx(x, y, z)] {
					continue
				}
				local := vmath.Vec3i{X: x, Y: y, Z: z}
				v := chunk.Get(local)
				if !v.IsInstantiated() {
					visited[idx(x, y, z)] = true
					continue
				}
				key := mergeKey{color: v.Color, material: v.Material, transparent: v.Transparent}

				w := 1
				for x+w < box.End.X && !visited[idx(x+w, y, z)] && sameKey(chunk.Get(vmath.Vec3i{X: x + w, Y: y, Z: z}), key) {
					w++
				}
				h := 1
			growY:
				for y+h < box.End.Y {
					for xx := x; xx < x+w; xx++ {
						if visited[idx(xx, y+h, z)] || !sameKey(chunk.Get(vmath.Vec3i{X: xx, Y: y + h, Z: z}), key) {
							break growY
						}
					}
					h++
				}
				d := 1
			growZ:
				for z+d < box.End.Z {
					for xx := x; xx < x+w; xx++ {
						for yy := y; yy < y+h; yy++ {
							if visited[idx(xx, yy, z+d)] || !sameKey(chunk.Get(vmath.Vec3i{X: xx, Y: yy, Z: z + d}), key) {
								break growZ
							}
						}
					}
					d++
				}

				for xx := x; xx < x+w; xx++ {
					for yy := y; yy < y+h; yy++ {
						for zz := z; zz < z+d; zz++ {
							visited[idx(xx, yy, zz)] = true
						}
					}
				}

				if err := emitBox(b, origin, vmath.Vec3i{X: x, Y: y, Z: z}, vmath.Vec3i{X: x + w, Y: y + h, Z: z + d}, key,
					representativeMask(chunk, x, y, z, w, h, d)); err != nil {
					return nil, err
				}
			}
		}
	}

	return b.Build()
}

func sameKey(v voxel.Voxel, key mergeKey) bool {
	return v.IsInstantiated() && v.Color == key.color && v.Material == key.material && v.Transparent == key.transparent
}

// representativeMask samples the visibility mask at the cuboid's min and
// max corner to decide which of the six box faces to emit; a single
// sample per side is the coarse, seam-prone shortcut this mesher is
// known for.
func representativeMask(chunk *voxel.Chunk, x, y, z, w, h, d int) voxel.Visibility {
	min := chunk.Get(vmath.Vec3i{X: x, Y: y, Z: z}).VisibilityMask
	max := chunk.Get(vmath.Vec3i{X: x + w - 1, Y: y + h - 1, Z: z + d - 1}).VisibilityMask
	return min.Set(max)
}

func emitBox(b *meshbuilder.Builder, origin, beg, end vmath.Vec3i, key mergeKey, mask voxel.Visibility) error {
	type boxFace struct {
		bit            voxel.Visibility
		normal         vmath.Vec3f
		tl, tr, bl, br vmath.Vec3i
	}
	faces := []boxFace{
		{voxel.Up, vmath.Vec3f{Y: 1},
			vmath.Vec3i{X: beg.X, Y: end.Y, Z: beg.Z}, vmath.Vec3i{X: end.X, Y: end.Y, Z: beg.Z},
			vmath.Vec3i{X: beg.X, Y: end.Y, Z: end.Z}, vmath.Vec3i{X: end.X, Y: end.Y, Z: end.Z}},
		{voxel.Down, vmath.Vec3f{Y: -1},
			vmath.Vec3i{X: beg.X, Y: beg.Y, Z: end.Z}, vmath.Vec3i{X: end.X, Y: beg.Y, Z: end.Z},
			vmath.Vec3i{X: beg.X, Y: beg.Y, Z: beg.Z}, vmath.Vec3i{X: end.X, Y: beg.Y, Z: beg.Z}},
		{voxel.Right, vmath.Vec3f{X: 1},
			vmath.Vec3i{X: end.X, Y: end.Y, Z: beg.Z}, vmath.Vec3i{X: end.X, Y: end.Y, Z: end.Z},
			vmath.Vec3i{X: end.X, Y: beg.Y, Z: beg.Z}, vmath.Vec3i{X: end.X, Y: beg.Y, Z: end.Z}},
		{voxel.Left, vmath.Vec3f{X: -1},
			vmath.Vec3i{X: beg.X, Y: end.Y, Z: end.Z}, vmath.Vec3i{X: beg.X, Y: end.Y, Z: beg.Z},
			vmath.Vec3i{X: beg.X, Y: beg.Y, Z: end.Z}, vmath.Vec3i{X: beg.X, Y: beg.Y, Z: beg.Z}},
		{voxel.Forward, vmath.Vec3f{Z: 1},
			vmath.Vec3i{X: end.X, Y: end.Y, Z: end.Z}, vmath.Vec3i{X: beg.X, Y: end.Y, Z: end.Z},
			vmath.Vec3i{X: end.X, Y: beg.Y, Z: end.Z}, vmath.Vec3i{X: beg.X, Y: beg.Y, Z: end.Z}},
		{voxel.Backward, vmath.Vec3f{Z: -1},
			vmath.Vec3i{X: beg.X, Y: end.Y, Z: beg.Z}, vmath.Vec3i{X: end.X, Y: end.Y, Z: beg.Z},
			vmath.Vec3i{X: beg.X, Y: beg.Y, Z: beg.Z}, vmath.Vec3i{X: end.X, Y: beg.Y, Z: beg.Z}},
	}

	for _, f := range faces {
		if !mask.Has(f.bit) {
			continue
		}
		if err := b.AddFace(worldF(origin, f.tl), worldF(origin, f.tr), worldF(origin, f.bl), worldF(origin, f.br),
			f.normal, int(key.color), int(key.material)); err != nil {
			return err
		}
	}
	return nil
}
