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

// GreedyMesher merges runs of same-key exposed faces within a chunk's
// slab into single quads, reading the already-derived per-voxel
// visibility mask rather than re-deriving presence itself — the
// "bitmask-accelerated" part of the algorithm lives in
// voxelspace.GenerateVisibilityMask; this mesher only merges what that
// pass already marked exposed. Grounded on the teacher's
// internal/meshing/greedy.go per-axis mask-and-merge shape and
// spec.md §4.3.2.
type GreedyMesher struct {
	base
}

// NewGreedy returns a chunk-local greedy planar mesher.
func NewGreedy(logger vlog.Logger) *GreedyMesher {
	g := &GreedyMesher{}
	g.base = newBase(g, logger)
	return g
}

// mergeKey is the tuple two adjacent exposed faces must share to be
// merged into a single quad, per spec.md §4.3.2 step 3.
type mergeKey struct {
	color       int32
	material    int16
	transparent bool
}

// axisDir describes one of the six face-scan passes: a fixed axis, a
// direction along it, the visibility bit it corresponds to, and the
// outward normal.
type axisDir struct {
	axis   int
	dir    int
	bit    voxel.Visibility
	normal vmath.Vec3f
}

var greedyPasses = []axisDir{
	{axis: 0, dir: +1, bit: voxel.Right, normal: vmath.Vec3f{X: 1}},
	{axis: 0, dir: -1, bit: voxel.Left, normal: vmath.Vec3f{X: -1}},
	{axis: 1, dir: +1, bit: voxel.Up, normal: vmath.Vec3f{Y: 1}},
	{axis: 1, dir: -1, bit: voxel.Down, normal: vmath.Vec3f{Y: -1}},
	{axis: 2, dir: +1, bit: voxel.Forward, normal: vmath.Vec3f{Z: 1}},
	{axis: 2, dir: -1, bit: voxel.Backward, normal: vmath.Vec3f{Z: -1}},
}

// localAt builds the chunk-local coordinate for a point on the slab
// perpendicular to pass.axis at the given depth, with u/v the two
// remaining axes taken in ascending axis order.
func localAt(axis, depth, u, v int) vmath.Vec3i {
	switch axis {
	case 0:
		return vmath.Vec3i{X: depth, Y: u, Z: v}
	case 1:
		return vmath.Vec3i{X: u, Y: depth, Z: v}
	default:
		return vmath.Vec3i{X: u, Y: v, Z: depth}
	}
}

func (g *GreedyMesher) meshChunk(model *voxelmodel.Model, coord voxelspace.ChunkCoord) (*mesh.Mesh, error) {
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
	mask := make([]mergeKey, edge*edge)
	present := make([]bool, edge*edge)

	for _, pass := range greedyPasses {
		for depth := 0; depth < edge; depth++ {
			for i := range present {
				present[i] = false
			}
			for u := 0; u < edge; u++ {
				for v := 0; v < edge; v++ {
					local := localAt(pass.axis, depth, u, v)
					vx := chunk.Get(local)
					if !vx.IsVisible() || !vx.VisibilityMask.Has(pass.bit) {
						continue
					}
					idx := v*edge + u
					mask[idx] = mergeKey{color: vx.Color, material: vx.Material, transparent: vx.Transparent}
					present[idx] = true
				}
			}

			i := 0
			for i < edge*edge {
				if !present[i] {
					i++
					continue
				}
				u0, v0 := i%edge, i/edge
				key := mask[i]

				w := 1
				for u0+w < edge && present[v0*edge+u0+w] && mask[v0*edge+u0+w] == key {
					w++
				}

				h := 1
			rows:
				for v0+h < edge {
					for uu := u0; uu < u0+w; uu++ {
						idx := (v0+h)*edge + uu
						if !present[idx] || mask[idx] != key {
							break rows
						}
					}
					h++
				}

				faceDepth := depth
				if pass.dir > 0 {
					faceDepth++
				}
				tl := localAt(pass.axis, faceDepth, u0, v0+h)
				tr := localAt(pass.axis, faceDepth, u0+w, v0+h)
				bl := localAt(pass.axis, faceDepth, u0, v0)
				br := localAt(pass.axis, faceDepth, u0+w, v0)

				if err := b.AddFace(
					worldF(origin, tl), worldF(origin, tr), worldF(origin, bl), worldF(origin, br),
					pass.normal, int(key.color), int(key.material),
				); err != nil {
					return nil, err
				}

				for vv := v0; vv < v0+h; vv++ {
					for uu := u0; uu < u0+w; uu++ {
						present[vv*edge+uu] = false
					}
				}
				i++
			}
		}
	}

	return b.Build()
}

func worldF(origin, local vmath.Vec3i) vmath.Vec3f {
	w := origin.Add(local)
	return vmath.Vec3f{X: float32(w.X), Y: float32(w.Y), Z: float32(w.Z)}
}
