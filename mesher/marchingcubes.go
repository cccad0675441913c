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

// MarchingCubesMesher extracts a surface from a chunk's binary occupancy
// field (instantiated vs not) using the classical 256-case Marching
// Cubes table, rather than emitting axis-aligned voxel faces. Each
// surface vertex's color/material is inherited from whichever of the
// case's occupied corners is most common, ties broken by lowest corner
// index. Grounded on spec.md §4.3.3; the lookup tables are the
// algorithm's standard form (see mctables.go).
type MarchingCubesMesher struct {
	base
}

// NewMarchingCubes returns a cube-indexed marching-cubes mesher.
func NewMarchingCubes(logger vlog.Logger) *MarchingCubesMesher {
	mc := &MarchingCubesMesher{}
	mc.base = newBase(mc, logger)
	return mc
}

func (mc *MarchingCubesMesher) meshChunk(model *voxelmodel.Model, coord voxelspace.ChunkCoord) (*mesh.Mesh, error) {
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
	// Grid vertices range one cell past the instantiated region on the
	// lower corner, since a vertex's cube samples the cell at its own
	// coordinate and the seven cells above/right/forward of it.
	for gx := box.Beg.X - 1; gx < box.End.X; gx++ {
		for gy := box.Beg.Y - 1; gy < box.End.Y; gy++ {
			for gz := box.Beg.Z - 1; gz < box.End.Z; gz++ {
				mc.emitCube(b, chunk, origin, gx, gy, gz)
			}
		}
	}

	return b.Build()
}

func (mc *MarchingCubesMesher) emitCube(b *meshbuilder.Builder, chunk *voxel.Chunk, origin vmath.Vec3i, gx, gy, gz int) {
	var corner [8]voxel.Voxel
	var occupied [8]bool
	caseIndex := 0
	anyOccupied := false
	for i, off := range mcCubeOffsets {
		local := vmath.Vec3i{X: gx + off[0], Y: gy + off[1], Z: gz + off[2]}
		if !voxel.InBounds(local) {
			continue
		}
		v := chunk.Get(local)
		corner[i] = v
		if v.IsInstantiated() {
			occupied[i] = true
			anyOccupied = true
			caseIndex |= 1 << uint(i)
		}
	}
	if !anyOccupied || mcEdgeTable[caseIndex] == 0 {
		return
	}

	color, material := dominantKey(corner, occupied)

	edgePos := func(edge int) vmath.Vec3f {
		a, bIdx := mcEdgeCorners[edge][0], mcEdgeCorners[edge][1]
		oa, ob := mcCubeOffsets[a], mcCubeOffsets[bIdx]
		mx := float32(gx) + float32(oa[0]+ob[0])/2
		my := float32(gy) + float32(oa[1]+ob[1])/2
		mz := float32(gz) + float32(oa[2]+ob[2])/2
		return vmath.Vec3f{X: float32(origin.X) + mx, Y: float32(origin.Y) + my, Z: float32(origin.Z) + mz}
	}

	tris := mcTriTable[caseIndex]
	for i := 0; i+2 < len(tris); i += 3 {
		p1 := edgePos(int(tris[i]))
		p2 := edgePos(int(tris[i+1]))
		p3 := edgePos(int(tris[i+2]))
		normal := vmath.NormalizeF(vmath.CrossF(p2.Sub(p1), p3.Sub(p1)))
		b.AddTriangle(
			meshVertex(p1, normal, color),
			meshVertex(p2, normal, color),
			meshVertex(p3, normal, color),
			material,
		)
	}
}

// meshVertex encodes color as a bare palette-index UV. Surface vertices
// sit at arbitrary edge midpoints rather than on a voxel's quad face, so
// the atlas-row and texture-map UV resolution AddFace offers don't apply
// here; marching cubes output is palette/flat-shaded only.
func meshVertex(pos, normal vmath.Vec3f, color int32) mesh.Vertex {
	c := float32(color)
	return mesh.Vertex{Pos: pos, Normal: normal, UV: vmath.Vec2f{X: c, Y: 0}}
}

// dominantKey picks the color/material pair shared by the most occupied
// corners, ties broken by lowest corner index, matching spec.md §4.3.3's
// "majority, then lowest-index tie-break" rule.
func dominantKey(corner [8]voxel.Voxel, occupied [8]bool) (int32, int) {
	type key struct {
		color    int32
		material int16
	}
	counts := make(map[key]int)
	firstSeen := make(map[key]int)
	for i, present := range occupied {
		if !present {
			continue
		}
		k := key{color: corner[i].Color, material: corner[i].Material}
		counts[k]++
		if _, ok := firstSeen[k]; !ok {
			firstSeen[k] = i
		}
	}

	var best key
	bestCount, bestFirst := -1, 1<<30
	for k, count := range counts {
		if count > bestCount || (count == bestCount && firstSeen[k] < bestFirst) {
			best, bestCount, bestFirst = k, count, firstSeen[k]
		}
	}
	return best.color, int(best.material)
}
