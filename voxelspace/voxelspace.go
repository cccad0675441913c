// Package voxelspace is the sparse, chunked voxel store. It owns no
// rendering or material data (that belongs to voxelmodel); it only knows
// how to place/remove voxels at world coordinates, keep each chunk's
// dirty flag honest, and derive per-voxel face visibility across chunk
// boundaries. Grounded on the teacher's internal/world/chunk_store.go
// (sparse map + RWMutex + column index + lazy chunk creation) and on
// original_source's gdnative VoxelSpace.hpp for the visibility-derivation
// contract.
package voxelspace

import (
	"sync"

	"github.com/google/uuid"

	"vcore/internal/profiling"
	"vcore/voxel"
	"vcore/vmath"
)

// ChunkCoord identifies a chunk by its position in chunk-grid units
// (world coordinates divided by voxel.ChunkEdge).
type ChunkCoord struct {
	X, Y, Z int
}

// Space is a sparse, lazily-populated grid of fixed-size chunks.
type Space struct {
	mu       sync.RWMutex
	chunks   map[ChunkCoord]*voxel.Chunk
	colIndex map[[2]int][]ChunkCoord
}

// New returns an empty voxel space.
func New() *Space {
	return &Space{
		chunks:   make(map[ChunkCoord]*voxel.Chunk),
		colIndex: make(map[[2]int][]ChunkCoord),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

// ChunkCoordFor returns the chunk grid coordinate containing world.
func ChunkCoordFor(world vmath.Vec3i) ChunkCoord {
	return ChunkCoord{
		X: floorDiv(world.X, voxel.ChunkEdge),
		Y: floorDiv(world.Y, voxel.ChunkEdge),
		Z: floorDiv(world.Z, voxel.ChunkEdge),
	}
}

// LocalCoordFor returns world's position local to its owning chunk.
func LocalCoordFor(world vmath.Vec3i) vmath.Vec3i {
	return vmath.Vec3i{
		X: floorMod(world.X, voxel.ChunkEdge),
		Y: floorMod(world.Y, voxel.ChunkEdge),
		Z: floorMod(world.Z, voxel.ChunkEdge),
	}
}

// GetChunk returns the chunk at coord, creating it (empty) when create is
// true and it doesn't already exist.
func (s *Space) GetChunk(coord ChunkCoord, create bool) *voxel.Chunk {
	s.mu.RLock()
	c, ok := s.chunks[coord]
	s.mu.RUnlock()
	if ok || !create {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.chunks[coord]; ok {
		return existing
	}
	c = voxel.NewChunk(uuid.New())
	s.chunks[coord] = c
	key := [2]int{coord.X, coord.Z}
	s.colIndex[key] = append(s.colIndex[key], coord)
	return c
}

// Insert places v at world, creating its chunk on demand, and marks any
// neighbor chunk dirty if world sits on a chunk face (since that
// neighbor's visibility may now need to change).
func (s *Space) Insert(world vmath.Vec3i, v voxel.Voxel) {
	coord := ChunkCoordFor(world)
	local := LocalCoordFor(world)
	s.GetChunk(coord, true).Set(local, v)
	s.dirtyBorderNeighbors(coord, local)
}

// Erase removes whatever voxel occupies world, if any.
func (s *Space) Erase(world vmath.Vec3i) {
	coord := ChunkCoordFor(world)
	c := s.GetChunk(coord, false)
	if c == nil {
		return
	}
	local := LocalCoordFor(world)
	c.Remove(local)
	s.dirtyBorderNeighbors(coord, local)
}

func (s *Space) dirtyBorderNeighbors(coord ChunkCoord, local vmath.Vec3i) {
	const last = voxel.ChunkEdge - 1
	mark := func(dx, dy, dz int) {
		if nb := s.GetChunk(ChunkCoord{coord.X + dx, coord.Y + dy, coord.Z + dz}, false); nb != nil {
			nb.ForceDirty()
		}
	}

	if local.X == 0 {
		mark(-1, 0, 0)
	} else if local.X == last {
		mark(1, 0, 0)
	}
	if local.Y == 0 {
		mark(0, -1, 0)
	} else if local.Y == last {
		mark(0, 1, 0)
	}
	if local.Z == 0 {
		mark(0, 0, -1)
	} else if local.Z == last {
		mark(0, 0, 1)
	}
}

// Find returns the voxel stored at world, if its chunk exists and the
// voxel is instantiated there.
func (s *Space) Find(world vmath.Vec3i) (voxel.Voxel, bool) {
	c := s.GetChunk(ChunkCoordFor(world), false)
	if c == nil {
		return voxel.Empty(), false
	}
	local := LocalCoordFor(world)
	v := c.Get(local)
	return v, v.IsInstantiated()
}

// QueryColumn returns every allocated chunk coordinate sharing the given
// (chunkX, chunkZ) column, letting callers (e.g. a mesher prioritizing
// chunks near a camera) avoid scanning the whole space.
func (s *Space) QueryColumn(chunkX, chunkZ int) []ChunkCoord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	col := s.colIndex[[2]int{chunkX, chunkZ}]
	out := make([]ChunkCoord, len(col))
	copy(out, col)
	return out
}

// QueryChunks returns every chunk coordinate currently allocated.
func (s *Space) QueryChunks() []ChunkCoord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ChunkCoord, 0, len(s.chunks))
	for coord := range s.chunks {
		out = append(out, coord)
	}
	return out
}

// QueryDirtyChunks returns the coordinates of every chunk whose content
// has changed since its last MarkProcessed.
func (s *Space) QueryDirtyChunks() []ChunkCoord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []ChunkCoord
	for coord, c := range s.chunks {
		if c.IsDirty() {
			out = append(out, coord)
		}
	}
	return out
}

// MarkAsProcessed clears the dirty flag of the chunk at coord, if it exists.
func (s *Space) MarkAsProcessed(coord ChunkCoord) {
	if c := s.GetChunk(coord, false); c != nil {
		c.MarkProcessed()
	}
}

var faceOffsets = [6]struct {
	delta vmath.Vec3i
	face  voxel.Visibility
}{
	{vmath.Vec3i{X: 0, Y: 1, Z: 0}, voxel.Up},
	{vmath.Vec3i{X: 0, Y: -1, Z: 0}, voxel.Down},
	{vmath.Vec3i{X: -1, Y: 0, Z: 0}, voxel.Left},
	{vmath.Vec3i{X: 1, Y: 0, Z: 0}, voxel.Right},
	{vmath.Vec3i{X: 0, Y: 0, Z: 1}, voxel.Forward},
	{vmath.Vec3i{X: 0, Y: 0, Z: -1}, voxel.Backward},
}

// faceVisible reports whether the face of v facing neighbor should be
// exposed, per the five-row C-transparent/N-transparent table: opaque
// meeting opaque hides both faces; opaque meeting transparent (in either
// direction) exposes the face; two transparent voxels expose the face
// only when their (color, material) differ.
func faceVisible(v voxel.Voxel, neighbor voxel.Voxel, neighborPresent bool) bool {
	if !neighborPresent {
		return true
	}
	if !v.Transparent && !neighbor.Transparent {
		return false
	}
	if v.Transparent != neighbor.Transparent {
		return true
	}
	return v.Color != neighbor.Color || v.Material != neighbor.Material
}

// GenerateVisibilityMask recomputes the per-voxel face visibility of
// every instantiated voxel in the chunk at coord, consulting neighbor
// chunks across the chunk boundary through Find. It does not clear the
// chunk's dirty flag; call MarkAsProcessed once the mesher has consumed
// the result.
func (s *Space) GenerateVisibilityMask(coord ChunkCoord) {
	defer profiling.Track("voxelspace.GenerateVisibilityMask")()

	c := s.GetChunk(coord, false)
	if c == nil {
		return
	}

	origin := vmath.Vec3i{X: coord.X * voxel.ChunkEdge, Y: coord.Y * voxel.ChunkEdge, Z: coord.Z * voxel.ChunkEdge}

	for x := 0; x < voxel.ChunkEdge; x++ {
		for y := 0; y < voxel.ChunkEdge; y++ {
			for z := 0; z < voxel.ChunkEdge; z++ {
				local := vmath.Vec3i{X: x, Y: y, Z: z}
				v := c.Get(local)
				if !v.IsInstantiated() {
					continue
				}

				world := origin.Add(local)
				mask := voxel.Invisible
				for _, fo := range faceOffsets {
					neighborWorld := world.Add(fo.delta)
					neighbor, present := s.Find(neighborWorld)
					if faceVisible(v, neighbor, present) {
						mask = mask.Set(fo.face)
					}
				}
				v.VisibilityMask = mask
				c.Set(local, v)
			}
		}
	}
}

// UpdateVisibility regenerates the visibility mask of every dirty chunk
// and marks each one processed.
func (s *Space) UpdateVisibility() {
	for _, coord := range s.QueryDirtyChunks() {
		s.GenerateVisibilityMask(coord)
		s.MarkAsProcessed(coord)
	}
}

// VisibleVoxel pairs a world-space position with the voxel found there,
// returned by QueryVisible.
type VisibleVoxel struct {
	World vmath.Vec3i
	Voxel voxel.Voxel
}

// QueryVisible returns every voxel across the whole space with at least
// one exposed face.
func (s *Space) QueryVisible() []VisibleVoxel {
	var out []VisibleVoxel
	for _, coord := range s.QueryChunks() {
		c := s.GetChunk(coord, false)
		origin := vmath.Vec3i{X: coord.X * voxel.ChunkEdge, Y: coord.Y * voxel.ChunkEdge, Z: coord.Z * voxel.ChunkEdge}
		for x := 0; x < voxel.ChunkEdge; x++ {
			for y := 0; y < voxel.ChunkEdge; y++ {
				for z := 0; z < voxel.ChunkEdge; z++ {
					local := vmath.Vec3i{X: x, Y: y, Z: z}
					v := c.Get(local)
					if v.IsVisible() {
						out = append(out, VisibleVoxel{World: origin.Add(local), Voxel: v})
					}
				}
			}
		}
	}
	return out
}
