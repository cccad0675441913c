package voxel

import (
	"github.com/google/uuid"

	"vcore/bbox"
	"vcore/vmath"
)

// ChunkEdge is the number of voxels along one edge of a chunk. It is
// derived from the 64-bit presence bitmask word used to accelerate
// face-visibility lookups: a chunk edge of 32 leaves the upper half of
// the word free so a column's presence bits and its "any voxel at all"
// summary bit can be packed side by side without overflow, matching the
// CHUNK_SIZE constant in VCore/VConfig.hpp.
const ChunkEdge = 32

const chunkVolume = ChunkEdge * ChunkEdge * ChunkEdge

// Chunk owns a dense ChunkEdge^3 array of voxels plus the bookkeeping the
// voxel space needs to avoid rescanning unchanged regions: a dirty flag,
// an inner bounding box of the instantiated region, and three sets of
// per-column presence bitmasks (one set per axis) that let a neighbor
// query test "is there an instantiated voxel at this column/depth"
// without walking the dense array. Grounded on the teacher's
// internal/world/chunk.go dense-array-with-lazy-bookkeeping shape, sized
// and bit-packed per VCore/VConfig.hpp and VCore/Voxel/Voxel.hpp.
type Chunk struct {
	ID uuid.UUID

	voxels [chunkVolume]Voxel

	// presence[axis][a*ChunkEdge+b] has bit c set when the voxel at the
	// lattice point obtained by inserting c into axis at position c (and
	// a, b into the other two axes in ascending order) is instantiated.
	presence [3][ChunkEdge * ChunkEdge]uint64

	innerBBox bbox.BBox
	hasInner  bool

	dirty bool
}

// NewChunk allocates a chunk with every cell uninstantiated.
func NewChunk(id uuid.UUID) *Chunk {
	c := &Chunk{ID: id, dirty: true}
	for i := range c.voxels {
		c.voxels[i] = Empty()
	}
	return c
}

// InBounds reports whether local lies within [0, ChunkEdge) on every axis.
func InBounds(local vmath.Vec3i) bool {
	return local.X >= 0 && local.X < ChunkEdge &&
		local.Y >= 0 && local.Y < ChunkEdge &&
		local.Z >= 0 && local.Z < ChunkEdge
}

func index(local vmath.Vec3i) int {
	return (local.Y*ChunkEdge+local.Z)*ChunkEdge + local.X
}

// Get returns the voxel at local. Callers must ensure InBounds(local).
func (c *Chunk) Get(local vmath.Vec3i) Voxel {
	return c.voxels[index(local)]
}

// Set stores v at local, updates the presence bitmasks for all three
// axes, marks the chunk dirty, and widens the inner bounding box.
func (c *Chunk) Set(local vmath.Vec3i, v Voxel) {
	c.voxels[index(local)] = v
	c.setPresence(local, v.IsInstantiated())
	c.dirty = true

	if v.IsInstantiated() {
		c.growInnerBBox(local)
	}
}

// Remove clears the voxel at local back to Empty.
func (c *Chunk) Remove(local vmath.Vec3i) {
	c.voxels[index(local)] = Empty()
	c.setPresence(local, false)
	c.dirty = true
}

// IsInstantiated reports whether a voxel exists at local.
func (c *Chunk) IsInstantiated(local vmath.Vec3i) bool {
	return c.voxels[index(local)].IsInstantiated()
}

// InnerBBox returns the local-space bounding box spanning every
// instantiated voxel observed so far. The zero value, returned when
// nothing has ever been set, is an empty box at the origin.
func (c *Chunk) InnerBBox() bbox.BBox {
	return c.innerBBox
}

// IsDirty reports whether the chunk has changed since the last call to
// MarkProcessed.
func (c *Chunk) IsDirty() bool { return c.dirty }

// MarkProcessed clears the dirty flag once a mesher or visibility pass
// has consumed this chunk's current state.
func (c *Chunk) MarkProcessed() { c.dirty = false }

// ForceDirty marks the chunk dirty without touching any voxel, used by
// the owning voxel space when a neighbor edit may have changed this
// chunk's boundary visibility.
func (c *Chunk) ForceDirty() { c.dirty = true }

// HasNeighborPresence reports whether any voxel is instantiated at the
// given (a, b) column along axis, looking only at the presence bitmask
// (no dense-array scan). axis is 0=X, 1=Y, 2=Z.
func (c *Chunk) HasNeighborPresence(axis, a, b int) bool {
	return c.presence[axis][a*ChunkEdge+b] != 0
}

// PresenceBit reports whether depth is set in the (a, b) column's
// presence row for axis.
func (c *Chunk) PresenceBit(axis, a, b, depth int) bool {
	return c.presence[axis][a*ChunkEdge+b]&(uint64(1)<<uint(depth)) != 0
}

func (c *Chunk) setPresence(local vmath.Vec3i, on bool) {
	type rowBit struct{ a, b, depth int }
	rows := [3]rowBit{
		{local.Y, local.Z, local.X}, // axis 0 = X
		{local.X, local.Z, local.Y}, // axis 1 = Y
		{local.X, local.Y, local.Z}, // axis 2 = Z
	}
	for axis, r := range rows {
		idx := r.a*ChunkEdge + r.b
		bit := uint64(1) << uint(r.depth)
		if on {
			c.presence[axis][idx] |= bit
		} else {
			c.presence[axis][idx] &^= bit
		}
	}
}

func (c *Chunk) growInnerBBox(local vmath.Vec3i) {
	point := vmath.Vec3i{X: local.X, Y: local.Y, Z: local.Z}
	if !c.hasInner {
		c.innerBBox = bbox.New(point, vmath.Vec3i{X: point.X + 1, Y: point.Y + 1, Z: point.Z + 1})
		c.hasInner = true
		return
	}
	beg := c.innerBBox.Beg
	end := c.innerBBox.End
	if point.X < beg.X {
		beg.X = point.X
	}
	if point.Y < beg.Y {
		beg.Y = point.Y
	}
	if point.Z < beg.Z {
		beg.Z = point.Z
	}
	if point.X+1 > end.X {
		end.X = point.X + 1
	}
	if point.Y+1 > end.Y {
		end.Y = point.Y + 1
	}
	if point.Z+1 > end.Z {
		end.Z = point.Z + 1
	}
	c.innerBBox = bbox.New(beg, end)
}
