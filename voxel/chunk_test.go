package voxel

import (
	"testing"

	"github.com/google/uuid"

	"vcore/vmath"
)

func TestChunkSetGetRoundTrip(t *testing.T) {
	c := NewChunk(uuid.New())
	pos := vmath.Vec3i{X: 3, Y: 4, Z: 5}

	if c.IsInstantiated(pos) {
		t.Fatalf("new chunk should start empty")
	}

	c.Set(pos, Voxel{Color: 2, Material: 1})
	if !c.IsInstantiated(pos) {
		t.Fatalf("expected voxel to be instantiated after Set")
	}
	if got := c.Get(pos); got.Color != 2 || got.Material != 1 {
		t.Fatalf("Get() = %+v, want Color=2 Material=1", got)
	}
}

func TestChunkSetMarksDirtyUntilProcessed(t *testing.T) {
	c := NewChunk(uuid.New())
	if !c.IsDirty() {
		t.Fatalf("a freshly built chunk should be dirty")
	}
	c.MarkProcessed()
	if c.IsDirty() {
		t.Fatalf("expected dirty flag cleared after MarkProcessed")
	}

	c.Set(vmath.Vec3i{X: 1, Y: 1, Z: 1}, Voxel{Color: 0, Material: 0})
	if !c.IsDirty() {
		t.Fatalf("expected Set to mark the chunk dirty again")
	}
}

func TestChunkRemoveClearsPresence(t *testing.T) {
	c := NewChunk(uuid.New())
	pos := vmath.Vec3i{X: 10, Y: 10, Z: 10}
	c.Set(pos, Voxel{Color: 0, Material: 0})

	if !c.HasNeighborPresence(2, pos.X, pos.Y) {
		t.Fatalf("expected Z-axis presence row to report the voxel")
	}

	c.Remove(pos)
	if c.IsInstantiated(pos) {
		t.Fatalf("expected voxel cleared after Remove")
	}
	if c.HasNeighborPresence(2, pos.X, pos.Y) {
		t.Fatalf("expected presence row cleared after Remove")
	}
}

func TestChunkInnerBBoxGrowsToFitVoxels(t *testing.T) {
	c := NewChunk(uuid.New())
	c.Set(vmath.Vec3i{X: 2, Y: 2, Z: 2}, Voxel{Color: 0, Material: 0})
	c.Set(vmath.Vec3i{X: 5, Y: 1, Z: 9}, Voxel{Color: 0, Material: 0})

	got := c.InnerBBox()
	wantBeg := vmath.Vec3i{X: 2, Y: 1, Z: 2}
	wantEnd := vmath.Vec3i{X: 6, Y: 3, Z: 10}
	if got.Beg != wantBeg || got.End != wantEnd {
		t.Fatalf("InnerBBox() = %+v, want Beg=%+v End=%+v", got, wantBeg, wantEnd)
	}
}

func TestPresenceBitMatchesDepth(t *testing.T) {
	c := NewChunk(uuid.New())
	pos := vmath.Vec3i{X: 7, Y: 0, Z: 0}
	c.Set(pos, Voxel{Color: 0, Material: 0})

	if !c.PresenceBit(0, pos.Y, pos.Z, pos.X) {
		t.Fatalf("expected X-axis presence bit set at depth %d", pos.X)
	}
	if c.PresenceBit(0, pos.Y, pos.Z, pos.X+1) {
		t.Fatalf("did not expect presence bit set at an empty depth")
	}
}
