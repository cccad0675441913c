package voxelspace

import (
	"testing"

	"vcore/voxel"
	"vcore/vmath"
)

func opaque() voxel.Voxel { return voxel.Voxel{Color: 0, Material: 0} }

func TestInsertFindRoundTrip(t *testing.T) {
	s := New()
	pos := vmath.Vec3i{X: 40, Y: -5, Z: 100}
	s.Insert(pos, opaque())

	got, ok := s.Find(pos)
	if !ok || got.Color != 0 {
		t.Fatalf("Find() = %+v, %v, want an instantiated voxel", got, ok)
	}

	miss := vmath.Vec3i{X: 41, Y: -5, Z: 100}
	if _, ok := s.Find(miss); ok {
		t.Fatalf("expected no voxel at an untouched position")
	}
}

func TestChunkIsolationAcrossNegativeCoords(t *testing.T) {
	a := vmath.Vec3i{X: -1, Y: -1, Z: -1}
	b := vmath.Vec3i{X: voxel.ChunkEdge, Y: 0, Z: 0}

	if ChunkCoordFor(a) == ChunkCoordFor(b) {
		t.Fatalf("expected distinct chunks for %+v and %+v", a, b)
	}
	if ChunkCoordFor(a) != (ChunkCoord{X: -1, Y: -1, Z: -1}) {
		t.Fatalf("ChunkCoordFor(%+v) = %+v, want {-1,-1,-1}", a, ChunkCoordFor(a))
	}
	local := LocalCoordFor(a)
	want := vmath.Vec3i{X: voxel.ChunkEdge - 1, Y: voxel.ChunkEdge - 1, Z: voxel.ChunkEdge - 1}
	if local != want {
		t.Fatalf("LocalCoordFor(%+v) = %+v, want %+v", a, local, want)
	}
}

func TestInsertMarksBorderChunkDirty(t *testing.T) {
	s := New()
	// First, create a neighbor chunk and mark it processed.
	nbPos := vmath.Vec3i{X: -1, Y: 0, Z: 0}
	s.Insert(nbPos, opaque())
	s.MarkAsProcessed(ChunkCoordFor(nbPos))

	// Now insert at the border of the neighbor's chunk: X=0 sits on the
	// low face of chunk (0,0,0), which borders the neighbor chunk (-1,0,0).
	s.Insert(vmath.Vec3i{X: 0, Y: 0, Z: 0}, opaque())

	if !s.GetChunk(ChunkCoordFor(nbPos), false).IsDirty() {
		t.Fatalf("expected neighbor chunk to be re-marked dirty by a border edit")
	}
}

func TestGenerateVisibilityMaskExposesFacesOfSingleVoxel(t *testing.T) {
	s := New()
	pos := vmath.Vec3i{X: 5, Y: 5, Z: 5}
	s.Insert(pos, opaque())
	s.GenerateVisibilityMask(ChunkCoordFor(pos))

	v, ok := s.Find(pos)
	if !ok {
		t.Fatalf("expected voxel present")
	}
	if v.VisibilityMask != voxel.VisibleMask {
		t.Fatalf("isolated voxel should expose all six faces, got %b", v.VisibilityMask)
	}
}

func TestGenerateVisibilityMaskHidesSharedFace(t *testing.T) {
	s := New()
	a := vmath.Vec3i{X: 5, Y: 5, Z: 5}
	b := vmath.Vec3i{X: 6, Y: 5, Z: 5}
	s.Insert(a, opaque())
	s.Insert(b, opaque())

	s.GenerateVisibilityMask(ChunkCoordFor(a))

	va, _ := s.Find(a)
	if va.VisibilityMask.Has(voxel.Right) {
		t.Fatalf("expected Right face of a hidden by neighbor b, mask=%b", va.VisibilityMask)
	}
	if !va.VisibilityMask.Has(voxel.Left) {
		t.Fatalf("expected Left face of a still exposed, mask=%b", va.VisibilityMask)
	}
}

func TestGenerateVisibilityMaskIsIdempotent(t *testing.T) {
	s := New()
	pos := vmath.Vec3i{X: 1, Y: 1, Z: 1}
	s.Insert(pos, opaque())

	coord := ChunkCoordFor(pos)
	s.GenerateVisibilityMask(coord)
	first, _ := s.Find(pos)

	s.GenerateVisibilityMask(coord)
	second, _ := s.Find(pos)

	if first.VisibilityMask != second.VisibilityMask {
		t.Fatalf("expected regenerating the mask twice to be idempotent: %b vs %b", first.VisibilityMask, second.VisibilityMask)
	}
}

func TestOpaqueAndTransparentNeighborsExposeBothTouchingFaces(t *testing.T) {
	s := New()
	solid := vmath.Vec3i{X: 2, Y: 2, Z: 2}
	glass := vmath.Vec3i{X: 3, Y: 2, Z: 2}

	s.Insert(solid, opaque())
	s.Insert(glass, voxel.Voxel{Color: 1, Material: 1, Transparent: true})

	s.GenerateVisibilityMask(ChunkCoordFor(solid))

	gotSolid, _ := s.Find(solid)
	if !gotSolid.VisibilityMask.Has(voxel.Right) {
		t.Fatalf("expected opaque voxel's face toward a transparent neighbor to be exposed")
	}

	gotGlass, _ := s.Find(glass)
	if !gotGlass.VisibilityMask.Has(voxel.Left) {
		t.Fatalf("expected transparent voxel's face toward an opaque neighbor to be exposed too, mask=%b", gotGlass.VisibilityMask)
	}
}

func TestTransparentNeighborsOfSameKeyHideTouchingFaces(t *testing.T) {
	s := New()
	a := vmath.Vec3i{X: 2, Y: 2, Z: 2}
	b := vmath.Vec3i{X: 3, Y: 2, Z: 2}

	glass := voxel.Voxel{Color: 1, Material: 1, Transparent: true}
	s.Insert(a, glass)
	s.Insert(b, glass)

	s.GenerateVisibilityMask(ChunkCoordFor(a))

	gotA, _ := s.Find(a)
	if gotA.VisibilityMask.Has(voxel.Right) {
		t.Fatalf("two same-key transparent neighbors should hide their touching faces, mask=%b", gotA.VisibilityMask)
	}
	gotB, _ := s.Find(b)
	if gotB.VisibilityMask.Has(voxel.Left) {
		t.Fatalf("two same-key transparent neighbors should hide their touching faces, mask=%b", gotB.VisibilityMask)
	}
}

func TestTransparentNeighborsOfDifferentKeyExposeTouchingFaces(t *testing.T) {
	s := New()
	red := vmath.Vec3i{X: 2, Y: 2, Z: 2}
	blue := vmath.Vec3i{X: 3, Y: 2, Z: 2}

	s.Insert(red, voxel.Voxel{Color: 1, Material: 1, Transparent: true})
	s.Insert(blue, voxel.Voxel{Color: 2, Material: 1, Transparent: true})

	s.GenerateVisibilityMask(ChunkCoordFor(red))

	gotRed, _ := s.Find(red)
	if !gotRed.VisibilityMask.Has(voxel.Right) {
		t.Fatalf("differently-keyed transparent neighbors should expose touching faces, mask=%b", gotRed.VisibilityMask)
	}
	gotBlue, _ := s.Find(blue)
	if !gotBlue.VisibilityMask.Has(voxel.Left) {
		t.Fatalf("differently-keyed transparent neighbors should expose touching faces, mask=%b", gotBlue.VisibilityMask)
	}
}

func TestUpdateVisibilityClearsDirtySet(t *testing.T) {
	s := New()
	s.Insert(vmath.Vec3i{X: 0, Y: 0, Z: 0}, opaque())

	if len(s.QueryDirtyChunks()) == 0 {
		t.Fatalf("expected at least one dirty chunk after Insert")
	}

	s.UpdateVisibility()

	if len(s.QueryDirtyChunks()) != 0 {
		t.Fatalf("expected UpdateVisibility to drain the dirty set")
	}
}

func TestQueryVisibleOmitsFullyObscuredVoxel(t *testing.T) {
	s := New()
	center := vmath.Vec3i{X: 10, Y: 10, Z: 10}
	s.Insert(center, opaque())
	for _, fo := range faceOffsets {
		s.Insert(center.Add(fo.delta), opaque())
	}
	s.UpdateVisibility()

	for _, vv := range s.QueryVisible() {
		if vv.World == center {
			t.Fatalf("fully surrounded voxel should not be reported visible")
		}
	}
}
