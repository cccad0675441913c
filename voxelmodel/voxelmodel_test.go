package voxelmodel

import (
	"math"
	"testing"

	"vcore/vmath"
)

func TestSetGetRemoveVoxel(t *testing.T) {
	m := New("test")
	pos := vmath.Vec3i{X: 1, Y: 2, Z: 3}
	m.SetVoxel(pos, 0, 5, false)

	got, ok := m.GetVoxel(pos)
	if !ok || got.Color != 5 {
		t.Fatalf("GetVoxel() = %+v, %v, want Color=5", got, ok)
	}

	m.RemoveVoxel(pos)
	if _, ok := m.GetVoxel(pos); ok {
		t.Fatalf("expected voxel removed")
	}
}

func TestClearKeepsMaterialsAndTextures(t *testing.T) {
	m := New("test")
	m.Materials = append(m.Materials, NewMaterial("wood"))
	m.SetVoxel(vmath.Vec3i{X: 0, Y: 0, Z: 0}, 0, 0, false)

	m.Clear()

	if _, ok := m.GetVoxel(vmath.Vec3i{X: 0, Y: 0, Z: 0}); ok {
		t.Fatalf("expected voxels cleared")
	}
	if len(m.Materials) != 1 {
		t.Fatalf("expected materials to survive Clear(), got %d", len(m.Materials))
	}
}

func TestBBoxSpansInstantiatedVoxels(t *testing.T) {
	m := New("test")
	m.SetVoxel(vmath.Vec3i{X: -2, Y: 0, Z: 0}, 0, 0, false)
	m.SetVoxel(vmath.Vec3i{X: 10, Y: 3, Z: 1}, 0, 0, false)

	box := m.BBox()
	if box.Beg.X != -2 || box.End.X != 11 {
		t.Fatalf("BBox() X span = [%d,%d), want [-2,11)", box.Beg.X, box.End.X)
	}
}

func TestBlockCountMatchesInsertedVoxels(t *testing.T) {
	m := New("test")
	m.SetVoxel(vmath.Vec3i{X: 0, Y: 0, Z: 0}, 0, 0, false)
	m.SetVoxel(vmath.Vec3i{X: 1, Y: 0, Z: 0}, 0, 0, false)
	m.SetVoxel(vmath.Vec3i{X: 40, Y: 40, Z: 40}, 0, 0, false) // different chunk

	if got := m.BlockCount(); got != 3 {
		t.Fatalf("BlockCount() = %d, want 3", got)
	}
}

func TestTextureMapRoundTrip(t *testing.T) {
	tm := NewTextureMap()
	var info VoxelInfo
	up := vmath.Vec3f{X: 0, Y: 1, Z: 0}
	uv := UVMapping{TopLeft: vmath.Vec2f{X: 0, Y: 0}, TopRight: vmath.Vec2f{X: 1, Y: 0}}
	info.AddFace(up, uv)
	tm.AddVoxelInfo(7, info)

	got, ok := tm.GetVoxelFaceInfo(7, up)
	if !ok || got != uv {
		t.Fatalf("GetVoxelFaceInfo() = %+v, %v, want %+v, true", got, ok, uv)
	}

	if _, ok := tm.GetVoxelFaceInfo(7, vmath.Vec3f{X: 0, Y: -1, Z: 0}); ok {
		t.Fatalf("expected no mapping for an unregistered face")
	}
}

func TestAnimationAddRemoveFrame(t *testing.T) {
	a := NewAnimation()
	a.AddFrame(New("f0"), DefaultFrameTimeMS)
	a.AddFrame(New("f1"), 100)

	if a.FrameCount() != 2 {
		t.Fatalf("FrameCount() = %d, want 2", a.FrameCount())
	}
	a.RemoveFrame(0)
	if a.FrameCount() != 1 || a.Frame(0).Model.Name != "f1" {
		t.Fatalf("expected frame 0 removed, remaining=%+v", a.Frame(0))
	}
}

func TestSceneNodeModelMatrixTranslatesOrigin(t *testing.T) {
	n := NewSceneNode("root")
	n.Position = vmath.Vec3f{X: 3, Y: 4, Z: 5}

	mm := n.GetModelMatrix()
	got := mm.MulVec3(vmath.Vec3f{X: 0, Y: 0, Z: 0})
	if math.Abs(float64(got.X-3)) > 1e-5 || math.Abs(float64(got.Y-4)) > 1e-5 || math.Abs(float64(got.Z-5)) > 1e-5 {
		t.Fatalf("GetModelMatrix()*origin = %+v, want (3,4,5)", got)
	}
}

func TestSceneNodeParentChildLinks(t *testing.T) {
	root := NewSceneNode("root")
	child := NewSceneNode("child")
	root.AddChild(child)

	if child.Parent() != root {
		t.Fatalf("expected child's parent to be root")
	}
	if root.ChildrenCount() != 1 {
		t.Fatalf("ChildrenCount() = %d, want 1", root.ChildrenCount())
	}
}
