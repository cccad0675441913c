package bbox

import (
	"testing"

	"vcore/vmath"
)

func TestFrustumContainsBoxInFront(t *testing.T) {
	f := NewFrustum(
		vmath.Vec3f{X: 0, Y: 0, Z: 0},
		vmath.Vec3f{X: 0, Y: 0, Z: 1},
		vmath.Vec3f{X: -1, Y: 0, Z: 0}, // right = front x up
		vmath.Vec3f{X: 0, Y: 1, Z: 0},
		1.0, 1.2, 0.1, 100,
	)

	inFront := New(vmath.Vec3i{X: -1, Y: -1, Z: 5}, vmath.Vec3i{X: 1, Y: 1, Z: 6})
	if !f.IsOnFrustum(inFront) {
		t.Fatalf("expected box directly ahead to be on frustum")
	}

	behind := New(vmath.Vec3i{X: -1, Y: -1, Z: -10}, vmath.Vec3i{X: 1, Y: 1, Z: -9})
	if f.IsOnFrustum(behind) {
		t.Fatalf("expected box behind camera to be culled")
	}
}

func TestRaycastHitsMarkedCell(t *testing.T) {
	occupied := map[vmath.Vec3i]bool{
		{X: 0, Y: 0, Z: 3}: true,
	}
	result := Raycast(
		vmath.Vec3f{X: 0, Y: 0, Z: 0},
		vmath.Vec3f{X: 0, Y: 0, Z: 1},
		0, 10, 0.02,
		func(c vmath.Vec3i) bool { return occupied[c] },
	)
	if !result.Hit {
		t.Fatalf("expected a hit")
	}
	if result.HitPosition.Z != 3 {
		t.Fatalf("HitPosition = %+v, want Z=3", result.HitPosition)
	}
}

func TestRaycastMisses(t *testing.T) {
	result := Raycast(
		vmath.Vec3f{X: 0, Y: 0, Z: 0},
		vmath.Vec3f{X: 0, Y: 0, Z: 1},
		0, 5, 0.02,
		func(vmath.Vec3i) bool { return false },
	)
	if result.Hit {
		t.Fatalf("expected no hit against an empty predicate")
	}
}
