package bbox

import (
	"testing"

	"vcore/vmath"
)

func TestSizeFloorsToUnit(t *testing.T) {
	b := New(vmath.Vec3i{X: 0, Y: 0, Z: 0}, vmath.Vec3i{X: 0, Y: 0, Z: 0})
	got := b.Size()
	want := vmath.Vec3f{X: 1, Y: 1, Z: 1}
	if got != want {
		t.Fatalf("Size() = %+v, want %+v", got, want)
	}
}

func TestContainsPointHalfOpen(t *testing.T) {
	b := New(vmath.Vec3i{X: 0, Y: 0, Z: 0}, vmath.Vec3i{X: 2, Y: 2, Z: 2})
	if !b.ContainsPoint(vmath.Vec3i{X: 0, Y: 0, Z: 0}) {
		t.Fatalf("expected (0,0,0) inside")
	}
	if b.ContainsPoint(vmath.Vec3i{X: 2, Y: 0, Z: 0}) {
		t.Fatalf("expected End corner excluded")
	}
}

func TestTranslate(t *testing.T) {
	b := New(vmath.Vec3i{X: 0, Y: 0, Z: 0}, vmath.Vec3i{X: 1, Y: 1, Z: 1})
	got := b.Translate(vmath.Vec3i{X: 5, Y: 5, Z: 5})
	want := New(vmath.Vec3i{X: 5, Y: 5, Z: 5}, vmath.Vec3i{X: 6, Y: 6, Z: 6})
	if got != want {
		t.Fatalf("Translate() = %+v, want %+v", got, want)
	}
}
