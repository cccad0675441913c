package vmath

import "testing"

func TestVec3iAdd(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)
	got := a.Add(b)
	want := Vec3i{5, 7, 9}
	if got != want {
		t.Fatalf("Add() = %+v, want %+v", got, want)
	}
}

func TestVec3Max(t *testing.T) {
	got := NewVec3[float32](0, 0, 0).Max(NewVec3[float32](1, 1, 1))
	want := Vec3f{1, 1, 1}
	if got != want {
		t.Fatalf("Max() = %+v, want %+v", got, want)
	}
}

func TestCrossF(t *testing.T) {
	x := Vec3f{1, 0, 0}
	y := Vec3f{0, 1, 0}
	got := CrossF(x, y)
	want := Vec3f{0, 0, 1}
	if got != want {
		t.Fatalf("CrossF(x,y) = %+v, want %+v", got, want)
	}
}

func TestNormalizeF(t *testing.T) {
	v := Vec3f{3, 4, 0}
	n := NormalizeF(v)
	if !EqualApprox(n, Vec3f{0.6, 0.8, 0}, 1e-5) {
		t.Fatalf("NormalizeF(%+v) = %+v", v, n)
	}
}

func TestVec2GreaterOrEqual(t *testing.T) {
	if !NewVec2[uint](4, 4).GreaterOrEqual(NewVec2[uint](4, 4)) {
		t.Fatalf("expected equal vectors to satisfy GreaterOrEqual")
	}
	if NewVec2[uint](1, 4).GreaterOrEqual(NewVec2[uint](4, 4)) {
		t.Fatalf("expected (1,4) to not satisfy >= (4,4)")
	}
}
