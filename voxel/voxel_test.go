package voxel

import "testing"

func TestEmptyIsNotInstantiated(t *testing.T) {
	v := Empty()
	if v.IsInstantiated() {
		t.Fatalf("Empty() should not be instantiated")
	}
	if v.IsVisible() {
		t.Fatalf("Empty() should not be visible")
	}
}

func TestVisibilitySetClearHas(t *testing.T) {
	v := Invisible
	v = v.Set(Up)
	v = v.Set(Forward)

	if !v.Has(Up) || !v.Has(Forward) {
		t.Fatalf("expected Up and Forward set, got %b", v)
	}
	if v.Has(Down) {
		t.Fatalf("did not expect Down set, got %b", v)
	}

	v = v.Clear(Up)
	if v.Has(Up) {
		t.Fatalf("expected Up cleared, got %b", v)
	}
	if !v.Has(Forward) {
		t.Fatalf("expected Forward to remain set, got %b", v)
	}
}

func TestIsVisibleRequiresInstantiation(t *testing.T) {
	v := Voxel{Color: -1, Material: -1, VisibilityMask: Up}
	if v.IsVisible() {
		t.Fatalf("uninstantiated voxel must never be visible regardless of mask")
	}

	v2 := Voxel{Color: 1, Material: 0, VisibilityMask: Invisible}
	if v2.IsVisible() {
		t.Fatalf("instantiated voxel with no exposed face must not be visible")
	}

	v3 := Voxel{Color: 1, Material: 0, VisibilityMask: Down}
	if !v3.IsVisible() {
		t.Fatalf("instantiated voxel with an exposed face must be visible")
	}
}
