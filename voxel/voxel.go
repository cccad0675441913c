// Package voxel implements the per-cell voxel record and the fixed-extent
// chunk that owns a dense array of them, grounded on VCore/Voxel/Voxel.hpp
// and VCore/VConfig.hpp for the data layout, and on the teacher's
// internal/world/chunk.go for the Go structuring idiom (dense array with
// lazy allocation, local/world coordinate helpers).
package voxel

// Visibility is a bitfield of which faces of a voxel are exposed,
// matching CVoxel::Visibility exactly.
type Visibility uint8

const (
	Invisible Visibility = 0
	Up        Visibility = 1 << 0
	Down      Visibility = 1 << 1
	Left      Visibility = 1 << 2
	Right     Visibility = 1 << 3
	Forward   Visibility = 1 << 4
	Backward  Visibility = 1 << 5

	VisibleMask = Up | Down | Left | Right | Forward | Backward
)

// Has reports whether every bit set in mask is also set in v.
func (v Visibility) Has(mask Visibility) bool { return v&mask == mask }

// Set returns v with mask's bits turned on.
func (v Visibility) Set(mask Visibility) Visibility { return v | mask }

// Clear returns v with mask's bits turned off.
func (v Visibility) Clear(mask Visibility) Visibility { return v &^ mask }

// Voxel is a single cell: a color index, a material index, the
// per-face visibility mask derived by the voxel space, and a transparency
// flag. The zero value (Color 0, Material 0) is an instantiated voxel;
// Empty returns the uninstantiated one (Color == -1, Material == -1),
// matching CVoxel's default constructor.
type Voxel struct {
	Color          int32
	Material       int16
	VisibilityMask Visibility
	Transparent    bool
}

// Empty returns an uninstantiated voxel.
func Empty() Voxel {
	return Voxel{Color: -1, Material: -1}
}

// IsInstantiated reports whether both the color and material indices are
// set, matching CVoxel::IsInstantiated.
func (v Voxel) IsInstantiated() bool {
	return v.Color != -1 && v.Material != -1
}

// IsVisible reports whether the voxel is instantiated and at least one
// face is exposed, matching CVoxel::IsVisible.
func (v Voxel) IsVisible() bool {
	return v.IsInstantiated() && v.VisibilityMask != Invisible
}
