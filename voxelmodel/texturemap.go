package voxelmodel

import "vcore/vmath"

// UVMapping is the four corner UV coordinates of one quad face, matching
// SUVMapping.
type UVMapping struct {
	TopLeft, TopRight, BottomLeft, BottomRight vmath.Vec2f
}

// normalKey quantizes a face normal to an integer lattice direction so it
// can key a map; every normal the mesh builder ever passes in is already
// axis-aligned (±1 on exactly one axis).
type normalKey struct{ X, Y, Z int8 }

func keyOf(normal vmath.Vec3f) normalKey {
	round := func(f float32) int8 {
		switch {
		case f > 0.5:
			return 1
		case f < -0.5:
			return -1
		default:
			return 0
		}
	}
	return normalKey{round(normal.X), round(normal.Y), round(normal.Z)}
}

// VoxelInfo is the per-face UV table of a single voxel color/tile index,
// matching CVoxelInfo.
type VoxelInfo struct {
	faces map[normalKey]UVMapping
}

// AddFace registers uv as the mapping for the face whose outward normal
// is normal.
func (vi *VoxelInfo) AddFace(normal vmath.Vec3f, uv UVMapping) {
	if vi.faces == nil {
		vi.faces = make(map[normalKey]UVMapping)
	}
	vi.faces[keyOf(normal)] = uv
}

// GetUVMap returns the UV mapping registered for normal, if any.
func (vi *VoxelInfo) GetUVMap(normal vmath.Vec3f) (UVMapping, bool) {
	if vi.faces == nil {
		return UVMapping{}, false
	}
	uv, ok := vi.faces[keyOf(normal)]
	return uv, ok
}

// TextureMap maps a voxel's color index to its per-face UV atlas
// coordinates, matching CVoxelTextureMap.
type TextureMap struct {
	infos map[int]*VoxelInfo
}

// NewTextureMap returns an empty texture map.
func NewTextureMap() *TextureMap {
	return &TextureMap{infos: make(map[int]*VoxelInfo)}
}

// AddVoxelInfo registers info for the voxel color index id, replacing
// whatever was registered before.
func (tm *TextureMap) AddVoxelInfo(id int, info VoxelInfo) {
	cp := info
	tm.infos[id] = &cp
}

// GetVoxelFaceInfo returns the UV mapping for the face of voxel color id
// facing normal, if the atlas defines one.
func (tm *TextureMap) GetVoxelFaceInfo(id int, normal vmath.Vec3f) (UVMapping, bool) {
	info, ok := tm.infos[id]
	if !ok {
		return UVMapping{}, false
	}
	return info.GetUVMap(normal)
}
