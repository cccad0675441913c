// Package voxelmodel wraps a voxel space with the data a mesher and
// exporter need around it: materials, textures, a color/tile atlas
// mapping, and a name/pivot for scene placement. Grounded on
// VCore/Voxel/VoxelModel.hpp and VCore/Voxel/VoxelModel.cpp.
package voxelmodel

import (
	"vcore/bbox"
	"vcore/texture"
	"vcore/voxel"
	"vcore/voxelspace"
	"vcore/vmath"
)

// TexturingType selects whether a voxel's color index indexes a flat
// color palette or a tile in a texture atlas, matching TexturingTypes.
type TexturingType int

const (
	Indexed TexturingType = iota
	Textured
)

// Model is a named, textured voxel space ready for meshing.
type Model struct {
	Name          string
	TexturingType TexturingType
	TextureMap    *TextureMap
	Materials     []Material
	Textures      map[texture.Type]*texture.Texture
	Pivot         vmath.Vec3f

	voxels *voxelspace.Space
}

// New returns an empty, indexed voxel model.
func New(name string) *Model {
	return &Model{
		Name:          name,
		TexturingType: Indexed,
		TextureMap:    NewTextureMap(),
		Textures:      make(map[texture.Type]*texture.Texture),
		voxels:        voxelspace.New(),
	}
}

// Voxels exposes the underlying sparse voxel store for meshers and
// visibility passes.
func (m *Model) Voxels() *voxelspace.Space { return m.voxels }

// SetVoxel places a voxel with the given material/color indices at pos,
// matching CVoxelModel::SetVoxel.
func (m *Model) SetVoxel(pos vmath.Vec3i, material int16, color int32, transparent bool) {
	m.voxels.Insert(pos, voxel.Voxel{Color: color, Material: material, Transparent: transparent})
}

// RemoveVoxel clears whatever voxel occupies pos.
func (m *Model) RemoveVoxel(pos vmath.Vec3i) {
	m.voxels.Erase(pos)
}

// GetVoxel returns the voxel at pos, matching CVoxelModel::GetVoxel.
func (m *Model) GetVoxel(pos vmath.Vec3i) (voxel.Voxel, bool) {
	return m.voxels.Find(pos)
}

// GetVisibleVoxel returns the voxel at pos only if it is both present
// and has at least one exposed face, matching
// CVoxelModel::GetVisibleVoxel.
func (m *Model) GetVisibleVoxel(pos vmath.Vec3i) (voxel.Voxel, bool) {
	v, ok := m.voxels.Find(pos)
	if !ok || !v.IsVisible() {
		return voxel.Empty(), false
	}
	return v, true
}

// Clear removes every voxel. Materials, textures and the texture map are
// left untouched, matching the narrow scope of CVoxelModel::Clear (which
// only clears m_Voxels).
func (m *Model) Clear() {
	m.voxels = voxelspace.New()
}

// BBox returns the bounding box spanning every chunk's instantiated
// region, matching CVoxelModel::GetBBox.
func (m *Model) BBox() bbox.BBox {
	var result bbox.BBox
	has := false
	for _, coord := range m.voxels.QueryChunks() {
		c := m.voxels.GetChunk(coord, false)
		origin := vmath.Vec3i{X: coord.X * voxel.ChunkEdge, Y: coord.Y * voxel.ChunkEdge, Z: coord.Z * voxel.ChunkEdge}
		inner := c.InnerBBox().Translate(origin)
		if !has {
			result = inner
			has = true
			continue
		}
		result = union(result, inner)
	}
	return result
}

func union(a, b bbox.BBox) bbox.BBox {
	beg := vmath.Vec3i{X: min(a.Beg.X, b.Beg.X), Y: min(a.Beg.Y, b.Beg.Y), Z: min(a.Beg.Z, b.Beg.Z)}
	end := vmath.Vec3i{X: max(a.End.X, b.End.X), Y: max(a.End.Y, b.End.Y), Z: max(a.End.Z, b.End.Z)}
	return bbox.New(beg, end)
}

// QueryVisible returns every visible voxel, optionally filtered to
// opaque-only or transparent-only, matching CVoxelModel::QueryVisible.
func (m *Model) QueryVisible(opaqueOnly bool) []voxelspace.VisibleVoxel {
	all := m.voxels.QueryVisible()
	out := all[:0:0]
	for _, vv := range all {
		if vv.Voxel.Transparent == !opaqueOnly {
			out = append(out, vv)
		}
	}
	return out
}

// BlockCount returns the number of instantiated voxels across every
// chunk, matching CVoxelModel::GetBlockCount.
func (m *Model) BlockCount() int {
	count := 0
	for _, coord := range m.voxels.QueryChunks() {
		c := m.voxels.GetChunk(coord, false)
		box := c.InnerBBox()
		for x := box.Beg.X; x < box.End.X; x++ {
			for y := box.Beg.Y; y < box.End.Y; y++ {
				for z := box.Beg.Z; z < box.End.Z; z++ {
					if c.IsInstantiated(vmath.Vec3i{X: x, Y: y, Z: z}) {
						count++
					}
				}
			}
		}
	}
	return count
}
