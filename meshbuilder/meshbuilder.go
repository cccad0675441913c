// Package meshbuilder accumulates quads and triangles into per-material
// indexed surfaces, deduplicating vertices and resolving UV coordinates
// from either a texture atlas, a texture map, or a bare color-palette
// index. Grounded directly on VCore/Meshing/MeshBuilder.hpp/.cpp.
package meshbuilder

import (
	"vcore/mesh"
	"vcore/texture"
	"vcore/vcoreerr"
	"vcore/voxelmodel"
	"vcore/vmath"
)

type indexedSurface struct {
	index   map[mesh.Vertex]int
	surface mesh.Surface
}

func newIndexedSurface(material int) *indexedSurface {
	return &indexedSurface{
		index:   make(map[mesh.Vertex]int),
		surface: mesh.Surface{FaceMaterial: material},
	}
}

func (s *indexedSurface) addVertex(v mesh.Vertex) int {
	if idx, ok := s.index[v]; ok {
		return idx
	}
	idx := len(s.surface.Vertices)
	s.surface.Vertices = append(s.surface.Vertices, v)
	s.index[v] = idx
	return idx
}

// Builder accumulates faces into per-material surfaces and produces a
// finished mesh.Mesh, matching CMeshBuilder.
type Builder struct {
	textures   map[texture.Type]*texture.Texture
	textureMap *voxelmodel.TextureMap

	surfaces map[int]*indexedSurface
}

// New returns an empty builder.
func New() *Builder {
	return &Builder{surfaces: make(map[int]*indexedSurface)}
}

// SetTextureMap installs the atlas UV lookup AddFace should consult,
// matching CMeshBuilder::SetTextureMap.
func (b *Builder) SetTextureMap(tm *voxelmodel.TextureMap) {
	b.textureMap = tm
}

// AddTextures records the mesh's textures. Must be called before AddFace,
// which fails with vcoreerr.ErrMissingTextures until it has been (an empty
// map is accepted), matching CMeshBuilder::AddTextures.
func (b *Builder) AddTextures(textures map[texture.Type]*texture.Texture) {
	b.textures = textures
}

func (b *Builder) surfaceFor(material int) *indexedSurface {
	s, ok := b.surfaces[material]
	if !ok {
		s = newIndexedSurface(material)
		b.surfaces[material] = s
	}
	return s
}

// AddFace adds a quad (v1=top-left, v2=top-right, v3=bottom-left,
// v4=bottom-right) with the given face normal, color palette index and
// material index, matching CMeshBuilder::AddFace(4 verts). The UV
// coordinates are resolved, in priority order: a palette-strip lookup,
// u=(color+0.5)/width and v=0.5 on the diffuse texture (when textures
// were added and no texture map is set), a per-voxel texture map (when
// one is set), or, when the added textures map is empty and no texture
// map is set, a bare per-vertex encoding of the color index with corner
// ids 0..3 as V.
//
// Winding is corrected by comparing the geometric normal of (v1,v2,v3)
// against normal: if they agree the quad is emitted v1-v2-v3 / v2-v4-v3,
// otherwise the reverse order is emitted so the triangle winding always
// faces normal.
//
// AddFace returns vcoreerr.ErrMissingTextures and leaves the builder's
// accumulation untouched if AddTextures has not been called yet,
// matching CMeshBuilder::AddFace's documented @throws.
func (b *Builder) AddFace(v1, v2, v3, v4, normal vmath.Vec3f, color int, material int) error {
	if b.textures == nil {
		return vcoreerr.ErrMissingTextures
	}

	surface := b.surfaceFor(material)

	faceNormal := vmath.NormalizeF(vmath.CrossF(v2.Sub(v1), v3.Sub(v1)))

	var uv1, uv2, uv3, uv4 vmath.Vec2f
	switch {
	case len(b.textures) > 0 && b.textureMap == nil:
		diffuse, ok := b.textures[texture.Diffuse]
		if ok {
			u := (float32(color) + 0.5) / float32(diffuse.Size().X)
			uv1, uv2, uv3, uv4 = vmath.Vec2f{X: u, Y: 0.5}, vmath.Vec2f{X: u, Y: 0.5}, vmath.Vec2f{X: u, Y: 0.5}, vmath.Vec2f{X: u, Y: 0.5}
		}
	case b.textureMap != nil:
		if mapping, ok := b.textureMap.GetVoxelFaceInfo(color, normal); ok {
			uv1 = mapping.TopLeft
			uv2 = mapping.TopRight
			uv3 = mapping.BottomLeft
			uv4 = mapping.BottomRight
		}
	default:
		c := float32(color)
		uv1 = vmath.Vec2f{X: c, Y: 0}
		uv2 = vmath.Vec2f{X: c, Y: 2}
		uv3 = vmath.Vec2f{X: c, Y: 1}
		uv4 = vmath.Vec2f{X: c, Y: 3}
	}

	i1 := surface.addVertex(mesh.Vertex{Pos: v1, Normal: normal, UV: uv1})
	i2 := surface.addVertex(mesh.Vertex{Pos: v2, Normal: normal, UV: uv2})
	i3 := surface.addVertex(mesh.Vertex{Pos: v3, Normal: normal, UV: uv3})
	i4 := surface.addVertex(mesh.Vertex{Pos: v4, Normal: normal, UV: uv4})

	if vmath.EqualApprox(faceNormal, normal, 1e-5) {
		surface.surface.Indices = append(surface.surface.Indices, i1, i2, i3, i2, i4, i3)
	} else {
		surface.surface.Indices = append(surface.surface.Indices, i3, i2, i1, i3, i4, i2)
	}
	return nil
}

// AddTriangle adds a single pre-built triangle to material's surface,
// matching CMeshBuilder::AddFace(3 verts).
func (b *Builder) AddTriangle(v1, v2, v3 mesh.Vertex, material int) {
	surface := b.surfaceFor(material)
	i1 := surface.addVertex(v1)
	i2 := surface.addVertex(v2)
	i3 := surface.addVertex(v3)
	surface.surface.Indices = append(surface.surface.Indices, i1, i2, i3)
}

// Build finalizes every accumulated surface into a new mesh.Mesh and
// resets the builder for reuse. It also returns vcoreerr.ErrMissingTextures
// if AddTextures was never called, as a backstop for a builder that
// never had AddFace called on it at all (the common case — a missing
// AddTextures call before AddFace — is rejected there instead, per
// CMeshBuilder::AddFace's documented @throws).
func (b *Builder) Build() (*mesh.Mesh, error) {
	if b.textures == nil {
		return nil, vcoreerr.ErrMissingTextures
	}

	out := mesh.New("")
	for _, s := range b.surfaces {
		out.Surfaces = append(out.Surfaces, s.surface)
	}
	out.Textures = b.textures

	b.textures = nil
	b.surfaces = make(map[int]*indexedSurface)
	return out, nil
}
