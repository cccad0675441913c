// Package mesh is the renderer-ready output data model: vertices grouped
// into per-material surfaces, plus the textures and model transform a
// mesh carries along with it. Grounded on VCore/Meshing/Mesh.hpp.
package mesh

import (
	"vcore/texture"
	"vcore/vmath"
)

// Vertex is one mesh vertex: position, normal and UV coordinate,
// matching SVertex. Two vertices with identical fields are considered
// the same vertex by the mesh builder's dedup map.
type Vertex struct {
	Pos    vmath.Vec3f
	Normal vmath.Vec3f
	UV     vmath.Vec2f
}

// Surface is one indexed triangle list sharing a single material,
// matching SSurface.
type Surface struct {
	FaceMaterial int // material index the surface's faces were added with (an index into the source model's materials)
	Vertices     []Vertex
	Indices      []int
}

// Mesh is the complete output of a meshing pass: every surface plus the
// textures and transform it was generated with, matching SMesh.
type Mesh struct {
	Surfaces    []Surface
	Textures    map[texture.Type]*texture.Texture
	ModelMatrix vmath.Mat4
	Name        string
	FrameTimeMS uint
}

// New returns an empty mesh with an identity model matrix.
func New(name string) *Mesh {
	return &Mesh{
		Name:        name,
		Textures:    make(map[texture.Type]*texture.Texture),
		ModelMatrix: vmath.Identity(),
	}
}
