package meshbuilder

import (
	"vcore/mesh"
	"vcore/vmath"
)

// rotationOnly rebuilds m's ModelMatrix rotation component as a pure
// Z-X-Y rotation matrix (scale and translation stripped), matching
// CMeshBuilder::MergeIntoThis's Euler-angle round trip.
func rotationOnly(m *mesh.Mesh) vmath.Mat4 {
	euler := m.ModelMatrix.GetEuler()
	rot := vmath.Identity()
	rot = rot.Rotate(vmath.Vec3f{X: 0, Y: 0, Z: 1}, euler.Z)
	rot = rot.Rotate(vmath.Vec3f{X: 1, Y: 0, Z: 0}, euler.X)
	rot = rot.Rotate(vmath.Vec3f{X: 0, Y: 1, Z: 0}, euler.Y)
	return rot
}

// Merge combines meshes into mergeInto (or a new mesh, if mergeInto is
// nil), optionally reapplying each source mesh's ModelMatrix: the full
// matrix to vertex positions and only its rotation component,
// reconstructed from Euler angles, to normals, matching
// CMeshBuilder::Merge/MergeIntoThis.
func (b *Builder) Merge(mergeInto *mesh.Mesh, meshes []*mesh.Mesh, applyModelMatrix bool) *mesh.Mesh {
	var out *mesh.Mesh
	if mergeInto != nil {
		b.generateCache(mergeInto)
		out = mergeInto
	} else {
		out = mesh.New("")
	}

	for _, m := range meshes {
		b.mergeIntoThis(m, applyModelMatrix)
	}

	out.Surfaces = out.Surfaces[:0]
	for _, s := range b.surfaces {
		out.Surfaces = append(out.Surfaces, s.surface)
	}

	b.surfaces = make(map[int]*indexedSurface)
	return out
}

// generateCache seeds the builder's per-material surfaces (and their
// vertex-dedup index) from an already-built mesh, so Merge can continue
// appending to it without losing existing dedup, matching
// CMeshBuilder::GenerateCache.
func (b *Builder) generateCache(mergeInto *mesh.Mesh) {
	for _, surface := range mergeInto.Surfaces {
		s := b.surfaceFor(surface.FaceMaterial)
		s.surface.Indices = append([]int(nil), surface.Indices...)
		s.surface.Vertices = append([]mesh.Vertex(nil), surface.Vertices...)

		for _, i := range surface.Indices {
			if i < len(surface.Vertices) {
				if _, exists := s.index[surface.Vertices[i]]; !exists {
					s.index[surface.Vertices[i]] = i
				}
			}
		}
	}
}

// mergeIntoThis appends m's triangles to the builder's surfaces. When
// applyModelMatrix is true, every vertex position is transformed by m's
// ModelMatrix and every normal by the rotation-only part of it (the
// model matrix decomposed back into Euler angles and rebuilt as a pure
// rotation), matching CMeshBuilder::MergeIntoThis.
func (b *Builder) mergeIntoThis(m *mesh.Mesh, applyModelMatrix bool) {
	rot := rotationOnly(m)

	for _, surface := range m.Surfaces {
		s := b.surfaceFor(surface.FaceMaterial)

		for i := 0; i+2 < len(surface.Indices); i += 3 {
			v1 := surface.Vertices[surface.Indices[i]]
			v2 := surface.Vertices[surface.Indices[i+1]]
			v3 := surface.Vertices[surface.Indices[i+2]]

			if applyModelMatrix {
				v1.Pos = m.ModelMatrix.MulVec3(v1.Pos)
				v1.Normal = rot.MulVec3(v1.Normal)
				v2.Pos = m.ModelMatrix.MulVec3(v2.Pos)
				v2.Normal = rot.MulVec3(v2.Normal)
				v3.Pos = m.ModelMatrix.MulVec3(v3.Pos)
				v3.Normal = rot.MulVec3(v3.Normal)
			}

			i1 := s.addVertex(v1)
			i2 := s.addVertex(v2)
			i3 := s.addVertex(v3)
			s.surface.Indices = append(s.surface.Indices, i1, i2, i3)
		}
	}
}
