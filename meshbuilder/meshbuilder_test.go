package meshbuilder

import (
	"errors"
	"testing"

	"vcore/mesh"
	"vcore/texture"
	"vcore/vcoreerr"
	"vcore/vmath"
)

func quad() (v1, v2, v3, v4, normal vmath.Vec3f) {
	v1 = vmath.Vec3f{X: 0, Y: 1, Z: 0}
	v2 = vmath.Vec3f{X: 1, Y: 1, Z: 0}
	v3 = vmath.Vec3f{X: 0, Y: 0, Z: 0}
	v4 = vmath.Vec3f{X: 1, Y: 0, Z: 0}
	normal = vmath.Vec3f{X: 0, Y: 0, Z: 1}
	return
}

func TestAddFaceWithoutTexturesErrorsAndIsANoOp(t *testing.T) {
	b := New()
	v1, v2, v3, v4, n := quad()

	if err := b.AddFace(v1, v2, v3, v4, n, 0, 0); !errors.Is(err, vcoreerr.ErrMissingTextures) {
		t.Fatalf("AddFace() err = %v, want ErrMissingTextures", err)
	}

	// The failed call must not have accumulated anything; a subsequent,
	// properly-textured AddFace call sees an untouched builder.
	b.AddTextures(map[texture.Type]*texture.Texture{})
	if err := b.AddFace(v1, v2, v3, v4, n, 0, 0); err != nil {
		t.Fatalf("AddFace() error = %v", err)
	}

	m, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(m.Surfaces) != 1 || len(m.Surfaces[0].Vertices) != 4 {
		t.Fatalf("expected exactly the one valid quad's vertices, got %+v", m.Surfaces)
	}
}

func TestBuildWithoutAnyFacesAddedErrors(t *testing.T) {
	b := New()
	_, err := b.Build()
	if !errors.Is(err, vcoreerr.ErrMissingTextures) {
		t.Fatalf("Build() err = %v, want ErrMissingTextures", err)
	}
}

func TestAddFaceDedupsSharedVertices(t *testing.T) {
	b := New()
	b.AddTextures(map[texture.Type]*texture.Texture{})
	v1, v2, v3, v4, n := quad()

	if err := b.AddFace(v1, v2, v3, v4, n, 0, 0); err != nil {
		t.Fatalf("AddFace() error = %v", err)
	}

	m, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(m.Surfaces) != 1 {
		t.Fatalf("expected 1 surface, got %d", len(m.Surfaces))
	}
	surf := m.Surfaces[0]
	if len(surf.Vertices) != 4 {
		t.Fatalf("expected 4 deduplicated vertices for a single quad, got %d", len(surf.Vertices))
	}
	if len(surf.Indices) != 6 {
		t.Fatalf("expected 6 indices (two triangles), got %d", len(surf.Indices))
	}
}

func TestAddFaceCorrectsWinding(t *testing.T) {
	b := New()
	b.AddTextures(map[texture.Type]*texture.Texture{})
	v1, v2, v3, v4, n := quad()

	// This quad's geometric winding, cross(v2-v1, v3-v1), comes out as
	// (0,0,-1) — the opposite of the requested face normal (0,0,1) — so
	// the builder must reverse the triangle winding to compensate.
	if err := b.AddFace(v1, v2, v3, v4, n, 0, 0); err != nil {
		t.Fatalf("AddFace() error = %v", err)
	}

	m, _ := b.Build()
	surf := m.Surfaces[0]
	// Reversed winding starts with v3,v2,v1 (indices 2,1,0 given
	// addVertex insertion order v1,v2,v3,v4).
	want := []int{2, 1, 0, 2, 3, 1}
	for i, idx := range want {
		if surf.Indices[i] != idx {
			t.Fatalf("Indices = %v, want %v", surf.Indices, want)
		}
	}
}

func TestMergeAppliesModelMatrixTranslation(t *testing.T) {
	source := mesh.New("part")
	source.ModelMatrix = vmath.Translation(vmath.Vec3f{X: 10, Y: 0, Z: 0})
	source.Surfaces = []mesh.Surface{{
		FaceMaterial: 0,
		Vertices: []mesh.Vertex{
			{Pos: vmath.Vec3f{X: 0, Y: 0, Z: 0}, Normal: vmath.Vec3f{X: 0, Y: 0, Z: 1}},
			{Pos: vmath.Vec3f{X: 1, Y: 0, Z: 0}, Normal: vmath.Vec3f{X: 0, Y: 0, Z: 1}},
			{Pos: vmath.Vec3f{X: 0, Y: 1, Z: 0}, Normal: vmath.Vec3f{X: 0, Y: 0, Z: 1}},
		},
		Indices: []int{0, 1, 2},
	}}

	b := New()
	merged := b.Merge(nil, []*mesh.Mesh{source}, true)

	if len(merged.Surfaces) != 1 {
		t.Fatalf("expected 1 merged surface, got %d", len(merged.Surfaces))
	}
	got := merged.Surfaces[0].Vertices[0].Pos
	if got.X != 10 || got.Y != 0 || got.Z != 0 {
		t.Fatalf("expected the model matrix translation applied, got %+v", got)
	}
}
