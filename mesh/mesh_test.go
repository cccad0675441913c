package mesh

import (
	"testing"

	"vcore/vmath"
)

func TestNewMeshHasIdentityMatrixAndEmptyTextures(t *testing.T) {
	m := New("block")
	if m.Name != "block" {
		t.Fatalf("Name = %q, want %q", m.Name, "block")
	}
	if len(m.Textures) != 0 {
		t.Fatalf("expected no textures on a fresh mesh")
	}
	zero := vmath.Vec3f{}
	if got := m.ModelMatrix.MulVec3(zero); got != zero {
		t.Fatalf("expected identity matrix to leave the origin unmoved, got %+v", got)
	}
}
