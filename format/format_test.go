package format

import (
	"errors"
	"testing"

	"vcore/texture"
	"vcore/vcoreerr"
	"vcore/voxelmodel"
	"vcore/vstream"
)

func TestTypeFromFilename(t *testing.T) {
	cases := map[string]Type{
		"dwarf.vox":     MagicaVoxel,
		"scene.GOX":     Goxel,
		"block.qb":      QubicleBin,
		"unknown.thing": Unknown,
	}
	for name, want := range cases {
		if got := TypeFromFilename(name); got != want {
			t.Fatalf("TypeFromFilename(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestNewLoaderUnregisteredReturnsUnrecognized(t *testing.T) {
	_, err := NewLoader(Type(999))
	if !errors.Is(err, vcoreerr.ErrFormatUnrecognized) {
		t.Fatalf("NewLoader() err = %v, want ErrFormatUnrecognized", err)
	}
}

type stubLoader struct{ loaded bool }

func (s *stubLoader) Load(strm vstream.Stream) error {
	s.loaded = true
	return nil
}
func (s *stubLoader) Models() []*voxelmodel.Model                { return nil }
func (s *stubLoader) Animations() []*voxelmodel.Animation        { return nil }
func (s *stubLoader) Materials() []voxelmodel.Material           { return nil }
func (s *stubLoader) Textures() map[texture.Type]*texture.Texture { return nil }
func (s *stubLoader) SceneTree() *voxelmodel.SceneNode            { return nil }

func TestRegisterLoaderRoundTrip(t *testing.T) {
	RegisterLoader(KenShape, func() Loader { return &stubLoader{} })

	loader, err := NewLoader(KenShape)
	if err != nil {
		t.Fatalf("NewLoader() error = %v", err)
	}

	if err := loader.Load(vstream.NewMemoryStream(nil)); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !loader.(*stubLoader).loaded {
		t.Fatalf("expected the stub loader's Load to run")
	}
}
