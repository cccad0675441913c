package texture

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"vcore/vcoreerr"
	"vcore/vmath"
)

func TestAddPixelGrowsPaletteRow(t *testing.T) {
	tex := New(vmath.Vec2ui{})
	tex.AddPixel(NewColor(1, 2, 3, 255))
	tex.AddPixel(NewColor(4, 5, 6, 255))

	if tex.Size() != (vmath.Vec2ui{X: 2, Y: 1}) {
		t.Fatalf("Size() = %+v, want {2 1}", tex.Size())
	}
	got, err := tex.GetPixel(vmath.Vec2ui{X: 1, Y: 0})
	if err != nil {
		t.Fatalf("GetPixel: %v", err)
	}
	if got != NewColor(4, 5, 6, 255).AsRGBA() {
		t.Fatalf("GetPixel(1,0) = %x", got)
	}
}

func TestGetPixelOutOfBounds(t *testing.T) {
	tex := New(vmath.Vec2ui{X: 2, Y: 2})
	_, err := tex.GetPixel(vmath.Vec2ui{X: 5, Y: 5})
	if !errors.Is(err, vcoreerr.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestAddRawPixelsBlit(t *testing.T) {
	tex := New(vmath.Vec2ui{X: 4, Y: 4})
	block := []Color{
		NewColor(10, 10, 10, 255), NewColor(20, 20, 20, 255),
		NewColor(30, 30, 30, 255), NewColor(40, 40, 40, 255),
	}
	tex.AddRawPixels(block, vmath.Vec2ui{X: 1, Y: 1}, vmath.Vec2ui{X: 2, Y: 2})

	got, _ := tex.GetPixel(vmath.Vec2ui{X: 2, Y: 2})
	if got != NewColor(40, 40, 40, 255).AsRGBA() {
		t.Fatalf("GetPixel(2,2) = %x", got)
	}
}

func TestBlitFromStandardImage(t *testing.T) {
	tex := New(vmath.Vec2ui{X: 4, Y: 4})
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 1, color.NRGBA{B: 255, A: 255})

	tex.Blit(src, vmath.Vec2ui{X: 0, Y: 0})

	got, _ := tex.GetPixel(vmath.Vec2ui{X: 1, Y: 1})
	if ColorFromRGBA(got).B != 255 {
		t.Fatalf("expected blue pixel after blit, got %+v", ColorFromRGBA(got))
	}
}

func TestAsPNGProducesValidHeader(t *testing.T) {
	tex := New(vmath.Vec2ui{X: 1, Y: 1})
	data, err := tex.AsPNG()
	if err != nil {
		t.Fatalf("AsPNG: %v", err)
	}
	pngSig := []byte{0x89, 'P', 'N', 'G'}
	if len(data) < 4 {
		t.Fatalf("PNG output too short")
	}
	for i, b := range pngSig {
		if data[i] != b {
			t.Fatalf("PNG signature mismatch at %d", i)
		}
	}
}
