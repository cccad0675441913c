package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"golang.org/x/image/draw"

	"vcore/vcoreerr"
	"vcore/vmath"
)

// Type tags a texture's role inside a voxel model, matching the original
// TextureType enum (DIFFIUSE kept as Diffuse here, EMISSION as Emission).
type Type int

const (
	Diffuse Type = iota
	Emission
)

// Texture is a flat RGBA8 pixel grid addressed (x, y) with y-major rows,
// matching CTexture's m_Pixels layout (`x + size.x * y`).
type Texture struct {
	size   vmath.Vec2ui
	pixels []uint32
}

// New creates a texture of the given size, pixels initialized to opaque
// black (0xFF000000), matching CTexture(Vec2ui) 's fill value.
func New(size vmath.Vec2ui) *Texture {
	t := &Texture{size: size, pixels: make([]uint32, size.X*size.Y)}
	for i := range t.pixels {
		t.pixels[i] = 0xFF000000
	}
	return t
}

// Size returns the texture's pixel dimensions.
func (t *Texture) Size() vmath.Vec2ui { return t.size }

// AddPixelAt sets a single pixel by position; out-of-bounds writes are
// silently ignored, matching CTexture::AddPixel(color, position).
func (t *Texture) AddPixelAt(c Color, pos vmath.Vec2ui) {
	if pos.X >= t.size.X || pos.Y >= t.size.Y {
		return
	}
	t.pixels[pos.X+t.size.X*pos.Y] = c.AsRGBA()
}

// AddPixel appends a pixel to a growing single-row (palette) texture.
// Matches CTexture::AddPixel(color): valid only while the texture is
// either empty or already a single row.
func (t *Texture) AddPixel(c Color) {
	if t.size.Y != 0 && t.size.Y != 1 {
		return
	}
	t.size.Y = 1
	t.size.X++
	t.pixels = append(t.pixels, c.AsRGBA())
}

// AddRawPixels blits a rectangular block of pixels into the texture at the
// given position, matching CTexture::AddRawPixels's bounds checks and
// row-major copy.
func (t *Texture) AddRawPixels(pixels []Color, position, size vmath.Vec2ui) {
	if position.X >= t.size.X || position.Y >= t.size.Y ||
		position.X+size.X > t.size.X || position.Y+size.Y > t.size.Y ||
		uint(len(pixels)) < size.X*size.Y {
		return
	}
	for y := uint(0); y < size.Y; y++ {
		for x := uint(0); x < size.X; x++ {
			px := pixels[x+size.X*y]
			t.pixels[(position.X+x)+t.size.X*(position.Y+y)] = px.AsRGBA()
		}
	}
}

// Blit draws a standard library image into this texture at the given
// position using golang.org/x/image/draw, for loading external imagery
// (e.g. the planes-voxelizer's source frames) into the packed atlas format.
func (t *Texture) Blit(src image.Image, position vmath.Vec2ui) {
	dst := &nrgbaView{t: t}
	r := image.Rect(int(position.X), int(position.Y), int(t.size.X), int(t.size.Y))
	draw.Draw(dst, r, src, image.Point{}, draw.Src)
}

// GetPixel returns the packed pixel at position, or an error if out of
// bounds, matching CTexture::GetPixel's bounds-checked throw.
func (t *Texture) GetPixel(pos vmath.Vec2ui) (uint32, error) {
	if pos.X >= t.size.X || pos.Y >= t.size.Y {
		return 0, fmt.Errorf("texture: position %v out of bounds %v: %w", pos, t.size, vcoreerr.ErrOutOfBounds)
	}
	return t.pixels[pos.X+t.size.X*pos.Y], nil
}

// Pixels exposes the raw packed pixel buffer.
func (t *Texture) Pixels() []uint32 { return t.pixels }

// AsPNG encodes the texture as a PNG, matching CTexture::AsPNG's role
// ("an embedded encoder" per the interface contract) using the standard
// library's image/png encoder.
func (t *Texture) AsPNG() ([]byte, error) {
	img := image.NewNRGBA(image.Rect(0, 0, int(t.size.X), int(t.size.Y)))
	for y := uint(0); y < t.size.Y; y++ {
		for x := uint(0); x < t.size.X; x++ {
			c := ColorFromRGBA(t.pixels[x+t.size.X*y])
			img.SetNRGBA(int(x), int(y), color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// nrgbaView adapts a Texture to draw.Image so golang.org/x/image/draw can
// blit directly into the packed pixel buffer.
type nrgbaView struct {
	t *Texture
}

func (v *nrgbaView) ColorModel() color.Model { return color.NRGBAModel }

func (v *nrgbaView) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(v.t.size.X), int(v.t.size.Y))
}

func (v *nrgbaView) At(x, y int) color.Color {
	if x < 0 || y < 0 || uint(x) >= v.t.size.X || uint(y) >= v.t.size.Y {
		return color.NRGBA{}
	}
	c := ColorFromRGBA(v.t.pixels[uint(x)+v.t.size.X*uint(y)])
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (v *nrgbaView) Set(x, y int, c color.Color) {
	if x < 0 || y < 0 || uint(x) >= v.t.size.X || uint(y) >= v.t.size.Y {
		return
	}
	r, g, b, a := c.RGBA()
	col := Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
	v.t.pixels[uint(x)+v.t.size.X*uint(y)] = col.AsRGBA()
}
