package texturepacker

import (
	"testing"

	"vcore/vmath"
)

func overlaps(a, b Rect) bool {
	ax0, ay0 := a.Position.X, a.Position.Y
	ax1, ay1 := ax0+a.Size.X, ay0+a.Size.Y
	bx0, by0 := b.Position.X, b.Position.Y
	bx1, by1 := bx0+b.Size.X, by0+b.Size.Y

	return ax0 < bx1 && bx0 < ax1 && ay0 < by1 && by0 < ay1
}

func TestPackProducesNonOverlappingRects(t *testing.T) {
	p := New(vmath.Vec2ui{X: 16, Y: 16})
	p.AddRect(vmath.Vec2ui{X: 16, Y: 16}, "a")
	p.AddRect(vmath.Vec2ui{X: 8, Y: 8}, "b")
	p.AddRect(vmath.Vec2ui{X: 8, Y: 16}, "c")
	p.AddRect(vmath.Vec2ui{X: 4, Y: 4}, "d")

	packed := p.Pack()
	if len(packed) != 4 {
		t.Fatalf("Pack() returned %d rects, want 4", len(packed))
	}

	for i := 0; i < len(packed); i++ {
		for j := i + 1; j < len(packed); j++ {
			if overlaps(packed[i], packed[j]) {
				t.Fatalf("rects %+v and %+v overlap", packed[i], packed[j])
			}
		}
	}
}

func TestPackFitsEveryRectWithinCanvas(t *testing.T) {
	p := New(vmath.Vec2ui{X: 1, Y: 1})
	sizes := []vmath.Vec2ui{
		{X: 32, Y: 32}, {X: 16, Y: 8}, {X: 8, Y: 8}, {X: 4, Y: 12}, {X: 20, Y: 5},
	}
	for i, s := range sizes {
		p.AddRect(s, i)
	}

	packed := p.Pack()
	canvas := p.CanvasSize()

	for _, r := range packed {
		if r.Position.X+r.Size.X > canvas.X || r.Position.Y+r.Size.Y > canvas.Y {
			t.Fatalf("rect %+v exceeds canvas %+v", r, canvas)
		}
	}
}

func TestPackEmptyReturnsEmpty(t *testing.T) {
	p := New(vmath.Vec2ui{X: 4, Y: 4})
	if got := p.Pack(); len(got) != 0 {
		t.Fatalf("Pack() on an empty packer returned %d rects", len(got))
	}
}
