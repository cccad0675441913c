// Package texturepacker packs a set of rectangles into as small a canvas
// as possible using a growing binary-tree bin packer. Grounded directly
// on VCore/Misc/TexturePacker.cpp (a Go port of codeincomplete.com's
// growing binary tree algorithm); the node field set follows what the
// .cpp file actually uses (Position/Size/Leaf/Child), since the
// corresponding .hpp's SNode declaration had drifted out of sync with it.
package texturepacker

import (
	"sort"

	"vcore/vmath"
)

// Rect is one packed rectangle: its final Position once Pack returns,
// its requested Size, and an opaque reference back to the caller's data
// (a texture, an atlas tile, ...), matching SRect.
type Rect struct {
	Position vmath.Vec2ui
	Size     vmath.Vec2ui
	Ref      any
}

type node struct {
	Position vmath.Vec2ui
	Size     vmath.Vec2ui
	Leaf     bool
	Child    [2]*node
}

func newNode(pos, size vmath.Vec2ui) *node {
	return &node{Position: pos, Size: size, Leaf: true}
}

// Packer packs rectangles into a canvas that grows to the right or down
// as needed, matching CTexturePacker.
type Packer struct {
	canvasSize vmath.Vec2ui
	rects      []Rect
}

// New returns a packer with the given initial canvas size; it will be
// resized by Pack to fit whatever rectangles are added.
func New(initialCanvasSize vmath.Vec2ui) *Packer {
	return &Packer{canvasSize: initialCanvasSize}
}

// AddRect queues a rectangle of the given size for packing, carrying ref
// through to the result unchanged.
func (p *Packer) AddRect(size vmath.Vec2ui, ref any) {
	p.rects = append(p.rects, Rect{Size: size, Ref: ref})
}

func areaU(v vmath.Vec2ui) uint {
	return v.X * v.Y
}

// Pack places every queued rectangle without overlap and returns them
// with their final Position filled in. Rects are packed largest-first:
// sorted ascending by area, then walked back to front.
func (p *Packer) Pack() []Rect {
	if len(p.rects) == 0 {
		return p.rects
	}

	sort.Slice(p.rects, func(i, j int) bool {
		return areaU(p.rects[i].Size) < areaU(p.rects[j].Size)
	})

	p.canvasSize = p.rects[len(p.rects)-1].Size
	root := newNode(vmath.Vec2ui{}, p.canvasSize)

	i := len(p.rects) - 1
	for i >= 0 {
		size := p.rects[i].Size
		if n := p.findNode(root, size); n != nil {
			p.rects[i].Position = p.splitNode(n, size)
			i--
			continue
		}

		newRoot := p.resizeCanvas(root, size)
		if newRoot == nil {
			break // would otherwise loop forever on a rect no canvas growth can fit
		}
		root = newRoot
	}

	return p.rects
}

// CanvasSize returns the canvas size computed by the last Pack call.
func (p *Packer) CanvasSize() vmath.Vec2ui { return p.canvasSize }

// Rects returns the queued rectangles (populated with positions after Pack).
func (p *Packer) Rects() []Rect { return p.rects }

func (p *Packer) findNode(root *node, size vmath.Vec2ui) *node {
	if root == nil {
		return nil
	}
	if !root.Leaf {
		if n := p.findNode(root.Child[0], size); n != nil {
			return n
		}
		return p.findNode(root.Child[1], size)
	}
	if size.X <= root.Size.X && size.Y <= root.Size.Y {
		return root
	}
	return nil
}

func (p *Packer) splitNode(root *node, size vmath.Vec2ui) vmath.Vec2ui {
	root.Leaf = false

	remaining := root.Size.Sub(vmath.Vec2ui{X: 0, Y: size.Y})
	if remaining.Y > 0 {
		root.Child[0] = newNode(root.Position.Add(vmath.Vec2ui{X: 0, Y: size.Y}), root.Size.Sub(vmath.Vec2ui{X: 0, Y: size.Y}))
	}

	remaining = root.Size.Sub(vmath.Vec2ui{X: size.X, Y: remaining.Y})
	if remaining.X > 0 {
		root.Child[1] = newNode(root.Position.Add(vmath.Vec2ui{X: size.X, Y: 0}), remaining)
	}

	return root.Position
}

func (p *Packer) resizeCanvas(root *node, size vmath.Vec2ui) *node {
	canGrowDown := size.X <= root.Size.X
	canGrowRight := size.Y <= root.Size.Y

	shouldGrowRight := canGrowRight && root.Size.Y >= root.Size.X+size.X
	shouldGrowDown := canGrowRight && root.Size.X >= root.Size.Y+size.Y

	switch {
	case shouldGrowRight:
		return p.resizeCanvasRight(root, size)
	case shouldGrowDown:
		return p.resizeCanvasDown(root, size)
	case canGrowRight:
		return p.resizeCanvasRight(root, size)
	case canGrowDown:
		return p.resizeCanvasDown(root, size)
	}
	return nil
}

func (p *Packer) resizeCanvasRight(root *node, size vmath.Vec2ui) *node {
	p.canvasSize.X += size.X
	newRoot := newNode(vmath.Vec2ui{}, p.canvasSize)
	newRoot.Leaf = false
	newRoot.Child[0] = root
	newRoot.Child[1] = newNode(vmath.Vec2ui{X: root.Size.X, Y: 0}, vmath.Vec2ui{X: size.X, Y: p.canvasSize.Y})
	return newRoot
}

func (p *Packer) resizeCanvasDown(root *node, size vmath.Vec2ui) *node {
	p.canvasSize.Y += size.Y
	newRoot := newNode(vmath.Vec2ui{}, p.canvasSize)
	newRoot.Leaf = false
	newRoot.Child[1] = root
	newRoot.Child[0] = newNode(vmath.Vec2ui{X: 0, Y: root.Size.Y}, vmath.Vec2ui{X: p.canvasSize.X, Y: size.Y})
	return newRoot
}
