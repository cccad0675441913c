package voxelmodel

import "vcore/vmath"

// SceneNode is a node of the model's scene graph: a transform plus either
// a mesh or an animation, and a list of children. Grounded on
// VCore/Formats/SceneNode.hpp's CSceneNode.
type SceneNode struct {
	Visible  bool
	Position vmath.Vec3f
	Rotation vmath.Vec3f
	Scale    vmath.Vec3f
	Name     string

	Mesh      *Model     // a node carries either Mesh or Animation, never both
	Animation *Animation

	parent   *SceneNode
	children []*SceneNode
}

// NewSceneNode returns a visible node with unit scale and an identity
// transform, matching CSceneNode's default constructor.
func NewSceneNode(name string) *SceneNode {
	return &SceneNode{
		Visible: true,
		Scale:   vmath.Vec3f{X: 1, Y: 1, Z: 1},
		Name:    name,
	}
}

// GetModelMatrix composes Translation * Rotate(Z)*Rotate(X)*Rotate(Y) *
// Scale, matching CSceneNode::GetModelMatrix's Z-X-Y rotation order
// exactly.
func (n *SceneNode) GetModelMatrix() vmath.Mat4 {
	mm := vmath.Identity()
	mm = mm.Rotate(vmath.Vec3f{X: 0, Y: 0, Z: 1}, n.Rotation.Z)
	mm = mm.Rotate(vmath.Vec3f{X: 1, Y: 0, Z: 0}, n.Rotation.X)
	mm = mm.Rotate(vmath.Vec3f{X: 0, Y: 1, Z: 0}, n.Rotation.Y)
	mm = mm.Mul(vmath.Scale(n.Scale))
	return vmath.Translation(n.Position).Mul(mm)
}

// AddChild appends node as a child of n and sets its parent link.
func (n *SceneNode) AddChild(node *SceneNode) {
	node.parent = n
	n.children = append(n.children, node)
}

// Parent returns n's parent, or nil if n is a root node.
func (n *SceneNode) Parent() *SceneNode { return n.parent }

// Children returns n's child nodes.
func (n *SceneNode) Children() []*SceneNode { return n.children }

// ChildrenCount returns the number of direct children.
func (n *SceneNode) ChildrenCount() int { return len(n.children) }
