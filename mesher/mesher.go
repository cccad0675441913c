// Package mesher turns a populated voxel model into a renderable mesh.
// Every algorithm shares a scene walker (GenerateScene/GenerateAnimation)
// and a per-model chunk driver (GenerateMesh/GenerateChunks); what
// differs between them is only how a single chunk's voxels become
// triangles. Grounded on VCore/Meshing/IMesher.hpp.
package mesher

import (
	"vcore/bbox"
	"vcore/internal/profiling"
	"vcore/mesh"
	"vcore/meshbuilder"
	"vcore/vconfig"
	"vcore/vlog"
	"vcore/vmath"
	"vcore/voxel"
	"vcore/voxelmodel"
	"vcore/voxelspace"
)

type mat4 = vmath.Mat4

func vmathIdentity() mat4 { return vmath.Identity() }

// chunkOrigin is a chunk coordinate's world-space voxel origin.
func chunkOrigin(coord voxelspace.ChunkCoord) vmath.Vec3i {
	return vmath.Vec3i{X: coord.X * voxel.ChunkEdge, Y: coord.Y * voxel.ChunkEdge, Z: coord.Z * voxel.ChunkEdge}
}

// Type selects one of the four meshing algorithms, matching MesherTypes.
type Type int

const (
	Simple Type = iota
	Greedy
	MarchingCubes
	GreedyChunked
)

// ChunkMesh pairs a chunk's coordinate with the mesh generated from it,
// matching SMeshChunk.
type ChunkMesh struct {
	Coord voxelspace.ChunkCoord
	Mesh  *mesh.Mesh
}

// algorithm is the part that actually differs between mesher variants:
// turning one chunk of a model into a mesh positioned in model space.
type algorithm interface {
	meshChunk(model *voxelmodel.Model, coord voxelspace.ChunkCoord) (*mesh.Mesh, error)
}

// Mesher is the common surface every algorithm variant exposes, matching
// IMesher's public methods.
type Mesher interface {
	// GenerateMesh meshes every chunk of m and merges the result into a
	// single mesh, matching IMesher::GenerateMesh.
	GenerateMesh(m *voxelmodel.Model) (*mesh.Mesh, error)

	// GenerateChunks meshes each of m's chunks independently, optionally
	// limited to dirty chunks, matching IMesher::GenerateChunks.
	GenerateChunks(m *voxelmodel.Model, onlyDirty bool) ([]ChunkMesh, error)

	// GenerateScene walks sceneTree, producing one mesh per visible node
	// carrying a model (or one merged mesh, if mergeChilds is set),
	// matching IMesher::GenerateScene.
	GenerateScene(sceneTree *voxelmodel.SceneNode, mergeChilds bool) ([]*mesh.Mesh, error)

	// GenerateAnimation meshes every frame of anim in turn, matching
	// IMesher::GenerateAnimation.
	GenerateAnimation(anim *voxelmodel.Animation) ([]*mesh.Mesh, error)

	// SetFrustum installs a culling frustum; chunks and scene nodes whose
	// bbox falls outside it are skipped. The boxes are tested in model
	// space: no scene-node model matrix is applied to them. A nil
	// frustum disables culling.
	SetFrustum(f *bbox.Frustum)
}

// base implements the scene walker and chunk driver shared by every
// algorithm; concrete meshers embed it and supply algorithm.meshChunk.
type base struct {
	algorithm
	logger  vlog.Logger
	frustum *bbox.Frustum
}

func newBase(alg algorithm, logger vlog.Logger) base {
	if logger == nil {
		logger = vlog.Nop()
	}
	return base{algorithm: alg, logger: logger}
}

func (b *base) SetFrustum(f *bbox.Frustum) { b.frustum = f }

// chunkVisible reports whether outer, inflated by the configured frustum
// margin, survives the current frustum test. outer is tested as given; no
// model matrix is applied to it. With no frustum set every box is visible.
func (b *base) chunkVisible(outer bbox.BBox) bool {
	if b.frustum == nil {
		return true
	}
	return b.frustum.IsOnFrustum(outer.Inflate(vconfig.GetFrustumMargin()))
}

// GenerateChunks meshes m's chunks (optionally only dirty ones) on a
// worker pool sized per vconfig.GetMeshWorkers, matching
// IMesher::GenerateChunks's "per-chunk work is independent and may be
// executed in parallel" contract.
func (b *base) GenerateChunks(m *voxelmodel.Model, onlyDirty bool) ([]ChunkMesh, error) {
	defer profiling.Track("mesher.GenerateChunks")()

	var coords []voxelspace.ChunkCoord
	if onlyDirty {
		coords = m.Voxels().QueryDirtyChunks()
	} else {
		coords = m.Voxels().QueryChunks()
	}

	pool := NewWorkerPool(vconfig.GetMeshWorkers(), len(coords)+1)
	defer pool.Shutdown()

	type pending struct {
		coord voxelspace.ChunkCoord
		ch    <-chan jobResult
	}
	jobs := make([]pending, 0, len(coords))
	for _, coord := range coords {
		chunk := m.Voxels().GetChunk(coord, false)
		if chunk == nil {
			continue
		}
		origin := chunkOrigin(coord)
		if !b.chunkVisible(chunk.InnerBBox().Translate(origin)) {
			continue
		}
		coord := coord
		jobs = append(jobs, pending{coord: coord, ch: pool.Submit(func() (ChunkMesh, error) {
			cm, err := b.algorithm.meshChunk(m, coord)
			return ChunkMesh{Coord: coord, Mesh: cm}, err
		})})
	}

	b.logger.Debugf("mesher: queued %d chunks (onlyDirty=%v) across %d workers", len(jobs), onlyDirty, vconfig.GetMeshWorkers())

	out := make([]ChunkMesh, 0, len(jobs))
	for _, j := range jobs {
		res := <-j.ch
		if res.err != nil {
			return nil, res.err
		}
		out = append(out, res.mesh)
		if onlyDirty {
			m.Voxels().MarkAsProcessed(j.coord)
		}
	}
	return out, nil
}

// GenerateMesh meshes every chunk of m and concatenates them into a
// single mesh via the mesh builder's dedup-preserving merge, matching
// IMesher::GenerateMesh.
func (b *base) GenerateMesh(m *voxelmodel.Model) (*mesh.Mesh, error) {
	chunks, err := b.GenerateChunks(m, false)
	if err != nil {
		return nil, err
	}
	meshes := make([]*mesh.Mesh, 0, len(chunks))
	for _, c := range chunks {
		meshes = append(meshes, c.Mesh)
	}
	return meshbuilder.New().Merge(nil, meshes, false), nil
}

// GenerateScene recursively descends sceneTree accumulating node
// transforms into a model matrix; each visible node carrying a model
// contributes the mesh generated from it, stamped with the accumulated
// transform. Invisible nodes and their subtrees are skipped entirely.
// When mergeChilds is set, every produced mesh is merged (applying its
// model matrix) into one.
func (b *base) GenerateScene(sceneTree *voxelmodel.SceneNode, mergeChilds bool) ([]*mesh.Mesh, error) {
	var meshes []*mesh.Mesh
	if err := b.generateSceneRecursive(sceneTree, vmathIdentity(), &meshes); err != nil {
		return nil, err
	}
	if !mergeChilds {
		return meshes, nil
	}
	merged := meshbuilder.New().Merge(nil, meshes, true)
	return []*mesh.Mesh{merged}, nil
}

func (b *base) generateSceneRecursive(node *voxelmodel.SceneNode, parent mat4, out *[]*mesh.Mesh) error {
	if node == nil || !node.Visible {
		return nil
	}
	accumulated := parent.Mul(node.GetModelMatrix())

	if node.Mesh != nil {
		// bbox.BBox is integer voxel-space and has no arbitrary-rotation
		// transform, so the frustum test here uses the node's untransformed
		// model bbox; neither the translation nor the rotation of accumulated
		// is applied to it.
		if b.chunkVisible(node.Mesh.BBox()) {
			m, err := b.GenerateMesh(node.Mesh)
			if err != nil {
				return err
			}
			m.ModelMatrix = accumulated
			m.Name = node.Name
			*out = append(*out, m)
		}
	}

	if node.Animation != nil {
		frameMeshes, err := b.GenerateAnimation(node.Animation)
		if err != nil {
			return err
		}
		for _, m := range frameMeshes {
			m.ModelMatrix = accumulated
			m.Name = node.Name
		}
		*out = append(*out, frameMeshes...)
	}

	for _, child := range node.Children() {
		if err := b.generateSceneRecursive(child, accumulated, out); err != nil {
			return err
		}
	}
	return nil
}

// GenerateAnimation meshes every frame's model in turn, stamping each
// produced mesh with that frame's display duration, matching
// IMesher::GenerateAnimation.
func (b *base) GenerateAnimation(anim *voxelmodel.Animation) ([]*mesh.Mesh, error) {
	out := make([]*mesh.Mesh, 0, anim.FrameCount())
	for i := 0; i < anim.FrameCount(); i++ {
		frame := anim.Frame(i)
		m, err := b.GenerateMesh(frame.Model)
		if err != nil {
			return nil, err
		}
		m.FrameTimeMS = frame.FrameTimeMS
		out = append(out, m)
	}
	return out, nil
}
