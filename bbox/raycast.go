package bbox

import "vcore/vmath"

// RaycastResult reports the outcome of an AABB-vs-ray march, matching the
// teacher's RaycastResult shape (hit cell, the last empty cell passed
// through, and the travelled distance).
type RaycastResult struct {
	HitPosition      vmath.Vec3i
	AdjacentPosition vmath.Vec3i
	Distance         float32
	Hit              bool
}

// Raycast marches a ray from start in direction, testing each sampled
// point against contains (a predicate over an integer lattice cell,
// typically "is this voxel instantiated"), step-marching at the given
// step size between minDist and maxDist. Grounded on the teacher's
// physics.Raycast step-marching loop, generalized from a fixed block-air
// test to a caller-supplied predicate so it composes with any voxel space.
func Raycast(start, direction vmath.Vec3f, minDist, maxDist, stepSize float32, contains func(vmath.Vec3i) bool) RaycastResult {
	if stepSize <= 0 {
		stepSize = 0.02
	}
	steps := int(maxDist / stepSize)

	var lastEmpty vmath.Vec3i
	result := RaycastResult{Hit: false}

	for i := 0; i <= steps; i++ {
		dist := float32(i) * stepSize
		if dist < minDist {
			continue
		}

		pos := start.Add(direction.Mul(dist))
		cell := vmath.Vec3i{
			X: floorInt(pos.X + 0.5),
			Y: ceilInt(pos.Y),
			Z: floorInt(pos.Z + 0.5),
		}

		if contains(cell) {
			bx, by, bz := float32(cell.X), float32(cell.Y), float32(cell.Z)
			if pos.X >= bx-0.5 && pos.X < bx+0.5 &&
				pos.Y > by-1.0 && pos.Y <= by &&
				pos.Z >= bz-0.5 && pos.Z < bz+0.5 {
				result.HitPosition = cell
				result.AdjacentPosition = lastEmpty
				result.Distance = dist
				result.Hit = true
				return result
			}
		}

		lastEmpty = cell
	}

	return result
}

func floorInt(v float32) int {
	i := int(v)
	if v < 0 && float32(i) != v {
		i--
	}
	return i
}

func ceilInt(v float32) int {
	i := int(v)
	if v > 0 && float32(i) != v {
		i++
	}
	return i
}
