package bbox

import (
	"math"

	"vcore/vmath"
)

// Plane is a plane in Hessian normal form (unit normal + signed distance
// from the origin), matching CPlane.
type Plane struct {
	Normal   vmath.Vec3f
	Distance float32
}

// NewPlaneFromPointNormal builds a plane through point with the given
// (not necessarily unit) normal, matching CPlane(point, normal)'s
// normalize-then-project-distance construction.
func NewPlaneFromPointNormal(point, normal vmath.Vec3f) Plane {
	n := vmath.NormalizeF(normal)
	return Plane{Normal: n, Distance: vmath.DotF(n, point)}
}

// SignedDistance returns the signed distance from point to the plane.
func (p Plane) SignedDistance(point vmath.Vec3f) float32 {
	return vmath.DotF(p.Normal, point) - p.Distance
}

// Frustum is the six-plane view volume used to cull chunks, matching
// CFrustum's Near/Far/Left/Right/Top/Bottom set.
type Frustum struct {
	Near, Far, Left, Right, Top, Bottom Plane
}

// NewFrustum builds a frustum from a camera basis, matching
// CFrustum::Create's plane derivation from position/front/right/up plus
// aspect ratio, field of view and near/far clip distances (radians).
// camRight must equal camFront x camUp (for front +Z and up +Y that is
// -X); the side planes face inward only for that handedness.
func NewFrustum(camPos, camFront, camRight, camUp vmath.Vec3f, aspect, fov, near, far float32) Frustum {
	halfVSide := far * tanF(fov*0.5)
	halfHSide := halfVSide * aspect
	frontFar := camFront.Mul(far)

	var f Frustum
	f.Near = NewPlaneFromPointNormal(camPos.Add(camFront.Mul(near)), camFront)
	f.Far = NewPlaneFromPointNormal(camPos.Add(frontFar), camFront.Mul(-1))

	f.Right = NewPlaneFromPointNormal(camPos, vmath.CrossF(frontFar.Sub(camRight.Mul(halfHSide)), camUp))
	f.Left = NewPlaneFromPointNormal(camPos, vmath.CrossF(camUp, frontFar.Add(camRight.Mul(halfHSide))))

	f.Top = NewPlaneFromPointNormal(camPos, vmath.CrossF(camRight, frontFar.Sub(camUp.Mul(halfVSide))))
	f.Bottom = NewPlaneFromPointNormal(camPos, vmath.CrossF(frontFar.Add(camUp.Mul(halfVSide)), camRight))

	return f
}

// IsOnFrustum reports whether box intersects or lies inside the frustum,
// using the center/extents AABB-vs-plane test (CFrustum::IsOnFrustum /
// IsOnOrForwardPlane).
func (f Frustum) IsOnFrustum(box BBox) bool {
	center := box.Center()
	extents := box.Extents()

	return isOnOrForwardPlane(f.Near, center, extents) &&
		isOnOrForwardPlane(f.Left, center, extents) &&
		isOnOrForwardPlane(f.Top, center, extents) &&
		isOnOrForwardPlane(f.Far, center, extents) &&
		isOnOrForwardPlane(f.Right, center, extents) &&
		isOnOrForwardPlane(f.Bottom, center, extents)
}

func isOnOrForwardPlane(p Plane, center, extents vmath.Vec3f) bool {
	r := extents.X*absF(p.Normal.X) + extents.Y*absF(p.Normal.Y) + extents.Z*absF(p.Normal.Z)
	return -r <= p.SignedDistance(center)
}

func absF(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func tanF(radians float32) float32 {
	return float32(math.Tan(float64(radians)))
}
