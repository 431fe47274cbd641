package manip

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// closestPoints finds the closest approach between a ray (ro, rd) and a line
// (ao, ad). Returns the parameters t (along the ray) and s (along the line)
// plus the distance between the two closest points. For near-parallel inputs
// t and s are zero and the distance is the offset between the origins.
func closestPoints(ro, rd, ao, ad mgl32.Vec3) (float32, float32, float32) {
	r := ro.Sub(ao)
	a := rd.Dot(rd)
	b := rd.Dot(ad)
	e := ad.Dot(ad)
	f := ad.Dot(r)

	det := a*e - b*b
	if det < 1e-6 {
		return 0, 0, r.Len()
	}

	c := rd.Dot(r)
	t := (b*f - c*e) / det
	s := (a*f - b*c) / det

	p1 := ro.Add(rd.Mul(t))
	p2 := ao.Add(ad.Mul(s))
	return t, s, p1.Sub(p2).Len()
}

// rayPlane intersects a ray with the plane through planePoint with the given
// normal. Returns the hit point and false when the ray is parallel to the
// plane or the hit lies behind the origin.
func rayPlane(origin, dir, planePoint, planeNormal mgl32.Vec3) (mgl32.Vec3, bool) {
	denom := dir.Dot(planeNormal)
	if math.Abs(float64(denom)) < 1e-6 {
		return mgl32.Vec3{}, false
	}
	t := planePoint.Sub(origin).Dot(planeNormal) / denom
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	return origin.Add(dir.Mul(t)), true
}

// rayPointDistance returns the distance between a ray and a point, clamping
// the ray parameter to non-negative values.
func rayPointDistance(origin, dir, point mgl32.Vec3) float32 {
	t := point.Sub(origin).Dot(dir) / dir.Dot(dir)
	if t < 0 {
		t = 0
	}
	return origin.Add(dir.Mul(t)).Sub(point).Len()
}
