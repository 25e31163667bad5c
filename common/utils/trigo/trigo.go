package trigo

import (
	"math"

	"github.com/bytearena/sightline/common/utils/number"
	"github.com/bytearena/sightline/common/utils/vector"
)

// Parametric slack allowed at segment ends when intersecting a ray.
const segmentSlack = 0.0000001

func IntersectionWithLineSegment(p vector.Vector2, p2 vector.Vector2, q vector.Vector2, q2 vector.Vector2) (intersection vector.Vector2, intersects bool, colinear bool, parallel bool) {

	r := p2.Sub(p)
	s := q2.Sub(q)
	rxs := r.Cross(s)
	qpxr := q.Sub(p).Cross(r)

	// If r x s = 0 and (q - p) x r = 0, then the two lines are collinear.
	if number.IsZero(rxs) && number.IsZero(qpxr) {
		// Overlapping when either 0 <= (q - p) * r <= r * r or 0 <= (p - q) * s <= s * s
		qSubPTimesR := q.Sub(p).Dot(r)
		pSubQTimesS := p.Sub(q).Dot(s)
		rSquared := r.Dot(r)
		sSquared := s.Dot(s)

		if (qSubPTimesR >= 0 && qSubPTimesR <= rSquared) || (pSubQTimesS >= 0 && pSubQTimesS <= sSquared) {
			return vector.MakeNullVector2(), true, true, true
		}

		return vector.MakeNullVector2(), false, true, true
	}

	// If r x s = 0 and (q - p) x r != 0, then the two lines are parallel and non-intersecting.
	if number.IsZero(rxs) {
		return vector.MakeNullVector2(), false, false, true
	}

	t := q.Sub(p).Cross(s) / rxs
	u := q.Sub(p).Cross(r) / rxs

	// The two line segments meet at the point p + t r = q + u s.
	if (0 <= t && t <= 1) && (0 <= u && u <= 1) {
		return p.Add(r.MultScalar(t)), true, false, false
	}

	return vector.MakeNullVector2(), false, false, false
}

// RaySegmentDistance returns how far from origin, along the unit vector dir,
// the ray meets the segment [a, b]. When the ray runs along the segment the
// distance to its nearest point is returned.
func RaySegmentDistance(origin vector.Vector2, dir vector.Vector2, a vector.Vector2, b vector.Vector2) (distance float64, hits bool) {
	s := b.Sub(a)
	ao := a.Sub(origin)
	length := s.Mag()

	if length == 0 {
		return ao.Mag(), number.IsZero(ao.Normalize().Cross(dir))
	}

	denom := dir.Cross(s)

	if number.IsZero(denom / length) {
		if !number.IsZero(ao.Cross(dir) / math.Max(ao.Mag(), 1)) {
			return 0, false
		}

		da := ao.Dot(dir)
		db := b.Sub(origin).Dot(dir)
		if da < 0 && db < 0 {
			return 0, false
		}

		return math.Max(0, math.Min(da, db)), true
	}

	t := ao.Cross(s) / denom
	u := ao.Cross(dir) / denom

	if t < 0 || u < -segmentSlack || u > 1+segmentSlack {
		return 0, false
	}

	return t, true
}

func PointOnLineSegment(p vector.Vector2, a vector.Vector2, b vector.Vector2) bool {
	ab := b.Sub(a)
	ap := p.Sub(a)
	length := ab.Mag()

	if length == 0 {
		return ap.IsNull()
	}

	// distance from p to the supporting line
	if !number.IsZero(ab.Cross(ap) / length) {
		return false
	}

	projection := ap.Dot(ab) / (length * length)
	return projection >= -number.Epsilon && projection <= 1+number.Epsilon
}
