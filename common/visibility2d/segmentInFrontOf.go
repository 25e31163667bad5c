package visibility2d

import (
	"math"

	"github.com/bytearena/sightline/common/utils/number"
	"github.com/bytearena/sightline/common/utils/trigo"
	"github.com/bytearena/sightline/common/utils/vector"
)

// Comparator orders two segments, designated by their input index, at the
// current position of the sweep. It returns a negative number when a is in
// front of b.
type Comparator interface {
	Compare(a, b int) int
}

// RayComparator compares segments by the distance from the viewpoint to the
// point where the current sweep ray crosses them.
type RayComparator struct {
	origin    vector.Vector2
	segments  []Segment
	intervals []Interval
	angle     float64
}

func NewRayComparator(viewpoint Point, segments []Segment, intervals []Interval) *RayComparator {
	return &RayComparator{
		origin:    viewpoint.Vector(),
		segments:  segments,
		intervals: intervals,
	}
}

// SetAngle moves the sweep ray, in degrees.
func (c *RayComparator) SetAngle(angle float64) {
	c.angle = angle
}

func (c *RayComparator) Angle() float64 {
	return c.angle
}

// DistanceAt returns the distance from the viewpoint to segment i along the
// ray at the given angle.
func (c *RayComparator) DistanceAt(i int, angle float64) float64 {
	segment := c.segments[i]

	distance, hits := trigo.RaySegmentDistance(
		c.origin,
		vector.MakeUnitVector2FromDegrees(angle),
		segment.A.Vector(),
		segment.B.Vector(),
	)

	if !hits {
		// only reachable through rounding at the very ends of the span
		interval := c.intervals[i]
		return math.Min(interval.Enter.Distance, interval.Exit.Distance)
	}

	return distance
}

// Compare orders a and b by their distance along the current ray. When
// both meet the ray at the same point, a segment ending there sorts first.
// Two segments ending there keep the order they had just before the ray,
// any other pair takes the order it has just after it. Remaining ties go to
// the lower input index.
func (c *RayComparator) Compare(a, b int) int {
	if a == b {
		return 0
	}

	if cmp := compareDistances(c.DistanceAt(a, c.angle), c.DistanceAt(b, c.angle)); cmp != 0 {
		return cmp
	}

	remainingA := c.intervals[a].Remaining(c.angle)
	remainingB := c.intervals[b].Remaining(c.angle)
	endsA := number.IsZero(remainingA)
	endsB := number.IsZero(remainingB)

	var offset float64

	switch {
	case endsA && !endsB:
		return -1
	case endsB && !endsA:
		return 1
	case endsA && endsB:
		offset = -math.Min(c.intervals[a].Elapsed(c.angle), c.intervals[b].Elapsed(c.angle)) / 2
	default:
		offset = math.Min(remainingA, remainingB) / 2
	}

	if offset != 0 {
		if cmp := compareDistances(c.DistanceAt(a, c.angle+offset), c.DistanceAt(b, c.angle+offset)); cmp != 0 {
			return cmp
		}
	}

	if a < b {
		return -1
	}

	return 1
}

func compareDistances(da, db float64) int {
	if number.AlmostEqual(da, db) {
		return 0
	}

	if da < db {
		return -1
	}

	return 1
}
