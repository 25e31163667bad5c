package visibility2d

import (
	"math"

	"github.com/bytearena/sightline/common/utils/number"
)

// Project returns the angle and distance of p as seen from the viewpoint.
func Project(viewpoint, p Point) (Projection, error) {
	dx := p.X - viewpoint.X
	dy := p.Y - viewpoint.Y

	if dx == 0 && dy == 0 {
		return Projection{}, degenerate(-1, "point "+p.String()+" coincides with the viewpoint")
	}

	return Projection{
		Angle:    normalizeDegrees(math.Atan2(dy, dx) * 180.0 / math.Pi),
		Distance: math.Hypot(dx, dy),
	}, nil
}

func normalizeDegrees(angle float64) float64 {
	if angle < 0 {
		angle += 360
	}

	// -1e-17 + 360 rounds to 360
	if angle >= 360 {
		angle = 0
	}

	return angle
}

// Classify orders the two endpoint projections of a segment into an
// enter/exit interval. A gap of exactly 180° is treated as not wrapping.
func Classify(a, b Projection) Interval {
	if math.Abs(a.Angle-b.Angle) <= 180 {
		if a.Angle <= b.Angle {
			return Interval{Enter: a, Exit: b}
		}

		return Interval{Enter: b, Exit: a}
	}

	if a.Angle > b.Angle {
		return Interval{Enter: a, Exit: b, Wraps: true}
	}

	return Interval{Enter: b, Exit: a, Wraps: true}
}

func (i Interval) Span() float64 {
	if i.Wraps {
		return 360 - i.Enter.Angle + i.Exit.Angle
	}

	return i.Exit.Angle - i.Enter.Angle
}

// Remaining is the angular width of the interval still ahead of angle.
// angle is expected to lie within the interval.
func (i Interval) Remaining(angle float64) float64 {
	remaining := i.Exit.Angle - angle
	if remaining < 0 {
		if number.IsZero(remaining) {
			return 0
		}
		remaining += 360
	}

	return math.Min(remaining, i.Span())
}

// Elapsed is the angular width of the interval already behind angle.
func (i Interval) Elapsed(angle float64) float64 {
	return math.Max(0, i.Span()-i.Remaining(angle))
}

// Contains reports whether angle lies within the closed interval.
func (i Interval) Contains(angle float64) bool {
	if i.Wraps {
		return angle >= i.Enter.Angle || angle <= i.Exit.Angle
	}

	return angle >= i.Enter.Angle && angle <= i.Exit.Angle
}

func projectSegment(viewpoint Point, segment Segment, index int) (Interval, error) {
	a, err := Project(viewpoint, segment.A)
	if err != nil {
		return Interval{}, degenerate(index, "segment "+segment.String()+" has an endpoint on the viewpoint")
	}

	b, err := Project(viewpoint, segment.B)
	if err != nil {
		return Interval{}, degenerate(index, "segment "+segment.String()+" has an endpoint on the viewpoint")
	}

	return Classify(a, b), nil
}
