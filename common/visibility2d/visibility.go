package visibility2d

import (
	"math"

	"github.com/pkg/errors"

	"github.com/bytearena/sightline/common/utils/number"
	"github.com/bytearena/sightline/common/utils/trigo"
)

// CalculateVisibility partitions segments into those that are the nearest
// segment along at least one ray from the viewpoint, and the rest.
//
// Segments are assumed not to cross each other; see the breakintersections
// package for inputs that do. A segment ending on another one is fine.
func CalculateVisibility(viewpoint Point, segments []Segment) (Result, error) {
	if err := Validate(viewpoint, segments); err != nil {
		return Result{}, err
	}

	pieces, parents := SplitAtJunctions(segments)

	seen, err := sweep(viewpoint, pieces)
	if err != nil {
		if e, ok := errors.Cause(err).(*Error); ok && e.Segment >= 0 {
			e.Segment = parents[e.Segment]
		}

		return Result{}, err
	}

	visible := make([]int, 0, len(seen))
	found := make(map[Segment]bool, len(seen))

	for _, piece := range seen {
		parent := parents[piece]
		key := segments[parent].Key()

		if !found[key] {
			found[key] = true
			visible = append(visible, parent)
		}
	}

	return MakeResult(segments, visible), nil
}

// sweep returns the indices of the segments that are nearest to the
// viewpoint at some point of the sweep, in discovery order.
func sweep(viewpoint Point, segments []Segment) ([]int, error) {
	events, intervals, err := BuildEvents(viewpoint, segments)
	if err != nil {
		return nil, err
	}

	comparator := NewRayComparator(viewpoint, segments, intervals)
	active := NewActiveSet(comparator)

	seen := make(map[Segment]bool)
	visible := make([]int, 0)

	record := func(index int) {
		key := segments[index].Key()
		if !seen[key] {
			seen[key] = true
			visible = append(visible, index)
		}
	}

	// Segments already crossed by the ray at 0° are open before the first
	// event fires.
	comparator.SetAngle(0)
	for index, segment := range segments {
		if intervals[index].Wraps && crossesZero(viewpoint, segment) {
			if err := active.Insert(index); err != nil {
				return nil, err
			}
		}
	}

	if nearest, ok := active.Nearest(); ok {
		record(nearest)
	}

	for _, event := range events {
		comparator.SetAngle(event.Angle)

		if event.Kind == Enter {
			err = active.Insert(event.Segment)
		} else {
			err = active.Remove(event.Segment)
		}

		if err != nil {
			return nil, err
		}

		nearest, ok := active.Nearest()
		if !ok {
			continue
		}

		// only touched at its last endpoint
		if interval := intervals[nearest]; interval.Span() > 0 && number.IsZero(interval.Remaining(event.Angle)) {
			continue
		}

		record(nearest)
	}

	return visible, nil
}

// crossesZero reports whether the segment meets the ray leaving the
// viewpoint towards +x.
func crossesZero(viewpoint Point, segment Segment) bool {
	ay := segment.A.Y - viewpoint.Y
	by := segment.B.Y - viewpoint.Y

	if ay*by > 0 {
		return false
	}

	if ay == by {
		// lying on the horizontal line itself
		return segment.A.X > viewpoint.X || segment.B.X > viewpoint.X
	}

	f := ay / (ay - by)
	x := segment.A.X + f*(segment.B.X-segment.A.X)

	return x > viewpoint.X
}

// Validate fails with a DegenerateGeometry error when the viewpoint or one
// of the segments cannot take part in a sweep.
func Validate(viewpoint Point, segments []Segment) error {
	if !isFinite(viewpoint) {
		return degenerate(-1, "viewpoint "+viewpoint.String()+" is not a finite point")
	}

	for index, segment := range segments {
		if !isFinite(segment.A) || !isFinite(segment.B) {
			return degenerate(index, "segment "+segment.String()+" has a non-finite coordinate")
		}

		if segment.A.Equals(segment.B) {
			return degenerate(index, "segment "+segment.String()+" has zero length")
		}

		if segment.A.Equals(viewpoint) || segment.B.Equals(viewpoint) {
			return degenerate(index, "segment "+segment.String()+" has an endpoint on the viewpoint")
		}

		if trigo.PointOnLineSegment(viewpoint.Vector(), segment.A.Vector(), segment.B.Vector()) {
			return degenerate(index, "viewpoint "+viewpoint.String()+" lies on segment "+segment.String())
		}
	}

	return nil
}

func isFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// MakeResult builds the visible/obscured partition of segments from the
// indices of the visible ones, in discovery order.
func MakeResult(segments []Segment, visible []int) Result {
	result := Result{
		Visible:        make([]Segment, 0, len(visible)),
		Obscured:       make([]Segment, 0, len(segments)-len(visible)),
		VisibleIndices: visible,
	}

	keys := make(map[Segment]bool, len(visible))
	for _, index := range visible {
		result.Visible = append(result.Visible, segments[index])
		keys[segments[index].Key()] = true
	}

	for _, segment := range segments {
		if !keys[segment.Key()] {
			result.Obscured = append(result.Obscured, segment)
		}
	}

	return result
}
