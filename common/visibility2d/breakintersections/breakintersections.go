package breakintersections

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/bytearena/sightline/common/utils/trigo"
	"github.com/bytearena/sightline/common/utils/vector"
	"github.com/bytearena/sightline/common/visibility2d"
)

// Piece is a part of an input segment that no other segment crosses.
type Piece struct {
	visibility2d.Segment
	Parent int
}

func toVector(p visibility2d.Point) vector.Vector2 {
	return vector.MakeVector2(p.X, p.Y)
}

func toPoint(v vector.Vector2) visibility2d.Point {
	return visibility2d.MakePoint(v.GetX(), v.GetY())
}

// BreakIntersections splits every segment at the points where other
// segments cross it. Collinear overlaps are left as they are.
func BreakIntersections(segments []visibility2d.Segment) []Piece {
	var output = make([]Piece, 0, len(segments))
	index := visibility2d.NewIndex(segments)

	for i := 0; i < len(segments); i++ {
		start := toVector(segments[i].A)
		end := toVector(segments[i].B)
		intersections := make([]vector.Vector2, 0)

		for _, j := range index.Overlapping(i) {
			point, intersects, colinear, _ := trigo.IntersectionWithLineSegment(
				start, end,
				toVector(segments[j].A), toVector(segments[j].B),
			)

			if !intersects || colinear {
				continue
			}

			if point.Equals(start) || point.Equals(end) || contains(intersections, point) {
				continue
			}

			intersections = append(intersections, point)
		}

		sort.Slice(intersections, func(a, b int) bool {
			return intersections[a].Sub(start).MagSq() < intersections[b].Sub(start).MagSq()
		})

		from := start
		for _, intersection := range intersections {
			output = append(output, Piece{
				Segment: visibility2d.Segment{A: toPoint(from), B: toPoint(intersection)},
				Parent:  i,
			})
			from = intersection
		}

		output = append(output, Piece{
			Segment: visibility2d.Segment{A: toPoint(from), B: segments[i].B},
			Parent:  i,
		})
	}

	return output
}

func contains(points []vector.Vector2, point vector.Vector2) bool {
	for _, candidate := range points {
		if candidate.Equals(point) {
			return true
		}
	}

	return false
}

// CalculateVisibility runs the sweep on the crossing-free pieces of the
// segments: a segment is visible as soon as one of its pieces is.
func CalculateVisibility(viewpoint visibility2d.Point, segments []visibility2d.Segment) (visibility2d.Result, error) {
	if err := visibility2d.Validate(viewpoint, segments); err != nil {
		return visibility2d.Result{}, err
	}

	pieces := BreakIntersections(segments)

	pieceSegments := make([]visibility2d.Segment, len(pieces))
	for i, piece := range pieces {
		pieceSegments[i] = piece.Segment
	}

	result, err := visibility2d.CalculateVisibility(viewpoint, pieceSegments)
	if err != nil {
		return visibility2d.Result{}, errors.Wrap(err, "sweep over split segments")
	}

	seen := make(map[int]bool)
	visible := make([]int, 0)
	for _, index := range result.VisibleIndices {
		parent := pieces[index].Parent
		if !seen[parent] {
			seen[parent] = true
			visible = append(visible, parent)
		}
	}

	return visibility2d.MakeResult(segments, visible), nil
}
