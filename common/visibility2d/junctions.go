package visibility2d

import (
	"sort"

	"github.com/bytearena/sightline/common/utils/trigo"
)

// SplitAtJunctions cuts every segment at the endpoints of the other segments
// lying strictly inside it, so that segments only meet at shared endpoints.
// It returns the pieces, in input order, along with the index of the
// segment each piece comes from.
func SplitAtJunctions(segments []Segment) ([]Segment, []int) {
	index := NewIndex(segments)
	cuts := make([][]Point, len(segments))

	for j, other := range segments {
		for _, endpoint := range other.GetEndPoints() {
			for _, i := range index.Near(endpoint, 0) {
				if i == j || !inside(endpoint, segments[i]) || containsPoint(cuts[i], endpoint) {
					continue
				}

				cuts[i] = append(cuts[i], endpoint)
			}
		}
	}

	pieces := make([]Segment, 0, len(segments))
	parents := make([]int, 0, len(segments))

	for i, segment := range segments {
		points := cuts[i]
		sort.Slice(points, func(k, l int) bool {
			return squaredDistance(segment.A, points[k]) < squaredDistance(segment.A, points[l])
		})

		from := segment.A
		for _, cut := range points {
			pieces = append(pieces, Segment{A: from, B: cut})
			parents = append(parents, i)
			from = cut
		}

		pieces = append(pieces, Segment{A: from, B: segment.B})
		parents = append(parents, i)
	}

	return pieces, parents
}

func inside(p Point, segment Segment) bool {
	v := p.Vector()
	if v.Equals(segment.A.Vector()) || v.Equals(segment.B.Vector()) {
		return false
	}

	return trigo.PointOnLineSegment(v, segment.A.Vector(), segment.B.Vector())
}

func containsPoint(points []Point, p Point) bool {
	for _, point := range points {
		if point.Vector().Equals(p.Vector()) {
			return true
		}
	}

	return false
}

func squaredDistance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y

	return dx*dx + dy*dy
}
