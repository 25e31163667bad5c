package visibility2d

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"
)

// Bounding boxes are padded so that axis-aligned segments and touching
// boxes still intersect.
const boundsTolerance = 0.000001

type indexedSegment struct {
	index   int
	segment Segment
	rect    rtreego.Rect
}

func (s *indexedSegment) Bounds() rtreego.Rect {
	return s.rect
}

// Index is an R-tree over segments, queried by input index.
type Index struct {
	tree    *rtreego.Rtree
	entries []*indexedSegment
}

func NewIndex(segments []Segment) *Index {
	entries := make([]*indexedSegment, len(segments))
	spatials := make([]rtreego.Spatial, len(segments))

	for i, segment := range segments {
		entries[i] = &indexedSegment{
			index:   i,
			segment: segment,
			rect:    segmentBoundingBox(segment),
		}
		spatials[i] = entries[i]
	}

	return &Index{
		tree:    rtreego.NewTree(2, 25, 50, spatials...),
		entries: entries,
	}
}

func segmentBoundingBox(segment Segment) rtreego.Rect {
	minX := math.Min(segment.A.X, segment.B.X) - boundsTolerance
	minY := math.Min(segment.A.Y, segment.B.Y) - boundsTolerance
	maxX := math.Max(segment.A.X, segment.B.X) + boundsTolerance
	maxY := math.Max(segment.A.Y, segment.B.Y) + boundsTolerance

	// lengths are always positive thanks to the padding
	rect, _ := rtreego.NewRect(rtreego.Point{minX, minY}, []float64{maxX - minX, maxY - minY})
	return rect
}

func (idx *Index) Len() int {
	return len(idx.entries)
}

// Near returns the indices, ascending, of the segments whose bounding box
// comes within radius of p.
func (idx *Index) Near(p Point, radius float64) []int {
	return idx.search(rtreego.Point{p.X, p.Y}.ToRect(radius + boundsTolerance))
}

// Overlapping returns the indices, ascending, of the segments whose bounding
// box meets the one of segment i, i excluded. Only those can cross it.
func (idx *Index) Overlapping(i int) []int {
	found := idx.search(idx.entries[i].rect)

	res := make([]int, 0, len(found))
	for _, j := range found {
		if j != i {
			res = append(res, j)
		}
	}

	return res
}

// Duplicates returns the pairs of segments that are the same segment,
// possibly with their endpoints swapped, ordered by first index.
func (idx *Index) Duplicates() [][2]int {
	res := make([][2]int, 0)

	for i, entry := range idx.entries {
		for _, j := range idx.Overlapping(i) {
			if j > i && idx.entries[j].segment.Equals(entry.segment) {
				res = append(res, [2]int{i, j})
			}
		}
	}

	return res
}

func (idx *Index) search(rect rtreego.Rect) []int {
	spatials := idx.tree.SearchIntersect(rect)

	res := make([]int, len(spatials))
	for i, spatial := range spatials {
		res[i] = spatial.(*indexedSegment).index
	}

	sort.Ints(res)
	return res
}
