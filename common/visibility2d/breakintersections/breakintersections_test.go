package breakintersections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytearena/sightline/common/visibility2d"
)

func seg(ax, ay, bx, by float64) visibility2d.Segment {
	return visibility2d.MakeSegment(ax, ay, bx, by)
}

func TestBreakIntersectionsCross(t *testing.T) {
	pieces := BreakIntersections([]visibility2d.Segment{
		seg(-1, 0, 1, 0),
		seg(0, -1, 0, 1),
	})

	assert.Equal(t, []Piece{
		{Segment: seg(-1, 0, 0, 0), Parent: 0},
		{Segment: seg(0, 0, 1, 0), Parent: 0},
		{Segment: seg(0, -1, 0, 0), Parent: 1},
		{Segment: seg(0, 0, 0, 1), Parent: 1},
	}, pieces)
}

func TestBreakIntersectionsTouching(t *testing.T) {
	pieces := BreakIntersections([]visibility2d.Segment{
		seg(0, 0, 2, 0),
		seg(1, 0, 1, 2),
	})

	assert.Equal(t, []Piece{
		{Segment: seg(0, 0, 1, 0), Parent: 0},
		{Segment: seg(1, 0, 2, 0), Parent: 0},
		{Segment: seg(1, 0, 1, 2), Parent: 1},
	}, pieces)
}

func TestBreakIntersectionsUntouched(t *testing.T) {
	segments := []visibility2d.Segment{
		seg(0, 0, 1, 0),
		seg(0, 1, 1, 1),
		seg(0, 0, 2, 0), // collinear overlap is not split
	}

	pieces := BreakIntersections(segments)
	require.Len(t, pieces, len(segments))

	for i, piece := range pieces {
		assert.Equal(t, segments[i], piece.Segment)
		assert.Equal(t, i, piece.Parent)
	}
}

func TestBreakIntersectionsManyCrossings(t *testing.T) {
	pieces := BreakIntersections([]visibility2d.Segment{
		seg(0, 0, 4, 0),
		seg(3, -1, 3, 1),
		seg(1, -1, 1, 1),
	})

	// pieces of the first segment come ordered from its start
	assert.Equal(t, []Piece{
		{Segment: seg(0, 0, 1, 0), Parent: 0},
		{Segment: seg(1, 0, 3, 0), Parent: 0},
		{Segment: seg(3, 0, 4, 0), Parent: 0},
	}, pieces[:3])
	assert.Len(t, pieces, 7)
}

func TestCalculateVisibilityWithCrossings(t *testing.T) {
	segments := []visibility2d.Segment{
		seg(2, -1, 4, 1),
		seg(2, 1, 4, -1),
		seg(10, -1, 10, 1),
	}

	result, err := CalculateVisibility(visibility2d.MakePoint(0, 0), segments)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, result.VisibleIndices)
	assert.Equal(t, []visibility2d.Segment{segments[0], segments[1]}, result.Visible)
	assert.Equal(t, []visibility2d.Segment{segments[2]}, result.Obscured)
}

func TestCalculateVisibilityWithoutCrossings(t *testing.T) {
	segments := []visibility2d.Segment{
		seg(-1, 1, 1, 1),
		seg(-2, 2, 2, 2),
	}

	viewpoint := visibility2d.MakePoint(0, 0)

	split, err := CalculateVisibility(viewpoint, segments)
	require.NoError(t, err)

	plain, err := visibility2d.CalculateVisibility(viewpoint, segments)
	require.NoError(t, err)

	assert.Equal(t, plain, split)
}

func TestCalculateVisibilityDegenerate(t *testing.T) {
	_, err := CalculateVisibility(visibility2d.MakePoint(0, 0), []visibility2d.Segment{
		seg(-1, 0, 1, 0),
	})

	require.Error(t, err)
	assert.True(t, visibility2d.IsDegenerate(err))
}
