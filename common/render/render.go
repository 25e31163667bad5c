package render

import (
	"github.com/bytearena/sightline/common/scene"
	"github.com/bytearena/sightline/common/visibility2d"
)

// Options control the diagram layout, in scene units.
type Options struct {
	Margin        float64
	Scale         float64
	GridStep      float64
	PixelsPerUnit float64
}

func DefaultOptions() Options {
	return Options{
		Margin:        1.0,
		Scale:         0.8,
		GridStep:      1.0,
		PixelsPerUnit: 40,
	}
}

func allSegments(result visibility2d.Result) []visibility2d.Segment {
	segments := make([]visibility2d.Segment, 0, len(result.Visible)+len(result.Obscured))
	segments = append(segments, result.Obscured...)
	segments = append(segments, result.Visible...)

	return segments
}

// labelledPoints lists the viewpoint, then every distinct segment endpoint in
// drawing order.
func labelledPoints(viewpoint visibility2d.Point, result visibility2d.Result) []visibility2d.Point {
	points := []visibility2d.Point{viewpoint}
	seen := map[visibility2d.Point]bool{viewpoint: true}

	for _, segment := range allSegments(result) {
		for _, point := range segment.GetEndPoints() {
			if !seen[point] {
				seen[point] = true
				points = append(points, point)
			}
		}
	}

	return points
}

func bounds(viewpoint visibility2d.Point, result visibility2d.Result, margin float64) scene.Box {
	return scene.BoundsOf(viewpoint, allSegments(result), margin)
}
