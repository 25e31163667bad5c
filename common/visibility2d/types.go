package visibility2d

import (
	"math"

	"github.com/bytearena/sightline/common/utils/number"
	"github.com/bytearena/sightline/common/utils/vector"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func MakePoint(x, y float64) Point {
	return Point{
		x, y,
	}
}

func (p Point) Vector() vector.Vector2 {
	return vector.MakeVector2(p.X, p.Y)
}

func (p Point) Equals(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point) less(other Point) bool {
	if p.X != other.X {
		return p.X < other.X
	}

	return p.Y < other.Y
}

func (p Point) String() string {
	return "(" + number.FloatToStr(p.X, 2) + ", " + number.FloatToStr(p.Y, 2) + ")"
}

// Segment is an unordered pair of points: (a, b) and (b, a) are the same
// segment.
type Segment struct {
	A Point `json:"a"`
	B Point `json:"b"`
}

func MakeSegment(x1, y1, x2, y2 float64) Segment {
	return Segment{
		A: MakePoint(x1, y1),
		B: MakePoint(x2, y2),
	}
}

func (s Segment) Equals(other Segment) bool {
	return s.Key() == other.Key()
}

// Key returns the canonical form of the segment, usable as a map key.
func (s Segment) Key() Segment {
	if s.B.less(s.A) {
		return Segment{A: s.B, B: s.A}
	}

	return s
}

func (s Segment) Length() float64 {
	return math.Hypot(s.B.X-s.A.X, s.B.Y-s.A.Y)
}

func (s Segment) GetEndPoints() [2]Point {
	return [2]Point{s.A, s.B}
}

func (s Segment) String() string {
	return s.A.String() + " -> " + s.B.String()
}

// Projection locates a point relative to the viewpoint: angle in degrees
// in [0, 360), counter-clockwise from the positive x axis.
type Projection struct {
	Angle    float64
	Distance float64
}

// Interval is the angular span a segment covers as seen from the viewpoint.
// A wrapping interval enters at the larger angle and exits, past 360°, at
// the smaller one.
type Interval struct {
	Enter Projection
	Exit  Projection
	Wraps bool
}

type EventKind int

const (
	Enter EventKind = iota
	Exit
)

func (k EventKind) String() string {
	if k == Enter {
		return "enter"
	}

	return "exit"
}

type SweepEvent struct {
	Angle    float64
	Distance float64
	Segment  int // index in the input slice
	Kind     EventKind
}

type Result struct {
	// Visible segments, in discovery order.
	Visible []Segment `json:"visible"`
	// Obscured segments, in input order.
	Obscured []Segment `json:"obscured"`
	// VisibleIndices holds, for every visible segment, the index of its first
	// occurrence in the input.
	VisibleIndices []int `json:"visibleIndices"`
}
