package scene

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/bytearena/sightline/common/utils"
	"github.com/bytearena/sightline/common/visibility2d"
)

// Scene is a viewpoint and the segments seen from it, as read from the
// coordinate text format: a first line "px py", then one "x1 y1 x2 y2" line
// per segment.
type Scene struct {
	Viewpoint visibility2d.Point
	Segments  []visibility2d.Segment
}

// ParseError reports malformed input. Line is 1-based; 0 means the input as
// a whole.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return "malformed input: " + e.Message
	}

	return fmt.Sprintf("malformed input at line %d: %s", e.Line, e.Message)
}

func IsMalformed(err error) bool {
	_, ok := errors.Cause(err).(*ParseError)
	return ok
}

func Parse(r io.Reader) (*Scene, error) {
	reader := bufio.NewReader(r)
	scene := &Scene{
		Segments: make([]visibility2d.Segment, 0),
	}

	lineNumber := 0
	hasViewpoint := false

	for {
		line, err := utils.ReadFullLine(reader)
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, errors.Wrap(err, "could not read scene")
		}

		lineNumber++

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		values, err := parseFields(fields, lineNumber)
		if err != nil {
			return nil, err
		}

		if !hasViewpoint {
			if len(values) != 2 {
				return nil, &ParseError{Line: lineNumber, Message: fmt.Sprintf("viewpoint line must have 2 numbers, got %d", len(values))}
			}

			scene.Viewpoint = visibility2d.MakePoint(values[0], values[1])
			hasViewpoint = true
			continue
		}

		if len(values) != 4 {
			return nil, &ParseError{Line: lineNumber, Message: fmt.Sprintf("segment line must have 4 numbers, got %d", len(values))}
		}

		scene.Segments = append(scene.Segments, visibility2d.MakeSegment(values[0], values[1], values[2], values[3]))
	}

	if !hasViewpoint {
		return nil, &ParseError{Message: "input is empty"}
	}

	return scene, nil
}

func parseFields(fields []string, lineNumber int) ([]float64, error) {
	values := make([]float64, len(fields))

	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, &ParseError{Line: lineNumber, Message: fmt.Sprintf("%q is not a number", field)}
		}

		values[i] = value
	}

	return values, nil
}

func Load(path string) (*Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open scene file %s", path)
	}

	defer file.Close()

	scene, err := Parse(file)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse scene file %s", path)
	}

	return scene, nil
}

// Format writes the scene back in the text format. Numbers keep their full
// precision so that Parse(Format(s)) gives s back.
func Format(w io.Writer, scene *Scene) error {
	if _, err := fmt.Fprintf(w, "%s %s\n", formatFloat(scene.Viewpoint.X), formatFloat(scene.Viewpoint.Y)); err != nil {
		return errors.Wrap(err, "could not write viewpoint")
	}

	for _, segment := range scene.Segments {
		_, err := fmt.Fprintf(
			w,
			"%s %s %s %s\n",
			formatFloat(segment.A.X), formatFloat(segment.A.Y),
			formatFloat(segment.B.X), formatFloat(segment.B.Y),
		)

		if err != nil {
			return errors.Wrap(err, "could not write segment")
		}
	}

	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Box is an axis-aligned bounding box.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

func (b Box) Width() float64 {
	return b.MaxX - b.MinX
}

func (b Box) Height() float64 {
	return b.MaxY - b.MinY
}

// Bounds returns the box around the viewpoint and every segment endpoint,
// widened by margin on each side.
func (s *Scene) Bounds(margin float64) Box {
	return BoundsOf(s.Viewpoint, s.Segments, margin)
}

func BoundsOf(viewpoint visibility2d.Point, segments []visibility2d.Segment, margin float64) Box {
	box := Box{
		MinX: viewpoint.X,
		MinY: viewpoint.Y,
		MaxX: viewpoint.X,
		MaxY: viewpoint.Y,
	}

	for _, segment := range segments {
		for _, point := range segment.GetEndPoints() {
			box.MinX = math.Min(box.MinX, point.X)
			box.MinY = math.Min(box.MinY, point.Y)
			box.MaxX = math.Max(box.MaxX, point.X)
			box.MaxY = math.Max(box.MaxY, point.Y)
		}
	}

	box.MinX -= margin
	box.MinY -= margin
	box.MaxX += margin
	box.MaxY += margin

	return box
}
