package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/pkg/errors"

	"github.com/bytearena/sightline/common/visibility2d"
)

const (
	gridStyle     = "stroke:lightgray;stroke-width:1"
	axisStyle     = "stroke:gray;stroke-width:1"
	visibleStyle  = "stroke:black;stroke-width:3;stroke-linecap:round"
	obscuredStyle = "stroke:black;stroke-width:2;stroke-dasharray:2,6;stroke-linecap:round"
	pointStyle    = "fill:black"
	labelStyle    = "font-family:sans-serif;font-size:9px;fill:black"
	markerStyle   = "font-family:sans-serif;font-size:11px;font-weight:bold;fill:black"
)

// canvasTransform maps scene units to pixels, y pointing down.
type canvasTransform struct {
	minX, maxY float64
	ppu        float64
}

func (t canvasTransform) x(x float64) int {
	return int(math.Round((x - t.minX) * t.ppu))
}

func (t canvasTransform) y(y float64) int {
	return int(math.Round((t.maxY - y) * t.ppu))
}

// errWriter keeps the first write error, svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (c *errWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}

	n, err := c.w.Write(p)
	c.err = err
	return n, err
}

// WriteSVG draws the same diagram as WriteTikZ as an SVG document.
func WriteSVG(w io.Writer, viewpoint visibility2d.Point, result visibility2d.Result, opts Options) error {
	box := bounds(viewpoint, result, opts.Margin)
	t := canvasTransform{minX: box.MinX, maxY: box.MaxY, ppu: opts.PixelsPerUnit}

	width := t.x(box.MaxX)
	height := t.y(box.MinY)

	out := &errWriter{w: w}
	canvas := svg.New(out)
	canvas.Start(width, height)
	canvas.Title(fmt.Sprintf("Segments seen from (%.2f, %.2f)", viewpoint.X, viewpoint.Y))

	canvas.Rect(0, 0, width, height, "fill:white")

	step := int(math.Round(opts.GridStep * opts.PixelsPerUnit))
	if step > 0 {
		gridX := t.x(math.Ceil(box.MinX/opts.GridStep) * opts.GridStep)
		gridY := t.y(math.Floor(box.MaxY/opts.GridStep) * opts.GridStep)
		canvas.Grid(gridX, gridY, width-gridX, height-gridY, step, gridStyle)
	}

	if box.MinY <= 0 && 0 <= box.MaxY {
		canvas.Line(0, t.y(0), width, t.y(0), axisStyle)
		canvas.Text(width-10, t.y(0)-4, "x", labelStyle)
	}

	if box.MinX <= 0 && 0 <= box.MaxX {
		canvas.Line(t.x(0), 0, t.x(0), height, axisStyle)
		canvas.Text(t.x(0)+4, 10, "y", labelStyle)
	}

	for _, segment := range result.Obscured {
		canvas.Line(t.x(segment.A.X), t.y(segment.A.Y), t.x(segment.B.X), t.y(segment.B.Y), obscuredStyle)
	}

	for _, segment := range result.Visible {
		canvas.Line(t.x(segment.A.X), t.y(segment.A.Y), t.x(segment.B.X), t.y(segment.B.Y), visibleStyle)
	}

	radius := int(math.Max(2, math.Round(0.1*opts.PixelsPerUnit)))
	for _, point := range labelledPoints(viewpoint, result) {
		canvas.Circle(t.x(point.X), t.y(point.Y), radius, pointStyle)
		canvas.Text(t.x(point.X)+radius+2, t.y(point.Y)-radius-2, fmt.Sprintf("(%.1f, %.1f)", point.X, point.Y), labelStyle)
	}

	canvas.Text(t.x(viewpoint.X)-radius-10, t.y(viewpoint.Y)-radius-2, "p", markerStyle)

	canvas.End()

	if out.err != nil {
		return errors.Wrap(out.err, "could not write SVG document")
	}

	return nil
}
