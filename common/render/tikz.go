package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/bytearena/sightline/common/visibility2d"
)

// WriteTikZ writes a standalone LaTeX document drawing the visible segments
// solid and the obscured ones dotted, over a grid with axes.
func WriteTikZ(w io.Writer, viewpoint visibility2d.Point, result visibility2d.Result, opts Options) error {
	box := bounds(viewpoint, result, opts.Margin)
	out := bufio.NewWriter(w)

	fmt.Fprintln(out, `\documentclass{standalone}`)
	fmt.Fprintln(out, `\usepackage{tikz}`)
	fmt.Fprintln(out, `\begin{document}`)
	fmt.Fprintf(out, "\\begin{tikzpicture}[scale=%s]\n", formatOption(opts.Scale))

	fmt.Fprintf(out, "\\draw[step=%s,gray,thin] (%.2f, %.2f) grid (%.2f, %.2f);\n", formatOption(opts.GridStep), box.MinX, box.MinY, box.MaxX, box.MaxY)

	fmt.Fprintf(out, "\\draw[->] (%.2f,0) -- (%.2f,0) node[right]{x};\n", box.MinX-0.5, box.MaxX+0.5)
	fmt.Fprintf(out, "\\draw[->] (0,%.2f) -- (0,%.2f) node[right]{y};\n", box.MinY-0.5, box.MaxY+0.5)

	for _, segment := range result.Obscured {
		fmt.Fprintf(out, "\\draw[black, very thick, dotted] (%.2f,%.2f) -- (%.2f,%.2f);\n", segment.A.X, segment.A.Y, segment.B.X, segment.B.Y)
	}

	for _, segment := range result.Visible {
		fmt.Fprintf(out, "\\draw[black, thick] (%.2f,%.2f) -- (%.2f,%.2f);\n", segment.A.X, segment.A.Y, segment.B.X, segment.B.Y)
	}

	for _, point := range labelledPoints(viewpoint, result) {
		fmt.Fprintf(out, "\\filldraw (%.2f,%.2f) circle [radius=0.1] node[above right]{\\tiny (%.1f, %.1f)};\n", point.X, point.Y, point.X, point.Y)
	}

	fmt.Fprintf(out, "\\node[above left, font=\\tiny] at (%.2f, %.2f) {p};\n", viewpoint.X, viewpoint.Y)

	fmt.Fprintln(out, `\end{tikzpicture}`)
	fmt.Fprintln(out, `\end{document}`)

	if err := out.Flush(); err != nil {
		return errors.Wrap(err, "could not write TikZ document")
	}

	return nil
}

func formatOption(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.Contains(s, ".") {
		return s
	}

	return s + ".0"
}
