package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytearena/sightline/common/visibility2d"
)

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func stackedScene(t *testing.T) (visibility2d.Point, visibility2d.Result) {
	viewpoint := visibility2d.MakePoint(0, 0)

	result, err := visibility2d.CalculateVisibility(viewpoint, []visibility2d.Segment{
		visibility2d.MakeSegment(-1, 1, 1, 1),
		visibility2d.MakeSegment(-2, 2, 2, 2),
	})
	require.NoError(t, err)

	return viewpoint, result
}

func TestWriteTikZ(t *testing.T) {
	viewpoint, result := stackedScene(t)

	var buf bytes.Buffer
	require.NoError(t, WriteTikZ(&buf, viewpoint, result, DefaultOptions()))

	expected := strings.Join([]string{
		`\documentclass{standalone}`,
		`\usepackage{tikz}`,
		`\begin{document}`,
		`\begin{tikzpicture}[scale=0.8]`,
		`\draw[step=1.0,gray,thin] (-3.00, -1.00) grid (3.00, 3.00);`,
		`\draw[->] (-3.50,0) -- (3.50,0) node[right]{x};`,
		`\draw[->] (0,-1.50) -- (0,3.50) node[right]{y};`,
		`\draw[black, very thick, dotted] (-2.00,2.00) -- (2.00,2.00);`,
		`\draw[black, thick] (-1.00,1.00) -- (1.00,1.00);`,
		`\filldraw (0.00,0.00) circle [radius=0.1] node[above right]{\tiny (0.0, 0.0)};`,
		`\filldraw (-2.00,2.00) circle [radius=0.1] node[above right]{\tiny (-2.0, 2.0)};`,
		`\filldraw (2.00,2.00) circle [radius=0.1] node[above right]{\tiny (2.0, 2.0)};`,
		`\filldraw (-1.00,1.00) circle [radius=0.1] node[above right]{\tiny (-1.0, 1.0)};`,
		`\filldraw (1.00,1.00) circle [radius=0.1] node[above right]{\tiny (1.0, 1.0)};`,
		`\node[above left, font=\tiny] at (0.00, 0.00) {p};`,
		`\end{tikzpicture}`,
		`\end{document}`,
		``,
	}, "\n")

	assert.Equal(t, expected, buf.String())
}

func TestWriteTikZOptions(t *testing.T) {
	viewpoint, result := stackedScene(t)

	var buf bytes.Buffer
	require.NoError(t, WriteTikZ(&buf, viewpoint, result, Options{Margin: 0, Scale: 2, GridStep: 0.5}))

	assert.Contains(t, buf.String(), `\begin{tikzpicture}[scale=2.0]`)
	assert.Contains(t, buf.String(), `\draw[step=0.5,gray,thin] (-2.00, 0.00) grid (2.00, 2.00);`)
}

func TestWriteTikZSharedEndpointsAreLabelledOnce(t *testing.T) {
	viewpoint := visibility2d.MakePoint(0, 0)

	result, err := visibility2d.CalculateVisibility(viewpoint, []visibility2d.Segment{
		visibility2d.MakeSegment(1, 1, 0, 1),
		visibility2d.MakeSegment(0, 1, -1, 1),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTikZ(&buf, viewpoint, result, DefaultOptions()))

	assert.Equal(t, 4, strings.Count(buf.String(), `\filldraw`))
	assert.Equal(t, 1, strings.Count(buf.String(), `{\tiny (0.0, 1.0)}`))
}

func TestWriteTikZError(t *testing.T) {
	viewpoint, result := stackedScene(t)
	assert.Error(t, WriteTikZ(brokenWriter{}, viewpoint, result, DefaultOptions()))
}

func TestWriteSVG(t *testing.T) {
	viewpoint, result := stackedScene(t)

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, viewpoint, result, DefaultOptions()))

	doc := buf.String()
	assert.True(t, strings.HasPrefix(doc, "<?xml"))
	assert.True(t, strings.HasSuffix(doc, "</svg>\n"))
	assert.Contains(t, doc, `width="240" height="160"`)
	assert.Contains(t, doc, "<title>Segments seen from (0.00, 0.00)</title>")

	assert.Equal(t, 1, strings.Count(doc, "stroke-dasharray"))
	assert.Equal(t, 1, strings.Count(doc, visibleStyle))
	assert.Equal(t, 5, strings.Count(doc, "<circle"))
	assert.Contains(t, doc, "(-2.0, 2.0)</text>")
	assert.Contains(t, doc, ">p</text>")
}

func TestWriteSVGError(t *testing.T) {
	viewpoint, result := stackedScene(t)
	assert.Error(t, WriteSVG(brokenWriter{}, viewpoint, result, DefaultOptions()))
}
