package vizserver

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytearena/sightline/common/render"
	"github.com/bytearena/sightline/common/visibility2d"
	"github.com/bytearena/sightline/vizserver/types"
)

const stacked = "0 0\n-1 1 1 1\n-2 2 2 2\n"

func newService() (*VizService, http.Handler) {
	viz := NewVizService(":0", render.DefaultOptions())
	viz.SetLogger(ioutil.Discard)

	return viz, viz.Handler()
}

func do(handler http.Handler, method, url, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(method, url, strings.NewReader(body)))

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) types.VisibilityResponse {
	var res types.VisibilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	return res
}

func TestVisibility(t *testing.T) {
	viz, handler := newService()

	rec := do(handler, "POST", "/visibility", stacked)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	res := decode(t, rec)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, visibility2d.MakePoint(0, 0), res.Viewpoint)
	assert.Equal(t, []visibility2d.Segment{visibility2d.MakeSegment(-1, 1, 1, 1)}, res.Visible)
	assert.Equal(t, []visibility2d.Segment{visibility2d.MakeSegment(-2, 2, 2, 2)}, res.Obscured)
	assert.Equal(t, []int{0}, res.VisibleIndices)
	assert.Equal(t, 1, viz.Queries().Size())

	rec = do(handler, "GET", "/visibility/"+res.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, res, decode(t, rec))

	rec = do(handler, "GET", "/visibility/"+res.ID+".svg", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "</svg>")

	rec = do(handler, "GET", "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/visibility/`+res.ID+`.svg"`)
	assert.Contains(t, rec.Body.String(), "1 visible, 1 obscured")
}

func TestVisibilityDiagram(t *testing.T) {
	viz, handler := newService()

	rec := do(handler, "POST", "/visibility.svg", stacked)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "<?xml"))

	id := rec.Header().Get("X-Query-Id")
	require.NotEmpty(t, id)
	assert.NotNil(t, viz.Queries().Get(id))
}

func TestVisibilitySplitCrossings(t *testing.T) {
	_, handler := newService()

	rec := do(handler, "POST", "/visibility?split=1", "0 0\n2 -1 4 1\n2 1 4 -1\n10 -1 10 1\n")
	require.Equal(t, http.StatusOK, rec.Code)

	res := decode(t, rec)
	assert.Equal(t, []int{0, 1}, res.VisibleIndices)
	assert.Len(t, res.Obscured, 1)
}

func TestVisibilityErrors(t *testing.T) {
	_, handler := newService()

	cases := []struct {
		Name   string
		URL    string
		Body   string
		Status int
	}{
		{"empty", "/visibility", "", http.StatusBadRequest},
		{"wrong token count", "/visibility", "0 0\n1 2 3\n", http.StatusBadRequest},
		{"not a number", "/visibility.svg", "0 0\n1 2 x 4\n", http.StatusBadRequest},
		{"viewpoint on a segment", "/visibility", "0 0\n-1 0 1 0\n", http.StatusUnprocessableEntity},
		{"zero length", "/visibility.svg", "0 0\n1 1 1 1\n", http.StatusUnprocessableEntity},
		{"degenerate with split", "/visibility?split=1", "0 0\n0 0 1 1\n", http.StatusUnprocessableEntity},
		{"too large", "/visibility", "0 0\n" + strings.Repeat("1 2 3 4\n", 150000), http.StatusRequestEntityTooLarge},
		{"too large diagram", "/visibility.svg", "0 0\n" + strings.Repeat("1 2 3 4\n", 150000), http.StatusRequestEntityTooLarge},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			rec := do(handler, "POST", c.URL, c.Body)
			assert.Equal(t, c.Status, rec.Code)

			var res map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
			assert.NotEmpty(t, res["error"])
		})
	}
}

func TestUnknownQuery(t *testing.T) {
	_, handler := newService()

	assert.Equal(t, http.StatusNotFound, do(handler, "GET", "/visibility/deadbeef", "").Code)
	assert.Equal(t, http.StatusNotFound, do(handler, "GET", "/visibility/deadbeef.svg", "").Code)
}

func TestHealth(t *testing.T) {
	_, handler := newService()

	rec := do(handler, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"sweep"`)
}
