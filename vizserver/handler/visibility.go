package handler

import (
	"bytes"
	"io"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"

	"github.com/bytearena/sightline/common/scene"
	"github.com/bytearena/sightline/common/visibility2d"
	"github.com/bytearena/sightline/common/visibility2d/breakintersections"
	"github.com/bytearena/sightline/vizserver/types"
)

const maxSceneSize = 1 << 20

var errSceneTooLarge = errors.New("scene is too large")

func readScene(r *http.Request) (*scene.Scene, error) {
	body, err := ioutil.ReadAll(io.LimitReader(r.Body, maxSceneSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "could not read request body")
	}

	if len(body) > maxSceneSize {
		return nil, errors.Wrapf(errSceneTooLarge, "more than %d bytes", maxSceneSize)
	}

	return scene.Parse(bytes.NewReader(body))
}

// runQuery parses the request body as a scene and computes it. With ?split=1
// crossing segments are split first.
func runQuery(r *http.Request) (*types.Query, error) {
	s, err := readScene(r)
	if err != nil {
		return nil, err
	}

	calculate := visibility2d.CalculateVisibility
	if r.URL.Query().Get("split") == "1" {
		calculate = breakintersections.CalculateVisibility
	}

	result, err := calculate(s.Viewpoint, s.Segments)
	if err != nil {
		return nil, errors.Wrap(err, "could not compute visibility")
	}

	return &types.Query{
		ID:        uuid.NewV4().String(),
		Scene:     s,
		Result:    result,
		CreatedAt: time.Now(),
	}, nil
}

func Visibility(queries *types.QueryMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := runQuery(r)
		if err != nil {
			writeError(w, err)
			return
		}

		queries.Add(query)
		writeJSON(w, http.StatusOK, query.Response())
	}
}

func Query(queries *types.QueryMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		query := queries.Get(vars["id"])

		if query == nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "query not found"})
			return
		}

		writeJSON(w, http.StatusOK, query.Response())
	}
}
