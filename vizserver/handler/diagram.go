package handler

import (
	"bytes"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bytearena/sightline/common/render"
	"github.com/bytearena/sightline/vizserver/types"
)

func writeDiagram(w http.ResponseWriter, query *types.Query, options render.Options) {
	var buf bytes.Buffer

	if err := render.WriteSVG(&buf, query.Scene.Viewpoint, query.Result, options); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("X-Query-Id", query.ID)
	w.Write(buf.Bytes())
}

func VisibilityDiagram(queries *types.QueryMap, options render.Options) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := runQuery(r)
		if err != nil {
			writeError(w, err)
			return
		}

		queries.Add(query)
		writeDiagram(w, query, options)
	}
}

func QueryDiagram(queries *types.QueryMap, options render.Options) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		query := queries.Get(vars["id"])

		if query == nil {
			http.NotFound(w, r)
			return
		}

		writeDiagram(w, query, options)
	}
}
