package handler

import (
	"html/template"
	"net/http"

	"github.com/bytearena/sightline/vizserver/types"
)

var homeTemplate = template.Must(template.New("home").Parse(`<h2>sightline</h2>
<p>POST a scene to /visibility or /visibility.svg</p>
{{range .}}<a href="/visibility/{{.ID}}.svg">{{.ID}}</a> {{len .Result.Visible}} visible, {{len .Result.Obscured}} obscured ({{.CreatedAt.Format "15:04:05"}})<br />
{{end}}`))

func Home(queries *types.QueryMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		homeTemplate.Execute(w, queries.Recent())
	}
}
