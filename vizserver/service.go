package vizserver

import (
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/bytearena/sightline/common/healthcheck"
	"github.com/bytearena/sightline/common/render"
	"github.com/bytearena/sightline/common/visibility2d"
	apphandler "github.com/bytearena/sightline/vizserver/handler"
	"github.com/bytearena/sightline/vizserver/types"
)

// Number of queries kept for GET /visibility/{id}.
const keptQueries = 100

type VizService struct {
	addr    string
	options render.Options
	queries *types.QueryMap
	health  *healthcheck.HealthCheckServer
	logger  io.Writer
}

func NewVizService(addr string, options render.Options) *VizService {
	viz := &VizService{
		addr:    addr,
		options: options,
		queries: types.NewQueryMap(keptQueries),
		health:  healthcheck.NewHealthCheckServer(),
		logger:  os.Stdout,
	}

	viz.health.Register("sweep", sweepCheck)

	return viz
}

// SetLogger sets where access logs go.
func (viz *VizService) SetLogger(logger io.Writer) {
	viz.logger = logger
}

func (viz *VizService) Queries() *types.QueryMap {
	return viz.queries
}

func (viz *VizService) Handler() http.Handler {
	logged := func(handler func(w http.ResponseWriter, r *http.Request)) http.Handler {
		return handlers.CombinedLoggingHandler(viz.logger, http.HandlerFunc(handler))
	}

	router := mux.NewRouter()

	router.Handle("/", logged(apphandler.Home(viz.queries))).Methods("GET")

	router.Handle("/visibility", logged(apphandler.Visibility(viz.queries))).Methods("POST")
	router.Handle("/visibility.svg", logged(apphandler.VisibilityDiagram(viz.queries, viz.options))).Methods("POST")

	router.Handle("/visibility/{id:[a-f0-9\\-]+}", logged(apphandler.Query(viz.queries))).Methods("GET")
	router.Handle("/visibility/{id:[a-f0-9\\-]+}.svg", logged(apphandler.QueryDiagram(viz.queries, viz.options))).Methods("GET")

	router.Handle("/health", viz.health).Methods("GET")

	return router
}

func (viz *VizService) ListenAndServe() error {
	log.Println("VIZ Listening on " + viz.addr)

	return http.ListenAndServe(viz.addr, viz.Handler())
}

// sweepCheck runs a scene whose answer is known.
func sweepCheck() (error, bool) {
	front := visibility2d.MakeSegment(-1, 1, 1, 1)

	result, err := visibility2d.CalculateVisibility(visibility2d.MakePoint(0, 0), []visibility2d.Segment{
		front,
		visibility2d.MakeSegment(-2, 2, 2, 2),
	})

	if err != nil {
		return err, false
	}

	if len(result.Visible) != 1 || !result.Visible[0].Equals(front) {
		return errors.New("unexpected visibility for the reference scene"), false
	}

	return nil, true
}
