package healthcheck

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/bytearena/sightline/common/utils"
)

type HealthChecks struct {
	Status bool   `json:"status"`
	Name   string `json:"name"`
	Error  string `json:"error,omitempty"`
}

type HealthCheckHttpResponse struct {
	Checks     []HealthChecks `json:"checks"`
	StatusCode int            `json:"statusCode"`
}

type HealthCheckHandler func() (err error, ok bool)

type namedChecker struct {
	name    string
	checker HealthCheckHandler
}

// HealthCheckServer answers /health with the outcome of every registered
// checker.
type HealthCheckServer struct {
	checkers []namedChecker
	lock     sync.RWMutex
}

func NewHealthCheckServer() *HealthCheckServer {
	return &HealthCheckServer{}
}

func (server *HealthCheckServer) Register(name string, handler HealthCheckHandler) {
	server.lock.Lock()
	defer server.lock.Unlock()

	server.checkers = append(server.checkers, namedChecker{name: name, checker: handler})
}

func (server *HealthCheckServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res := HealthCheckHttpResponse{
		Checks:     make([]HealthChecks, 0),
		StatusCode: http.StatusOK,
	}

	server.lock.RLock()
	checkers := server.checkers
	server.lock.RUnlock()

	for _, checker := range checkers {
		err, ok := checker.checker()
		check := HealthChecks{
			Name:   checker.name,
			Status: err == nil && ok,
		}

		if err != nil {
			check.Error = err.Error()
		}

		if !check.Status {
			res.StatusCode = http.StatusInternalServerError
		}

		res.Checks = append(res.Checks, check)
	}

	data, err := json.Marshal(res)
	utils.Check(err, "Failed to marshal response")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	w.Write(data)
}
