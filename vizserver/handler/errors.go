package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/bytearena/sightline/common/scene"
	"github.com/bytearena/sightline/common/visibility2d"
)

type errorResponse struct {
	Error string `json:"error"`
}

func statusFor(err error) int {
	switch {
	case errors.Cause(err) == errSceneTooLarge:
		return http.StatusRequestEntityTooLarge
	case scene.IsMalformed(err):
		return http.StatusBadRequest
	case visibility2d.IsDegenerate(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
