package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rubiojr/fuelcalc/internal/fuelcalc"
	"github.com/rubiojr/fuelcalc/internal/tools"
	"github.com/rubiojr/fuelcalc/pkg/api"
)

const maxBodyBytes = 1 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, tools.Health())
}

func (s *Server) handleTools(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, http.StatusOK, tools.Info())
}

func (s *Server) handleCall(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	args, err := decodeArgs(w, r)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.Call(name, args)
	if err != nil {
		s.writeToolError(w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, res)
}

// decodeArgs reads the JSON object in the request body. An empty body means no arguments.
func decodeArgs(w http.ResponseWriter, r *http.Request) (tools.Args, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()

	var args tools.Args
	if err := dec.Decode(&args); err != nil {
		if errors.Is(err, io.EOF) {
			return tools.Args{}, nil
		}
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	return args, nil
}

func (s *Server) writeToolError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, fuelcalc.ErrValidation):
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, tools.ErrUnknownTool):
		writeErrorResponse(w, http.StatusNotFound, err.Error())
	default:
		s.log.Error("tool call failed", "error", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Internal server error")
	}
}

func writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	writeJSONResponse(w, statusCode, api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
