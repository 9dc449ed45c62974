// Package api exposes the layout pipeline over HTTP.
//
// The API is a thin JSON boundary around the pipeline runner:
//
//	POST /v1/layout    run the full pipeline, return the layout document
//	POST /v1/validate  decode and check a plan, return its problems
//	GET  /healthz      liveness probe
//
// Requests carry a pipeline.Options payload with the plan inline in
// plan_toml. Error responses map the structured error codes onto HTTP
// status codes and echo the code so clients can branch on it.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/errors"
	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/layout"
	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/pipeline"
)

// maxRequestBytes bounds request bodies; plan documents are small.
const maxRequestBytes = 1 << 20

// Server handles HTTP requests against a shared pipeline runner.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// NewServer creates a server around the given runner.
func NewServer(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger}
}

// Routes builds the chi router with all endpoints mounted.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/validate", s.handleValidate)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// layoutResponse is the successful POST /v1/layout payload.
type layoutResponse struct {
	RunID    string         `json:"run_id"`
	PlanHash string         `json:"plan_hash"`
	Room     string         `json:"room"`
	Cached   bool           `json:"cached"`
	Layout   *layout.Result `json:"layout"`
	Warnings int            `json:"warnings"`
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	opts, ok := s.decodeOptions(w, r)
	if !ok {
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, layoutResponse{
		RunID:    result.RunID,
		PlanHash: result.PlanHash,
		Room:     result.Input.Room.Name,
		Cached:   result.CacheInfo.LayoutHit,
		Layout:   result.Layout,
		Warnings: result.Stats.WarningCount,
	})
}

// validateResponse is the POST /v1/validate payload. Valid means the
// plan decoded and every wall could be laid out without fit errors;
// advisory diagnostics do not make a plan invalid.
type validateResponse struct {
	Valid               bool                        `json:"valid"`
	Room                string                      `json:"room,omitempty"`
	Diagnostics         []layout.Diagnostic         `json:"diagnostics,omitempty"`
	FitErrors           []layout.FitError           `json:"fit_errors,omitempty"`
	MinHeightViolations []layout.MinHeightViolation `json:"min_height_violations,omitempty"`
	Warnings            int                         `json:"warnings"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	opts, ok := s.decodeOptions(w, r)
	if !ok {
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	res := result.Layout
	s.writeJSON(w, http.StatusOK, validateResponse{
		Valid:               len(res.FitErrors) == 0,
		Room:                result.Input.Room.Name,
		Diagnostics:         res.Diagnostics,
		FitErrors:           res.FitErrors,
		MinHeightViolations: res.MinHeightViolations,
		Warnings:            result.Stats.WarningCount,
	})
}

// decodeOptions reads the request body into pipeline options, rejecting
// file-path sources so API callers cannot read server-local files.
func (s *Server) decodeOptions(w http.ResponseWriter, r *http.Request) (pipeline.Options, bool) {
	var opts pipeline.Options
	body := http.MaxBytesReader(w, r.Body, maxRequestBytes)
	if err := json.NewDecoder(body).Decode(&opts); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
		return pipeline.Options{}, false
	}
	if opts.PlanPath != "" {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "plan_path is not accepted over the API, send plan_toml"))
		return pipeline.Options{}, false
	}
	if opts.PlanTOML == "" {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "plan_toml is required"))
		return pipeline.Options{}, false
	}
	return opts, true
}

// errorResponse is the JSON error payload.
type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

// statusForCode maps structured error codes onto HTTP status codes.
func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeInternal, "":
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := statusForCode(code)
	if status >= 500 {
		s.logger.Error("request failed", "error", err)
	}
	s.writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  code,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}
