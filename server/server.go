package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"video_script_generator/generator"
	"video_script_generator/render"
)

//go:embed web
var embeddedStatic embed.FS

// ScriptGenerator is the narrow boundary to the pipeline: one request in,
// one artifact out. *generator.Generator implements it.
type ScriptGenerator interface {
	Generate(ctx context.Context, req generator.Request) (generator.Result, error)
}

// BootstrapFunc builds a generator for one request from the supplied
// credentials. Production wiring uses generator.Bootstrap; tests inject
// fakes.
type BootstrapFunc func(creds generator.Credentials) (ScriptGenerator, error)

type Server struct {
	bootstrap BootstrapFunc
	// baseline holds server-side credentials resolved at startup. Either
	// key may be empty, in which case the form must supply it per request.
	baseline   generator.Credentials
	genTimeout time.Duration
	staticFS   http.Handler
}

func New(bootstrap BootstrapFunc, baseline generator.Credentials, genTimeout time.Duration) (*Server, error) {
	if bootstrap == nil {
		return nil, errors.New("bootstrap func required")
	}
	if genTimeout <= 0 {
		genTimeout = 8 * time.Minute
	}

	sub, err := fs.Sub(embeddedStatic, "web")
	if err != nil {
		return nil, err
	}

	return &Server{
		bootstrap:  bootstrap,
		baseline:   baseline,
		genTimeout: genTimeout,
		staticFS:   http.FileServer(http.FS(sub)),
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.Handle("/", s.staticFS)
	return recoveryMiddleware(loggingMiddleware(mux))
}

// --- Handlers ---

type generateReq struct {
	Topic           string `json:"topic"`
	DurationMinutes int    `json:"duration_minutes"`
	// Per-request keys, used when the server was started without baseline
	// credentials. Held only for this request.
	ModelAPIKey  string `json:"model_api_key,omitempty"`
	SearchAPIKey string `json:"search_api_key,omitempty"`
}

type generateResp struct {
	Topic           string `json:"topic"`
	DurationMinutes int    `json:"duration_minutes"`
	Title           string `json:"title"`
	Digest          string `json:"digest"`
	Markdown        string `json:"markdown"`
	HTML            string `json:"html"`
}

type healthResp struct {
	Status       string `json:"status"`
	RequiresKeys bool   `json:"requires_keys"`
}

type errorResp struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	requires := s.baseline.ModelAPIKey == "" || s.baseline.SearchAPIKey == ""
	writeJSON(w, http.StatusOK, healthResp{Status: "ok", RequiresKeys: requires})
}

// handleGenerate walks one request through the full lifecycle: validate,
// bootstrap, run, render. Validation and bootstrap failures never reach the
// pipeline, so no paid call happens before they pass.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error(), "config")
		return
	}

	genReq, err := validate(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "config")
		return
	}

	creds := s.baseline
	if req.ModelAPIKey != "" {
		creds.ModelAPIKey = req.ModelAPIKey
	}
	if req.SearchAPIKey != "" {
		creds.SearchAPIKey = req.SearchAPIKey
	}

	gen, err := s.bootstrap(creds)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error(), "config")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.genTimeout)
	defer cancel()

	result, err := gen.Generate(ctx, genReq)
	if err != nil {
		var cfgErr *generator.ConfigError
		if errors.As(err, &cfgErr) {
			writeError(w, http.StatusUnprocessableEntity, err.Error(), "config")
			return
		}
		writeError(w, http.StatusBadGateway, err.Error(), "execution")
		return
	}

	html, err := render.ToHTML(result.Markdown)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error(), "execution")
		return
	}

	writeJSON(w, http.StatusOK, generateResp{
		Topic:           genReq.Topic,
		DurationMinutes: genReq.DurationMinutes,
		Title:           result.Title,
		Digest:          result.Digest,
		Markdown:        result.Markdown,
		HTML:            html,
	})
}

// validate applies the form rules server-side: non-empty topic, duration
// within [1, 15] with 5 as the default.
func validate(req generateReq) (generator.Request, error) {
	genReq := generator.Request{
		Topic:           strings.TrimSpace(req.Topic),
		DurationMinutes: req.DurationMinutes,
	}
	if genReq.Topic == "" {
		return generator.Request{}, errors.New("topic must not be empty")
	}
	if genReq.DurationMinutes == 0 {
		genReq.DurationMinutes = generator.DefaultDuration
	}
	if genReq.DurationMinutes < generator.MinDuration || genReq.DurationMinutes > generator.MaxDuration {
		return generator.Request{}, errors.New("duration must be between 1 and 15 minutes")
	}
	return genReq, nil
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, kind string) {
	writeJSON(w, status, errorResp{Error: msg, Kind: kind})
}
