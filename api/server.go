// Package api - Thin, deterministic API layer
// The API is only responsible for input ingestion, engine orchestration,
// and output serialization. It never performs pricing logic.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"quotecalc/core/engine"
	"quotecalc/core/handoff"
	"quotecalc/core/types"
	"quotecalc/internal/logging"
)

// Server is the API server
type Server struct {
	engine  *engine.Engine
	mailbox handoff.Mailbox
	mux     *http.ServeMux
	version string
}

// NewServer creates a new API server
func NewServer(eng *engine.Engine, mailbox handoff.Mailbox, version string) *Server {
	s := &Server{
		engine:  eng,
		mailbox: mailbox,
		mux:     http.NewServeMux(),
		version: version,
	}
	s.registerRoutes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) registerRoutes() {
	// Calculator endpoints
	s.mux.HandleFunc("GET /options", s.handleOptions)
	s.mux.HandleFunc("POST /estimate", s.handleEstimate)

	// Handoff boundary to the contact-intake flow
	s.mux.HandleFunc("POST /handoff", s.handleHandoffPut)
	s.mux.HandleFunc("POST /handoff/take", s.handleHandoffTake)

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleOptions handles GET /options
func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	table := s.engine.Table()

	resp := OptionsResponse{Currency: table.Currency()}
	for _, c := range types.Categories() {
		resp.Categories = append(resp.Categories, Option{Key: string(c), Label: c.Label()})
	}
	for _, t := range types.Tiers() {
		resp.Tiers = append(resp.Tiers, TierOption{
			Key:      string(t),
			Label:    t.Label(),
			Priced:   t.Priced(),
			Features: table.Features(t),
		})
	}
	for _, sc := range types.Scales() {
		resp.Scales = append(resp.Scales, Option{Key: string(sc), Label: sc.Label()})
	}
	for _, sp := range types.Speeds() {
		resp.Speeds = append(resp.Speeds, Option{Key: string(sp), Label: sp.Label()})
	}
	for _, a := range table.AddOns() {
		resp.AddOns = append(resp.AddOns, AddOnOption{
			Key:               string(a.Key),
			Label:             a.Label,
			Cost:              a.Cost,
			PerUnit:           a.PerUnit,
			FirstUnitIncluded: a.FirstUnitIncluded,
		})
	}

	s.writeJSON(w, resp, http.StatusOK)
}

// handleEstimate handles POST /estimate
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	start := time.Now()

	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, requestID, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	// The engine panics on out-of-enum values by contract; the HTTP
	// boundary screens them so a malformed client cannot crash the server.
	if msg, ok := screenSelection(req.Selection); !ok {
		s.writeError(w, requestID, "VALIDATION_ERROR", msg, http.StatusBadRequest)
		return
	}

	outcome := s.engine.Estimate(req.Selection)

	logging.Debug("estimate computed",
		zap.String("request_id", requestID),
		zap.String("category", string(req.Selection.Category)),
		zap.String("tier", string(req.Selection.Tier)),
		zap.Bool("enterprise", outcome.Enterprise))

	s.writeJSON(w, EstimateResponse{
		RequestID:  requestID,
		Enterprise: outcome.Enterprise,
		Quote:      outcome.Quote,
		DurationMs: time.Since(start).Milliseconds(),
	}, http.StatusOK)
}

// handleHandoffPut handles POST /handoff. The write is best-effort:
// a storage failure is logged and swallowed, and the client still gets
// an accepted response, because the displayed quote never depends on
// the handoff succeeding.
func (s *Server) handleHandoffPut(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var req HandoffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, requestID, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		s.writeError(w, requestID, "VALIDATION_ERROR", "message must not be empty", http.StatusBadRequest)
		return
	}

	payload := handoff.NewPayload(req.Message, req.Locale)
	if err := s.mailbox.Put(r.Context(), payload); err != nil {
		logging.Warn("handoff write failed",
			zap.String("request_id", requestID),
			zap.Error(err))
	}

	s.writeJSON(w, HandoffResponse{Accepted: true}, http.StatusAccepted)
}

// handleHandoffTake handles POST /handoff/take for the contact-intake
// flow. Returns 204 when no payload is pending.
func (s *Server) handleHandoffTake(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	payload, ok, err := s.mailbox.Take(r.Context())
	if err != nil {
		logging.Warn("handoff read failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	s.writeJSON(w, payload, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version": s.version,
		"engine":  "quotecalc",
	}, http.StatusOK)
}

// screenSelection checks the engine preconditions at the HTTP boundary
func screenSelection(sel types.Selection) (string, bool) {
	if !sel.Category.Valid() {
		return "unknown project category: " + string(sel.Category), false
	}
	if !sel.Tier.Valid() {
		return "unknown service tier: " + string(sel.Tier), false
	}
	if !sel.Scale.Valid() {
		return "unknown project scale: " + string(sel.Scale), false
	}
	if !sel.Speed.Valid() {
		return "unknown delivery speed: " + string(sel.Speed), false
	}
	if sel.LanguageCount < 1 {
		return "language count must be >= 1", false
	}
	if sel.IntegrationCount < 0 {
		return "integration count must be >= 0", false
	}
	for _, key := range sel.AddOns {
		if !key.Valid() {
			return "unknown add-on key: " + string(key), false
		}
	}
	return "", true
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, requestID, code, message string, status int) {
	s.writeJSON(w, ErrorResponse{
		RequestID: requestID,
		Code:      code,
		Message:   message,
	}, status)
}
