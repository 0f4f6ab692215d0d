// Package httpapi exposes the evaluation engine over JSON. It owns all
// decoding, validation-error presentation and persistence wiring; the engine
// itself stays a pure function.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rentcheck/rentcheck/internal/engine"
	"github.com/rentcheck/rentcheck/internal/history"
)

// EvaluationStore is the persistence contract the server needs; the sqlite
// implementation lives in internal/history.
type EvaluationStore interface {
	Save(profile engine.RenterProfile, listing engine.Listing, result engine.EvaluationResult) (*history.Entry, error)
	Get(id string) (*history.Entry, error)
	List(limit, offset int) ([]*history.Entry, error)
}

type Server struct {
	engine *engine.Engine
	store  EvaluationStore
	logger *zap.Logger
}

// NewServer wires the engine and an optional store. A nil store disables
// history endpoints and persistence.
func NewServer(e *engine.Engine, store EvaluationStore, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{engine: e, store: store, logger: logger}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/evaluate", s.handleEvaluate)
		r.Get("/evaluations", s.handleListEvaluations)
		r.Get("/evaluations/{id}", s.handleGetEvaluation)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// EvaluateRequest mirrors the original form shape: renter and listing as
// two structured records.
type EvaluateRequest struct {
	Renter  engine.RenterProfile `json:"renter"`
	Listing engine.Listing       `json:"listing"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	normalizeTags(&req)

	result, err := s.engine.Evaluate(req.Renter, req.Listing)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidProfile) || errors.Is(err, engine.ErrInvalidListing) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.logger.Error("evaluation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "evaluation failed")
		return
	}

	status := http.StatusOK
	if s.store != nil {
		entry, err := s.store.Save(req.Renter, req.Listing, *result)
		if err != nil {
			// The verdict is still valid; persistence failure must not
			// hide it from the caller.
			s.logger.Error("saving evaluation", zap.Error(err))
		} else {
			w.Header().Set("Location", "/api/evaluations/"+entry.ID)
			status = http.StatusCreated
		}
	}

	s.logger.Info("evaluation served",
		zap.Int("score", result.Score),
		zap.String("verdict", string(result.Verdict)),
		zap.String("confidence", string(result.Confidence)),
	)

	writeJSON(w, status, result)
}

type ListEvaluationsResponse struct {
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
	Items  []*history.Entry `json:"items"`
}

func (s *Server) handleListEvaluations(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusNotFound, "history is not enabled")
		return
	}

	limit := queryInt(r, "limit", 20)
	offset := queryInt(r, "offset", 0)

	entries, err := s.store.List(limit, offset)
	if err != nil {
		s.logger.Error("listing evaluations", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "listing evaluations failed")
		return
	}

	writeJSON(w, http.StatusOK, ListEvaluationsResponse{Limit: limit, Offset: offset, Items: entries})
}

func (s *Server) handleGetEvaluation(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusNotFound, "history is not enabled")
		return
	}

	entry, err := s.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			writeError(w, http.StatusNotFound, "evaluation not found")
			return
		}
		s.logger.Error("loading evaluation", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "loading evaluation failed")
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// normalizeTags canonicalizes document spellings so API clients may send
// "bank statement" as well as "BANK_STATEMENT".
func normalizeTags(req *EvaluateRequest) {
	for i, doc := range req.Renter.DocumentsHeld {
		req.Renter.DocumentsHeld[i] = engine.NormalizeDocumentKind(string(doc))
	}
	for i, doc := range req.Listing.RequiredDocuments {
		req.Listing.RequiredDocuments[i] = engine.NormalizeDocumentKind(string(doc))
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
