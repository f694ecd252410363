package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"doctor-assistant/internal/core"
	"doctor-assistant/internal/memory"
	"doctor-assistant/pkg"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Server bundles together the dependencies required by HTTP handlers.
type Server struct {
	Chat     *core.ChatService
	Store    *memory.Store
	Validate *validator.Validate
	Log      *zap.SugaredLogger
}

// NewServer constructs a Server.
func NewServer(chat *core.ChatService, store *memory.Store, log *zap.SugaredLogger) *Server {
	return &Server{
		Chat:     chat,
		Store:    store,
		Validate: validator.New(),
		Log:      log,
	}
}

// Router builds the chi routing tree for the server.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/chat", s.handleChat)
	r.Get("/sessions", s.handleSessions)
	r.Get("/sessions/{name}/summary", s.handleSummary)
	r.Get("/healthz", s.handleHealth)
	return r
}

// handleChat processes one conversation turn. Validation problems come
// back as 400; any internal failure surfaces as 500 with the error text
// as detail, matching the all-or-nothing assessment contract.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req pkg.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := s.Validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			http.Error(w, "invalid request: "+verrs.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := s.Chat.Process(r.Context(), req)
	if err != nil {
		s.Log.Errorw("chat turn failed", "name", req.Name, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, resp)
}

// handleSessions returns a diagnostic listing of live conversation
// records.
func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Store.All())
}

// handleSummary returns the localized symptom summary for one patient.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	content, ok := s.Chat.Summary(name)
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, map[string]string{"name": name, "summary": content})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	io.WriteString(w, "ok")
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
