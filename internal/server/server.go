package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/Qaizar-Master/retail-system/internal/catalog"
	"github.com/Qaizar-Master/retail-system/internal/config"
	"github.com/Qaizar-Master/retail-system/internal/dialogue"
	"github.com/Qaizar-Master/retail-system/internal/store"
	"github.com/Qaizar-Master/retail-system/internal/types"
)

type Server struct {
	router       *chi.Mux
	sessions     *store.SessionStore
	gateway      catalog.Gateway
	orchestrator *dialogue.Orchestrator
	cfg          config.Config
}

func NewServer(cfg config.Config, gateway catalog.Gateway) (*Server, error) {
	vocab, err := dialogue.LoadVocab(cfg.VocabFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load vocabulary: %w", err)
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Session-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	s := &Server{
		router:       r,
		sessions:     store.NewSessionStore(cfg.MaxHistory),
		gateway:      gateway,
		orchestrator: dialogue.NewOrchestrator(gateway, vocab, cfg.DefaultUserRef),
		cfg:          cfg,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.router.Get("/api/health", s.handleHealth)
	s.router.Get("/api/products", s.handleProducts)
	s.router.Post("/api/chat", s.handleChat)
	s.router.Get("/api/chat/history", s.handleHistory)
	s.router.Get("/ws/chat", s.handleChatSocket)
}

func (s *Server) Router() http.Handler { return s.router }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.gateway.GetProducts(r.Context())
	if err != nil {
		log.Println("[catalog] product listing failed:", err)
		s.writeError(w, http.StatusBadGateway, "catalog is unavailable right now")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(products)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		s.writeError(w, http.StatusBadRequest, "message is required")
		return
	}
	sid := s.getOrCreateSessionID(r, w)

	sess := s.sessions.Get(sid)
	// Turns for one session never overlap; slot mutation is not safe under
	// concurrent access.
	sess.Turn.Lock()
	defer sess.Turn.Unlock()

	s.sessions.Append(sid, store.Message{Role: "user", Content: req.Message})
	result, err := s.orchestrator.HandleTurn(r.Context(), req.Message, &sess.Context)
	if err != nil {
		log.Printf("[chat] turn failed for session %s: %v", sid, err)
		s.writeError(w, http.StatusBadGateway, "Something went wrong on our side. Please try again.")
		return
	}
	s.sessions.Append(sid, store.Message{Role: "assistant", Content: result.Content})

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Session-Id", sid)
	_ = json.NewEncoder(w).Encode(types.ChatResponse{
		SessionID: sid,
		Reply:     result.Content,
		Options:   result.Options,
		Products:  result.Products,
		Product:   result.Product,
		Agent:     result.Agent,
		Context:   &sess.Context,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	sid := getSessionID(r)
	if sid == "" {
		s.writeError(w, http.StatusBadRequest, "no session")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.sessions.History(sid))
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg})
}

func newSessionID() string {
	return fmt.Sprintf("s_%d", time.Now().UnixNano())
}

// getSessionID retrieves the session ID from cookie, header or query param.
func getSessionID(r *http.Request) string {
	if cookie, err := GetSessionCookie(r); err == nil && cookie != "" {
		return cookie
	}
	if sid := r.Header.Get("X-Session-Id"); sid != "" {
		return sid
	}
	if sid := r.URL.Query().Get("sessionId"); sid != "" {
		return sid
	}
	return ""
}

// getOrCreateSessionID gets the existing session ID or creates a new one,
// setting the cookie.
func (s *Server) getOrCreateSessionID(r *http.Request, w http.ResponseWriter) string {
	sid := getSessionID(r)
	if sid == "" {
		sid = newSessionID()
		log.Printf("[session] creating new session: %s for endpoint: %s", sid, r.URL.Path)
		SetSessionCookie(w, sid)
	}
	return sid
}
