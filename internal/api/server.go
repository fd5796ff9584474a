// Package api exposes a loopback-only HTTP control surface for driving
// windows from external tooling (media keys daemons, scripts).
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"gmplayer/internal/config"
	"gmplayer/internal/window"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

type ControlServer struct {
	mgr     *window.Manager
	cfg     *config.ConfigManager
	log     *slog.Logger
	router  *chi.Mux
	limiter *rate.Limiter
}

func NewControlServer(mgr *window.Manager, cfg *config.ConfigManager, log *slog.Logger) *ControlServer {
	s := &ControlServer{
		mgr:    mgr,
		cfg:    cfg,
		log:    log,
		router: chi.NewRouter(),
		// Burst-tolerant but bounded: external callers poke windows, they
		// don't stream.
		limiter: rate.NewLimiter(rate.Limit(20), 40),
	}
	s.setupRoutes()
	return s
}

func (s *ControlServer) Start(port int) {
	if !s.cfg.GetEnableControlAPI() {
		return
	}

	addr := fmt.Sprintf("127.0.0.1:%d", port)
	s.log.Info("control server listening", "addr", addr)

	go func() {
		// Enforce loopback for the listener itself as an extra layer
		conn, err := net.Listen("tcp", addr)
		if err != nil {
			s.log.Error("control server failed to bind", "error", err)
			return
		}

		if err := http.Serve(conn, s.router); err != nil {
			s.log.Error("control server failed", "error", err)
		}
	}()
}

func (s *ControlServer) setupRoutes() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.securityMiddleware)
	s.router.Use(s.rateLimitMiddleware)

	s.router.Get("/v1/windows", s.handleListWindows)
	s.router.Post("/v1/windows", s.handleCreateWindow)
	s.router.Get("/v1/windows/{label}/state", s.handleGetState)
	s.router.Post("/v1/windows/{label}/show", s.windowAction(s.mgr.Show))
	s.router.Post("/v1/windows/{label}/hide", s.windowAction(s.mgr.Hide))
	s.router.Post("/v1/windows/{label}/toggle", s.windowAction(s.mgr.Toggle))
	s.router.Post("/v1/windows/{label}/close", s.windowAction(s.mgr.Close))
	s.router.Post("/v1/windows/{label}/focus", s.windowAction(s.mgr.Focus))
}

func (s *ControlServer) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *ControlServer) securityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sourceIP, _, _ := net.SplitHostPort(r.RemoteAddr)

		// Feature flag check at runtime: reject even if the listener is
		// still up after a dynamic disable.
		if !s.cfg.GetEnableControlAPI() {
			http.Error(w, "Control API Disabled", http.StatusServiceUnavailable)
			return
		}

		// Localhost enforcement. net.SplitHostPort might return "::1" or
		// "127.0.0.1".
		if sourceIP != "127.0.0.1" && sourceIP != "::1" {
			s.log.Warn("control server rejected external caller", "ip", sourceIP)
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		token := r.Header.Get("X-GMPlayer-Token")
		if token != s.cfg.GetControlAPIToken() {
			s.log.Warn("control server rejected bad token", "path", r.URL.Path)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type CreateWindowRequest struct {
	Label string `json:"label"`
}

type WindowStateResponse struct {
	Label   string `json:"label"`
	Exists  bool   `json:"exists"`
	Visible bool   `json:"visible"`
}

func (s *ControlServer) handleListWindows(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(map[string]interface{}{"windows": s.mgr.Labels()})
}

func (s *ControlServer) handleCreateWindow(w http.ResponseWriter, r *http.Request) {
	var req CreateWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.mgr.CreateFromPreset(req.Label); err != nil {
		if errors.Is(err, window.ErrNoPreset) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"label": req.Label})
}

func (s *ControlServer) handleGetState(w http.ResponseWriter, r *http.Request) {
	label := chi.URLParam(r, "label")
	st, err := s.mgr.GetState(label)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(WindowStateResponse{
		Label:   label,
		Exists:  st.Exists,
		Visible: st.Visible,
	})
}

func (s *ControlServer) windowAction(op func(string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		label := chi.URLParam(r, "label")
		if err := op(label); err != nil {
			if errors.Is(err, window.ErrWindowNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}
