package server

import (
	"encoding/json"
	"net/http"

	"delve-server/internal/version"
	"delve-server/pkg/logger"
)

// Server is the HTTP surface: the websocket endpoint plus a couple of
// operational probes.
type Server struct {
	session *Session
	hub     *Hub
}

func New(session *Session, hub *Hub) *Server {
	return &Server{session: session, hub: hub}
}

// Routes builds the mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/version", s.handleVersion)
	return mux
}

// ListenAndServe starts the session goroutine and serves HTTP.
func (s *Server) ListenAndServe(addr string) error {
	go s.session.Run()
	logger.Log.WithField("addr", addr).Info("listening")
	return http.ListenAndServe(addr, s.Routes())
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	go NewClient(s.session, s.hub, conn).Serve()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(version.Info()); err != nil {
		logger.Log.WithError(err).Warn("version encode failed")
	}
}
