// Package server tracks the game sessions of a multi-connection host so that
// they can be told to wind down together. Every session owns its own game;
// nothing else is shared.
package server

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Handle is one registered session.
type Handle struct {
	ID       int
	Username string

	shutdown chan struct{}
	once     sync.Once
}

// ShutdownCh is closed when the host is going down.
func (h *Handle) ShutdownCh() <-chan struct{} {
	return h.shutdown
}

func (h *Handle) notify() {
	h.once.Do(func() { close(h.shutdown) })
}

// Server is the session registry. Safe for concurrent use.
type Server struct {
	mu       sync.RWMutex
	sessions map[int]*Handle
	nextID   int
	closing  bool
	logger   *log.Logger
}

// NewServer creates an empty registry.
func NewServer(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		sessions: make(map[int]*Handle),
		nextID:   1,
		logger:   logger.With("component", "server"),
	}
}

// Register adds a session. Sessions registered during shutdown are notified at once.
func (s *Server) Register(username string) *Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := &Handle{ID: s.nextID, Username: username, shutdown: make(chan struct{})}
	s.nextID++
	s.sessions[h.ID] = h
	if s.closing {
		h.notify()
	}
	s.logger.Debug("session registered", "id", h.ID, "user", username, "sessions", len(s.sessions))
	return h
}

// Unregister removes a session.
func (s *Server) Unregister(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return
	}
	delete(s.sessions, id)
	s.logger.Debug("session unregistered", "id", id, "sessions", len(s.sessions))
}

// Count returns the number of live sessions.
func (s *Server) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Shutdown notifies every session and waits until all of them unregistered
// or the timeout passed. It reports whether every session left in time.
func (s *Server) Shutdown(timeout time.Duration) bool {
	s.mu.Lock()
	s.closing = true
	for _, h := range s.sessions {
		h.notify()
	}
	s.mu.Unlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if s.Count() == 0 {
			return true
		}
		select {
		case <-deadline:
			s.logger.Warn("sessions still open at shutdown", "sessions", s.Count())
			return false
		case <-ticker.C:
		}
	}
}
