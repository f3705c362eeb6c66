// Package server tracks the terminal matches running on one host so they can
// be stopped together.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/pong/internal/loop"
)

// ErrShuttingDown is returned by Play once Shutdown has started.
var ErrShuttingDown = errors.New("server is shutting down")

// shutdownMessage is shown to players whose match was stopped by Shutdown.
const shutdownMessage = "Server is shutting down. Thanks for playing!"

// Server owns the set of live sessions. Every session plays its own match;
// nothing is shared between them.
type Server struct {
	mu           sync.Mutex
	sessions     map[int]*Handle
	nextID       int
	shuttingDown bool
	logger       *log.Logger
}

// Handle represents one registered session.
type Handle struct {
	ID      int
	User    string
	Started time.Time
	cancel  context.CancelFunc
}

// NewServer creates an empty server. A nil logger discards output.
func NewServer(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{
		sessions: make(map[int]*Handle),
		nextID:   1,
		logger:   logger,
	}
}

// Play registers a session for user and runs a match on r and w until the
// player leaves, ctx is done or the server shuts down.
func (s *Server) Play(ctx context.Context, user string, r io.Reader, w io.Writer, opts loop.Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	handle, err := s.register(user, cancel)
	if err != nil {
		return err
	}
	defer s.unregister(handle.ID)

	if opts.Logger == nil {
		opts.Logger = s.logger.With("session", handle.ID, "user", user)
	}

	if err := loop.Run(ctx, r, w, opts); err != nil {
		return err
	}

	if s.isShuttingDown() {
		fmt.Fprintln(w, shutdownMessage)
	}
	return nil
}

// Active returns the number of running sessions.
func (s *Server) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Shutdown stops every running match and waits for the sessions to
// unregister, up to the given timeout. New sessions are refused from then on.
func (s *Server) Shutdown(timeout time.Duration) {
	s.mu.Lock()
	s.shuttingDown = true
	for _, handle := range s.sessions {
		handle.cancel()
	}
	remaining := len(s.sessions)
	s.mu.Unlock()

	s.logger.Info("stopping matches", "sessions", remaining)

	deadline := time.After(timeout)
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()

	for {
		if s.Active() == 0 {
			return
		}
		select {
		case <-deadline:
			s.logger.Warn("shutdown timed out", "sessions", s.Active())
			return
		case <-ticker.C:
		}
	}
}

func (s *Server) register(user string, cancel context.CancelFunc) (*Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.shuttingDown {
		return nil, ErrShuttingDown
	}

	handle := &Handle{
		ID:      s.nextID,
		User:    user,
		Started: time.Now(),
		cancel:  cancel,
	}
	s.nextID++
	s.sessions[handle.ID] = handle

	s.logger.Info("session registered", "id", handle.ID, "user", user, "active", len(s.sessions))
	return handle, nil
}

func (s *Server) unregister(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle, ok := s.sessions[id]
	if !ok {
		return
	}
	delete(s.sessions, id)

	s.logger.Info("session ended",
		"id", id,
		"user", handle.User,
		"duration", time.Since(handle.Started).Round(time.Second),
		"active", len(s.sessions),
	)
}

func (s *Server) isShuttingDown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shuttingDown
}
