package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tomz197/pong/internal/loop"
	"github.com/tomz197/pong/internal/random"
)

func testOptions(seed uint64) loop.Options {
	return loop.Options{
		Random:       random.NewSource(seed),
		TermSizeFunc: func() (int, int, error) { return 80, 24, nil },
	}
}

// syncBuffer is a bytes.Buffer safe to read while a session writes to it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitActive(t *testing.T, s *Server, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for s.Active() != want {
		if time.Now().After(deadline) {
			t.Fatalf("Active() = %d, want %d", s.Active(), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestPlayUnregistersOnQuit(t *testing.T) {
	s := NewServer(nil)

	err := s.Play(context.Background(), "alice", strings.NewReader("q"), io.Discard, testOptions(1))
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if s.Active() != 0 {
		t.Errorf("Active() = %d after quit, want 0", s.Active())
	}
}

func TestShutdownStopsSessions(t *testing.T) {
	s := NewServer(nil)

	const players = 3
	readers := make([]*io.PipeWriter, players)
	outputs := make([]*syncBuffer, players)
	errs := make(chan error, players)

	for i := range players {
		pr, pw := io.Pipe()
		readers[i] = pw
		outputs[i] = &syncBuffer{}
		go func() {
			errs <- s.Play(context.Background(), "player", pr, outputs[i], testOptions(uint64(i+1)))
		}()
	}
	defer func() {
		for _, pw := range readers {
			pw.Close()
		}
	}()

	waitActive(t, s, players)
	s.Shutdown(2 * time.Second)

	for range players {
		if err := <-errs; err != nil {
			t.Errorf("Play() error = %v", err)
		}
	}
	if s.Active() != 0 {
		t.Errorf("Active() = %d after shutdown, want 0", s.Active())
	}
	for i, out := range outputs {
		if !strings.Contains(out.String(), shutdownMessage) {
			t.Errorf("player %d never saw the shutdown message", i)
		}
	}
}

func TestPlayRefusedAfterShutdown(t *testing.T) {
	s := NewServer(nil)
	s.Shutdown(time.Second)

	err := s.Play(context.Background(), "late", strings.NewReader(""), io.Discard, testOptions(1))
	if !errors.Is(err, ErrShuttingDown) {
		t.Errorf("Play() error = %v, want ErrShuttingDown", err)
	}
}

func TestPlayStopsWithContext(t *testing.T) {
	s := NewServer(nil)
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := s.Play(ctx, "bob", pr, io.Discard, testOptions(2)); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if s.Active() != 0 {
		t.Errorf("Active() = %d, want 0", s.Active())
	}
}
