// Package saver serializes list snapshots to storage in the background.
//
// At most one write runs at a time. A snapshot submitted while a write is in
// flight waits as the single pending snapshot; a newer submission replaces
// it. Writes therefore land in submission order and the last one to finish
// is always the newest list handed to Submit.
package saver

import (
	"context"
	"sync"

	"github.com/idilsaglam/tada/internal/log"
	"github.com/idilsaglam/tada/internal/todo"
)

// WriteFunc persists one snapshot.
type WriteFunc func(ctx context.Context, l todo.List) error

var logger = log.GetLogger("saver")

type Saver struct {
	write WriteFunc

	mu        sync.Mutex
	pending   todo.List
	hasWork   bool
	submitted uint64 // sequence of the newest Submit
	written   uint64 // sequence of the newest finished write
	failures  int
	lastErr   error
	closed    bool
	changed   *sync.Cond

	wake chan struct{}
	done chan struct{}
}

// New starts the background writer.
func New(write WriteFunc) *Saver {
	s := &Saver{
		write: write,
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	s.changed = sync.NewCond(&s.mu)
	go s.loop()
	return s
}

// Submit queues l for writing and returns immediately.
func (s *Saver) Submit(l todo.List) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		logger.Warn().Int("items", len(l)).Msg("submit after close dropped")
		return
	}
	s.pending = l
	s.hasWork = true
	s.submitted++
	select {
	case s.wake <- struct{}{}:
	default:
	}
	s.mu.Unlock()
}

func (s *Saver) loop() {
	defer close(s.done)
	for range s.wake {
		for {
			s.mu.Lock()
			if !s.hasWork {
				s.mu.Unlock()
				break
			}
			l, seq := s.pending, s.submitted
			s.pending, s.hasWork = nil, false
			s.mu.Unlock()

			err := s.write(context.Background(), l)

			s.mu.Lock()
			s.written = seq
			if err != nil {
				s.failures++
				s.lastErr = err
			} else {
				s.lastErr = nil
			}
			s.changed.Broadcast()
			s.mu.Unlock()

			if err != nil {
				logger.Error().Err(err).Int("items", len(l)).Msg("save failed")
			} else {
				logger.Debug().Int("items", len(l)).Msg("saved")
			}
		}
	}
}

// Flush blocks until every snapshot submitted before the call has been
// written or superseded, or ctx ends. It returns the outcome of the most
// recent write.
func (s *Saver) Flush(ctx context.Context) error {
	s.mu.Lock()
	target := s.submitted
	s.mu.Unlock()

	stop := context.AfterFunc(ctx, func() {
		s.mu.Lock()
		s.changed.Broadcast()
		s.mu.Unlock()
	})
	defer stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	for s.written < target {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.changed.Wait()
	}
	return s.lastErr
}

// Close flushes and stops the writer. Later Submits are dropped.
func (s *Saver) Close(ctx context.Context) error {
	err := s.Flush(ctx)

	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.wake)
	}
	s.mu.Unlock()

	select {
	case <-s.done:
	case <-ctx.Done():
		if err == nil {
			err = ctx.Err()
		}
	}
	return err
}

// Failures reports how many writes have failed so far.
func (s *Saver) Failures() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failures
}
