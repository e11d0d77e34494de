// Package store is the in-memory source of truth for projects, tasks and
// employees. It keeps the references between them consistent and answers
// every request asynchronously after a fixed simulated latency.
package store

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yukikurage/project-tracker/internal/constants"
	apierrors "github.com/yukikurage/project-tracker/internal/errors"
	"github.com/yukikurage/project-tracker/internal/models"
)

// Store owns the three entity collections. Requests are queued and executed
// one at a time, in the order they were issued, by a single worker goroutine.
// Each request becomes due a fixed delay after it was issued.
type Store struct {
	mu        sync.RWMutex
	projects  []models.Project
	tasks     []models.Task
	employees []models.Employee

	delay         time.Duration
	newID         func() uuid.UUID
	maxIDAttempts int
	logger        *slog.Logger

	qmu       sync.Mutex
	queue     []job
	closed    bool
	wake      chan struct{}
	quit      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

type job struct {
	op   string
	due  time.Time
	run  func()
	fail func(error)
}

// Option configures a Store
type Option func(*Store)

// WithDelay sets the simulated latency applied to every request
func WithDelay(d time.Duration) Option {
	return func(s *Store) {
		if d < 0 {
			d = 0
		}
		s.delay = d
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIDGenerator replaces uuid.New as the id source
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithMaxIDAttempts bounds how many fresh ids are drawn before a create
// fails with a conflict
func WithMaxIDAttempts(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxIDAttempts = n
		}
	}
}

// New creates a Store and starts its worker. Call Close to stop it.
func New(opts ...Option) *Store {
	s := &Store{
		delay:         constants.DefaultStoreDelayMS * time.Millisecond,
		newID:         uuid.New,
		maxIDAttempts: constants.MaxIDAttempts,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		wake:          make(chan struct{}, 1),
		quit:          make(chan struct{}),
		stopped:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	go s.run()
	return s
}

// Close stops the worker. Requests still queued, and any issued afterwards,
// fail with SERVICE_UNAVAILABLE. Close blocks until the worker has exited.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		s.qmu.Lock()
		s.closed = true
		s.qmu.Unlock()
		close(s.quit)
	})
	<-s.stopped
}

// Delay returns the simulated latency applied to every request
func (s *Store) Delay() time.Duration {
	return s.delay
}

// submit queues fn and returns a future resolved with its result. fn runs on
// the worker goroutine with the state lock held.
func submit[T any](s *Store, op string, fn func() (T, error)) *Future[T] {
	f := newFuture[T]()
	j := job{
		op:  op,
		due: time.Now().Add(s.delay),
		run: func() {
			start := time.Now()
			s.mu.Lock()
			value, err := fn()
			s.mu.Unlock()
			s.logResult(op, start, err)
			f.resolve(value, err)
		},
		fail: func(err error) {
			var zero T
			f.resolve(zero, err)
		},
	}

	s.qmu.Lock()
	if s.closed {
		s.qmu.Unlock()
		j.fail(errStoreClosed())
		return f
	}
	s.queue = append(s.queue, j)
	s.qmu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
	return f
}

func (s *Store) run() {
	defer close(s.stopped)

	for {
		select {
		case <-s.quit:
			s.failPending()
			return
		default:
		}

		j, ok := s.next()
		if !ok {
			s.failPending()
			return
		}

		if wait := time.Until(j.due); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-s.quit:
				timer.Stop()
				j.fail(errStoreClosed())
				s.failPending()
				return
			}
		}
		j.run()
	}
}

// next pops the oldest queued job, waiting for one if the queue is empty.
// It reports false once the store is closing.
func (s *Store) next() (job, bool) {
	for {
		s.qmu.Lock()
		if len(s.queue) > 0 {
			j := s.queue[0]
			s.queue[0] = job{}
			s.queue = s.queue[1:]
			s.qmu.Unlock()
			return j, true
		}
		s.qmu.Unlock()

		select {
		case <-s.wake:
		case <-s.quit:
			return job{}, false
		}
	}
}

func (s *Store) failPending() {
	s.qmu.Lock()
	pending := s.queue
	s.queue = nil
	s.qmu.Unlock()

	for _, j := range pending {
		j.fail(errStoreClosed())
	}
	if len(pending) > 0 {
		s.logger.Warn("store closed with pending requests", "count", len(pending))
	}
}

func (s *Store) logResult(op string, start time.Time, err error) {
	if err != nil {
		s.logger.Debug("store request failed",
			"op", op,
			"duration", time.Since(start),
			"error", err,
		)
		return
	}
	s.logger.Debug("store request completed",
		"op", op,
		"duration", time.Since(start),
	)
}

// generateID draws ids until one is unused, giving up after maxIDAttempts
func (s *Store) generateID(kind string, exists func(uuid.UUID) bool) (uuid.UUID, error) {
	for attempt := 0; attempt < s.maxIDAttempts; attempt++ {
		id := s.newID()
		if id != uuid.Nil && !exists(id) {
			return id, nil
		}
		s.logger.Warn("generated id already in use", "kind", kind, "id", id, "attempt", attempt+1)
	}
	return uuid.Nil, apierrors.Conflict(kind + " with this id already exists")
}

func errStoreClosed() error {
	return apierrors.Unavailable("store is closed")
}

func invalid(err error) error {
	return apierrors.Validation(err.Error(), err)
}

// truncate copies at most limit items; limit <= 0 means all of them
func truncate[T any](items []T, limit int, clone func(T) T) []T {
	n := len(items)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = clone(items[i])
	}
	return out
}

func identity[T any](v T) T { return v }
