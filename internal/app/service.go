// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/okian/plenum/internal/adapters/repository"
	"github.com/okian/plenum/internal/domain/awards"
	"github.com/okian/plenum/internal/domain/model"
	"github.com/okian/plenum/internal/domain/scoring"
	"github.com/okian/plenum/pkg/logger"
	"github.com/okian/plenum/pkg/metrics"
)

// Service implements the API dependencies for the conference system. The
// embedded Store exposes record CRUD directly; evaluation submission and
// award assignment go through the domain components.
type Service struct {
	mu sync.RWMutex

	repository.Store

	recorder *scoring.Recorder
	engine   *awards.Engine

	// Configuration
	seedData bool
	clock    func() time.Time
	newID    func() string

	// State
	started bool

	log logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithSeedData loads the default conference fixtures at start.
func WithSeedData() Option {
	return func(s *Service) {
		s.seedData = true
	}
}

// WithClock sets the time source for record timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithIDGenerator sets the id source for new records.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		clock: time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the record store and the domain components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.log == nil {
		s.log = logger.Get()
	}

	storeOpts := []repository.Option{repository.WithClock(s.clock)}
	if s.newID != nil {
		storeOpts = append(storeOpts, repository.WithIDGenerator(s.newID))
	}
	if s.seedData {
		storeOpts = append(storeOpts, repository.WithSeedData())
	}
	store := repository.NewMemStore(storeOpts...)

	s.Store = store
	s.recorder = scoring.NewRecorder(store)
	s.engine = awards.NewEngine(store, awards.WithLogger(s.log))

	s.started = true
	s.log.Info(ctx, "conference service started", logger.Bool("seedData", s.seedData))

	return nil
}

// Stop shuts down the service. The store is in-memory only, so stopping
// discards nothing durable; the flag exists to mirror the lifecycle the
// HTTP layer expects.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.log.Info(context.Background(), "conference service stopped")
}

// SubmitEvaluation validates a scoring submission, computes the total and
// stores a new immutable evaluation record.
func (s *Service) SubmitEvaluation(ctx context.Context, in scoring.Input) (model.DelegateEvaluation, error) {
	e, err := s.recorder.Record(ctx, in)
	if err != nil {
		return model.DelegateEvaluation{}, err
	}
	metrics.RecordEvaluationRecorded()
	return e, nil
}

// AutoAssignAwards runs the assignment engine for one committee.
func (s *Service) AutoAssignAwards(ctx context.Context, req awards.Request) ([]model.DelegateAward, error) {
	return s.engine.Assign(ctx, req)
}

// GetStats returns service statistics for monitoring and refreshes the
// per-collection record gauges.
func (s *Service) GetStats(ctx context.Context) map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started": s.started,
	}

	if s.started {
		counts := s.Counts(ctx)
		stats["records"] = counts
		for collection, n := range counts {
			metrics.UpdateRecordCount(collection, n)
		}
	}

	return stats
}
