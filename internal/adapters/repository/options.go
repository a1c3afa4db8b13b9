package repository

import "time"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithClock sets the time source used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *MemStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator sets the id source used for new records.
func WithIDGenerator(newID func() string) Option {
	return func(s *MemStore) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// WithSeedData populates the store with the default conference fixtures:
// portfolios, marking criteria, award tiers, sample records and settings.
func WithSeedData() Option {
	return func(s *MemStore) {
		s.seed = true
	}
}
