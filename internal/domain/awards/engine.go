// Package awards implements prestige-ordered award auto-assignment.
//
// The engine pairs the committee's active award tiers (ascending orderIndex,
// index 0 most prestigious) positionally with its evaluations ranked by
// totalScore descending. The ranking uses a stable sort keyed only by the
// total, so equal scores keep the store's insertion order.
package awards

import (
	"context"
	"sort"
	"time"

	"github.com/okian/plenum/internal/domain/model"
	"github.com/okian/plenum/pkg/logger"
	"github.com/okian/plenum/pkg/metrics"
)

// Store is the slice of the record store the engine needs.
type Store interface {
	EvaluationsByCommittee(ctx context.Context, committeeName string) []model.DelegateEvaluation
	ActiveAwardTypes(ctx context.Context) []model.AwardType
	AwardsByCommittee(ctx context.Context, committeeID string) []model.DelegateAward
	CreateAward(ctx context.Context, a model.DelegateAward) model.DelegateAward
	DeleteAward(ctx context.Context, id string) error
}

// Request describes one assignment run. Evaluations are matched by the
// denormalized committee name; existing awards by committee id.
type Request struct {
	CommitteeID   string
	CommitteeName string
	AssignedBy    string
	Force         bool
}

// Engine runs award auto-assignment against a store.
type Engine struct {
	store Store
	log   logger.Logger
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithLogger sets a custom logger for the engine.
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// NewEngine creates an assignment engine backed by store.
func NewEngine(store Store, opts ...Option) *Engine {
	e := &Engine{store: store}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Assign grants the N most prestigious active award tiers to the N
// top-scoring delegates evaluated in the committee.
//
// If the committee already has awards and req.Force is false, the run fails
// with ErrAwardsExist before any write, leaving the existing set intact.
// Otherwise all existing awards for the committee are deleted and the new
// set is created in one pass. Empty evaluation or tier lists yield an empty
// result, not an error.
func (e *Engine) Assign(ctx context.Context, req Request) ([]model.DelegateAward, error) {
	start := time.Now()
	metrics.RecordAwardRun()

	evaluations := e.store.EvaluationsByCommittee(ctx, req.CommitteeName)
	sort.SliceStable(evaluations, func(i, j int) bool {
		return evaluations[i].TotalScore > evaluations[j].TotalScore
	})

	tiers := e.store.ActiveAwardTypes(ctx)

	existing := e.store.AwardsByCommittee(ctx, req.CommitteeID)
	if len(existing) > 0 && !req.Force {
		metrics.RecordAwardConflict()
		return nil, ErrAwardsExist
	}
	for _, award := range existing {
		if err := e.store.DeleteAward(ctx, award.ID); err != nil {
			return nil, err
		}
	}

	// Positional pairing: tier i goes to evaluation i. A delegate already
	// assigned in this pass is skipped without pulling lower ranks up; this
	// only fires when the evaluation list carries duplicate delegate ids.
	assigned := make(map[string]bool)
	var created []model.DelegateAward
	for i, tier := range tiers {
		if i >= len(evaluations) {
			break
		}
		evaluation := evaluations[i]
		if assigned[evaluation.DelegateID] {
			continue
		}
		award := e.store.CreateAward(ctx, model.DelegateAward{
			CommitteeID:    req.CommitteeID,
			CommitteeName:  req.CommitteeName,
			AwardTypeID:    tier.ID,
			AwardTypeName:  tier.Name,
			DelegateID:     evaluation.DelegateID,
			DelegateName:   evaluation.DelegateName,
			IsAutoAssigned: 1,
			AssignedBy:     req.AssignedBy,
		})
		assigned[evaluation.DelegateID] = true
		created = append(created, award)
	}

	metrics.RecordAwardsAssigned(len(created))
	metrics.RecordAssignmentDuration(float64(time.Since(start).Milliseconds()))

	if e.log != nil {
		e.log.Info(ctx, "auto-assigned awards",
			logger.String("committee", req.CommitteeName),
			logger.Int("evaluations", len(evaluations)),
			logger.Int("awards", len(created)),
		)
	}

	return created, nil
}
