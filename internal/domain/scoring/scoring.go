// Package scoring turns a per-criterion score submission into a stored
// evaluation record.
//
// Submitted points are summed as-is: values are not clamped or rejected
// against the criterion's maxPoints, which is caller-enforced. The stored
// totalScore is a creation-time snapshot and is never recomputed, even if
// the criteria configuration changes later.
package scoring

import (
	"context"
	"errors"
	"strings"

	"github.com/okian/plenum/internal/domain/model"
)

// Validation error kinds.
var (
	ErrMissingDelegateID   = errors.New("missing delegateId")
	ErrMissingDelegateName = errors.New("missing delegateName")
	ErrMissingCommittee    = errors.New("missing committee")
	ErrMissingEvaluatedBy  = errors.New("missing evaluatedBy")
	ErrEmptyScores         = errors.New("scores must contain at least one criterion")
)

// Input is a scoring submission for one delegate in one committee. Scores
// maps criterion id to awarded points.
type Input struct {
	DelegateID   string
	DelegateName string
	Committee    string
	Scores       map[string]int
	Comments     string
	EvaluatedBy  string
}

// Validate reports the first missing required field.
func (in Input) Validate() error {
	switch {
	case strings.TrimSpace(in.DelegateID) == "":
		return ErrMissingDelegateID
	case strings.TrimSpace(in.DelegateName) == "":
		return ErrMissingDelegateName
	case strings.TrimSpace(in.Committee) == "":
		return ErrMissingCommittee
	case strings.TrimSpace(in.EvaluatedBy) == "":
		return ErrMissingEvaluatedBy
	case len(in.Scores) == 0:
		return ErrEmptyScores
	}
	return nil
}

// Total is the exact integer sum of awarded points across the criteria
// present in the map.
func Total(scores map[string]int) int {
	total := 0
	for _, points := range scores {
		total += points
	}
	return total
}

// Sink persists new evaluation records, assigning id and timestamp.
type Sink interface {
	CreateEvaluation(ctx context.Context, e model.DelegateEvaluation) model.DelegateEvaluation
}

// Recorder validates submissions and stores immutable evaluation records.
type Recorder struct {
	sink Sink
}

// NewRecorder creates a recorder writing to sink.
func NewRecorder(sink Sink) *Recorder {
	return &Recorder{sink: sink}
}

// Record computes the total score and stores a new evaluation. Prior
// evaluations for the same delegate are never mutated; repeated submissions
// pile up as history.
func (r *Recorder) Record(ctx context.Context, in Input) (model.DelegateEvaluation, error) {
	if err := in.Validate(); err != nil {
		return model.DelegateEvaluation{}, err
	}

	scores := make(map[string]int, len(in.Scores))
	for id, points := range in.Scores {
		scores[id] = points
	}

	e := model.DelegateEvaluation{
		DelegateID:   in.DelegateID,
		DelegateName: in.DelegateName,
		Committee:    in.Committee,
		Scores:       scores,
		TotalScore:   Total(scores),
		Comments:     in.Comments,
		EvaluatedBy:  in.EvaluatedBy,
	}
	return r.sink.CreateEvaluation(ctx, e), nil
}
