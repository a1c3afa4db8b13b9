package model

import "time"

// MarkingCriteria is a named, point-capped rubric dimension. Evaluations
// reference criteria by id inside their score maps; deleting a criterion
// leaves stored scores keyed by its id in place as historical data.
type MarkingCriteria struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MaxPoints   int    `json:"maxPoints"`
	Description string `json:"description"`
	OrderIndex  int    `json:"orderIndex"`
}

type MarkingCriteriaPatch struct {
	Name        *string `json:"name"`
	MaxPoints   *int    `json:"maxPoints"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"orderIndex"`
}

func (m MarkingCriteria) Merge(patch MarkingCriteriaPatch) MarkingCriteria {
	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.MaxPoints != nil {
		m.MaxPoints = *patch.MaxPoints
	}
	if patch.Description != nil {
		m.Description = *patch.Description
	}
	if patch.OrderIndex != nil {
		m.OrderIndex = *patch.OrderIndex
	}
	return m
}

// DelegateEvaluation is a scoring record for one delegate in one committee.
// Committee is matched by denormalized name, not id. TotalScore is computed
// once at creation from the Scores map and never recomputed afterwards, even
// if the criteria configuration changes.
type DelegateEvaluation struct {
	ID           string         `json:"id"`
	DelegateID   string         `json:"delegateId"`
	DelegateName string         `json:"delegateName"`
	Committee    string         `json:"committee"`
	Scores       map[string]int `json:"scores"`
	TotalScore   int            `json:"totalScore"`
	Comments     string         `json:"comments"`
	EvaluatedBy  string         `json:"evaluatedBy"`
	Timestamp    time.Time      `json:"timestamp"`
}

type DelegateEvaluationPatch struct {
	DelegateID   *string        `json:"delegateId"`
	DelegateName *string        `json:"delegateName"`
	Committee    *string        `json:"committee"`
	Scores       map[string]int `json:"scores"`
	TotalScore   *int           `json:"totalScore"`
	Comments     *string        `json:"comments"`
	EvaluatedBy  *string        `json:"evaluatedBy"`
}

// Merge overwrites present fields only. Patching Scores does not touch
// TotalScore; the stored total is a creation-time snapshot.
func (e DelegateEvaluation) Merge(patch DelegateEvaluationPatch) DelegateEvaluation {
	if patch.DelegateID != nil {
		e.DelegateID = *patch.DelegateID
	}
	if patch.DelegateName != nil {
		e.DelegateName = *patch.DelegateName
	}
	if patch.Committee != nil {
		e.Committee = *patch.Committee
	}
	if patch.Scores != nil {
		e.Scores = patch.Scores
	}
	if patch.TotalScore != nil {
		e.TotalScore = *patch.TotalScore
	}
	if patch.Comments != nil {
		e.Comments = *patch.Comments
	}
	if patch.EvaluatedBy != nil {
		e.EvaluatedBy = *patch.EvaluatedBy
	}
	return e
}
