// Package repository defines the record store contract and its in-memory
// implementation.
package repository

import (
	"context"

	"github.com/okian/plenum/internal/domain/model"
)

// Store provides keyed access to every record collection. Creates assign a
// fresh id (and a timestamp where the record carries one); updates apply an
// explicit shallow merge of the present patch fields; reads that back the
// ranking logic preserve insertion order.
type Store interface {
	// Portfolios are listed country-first, then by name.
	Portfolios(ctx context.Context) []model.Portfolio
	Portfolio(ctx context.Context, id string) (model.Portfolio, error)
	CreatePortfolio(ctx context.Context, p model.Portfolio) model.Portfolio
	UpdatePortfolio(ctx context.Context, id string, patch model.PortfolioPatch) (model.Portfolio, error)
	DeletePortfolio(ctx context.Context, id string) error

	Delegates(ctx context.Context) []model.Delegate
	Delegate(ctx context.Context, id string) (model.Delegate, error)
	CreateDelegate(ctx context.Context, d model.Delegate) model.Delegate
	UpdateDelegate(ctx context.Context, id string, patch model.DelegatePatch) (model.Delegate, error)
	DeleteDelegate(ctx context.Context, id string) error

	Secretariat(ctx context.Context) []model.Secretariat
	CreateSecretariat(ctx context.Context, s model.Secretariat) model.Secretariat
	UpdateSecretariat(ctx context.Context, id string, patch model.SecretariatPatch) (model.Secretariat, error)
	DeleteSecretariat(ctx context.Context, id string) error

	Committees(ctx context.Context) []model.Committee
	CreateCommittee(ctx context.Context, c model.Committee) model.Committee
	UpdateCommittee(ctx context.Context, id string, patch model.CommitteePatch) (model.Committee, error)
	DeleteCommittee(ctx context.Context, id string) error

	ExecutiveBoard(ctx context.Context) []model.ExecutiveBoard
	CreateExecutiveBoard(ctx context.Context, e model.ExecutiveBoard) model.ExecutiveBoard
	UpdateExecutiveBoard(ctx context.Context, id string, patch model.ExecutiveBoardPatch) (model.ExecutiveBoard, error)
	DeleteExecutiveBoard(ctx context.Context, id string) error

	// Tasks are listed pending-first, then high-priority-first.
	Tasks(ctx context.Context) []model.Task
	CreateTask(ctx context.Context, t model.Task) model.Task
	UpdateTask(ctx context.Context, id string, patch model.TaskPatch) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error

	Logistics(ctx context.Context) []model.Logistics
	CreateLogistics(ctx context.Context, l model.Logistics) model.Logistics
	UpdateLogistics(ctx context.Context, id string, patch model.LogisticsPatch) (model.Logistics, error)
	DeleteLogistics(ctx context.Context, id string) error

	// Marketing campaigns are listed newest start date first.
	Marketing(ctx context.Context) []model.Marketing
	CreateMarketing(ctx context.Context, m model.Marketing) model.Marketing
	UpdateMarketing(ctx context.Context, id string, patch model.MarketingPatch) (model.Marketing, error)
	DeleteMarketing(ctx context.Context, id string) error

	// Sponsorships are listed by amount, descending.
	Sponsorships(ctx context.Context) []model.Sponsorship
	CreateSponsorship(ctx context.Context, s model.Sponsorship) model.Sponsorship
	UpdateSponsorship(ctx context.Context, id string, patch model.SponsorshipPatch) (model.Sponsorship, error)
	DeleteSponsorship(ctx context.Context, id string) error

	// Updates are listed newest first.
	Updates(ctx context.Context) []model.Update
	CreateUpdate(ctx context.Context, u model.Update) model.Update
	UpdateUpdate(ctx context.Context, id string, patch model.UpdatePatch) (model.Update, error)
	DeleteUpdate(ctx context.Context, id string) error

	// Evaluations are listed newest first for the API.
	// EvaluationsByCommittee matches the denormalized committee name and
	// returns records in insertion order; the ranking tie-break depends on it.
	Evaluations(ctx context.Context) []model.DelegateEvaluation
	EvaluationsByCommittee(ctx context.Context, committeeName string) []model.DelegateEvaluation
	CreateEvaluation(ctx context.Context, e model.DelegateEvaluation) model.DelegateEvaluation
	UpdateEvaluation(ctx context.Context, id string, patch model.DelegateEvaluationPatch) (model.DelegateEvaluation, error)
	DeleteEvaluation(ctx context.Context, id string) error

	// MarkingCriteria are listed ascending by orderIndex.
	MarkingCriteria(ctx context.Context) []model.MarkingCriteria
	CreateMarkingCriteria(ctx context.Context, m model.MarkingCriteria) model.MarkingCriteria
	UpdateMarkingCriteria(ctx context.Context, id string, patch model.MarkingCriteriaPatch) (model.MarkingCriteria, error)
	DeleteMarkingCriteria(ctx context.Context, id string) error

	// AwardTypes are listed ascending by orderIndex; ActiveAwardTypes keeps
	// the same order and drops inactive tiers.
	AwardTypes(ctx context.Context) []model.AwardType
	ActiveAwardTypes(ctx context.Context) []model.AwardType
	CreateAwardType(ctx context.Context, a model.AwardType) model.AwardType
	UpdateAwardType(ctx context.Context, id string, patch model.AwardTypePatch) (model.AwardType, error)
	DeleteAwardType(ctx context.Context, id string) error

	// Awards are listed newest first; AwardsByCommittee orders by the
	// award type's orderIndex with unknown types last.
	Awards(ctx context.Context) []model.DelegateAward
	AwardsByCommittee(ctx context.Context, committeeID string) []model.DelegateAward
	CreateAward(ctx context.Context, a model.DelegateAward) model.DelegateAward
	UpdateAward(ctx context.Context, id string, patch model.DelegateAwardPatch) (model.DelegateAward, error)
	DeleteAward(ctx context.Context, id string) error

	// Settings is a singleton; UpdateSettings creates it on first use.
	Settings(ctx context.Context) (model.AppSettings, error)
	UpdateSettings(ctx context.Context, patch model.AppSettingsPatch) model.AppSettings

	// Counts reports the number of records per collection.
	Counts(ctx context.Context) map[string]int
}
