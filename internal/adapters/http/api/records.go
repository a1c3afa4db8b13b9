package api

import (
	"fmt"

	"github.com/go-chi/chi/v5"

	"github.com/okian/plenum/internal/domain/model"
)

// registerRecordRoutes mounts the plain CRUD collections.
func (s *Server) registerRecordRoutes(r chi.Router) {
	mount(r, "/portfolios", resource[model.Portfolio, model.PortfolioPatch]{
		label:  "portfolios",
		list:   s.deps.Portfolios,
		create: s.deps.CreatePortfolio,
		update: s.deps.UpdatePortfolio,
		remove: s.deps.DeletePortfolio,
		validate: func(v model.Portfolio) error {
			return requireFields([2]string{"name", v.Name}, [2]string{"type", v.Type})
		},
	})

	mount(r, "/secretariat", resource[model.Secretariat, model.SecretariatPatch]{
		label:  "secretariat",
		list:   s.deps.Secretariat,
		create: s.deps.CreateSecretariat,
		update: s.deps.UpdateSecretariat,
		remove: s.deps.DeleteSecretariat,
		validate: func(v model.Secretariat) error {
			return requireFields(
				[2]string{"name", v.Name},
				[2]string{"position", v.Position},
				[2]string{"department", v.Department},
				[2]string{"email", v.Email},
			)
		},
	})

	mount(r, "/committees", resource[model.Committee, model.CommitteePatch]{
		label:  "committees",
		list:   s.deps.Committees,
		create: s.deps.CreateCommittee,
		update: s.deps.UpdateCommittee,
		remove: s.deps.DeleteCommittee,
		validate: func(v model.Committee) error {
			return requireFields(
				[2]string{"name", v.Name},
				[2]string{"topic", v.Topic},
				[2]string{"agenda", v.Agenda},
			)
		},
	})

	mount(r, "/executive-board", resource[model.ExecutiveBoard, model.ExecutiveBoardPatch]{
		label:  "executive_board",
		list:   s.deps.ExecutiveBoard,
		create: s.deps.CreateExecutiveBoard,
		update: s.deps.UpdateExecutiveBoard,
		remove: s.deps.DeleteExecutiveBoard,
		validate: func(v model.ExecutiveBoard) error {
			return requireFields(
				[2]string{"position", v.Position},
				[2]string{"name", v.Name},
				[2]string{"responsibilities", v.Responsibilities},
				[2]string{"email", v.Email},
			)
		},
	})

	mount(r, "/tasks", resource[model.Task, model.TaskPatch]{
		label:  "tasks",
		list:   s.deps.Tasks,
		create: s.deps.CreateTask,
		update: s.deps.UpdateTask,
		remove: s.deps.DeleteTask,
		validate: func(v model.Task) error {
			return requireFields(
				[2]string{"title", v.Title},
				[2]string{"assignee", v.Assignee},
				[2]string{"category", v.Category},
			)
		},
	})

	mount(r, "/logistics", resource[model.Logistics, model.LogisticsPatch]{
		label:  "logistics",
		list:   s.deps.Logistics,
		create: s.deps.CreateLogistics,
		update: s.deps.UpdateLogistics,
		remove: s.deps.DeleteLogistics,
		validate: func(v model.Logistics) error {
			return requireFields([2]string{"category", v.Category}, [2]string{"item", v.Item})
		},
	})

	mount(r, "/marketing", resource[model.Marketing, model.MarketingPatch]{
		label:  "marketing",
		list:   s.deps.Marketing,
		create: s.deps.CreateMarketing,
		update: s.deps.UpdateMarketing,
		remove: s.deps.DeleteMarketing,
		validate: func(v model.Marketing) error {
			return requireFields([2]string{"campaign", v.Campaign}, [2]string{"platform", v.Platform})
		},
	})

	mount(r, "/sponsorships", resource[model.Sponsorship, model.SponsorshipPatch]{
		label:  "sponsorships",
		list:   s.deps.Sponsorships,
		create: s.deps.CreateSponsorship,
		update: s.deps.UpdateSponsorship,
		remove: s.deps.DeleteSponsorship,
		validate: func(v model.Sponsorship) error {
			return requireFields(
				[2]string{"sponsor", v.Sponsor},
				[2]string{"tier", v.Tier},
				[2]string{"contact", v.Contact},
				[2]string{"email", v.Email},
			)
		},
	})

	mount(r, "/updates", resource[model.Update, model.UpdatePatch]{
		label:  "updates",
		list:   s.deps.Updates,
		create: s.deps.CreateUpdate,
		update: s.deps.UpdateUpdate,
		remove: s.deps.DeleteUpdate,
		validate: func(v model.Update) error {
			return requireFields(
				[2]string{"title", v.Title},
				[2]string{"content", v.Content},
				[2]string{"category", v.Category},
				[2]string{"author", v.Author},
			)
		},
	})

	mount(r, "/marking-criteria", resource[model.MarkingCriteria, model.MarkingCriteriaPatch]{
		label:  "marking_criteria",
		list:   s.deps.MarkingCriteria,
		create: s.deps.CreateMarkingCriteria,
		update: s.deps.UpdateMarkingCriteria,
		remove: s.deps.DeleteMarkingCriteria,
		validate: func(v model.MarkingCriteria) error {
			if err := requireFields([2]string{"name", v.Name}); err != nil {
				return err
			}
			if v.MaxPoints <= 0 {
				return fmt.Errorf("maxPoints must be positive: %w", ErrBadRequest)
			}
			return nil
		},
	})

	mount(r, "/award-types", resource[model.AwardType, model.AwardTypePatch]{
		label:  "award_types",
		list:   s.deps.AwardTypes,
		create: s.deps.CreateAwardType,
		update: s.deps.UpdateAwardType,
		remove: s.deps.DeleteAwardType,
		validate: func(v model.AwardType) error {
			return requireFields([2]string{"name", v.Name})
		},
	})
}
