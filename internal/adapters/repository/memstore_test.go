package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	repository "github.com/okian/plenum/internal/adapters/repository"
	"github.com/okian/plenum/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// sequentialIDs returns a deterministic id generator: id-1, id-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestMemStore_CRUD(t *testing.T) {
	Convey("Given an empty store", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore(repository.WithIDGenerator(sequentialIDs()))

		Convey("When creating a delegate", func() {
			d := store.CreateDelegate(ctx, model.Delegate{
				Name:      "Alex Thompson",
				School:    "Springfield High",
				Committee: "UNSC",
				Email:     "alex@example.com",
				Status:    model.StatusRegistered,
			})

			Convey("Then it is retrievable by its assigned id", func() {
				So(d.ID, ShouldEqual, "id-1")
				got, err := store.Delegate(ctx, d.ID)
				So(err, ShouldBeNil)
				So(got, ShouldResemble, d)
			})

			Convey("Then a partial update touches only the present fields", func() {
				status := model.StatusCheckedIn
				updated, err := store.UpdateDelegate(ctx, d.ID, model.DelegatePatch{Status: &status})
				So(err, ShouldBeNil)
				So(updated.Status, ShouldEqual, model.StatusCheckedIn)
				So(updated.Name, ShouldEqual, "Alex Thompson")
				So(updated.Email, ShouldEqual, "alex@example.com")
			})

			Convey("Then deleting it makes lookups fail", func() {
				So(store.DeleteDelegate(ctx, d.ID), ShouldBeNil)
				_, err := store.Delegate(ctx, d.ID)
				So(err, ShouldEqual, repository.ErrNotFound)
				So(store.DeleteDelegate(ctx, d.ID), ShouldEqual, repository.ErrNotFound)
			})
		})

		Convey("When operating on a missing id", func() {
			Convey("Then updates report not found", func() {
				name := "nobody"
				_, err := store.UpdatePortfolio(ctx, "missing", model.PortfolioPatch{Name: &name})
				So(err, ShouldEqual, repository.ErrNotFound)
			})
		})
	})
}

func TestMemStore_Ordering(t *testing.T) {
	Convey("Given a store with ordered collections", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore(repository.WithIDGenerator(sequentialIDs()))

		Convey("When listing portfolios", func() {
			store.CreatePortfolio(ctx, model.Portfolio{Name: "World Bank", Type: "NGO"})
			store.CreatePortfolio(ctx, model.Portfolio{Name: "France", Type: "Country"})
			store.CreatePortfolio(ctx, model.Portfolio{Name: "Brazil", Type: "Country"})

			Convey("Then countries come first, each group by name", func() {
				out := store.Portfolios(ctx)
				So(out, ShouldHaveLength, 3)
				So(out[0].Name, ShouldEqual, "Brazil")
				So(out[1].Name, ShouldEqual, "France")
				So(out[2].Name, ShouldEqual, "World Bank")
			})
		})

		Convey("When listing tasks", func() {
			store.CreateTask(ctx, model.Task{Title: "done-low", Status: "completed", Priority: "low"})
			store.CreateTask(ctx, model.Task{Title: "pending-low", Status: "pending", Priority: "low"})
			store.CreateTask(ctx, model.Task{Title: "pending-high", Status: "pending", Priority: "high"})

			Convey("Then pending tasks lead, high priority first", func() {
				out := store.Tasks(ctx)
				So(out[0].Title, ShouldEqual, "pending-high")
				So(out[1].Title, ShouldEqual, "pending-low")
				So(out[2].Title, ShouldEqual, "done-low")
			})
		})

		Convey("When listing sponsorships", func() {
			store.CreateSponsorship(ctx, model.Sponsorship{Sponsor: "Small", Amount: 500})
			store.CreateSponsorship(ctx, model.Sponsorship{Sponsor: "Big", Amount: 5000})

			Convey("Then the largest amount leads", func() {
				out := store.Sponsorships(ctx)
				So(out[0].Sponsor, ShouldEqual, "Big")
			})
		})

		Convey("When listing marking criteria and award types", func() {
			store.CreateMarkingCriteria(ctx, model.MarkingCriteria{Name: "Diplomacy", OrderIndex: 2})
			store.CreateMarkingCriteria(ctx, model.MarkingCriteria{Name: "Research", OrderIndex: 1})
			store.CreateAwardType(ctx, model.AwardType{Name: "Special Mention", OrderIndex: 3, IsActive: 1})
			store.CreateAwardType(ctx, model.AwardType{Name: "Best Delegate", OrderIndex: 1, IsActive: 1})
			store.CreateAwardType(ctx, model.AwardType{Name: "Retired", OrderIndex: 2, IsActive: 0})

			Convey("Then both list ascending by orderIndex", func() {
				criteria := store.MarkingCriteria(ctx)
				So(criteria[0].Name, ShouldEqual, "Research")
				So(criteria[1].Name, ShouldEqual, "Diplomacy")

				types := store.AwardTypes(ctx)
				So(types, ShouldHaveLength, 3)
				So(types[0].Name, ShouldEqual, "Best Delegate")
				So(types[1].Name, ShouldEqual, "Retired")
			})

			Convey("Then ActiveAwardTypes drops inactive tiers keeping order", func() {
				active := store.ActiveAwardTypes(ctx)
				So(active, ShouldHaveLength, 2)
				So(active[0].Name, ShouldEqual, "Best Delegate")
				So(active[1].Name, ShouldEqual, "Special Mention")
			})
		})
	})
}

func TestMemStore_Evaluations(t *testing.T) {
	Convey("Given a store with a fixed clock", t, func() {
		ctx := context.Background()
		base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
		tick := 0
		store := repository.NewMemStore(
			repository.WithIDGenerator(sequentialIDs()),
			repository.WithClock(func() time.Time {
				tick++
				return base.Add(time.Duration(tick) * time.Minute)
			}),
		)

		e1 := store.CreateEvaluation(ctx, model.DelegateEvaluation{DelegateID: "d-1", DelegateName: "Alpha", Committee: "UNSC", TotalScore: 80})
		e2 := store.CreateEvaluation(ctx, model.DelegateEvaluation{DelegateID: "d-2", DelegateName: "Bravo", Committee: "DISEC", TotalScore: 90})
		e3 := store.CreateEvaluation(ctx, model.DelegateEvaluation{DelegateID: "d-3", DelegateName: "Charlie", Committee: "UNSC", TotalScore: 70})

		Convey("Then Evaluations lists newest first", func() {
			out := store.Evaluations(ctx)
			So(out, ShouldHaveLength, 3)
			So(out[0].ID, ShouldEqual, e3.ID)
			So(out[2].ID, ShouldEqual, e1.ID)
		})

		Convey("Then EvaluationsByCommittee filters by name in insertion order", func() {
			out := store.EvaluationsByCommittee(ctx, "UNSC")
			So(out, ShouldHaveLength, 2)
			So(out[0].ID, ShouldEqual, e1.ID)
			So(out[1].ID, ShouldEqual, e3.ID)
		})

		Convey("Then patching scores leaves the stored total alone", func() {
			updated, err := store.UpdateEvaluation(ctx, e2.ID, model.DelegateEvaluationPatch{
				Scores: map[string]int{"c-1": 1},
			})
			So(err, ShouldBeNil)
			So(updated.TotalScore, ShouldEqual, 90)
			So(updated.Scores, ShouldResemble, map[string]int{"c-1": 1})
		})
	})
}

func TestMemStore_Awards(t *testing.T) {
	Convey("Given a store with award types and awards", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore(repository.WithIDGenerator(sequentialIDs()))

		best := store.CreateAwardType(ctx, model.AwardType{Name: "Best Delegate", OrderIndex: 1, IsActive: 1})
		mention := store.CreateAwardType(ctx, model.AwardType{Name: "Special Mention", OrderIndex: 3, IsActive: 1})

		aMention := store.CreateAward(ctx, model.DelegateAward{CommitteeID: "com-1", AwardTypeID: mention.ID, DelegateID: "d-2"})
		aOrphan := store.CreateAward(ctx, model.DelegateAward{CommitteeID: "com-1", AwardTypeID: "gone", DelegateID: "d-3"})
		aBest := store.CreateAward(ctx, model.DelegateAward{CommitteeID: "com-1", AwardTypeID: best.ID, DelegateID: "d-1"})
		store.CreateAward(ctx, model.DelegateAward{CommitteeID: "com-2", AwardTypeID: best.ID, DelegateID: "d-9"})

		Convey("Then AwardsByCommittee orders by type prestige, orphans last", func() {
			out := store.AwardsByCommittee(ctx, "com-1")
			So(out, ShouldHaveLength, 3)
			So(out[0].ID, ShouldEqual, aBest.ID)
			So(out[1].ID, ShouldEqual, aMention.ID)
			So(out[2].ID, ShouldEqual, aOrphan.ID)
		})

		Convey("Then other committees are excluded", func() {
			So(store.AwardsByCommittee(ctx, "com-2"), ShouldHaveLength, 1)
			So(store.AwardsByCommittee(ctx, "com-3"), ShouldBeEmpty)
		})
	})
}

func TestMemStore_Settings(t *testing.T) {
	Convey("Given an empty store", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore(repository.WithIDGenerator(sequentialIDs()))

		Convey("Then reading unset settings reports not found", func() {
			_, err := store.Settings(ctx)
			So(err, ShouldEqual, repository.ErrNotFound)
		})

		Convey("When patching for the first time", func() {
			currency := "EUR"
			got := store.UpdateSettings(ctx, model.AppSettingsPatch{Currency: &currency})

			Convey("Then the singleton is created and the patch applied over defaults", func() {
				So(got.ID, ShouldNotBeEmpty)
				So(got.Currency, ShouldEqual, "EUR")
				So(got.CurrencySymbol, ShouldEqual, "$")
			})

			Convey("Then later patches merge into the same record", func() {
				symbol := "€"
				updated := store.UpdateSettings(ctx, model.AppSettingsPatch{CurrencySymbol: &symbol})
				So(updated.ID, ShouldEqual, got.ID)
				So(updated.Currency, ShouldEqual, "EUR")
				So(updated.CurrencySymbol, ShouldEqual, "€")

				stored, err := store.Settings(ctx)
				So(err, ShouldBeNil)
				So(stored, ShouldResemble, updated)
			})
		})
	})
}

func TestMemStore_Seed(t *testing.T) {
	Convey("Given a store seeded with conference fixtures", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore(repository.WithSeedData())

		Convey("Then the demo data is present", func() {
			counts := store.Counts(ctx)
			So(counts["portfolios"], ShouldEqual, 21)
			So(counts["delegates"], ShouldEqual, 1)
			So(counts["committees"], ShouldEqual, 1)
			So(counts["markingCriteria"], ShouldEqual, 4)
			So(counts["awardTypes"], ShouldEqual, 5)

			settings, err := store.Settings(ctx)
			So(err, ShouldBeNil)
			So(settings.Currency, ShouldEqual, "USD")
		})

		Convey("Then the seeded award tiers are all active and ordered", func() {
			tiers := store.ActiveAwardTypes(ctx)
			So(tiers, ShouldHaveLength, 5)
			So(tiers[0].Name, ShouldEqual, "Best Delegate")
			for i := 1; i < len(tiers); i++ {
				So(tiers[i-1].OrderIndex, ShouldBeLessThan, tiers[i].OrderIndex)
			}
		})
	})
}
