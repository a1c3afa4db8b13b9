package awards_test

import (
	"context"
	"testing"

	"github.com/okian/plenum/internal/adapters/repository"
	awards "github.com/okian/plenum/internal/domain/awards"
	"github.com/okian/plenum/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func seedTiers(ctx context.Context, store *repository.MemStore, names ...string) []model.AwardType {
	out := make([]model.AwardType, 0, len(names))
	for i, name := range names {
		out = append(out, store.CreateAwardType(ctx, model.AwardType{
			Name:       name,
			OrderIndex: i + 1,
			IsActive:   1,
		}))
	}
	return out
}

func seedEvaluation(ctx context.Context, store *repository.MemStore, committee, delegateID, name string, total int) model.DelegateEvaluation {
	return store.CreateEvaluation(ctx, model.DelegateEvaluation{
		DelegateID:   delegateID,
		DelegateName: name,
		Committee:    committee,
		Scores:       map[string]int{"overall": total},
		TotalScore:   total,
		EvaluatedBy:  "Chair",
	})
}

func TestEngine_Assign(t *testing.T) {
	Convey("Given a store with tiers and evaluations", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore()
		engine := awards.NewEngine(store)

		req := awards.Request{
			CommitteeID:   "com-1",
			CommitteeName: "UNSC",
			AssignedBy:    "Secretary-General",
		}

		Convey("When more delegates are evaluated than tiers exist", func() {
			seedTiers(ctx, store, "Best Delegate", "High Commendation", "Special Mention")
			seedEvaluation(ctx, store, "UNSC", "d-1", "Alpha", 70)
			seedEvaluation(ctx, store, "UNSC", "d-2", "Bravo", 95)
			seedEvaluation(ctx, store, "UNSC", "d-3", "Charlie", 80)
			seedEvaluation(ctx, store, "UNSC", "d-4", "Delta", 60)

			created, err := engine.Assign(ctx, req)

			Convey("Then the top scorers get tiers in prestige order", func() {
				So(err, ShouldBeNil)
				So(created, ShouldHaveLength, 3)
				So(created[0].AwardTypeName, ShouldEqual, "Best Delegate")
				So(created[0].DelegateName, ShouldEqual, "Bravo")
				So(created[1].AwardTypeName, ShouldEqual, "High Commendation")
				So(created[1].DelegateName, ShouldEqual, "Charlie")
				So(created[2].AwardTypeName, ShouldEqual, "Special Mention")
				So(created[2].DelegateName, ShouldEqual, "Alpha")
			})

			Convey("Then every award records its provenance", func() {
				So(err, ShouldBeNil)
				for _, a := range created {
					So(a.ID, ShouldNotBeEmpty)
					So(a.CommitteeID, ShouldEqual, "com-1")
					So(a.CommitteeName, ShouldEqual, "UNSC")
					So(a.IsAutoAssigned, ShouldEqual, 1)
					So(a.AssignedBy, ShouldEqual, "Secretary-General")
					So(a.Timestamp.IsZero(), ShouldBeFalse)
				}
			})
		})

		Convey("When fewer delegates are evaluated than tiers exist", func() {
			seedTiers(ctx, store, "Best Delegate", "High Commendation", "Special Mention")
			seedEvaluation(ctx, store, "UNSC", "d-1", "Alpha", 88)

			created, err := engine.Assign(ctx, req)

			Convey("Then only the leading tiers are granted", func() {
				So(err, ShouldBeNil)
				So(created, ShouldHaveLength, 1)
				So(created[0].AwardTypeName, ShouldEqual, "Best Delegate")
				So(created[0].DelegateName, ShouldEqual, "Alpha")
			})
		})

		Convey("When delegates tie on total score", func() {
			seedTiers(ctx, store, "Best Delegate", "High Commendation")
			seedEvaluation(ctx, store, "UNSC", "d-1", "Alpha", 90)
			seedEvaluation(ctx, store, "UNSC", "d-2", "Bravo", 90)

			created, err := engine.Assign(ctx, req)

			Convey("Then the earlier-recorded evaluation ranks higher", func() {
				So(err, ShouldBeNil)
				So(created, ShouldHaveLength, 2)
				So(created[0].DelegateName, ShouldEqual, "Alpha")
				So(created[1].DelegateName, ShouldEqual, "Bravo")
			})
		})

		Convey("When inactive tiers exist", func() {
			tiers := seedTiers(ctx, store, "Best Delegate", "High Commendation", "Special Mention")
			_, err := store.UpdateAwardType(ctx, tiers[1].ID, model.AwardTypePatch{IsActive: intPtr(0)})
			So(err, ShouldBeNil)
			seedEvaluation(ctx, store, "UNSC", "d-1", "Alpha", 90)
			seedEvaluation(ctx, store, "UNSC", "d-2", "Bravo", 80)

			created, err := engine.Assign(ctx, req)

			Convey("Then the inactive tier is skipped and ranks shift up", func() {
				So(err, ShouldBeNil)
				So(created, ShouldHaveLength, 2)
				So(created[0].AwardTypeName, ShouldEqual, "Best Delegate")
				So(created[0].DelegateName, ShouldEqual, "Alpha")
				So(created[1].AwardTypeName, ShouldEqual, "Special Mention")
				So(created[1].DelegateName, ShouldEqual, "Bravo")
			})
		})

		Convey("When a delegate holds several ranked evaluations", func() {
			seedTiers(ctx, store, "Best Delegate", "High Commendation", "Special Mention")
			seedEvaluation(ctx, store, "UNSC", "d-1", "Alpha", 95)
			seedEvaluation(ctx, store, "UNSC", "d-1", "Alpha", 90)
			seedEvaluation(ctx, store, "UNSC", "d-2", "Bravo", 80)

			created, err := engine.Assign(ctx, req)

			Convey("Then the duplicate rank is skipped without promoting lower ranks", func() {
				So(err, ShouldBeNil)
				So(created, ShouldHaveLength, 2)
				So(created[0].AwardTypeName, ShouldEqual, "Best Delegate")
				So(created[0].DelegateName, ShouldEqual, "Alpha")
				// The second tier stays consumed by the duplicate; Bravo
				// lands on the third.
				So(created[1].AwardTypeName, ShouldEqual, "Special Mention")
				So(created[1].DelegateName, ShouldEqual, "Bravo")
			})
		})

		Convey("When the committee has no evaluations", func() {
			seedTiers(ctx, store, "Best Delegate")

			created, err := engine.Assign(ctx, req)

			Convey("Then the run succeeds with no awards", func() {
				So(err, ShouldBeNil)
				So(created, ShouldBeEmpty)
			})
		})

		Convey("When evaluations belong to a different committee name", func() {
			seedTiers(ctx, store, "Best Delegate")
			seedEvaluation(ctx, store, "DISEC", "d-1", "Alpha", 99)

			created, err := engine.Assign(ctx, req)

			Convey("Then they are not considered", func() {
				So(err, ShouldBeNil)
				So(created, ShouldBeEmpty)
			})
		})
	})
}

func TestEngine_AssignConflicts(t *testing.T) {
	Convey("Given a committee that already has awards", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore()
		engine := awards.NewEngine(store)

		seedTiers(ctx, store, "Best Delegate", "High Commendation")
		seedEvaluation(ctx, store, "UNSC", "d-1", "Alpha", 90)
		seedEvaluation(ctx, store, "UNSC", "d-2", "Bravo", 80)

		req := awards.Request{CommitteeID: "com-1", CommitteeName: "UNSC", AssignedBy: "SG"}
		first, err := engine.Assign(ctx, req)
		So(err, ShouldBeNil)
		So(first, ShouldHaveLength, 2)

		Convey("When assigning again without force", func() {
			created, err := engine.Assign(ctx, req)

			Convey("Then the run fails and the existing set is untouched", func() {
				So(err, ShouldEqual, awards.ErrAwardsExist)
				So(created, ShouldBeNil)

				remaining := store.AwardsByCommittee(ctx, "com-1")
				So(remaining, ShouldHaveLength, 2)
				So(remaining[0].ID, ShouldEqual, first[0].ID)
				So(remaining[1].ID, ShouldEqual, first[1].ID)
			})
		})

		Convey("When assigning again with force", func() {
			seedEvaluation(ctx, store, "UNSC", "d-3", "Charlie", 100)
			req.Force = true
			created, err := engine.Assign(ctx, req)

			Convey("Then the old set is replaced wholesale", func() {
				So(err, ShouldBeNil)
				So(created, ShouldHaveLength, 2)
				So(created[0].DelegateName, ShouldEqual, "Charlie")
				So(created[1].DelegateName, ShouldEqual, "Alpha")

				remaining := store.AwardsByCommittee(ctx, "com-1")
				So(remaining, ShouldHaveLength, 2)
				for _, a := range remaining {
					So(a.ID, ShouldNotEqual, first[0].ID)
					So(a.ID, ShouldNotEqual, first[1].ID)
				}
			})
		})

		Convey("When forcing repeatedly with unchanged input", func() {
			req.Force = true
			second, err := engine.Assign(ctx, req)
			So(err, ShouldBeNil)
			third, err := engine.Assign(ctx, req)
			So(err, ShouldBeNil)

			Convey("Then the award-to-delegate mapping is identical across runs", func() {
				So(third, ShouldHaveLength, len(second))
				for i := range second {
					So(third[i].AwardTypeName, ShouldEqual, second[i].AwardTypeName)
					So(third[i].DelegateID, ShouldEqual, second[i].DelegateID)
				}
			})
		})

		Convey("When forcing against a different committee id", func() {
			other := awards.Request{CommitteeID: "com-2", CommitteeName: "DISEC", AssignedBy: "SG"}
			created, err := engine.Assign(ctx, other)

			Convey("Then existing awards elsewhere do not conflict", func() {
				So(err, ShouldBeNil)
				So(created, ShouldBeEmpty)
				So(store.AwardsByCommittee(ctx, "com-1"), ShouldHaveLength, 2)
			})
		})
	})
}

func intPtr(v int) *int { return &v }
