package scoring_test

import (
	"context"
	"testing"

	"github.com/okian/plenum/internal/adapters/repository"
	"github.com/okian/plenum/internal/domain/model"
	scoring "github.com/okian/plenum/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTotal(t *testing.T) {
	Convey("Given per-criterion scores", t, func() {
		Convey("Then the total is the exact integer sum", func() {
			So(scoring.Total(map[string]int{"a": 8, "b": 9, "c": 7}), ShouldEqual, 24)
		})

		Convey("Then an empty map sums to zero", func() {
			So(scoring.Total(map[string]int{}), ShouldEqual, 0)
		})

		Convey("Then out-of-range values are summed as submitted", func() {
			// Caps are caller-enforced; the scorer never clamps.
			So(scoring.Total(map[string]int{"a": 150, "b": -10}), ShouldEqual, 140)
		})
	})
}

func TestInputValidate(t *testing.T) {
	Convey("Given a scoring submission", t, func() {
		valid := scoring.Input{
			DelegateID:   "d-1",
			DelegateName: "Alex Thompson",
			Committee:    "UNSC",
			Scores:       map[string]int{"c-1": 8},
			EvaluatedBy:  "Chair",
		}

		Convey("Then a complete submission passes", func() {
			So(valid.Validate(), ShouldBeNil)
		})

		Convey("Then each missing field reports its own error", func() {
			in := valid
			in.DelegateID = "  "
			So(in.Validate(), ShouldEqual, scoring.ErrMissingDelegateID)

			in = valid
			in.DelegateName = ""
			So(in.Validate(), ShouldEqual, scoring.ErrMissingDelegateName)

			in = valid
			in.Committee = ""
			So(in.Validate(), ShouldEqual, scoring.ErrMissingCommittee)

			in = valid
			in.EvaluatedBy = ""
			So(in.Validate(), ShouldEqual, scoring.ErrMissingEvaluatedBy)

			in = valid
			in.Scores = nil
			So(in.Validate(), ShouldEqual, scoring.ErrEmptyScores)
		})
	})
}

func TestRecorder_Record(t *testing.T) {
	Convey("Given a recorder backed by the in-memory store", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore()
		recorder := scoring.NewRecorder(store)

		in := scoring.Input{
			DelegateID:   "d-1",
			DelegateName: "Alex Thompson",
			Committee:    "UNSC",
			Scores:       map[string]int{"c-1": 8, "c-2": 9},
			Comments:     "strong bloc leadership",
			EvaluatedBy:  "Chair",
		}

		Convey("When recording a valid submission", func() {
			e, err := recorder.Record(ctx, in)

			Convey("Then the record gets an id, timestamp, and computed total", func() {
				So(err, ShouldBeNil)
				So(e.ID, ShouldNotBeEmpty)
				So(e.Timestamp.IsZero(), ShouldBeFalse)
				So(e.TotalScore, ShouldEqual, 17)
				So(e.Scores, ShouldResemble, map[string]int{"c-1": 8, "c-2": 9})
			})

			Convey("Then the stored scores are a copy of the input map", func() {
				So(err, ShouldBeNil)
				in.Scores["c-1"] = 100
				stored := store.Evaluations(ctx)
				So(stored, ShouldHaveLength, 1)
				So(stored[0].Scores["c-1"], ShouldEqual, 8)
			})
		})

		Convey("When recording the same delegate twice", func() {
			first, err := recorder.Record(ctx, in)
			So(err, ShouldBeNil)

			in.Scores = map[string]int{"c-1": 10, "c-2": 10}
			second, err := recorder.Record(ctx, in)
			So(err, ShouldBeNil)

			Convey("Then both records exist independently", func() {
				So(first.ID, ShouldNotEqual, second.ID)
				So(store.Evaluations(ctx), ShouldHaveLength, 2)
				So(second.TotalScore, ShouldEqual, 20)
			})
		})

		Convey("When the submission is invalid", func() {
			in.Scores = nil
			e, err := recorder.Record(ctx, in)

			Convey("Then nothing is stored", func() {
				So(err, ShouldEqual, scoring.ErrEmptyScores)
				So(e, ShouldResemble, model.DelegateEvaluation{})
				So(store.Evaluations(ctx), ShouldBeEmpty)
			})
		})
	})
}
