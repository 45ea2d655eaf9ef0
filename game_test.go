package qflip

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/davecgh/go-spew/spew"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSession(t *testing.T) {
	Convey("Given a new easy session", t, func() {
		session := NewSession(Easy, NewConfig(), newScriptedSource(0.25))

		So(session.ID, ShouldNotBeEmpty)
		So(session.Phase, ShouldEqual, Playing)
		So(session.Round, ShouldEqual, 1)
		So(session.MaxRounds, ShouldEqual, 10)
		So(session.CurrentP0, ShouldEqual, 0.5)

		Convey("When guessing the outcome that is drawn", func() {
			next, round, err := session.Guess(Zero, newScriptedSource(0.25))
			So(err, ShouldBeNil)

			Convey("The round should be scored and recorded", func() {
				So(round, ShouldResemble, GuessRound{Round: 1, Guess: Zero, Result: Zero, Correct: true, P0: 0.5})
				So(next.Score, ShouldEqual, 1)
				So(next.Round, ShouldEqual, 2)
				So(next.History, ShouldResemble, []GuessRound{round})
			})

			Convey("The original session should be unchanged", func() {
				So(session.Score, ShouldEqual, 0)
				So(session.Round, ShouldEqual, 1)
				So(session.History, ShouldBeEmpty)
			})
		})

		Convey("When guessing wrong", func() {
			next, round, err := session.Guess(Zero, newScriptedSource(0.75))
			So(err, ShouldBeNil)
			So(round.Correct, ShouldBeFalse)
			So(round.Result, ShouldEqual, One)
			So(next.Score, ShouldEqual, 0)
		})

		Convey("When guessing something that is not an outcome", func() {
			_, _, err := session.Guess(Outcome(2), nil)
			So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
		})

		Convey("When branching from the same session twice", func() {
			a, _, _ := session.Guess(Zero, newScriptedSource(0.25))
			b, _, _ := session.Guess(One, newScriptedSource(0.25))
			a2, _, _ := a.Guess(Zero, newScriptedSource(0.25))
			b2, _, _ := b.Guess(One, newScriptedSource(0.75))

			Convey("Histories should not share storage", func() {
				So(a2.History[0].Guess, ShouldEqual, Zero)
				So(b2.History[0].Guess, ShouldEqual, One)
				So(a2.History[1].Correct, ShouldBeTrue)
				So(b2.History[1].Correct, ShouldBeTrue)
			})
		})

		Convey("When playing every round", func() {
			src := newScriptedSource(0.25, 0.75)
			current := session
			for range current.MaxRounds {
				var err error
				current, _, err = current.Guess(Zero, src)
				So(err, ShouldBeNil)
			}

			Convey("The session should finish with a summary", func() {
				So(current.Phase, ShouldEqual, Finished)
				So(current.Round, ShouldEqual, 10)
				So(len(current.History), ShouldEqual, 10)

				summary := current.Summary()
				t.Log(spew.Sdump(summary))

				So(summary.Score, ShouldEqual, 5)
				So(summary.Rounds, ShouldEqual, 10)
				So(summary.Accuracy, ShouldAlmostEqual, 50, 1e-9)
				So(summary.ExpectedP0, ShouldAlmostEqual, 0.5, 1e-12)
				So(summary.ActualZeros, ShouldEqual, 5)
			})

			Convey("Further guesses should be rejected", func() {
				_, _, err := current.Guess(Zero, src)
				So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
			})
		})
	})

	Convey("Given a hard session", t, func() {
		src := rand.NewPCG(8, 13)
		session := NewSession(Hard, &Config{MaxRounds: 3}, src)

		Convey("Every round should carry a hard probability", func() {
			So(inUnion(session.CurrentP0, [2]float64{0.05, 0.15}, [2]float64{0.85, 0.95}), ShouldBeTrue)

			for session.Phase == Playing {
				var round GuessRound
				var err error
				session, round, err = session.Guess(One, src)
				So(err, ShouldBeNil)
				So(inUnion(round.P0, [2]float64{0.05, 0.15}, [2]float64{0.85, 0.95}), ShouldBeTrue)
			}

			So(len(session.History), ShouldEqual, 3)
		})
	})

	Convey("Given an empty session", t, func() {
		Convey("The summary should report zero accuracy", func() {
			So(Session{}.Summary(), ShouldResemble, Summary{})
		})
	})

	Convey("Given the phases", t, func() {
		So(SelectingDifficulty.String(), ShouldEqual, "selecting-difficulty")
		So(Finished.String(), ShouldEqual, "summary")
	})
}
