package qflip

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func fastConfig() *Config {
	cfg := NewConfig()
	cfg.RevealDelay = 10 * time.Millisecond
	cfg.RoundDelay = 20 * time.Millisecond
	cfg.MaxRounds = 2

	return cfg
}

func await(ch <-chan Reveal) (Reveal, bool) {
	select {
	case r := <-ch:
		return r, true
	case <-time.After(testTimeout):
		return Reveal{}, false
	}
}

func TestStage(t *testing.T) {
	Convey("Given a stage with short delays", t, func() {
		ctx := context.Background()
		stage := NewStage(ctx, fastConfig(), rand.NewPCG(2, 7))

		Reset(func() {
			stage.Close()
		})

		Convey("A flip should be revealed after the delay", func() {
			start := time.Now()
			r, ok := await(stage.Flip(ctx, 0))

			So(ok, ShouldBeTrue)
			So(r.Err, ShouldBeNil)
			So(r.Value, ShouldEqual, Heads)
			So(time.Since(start), ShouldBeGreaterThanOrEqualTo, 10*time.Millisecond)
		})

		Convey("A guess should advance the session at once and reveal later", func() {
			rounds := stage.Rounds()
			session := NewSession(Easy, fastConfig(), nil)

			next, ch, err := stage.Guess(ctx, session, Zero)
			So(err, ShouldBeNil)
			So(next.Round, ShouldEqual, 2)

			r, ok := await(ch)
			So(ok, ShouldBeTrue)
			So(r.Value, ShouldResemble, next.History[0])

			broadcast, ok := await(rounds)
			So(ok, ShouldBeTrue)
			So(broadcast.ID, ShouldEqual, r.ID)

			Convey("And the final guess should finish the game", func() {
				done, _, err := stage.Guess(ctx, next, One)
				So(err, ShouldBeNil)
				So(done.Phase, ShouldEqual, Finished)

				_, _, err = stage.Guess(ctx, done, One)
				So(errors.Is(err, ErrInvalidArgument), ShouldBeTrue)
			})
		})

		Convey("Cancelling the caller context should reveal the cancellation", func() {
			cctx, cancel := context.WithCancel(ctx)
			stage.cfg.RevealDelay = time.Hour

			ch := stage.Flip(cctx, math.Pi)
			cancel()

			r, ok := await(ch)
			So(ok, ShouldBeTrue)
			So(errors.Is(r.Err, context.Canceled), ShouldBeTrue)
			So(r.Value, ShouldBeNil)
		})

		Convey("Closing the stage should settle pending reveals", func() {
			stage.cfg.RoundDelay = time.Hour
			_, ch, err := stage.Guess(ctx, NewSession(Medium, fastConfig(), nil), One)
			So(err, ShouldBeNil)

			stage.Close()

			r, ok := await(ch)
			So(ok, ShouldBeTrue)
			So(errors.Is(r.Err, context.Canceled), ShouldBeTrue)
		})
	})
}
