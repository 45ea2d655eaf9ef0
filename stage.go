package qflip

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/theapemachine/errnie"
)

// RoundsGroup is the broadcast group every resolved guessing round is sent to.
const RoundsGroup = "rounds"

/*
Stage paces results for an interactive front end. Every result is
computed the moment it is asked for; only its publication waits for the
configured reveal or round delay, so a front end can animate in the
meantime. Flip and Guess draw from the Stage's source and must be called
from a single goroutine.
*/
type Stage struct {
	ctx    context.Context
	cancel context.CancelFunc
	cfg    *Config
	src    rand.Source
	space  *RevealSpace
	wg     sync.WaitGroup
}

func NewStage(ctx context.Context, cfg *Config, src rand.Source) *Stage {
	if cfg == nil {
		cfg = NewConfig()
	}

	ctx, cancel := context.WithCancel(ctx)

	stage := &Stage{
		ctx:    ctx,
		cancel: cancel,
		cfg:    cfg,
		src:    sourceOrDefault(src),
		space:  NewRevealSpace(cfg.RevealTTL),
	}
	stage.space.CreateBroadcastGroup(RoundsGroup, 0)

	return stage
}

// Rounds subscribes to every round the Stage resolves from now on.
func (st *Stage) Rounds() <-chan Reveal {
	return st.space.Subscribe(RoundsGroup)
}

// Flip tosses the coin now and reveals the FlipResult after RevealDelay.
func (st *Stage) Flip(ctx context.Context, theta float64) <-chan Reveal {
	id := "flip-" + uuid.NewString()
	result := Flip(theta, st.src)

	errnie.Debug("Stage.Flip - id %s, theta %.4f, delay %v", id, theta, st.cfg.RevealDelay)

	ch := st.space.Await(id)
	st.publishAfter(ctx, id, st.cfg.RevealDelay, result, "")
	return ch
}

/*
Guess resolves the session's current round immediately and returns the
advanced session. The GuessRound is revealed on the returned channel,
and to the rounds group, once RoundDelay has passed.
*/
func (st *Stage) Guess(ctx context.Context, session Session, guess Outcome) (Session, <-chan Reveal, error) {
	next, round, err := session.Guess(guess, st.src)
	if err != nil {
		return session, nil, err
	}

	id := "round-" + uuid.NewString()
	ch := st.space.Await(id)
	st.publishAfter(ctx, id, st.cfg.RoundDelay, round, RoundsGroup)

	return next, ch, nil
}

func (st *Stage) publishAfter(ctx context.Context, id string, delay time.Duration, value any, group string) {
	st.wg.Add(1)
	go func() {
		defer st.wg.Done()

		timer := time.NewTimer(delay)
		defer timer.Stop()

		var r Reveal
		select {
		case <-timer.C:
			r = st.space.Store(id, value, nil, st.cfg.RevealTTL)
		case <-ctx.Done():
			r = st.space.Store(id, nil, ctx.Err(), st.cfg.RevealTTL)
		case <-st.ctx.Done():
			r = st.space.Store(id, nil, st.ctx.Err(), st.cfg.RevealTTL)
		}

		if group != "" {
			st.space.Broadcast(group, r)
		}
	}()
}

// Close cancels pending reveals, waits for them to settle, and closes the feeds.
func (st *Stage) Close() {
	st.cancel()
	st.wg.Wait()
	st.space.Close()
}
