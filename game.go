package qflip

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
	"github.com/theapemachine/errnie"
	"gonum.org/v1/gonum/stat"
)

// Phase is where a guessing game stands.
type Phase int

const (
	SelectingDifficulty Phase = iota
	Playing
	Finished
)

func (p Phase) String() string {
	switch p {
	case SelectingDifficulty:
		return "selecting-difficulty"
	case Playing:
		return "playing"
	case Finished:
		return "summary"
	}

	return fmt.Sprintf("phase(%d)", int(p))
}

// GuessRound records one resolved round of the guessing game.
type GuessRound struct {
	Round   int
	Guess   Outcome
	Result  Outcome
	Correct bool
	P0      float64
}

/*
Session is the whole state of one guessing game. It is a value: Guess
returns the next Session and leaves the receiver as it was, so an
orchestrator can keep, compare, or discard sessions freely.
*/
type Session struct {
	ID         string
	Difficulty Difficulty
	Phase      Phase
	Round      int
	MaxRounds  int
	Score      int
	CurrentP0  float64
	History    []GuessRound
}

// NewSession starts round one with a freshly generated probability.
func NewSession(difficulty Difficulty, cfg *Config, src rand.Source) Session {
	if cfg == nil {
		cfg = NewConfig()
	}

	session := Session{
		ID:         uuid.NewString(),
		Difficulty: difficulty,
		Phase:      Playing,
		Round:      1,
		MaxRounds:  cfg.MaxRounds,
		CurrentP0:  GenerateRoundProbability(difficulty, src),
	}

	errnie.Info(
		"NewSession - id %s, difficulty %v, rounds %d, p0 %.3f",
		session.ID, difficulty, session.MaxRounds, session.CurrentP0,
	)

	return session
}

/*
Guess resolves the current round: it samples an outcome with CurrentP0,
scores the guess, and either moves to the next round with a new
probability or finishes the game after MaxRounds rounds.
*/
func (s Session) Guess(guess Outcome, src rand.Source) (Session, GuessRound, error) {
	if s.Phase != Playing {
		return s, GuessRound{}, fmt.Errorf("session %s is %v, not playing: %w", s.ID, s.Phase, ErrInvalidArgument)
	}

	if !guess.Valid() {
		return s, GuessRound{}, fmt.Errorf("guess must be 0 or 1, got %d: %w", int(guess), ErrInvalidArgument)
	}

	src = sourceOrDefault(src)
	result := SampleOutcome(s.CurrentP0, src)

	round := GuessRound{
		Round:   s.Round,
		Guess:   guess,
		Result:  result,
		Correct: guess == result,
		P0:      s.CurrentP0,
	}

	next := s
	next.History = append(slices.Clip(s.History), round)

	if round.Correct {
		next.Score++
	}

	if s.Round >= s.MaxRounds {
		next.Phase = Finished
	} else {
		next.Round++
		next.CurrentP0 = GenerateRoundProbability(s.Difficulty, src)
	}

	errnie.Debug(
		"Session.Guess - id %s, round %d, guess %d, result %d, correct %v",
		s.ID, round.Round, round.Guess, round.Result, round.Correct,
	)

	return next, round, nil
}

// Summary is the end-of-game scorecard.
type Summary struct {
	Score       int
	Rounds      int
	Accuracy    float64 // percent
	ExpectedP0  float64
	ActualZeros int
}

func (s Session) Summary() Summary {
	summary := Summary{
		Score:  s.Score,
		Rounds: len(s.History),
	}

	if summary.Rounds == 0 {
		return summary
	}

	p0s := make([]float64, 0, len(s.History))
	for _, round := range s.History {
		p0s = append(p0s, round.P0)

		if round.Result == Zero {
			summary.ActualZeros++
		}
	}

	summary.Accuracy = float64(s.Score) / float64(summary.Rounds) * 100
	summary.ExpectedP0 = stat.Mean(p0s, nil)

	return summary
}
