package qflip

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"
)

// Outcome is a single measurement result, 0 or 1.
type Outcome int

const (
	Zero Outcome = 0
	One  Outcome = 1
)

func (o Outcome) Valid() bool {
	return o == Zero || o == One
}

func (o Outcome) String() string {
	return fmt.Sprintf("|%d⟩", int(o))
}

// ParseOutcome accepts "0", "1", "|0⟩" and "|1⟩".
func ParseOutcome(s string) (Outcome, error) {
	switch strings.Trim(strings.TrimSpace(s), "|⟩>") {
	case "0":
		return Zero, nil
	case "1":
		return One, nil
	}

	return 0, fmt.Errorf("outcome must be 0 or 1, got %q: %w", s, ErrInvalidArgument)
}

// Difficulty selects how far from a fair coin each guessing round is skewed.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}

	return fmt.Sprintf("difficulty(%d)", int(d))
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "low":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard", "high":
		return Hard, nil
	}

	return 0, fmt.Errorf("unknown difficulty %q: %w", s, ErrInvalidArgument)
}

// skew is the half-open range the dominant outcome's probability is drawn from.
var skew = map[Difficulty]distuv.Uniform{
	Medium: {Min: 0.6, Max: 0.8},
	Hard:   {Min: 0.85, Max: 0.95},
}

/*
GenerateRoundProbability returns p0 for one round. Easy is always 0.5.
Medium and Hard draw a base from their skew range and hand it to either
outcome with equal chance, so p0 lands in [0.2, 0.4) ∪ [0.6, 0.8) or
[0.05, 0.15) ∪ [0.85, 0.95) respectively. Unknown tiers play fair.
*/
func GenerateRoundProbability(difficulty Difficulty, src rand.Source) float64 {
	dist, ok := skew[difficulty]
	if !ok {
		return 0.5
	}

	src = sourceOrDefault(src)
	dist.Src = src
	base := dist.Rand()

	if uniform(src) < 0.5 {
		return base
	}

	return 1 - base
}

// SampleOutcome is a single Bernoulli draw: Zero when the uniform value falls below p0.
func SampleOutcome(p0 float64, src rand.Source) Outcome {
	if uniform(src) < p0 {
		return Zero
	}

	return One
}
