package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/pflag"
	"github.com/theapemachine/errnie"
	"github.com/theapemachine/qflip"
)

const usage = `usage: qflip <command> [flags]

commands:
  simulate   H then Ry(theta) on |0⟩, with Bloch vector and sampled counts
  flip       toss the quantum coin Ry(theta)|0⟩
  sweep      P(0) of the standard simulation over θ in [0, π]
  guess      play the guessing game, one guess (0 or 1) per line on stdin`

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "simulate":
		return runSimulate(args[1:], out)
	case "flip":
		return runFlip(ctx, args[1:], out)
	case "sweep":
		return runSweep(args[1:], out)
	case "guess":
		return runGuess(ctx, args[1:], in, out)
	case "help", "-h", "--help":
		fmt.Fprintln(out, usage)
		return nil
	}

	return usageError(fmt.Sprintf("unknown command %q", args[0]))
}

func usageError(msg string) error {
	return fmt.Errorf("%s\n\n%s", msg, usage)
}

func parse(flags *pflag.FlagSet, args []string) (*settings, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	return loadSettings(flags)
}

func runSimulate(args []string, out io.Writer) error {
	flags := newFlagSet("simulate")
	flags.Float64("theta", qflip.NewConfig().DefaultTheta, "rotation angle in radians, [0, π]")
	flags.Int("shots", qflip.NewConfig().DefaultShots, "measurements to sample")

	s, err := parse(flags, args)
	if err != nil {
		return err
	}

	errnie.Info("simulate - theta %.4f, shots %d", s.theta, s.shots)

	snap, err := qflip.ExploreWithConfig(s.core, s.theta, s.shots, s.source())
	if err != nil {
		return err
	}

	renderSnapshot(out, snap)
	dump(out, s.dump, snap)
	return nil
}

func runFlip(ctx context.Context, args []string, out io.Writer) error {
	flags := newFlagSet("flip")
	flags.Float64("theta", qflip.NewConfig().DefaultTheta, "rotation angle in radians, [0, π]")

	s, err := parse(flags, args)
	if err != nil {
		return err
	}

	stage := qflip.NewStage(ctx, s.core, s.source())
	defer stage.Close()

	sim := qflip.RunCoinSimulation(s.theta)
	renderProbabilities(out, sim.Probabilities)

	errnie.Info("flip - theta %.4f", s.theta)

	reveal := <-stage.Flip(ctx, s.theta)
	if reveal.Err != nil {
		return reveal.Err
	}

	fmt.Fprintf(out, "You got %v!\n", reveal.Value)
	dump(out, s.dump, sim, reveal)
	return nil
}

func runSweep(args []string, out io.Writer) error {
	flags := newFlagSet("sweep")
	flags.Int("steps", qflip.DefaultSweepSteps, "intervals between 0 and π")

	s, err := parse(flags, args)
	if err != nil {
		return err
	}

	seq, err := qflip.SweepTheta(s.steps)
	if err != nil {
		return err
	}

	points := slices.Collect(seq)
	renderSweep(out, points)
	dump(out, s.dump, points)
	return nil
}

func runGuess(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	flags := newFlagSet("guess")
	flags.String("difficulty", qflip.Easy.String(), "easy, medium or hard")

	s, err := parse(flags, args)
	if err != nil {
		return err
	}

	difficulty, err := qflip.ParseDifficulty(s.difficulty)
	if err != nil {
		return err
	}

	src := s.source()
	stage := qflip.NewStage(ctx, s.core, src)
	defer stage.Close()

	session := qflip.NewSession(difficulty, s.core, src)
	scanner := bufio.NewScanner(in)

	for session.Phase == qflip.Playing {
		fmt.Fprintf(out, "round %d of %d, P(0) = %.3f, guess 0 or 1: ", session.Round, session.MaxRounds, session.CurrentP0)

		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}

		guess, err := qflip.ParseOutcome(scanner.Text())
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		var pending <-chan qflip.Reveal
		if session, pending, err = stage.Guess(ctx, session, guess); err != nil {
			return err
		}

		reveal := <-pending
		if reveal.Err != nil {
			return reveal.Err
		}

		fmt.Fprintln(out)
		renderRound(out, reveal.Value.(qflip.GuessRound))
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	renderSummary(out, session.Summary())
	dump(out, s.dump, session)
	return nil
}
