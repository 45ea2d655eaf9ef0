package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/theapemachine/qflip"
	"gonum.org/v1/gonum/floats"
)

const barWidth = 40

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	zeroStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	oneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	goodStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	badStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func bar(style lipgloss.Style, fraction float64) string {
	n := int(math.Round(math.Max(0, math.Min(1, fraction)) * barWidth))
	return style.Render(strings.Repeat("█", n)) + strings.Repeat("·", barWidth-n)
}

func degrees(theta float64) float64 {
	return theta * 180 / math.Pi
}

func amplitude(a complex128) string {
	return fmt.Sprintf("%+.4f%+.4fi", real(a), imag(a))
}

func renderSnapshot(w io.Writer, snap qflip.Snapshot) {
	fmt.Fprintf(w, "%s θ = %.4f rad (%.1f°)\n", labelStyle.Render("angle"), snap.Theta, degrees(snap.Theta))
	fmt.Fprintf(w, "%s α = %s, β = %s\n", labelStyle.Render("state"), amplitude(snap.State.Alpha), amplitude(snap.State.Beta))
	renderProbabilities(w, snap.Probabilities)
	fmt.Fprintf(w, "%s x = %+.4f, y = %+.4f, z = %+.4f\n", labelStyle.Render("bloch"), snap.Bloch.X, snap.Bloch.Y, snap.Bloch.Z)

	fmt.Fprintf(w, "%s %s shots\n", labelStyle.Render("counts"), humanize.Comma(int64(snap.Shots)))
	fmt.Fprintf(w, "  |0⟩ %s %s\n", bar(zeroStyle, snap.Counts.Frequency()), humanize.Comma(int64(snap.Counts.Zero)))
	fmt.Fprintf(w, "  |1⟩ %s %s\n", bar(oneStyle, 1-snap.Counts.Frequency()), humanize.Comma(int64(snap.Counts.One)))
}

func renderProbabilities(w io.Writer, probs qflip.Probabilities) {
	fmt.Fprintf(w, "%s\n", labelStyle.Render("probabilities"))
	fmt.Fprintf(w, "  P(0) %s %.4f\n", bar(zeroStyle, probs.P0), probs.P0)
	fmt.Fprintf(w, "  P(1) %s %.4f\n", bar(oneStyle, probs.P1), probs.P1)
}

func renderSweep(w io.Writer, points []qflip.SweepPoint) {
	fmt.Fprintf(w, "%8s %8s\n", "θ (°)", "P(0)")

	p0s := make([]float64, 0, len(points))
	for _, point := range points {
		p0s = append(p0s, point.P0)
		fmt.Fprintf(w, "%8.2f %8.4f %s\n", degrees(point.Theta), point.P0, bar(zeroStyle, point.P0))
	}

	fmt.Fprintf(w, "%d points, P(0) in [%.4f, %.4f]\n", len(points), floats.Min(p0s), floats.Max(p0s))
}

func renderRound(w io.Writer, round qflip.GuessRound) {
	verdict := goodStyle.Render("correct")
	if !round.Correct {
		verdict = badStyle.Render("incorrect")
	}

	fmt.Fprintf(
		w, "round %2d  p0 %.3f  guessed %v  measured %v  %s\n",
		round.Round, round.P0, round.Guess, round.Result, verdict,
	)
}

func renderSummary(w io.Writer, summary qflip.Summary) {
	fmt.Fprintf(w, "%s %d / %d (%.0f%%)\n", labelStyle.Render("score"), summary.Score, summary.Rounds, summary.Accuracy)
	fmt.Fprintf(w, "expected zeros %.1f, measured zeros %d\n", summary.ExpectedP0*float64(summary.Rounds), summary.ActualZeros)
}

func dump(w io.Writer, enabled bool, values ...any) {
	if enabled {
		spew.Fdump(w, values...)
	}
}
