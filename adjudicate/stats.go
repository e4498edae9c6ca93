/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package adjudicate

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

// categoryTotals accumulates the per-rule slice of the report.
type categoryTotals struct {
	num            int
	numWrong       int
	timeSaved      int
	squaredError10 int
}

func (c *categoryTotals) add(o Outcome) {
	c.num++
	if !o.CorrectlyAdjudicated() {
		c.numWrong++
	}
	c.timeSaved += o.TimeSaved()
	c.squaredError10 += o.SquaredError10()
}

// Report holds the aggregated results of one analysis run. Build it by
// folding outcomes through Tally, or use BuildReport.
type Report struct {
	games           int
	actualTime      int
	adjudicatedTime int
	resign          categoryTotals
	draw            categoryTotals
}

// Tally folds one game outcome into the report.
func (r *Report) Tally(o Outcome) {
	r.games++
	r.actualTime += o.Actual.Time
	r.adjudicatedTime += o.Adjudicated.Time

	switch o.RuleApplied {
	case RuleResign:
		r.resign.add(o)
	case RuleDraw:
		r.draw.add(o)
	}
}

// BuildReport aggregates a batch of outcomes into a Report.
func BuildReport(outcomes []Outcome) Report {
	var r Report
	for _, o := range outcomes {
		r.Tally(o)
	}
	return r
}

// WriteVerbose writes the per-game detail lines, one CSV-style line per
// outcome with 1-based game numbers, followed by a separating blank line.
func WriteVerbose(w io.Writer, outcomes []Outcome) {
	fmt.Fprintln(w, "game, actual_length, actual_time, actual_score, "+
		"rule_applied, adjudicated_length, adjudicated_time, adjudicated_score")

	for i, o := range outcomes {
		fmt.Fprintf(w, "%d, %d, %d, %s, %s, %d, %d, %s\n",
			i+1,
			o.Actual.Length,
			o.Actual.Time,
			formatScore10(o.Actual.Score10),
			o.RuleApplied,
			o.Adjudicated.Length,
			o.Adjudicated.Time,
			formatScore10(o.Adjudicated.Score10))
	}

	fmt.Fprintln(w)
}

// Write renders the summary report.
func (r Report) Write(w io.Writer) {
	fmt.Fprintf(w, "Games: %d\n", r.games)
	fmt.Fprintf(w, "Adjudicated: %d (%d wrong)\n",
		r.resign.num+r.draw.num, r.resign.numWrong+r.draw.numWrong)
	fmt.Fprintf(w, "  Resign: %d (%d wrong)\n", r.resign.num, r.resign.numWrong)
	fmt.Fprintf(w, "  Draw: %d (%d wrong)\n", r.draw.num, r.draw.numWrong)
	fmt.Fprintln(w)

	timeSaved := r.resign.timeSaved + r.draw.timeSaved
	fmt.Fprintf(w, "Total Time: %s\n", FormatTime(r.actualTime))
	fmt.Fprintf(w, "After Adjudication: %s\n", FormatTime(r.adjudicatedTime))
	fmt.Fprintf(w, "Time saved: %s (%.2f%%)\n",
		FormatTime(timeSaved), r.timeSavedPct(timeSaved))
	fmt.Fprintf(w, "  Resign: %s (%.2f%%)\n",
		FormatTime(r.resign.timeSaved), r.timeSavedPct(r.resign.timeSaved))
	fmt.Fprintf(w, "  Draw: %s (%.2f%%)\n",
		FormatTime(r.draw.timeSaved), r.timeSavedPct(r.draw.timeSaved))
	fmt.Fprintln(w, "Note: 'Time saved' excludes incorrectly adjudicated games")
	fmt.Fprintln(w)

	mse := r.meanSquaredError(r.resign.squaredError10 + r.draw.squaredError10)
	fmt.Fprintf(w, "Mean Squared Error: %.6f\n", mse)
	fmt.Fprintf(w, "  Resign: %.6f\n", r.meanSquaredError(r.resign.squaredError10))
	fmt.Fprintf(w, "  Draw: %.6f\n", r.meanSquaredError(r.draw.squaredError10))
	fmt.Fprintf(w, "Root MSE: %.3f\n", math.Sqrt(mse))
}

func (r Report) timeSavedPct(saved int) float64 {
	if r.actualTime == 0 {
		return 0
	}
	return float64(saved) / float64(r.actualTime) * 100
}

// meanSquaredError divides by the total game count, not the category's
// trigger count, for the per-category figures too.
func (r Report) meanSquaredError(squaredError10 int) float64 {
	if r.games == 0 {
		return 0
	}
	return float64(squaredError10) / 100 / float64(r.games)
}

// formatScore10 renders a score10 on the usual 0-1 scale: "0", "0.5", "1".
func formatScore10(score10 int) string {
	return strconv.FormatFloat(float64(score10)/10, 'f', -1, 64)
}

// FormatTime renders milliseconds as H:MM:SS.mmm.
func FormatTime(milliseconds int) string {
	v := milliseconds

	ms := v % 1000
	v /= 1000

	s := v % 60
	v /= 60

	m := v % 60
	v /= 60

	return fmt.Sprintf("%d:%02d:%02d.%03d", v, m, s, ms)
}
