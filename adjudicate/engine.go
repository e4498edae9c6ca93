/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package adjudicate

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// mover identifies which side played a ply: the game's first mover plays the
// even plies, the second mover the odd plies.
type mover int

const (
	firstMover mover = iota
	secondMover
)

func moverOf(ply int) mover {
	return mover(ply % 2)
}

// resignScore10 is the adjudicated result when this mover resigns: a loss
// for the first mover, a win over the second mover otherwise.
func (m mover) resignScore10() int {
	if m == firstMover {
		return 0
	}
	return 10
}

// RuleType tags which rule, if any, adjudicated a game.
type RuleType int

const (
	RuleNone RuleType = iota
	RuleResign
	RuleDraw
)

func (rt RuleType) String() string {
	switch rt {
	case RuleResign:
		return "R"
	case RuleDraw:
		return "D"
	}
	return "-"
}

// GameStats describes a game outcome, real or hypothetical: its length in
// plies, its duration in milliseconds and its result.
type GameStats struct {
	Length  int
	Time    int
	Score10 int
}

// Outcome is the result of replaying one game against a resign rule and a
// draw rule. If neither rule fired, Adjudicated equals Actual and
// RuleApplied is RuleNone.
type Outcome struct {
	Actual      GameStats
	Adjudicated GameStats
	RuleApplied RuleType
}

// CorrectlyAdjudicated reports whether adjudication predicted the game's
// actual result.
func (o Outcome) CorrectlyAdjudicated() bool {
	return o.Actual.Score10 == o.Adjudicated.Score10
}

// TimeSaved is the game time in milliseconds that adjudication would have
// saved. Incorrectly adjudicated games save nothing.
func (o Outcome) TimeSaved() int {
	if !o.CorrectlyAdjudicated() {
		return 0
	}
	return o.Actual.Time - o.Adjudicated.Time
}

// SquaredError10 is the squared result error in tenths of a point.
func (o Outcome) SquaredError10() int {
	d := o.Actual.Score10 - o.Adjudicated.Score10
	return d * d
}

// Adjudicate replays one game's evaluation stream against both rules and
// determines the earliest ply at which either would have terminated it.
// The draw rule is checked before the resign rule on every ply, and the
// first rule to fire wins; time keeps accumulating afterwards so the actual
// totals reflect the full game.
func Adjudicate(game GameData, resign ResignRule, draw DrawRule) Outcome {
	var resignStreaks [2]int
	var drawStreak int
	var totalTime int

	outcome := Outcome{RuleApplied: RuleNone}
	decided := false

	for ply, move := range game.Moves {
		totalTime += move.Time

		if decided {
			continue
		}

		if !draw.Disabled() {
			if abs(move.Eval) <= draw.Eval {
				drawStreak++
			} else {
				drawStreak = 0
			}

			// The streak advances per ply while the rule counts full
			// moves, hence the doubled bound.
			if (ply+1)/2 >= draw.FromMove && drawStreak >= 2*draw.Count {
				decided = true
				outcome.RuleApplied = RuleDraw
				outcome.Adjudicated = GameStats{
					Length:  ply + 1,
					Time:    totalTime,
					Score10: 5,
				}
				continue
			}
		}

		if !resign.Disabled() {
			m := moverOf(ply)
			if move.Eval <= -resign.Eval {
				resignStreaks[m]++
			} else {
				resignStreaks[m] = 0
			}

			if resignStreaks[m] == resign.Count {
				decided = true
				outcome.RuleApplied = RuleResign
				outcome.Adjudicated = GameStats{
					Length:  ply + 1,
					Time:    totalTime,
					Score10: m.resignScore10(),
				}
			}
		}
	}

	outcome.Actual = GameStats{
		Length:  len(game.Moves),
		Time:    totalTime,
		Score10: game.Score10,
	}
	if !decided {
		outcome.Adjudicated = outcome.Actual
	}

	return outcome
}

// AdjudicateAll adjudicates every game in the batch, preserving order.
// Games are independent, so the work is spread over the available CPUs.
func AdjudicateAll(games []GameData, resign ResignRule, draw DrawRule) []Outcome {
	outcomes := make([]Outcome, len(games))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range games {
		i := i
		g.Go(func() error {
			outcomes[i] = Adjudicate(games[i], resign, draw)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
