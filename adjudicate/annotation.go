/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package adjudicate

import (
	"errors"
	"regexp"
	"strconv"
)

// MoveData holds the engine evaluation after a move, in centipawns, and the
// time taken for the move in milliseconds. A forced mate is encoded as an
// evaluation of magnitude 10000 regardless of mate depth.
type MoveData struct {
	Eval int
	Time int
}

// ErrBadAnnotation is returned when a move comment does not match the
// expected engine annotation format.
var ErrBadAnnotation = errors.New("bad comment format")

// Engine annotations look like "-1.91/13 0.031s" or "+M17/21 0.020s":
// an optional sign, either a mate marker or an evaluation with exactly two
// decimals, the search depth after a slash, then the move time in seconds
// with up to three decimals. Anything after the time field is ignored.
var annotationRe = regexp.MustCompile(
	`^(?P<sign>-|\+)?(?:(?P<mate>M\d+)|(?P<eval>\d+)\.(?P<evalDec>\d{2}))/\d+\s(?P<time>\d+)(?:\.(?P<timeDec>\d{1,3}))?s`)

var (
	signIdx    = annotationRe.SubexpIndex("sign")
	mateIdx    = annotationRe.SubexpIndex("mate")
	evalIdx    = annotationRe.SubexpIndex("eval")
	evalDecIdx = annotationRe.SubexpIndex("evalDec")
	timeIdx    = annotationRe.SubexpIndex("time")
	timeDecIdx = annotationRe.SubexpIndex("timeDec")
)

// ParseAnnotation parses one per-move engine comment into a MoveData.
func ParseAnnotation(text string) (MoveData, error) {
	m := annotationRe.FindStringSubmatch(text)
	if m == nil {
		return MoveData{}, ErrBadAnnotation
	}

	return MoveData{
		Eval: annotationEval(m),
		Time: annotationTime(m),
	}, nil
}

func annotationEval(m []string) int {
	var eval int

	if m[mateIdx] != "" {
		eval = 10000
	} else {
		whole, _ := strconv.Atoi(m[evalIdx])
		frac, _ := strconv.Atoi(m[evalDecIdx])
		eval = 100*whole + frac
	}

	if m[signIdx] == "-" {
		eval = -eval
	}

	return eval
}

func annotationTime(m []string) int {
	sec, _ := strconv.Atoi(m[timeIdx])
	ms := 1000 * sec

	if dec := m[timeDecIdx]; dec != "" {
		frac, _ := strconv.Atoi(dec)
		// ".2" means 200ms, ".45" 450ms, ".031" 31ms
		for i := len(dec); i < 3; i++ {
			frac *= 10
		}
		ms += frac
	}

	return ms
}
