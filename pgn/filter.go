/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pgn

import (
	"strconv"
	"time"

	"github.com/carachess/cara/internal"
)

// Filter drops games by their header tags before any of them are mapped or
// replayed. The zero value (or a nil *Filter) keeps everything. Conditions
// are evaluated per tag as the headers stream by, so a game is dropped as
// soon as one tag disqualifies it.
type Filter struct {
	// MinElo drops games where either player is rated below it. Games
	// without a parsable rating are dropped too when it is set.
	MinElo int

	// Termination, when non-empty, requires the Termination tag to match
	// exactly (e.g. "Normal" to exclude time forfeits).
	Termination string

	// After and Before bound the Date tag. Games with absent or
	// unparsable dates are kept.
	After  time.Time
	Before time.Time
}

func (f *Filter) keepTag(tag Tag, value string) bool {
	if f == nil {
		return true
	}

	switch tag {
	case TagWhiteElo, TagBlackElo:
		if f.MinElo > 0 {
			elo, err := strconv.Atoi(value)
			if err != nil || elo < f.MinElo {
				return false
			}
		}

	case TagTermination:
		if f.Termination != "" && value != f.Termination {
			return false
		}

	case TagDate:
		if f.After.IsZero() && f.Before.IsZero() {
			return true
		}
		date, err := internal.ParseDateOrZero(value)
		if err != nil || date.IsZero() {
			return true
		}
		if !f.After.IsZero() && date.Before(f.After) {
			return false
		}
		if !f.Before.IsZero() && date.After(f.Before) {
			return false
		}
	}

	return true
}
