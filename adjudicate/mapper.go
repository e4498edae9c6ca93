/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package adjudicate

import (
	"errors"
	"fmt"

	"github.com/carachess/cara/pgn"
)

// GameData holds one game's actual result and per-ply move data. The score
// is stored as 10x the usual value and scaled down for display:
// 1-0 => 10, 1/2-1/2 => 5, 0-1 => 0.
type GameData struct {
	Score10 int
	Moves   []MoveData
}

// ErrUnknownTermination indicates a game without a usable result.
var ErrUnknownTermination = errors.New("has unknown result")

// MissingCommentError indicates a move without any comment. Ply is 0-based.
type MissingCommentError struct {
	Ply int
}

func (e *MissingCommentError) Error() string {
	return fmt.Sprintf("Ply %d - Missing comment", e.Ply)
}

// BadCommentError indicates a comment that failed annotation parsing.
// Ply is 1-based, unlike MissingCommentError; the mismatch is longstanding
// and diagnostics keep it.
type BadCommentError struct {
	Ply int
}

func (e *BadCommentError) Error() string {
	return fmt.Sprintf("Ply %d - Bad comment format", e.Ply)
}

// MappingError reports the first game in a batch that failed mapping.
// Game is the 1-based game number within the batch.
type MappingError struct {
	Game int
	Err  error
}

func (e *MappingError) Error() string {
	if errors.Is(e.Err, ErrUnknownTermination) {
		return fmt.Sprintf("Game %d %v", e.Game, e.Err)
	}
	return fmt.Sprintf("Game %d, %v", e.Game, e.Err)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

// MapGames validates and converts a batch of raw parsed games into GameData,
// in order. Processing stops at the first structural problem: the returned
// error is a *MappingError and no partial list is produced.
func MapGames(games []pgn.Game) ([]GameData, error) {
	mapped := make([]GameData, 0, len(games))

	for i, game := range games {
		gd, err := mapGame(game)
		if err != nil {
			return nil, &MappingError{Game: i + 1, Err: err}
		}
		mapped = append(mapped, gd)
	}

	return mapped, nil
}

func mapGame(game pgn.Game) (GameData, error) {
	var score10 int
	switch game.Termination {
	case pgn.WhiteWins:
		score10 = 10
	case pgn.DrawnGame:
		score10 = 5
	case pgn.BlackWins:
		score10 = 0
	default:
		return GameData{}, ErrUnknownTermination
	}

	moves := make([]MoveData, 0, len(game.Moves))
	for ply, mv := range game.Moves {
		if mv.Comment == nil {
			return GameData{}, &MissingCommentError{Ply: ply}
		}
		md, err := ParseAnnotation(*mv.Comment)
		if err != nil {
			return GameData{}, &BadCommentError{Ply: ply + 1}
		}
		moves = append(moves, md)
	}

	return GameData{Score10: score10, Moves: moves}, nil
}
