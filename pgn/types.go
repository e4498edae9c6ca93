/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pgn

// Termination is a game's recorded result.
type Termination int

const (
	Unknown Termination = iota
	WhiteWins
	DrawnGame
	BlackWins
)

func (t Termination) String() string {
	switch t {
	case WhiteWins:
		return "1-0"
	case DrawnGame:
		return "1/2-1/2"
	case BlackWins:
		return "0-1"
	}
	return "*"
}

// ParseTermination maps a PGN result string to a Termination.
func ParseTermination(result string) Termination {
	switch result {
	case "1-0":
		return WhiteWins
	case "0-1":
		return BlackWins
	case "1/2-1/2":
		return DrawnGame
	}
	return Unknown
}

// Move is one half-move with its annotation comment, if any. A nil Comment
// means the move carried no comment at all, as opposed to an empty one.
type Move struct {
	SAN     string
	Comment *string
}

// Game is one raw parsed game: its termination and its moves in ply order.
type Game struct {
	Termination Termination
	Moves       []Move
}
