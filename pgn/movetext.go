/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pgn

import (
	"strings"
)

// ParseMovetext tokenizes a movetext section into moves with their attached
// comments and returns the game termination marker, if present. Braced
// comments attach to the move they follow; move numbers, NAGs, rest-of-line
// comments and variations are skipped.
func ParseMovetext(text string) ([]Move, Termination) {
	var moves []Move
	term := Unknown

	i := 0
	for i < len(text) {
		switch c := text[i]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++

		case c == '{':
			end := strings.IndexByte(text[i:], '}')
			if end < 0 {
				// unterminated comment swallows the rest
				attachComment(moves, strings.TrimSpace(text[i+1:]))
				return moves, term
			}
			attachComment(moves, strings.TrimSpace(text[i+1:i+end]))
			i += end + 1

		case c == ';':
			nl := strings.IndexByte(text[i:], '\n')
			if nl < 0 {
				return moves, term
			}
			i += nl + 1

		case c == '(':
			i += skipVariation(text[i:])

		case c == '$':
			i += tokenLen(text[i:])

		default:
			n := tokenLen(text[i:])
			token := text[i : i+n]
			i += n

			if t, ok := terminationToken(token); ok {
				term = t
				continue
			}
			san := token
			if stripped, ok := stripMoveNumber(token); ok {
				san = stripped
			}
			san = strings.TrimRight(san, "!?")
			if san != "" {
				moves = append(moves, Move{SAN: san})
			}
		}
	}

	return moves, term
}

// attachComment sets the last move's comment if it doesn't have one yet.
// Comments before the first move are dropped.
func attachComment(moves []Move, comment string) {
	if len(moves) == 0 || moves[len(moves)-1].Comment != nil {
		return
	}
	moves[len(moves)-1].Comment = &comment
}

// tokenLen returns the length of the token starting text, up to the next
// whitespace or structural character.
func tokenLen(text string) int {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case ' ', '\t', '\n', '\r', '{', '(', ';':
			return i
		}
	}
	return len(text)
}

// skipVariation returns the length of a parenthesized variation, nesting
// included. Unbalanced input swallows the rest of the text.
func skipVariation(text string) int {
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return len(text)
}

func terminationToken(token string) (Termination, bool) {
	switch token {
	case "1-0", "0-1", "1/2-1/2":
		return ParseTermination(token), true
	case "*":
		return Unknown, true
	}
	return Unknown, false
}

// stripMoveNumber handles tokens that begin with a move number: "12.",
// "3...", bare "7", and glued forms like "1.e4". It reports whether the
// token started with a number and returns whatever SAN followed it.
func stripMoveNumber(token string) (string, bool) {
	if token == "" || token[0] < '0' || token[0] > '9' {
		return "", false
	}

	i := 0
	for i < len(token) && token[i] >= '0' && token[i] <= '9' {
		i++
	}
	if i == len(token) {
		return "", true
	}
	if token[i] != '.' {
		// digits followed by something other than '.': not a move
		// number (results were handled earlier)
		return "", false
	}
	for i < len(token) && token[i] == '.' {
		i++
	}

	return token[i:], true
}
