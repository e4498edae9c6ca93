/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pgn

import (
	"testing"
)

func sans(moves []Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.SAN
	}
	return out
}

func TestParseMovetext(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		wantSANs []string
		wantTerm Termination
	}{
		{
			name:     "plain moves",
			text:     "1. e4 e5 2. Nf3 Nc6 1/2-1/2",
			wantSANs: []string{"e4", "e5", "Nf3", "Nc6"},
			wantTerm: DrawnGame,
		},
		{
			name:     "glued move numbers",
			text:     "1.e4 e5 2.Nf3 Nc6 1-0",
			wantSANs: []string{"e4", "e5", "Nf3", "Nc6"},
			wantTerm: WhiteWins,
		},
		{
			name:     "black continuation dots",
			text:     "1. e4 {good} 1... e5 2. Nf3 0-1",
			wantSANs: []string{"e4", "e5", "Nf3"},
			wantTerm: BlackWins,
		},
		{
			name:     "annotation glyphs stripped",
			text:     "1. e4!? e5?? 2. Nf3! $14 Nc6 *",
			wantSANs: []string{"e4", "e5", "Nf3", "Nc6"},
			wantTerm: Unknown,
		},
		{
			name:     "variations skipped with nesting",
			text:     "1. e4 (1. d4 d5 (1... Nf6 2. c4) 2. c4) e5 1-0",
			wantSANs: []string{"e4", "e5"},
			wantTerm: WhiteWins,
		},
		{
			name:     "no termination token",
			text:     "1. e4 e5",
			wantSANs: []string{"e4", "e5"},
			wantTerm: Unknown,
		},
		{
			name:     "castling and mate suffix survive",
			text:     "1. O-O Qh4# 0-1",
			wantSANs: []string{"O-O", "Qh4#"},
			wantTerm: BlackWins,
		},
		{
			name:     "rest-of-line comment",
			text:     "1. e4 e5 ; a sideline note\n2. Nf3 1-0",
			wantSANs: []string{"e4", "e5", "Nf3"},
			wantTerm: WhiteWins,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			moves, term := ParseMovetext(c.text)
			got := sans(moves)
			if len(got) != len(c.wantSANs) {
				t.Fatalf("moves = %v; want %v", got, c.wantSANs)
			}
			for i := range got {
				if got[i] != c.wantSANs[i] {
					t.Fatalf("moves = %v; want %v", got, c.wantSANs)
				}
			}
			if term != c.wantTerm {
				t.Errorf("termination = %v; want %v", term, c.wantTerm)
			}
		})
	}
}

func TestParseMovetextComments(t *testing.T) {
	moves, term := ParseMovetext(
		"1. e4 {+0.20/10 0.100s} e5 {-0.15/10 0.200s} 2. Nf3 Nc6 {} 1/2-1/2")
	if term != DrawnGame {
		t.Fatalf("termination = %v; want 1/2-1/2", term)
	}
	if len(moves) != 4 {
		t.Fatalf("len(moves) = %d; want 4", len(moves))
	}

	if moves[0].Comment == nil || *moves[0].Comment != "+0.20/10 0.100s" {
		t.Errorf("move 1 comment = %v; want +0.20/10 0.100s", moves[0].Comment)
	}
	if moves[1].Comment == nil || *moves[1].Comment != "-0.15/10 0.200s" {
		t.Errorf("move 2 comment = %v; want -0.15/10 0.200s", moves[1].Comment)
	}
	// an uncommented move stays distinguishable from an empty comment
	if moves[2].Comment != nil {
		t.Errorf("move 3 comment = %q; want none", *moves[2].Comment)
	}
	if moves[3].Comment == nil || *moves[3].Comment != "" {
		t.Errorf("move 4 comment = %v; want empty", moves[3].Comment)
	}
}

func TestParseMovetextCommentEdgeCases(t *testing.T) {
	// a comment before any move is dropped
	moves, _ := ParseMovetext("{prefix} 1. e4 e5 *")
	if len(moves) != 2 || moves[0].Comment != nil {
		t.Errorf("prefix comment attached: %+v", moves)
	}

	// only the first of consecutive comments attaches
	moves, _ = ParseMovetext("1. e4 {first} {second} e5 *")
	if moves[0].Comment == nil || *moves[0].Comment != "first" {
		t.Errorf("move 1 comment = %v; want first", moves[0].Comment)
	}

	// an unterminated comment swallows the rest of the text
	moves, term := ParseMovetext("1. e4 {+0.20/10 0.100s e5 2. Nf3 1-0")
	if len(moves) != 1 {
		t.Fatalf("len(moves) = %d; want 1", len(moves))
	}
	if term != Unknown {
		t.Errorf("termination = %v; want unknown", term)
	}
}
