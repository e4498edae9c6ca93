/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pgn

import (
	"strings"
	"testing"
	"time"

	"github.com/inhies/go-bytesize"
)

// stringSource feeds canned PGN text to a Scanner.
type stringSource struct {
	text  string
	lines []string
	pos   int
}

func newStringSource(text string) *stringSource {
	return &stringSource{text: text}
}

func (s *stringSource) Open() error {
	s.lines = strings.Split(s.text, "\n")
	s.pos = 0
	return nil
}

func (s *stringSource) Close() error {
	return nil
}

func (s *stringSource) Scan() bool {
	if s.pos >= len(s.lines) {
		return false
	}
	s.pos++
	return true
}

func (s *stringSource) Text() string {
	return s.lines[s.pos-1]
}

func (s *stringSource) Size() bytesize.ByteSize {
	return bytesize.ByteSize(uint64(len(s.text)))
}

func (s *stringSource) BytesRead() bytesize.ByteSize {
	var n int
	for _, l := range s.lines[:s.pos] {
		n += len(l) + 1
	}
	return bytesize.ByteSize(uint64(n))
}

const twoGames = `[Event "Test Match"]
[Site "?"]
[Date "2020.01.15"]
[White "A"]
[Black "B"]
[Result "1-0"]
[Termination "Normal"]
[WhiteElo "2800"]
[BlackElo "2750"]

1. e4 {+0.30/12 0.500s} e5 {-0.25/12 0.500s} 1-0

[Event "Test Match"]
[Site "?"]
[Date "2020.02.20"]
[White "B"]
[Black "A"]
[Result "0-1"]
[Termination "Time forfeit"]
[WhiteElo "2750"]
[BlackElo "2800"]

1. d4 {+0.10/12 0.500s} d5 {-0.10/12 0.500s} 2. c4 {+0.20/12 0.500s} 0-1
`

func scanAll(t *testing.T, text string, filter *Filter) []Game {
	t.Helper()

	src := newStringSource(text)
	if err := src.Open(); err != nil {
		t.Fatalf("Open: %v", err)
	}

	var games []Game
	sc := NewScanner(src, filter)
	for sc.Scan() {
		games = append(games, sc.Game())
	}
	return games
}

func TestScannerSplitsGames(t *testing.T) {
	games := scanAll(t, twoGames, nil)

	if len(games) != 2 {
		t.Fatalf("len(games) = %d; want 2", len(games))
	}
	if games[0].Termination != WhiteWins || len(games[0].Moves) != 2 {
		t.Errorf("game 1 = %+v; want 1-0 with 2 moves", games[0])
	}
	if games[1].Termination != BlackWins || len(games[1].Moves) != 3 {
		t.Errorf("game 2 = %+v; want 0-1 with 3 moves", games[1])
	}
	if c := games[0].Moves[0].Comment; c == nil || *c != "+0.30/12 0.500s" {
		t.Errorf("game 1 move 1 comment = %v; want +0.30/12 0.500s", c)
	}
}

func TestScannerResultTagFallback(t *testing.T) {
	// no termination token in the movetext: the Result tag decides
	text := `[Event "Test"]
[Result "1/2-1/2"]

1. e4 {+0.10/10 0.100s} e5 {-0.10/10 0.100s}
`
	games := scanAll(t, text, nil)
	if len(games) != 1 {
		t.Fatalf("len(games) = %d; want 1", len(games))
	}
	if games[0].Termination != DrawnGame {
		t.Errorf("termination = %v; want 1/2-1/2", games[0].Termination)
	}
}

func TestScannerFilter(t *testing.T) {
	cases := []struct {
		name   string
		filter *Filter
		want   int
	}{
		{name: "nil keeps all", filter: nil, want: 2},
		{name: "zero keeps all", filter: &Filter{}, want: 2},
		{name: "min elo met", filter: &Filter{MinElo: 2700}, want: 2},
		{name: "min elo drops both", filter: &Filter{MinElo: 2780}, want: 0},
		{name: "termination", filter: &Filter{Termination: "Normal"}, want: 1},
		{
			name:   "after drops first",
			filter: &Filter{After: time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC)},
			want:   1,
		},
		{
			name:   "before drops second",
			filter: &Filter{Before: time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC)},
			want:   1,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if games := scanAll(t, twoGames, c.filter); len(games) != c.want {
				t.Errorf("kept %d games; want %d", len(games), c.want)
			}
		})
	}
}

func TestScannerUnparsableDateKept(t *testing.T) {
	text := `[Event "Test"]
[Date "????.??.??"]
[Result "1-0"]

1. e4 e5 1-0
`
	filter := &Filter{After: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	if games := scanAll(t, text, filter); len(games) != 1 {
		t.Errorf("kept %d games; want 1", len(games))
	}
}
