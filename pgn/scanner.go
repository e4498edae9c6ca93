/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pgn

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"
)

// Scanner splits a source into games. Games rejected by the filter are
// skipped transparently.
type Scanner struct {
	// ProgressTo, when set, receives a progress line roughly once per
	// second while scanning.
	ProgressTo io.Writer

	src        Source
	filter     *Filter
	game       Game
	pushedBack string
	gameCount  int
	clock      time.Time
}

func NewScanner(src Source, filter *Filter) *Scanner {
	return &Scanner{
		src:    src,
		filter: filter,
		clock:  time.Now(),
	}
}

// Scan advances to the next game that passes the filter. The game can be
// accessed through the Game method.
func (s *Scanner) Scan() bool {
	for {
		raw, ok := s.nextRaw()
		if !ok {
			return false
		}
		if !raw.keep {
			continue
		}

		moves, term := ParseMovetext(raw.movetext.String())
		if term == Unknown {
			term = ParseTermination(raw.result)
		}
		s.game = Game{Termination: term, Moves: moves}
		s.gameCount++

		return true
	}
}

// Game returns the game found by the last successful Scan.
func (s *Scanner) Game() Game {
	return s.game
}

// rawGame collects one game's headers and movetext as they stream by.
type rawGame struct {
	started  bool
	sawMoves bool
	keep     bool
	result   string
	movetext strings.Builder
}

func (raw *rawGame) addTag(tag Tag, value string, filter *Filter) {
	raw.started = true
	if tag == TagResult {
		raw.result = value
	}
	if raw.keep && !filter.keepTag(tag, value) {
		raw.keep = false
	}
}

// nextRaw reads one raw game from the source. A new Event tag after
// movetext marks the next game; the tag line is pushed back for it.
func (s *Scanner) nextRaw() (*rawGame, bool) {
	raw := &rawGame{keep: true}

	if s.pushedBack != "" {
		tag, value := parseTag(s.pushedBack)
		raw.addTag(tag, value, s.filter)
		s.pushedBack = ""
	}

	for s.src.Scan() {
		s.trackProgress()

		line := strings.TrimSpace(s.src.Text())
		if line == "" {
			continue
		}

		if isTagLine(line) {
			tag, value := parseTag(line)
			if tag == TagEvent && raw.started && raw.sawMoves {
				s.pushedBack = line
				return raw, true
			}
			raw.addTag(tag, value, s.filter)
		} else {
			raw.started = true
			raw.sawMoves = true
			raw.movetext.WriteString(line)
			raw.movetext.WriteByte('\n')
		}
	}

	if raw.started {
		return raw, true
	}
	return nil, false
}

func (s *Scanner) trackProgress() {
	if s.ProgressTo == nil {
		return
	}
	if time.Since(s.clock) < time.Second {
		return
	}
	s.clock = time.Now()
	s.writeProgress(false)
}

// writeProgress renders a progress bar from the source's byte counts.
func (s *Scanner) writeProgress(done bool) {
	if s.ProgressTo == nil {
		return
	}

	progress := 1.0
	if !done && s.src.Size() > 0 {
		progress = math.Min(float64(s.src.BytesRead())/float64(s.src.Size()), 1)
	}

	barN := int(50 * progress)
	bar := "[" + strings.Repeat("#", barN) + strings.Repeat(".", 50-barN) + "]"
	fmt.Fprintf(s.ProgressTo, "%s %.2f%%, games: %d, read: %v\r",
		bar, 100*progress, s.gameCount, s.src.BytesRead())
}

// ReadGames expands a path spec, scans every source and returns all kept
// games in file order.
func ReadGames(path string, filter *Filter, progress io.Writer) ([]Game, error) {
	sources, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}

	var games []Game
	for _, src := range sources {
		if err := src.Open(); err != nil {
			return nil, fmt.Errorf("unable to open pgn: %w", err)
		}

		sc := NewScanner(src, filter)
		sc.ProgressTo = progress
		for sc.Scan() {
			games = append(games, sc.Game())
		}
		if progress != nil {
			sc.writeProgress(true)
			fmt.Fprintln(progress)
		}

		if err := src.Close(); err != nil {
			return nil, fmt.Errorf("unable to close pgn: %w", err)
		}
	}

	return games, nil
}
