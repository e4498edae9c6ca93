/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"

	"github.com/carachess/cara/adjudicate"
	"github.com/carachess/cara/internal"
	"github.com/carachess/cara/pgn"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":   handleHelp,
	"resign": handleResign,
	"draw":   handleDraw,
	"test":   handleTest,
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(args []string) {
	usage()
}

func handleResign(args []string) {
	fmt.Fprintln(os.Stderr, "This command isn't implemented yet! :O")
	os.Exit(1)
}

func handleDraw(args []string) {
	fmt.Fprintln(os.Stderr, "This command isn't implemented yet! :O")
	os.Exit(1)
}

func handleTest(args []string) {
	fs := flag.NewFlagSet("test", flag.ExitOnError)
	verbose := fs.Bool("verbose", false, "Print one line per game")
	prof := fs.Bool("profile", false, "Write a CPU profile")
	progress := fs.Bool("progress", false, "Show read progress on stderr")
	minElo := fs.Int("min-elo", 0, "Skip games where either player is rated below this")
	termTag := fs.String("termination", "", "Require this Termination tag value (e.g. Normal)")
	after := fs.String("after", "", "Skip games dated before this date")
	before := fs.String("before", "", "Skip games dated after this date")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	// flags may also trail the positional arguments
	pos := fs.Args()
	if len(pos) > 3 {
		if err := fs.Parse(pos[3:]); err != nil {
			os.Exit(1)
		}
		pos = pos[:3]
	}
	if len(pos) != 3 {
		fmt.Fprintln(os.Stderr,
			"usage: cara test <file> <resign_rule> <draw_rule> [--verbose]")
		os.Exit(1)
	}
	file, resignSpec, drawSpec := pos[0], pos[1], pos[2]

	if *prof {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	resignRule, err := adjudicate.ParseResignRule(resignSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: Resign rule %v\n", err)
		os.Exit(1)
	}

	drawRule, err := adjudicate.ParseDrawRule(drawSpec)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: Draw rule %v\n", err)
		os.Exit(1)
	}

	filter, err := buildFilter(*minElo, *termTag, *after, *before)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var progressTo io.Writer
	if *progress {
		progressTo = os.Stderr
	}

	games, err := pgn.ReadGames(file, filter, progressTo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	mapped, err := adjudicate.MapGames(games)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	outcomes := adjudicate.AdjudicateAll(mapped, resignRule, drawRule)

	if *verbose {
		adjudicate.WriteVerbose(os.Stdout, outcomes)
	}
	report := adjudicate.BuildReport(outcomes)
	report.Write(os.Stdout)
}

// buildFilter returns nil when no filtering flag is set, so the common case
// stays a straight pass-through.
func buildFilter(minElo int, termTag, after, before string) (*pgn.Filter, error) {
	if minElo == 0 && termTag == "" && after == "" && before == "" {
		return nil, nil
	}

	filter := &pgn.Filter{MinElo: minElo, Termination: termTag}

	var err error
	if after != "" {
		filter.After, err = internal.ParseDateOrZero(after)
		if err != nil {
			return nil, fmt.Errorf("bad --after date %q", after)
		}
	}
	if before != "" {
		filter.Before, err = internal.ParseDateOrZero(before)
		if err != nil {
			return nil, fmt.Errorf("bad --before date %q", before)
		}
	}

	return filter, nil
}
