/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package adjudicate

import (
	"errors"
	"strconv"
	"strings"
)

// Rule construction and rule-spec parsing failures. The draw rule reuses
// the resign rule's wording for its evaluation bound, so ErrNegativeEval
// carries the same message as ErrNonPositiveEval while staying a distinct
// value.
var (
	ErrRuleBadFormat       = errors.New("has bad format")
	ErrNonPositiveEval     = errors.New("evaluation must be positive")
	ErrNonPositiveCount    = errors.New("count must be positive")
	ErrNonPositiveFromMove = errors.New("move from must be positive")
	ErrNegativeEval        = errors.New("evaluation must be positive")
)

// ResignRule: an engine resigns once its evaluation has been at or below
// -Eval centipawns for Count consecutive of its own moves. The zero value is
// not valid; use NewResignRule or ResignNever.
type ResignRule struct {
	Eval  int
	Count int

	disabled bool
}

// NewResignRule validates and builds an active resign rule.
func NewResignRule(eval, count int) (ResignRule, error) {
	if eval <= 0 {
		return ResignRule{}, ErrNonPositiveEval
	}
	if count <= 0 {
		return ResignRule{}, ErrNonPositiveCount
	}

	return ResignRule{Eval: eval, Count: count}, nil
}

// ResignNever returns a resign rule that never applies.
func ResignNever() ResignRule {
	return ResignRule{disabled: true}
}

// Disabled reports whether the rule can never apply.
func (r ResignRule) Disabled() bool {
	return r.disabled
}

// DrawRule: the game is drawn once the evaluation has stayed within
// [-Eval, Eval] centipawns for Count consecutive full moves. The rule may
// only apply on or after full move FromMove.
type DrawRule struct {
	FromMove int
	Eval     int
	Count    int

	disabled bool
}

// NewDrawRule validates and builds an active draw rule.
func NewDrawRule(fromMove, eval, count int) (DrawRule, error) {
	if fromMove <= 0 {
		return DrawRule{}, ErrNonPositiveFromMove
	}
	if eval < 0 {
		return DrawRule{}, ErrNegativeEval
	}
	if count <= 0 {
		return DrawRule{}, ErrNonPositiveCount
	}

	return DrawRule{FromMove: fromMove, Eval: eval, Count: count}, nil
}

// DrawNever returns a draw rule that never applies.
func DrawNever() DrawRule {
	return DrawRule{disabled: true}
}

// Disabled reports whether the rule can never apply.
func (r DrawRule) Disabled() bool {
	return r.disabled
}

// ParseResignRule parses a resign rule spec: "none" or "<eval>/<count>".
func ParseResignRule(spec string) (ResignRule, error) {
	if spec == "none" {
		return ResignNever(), nil
	}

	parts := strings.Split(spec, "/")
	if len(parts) != 2 {
		return ResignRule{}, ErrRuleBadFormat
	}

	eval, err := strconv.Atoi(parts[0])
	if err != nil {
		return ResignRule{}, ErrRuleBadFormat
	}
	if eval <= 0 {
		return ResignRule{}, ErrNonPositiveEval
	}

	count, err := strconv.Atoi(parts[1])
	if err != nil {
		return ResignRule{}, ErrRuleBadFormat
	}
	if count <= 0 {
		return ResignRule{}, ErrNonPositiveCount
	}

	return NewResignRule(eval, count)
}

// ParseDrawRule parses a draw rule spec: "none" or
// "<from_move>:<eval>/<count>". The spec form requires a positive
// evaluation even though NewDrawRule accepts zero.
func ParseDrawRule(spec string) (DrawRule, error) {
	if spec == "none" {
		return DrawNever(), nil
	}

	headTail := strings.Split(spec, ":")
	if len(headTail) != 2 {
		return DrawRule{}, ErrRuleBadFormat
	}

	fromMove, err := strconv.Atoi(headTail[0])
	if err != nil {
		return DrawRule{}, ErrRuleBadFormat
	}
	if fromMove <= 0 {
		return DrawRule{}, ErrNonPositiveFromMove
	}

	parts := strings.Split(headTail[1], "/")
	if len(parts) != 2 {
		return DrawRule{}, ErrRuleBadFormat
	}

	eval, err := strconv.Atoi(parts[0])
	if err != nil {
		return DrawRule{}, ErrRuleBadFormat
	}
	if eval <= 0 {
		return DrawRule{}, ErrNegativeEval
	}

	count, err := strconv.Atoi(parts[1])
	if err != nil {
		return DrawRule{}, ErrRuleBadFormat
	}
	if count <= 0 {
		return DrawRule{}, ErrNonPositiveCount
	}

	return NewDrawRule(fromMove, eval, count)
}
