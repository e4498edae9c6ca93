/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package adjudicate

import (
	"testing"
)

// TestParseAnnotation verifies eval and time scaling for well-formed
// engine comments.
func TestParseAnnotation(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		wantEval int
		wantTime int
	}{
		{
			name:     "negative eval, 3 time decimals",
			text:     "-1.91/13 0.031s",
			wantEval: -191,
			wantTime: 31,
		},
		{
			name:     "positive eval, 2 time decimals",
			text:     "+0.18/15 0.45s",
			wantEval: 18,
			wantTime: 450,
		},
		{
			name:     "white mate",
			text:     "+M17/21 0.020s",
			wantEval: 10000,
			wantTime: 20,
		},
		{
			name:     "black mate",
			text:     "-M26/18 0.022s",
			wantEval: -10000,
			wantTime: 22,
		},
		{
			name:     "no sign defaults to positive",
			text:     "0.00/10 2s",
			wantEval: 0,
			wantTime: 2000,
		},
		{
			name:     "1 time decimal scales by 100",
			text:     "+3.25/9 1.2s",
			wantEval: 325,
			wantTime: 1200,
		},
		{
			name:     "mate depth does not change the eval",
			text:     "-M2/30 12.345s",
			wantEval: -10000,
			wantTime: 12345,
		},
		{
			name:     "trailing characters are ignored",
			text:     "-1.91/13 0.031s and then some",
			wantEval: -191,
			wantTime: 31,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			md, err := ParseAnnotation(c.text)
			if err != nil {
				t.Fatalf("ParseAnnotation(%q) error: %v", c.text, err)
			}
			if md.Eval != c.wantEval {
				t.Errorf("Eval = %d; want %d", md.Eval, c.wantEval)
			}
			if md.Time != c.wantTime {
				t.Errorf("Time = %d; want %d", md.Time, c.wantTime)
			}
		})
	}
}

// TestParseAnnotationErrors verifies that deviations from the anchored
// grammar fail outright.
func TestParseAnnotationErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "plain text", text: "Fritz says hi"},
		{name: "missing depth", text: "-1.91 0.031s"},
		{name: "missing trailing s", text: "-1.91/13 0.031"},
		{name: "one eval decimal", text: "-1.9/13 0.031s"},
		{name: "three eval decimals", text: "-1.910/13 0.031s"},
		{name: "no eval decimals", text: "-1/13 0.031s"},
		{name: "four time decimals", text: "-1.91/13 0.0312s"},
		{name: "missing time", text: "-1.91/13 s"},
		{name: "lowercase mate marker", text: "+m17/21 0.020s"},
		{name: "not anchored at start", text: "eval -1.91/13 0.031s"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ParseAnnotation(c.text); err == nil {
				t.Errorf("ParseAnnotation(%q) succeeded; want error", c.text)
			}
		})
	}
}
