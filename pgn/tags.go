/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pgn

import (
	"regexp"
)

// Tag is a PGN header tag name.
type Tag string

const (
	TagEvent       Tag = "Event"
	TagSite        Tag = "Site"
	TagDate        Tag = "Date"
	TagRound       Tag = "Round"
	TagWhite       Tag = "White"
	TagBlack       Tag = "Black"
	TagResult      Tag = "Result"
	TagTermination Tag = "Termination"
	TagTimeControl Tag = "TimeControl"
	TagWhiteElo    Tag = "WhiteElo"
	TagBlackElo    Tag = "BlackElo"
)

var tagRe = regexp.MustCompile(`^\[(?P<tag>\w+)\s+"(?P<value>.*)"\]`)

var (
	tagNameIdx  = tagRe.SubexpIndex("tag")
	tagValueIdx = tagRe.SubexpIndex("value")
)

func isTagLine(line string) bool {
	return tagRe.MatchString(line)
}

func parseTag(line string) (Tag, string) {
	m := tagRe.FindStringSubmatch(line)
	return Tag(m[tagNameIdx]), m[tagValueIdx]
}
