package lint

import (
	"strings"

	"shebang/internal/source"
)

// allRules is the built-in rule set. Order only matters for reporting before
// the bag is sorted, so keep it stable anyway.
var allRules = []Rule{
	headingBlankLineRule{},
	headingLevelRule{},
	emptyLinkRule{},
	imageAltRule{},
	fenceRule{},
	tablePipeRule{},
	trailingSpaceRule{},
}

// Rules lists the built-in rule codes, for help output.
func Rules() []Code {
	out := make([]Code, 0, len(allRules))
	for _, r := range allRules {
		out = append(out, r.Code())
	}
	return out
}

// spanWithin returns the span covering [start, end) byte columns of a
// 1-based line.
func spanWithin(f *source.File, line, start, end int) source.Span {
	sp := f.LineSpan(line)
	out := source.Span{
		File:  sp.File,
		Start: sp.Start + uint32(start),
		End:   sp.Start + uint32(end),
	}
	if out.End > sp.End {
		out.End = sp.End
	}
	if out.Start > out.End {
		out.Start = out.End
	}
	return out
}

// insertLineBefore is an edit that inserts a blank line before the given
// 1-based line.
func insertLineBefore(f *source.File, line int) FixEdit {
	at := f.LineSpan(line).Start
	return FixEdit{
		Span:    source.Span{File: f.ID, Start: at, End: at},
		NewText: "\n",
	}
}

// headingMarker returns the number of leading '#' runes when the line is an
// ATX heading marker, and 0 otherwise. Levels beyond 6 are still counted so
// the level rule can flag them.
func headingMarker(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 {
		return 0
	}
	if n < len(line) && line[n] != ' ' && line[n] != '\t' {
		return 0
	}
	return n
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
