package lint

import (
	"fmt"
)

// Code identifies a lint rule. The numeric ranges group rules by the part of
// the document they inspect; ID() renders the stable external form.
type Code uint16

const (
	UnknownCode Code = 0

	// Heading rules
	HeadingBlankLine Code = 1001
	HeadingLevel     Code = 1002

	// Inline rules (links, images)
	LinkEmptyURL Code = 2001
	ImageNoAlt   Code = 2002

	// Block rules (fences, tables)
	FenceBlankLine Code = 3001
	FenceUnclosed  Code = 3002
	TablePipeStart Code = 3003

	// Whitespace / style rules
	TrailingSpace Code = 4001

	// I/O failures surfaced as issues so directory runs keep going
	IOLoadFileError Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode:      "Unknown issue",
	HeadingBlankLine: "Heading not followed by a blank line",
	HeadingLevel:     "Heading level exceeds 6",
	LinkEmptyURL:     "Link with empty URL",
	ImageNoAlt:       "Image without alt text",
	FenceBlankLine:   "Code fence not followed by a blank line",
	FenceUnclosed:    "Unclosed code fence",
	TablePipeStart:   "Table row does not start with a pipe",
	TrailingSpace:    "Trailing whitespace",
	IOLoadFileError:  "I/O load file error",
}

// codeName maps codes to the slugs used in lint config files.
var codeName = map[Code]string{
	HeadingBlankLine: "heading-blank-line",
	HeadingLevel:     "heading-level",
	LinkEmptyURL:     "empty-link",
	ImageNoAlt:       "image-alt",
	FenceBlankLine:   "fence-blank-line",
	FenceUnclosed:    "unclosed-fence",
	TablePipeStart:   "table-pipe",
	TrailingSpace:    "trailing-space",
}

var nameCode = func() map[string]Code {
	m := make(map[string]Code, len(codeName))
	for c, n := range codeName {
		m[n] = c
	}
	return m
}()

// defaultSeverity is the severity a rule reports with unless the config
// overrides it.
var defaultSeverity = map[Code]Severity{
	HeadingBlankLine: SevWarning,
	HeadingLevel:     SevError,
	LinkEmptyURL:     SevError,
	ImageNoAlt:       SevWarning,
	FenceBlankLine:   SevWarning,
	FenceUnclosed:    SevError,
	TablePipeStart:   SevWarning,
	TrailingSpace:    SevInfo,
	IOLoadFileError:  SevError,
}

// CodeByName resolves a config slug back to a code.
func CodeByName(name string) (Code, bool) {
	c, ok := nameCode[name]
	return c, ok
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("MDH%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("MDI%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("MDB%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("MDS%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "MD0000"
}

// Name returns the config slug, or the ID for codes without one.
func (c Code) Name() string {
	if n, ok := codeName[c]; ok {
		return n
	}
	return c.ID()
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// DefaultSeverity returns the built-in severity for a code.
func (c Code) DefaultSeverity() Severity {
	if s, ok := defaultSeverity[c]; ok {
		return s
	}
	return SevWarning
}
