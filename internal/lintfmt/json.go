package lintfmt

import (
	"encoding/json"
	"io"

	"shebang/internal/lint"
	"shebang/internal/source"
)

// jsonIssue is the stable machine-readable form of an issue.
type jsonIssue struct {
	File     string     `json:"file"`
	Line     uint32     `json:"line"`
	Col      uint32     `json:"col"`
	Severity string     `json:"severity"`
	Code     string     `json:"code"`
	Rule     string     `json:"rule"`
	Message  string     `json:"message"`
	Fixable  bool       `json:"fixable"`
	Notes    []jsonNote `json:"notes,omitempty"`
}

type jsonNote struct {
	File    string `json:"file"`
	Line    uint32 `json:"line"`
	Col     uint32 `json:"col"`
	Message string `json:"message"`
}

type jsonReport struct {
	Issues   []jsonIssue `json:"issues"`
	Errors   int         `json:"errors"`
	Warnings int         `json:"warnings"`
	Infos    int         `json:"infos"`
}

// JSON renders the whole bag as a single JSON document.
func JSON(w io.Writer, bag *lint.Bag, fs *source.FileSet, opts Options) error {
	report := jsonReport{Issues: make([]jsonIssue, 0, bag.Len())}
	report.Errors, report.Warnings, report.Infos = bag.Counts()

	for _, issue := range bag.Items() {
		path, pos := position(fs, issue.Primary)
		out := jsonIssue{
			File:     opts.displayPath(path),
			Line:     pos.Line,
			Col:      pos.Col,
			Severity: severityWord(issue.Severity),
			Code:     issue.Code.ID(),
			Rule:     issue.Code.Name(),
			Message:  issue.Message,
			Fixable:  len(issue.Fixes) > 0,
		}
		for _, note := range issue.Notes {
			notePath, notePos := position(fs, note.Span)
			out.Notes = append(out.Notes, jsonNote{
				File:    opts.displayPath(notePath),
				Line:    notePos.Line,
				Col:     notePos.Col,
				Message: note.Msg,
			})
		}
		report.Issues = append(report.Issues, out)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
