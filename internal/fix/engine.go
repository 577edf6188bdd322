// Package fix applies lint fix suggestions to files on disk.
package fix

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"shebang/internal/lint"
	"shebang/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	Title     string
	Code      lint.Code
	Message   string
	Path      string
	EditCount int
}

// SkippedFix captures a skipped fix with a reason.
type SkippedFix struct {
	Title  string
	Reason string
}

// FileChange summarises modifications performed on a file.
type FileChange struct {
	Path      string
	EditCount int
}

// Result aggregates applied fixes, skipped ones, and file changes.
type Result struct {
	Applied     []AppliedFix
	Skipped     []SkippedFix
	FileChanges []FileChange
}

// Options configures Apply.
type Options struct {
	// DryRun stages every edit but writes nothing.
	DryRun bool
}

type candidate struct {
	issue lint.Issue
	fix   lint.Fix
	// span covers every edit of the fix; the application order keys on it
	// so fixes land in file order even when a fix edits far from its issue.
	span  source.Span
	order int
}

// Apply collects fixes from issues, drops the ones that cannot be applied
// (virtual files, out-of-range or conflicting edits), and splices the rest
// into their files.
func Apply(fs *source.FileSet, issues []lint.Issue, opts Options) (*Result, error) {
	result := &Result{
		Applied:     make([]AppliedFix, 0),
		Skipped:     make([]SkippedFix, 0),
		FileChanges: make([]FileChange, 0),
	}
	if fs == nil {
		return result, fmt.Errorf("fix: FileSet is nil")
	}

	candidates := gatherCandidates(issues)
	if len(candidates) == 0 {
		return result, ErrNoFixes
	}
	sortCandidates(candidates)

	accepted := make(map[source.FileID][]lint.FixEdit)
	counts := make(map[source.FileID]int)

	for _, cand := range candidates {
		fileID := cand.fix.Edits[0].Span.File
		file := fs.Get(fileID)
		if file == nil {
			result.Skipped = append(result.Skipped, SkippedFix{Title: cand.fix.Title, Reason: "unknown file"})
			continue
		}
		if file.Flags&source.FileVirtual != 0 {
			result.Skipped = append(result.Skipped, SkippedFix{Title: cand.fix.Title, Reason: "target file is virtual"})
			continue
		}
		if reason := stage(file, accepted[fileID], cand.fix.Edits); reason != "" {
			result.Skipped = append(result.Skipped, SkippedFix{Title: cand.fix.Title, Reason: reason})
			continue
		}
		accepted[fileID] = append(accepted[fileID], cand.fix.Edits...)
		counts[fileID] += len(cand.fix.Edits)
		result.Applied = append(result.Applied, AppliedFix{
			Title:     cand.fix.Title,
			Code:      cand.issue.Code,
			Message:   cand.issue.Message,
			Path:      file.Path,
			EditCount: len(cand.fix.Edits),
		})
	}

	if len(result.Applied) == 0 {
		return result, ErrNoFixes
	}

	// deterministic file order
	fileIDs := make([]source.FileID, 0, len(accepted))
	for id := range accepted {
		fileIDs = append(fileIDs, id)
	}
	sort.Slice(fileIDs, func(i, j int) bool { return fileIDs[i] < fileIDs[j] })

	for _, id := range fileIDs {
		file := fs.Get(id)
		content := splice(file.Content, accepted[id])
		if !opts.DryRun {
			if err := os.WriteFile(file.Path, content, 0o644); err != nil {
				return result, fmt.Errorf("fix: write %s: %w", file.Path, err)
			}
		}
		result.FileChanges = append(result.FileChanges, FileChange{
			Path:      file.Path,
			EditCount: counts[id],
		})
	}
	return result, nil
}

func gatherCandidates(issues []lint.Issue) []candidate {
	cands := make([]candidate, 0)
	order := 0
	for _, issue := range issues {
		for _, f := range issue.Fixes {
			if len(f.Edits) == 0 {
				continue
			}
			sp := f.Edits[0].Span
			for _, edit := range f.Edits[1:] {
				sp = sp.Cover(edit.Span)
			}
			cands = append(cands, candidate{issue: issue, fix: f, span: sp, order: order})
			order++
		}
	}
	return cands
}

// sortCandidates produces a deterministic application order: file, covering
// span start, covering span end, insertion order.
func sortCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		si, sj := candidates[i].span, candidates[j].span
		if si.File != sj.File {
			return si.File < sj.File
		}
		if si.Start != sj.Start {
			return si.Start < sj.Start
		}
		if si.End != sj.End {
			return si.End < sj.End
		}
		return candidates[i].order < candidates[j].order
	})
}

// stage validates a fix's edits against the file and the edits already
// accepted for it. Returns a human-readable skip reason, or "".
func stage(file *source.File, existing []lint.FixEdit, edits []lint.FixEdit) string {
	for _, edit := range edits {
		if edit.Span.File != file.ID {
			return "fix spans multiple files"
		}
		if edit.Span.Start > edit.Span.End || int(edit.Span.End) > len(file.Content) {
			return "edit span out of range"
		}
		for _, prev := range existing {
			if overlaps(edit.Span, prev.Span) {
				return "conflicts with a previously applied fix"
			}
		}
	}
	return ""
}

func overlaps(a, b source.Span) bool {
	return a.Start < b.End && b.Start < a.End
}

// splice applies edits to content. Edits are applied back to front so byte
// offsets stay valid without delta tracking.
func splice(content []byte, edits []lint.FixEdit) []byte {
	ordered := append([]lint.FixEdit(nil), edits...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Span.Start == ordered[j].Span.Start {
			return ordered[i].Span.End > ordered[j].Span.End
		}
		return ordered[i].Span.Start > ordered[j].Span.Start
	})

	out := append([]byte(nil), content...)
	for _, edit := range ordered {
		start, end := int(edit.Span.Start), int(edit.Span.End)
		next := make([]byte, 0, len(out)-(end-start)+len(edit.NewText))
		next = append(next, out[:start]...)
		next = append(next, edit.NewText...)
		next = append(next, out[end:]...)
		out = next
	}
	return out
}
