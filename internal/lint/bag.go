package lint

import (
	"fmt"
	"sort"
)

// Bag accumulates issues up to a fixed cap.
type Bag struct {
	items []Issue
	max   uint16
}

func NewBag(max int) *Bag {
	return &Bag{
		items: make([]Issue, 0, max),
		max:   uint16(max),
	}
}

// Add appends an issue, honoring the cap. Returns false when the issue was
// dropped because the bag is full.
func (b *Bag) Add(i Issue) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, i)
	return true
}

func (b *Bag) Cap() uint16 {
	return b.max
}

// HasErrors reports whether any issue is an error.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings reports whether any issue is a warning or worse.
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Counts returns the number of errors, warnings and infos.
func (b *Bag) Counts() (errors, warnings, infos int) {
	for i := range b.items {
		switch b.items[i].Severity {
		case SevError:
			errors++
		case SevWarning:
			warnings++
		default:
			infos++
		}
	}
	return
}

// Items returns a read-only view of the issues.
// Do not modify the returned slice; it aliases the bag's storage.
func (b *Bag) Items() []Issue {
	return b.items
}

// Merge appends issues from another bag, growing the cap when needed.
func (b *Bag) Merge(other *Bag) {
	newTotal := len(b.items) + len(other.items)
	if uint16(newTotal) > b.max {
		b.max = uint16(newTotal)
	}
	b.items = append(b.items, other.items...)
}

// Sort orders issues by file, start, end, severity (desc), code (asc) so
// output is deterministic across runs.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

// Dedup removes duplicate issues keyed by code + primary span.
func (b *Bag) Dedup() {
	seen := make(map[string]bool)
	newitems := make([]Issue, 0, len(b.items))
	for _, d := range b.items {
		key := fmt.Sprintf("%s:%s", d.Code.ID(), d.Primary.String())
		if seen[key] {
			continue
		}
		seen[key] = true
		newitems = append(newitems, d)
	}
	b.items = newitems
}
