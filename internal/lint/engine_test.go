package lint

import (
	"strings"
	"testing"
)

func lintText(t *testing.T, text string) *Bag {
	t.Helper()
	return New(DefaultConfig()).CheckText("test.md", []byte(text))
}

func codes(bag *Bag) []Code {
	out := make([]Code, 0, bag.Len())
	for _, it := range bag.Items() {
		out = append(out, it.Code)
	}
	return out
}

func hasCode(bag *Bag, code Code) bool {
	for _, c := range codes(bag) {
		if c == code {
			return true
		}
	}
	return false
}

func TestHeadingBlankLine(t *testing.T) {
	bag := lintText(t, "# Title\nbody right away\n")
	if !hasCode(bag, HeadingBlankLine) {
		t.Fatalf("expected heading-blank-line, got %v", codes(bag))
	}

	issue := bag.Items()[0]
	if len(issue.Fixes) != 1 {
		t.Fatalf("expected a fix, got %d", len(issue.Fixes))
	}
	if issue.Severity != SevWarning {
		t.Errorf("severity = %v, want warning", issue.Severity)
	}
}

func TestHeadingBlankLineClean(t *testing.T) {
	clean := []string{
		"# Title\n\nbody\n",
		"# Title\n## Subtitle\n\nbody\n", // heading after heading is fine
		"# Title",                        // heading at EOF
		"plain text\nmore text\n",
	}
	for _, text := range clean {
		if bag := lintText(t, text); hasCode(bag, HeadingBlankLine) {
			t.Errorf("unexpected heading-blank-line for %q", text)
		}
	}
}

func TestHeadingLevel(t *testing.T) {
	bag := lintText(t, "####### Too deep\n")
	if !hasCode(bag, HeadingLevel) {
		t.Fatalf("expected heading-level, got %v", codes(bag))
	}
	if bag.Items()[0].Severity != SevError {
		t.Error("heading-level should default to error")
	}

	if bag := lintText(t, "###### Six is fine\n"); hasCode(bag, HeadingLevel) {
		t.Error("level 6 should pass")
	}
}

func TestEmptyLink(t *testing.T) {
	bag := lintText(t, "See [docs]() for details.\n")
	if !hasCode(bag, LinkEmptyURL) {
		t.Fatalf("expected empty-link, got %v", codes(bag))
	}

	if bag := lintText(t, "See [docs](https://example.com).\n"); hasCode(bag, LinkEmptyURL) {
		t.Error("non-empty URL should pass")
	}

	// image syntax must not trip the link rule
	if bag := lintText(t, "![alt]()\n"); hasCode(bag, LinkEmptyURL) {
		t.Error("image should not be reported as link")
	}
}

func TestImageAlt(t *testing.T) {
	bag := lintText(t, "![](diagram.png)\n")
	if !hasCode(bag, ImageNoAlt) {
		t.Fatalf("expected image-alt, got %v", codes(bag))
	}

	if bag := lintText(t, "![a diagram](diagram.png)\n"); hasCode(bag, ImageNoAlt) {
		t.Error("image with alt should pass")
	}
}

func TestFenceBlankLine(t *testing.T) {
	text := "```go\ncode\n```\nno blank line\n"
	bag := lintText(t, text)
	if !hasCode(bag, FenceBlankLine) {
		t.Fatalf("expected fence-blank-line, got %v", codes(bag))
	}

	clean := "```go\ncode\n```\n\nafter blank\n"
	if bag := lintText(t, clean); hasCode(bag, FenceBlankLine) {
		t.Error("fence followed by blank line should pass")
	}

	atEOF := "```go\ncode\n```\n"
	if bag := lintText(t, atEOF); hasCode(bag, FenceBlankLine) {
		t.Error("fence at EOF should pass")
	}
}

func TestFenceUnclosed(t *testing.T) {
	bag := lintText(t, "```go\ncode without end\n")
	if !hasCode(bag, FenceUnclosed) {
		t.Fatalf("expected unclosed-fence, got %v", codes(bag))
	}
}

func TestTablePipe(t *testing.T) {
	text := "| a | b |\n|---|---|\nc | d |\n"
	bag := lintText(t, text)
	if !hasCode(bag, TablePipeStart) {
		t.Fatalf("expected table-pipe, got %v", codes(bag))
	}

	clean := "| a | b |\n|---|---|\n| c | d |\n"
	if bag := lintText(t, clean); hasCode(bag, TablePipeStart) {
		t.Error("well-formed table should pass")
	}
}

func TestTrailingSpace(t *testing.T) {
	bag := lintText(t, "one space after \nclean line\n")
	if !hasCode(bag, TrailingSpace) {
		t.Fatalf("expected trailing-space, got %v", codes(bag))
	}

	// exactly two spaces is a hard break
	if bag := lintText(t, "hard break  \nnext\n"); hasCode(bag, TrailingSpace) {
		t.Error("two-space hard break should pass")
	}
}

func TestRulesSkipCodeBlocks(t *testing.T) {
	text := "```\n# not a heading\nbody\n[link]()\n![](x.png)\n```\n"
	bag := lintText(t, text)
	for _, c := range []Code{HeadingBlankLine, LinkEmptyURL, ImageNoAlt} {
		if hasCode(bag, c) {
			t.Errorf("rule %s fired inside a code block", c.Name())
		}
	}
}

func TestRulesSkipFrontmatter(t *testing.T) {
	text := "---\ntitle: Hi\ntags: [a, b]\n---\n\n# Title\n\nbody\n"
	bag := lintText(t, text)
	if bag.Len() != 0 {
		t.Errorf("expected clean document, got %v", codes(bag))
	}
}

func TestConfigDisablesRule(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rules = map[string]string{"heading-blank-line": "off"}
	bag := New(cfg).CheckText("test.md", []byte("# Title\nbody\n"))
	if hasCode(bag, HeadingBlankLine) {
		t.Error("disabled rule still fired")
	}
}

func TestConfigOverridesSeverity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rules = map[string]string{"heading-blank-line": "error"}
	bag := New(cfg).CheckText("test.md", []byte("# Title\nbody\n"))
	if !bag.HasErrors() {
		t.Error("expected severity override to error")
	}
}

func TestBagSortAndDedup(t *testing.T) {
	// duplicated issue from two reports collapses to one, sorted by position
	text := strings.Join([]string{
		"####### deep",
		"# Title",
		"body",
		"",
	}, "\n")
	bag := lintText(t, text)

	items := bag.Items()
	for i := 1; i < len(items); i++ {
		if items[i-1].Primary.Start > items[i].Primary.Start {
			t.Fatal("bag not sorted by span start")
		}
	}
}

func TestBagCap(t *testing.T) {
	bag := NewBag(1)
	ok := bag.Add(Issue{Code: HeadingLevel})
	if !ok {
		t.Fatal("first add should succeed")
	}
	if bag.Add(Issue{Code: LinkEmptyURL}) {
		t.Error("add beyond cap should report false")
	}
	if bag.Len() != 1 {
		t.Errorf("len = %d, want 1", bag.Len())
	}
}

func TestCounts(t *testing.T) {
	bag := lintText(t, "####### deep\n# Title\nbody\n")
	errs, warns, _ := bag.Counts()
	if errs == 0 || warns == 0 {
		t.Errorf("counts = %d errors, %d warnings; want both > 0", errs, warns)
	}
}
