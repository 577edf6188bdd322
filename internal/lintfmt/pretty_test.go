package lintfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"shebang/internal/lint"
	"shebang/internal/source"
)

func lintSample(t *testing.T) (*lint.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("sample.md", []byte("# Title\nbody\n\nSee [docs]()\n"))
	bag := lint.New(lint.DefaultConfig()).CheckFile(fs.Get(id))
	if bag.Len() == 0 {
		t.Fatal("expected sample issues")
	}
	return bag, fs
}

func TestPretty(t *testing.T) {
	bag, fs := lintSample(t)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, Options{})
	out := buf.String()

	if !strings.Contains(out, "sample.md:1:1:") {
		t.Errorf("missing position header in:\n%s", out)
	}
	if !strings.Contains(out, "[MDH1001]") {
		t.Errorf("missing code id in:\n%s", out)
	}
	if !strings.Contains(out, "# Title") {
		t.Errorf("missing source context in:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("missing caret marker in:\n%s", out)
	}
}

func TestShort(t *testing.T) {
	bag, fs := lintSample(t)

	var buf bytes.Buffer
	Short(&buf, bag, fs, Options{})
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != bag.Len() {
		t.Errorf("short output has %d lines for %d issues", len(lines), bag.Len())
	}
	if !strings.Contains(out, "empty-link") {
		t.Errorf("missing rule slug in:\n%s", out)
	}
}

func TestJSON(t *testing.T) {
	bag, fs := lintSample(t)

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, Options{}); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var report struct {
		Issues []struct {
			File     string `json:"file"`
			Line     int    `json:"line"`
			Severity string `json:"severity"`
			Rule     string `json:"rule"`
			Fixable  bool   `json:"fixable"`
		} `json:"issues"`
		Errors   int `json:"errors"`
		Warnings int `json:"warnings"`
	}
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(report.Issues) != bag.Len() {
		t.Errorf("issues = %d, want %d", len(report.Issues), bag.Len())
	}
	if report.Errors == 0 {
		t.Error("expected error count > 0 (empty link)")
	}
	foundFixable := false
	for _, issue := range report.Issues {
		if issue.Fixable {
			foundFixable = true
		}
	}
	if !foundFixable {
		t.Error("expected at least one fixable issue")
	}
}

func TestSummary(t *testing.T) {
	bag, _ := lintSample(t)
	got := Summary(bag)
	if !strings.Contains(got, "error") || !strings.Contains(got, "warning") {
		t.Errorf("Summary = %q", got)
	}

	empty := lint.NewBag(4)
	if Summary(empty) != "no issues" {
		t.Errorf("Summary(empty) = %q", Summary(empty))
	}
}

func TestDisplayPath(t *testing.T) {
	opts := Options{BaseDir: "/work"}
	if got := opts.displayPath("/work/notes/a.md"); got != "notes/a.md" {
		t.Errorf("displayPath = %q", got)
	}

	full := Options{BaseDir: "/work", FullPath: true}
	if got := full.displayPath("/work/notes/a.md"); got != "/work/notes/a.md" {
		t.Errorf("displayPath full = %q", got)
	}
}
