package preview

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	r, err := New("notty", 60)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := r.Render("# Title\n\nSome *emphasis* here.\n")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "Title") || !strings.Contains(out, "emphasis") {
		t.Errorf("output missing content: %q", out)
	}
}

func TestUnknownStyle(t *testing.T) {
	if _, err := New("neon", 60); err == nil {
		t.Error("expected error for unknown style")
	}
}

func TestSetWidth(t *testing.T) {
	r, err := New("notty", 0)
	if err != nil {
		t.Fatal(err)
	}
	if r.Width() != DefaultWidth {
		t.Errorf("Width = %d, want %d", r.Width(), DefaultWidth)
	}
	if err := r.SetWidth(40); err != nil {
		t.Fatalf("SetWidth: %v", err)
	}
	if r.Width() != 40 {
		t.Errorf("Width = %d, want 40", r.Width())
	}

	long := strings.Repeat("word ", 40)
	out, err := r.Render(long)
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 60 {
			t.Errorf("line exceeds wrap width: %q", line)
		}
	}
}
