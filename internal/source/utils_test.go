package source

import (
	"bytes"
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		changed bool
	}{
		{"no carriage returns", "a\nb\n", "a\nb\n", false},
		{"crlf pairs", "a\r\nb\r\n", "a\nb\n", true},
		{"lone cr kept", "a\rb", "a\rb", false},
		{"mixed", "a\r\nb\rc\n", "a\nb\rc\n", true},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeCRLF([]byte(tt.in))
			if !bytes.Equal(got, []byte(tt.want)) {
				t.Errorf("normalizeCRLF(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if changed != tt.changed {
				t.Errorf("normalizeCRLF(%q) changed = %v, want %v", tt.in, changed, tt.changed)
			}
		})
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
	got, had := removeBOM(withBOM)
	if !had {
		t.Error("expected BOM to be detected")
	}
	if string(got) != "hi" {
		t.Errorf("removeBOM = %q, want %q", got, "hi")
	}

	noBOM := []byte("hi")
	got, had = removeBOM(noBOM)
	if had {
		t.Error("did not expect BOM")
	}
	if string(got) != "hi" {
		t.Errorf("removeBOM = %q, want %q", got, "hi")
	}
}

func TestToLineCol(t *testing.T) {
	content := []byte("# Title\n\nbody line\n")
	idx := buildLineIndex(content)

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{2, 1, 3},
		{7, 1, 8},  // the \n itself belongs to line 1
		{8, 2, 1},  // empty line
		{9, 3, 1},  // "body line"
		{14, 3, 6}, // "l" in "line"
		{19, 4, 1}, // EOF, just past the final \n
	}

	for _, tt := range tests {
		got := toLineCol(idx, tt.off)
		if got.Line != tt.line || got.Col != tt.col {
			t.Errorf("toLineCol(%d) = %d:%d, want %d:%d", tt.off, got.Line, got.Col, tt.line, tt.col)
		}
	}
}

func TestToLineColEmptyIndex(t *testing.T) {
	got := toLineCol(nil, 5)
	if got.Line != 1 || got.Col != 6 {
		t.Errorf("toLineCol(nil, 5) = %d:%d, want 1:6", got.Line, got.Col)
	}
}
