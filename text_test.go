package linebreak

import "testing"

func TestRangeValidate(t *testing.T) {
	tests := []struct {
		name    string
		r       Range
		textLen int
		wantErr bool
	}{
		{"valid", Range{0, 5}, 5, false},
		{"empty ok", Range{2, 2}, 5, false},
		{"negative start", Range{-1, 2}, 5, true},
		{"end before start", Range{3, 1}, 5, true},
		{"end past text", Range{0, 6}, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.validate(tt.textLen)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{2, 5}
	for i := 0; i < 7; i++ {
		want := i >= 2 && i < 5
		if got := r.Contains(i); got != want {
			t.Errorf("Contains(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestUTF16RoundTrip(t *testing.T) {
	tests := []string{"hello", "", "café", "\U0001F600 surrogate pair", "­ soft hyphen"}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			units := utf16Encode(s)
			got := utf16Decode(units)
			if got != s {
				t.Errorf("round trip = %q, want %q", got, s)
			}
		})
	}
}

func TestTextBufferFromString(t *testing.T) {
	buf := NewTextBufferFromString("hi \U0001F600")
	// 'h', 'i', ' ', then a surrogate pair for the emoji.
	if buf.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", buf.Len())
	}
	if buf.At(0) != 'h' || buf.At(1) != 'i' {
		t.Errorf("unexpected leading units: %v %v", buf.At(0), buf.At(1))
	}
}

func TestIsLineEndSpace(t *testing.T) {
	tests := []struct {
		c    uint16
		want bool
	}{
		{' ', true},
		{'\n', true},
		{0x00A0, false}, // NBSP must not disappear at line end
		{0x2007, false}, // figure space excluded (Line_Break=Glue)
		{0x2000, true},
		{0x3000, true},
		{'x', false},
	}
	for _, tt := range tests {
		if got := isLineEndSpace(tt.c); got != tt.want {
			t.Errorf("isLineEndSpace(%#x) = %v, want %v", tt.c, got, tt.want)
		}
	}
}
