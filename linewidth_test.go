package linebreak

import "testing"

func TestTableLineWidthProfileWidth(t *testing.T) {
	p := &TableLineWidthProfile{
		FirstWidth:     100,
		FirstLineCount: 2,
		RestWidth:      200,
		Indents:        []Advance{10, 0, 5},
		Offset:         -2,
	}
	tests := []struct {
		line int
		want Advance
	}{
		{0, 100 - 10 - 2},
		{1, 100 - 0 - 2},
		{2, 200 - 5 - 2},
		{3, 200 - 2},
	}
	for _, tt := range tests {
		if got := p.Width(tt.line); got != tt.want {
			t.Errorf("Width(%d) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestTableLineWidthProfileMinWidth(t *testing.T) {
	p := &TableLineWidthProfile{
		FirstWidth:     100,
		FirstLineCount: 3,
		RestWidth:      200,
		Indents:        []Advance{0, 90, 0, 0, 150},
	}
	// Narrowest line should be line 1 (FirstWidth 100 - indent 90 = 10).
	if got := p.MinWidth(); got != 10 {
		t.Errorf("MinWidth() = %v, want 10", got)
	}
}

func TestUniformLineWidth(t *testing.T) {
	p := UniformLineWidth(42)
	for _, line := range []int{0, 1, 100} {
		if got := p.Width(line); got != 42 {
			t.Errorf("Width(%d) = %v, want 42", line, got)
		}
	}
}

func TestTabStopsNextTab(t *testing.T) {
	stops := TabStops{Stops: []Advance{10, 30}, TabWidth: 20}
	tests := []struct {
		widthSoFar Advance
		want       Advance
	}{
		{0, 10},
		{10, 30},  // must be strictly greater than widthSoFar
		{29, 30},
		{30, 40}, // explicit stops exhausted, fall back to TabWidth multiples
		{41, 60},
	}
	for _, tt := range tests {
		if got := stops.NextTab(tt.widthSoFar); got != tt.want {
			t.Errorf("NextTab(%v) = %v, want %v", tt.widthSoFar, got, tt.want)
		}
	}
}
