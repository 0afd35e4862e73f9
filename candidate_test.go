package linebreak

import "testing"

func TestExtentUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Extent
		want Extent
	}{
		{"b taller ascent", Extent{Ascent: -10, Descent: 2}, Extent{Ascent: -20, Descent: 2}, Extent{Ascent: -20, Descent: 2}},
		{"b deeper descent", Extent{Ascent: -10, Descent: 2}, Extent{Ascent: -10, Descent: 5}, Extent{Ascent: -10, Descent: 5}},
		{"a already encloses b", Extent{Ascent: -20, Descent: 5}, Extent{Ascent: -10, Descent: 2}, Extent{Ascent: -20, Descent: 5}},
		{"identical", Extent{Ascent: -10, Descent: 2}, Extent{Ascent: -10, Descent: 2}, Extent{Ascent: -10, Descent: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.union(tt.b); got != tt.want {
				t.Errorf("%v.union(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestExtentUnionCommutative(t *testing.T) {
	a := Extent{Ascent: -8, Descent: 3}
	b := Extent{Ascent: -12, Descent: 1}
	if got1, got2 := a.union(b), b.union(a); got1 != got2 {
		t.Errorf("union not commutative: a.union(b) = %v, b.union(a) = %v", got1, got2)
	}
}

func TestSentinelCandidate(t *testing.T) {
	s := sentinelCandidate()
	if s.Offset != 0 {
		t.Errorf("sentinel Offset = %d, want 0", s.Offset)
	}
	if s.HyphenClass != DontBreak {
		t.Errorf("sentinel HyphenClass = %v, want DontBreak", s.HyphenClass)
	}
	if s.PreBreak != 0 || s.PostBreak != 0 || s.Penalty != 0 {
		t.Errorf("sentinel should be all-zero widths/penalty, got %+v", s)
	}
}
