package linebreak

import "testing"

func TestHyphenEditPacking(t *testing.T) {
	tests := []struct {
		start StartHyphenEdit
		end   EndHyphenEdit
	}{
		{StartNoEdit, EndNoEdit},
		{StartInsertHyphen, EndInsertHyphen},
		{StartReplaceWithHyphen, EndReplaceWithHyphen},
		{StartInsertHyphen, EndNoEdit},
	}
	for _, tt := range tests {
		packed := PackHyphenEdit(tt.start, tt.end)
		if got := packed.Start(); got != tt.start {
			t.Errorf("Start() = %v, want %v", got, tt.start)
		}
		if got := packed.End(); got != tt.end {
			t.Errorf("End() = %v, want %v", got, tt.end)
		}
	}
}

func TestEditForThisLineAndNextLine(t *testing.T) {
	tests := []struct {
		class     HyphenationClass
		wantEnd   EndHyphenEdit
		wantStart StartHyphenEdit
	}{
		{DontBreak, EndNoEdit, StartNoEdit},
		{BreakAndInsertHyphen, EndInsertHyphen, StartNoEdit},
		{BreakAndDontInsertHyphen, EndNoEdit, StartNoEdit},
		{BreakAndReplaceWithHyphen, EndReplaceWithHyphen, StartNoEdit},
		{BreakAtExistingHyphen, EndNoEdit, StartInsertHyphen},
	}
	for _, tt := range tests {
		if got := editForThisLine(tt.class); got != tt.wantEnd {
			t.Errorf("editForThisLine(%v) = %v, want %v", tt.class, got, tt.wantEnd)
		}
		if got := editForNextLine(tt.class); got != tt.wantStart {
			t.Errorf("editForNextLine(%v) = %v, want %v", tt.class, got, tt.wantStart)
		}
	}
}

func TestTabBitPosition(t *testing.T) {
	if TabBit != 1<<29 {
		t.Errorf("TabBit = %#x, want %#x", TabBit, 1<<29)
	}
	l := Line{Edit: PackHyphenEdit(StartNoEdit, EndInsertHyphen), Tab: true}
	flags := l.Flags()
	if flags&TabBit == 0 {
		t.Error("Flags() did not set the tab bit")
	}
	if HyphenEdit(flags&0xFF) != l.Edit {
		t.Errorf("Flags() low byte = %#x, want %#x", flags&0xFF, l.Edit)
	}
}
