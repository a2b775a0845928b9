package canvas

import "testing"

func TestSaveFlagsPreserve(t *testing.T) {
	tests := []struct {
		name       string
		flags      SaveFlags
		wantMatrix bool
		wantClip   bool
	}{
		{"full", SaveMatrixClip, false, false},
		{"all", SaveAll, false, false},
		{"matrix only", SaveMatrix, false, true},
		{"clip only", SaveClip, true, false},
		{"neither", 0, true, true},
		{"layer bits only", SaveClipToLayer, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm, pc := tt.flags.preserve()
			if pm != tt.wantMatrix || pc != tt.wantClip {
				t.Errorf("preserve() = (%v, %v), want (%v, %v)",
					pm, pc, tt.wantMatrix, tt.wantClip)
			}
			wantPartial := tt.wantMatrix || tt.wantClip
			if got := tt.flags.partial(); got != wantPartial {
				t.Errorf("partial() = %v, want %v", got, wantPartial)
			}
		})
	}
}
