package history

import "testing"

// TestPace verifies the goal-card messages and the capped percentage.
func TestPace(t *testing.T) {
	tests := []struct {
		count, target int
		wantPercent   int
		wantMessage   string
	}{
		{0, 3, 0, "まずは週1回から始めましょう。"},
		{1, 3, 33, "あと2回で目標達成です。"},
		{2, 3, 66, "あと1回で目標達成です。"},
		{3, 3, 100, "素晴らしい！目標ペースを達成しています。"},
		{12, 3, 100, "素晴らしい！目標ペースを達成しています。"},
	}
	for _, tt := range tests {
		p := Pace(tt.count, tt.target)
		if p.Percent != tt.wantPercent {
			t.Errorf("Pace(%d, %d).Percent = %d, want %d", tt.count, tt.target, p.Percent, tt.wantPercent)
		}
		if p.Message != tt.wantMessage {
			t.Errorf("Pace(%d, %d).Message = %q, want %q", tt.count, tt.target, p.Message, tt.wantMessage)
		}
		if p.Count != tt.count || p.Target != tt.target {
			t.Errorf("Pace(%d, %d) echoed %d/%d", tt.count, tt.target, p.Count, p.Target)
		}
	}
}

// TestPaceBadTarget verifies a target below 1 is treated as 1 instead of
// dividing by zero.
func TestPaceBadTarget(t *testing.T) {
	p := Pace(2, 0)
	if p.Target != 1 {
		t.Errorf("Target = %d, want 1", p.Target)
	}
	if p.Percent != 100 {
		t.Errorf("Percent = %d, want 100", p.Percent)
	}
}
