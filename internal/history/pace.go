package history

import "fmt"

// PaceStatus is the weekly-goal card: how many sessions exist versus the
// target frequency.
type PaceStatus struct {
	Count   int    `json:"count"`
	Target  int    `json:"target"`
	Percent int    `json:"percent"`
	Message string `json:"message"`
}

// Pace derives the goal-card state. The count is the number of stored logs
// in total — the original client feeds the card the full history, not just
// the current week, and that behavior is kept as-is.
func Pace(recordCount, target int) PaceStatus {
	if target < 1 {
		target = 1
	}
	p := PaceStatus{Count: recordCount, Target: target}

	p.Percent = recordCount * 100 / target
	if p.Percent > 100 {
		p.Percent = 100
	}

	switch {
	case recordCount >= target:
		p.Message = "素晴らしい！目標ペースを達成しています。"
	case recordCount > 0:
		p.Message = fmt.Sprintf("あと%d回で目標達成です。", target-recordCount)
	default:
		p.Message = "まずは週1回から始めましょう。"
	}
	return p
}
