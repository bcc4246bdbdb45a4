package milestone

import (
	"time"

	"github.com/KingGhost27/debtdown/internal/model"
)

// LookbackMonths bounds the longest-streak scan. A current streak longer
// than the window is still reported in full.
const LookbackMonths = 36

// ComputeStreak derives streak data from the payment history, relative to
// now. A month counts when at least one completed payment's completion
// timestamp falls inside it.
func ComputeStreak(payments []model.Payment, now time.Time) model.StreakData {
	var sd model.StreakData

	paidMonths := make(map[string]bool)
	for _, p := range payments {
		if !p.IsCompleted || p.CompletedAt.IsZero() {
			continue
		}
		sd.TotalPayments++
		paidMonths[p.CompletedAt.Format("2006-01")] = true
	}

	sd.PaidThisMonth = paidMonths[now.Format("2006-01")]

	// Current streak: walk backward starting at the month before now and
	// stop at the first gap.
	month := monthStart(now).AddDate(0, -1, 0)
	for paidMonths[month.Format("2006-01")] {
		sd.CurrentStreak++
		month = month.AddDate(0, -1, 0)
	}

	// Longest run inside the lookback window.
	longest, run := 0, 0
	month = monthStart(now).AddDate(0, -(LookbackMonths - 1), 0)
	for i := 0; i < LookbackMonths; i++ {
		if paidMonths[month.Format("2006-01")] {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
		month = month.AddDate(0, 1, 0)
	}
	if sd.CurrentStreak > longest {
		longest = sd.CurrentStreak
	}
	sd.LongestStreak = longest

	return sd
}

// monthStart normalizes to the first day so AddDate month math never rolls
// over short months.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
