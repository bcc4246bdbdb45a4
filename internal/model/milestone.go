package model

// MilestoneType tags a celebratory threshold crossing.
type MilestoneType string

const (
	MilestoneFirstPayment MilestoneType = "first_payment"
	MilestoneStreak3      MilestoneType = "streak_3"
	MilestoneStreak6      MilestoneType = "streak_6"
	MilestoneInterest500  MilestoneType = "interest_500"
	MilestoneInterest1000 MilestoneType = "interest_1000"
	MilestoneInterest5000 MilestoneType = "interest_5000"
	MilestoneProgress25   MilestoneType = "progress_25"
	MilestoneProgress50   MilestoneType = "progress_50"
	MilestoneProgress75   MilestoneType = "progress_75"
	MilestoneDebtPaidOff  MilestoneType = "debt_paid_off"
	MilestoneDebtFree     MilestoneType = "debt_free"
)

// MilestoneEvent is a one-time celebratory event. Key is the de-duplication
// identity: a fixed literal for global thresholds, or debt_paid_off_<id>
// for per-debt payoffs.
type MilestoneEvent struct {
	Type     MilestoneType
	Key      string
	Headline string
	Subtext  string
	// IsFullHerd marks the big celebrations (a debt fully paid, or all
	// debts cleared) as opposed to the small ones.
	IsFullHerd bool
}

// StreakData describes the user's consecutive-payment-month streaks.
type StreakData struct {
	// CurrentStreak counts consecutive months with a completed payment,
	// walking backward from the month before the current one.
	CurrentStreak int
	// LongestStreak is the longest run within the lookback window, or the
	// current streak if that is longer.
	LongestStreak int
	// TotalPayments is the number of completed payments ever.
	TotalPayments int
	// PaidThisMonth reports whether the current month already has a
	// qualifying payment.
	PaidThisMonth bool
}

// CelebrationStats is the aggregate snapshot handed to the celebration UI
// alongside a MilestoneEvent.
type CelebrationStats struct {
	PercentPaid    float64
	PrincipalPaid  float64
	InterestPaid   float64
	TotalOriginal  float64
	DebtsRemaining int
	Streak         StreakData
	// DebtFreeDate is a display string; "Unknown" when plan generation
	// could not produce one.
	DebtFreeDate string
}
