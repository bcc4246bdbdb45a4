package tui

import (
	"fmt"
	"strings"

	"github.com/KingGhost27/debtdown/internal/cli"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent = lipgloss.Color("#4385BE")
	colorGreen  = lipgloss.Color("#879A39")
	colorOrange = lipgloss.Color("#DA702C")
	colorMuted  = lipgloss.Color("#878580")
	colorDim    = lipgloss.Color("#575653")

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	labelStyle = lipgloss.NewStyle().Foreground(colorMuted)
	warnStyle  = lipgloss.NewStyle().Foreground(colorOrange)
	goodStyle  = lipgloss.NewStyle().Foreground(colorGreen)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1).
			MarginTop(1)
)

func (a App) renderTabBar() string {
	tabs := make([]string, tabCount)
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if i == a.activeTab {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = inactiveTabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a App) renderStatusBar() string {
	return labelStyle.Render("  tab/1-3 switch  j/k scroll  r reload  q quit")
}

func (a App) renderOverview() string {
	if len(a.debts) == 0 {
		return sectionStyle.Render("No debts tracked yet.\nQuit and run 'debtdown debt add' or 'debtdown setup' first.")
	}

	var b strings.Builder

	b.WriteString(cli.RenderProgressBar(a.stats.PercentPaid, 44))
	b.WriteString("\n\n")

	var balance float64
	for _, d := range a.debts {
		balance += d.Balance
	}

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %-22s", label)))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Remaining balance", cli.FormatMoney(balance))
	row("Principal paid", cli.FormatMoney(a.stats.PrincipalPaid))
	row("Interest paid", cli.FormatMoney(a.stats.InterestPaid))
	row("Debt-free date", a.stats.DebtFreeDate)
	row("Monthly funding", cli.FormatMoney(a.settings.MonthlyFunding))
	row("Strategy", string(a.settings.Strategy))

	b.WriteString("\n")
	if a.stats.Streak.PaidThisMonth {
		b.WriteString(goodStyle.Render(fmt.Sprintf("  %d month streak, paid this month", a.stats.Streak.CurrentStreak)))
	} else {
		b.WriteString(warnStyle.Render(fmt.Sprintf("  %d month streak, nothing logged this month yet", a.stats.Streak.CurrentStreak)))
	}
	b.WriteString("\n")

	if a.summary.MonthlyIncome > 0 {
		b.WriteString("\n")
		row("Monthly income", cli.FormatMoney(a.summary.MonthlyIncome))
		row("Subscriptions", cli.FormatMoney(a.summary.MonthlySubscriptions))
		row("Available for debt", cli.FormatMoney(a.summary.AvailableForDebt))
		row("Net worth", cli.FormatMoney(a.summary.NetWorth))
	}

	return sectionStyle.Render(b.String())
}

func (a App) renderDebts() string {
	if len(a.debts) == 0 {
		return sectionStyle.Render("No debts tracked.")
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(fmt.Sprintf("  %-20s %12s %8s %10s %8s\n", "Name", "Balance", "APR", "Minimum", "Paid")))

	for _, d := range a.debts {
		line := fmt.Sprintf("  %-20s %12s %8s %10s %8s",
			truncate(d.Name, 20),
			cli.FormatMoney(d.Balance),
			cli.FormatAPR(d.APR),
			cli.FormatMoney(d.MinimumPayment),
			cli.FormatPercent(d.PercentPaid()),
		)
		if d.Balance <= 0 {
			b.WriteString(goodStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	for _, m := range a.plan.Milestones {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(fmt.Sprintf("  %s paid off %s", m.DebtName, cli.FormatMonth(m.PayoffDate))))
	}

	return sectionStyle.Render(b.String())
}

func (a App) renderSchedule() string {
	if len(a.plan.MonthlyBreakdown) == 0 {
		return sectionStyle.Render("Nothing scheduled. Add debts and set funding first.")
	}

	visible := a.height - 10
	if visible < 5 {
		visible = 5
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(fmt.Sprintf("  Debt-free %s, %s total interest",
		cli.FormatMonth(a.plan.DebtFreeDate), cli.FormatMoney(a.plan.TotalInterest))))
	if a.plan.Truncated {
		b.WriteString(warnStyle.Render("  (plan exceeds 30 years)"))
	}
	b.WriteString("\n\n")

	lines := 0
	for _, snap := range a.plan.MonthlyBreakdown[a.scroll:] {
		if lines >= visible {
			break
		}
		b.WriteString(fmt.Sprintf("  %s\n", cli.FormatMonth(snap.Month)))
		lines++
		for _, p := range snap.Payments {
			if lines >= visible {
				break
			}
			b.WriteString(labelStyle.Render(fmt.Sprintf("    %-20s %10s  (%s left)\n",
				truncate(p.DebtName, 20), cli.FormatMoney(p.Amount), cli.FormatMoney(p.RemainingBalance))))
			lines++
		}
	}

	b.WriteString(labelStyle.Render(fmt.Sprintf("\n  month %d of %d", a.scroll+1, len(a.plan.MonthlyBreakdown))))
	return sectionStyle.Render(b.String())
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
