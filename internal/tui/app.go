// Package tui provides the interactive Bubble Tea dashboard for debtdown.
package tui

import (
	"time"

	"github.com/KingGhost27/debtdown/internal/budget"
	"github.com/KingGhost27/debtdown/internal/milestone"
	"github.com/KingGhost27/debtdown/internal/model"
	"github.com/KingGhost27/debtdown/internal/plan"
	"github.com/KingGhost27/debtdown/internal/store"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the store load and plan simulation finish.
type DataLoadedMsg struct {
	Debts    []model.Debt
	Payments []model.Payment
	Settings model.StrategySettings
	Plan     model.PayoffPlan
	Stats    model.CelebrationStats
	Summary  model.BudgetSummary
}

// LoadErrMsg is sent when the store load fails.
type LoadErrMsg struct {
	Err error
}

const (
	tabOverview = iota
	tabDebts
	tabSchedule
	tabCount
)

var tabNames = [tabCount]string{"Overview", "Debts", "Schedule"}

// App is the root Bubble Tea model.
type App struct {
	dbPath string

	// Data
	debts    []model.Debt
	payments []model.Payment
	settings model.StrategySettings
	plan     model.PayoffPlan
	stats    model.CelebrationStats
	summary  model.BudgetSummary
	loaded   bool
	loadErr  error

	// UI state
	width     int
	height    int
	activeTab int
	scroll    int // schedule tab scroll offset, in months

	spinner spinner.Model
}

// NewApp creates a new TUI app model reading from the given database path.
func NewApp(dbPath string) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)

	return App{
		dbPath:  dbPath,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(loadDataCmd(a.dbPath), a.spinner.Tick)
}

// loadDataCmd opens the store, loads everything, and runs the simulation
// off the UI goroutine.
func loadDataCmd(dbPath string) tea.Cmd {
	return func() tea.Msg {
		st, err := store.Open(dbPath)
		if err != nil {
			return LoadErrMsg{Err: err}
		}
		defer st.Close()

		var msg DataLoadedMsg
		if msg.Debts, err = st.ListDebts(); err != nil {
			return LoadErrMsg{Err: err}
		}
		if msg.Payments, err = st.ListPayments(); err != nil {
			return LoadErrMsg{Err: err}
		}
		if msg.Settings, err = st.LoadStrategy(); err != nil {
			return LoadErrMsg{Err: err}
		}

		income, _ := st.ListIncome()
		subs, _ := st.ListSubscriptions()
		assets, _ := st.ListAssets()

		msg.Plan = plan.Generate(msg.Debts, msg.Settings, time.Now())
		msg.Stats = milestone.New(st).Stats(msg.Debts, msg.Payments, msg.Settings)
		msg.Summary = budget.Summarize(income, subs, assets, msg.Debts)
		return msg
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case DataLoadedMsg:
		a.debts = msg.Debts
		a.payments = msg.Payments
		a.settings = msg.Settings
		a.plan = msg.Plan
		a.stats = msg.Stats
		a.summary = msg.Summary
		a.loaded = true
		return a, nil

	case LoadErrMsg:
		a.loadErr = msg.Err
		a.loaded = true
		return a, nil

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return a, tea.Quit
		case "tab", "l", "right":
			a.activeTab = (a.activeTab + 1) % tabCount
			a.scroll = 0
			return a, nil
		case "shift+tab", "h", "left":
			a.activeTab = (a.activeTab + tabCount - 1) % tabCount
			a.scroll = 0
			return a, nil
		case "1":
			a.activeTab = tabOverview
			return a, nil
		case "2":
			a.activeTab = tabDebts
			return a, nil
		case "3":
			a.activeTab = tabSchedule
			return a, nil
		case "j", "down":
			if a.activeTab == tabSchedule && a.scroll < len(a.plan.MonthlyBreakdown)-1 {
				a.scroll++
			}
			return a, nil
		case "k", "up":
			if a.activeTab == tabSchedule && a.scroll > 0 {
				a.scroll--
			}
			return a, nil
		case "g":
			a.scroll = 0
			return a, nil
		case "r":
			a.loaded = false
			return a, tea.Batch(loadDataCmd(a.dbPath), a.spinner.Tick)
		}
	}

	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	if !a.loaded {
		return "\n  " + a.spinner.View() + " Loading your debts...\n"
	}
	if a.loadErr != nil {
		return "\n  Could not load data: " + a.loadErr.Error() + "\n\n  Press q to quit.\n"
	}

	var body string
	switch a.activeTab {
	case tabDebts:
		body = a.renderDebts()
	case tabSchedule:
		body = a.renderSchedule()
	default:
		body = a.renderOverview()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.renderTabBar(),
		body,
		a.renderStatusBar(),
	)
}
