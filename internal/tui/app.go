// Package tui provides the interactive Bubble Tea dashboard for sugarcap.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mvickers/sugarcap/internal/budget"
	"github.com/mvickers/sugarcap/internal/config"
	"github.com/mvickers/sugarcap/internal/model"
	"github.com/mvickers/sugarcap/internal/pipeline"
	"github.com/mvickers/sugarcap/internal/store"
	"github.com/mvickers/sugarcap/internal/tui/components"
	"github.com/mvickers/sugarcap/internal/tui/theme"
)

// DataLoadedMsg carries a fresh snapshot of everything the dashboard shows.
type DataLoadedMsg struct {
	Status    model.TodayStatus
	Result    model.BudgetResult
	Series    []model.DaySummary
	Entries   []model.Entry
	NeedSetup bool
	Err       error
}

// EntryDeletedMsg is sent after a ledger entry was removed.
type EntryDeletedMsg struct {
	Err error
}

// App is the root Bubble Tea model.
type App struct {
	dbPath string

	// Data snapshot
	loaded  bool
	loadErr error
	status  model.TodayStatus
	result  model.BudgetResult
	series  []model.DaySummary
	entries []model.Entry // newest first

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// History tab
	histCursor int

	// Profile form (first run, or via the settings tab). formVals is a
	// pointer because the form mutates it across model copies.
	profileForm *huh.Form
	formVals    *profileValues
	needSetup   bool

	spinner spinner.Model
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 120
	minContentHeight = 5
)

// NewApp creates the dashboard model. dbPath may be empty to use the
// default ledger location.
func NewApp(dbPath string) App {
	if dbPath == "" {
		dbPath = config.DBPath()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{
		dbPath:  dbPath,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		loadDataCmd(a.dbPath),
		a.spinner.Tick,
	)
}

// loadDataCmd rebuilds the dashboard snapshot from config and the ledger.
func loadDataCmd(dbPath string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.Load()
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		table, err := cfg.EffectiveCoefficients()
		if err != nil {
			return DataLoadedMsg{Err: err}
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		defer s.Close()

		entries, err := s.ListEntries()
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		sorted := pipeline.SortNewestFirst(entries)

		profile := cfg.UserProfile()
		if !profile.Complete() {
			return DataLoadedMsg{Entries: sorted, NeedSetup: true}
		}

		now := time.Now()
		result := budget.ComputeBaseLimit(profile, table)

		grant, err := s.GrantForDay(pipeline.DayKey(now))
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		limit := budget.ApplyDailyCap(result.TotalG, grant.GrantedG)
		consumed := pipeline.TodayTotal(entries, now)

		status := model.TodayStatus{
			Day:        pipeline.DayKey(now),
			BaseLimitG: result.TotalG,
			BonusG:     limit - result.TotalG,
			LimitG:     limit,
			ConsumedG:  consumed,
			RemainingG: limit - consumed,
		}

		return DataLoadedMsg{
			Status:  status,
			Result:  result,
			Series:  pipeline.Last7DaySeries(entries, limit, now),
			Entries: sorted,
		}
	}
}

func deleteEntryCmd(dbPath, id string) tea.Cmd {
	return func() tea.Msg {
		s, err := store.Open(dbPath)
		if err != nil {
			return EntryDeletedMsg{Err: err}
		}
		defer s.Close()

		ok, err := s.DeleteEntry(id)
		if err == nil && !ok {
			err = errors.New("entry already gone")
		}
		return EntryDeletedMsg{Err: err}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.profileForm != nil {
			a.profileForm = a.profileForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// Profile form intercepts all keys while open.
		if a.profileForm != nil {
			return a.updateProfileForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "r":
			a.loaded = false
			return a, tea.Batch(loadDataCmd(a.dbPath), a.spinner.Tick)
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}

		// History tab navigation
		if a.activeTab == 1 {
			switch key {
			case "j", "down":
				if a.histCursor < len(a.entries)-1 {
					a.histCursor++
				}
				return a, nil
			case "k", "up":
				if a.histCursor > 0 {
					a.histCursor--
				}
				return a, nil
			case "g":
				a.histCursor = 0
				return a, nil
			case "G":
				a.histCursor = len(a.entries) - 1
				if a.histCursor < 0 {
					a.histCursor = 0
				}
				return a, nil
			case "d":
				if a.histCursor < len(a.entries) {
					return a, deleteEntryCmd(a.dbPath, a.entries[a.histCursor].ID)
				}
				return a, nil
			}
		}

		// Settings tab actions
		if a.activeTab == 2 {
			switch key {
			case "e":
				return a.openProfileForm()
			case "t":
				a.cycleTheme()
				return a, nil
			}
		}

		return a, nil

	case DataLoadedMsg:
		a.loaded = true
		a.loadErr = msg.Err
		if msg.Err != nil {
			return a, nil
		}
		a.status = msg.Status
		a.result = msg.Result
		a.series = msg.Series
		a.entries = msg.Entries
		if a.histCursor >= len(a.entries) {
			a.histCursor = len(a.entries) - 1
		}
		if a.histCursor < 0 {
			a.histCursor = 0
		}

		if msg.NeedSetup && a.profileForm == nil {
			a.needSetup = true
			return a.openProfileForm()
		}
		return a, nil

	case EntryDeletedMsg:
		if msg.Err != nil {
			a.loadErr = msg.Err
			return a, nil
		}
		return a, loadDataCmd(a.dbPath)

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.profileForm != nil {
		return a.updateProfileForm(msg)
	}

	return a, nil
}

func (a App) openProfileForm() (tea.Model, tea.Cmd) {
	cfg, _ := config.Load()
	vals := profileValuesFromConfig(cfg)
	a.formVals = &vals
	a.profileForm = newProfileForm(a.formVals)
	if a.width > 0 {
		a.profileForm = a.profileForm.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.profileForm.Init()
}

func (a App) updateProfileForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.profileForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.profileForm = f
	}

	if a.profileForm.State == huh.StateCompleted {
		_ = saveProfileValues(a.formVals)
		a.profileForm = nil
		a.needSetup = false
		a.loaded = false
		return a, tea.Batch(loadDataCmd(a.dbPath), a.spinner.Tick)
	}

	if a.profileForm.State == huh.StateAborted {
		a.profileForm = nil
		if a.needSetup {
			// No profile, nothing to show.
			return a, tea.Quit
		}
		return a, nil
	}

	return a, cmd
}

func (a *App) cycleTheme() {
	cfg, _ := config.Load()
	cur := 0
	for i, t := range theme.All {
		if t.Name == theme.Active.Name {
			cur = i
		}
	}
	next := theme.All[(cur+1)%len(theme.All)]
	theme.SetActive(next.Name)
	cfg.General.Theme = next.Name
	_ = config.Save(cfg)
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  sugarcap needs at least %d columns.\n",
			a.width, minTerminalWidth,
		)
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.profileForm != nil {
		return a.profileForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ sugarcap"))
	b.WriteString(subtitleStyle.Render(" · Daily Sugar Budget"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Loading ledger..."))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"o h x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate history"},
		{"g G", "First / Last entry"},
		{"d", "Delete selected entry"},
		{"e", "Edit profile (settings)"},
		{"t", "Cycle theme (settings)"},
		{"r", "Reload data"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-6s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()))
}

func (a App) viewMain() string {
	cw := a.contentWidth()

	header := components.RenderTabBar(a.activeTab) + "\n"

	var right string
	if a.loadErr != nil {
		right = "error: " + a.loadErr.Error()
	} else {
		right = a.status.Day
	}
	statusBar := components.RenderStatusBar(a.width, right)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := a.height - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderHistoryTab(cw, contentH)
	case 2:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)

	return header + content + statusBar
}

// truncateHeight limits a rendered block to at most h lines.
func truncateHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= h {
		return s
	}
	return strings.Join(lines[:h], "\n")
}

// padHeight pads a rendered block with blank lines to exactly h lines.
func padHeight(s string, h int) string {
	lines := strings.Count(s, "\n") + 1
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	for i := lines; i < h; i++ {
		s += "\n"
	}
	return s
}
