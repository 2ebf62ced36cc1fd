// Package tui provides the interactive Bubble Tea dashboard for carpro.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/carpro/internal/config"
	"github.com/theirongolddev/carpro/internal/i18n"
	"github.com/theirongolddev/carpro/internal/ledger"
	"github.com/theirongolddev/carpro/internal/model"
	"github.com/theirongolddev/carpro/internal/pipeline"
	"github.com/theirongolddev/carpro/internal/store"
	"github.com/theirongolddev/carpro/internal/tui/components"
	"github.com/theirongolddev/carpro/internal/tui/theme"
)

// Tab indexes.
const (
	tabOverview = iota
	tabFuel
	tabMaintenance
	tabExpenses
	tabVehicles
)

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180
	minContentHeight = 5

	refreshInterval = 30 * time.Second
)

// DataLoadedMsg is sent when the record snapshot has been read.
type DataLoadedMsg struct {
	Data     pipeline.Collections
	LoadTime time.Duration
	Err      error
}

// RefreshDataMsg is sent when a background refresh completes.
type RefreshDataMsg struct {
	Data     pipeline.Collections
	LoadTime time.Duration
	Err      error
}

type tickMsg struct{}

// Options configures the dashboard.
type Options struct {
	Store     store.RecordStore
	Localizer *i18n.Localizer
	// Now supplies the reference instant; defaults to time.Now.
	Now func() time.Time
	// Clock is the wall clock behind auto-refresh and record IDs. It keeps
	// running when Now is pinned to a date.
	Clock       func() time.Time
	AutoRefresh bool
	NeedSetup   bool
}

// App is the root Bubble Tea model.
type App struct {
	store       store.RecordStore
	ledger      *ledger.Ledger
	loc         *i18n.Localizer
	now         func() time.Time
	clock       func() time.Time
	autoRefresh bool

	// Data
	data        pipeline.Collections
	dash        model.Dashboard
	fuelSum     model.FuelSummary
	maintSum    model.MaintenanceSummary
	expenseSum  model.ExpenseSummary
	categories  []pipeline.CategoryCost
	loaded      bool
	loadErr     error
	loadTime    time.Duration
	refreshing  bool
	lastRefresh time.Time

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	tabs      []components.Tab
	tables    map[int]table.Model

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals SetupValues
	needSetup bool

	spinner spinner.Model
}

// loadConfigOrDefault loads config, returning defaults on error so the
// dashboard can always start.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new dashboard model.
func NewApp(opts Options) App {
	loc := opts.Localizer
	if loc == nil {
		loc = i18n.MustNew(i18n.English, i18n.DefaultCurrency)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		store:       opts.Store,
		ledger:      ledger.New(opts.Store).WithClock(clock),
		loc:         loc,
		now:         now,
		clock:       clock,
		autoRefresh: opts.AutoRefresh,
		needSetup:   opts.NeedSetup,
		tabs:        components.Tabs(loc.T),
		tables:      make(map[int]table.Model),
		spinner:     sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.store),
		a.spinner.Tick,
		tickCmd(),
	)
}

func (a *App) recompute() {
	now := a.now()
	a.dash = pipeline.BuildDashboard(a.data, now)
	a.fuelSum = pipeline.FuelSummary(a.data.Fuel)
	a.maintSum = pipeline.MaintenanceSummary(a.data.Maintenance)
	a.expenseSum = pipeline.ExpenseSummary(a.data.Expenses, now)
	a.categories = pipeline.AggregateExpenseCategories(a.data.Expenses)

	for _, tab := range []int{tabFuel, tabMaintenance, tabExpenses, tabVehicles} {
		prev, ok := a.tables[tab]
		tbl := a.buildTable(tab, a.contentWidth())
		if ok {
			tbl.SetCursor(min(prev.Cursor(), max(len(tbl.Rows())-1, 0)))
		}
		a.tables[tab] = tbl
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.loaded {
			a.recompute()
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.setupForm != nil {
			return a, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.moveCursor(-1)
		case tea.MouseButtonWheelDown:
			a.moveCursor(1)
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
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
		if a.setupForm != nil {
			return a.updateSetupForm(msg)
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
			if !a.refreshing {
				a.refreshing = true
				return a, refreshDataCmd(a.store)
			}
			return a, nil
		case "R":
			a.autoRefresh = !a.autoRefresh
			return a, nil
		case "left", "shift+tab":
			a.activeTab = (a.activeTab - 1 + len(a.tabs)) % len(a.tabs)
			return a, nil
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(a.tabs)
			return a, nil
		}
		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(a.tabs, msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}

		if a.activeTab == tabVehicles && key == "enter" {
			if v, ok := a.selectedVehicle(); ok && !v.IsDefault {
				a.refreshing = true
				return a, setDefaultVehicleCmd(a.ledger, a.store, v.ID)
			}
			return a, nil
		}

		if tbl, ok := a.tables[a.activeTab]; ok {
			var cmd tea.Cmd
			tbl, cmd = tbl.Update(msg)
			a.tables[a.activeTab] = tbl
			return a, cmd
		}
		return a, nil

	case DataLoadedMsg:
		a.loaded = true
		a.loadTime = msg.LoadTime
		a.lastRefresh = a.clock()
		a.loadErr = msg.Err
		if msg.Err == nil {
			a.data = msg.Data
		}
		a.recompute()

		if a.needSetup {
			a.setupVals = SetupValuesFrom(loadConfigOrDefault())
			a.setupForm = NewSetupForm(&a.setupVals)
			if a.width > 0 {
				a.setupForm = a.setupForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.setupForm.Init()
		}
		return a, nil

	case RefreshDataMsg:
		a.refreshing = false
		a.lastRefresh = a.clock()
		a.loadErr = msg.Err
		if msg.Err == nil {
			a.data = msg.Data
			a.loadTime = msg.LoadTime
			a.recompute()
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd()}
		if a.loaded && a.autoRefresh && !a.refreshing && a.clock().Sub(a.lastRefresh) >= refreshInterval {
			a.refreshing = true
			cmds = append(cmds, refreshDataCmd(a.store))
		}
		return a, tea.Batch(cmds...)
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	return a, nil
}

func (a *App) moveCursor(delta int) {
	tbl, ok := a.tables[a.activeTab]
	if !ok {
		return
	}
	if delta < 0 {
		tbl.MoveUp(-delta)
	} else {
		tbl.MoveDown(delta)
	}
	a.tables[a.activeTab] = tbl
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		if cfg, err := saveSetup(a.setupVals); err == nil {
			if loc, err := i18n.New(cfg.General.Language, cfg.General.Currency); err == nil {
				a.loc = loc
				a.tabs = components.Tabs(loc.T)
			}
		}
		a.needSetup = false
		a.setupForm = nil
		a.recompute()
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}
	return a, cmd
}

func (a App) contentWidth() int {
	return min(max(a.width, minTerminalWidth), maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range a.tabs {
		w := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + 1
	}
	return -1
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  carpro needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)
	h := max(a.height, 5)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)
	logoStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	body := logoStyle.Render("◈ "+a.loc.T("appTitle")) +
		subtitleStyle.Render(" · "+a.loc.T("titleDescription")) + "\n\n" +
		a.spinner.View() + subtitleStyle.Render(" "+a.loc.T("loading")+"...")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	bindings := []struct{ key, desc string }{
		{"o f m e v", "Jump to tab"},
		{"← → tab", "Previous / Next tab"},
		{"j k ↑ ↓", "Move through records"},
		{"Enter", "Make selected vehicle the default"},
		{"r", "Refresh data"},
		{"R", "Toggle auto-refresh"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()

	header := components.RenderTabBar(a.tabs, a.activeTab, w)

	right := fmt.Sprintf("%s · %.0fms", a.dash.GeneratedAt.Format("2006-01-02"), float64(a.loadTime.Microseconds())/1000)
	if a.autoRefresh {
		right = "auto · " + right
	}
	if a.loadErr != nil {
		right = "error: " + a.loadErr.Error()
	}
	statusBar := components.RenderStatusBar(w, right, a.refreshing)

	contentH := max(a.height-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabFuel:
		content = a.renderFuelTab(cw, contentH)
	case tabMaintenance:
		content = a.renderMaintenanceTab(cw, contentH)
	case tabExpenses:
		content = a.renderExpensesTab(cw, contentH)
	case tabVehicles:
		content = a.renderVehiclesTab(cw, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, a.height, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func loadCollections(s store.RecordStore) (pipeline.Collections, time.Duration, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	c, err := pipeline.Load(ctx, s)
	return c, time.Since(start), err
}

// loadDataCmd reads the initial snapshot in the background.
func loadDataCmd(s store.RecordStore) tea.Cmd {
	return func() tea.Msg {
		c, took, err := loadCollections(s)
		return DataLoadedMsg{Data: c, LoadTime: took, Err: err}
	}
}

// refreshDataCmd re-reads the snapshot without the loading screen.
func refreshDataCmd(s store.RecordStore) tea.Cmd {
	return func() tea.Msg {
		c, took, err := loadCollections(s)
		return RefreshDataMsg{Data: c, LoadTime: took, Err: err}
	}
}

// setDefaultVehicleCmd flags id as the default vehicle and reloads.
func setDefaultVehicleCmd(l *ledger.Ledger, s store.RecordStore, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := l.SetDefaultVehicle(ctx, id); err != nil {
			return RefreshDataMsg{Err: err}
		}
		c, took, err := loadCollections(s)
		return RefreshDataMsg{Data: c, LoadTime: took, Err: err}
	}
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}
