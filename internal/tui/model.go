// Package tui is the interactive console: a dashboard over the firewall
// state plus forms for mutating it. All firewall calls run inside tea.Cmd
// closures so the event loop never blocks on pkexec prompts.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"grimm.is/palisade/internal/brand"
	"grimm.is/palisade/internal/history"
	"grimm.is/palisade/internal/ufw"
)

// View represents the currently active screen
type View int

const (
	ViewDashboard View = iota
	ViewAddRule
	ViewProfiles
	ViewHistory
)

const viewCount = 4

// Backend defines the interface for data retrieval and actions. The rule
// repository satisfies the firewall half; the adapter adds profiles and
// history.
type Backend interface {
	Snapshot() (ufw.Snapshot, bool)
	Refresh() (ufw.Snapshot, error)
	SetEnabled(enabled bool) error
	AddRule(spec ufw.RuleSpec) error
	DeleteRule(ordinal int) error
	ApplyProfile(p ufw.Profile) error
	Profiles() []ufw.Profile
	History(limit int) ([]history.Record, error)
}

// Messages shared across views.
type snapshotMsg ufw.Snapshot
type opErrMsg struct{ err error }
type opDoneMsg struct{ op string }
type historyMsg []history.Record

// refreshCmd re-reads firewall state off the event loop.
func refreshCmd(backend Backend) tea.Cmd {
	return func() tea.Msg {
		snap, err := backend.Refresh()
		if err != nil {
			return opErrMsg{err: err}
		}
		return snapshotMsg(snap)
	}
}

// Model is the main application state
type Model struct {
	Backend Backend

	ActiveView View
	Width      int
	Height     int

	Dashboard DashboardModel
	AddRule   AddRuleModel
	Profiles  ProfilesModel
	History   HistoryModel
}

// NewModel creates a new initial model
func NewModel(backend Backend) Model {
	return Model{
		Backend:   backend,
		Dashboard: NewDashboardModel(backend),
		AddRule:   NewAddRuleModel(backend),
		Profiles:  NewProfilesModel(backend),
		History:   NewHistoryModel(backend),
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		refreshCmd(m.Backend),
		m.AddRule.Init(),
		m.History.Init(),
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The add-rule form owns the keyboard while active, except Esc.
		if m.ActiveView == ViewAddRule {
			if msg.Type == tea.KeyEsc {
				m.ActiveView = ViewDashboard
				m.AddRule = NewAddRuleModel(m.Backend)
				return m, m.AddRule.Init()
			}
			break
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.ActiveView = (m.ActiveView + 1) % viewCount
			return m, nil
		case "1":
			m.ActiveView = ViewDashboard
			return m, nil
		case "2":
			m.ActiveView = ViewAddRule
			return m, nil
		case "3":
			m.ActiveView = ViewProfiles
			return m, nil
		case "4", "h":
			m.ActiveView = ViewHistory
			return m, m.History.Init()
		case "p":
			m.ActiveView = ViewProfiles
			return m, nil
		case "a":
			if m.ActiveView == ViewDashboard {
				m.ActiveView = ViewAddRule
				return m, nil
			}
		}

	case snapshotMsg, opErrMsg:
		// State changes are global: every view sees them.
		var cmd tea.Cmd
		m.Dashboard, cmd = m.Dashboard.Update(msg)
		cmds = append(cmds, cmd)
		m.Profiles, cmd = m.Profiles.Update(msg)
		cmds = append(cmds, cmd)
		m.AddRule, cmd = m.AddRule.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case opDoneMsg:
		// A mutation succeeded: return home and re-read state.
		m.ActiveView = ViewDashboard
		m.AddRule = NewAddRuleModel(m.Backend)
		return m, tea.Batch(refreshCmd(m.Backend), m.AddRule.Init())

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		var cmd tea.Cmd
		m.Dashboard, cmd = m.Dashboard.Update(msg)
		cmds = append(cmds, cmd)
		m.Profiles, cmd = m.Profiles.Update(msg)
		cmds = append(cmds, cmd)
		m.History, cmd = m.History.Update(msg)
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	switch m.ActiveView {
	case ViewDashboard:
		m.Dashboard, cmd = m.Dashboard.Update(msg)
	case ViewAddRule:
		m.AddRule, cmd = m.AddRule.Update(msg)
	case ViewProfiles:
		m.Profiles, cmd = m.Profiles.Update(msg)
	case ViewHistory:
		m.History, cmd = m.History.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the application
func (m Model) View() string {
	doc := m.ViewTopBar() + "\n"

	switch m.ActiveView {
	case ViewDashboard:
		doc += m.Dashboard.View()
	case ViewAddRule:
		doc += m.AddRule.View()
	case ViewProfiles:
		doc += m.Profiles.View()
	case ViewHistory:
		doc += m.History.View()
	}

	return StyleApp.Render(doc)
}

// ViewTopBar renders the top navigation menu
func (m Model) ViewTopBar() string {
	var items []string

	menus := []struct {
		View  View
		Label string
		Key   string
	}{
		{ViewDashboard, "Dashboard", "1"},
		{ViewAddRule, "Add Rule", "2"},
		{ViewProfiles, "Profiles", "3"},
		{ViewHistory, "History", "4"},
	}

	for _, menu := range menus {
		key := StyleMenuKey.Render("[" + menu.Key + "]")
		label := menu.Label

		if m.ActiveView == menu.View {
			items = append(items, StyleMenuItemActive.Render(key+" "+label))
		} else {
			items = append(items, StyleMenuItem.Render(key+" "+label))
		}
	}

	title := StyleTitle.Render(brand.Name + " ")
	bar := lipgloss.JoinHorizontal(lipgloss.Top, append([]string{title}, items...)...)
	return StyleTopBar.Render(bar)
}
