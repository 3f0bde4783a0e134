package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"grimm.is/palisade/internal/history"
	"grimm.is/palisade/internal/logging"
)

const historyPageSize = 100

type HistoryModel struct {
	Backend Backend
	List    list.Model

	Available bool
	Width     int
	Height    int
}

type recordItem struct {
	rec history.Record
}

func (i recordItem) Title() string {
	status := "ok"
	if i.rec.ExitCode != 0 {
		status = fmt.Sprintf("exit %d", i.rec.ExitCode)
	}
	return fmt.Sprintf("%s (%s)", i.rec.Op, status)
}

func (i recordItem) Description() string {
	return fmt.Sprintf("%s  %s  ufw %s",
		i.rec.Timestamp.Format("2006-01-02 15:04:05"), i.rec.User, i.rec.Args)
}

func (i recordItem) FilterValue() string { return i.rec.Op + " " + i.rec.Args }

func NewHistoryModel(backend Backend) HistoryModel {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Command History"
	l.Styles.Title = StyleTitle

	return HistoryModel{
		Backend:   backend,
		List:      l,
		Available: true,
	}
}

func (m HistoryModel) Init() tea.Cmd {
	return func() tea.Msg {
		records, err := m.Backend.History(historyPageSize)
		if err != nil {
			logging.Debugf("history load failed: %v", err)
			return historyMsg(nil)
		}
		return historyMsg(records)
	}
}

func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case historyMsg:
		m.Available = len(msg) > 0
		items := make([]list.Item, len(msg))
		for i, rec := range msg {
			items[i] = recordItem{rec: rec}
		}
		cmd = m.List.SetItems(items)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.Init()
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.List.SetSize(msg.Width-4, msg.Height-8)
	}

	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

func (m HistoryModel) View() string {
	if !m.Available {
		return lipgloss.JoinVertical(lipgloss.Left,
			StyleHeader.Render("COMMAND HISTORY"),
			StyleSubtitle.Render("No history yet (or history is disabled in the config)"),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		StyleHeader.Render("COMMAND HISTORY (r: reload)"),
		StyleCard.Render(m.List.View()),
	)
}
