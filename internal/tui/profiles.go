package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"grimm.is/palisade/internal/ufw"
)

// ProfilesModel lists the quick profiles and applies the selected one.
// Destructive profiles (reset) ask for confirmation first.
type ProfilesModel struct {
	Backend Backend
	List    list.Model

	Confirming *ufw.Profile
	Busy       bool
	LastError  error

	Width  int
	Height int
}

type profileItem struct {
	profile ufw.Profile
}

func (i profileItem) Title() string { return i.profile.Title }

func (i profileItem) Description() string {
	if i.profile.Reset {
		return "Remove all rules and disable the firewall"
	}
	cmds := make([]string, len(i.profile.Specs))
	for j, spec := range i.profile.Specs {
		cmds[j] = spec.String()
	}
	return strings.Join(cmds, "; ")
}

func (i profileItem) FilterValue() string { return i.profile.Title }

func NewProfilesModel(backend Backend) ProfilesModel {
	profiles := backend.Profiles()
	items := make([]list.Item, len(profiles))
	for i, p := range profiles {
		items[i] = profileItem{profile: p}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(ColorAmber).
		BorderLeftForeground(ColorAmber)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(ColorStone)

	l := list.New(items, delegate, 0, 0)
	l.Title = "Quick Profiles"
	l.SetShowHelp(false)
	l.Styles.Title = StyleTitle

	return ProfilesModel{
		Backend: backend,
		List:    l,
	}
}

func (m ProfilesModel) Update(msg tea.Msg) (ProfilesModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case snapshotMsg:
		m.Busy = false
		m.LastError = nil

	case opErrMsg:
		m.Busy = false
		m.LastError = msg.err

	case tea.KeyMsg:
		if m.Busy {
			return m, nil
		}

		if m.Confirming != nil {
			switch msg.String() {
			case "y", "Y":
				p := *m.Confirming
				m.Confirming = nil
				return m.apply(p)
			default:
				m.Confirming = nil
			}
			return m, nil
		}

		if msg.String() == "enter" {
			item, ok := m.List.SelectedItem().(profileItem)
			if !ok {
				return m, nil
			}
			if item.profile.Reset {
				p := item.profile
				m.Confirming = &p
				return m, nil
			}
			return m.apply(item.profile)
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.List.SetSize(msg.Width-4, msg.Height-8)
	}

	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

func (m ProfilesModel) apply(p ufw.Profile) (ProfilesModel, tea.Cmd) {
	m.Busy = true
	return m, func() tea.Msg {
		if err := m.Backend.ApplyProfile(p); err != nil {
			return opErrMsg{err: err}
		}
		return opDoneMsg{op: "profile:" + p.Name}
	}
}

func (m ProfilesModel) View() string {
	parts := []string{
		StyleHeader.Render("QUICK PROFILES"),
		StyleSubtitle.Render("Enter applies the selected profile"),
		StyleCard.Render(m.List.View()),
	}

	if m.Confirming != nil {
		parts = append(parts, StyleStatusWarn.Render(
			fmt.Sprintf("Really apply %q? This cannot be undone. (y/N)", m.Confirming.Title)))
	}
	if m.Busy {
		parts = append(parts, StyleStatusWarn.Render("applying profile..."))
	}
	if m.LastError != nil {
		parts = append(parts, StyleErrorBar.Render("✗ "+m.LastError.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
