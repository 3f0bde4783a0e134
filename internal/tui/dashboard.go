package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"grimm.is/palisade/internal/ufw"
)

// DashboardModel is the main view: status cards over the rule table.
type DashboardModel struct {
	Backend Backend
	Table   table.Model

	Snapshot  *ufw.Snapshot
	LastError error
	Busy      bool

	Width  int
	Height int
}

func NewDashboardModel(backend Backend) DashboardModel {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "To", Width: 26},
		{Title: "Action", Width: 10},
		{Title: "From", Width: 22},
		{Title: "Comment", Width: 20},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorStone).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(ColorAmber).
		Background(ColorStone).
		Bold(false)
	t.SetStyles(s)

	return DashboardModel{
		Backend: backend,
		Table:   t,
	}
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case snapshotMsg:
		snap := ufw.Snapshot(msg)
		m.Snapshot = &snap
		m.LastError = nil
		m.Busy = false

		rows := make([]table.Row, len(snap.Rules))
		for i, r := range snap.Rules {
			rows[i] = ruleRow(r)
		}
		m.Table.SetRows(rows)

	case opErrMsg:
		m.LastError = msg.err
		m.Busy = false

	case tea.KeyMsg:
		if m.Busy {
			return m, nil
		}
		switch msg.String() {
		case "r":
			m.Busy = true
			return m, refreshCmd(m.Backend)
		case "e":
			if m.Snapshot == nil {
				return m, nil
			}
			target := !m.Snapshot.Status.Enabled
			m.Busy = true
			return m, func() tea.Msg {
				if err := m.Backend.SetEnabled(target); err != nil {
					return opErrMsg{err: err}
				}
				return opDoneMsg{op: "toggle"}
			}
		case "d", "x":
			return m.deleteSelected()
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Table.SetHeight(msg.Height - 14)
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

// deleteSelected deletes the rule under the cursor, keyed by the ordinal in
// the listing rather than the cursor position: the table may be shorter than
// the listing if it was resized mid-refresh.
func (m DashboardModel) deleteSelected() (DashboardModel, tea.Cmd) {
	row := m.Table.SelectedRow()
	if row == nil {
		return m, nil
	}
	ordinal, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return m, nil
	}

	m.Busy = true
	return m, func() tea.Msg {
		if err := m.Backend.DeleteRule(ordinal); err != nil {
			return opErrMsg{err: err}
		}
		return opDoneMsg{op: "delete"}
	}
}

func (m DashboardModel) View() string {
	if m.Snapshot == nil {
		if m.LastError != nil {
			return lipgloss.JoinVertical(lipgloss.Left,
				StyleHeader.Render("FIREWALL"),
				StyleStatusBad.Render("Failed to read firewall state:"),
				StyleCard.Render(m.LastError.Error()),
				StyleSubtitle.Render("r: retry   q: quit"),
			)
		}
		return "Reading firewall state..."
	}

	st := m.Snapshot.Status

	stateText := StyleStatusBad.Render("INACTIVE")
	if st.Enabled {
		stateText = StyleStatusGood.Render("ACTIVE")
	}
	statusBlock := StyleCard.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			StyleTitle.Render("Firewall"),
			stateText,
			StyleSubtitle.Render(fmt.Sprintf("%d rules", len(m.Snapshot.Rules))),
		),
	)

	policyBlock := StyleCard.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			StyleTitle.Render("Default Policy"),
			fmt.Sprintf("Incoming: %s", policyText(st.DefaultIncoming)),
			fmt.Sprintf("Outgoing: %s", policyText(st.DefaultOutgoing)),
		),
	)

	loggingBlock := StyleCard.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			StyleTitle.Render("Logging"),
			string(st.Logging),
			StyleSubtitle.Render("as reported by the tool"),
		),
	)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, statusBlock, policyBlock, loggingBlock)

	footer := StyleSubtitle.Render("r: refresh   e: enable/disable   a: add rule   d: delete selected   q: quit")
	if m.Busy {
		footer = StyleStatusWarn.Render("working... (a password prompt may be waiting)")
	}

	doc := lipgloss.JoinVertical(lipgloss.Left,
		topRow,
		StyleCard.Render(m.Table.View()),
		footer,
	)

	if m.LastError != nil {
		doc = lipgloss.JoinVertical(lipgloss.Left, doc, StyleErrorBar.Render("✗ "+m.LastError.Error()))
	}
	return doc
}

func policyText(p ufw.Policy) string {
	switch p {
	case ufw.PolicyAllow:
		return StyleStatusGood.Render("allow")
	case ufw.PolicyDeny, ufw.PolicyReject:
		return StyleStatusBad.Render(string(p))
	}
	return string(p)
}

// ruleRow renders one listing entry. Raw-only rules keep their original text
// in the To column so nothing the tool reported disappears from view.
func ruleRow(r ufw.Rule) table.Row {
	ordinal := ""
	if r.Ordinal > 0 {
		ordinal = strconv.Itoa(r.Ordinal)
	}

	if !r.Structured() {
		return table.Row{ordinal, r.Raw, "", "", ""}
	}

	to := r.Port
	if r.App != "" {
		to = r.App
	} else {
		if to == "" {
			to = "any"
		}
		if r.Protocol == ufw.ProtocolTCP || r.Protocol == ufw.ProtocolUDP {
			to += "/" + string(r.Protocol)
		}
	}
	if r.Destination != "" {
		to = r.Destination + " " + to
	}
	if r.Interface != "" {
		to += " on " + r.Interface
	}
	if r.V6 {
		to += " (v6)"
	}

	action := strings.ToUpper(string(r.Action))
	if r.Direction == ufw.DirectionIn {
		action += " IN"
	} else if r.Direction == ufw.DirectionOut {
		action += " OUT"
	}

	from := r.Source
	if from == "" {
		from = "Anywhere"
	}

	return table.Row{ordinal, to, action, from, r.Comment}
}
