package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"grimm.is/palisade/internal/ufw"
	"grimm.is/palisade/internal/validation"
)

// AddRuleModel is the add-rule form. Validation runs twice: per field as
// the user types, and again in the repository before anything privileged
// happens.
type AddRuleModel struct {
	Backend Backend
	Form    *huh.Form

	action    string
	direction string
	port      string
	protocol  string
	source    string
	comment   string

	Submitting bool
	LastError  error
}

func NewAddRuleModel(backend Backend) AddRuleModel {
	m := AddRuleModel{
		Backend:   backend,
		action:    "allow",
		direction: "in",
		protocol:  "tcp",
	}
	m.Form = m.buildForm()
	return m
}

func (m *AddRuleModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Action").
				Options(
					huh.NewOption("Allow", "allow"),
					huh.NewOption("Deny", "deny"),
					huh.NewOption("Reject", "reject"),
					huh.NewOption("Limit", "limit"),
				).
				Value(&m.action),

			huh.NewSelect[string]().
				Title("Direction").
				Options(
					huh.NewOption("Incoming", "in"),
					huh.NewOption("Outgoing", "out"),
				).
				Value(&m.direction),

			huh.NewInput().
				Title("Port").
				Description("e.g. 22, 80,443 or 6000:6063; empty for any").
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					return validation.ValidatePortSpec(s)
				}).
				Value(&m.port),

			huh.NewSelect[string]().
				Title("Protocol").
				Options(
					huh.NewOption("TCP", "tcp"),
					huh.NewOption("UDP", "udp"),
					huh.NewOption("Any", ""),
				).
				Value(&m.protocol),

			huh.NewInput().
				Title("Source").
				Description("IP or CIDR; empty for anywhere").
				Validate(func(s string) error {
					return validation.ValidateSource(s)
				}).
				Value(&m.source),

			huh.NewInput().
				Title("Comment").
				Validate(validation.ValidateComment).
				Value(&m.comment),
		),
	).WithTheme(huh.ThemeBase16())
}

func (m AddRuleModel) Init() tea.Cmd {
	return m.Form.Init()
}

func (m AddRuleModel) spec() ufw.RuleSpec {
	return ufw.RuleSpec{
		Action:    ufw.ParseAction(m.action),
		Direction: ufw.Direction(m.direction),
		Port:      m.port,
		Protocol:  ufw.ParseProtocol(m.protocol),
		Source:    m.source,
		Comment:   m.comment,
	}
}

func (m AddRuleModel) Update(msg tea.Msg) (AddRuleModel, tea.Cmd) {
	switch msg := msg.(type) {
	case opErrMsg:
		m.LastError = msg.err
		m.Submitting = false
		return m, nil
	}

	if m.Submitting {
		return m, nil
	}

	form, cmd := m.Form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.Form = f
	}

	if m.Form.State == huh.StateCompleted {
		spec := m.spec()
		m.Submitting = true
		return m, func() tea.Msg {
			if err := m.Backend.AddRule(spec); err != nil {
				return opErrMsg{err: err}
			}
			return opDoneMsg{op: "add_rule"}
		}
	}

	return m, cmd
}

func (m AddRuleModel) View() string {
	parts := []string{
		StyleHeader.Render("ADD RULE"),
		StyleCard.Render(m.Form.View()),
		StyleSubtitle.Render("Esc to cancel"),
	}
	if m.Submitting {
		parts = append(parts, StyleStatusWarn.Render("applying rule..."))
	}
	if m.LastError != nil {
		parts = append(parts, StyleErrorBar.Render("✗ "+m.LastError.Error()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
