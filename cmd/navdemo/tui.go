package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/navkit/navkit"
	"github.com/navkit/navkit/core/navstate"
)

type styles struct {
	title   lipgloss.Style
	focused lipgloss.Style
	dim     lipgloss.Style
	params  lipgloss.Style
	status  lipgloss.Style
	help    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		focused: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		params:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		status:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

type model struct {
	engine   *navkit.Engine
	keys     keyMap
	styles   styles
	nextPost int
	status   string
	width    int
	height   int
}

func newModel(engine *navkit.Engine) model {
	return model{
		engine:   engine,
		keys:     defaultKeyMap,
		styles:   newStyles(),
		nextPost: 1,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Home):
			m.report(m.engine.GoTo("Home", nil), "Home")
		case key.Matches(msg, m.keys.Feed):
			m.report(m.engine.GoTo("Feed", nil), "Feed")
		case key.Matches(msg, m.keys.Profile):
			m.report(m.engine.GoTo("Profile", nil), "Profile")
		case key.Matches(msg, m.keys.Open):
			id := strconv.Itoa(m.nextPost)
			if m.engine.GoTo("Post", navstate.Params{"id": id}) {
				m.nextPost++
				m.status = "opened post " + id
			} else {
				m.status = "posts open from the feed tab only"
			}
		case key.Matches(msg, m.keys.Back):
			if m.engine.GoBack() {
				m.status = "went back"
			} else {
				m.status = "nowhere to go back to"
			}
		}
	}
	return m, nil
}

func (m *model) report(ok bool, name string) {
	if ok {
		m.status = "switched to " + name
	} else {
		m.status = name + " refused by every navigator"
	}
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render("navkit playground"))
	b.WriteString("\n\n")

	if root := m.engine.Root(); root != nil {
		m.renderNode(&b, root, 0)
	} else {
		b.WriteString(m.styles.dim.Render("(no root mounted)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if root := m.engine.Root(); root != nil {
		leaf := root
		for c := leaf.FocusedChild(); c != nil; c = c.FocusedChild() {
			leaf = c
		}
		if u, ok := m.engine.EncodeURL(leaf); ok {
			b.WriteString(m.styles.status.Render("url: " + u))
			b.WriteString("\n")
		}
	}
	if m.status != "" {
		b.WriteString(m.styles.dim.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

func (m model) renderNode(b *strings.Builder, n *navstate.Node, depth int) {
	line := fmt.Sprintf("%s%s", strings.Repeat("  ", depth), n.Name())
	if p := formatParams(n.Params()); p != "" {
		line += " " + m.styles.params.Render(p)
	}
	if n.IsFocused() && n.FocusedChild() == nil {
		b.WriteString(m.styles.focused.Render("> " + line))
	} else if n.IsFocused() {
		b.WriteString(m.styles.focused.Render("  " + line))
	} else {
		b.WriteString(m.styles.dim.Render("  " + line))
	}
	b.WriteString("\n")
	for _, c := range n.Stack() {
		m.renderNode(b, c, depth+1)
	}
}

func (m model) helpLine() string {
	parts := make([]string, 0, 6)
	for _, kb := range m.keys.bindings() {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

func formatParams(p navstate.Params) string {
	if len(p) == 0 {
		return ""
	}
	parts := make([]string, 0, len(p))
	for k, v := range p {
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	return "{" + strings.Join(parts, " ") + "}"
}
