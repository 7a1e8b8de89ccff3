package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Choice is one entry of a Select menu.
type Choice struct {
	Label string
	Value string
}

// menuItem adapts a Choice to bubbles/list.Item.
type menuItem struct{ Choice }

func (i menuItem) Title() string       { return i.Label }
func (i menuItem) Description() string { return "" }
func (i menuItem) FilterValue() string { return i.Label }

// Single-line delegate, selected row highlighted.
type menuDelegate struct{}

func (d menuDelegate) Height() int                               { return 1 }
func (d menuDelegate) Spacing() int                              { return 0 }
func (d menuDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d menuDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(menuItem)
	prefix := "  "
	label := it.Label
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
		label = titleStyle.Render(label)
	}
	fmt.Fprint(w, prefix+label)
}

// -------------- select ----------------

type selectModel struct {
	list    list.Model
	chosen  string
	aborted bool
}

func newSelectModel(prompt string, choices []Choice) selectModel {
	items := make([]list.Item, 0, len(choices))
	for _, c := range choices {
		items = append(items, menuItem{c})
	}
	l := list.New(items, menuDelegate{}, 48, len(choices)+8)
	l.Title = prompt
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(true)

	chooseBind := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{chooseBind} }

	return selectModel{list: l}
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width - 4)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			if it, ok := m.list.SelectedItem().(menuItem); ok {
				m.chosen = it.Value
			}
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() string {
	if m.chosen != "" || m.aborted {
		return ""
	}
	return panelString(m.list.View())
}

// -------------- text ----------------

type textModel struct {
	prompt  string
	ti      textinput.Model
	value   string
	done    bool
	aborted bool
}

func newTextModel(prompt, placeholder string) textModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = placeholder
	ti.CharLimit = 500
	ti.Focus()
	return textModel{prompt: prompt, ti: ti}
}

func (m textModel) Init() tea.Cmd { return textinput.Blink }

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.value = m.ti.Value()
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m textModel) View() string {
	if m.done {
		return infoStyle.Render("? ") + m.prompt + " " + mutedStyle.Render(m.value) + "\n"
	}
	if m.aborted {
		return ""
	}
	return infoStyle.Render("? ") + m.prompt + "\n" + m.ti.View() + "\n"
}

// -------------- confirm ----------------

type confirmModel struct {
	prompt  string
	def     bool
	answer  bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch strings.ToLower(k.String()) {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "y":
		m.answer, m.done = true, true
		return m, tea.Quit
	case "n":
		m.answer, m.done = false, true
		return m, tea.Quit
	case "enter":
		m.answer, m.done = m.def, true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	hint := "(y/N)"
	if m.def {
		hint = "(Y/n)"
	}
	line := warnStyle.Render("? ") + m.prompt + " " + mutedStyle.Render(hint)
	if m.done {
		answer := "no"
		if m.answer {
			answer = "yes"
		}
		return line + " " + answer + "\n"
	}
	return line + "\n"
}
