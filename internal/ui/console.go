// Package ui renders the interactive console: themed panels and tables,
// status lines, and Bubble Tea prompts.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrAborted is returned by prompts the user cancelled with esc or ctrl+c.
var ErrAborted = errors.New("prompt aborted")

// Console is everything the command loop needs from the terminal.
type Console interface {
	Select(prompt string, choices []Choice) (string, error)
	Text(prompt string) (string, error)
	Confirm(prompt string, def bool) (bool, error)

	Success(msg string)
	Error(msg string)
	Warn(msg string)
	Info(msg string)
	Message(msg string)
	Table(headers []string, rows [][]string)
	Summary(done, pending int)
	Clear()
}

// Terminal is the Console backed by a real terminal.
type Terminal struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

// NewTerminal returns a Terminal on stdin/stdout/stderr.
func NewTerminal() *Terminal {
	return &Terminal{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

func (t *Terminal) run(m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m, tea.WithInput(t.in), tea.WithOutput(t.out))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	return final, nil
}

func (t *Terminal) Select(prompt string, choices []Choice) (string, error) {
	final, err := t.run(newSelectModel(prompt, choices))
	if err != nil {
		return "", err
	}
	m, _ := final.(selectModel)
	if m.aborted || m.chosen == "" {
		return "", ErrAborted
	}
	return m.chosen, nil
}

func (t *Terminal) Text(prompt string) (string, error) {
	final, err := t.run(newTextModel(prompt, ""))
	if err != nil {
		return "", err
	}
	m, _ := final.(textModel)
	if m.aborted {
		return "", ErrAborted
	}
	return m.value, nil
}

func (t *Terminal) Confirm(prompt string, def bool) (bool, error) {
	final, err := t.run(confirmModel{prompt: prompt, def: def})
	if err != nil {
		return false, err
	}
	m, _ := final.(confirmModel)
	if m.aborted {
		return false, ErrAborted
	}
	return m.answer, nil
}

func (t *Terminal) Success(msg string) { fmt.Fprintln(t.out, successStyle.Render("✔ "+msg)) }
func (t *Terminal) Error(msg string)   { fmt.Fprintln(t.err, errorStyle.Render("✖ "+msg)) }
func (t *Terminal) Warn(msg string)    { fmt.Fprintln(t.out, warnStyle.Render("! "+msg)) }
func (t *Terminal) Info(msg string)    { fmt.Fprintln(t.out, infoStyle.Render("i "+msg)) }
func (t *Terminal) Message(msg string) { fmt.Fprintln(t.out, msg) }

func (t *Terminal) Table(headers []string, rows [][]string) { Table(t.out, headers, rows) }

// Summary prints the done/pending counts and a progress bar in a panel.
func (t *Terminal) Summary(done, pending int) {
	th := Current()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		C(t.out, th.Title, "Todos"),
		C(t.out, th.Success, th.SymDone), done,
		C(t.out, th.Pending, th.SymPending), pending,
		C(t.out, th.Accent, "Total"), done+pending,
	)
	Panel(t.out, []string{header, C(t.out, th.Muted, ProgressBar(done, done+pending, 28))})
}

// Clear wipes the screen when attached to a terminal.
func (t *Terminal) Clear() {
	if isTTY(t.out) {
		fmt.Fprint(t.out, "\033[H\033[2J")
	}
}
