// ============================================================================
// strlist - Growable string list
// ============================================================================
//
// Package:     tui
// Description: Bubbletea model for the interactive list editor
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/strlist/internal/script"
	"github.com/msto63/strlist/pkg/strlist"
)

const helpText = "Enter: run • Ctrl+L: clear history • Esc/Ctrl+C: quit • help: operations"

// entry is one line of the command history
type entry struct {
	command string
	result  string
	failed  bool
	help    bool
}

// Model is the editor state
type Model struct {
	width  int
	height int
	ready  bool

	list    *strlist.List
	input   textinput.Model
	history viewport.Model
	entries []entry
}

// NewModel creates an editor working on list
func NewModel(list *strlist.List) Model {
	ti := textinput.New()
	ti.Placeholder = "add:item, insert:item@index, sort ..."
	ti.Prompt = "> "
	ti.CharLimit = 512
	ti.Width = 60
	ti.Focus()

	return Model{
		list:  list,
		input: ti,
	}
}

// List returns the list being edited
func (m Model) List() *strlist.List {
	return m.list
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			if line == "quit" || line == "exit" {
				return m, tea.Quit
			}
			m.execute(line)
			return m, nil

		case "ctrl+l":
			m.entries = nil
			m.refreshHistory()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		historyHeight := max(msg.Height/3, 3)
		if !m.ready {
			m.history = viewport.New(msg.Width-4, historyHeight)
			m.ready = true
		} else {
			m.history.Width = msg.Width - 4
			m.history.Height = historyHeight
		}
		m.input.Width = max(msg.Width-8, 10)
		m.refreshHistory()
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.history, cmd = m.history.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// execute parses and applies one command line
func (m *Model) execute(line string) {
	if line == "help" {
		m.entries = append(m.entries, entry{command: line, result: script.Usage, help: true})
		m.refreshHistory()
		return
	}

	e := entry{command: line}
	op, err := script.Parse(line)
	if err == nil {
		e.result, err = op.Apply(m.list)
	}
	if err != nil {
		e.result = err.Error()
		e.failed = true
	}

	m.entries = append(m.entries, e)
	m.refreshHistory()
}

func (m *Model) refreshHistory() {
	var s strings.Builder
	for _, e := range m.entries {
		s.WriteString(renderEntry(e))
		s.WriteString("\n")
	}
	m.history.SetContent(s.String())
	m.history.GotoBottom()
}

func renderEntry(e entry) string {
	command := CommandStyle.Render("> " + e.command)
	switch {
	case e.result == "":
		return command
	case e.help:
		return command + "\n" + RenderHelp(e.result)
	case e.failed:
		return command + "\n" + RenderError(e.result)
	default:
		return command + "\n" + ResultStyle.Render(e.result)
	}
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder

	s.WriteString(RenderTitle("strlist editor"))
	s.WriteString("\n")
	s.WriteString(BoxStyle.Width(m.width - 2).Render(RenderItems(m.list.Values(), m.list.Cap())))
	s.WriteString("\n")
	s.WriteString(m.history.View())
	s.WriteString("\n")
	s.WriteString(FocusedInputStyle.Width(m.width - 2).Render(m.input.View()))
	s.WriteString("\n")
	s.WriteString(m.renderFooter())

	return s.String()
}

func (m *Model) renderFooter() string {
	stats := fmt.Sprintf("len %d • cap %d", m.list.Len(), m.list.Cap())

	return StatusBarStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			helpText,
			strings.Repeat(" ", max(0, m.width-lipgloss.Width(helpText)-len(stats)-4)),
			stats,
		),
	)
}
