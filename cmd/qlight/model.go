package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// focus represents which panel/mode has keyboard input.
type focus int

const (
	focusMenu focus = iota
	focusInput
	focusResult
)

// Model represents the TUI application state.
type Model struct {
	focus     focus
	menuIdx   int
	input     textinput.Model
	result    *demoResult
	width     int
	height    int
	statusMsg string // transient status message (e.g. save confirmation)
}

func initialModel() Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 32
	return Model{focus: focusMenu, input: ti}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		key := msg.String()
		m.statusMsg = ""

		if key == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.focus {
		case focusMenu:
			switch key {
			case "q":
				return m, tea.Quit
			case "up", "k":
				if m.menuIdx > 0 {
					m.menuIdx--
				}
			case "down", "j":
				if m.menuIdx < len(demoMenu)-1 {
					m.menuIdx++
				}
			case "enter":
				d := demoMenu[m.menuIdx]
				if d.prompt == "" {
					m.runDemo("")
					break
				}
				m.input.SetValue("")
				m.input.Placeholder = d.placeholder
				m.input.Focus()
				m.focus = focusInput
			}

		case focusInput:
			switch key {
			case "esc":
				m.input.Blur()
				m.focus = focusMenu
			case "enter":
				m.input.Blur()
				m.runDemo(m.input.Value())
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}

		case focusResult:
			switch key {
			case "q":
				return m, tea.Quit
			case "esc", "enter":
				m.focus = focusMenu
				m.result = nil
			case "ctrl+s":
				if m.result == nil || m.result.qasm == "" {
					m.statusMsg = "Nothing to save"
					break
				}
				if err := os.WriteFile("circuit.qasm", []byte(m.result.qasm), 0644); err != nil {
					m.statusMsg = fmt.Sprintf("Save error: %v", err)
				} else {
					m.statusMsg = "Saved circuit.qasm"
				}
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// runDemo executes the selected demo and switches to the result view.
func (m *Model) runDemo(input string) {
	d := demoMenu[m.menuIdx]
	var args []int
	if d.prompt != "" {
		want := len(strings.Fields(d.placeholder))
		parsed, err := parseArgs(input, want)
		if err != nil {
			m.statusMsg = fmt.Sprintf("Input error: %v", err)
			m.focus = focusMenu
			return
		}
		args = parsed
	}
	result, err := d.run(args)
	if err != nil {
		m.statusMsg = fmt.Sprintf("Run error: %v", err)
		m.focus = focusMenu
		return
	}
	m.result = result
	m.focus = focusResult
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var frame string
	switch m.focus {
	case focusResult:
		frame = m.renderResult()
	case focusInput:
		frame = lipgloss.JoinVertical(lipgloss.Left, m.renderMenu(), m.renderInput())
	default:
		frame = m.renderMenu()
	}
	if m.statusMsg != "" {
		frame = lipgloss.JoinVertical(lipgloss.Left, frame, statusStyle.Render(m.statusMsg))
	}
	return frame
}

// renderInput renders the parameter prompt below the menu.
func (m Model) renderInput() string {
	d := demoMenu[m.menuIdx]
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(d.name))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(d.prompt))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("⏎ Run  Esc ✕"))
	return menuBorderStyle.Render(sb.String())
}

// renderResult renders the diagram, counts and QASM panels.
func (m Model) renderResult() string {
	r := m.result
	d := demoMenu[m.menuIdx]

	var panels []string
	if r.diagram != "" {
		panels = append(panels, diagramStyle.Render(r.diagram))
	}
	if r.counts != "" {
		panels = append(panels, countsStyle.Render(strings.TrimRight(r.counts, "\n")))
	}
	top := lipgloss.JoinHorizontal(lipgloss.Top, panels...)

	parts := []string{titleStyle.Render(d.name), top}
	if r.note != "" {
		parts = append(parts, statusStyle.Render(r.note))
	}
	if r.qasm != "" {
		parts = append(parts, qasmStyle.Render(strings.TrimRight(r.qasm, "\n")))
	}
	parts = append(parts, dimStyle.Render("⏎/Esc Back  Ctrl+S Save QASM  q Quit"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
