package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/daireno/pkg/editor"
	"github.com/matzehuels/daireno/pkg/render/diagram"
	"github.com/matzehuels/daireno/pkg/render/sink"
	"github.com/matzehuels/daireno/pkg/section"
)

// Grid styles
var (
	gridLabelStyle  = lipgloss.NewStyle().Width(16).Foreground(colorGray)
	gridCellStyle   = lipgloss.NewStyle().Padding(0, 1).Foreground(colorWhite)
	gridCursorStyle = lipgloss.NewStyle().Padding(0, 1).Reverse(true).Bold(true)
	gridPromptStyle = lipgloss.NewStyle().Foreground(colorCyan)
	gridHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// editModel - Interactive section editor
// =============================================================================

// savedMsg reports the result of writing the diagram.
type savedMsg struct {
	path string
	err  error
}

// editModel is the bubbletea model for editing a section in the terminal.
//
// The cursor moves over a grid of floors listed top floor first. Column 0 is
// the floor label; column c > 0 is apartment c-1 of that floor. Pressing enter
// clicks the cell under the cursor, which opens the same prompt a mouse click
// on the diagram would.
type editModel struct {
	ctx    context.Context
	editor *editor.Editor
	output string

	row, col int

	pending *editor.PendingEdit
	input   []rune

	status string
	failed bool
	saved  []string
}

func newEditModel(ctx context.Context, e *editor.Editor, output string) editModel {
	return editModel{ctx: ctx, editor: e, output: output}
}

// rows returns stored floor indices in display order.
func (m editModel) rows() []int {
	return diagram.TopDown(m.editor.Section())
}

// floor returns the stored index and floor under the cursor.
func (m editModel) floor() (int, section.Floor, bool) {
	rows := m.rows()
	if m.row < 0 || m.row >= len(rows) {
		return 0, section.Floor{}, false
	}
	i := rows[m.row]
	return i, m.editor.Section().Floors[i], true
}

// clamp keeps the cursor on an existing cell after moves and edits.
func (m *editModel) clamp() {
	n := len(m.rows())
	m.row = min(max(m.row, 0), max(n-1, 0))
	_, f, ok := m.floor()
	if !ok {
		m.col = 0
		return
	}
	m.col = min(max(m.col, 0), len(f.Apartments))
}

func (m editModel) Init() tea.Cmd {
	return nil
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.pending != nil {
			return m.updatePrompt(msg), nil
		}
		return m.updateGrid(msg)
	case savedMsg:
		if msg.err != nil {
			m.status, m.failed = msg.err.Error(), true
		} else {
			m.status, m.failed = "wrote "+msg.path, false
			m.saved = append(m.saved, msg.path)
		}
	}
	return m, nil
}

func (m editModel) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		m.row--
	case "down", "j":
		m.row++
	case "left", "h":
		m.col--
	case "right", "l":
		m.col++
	case "enter", " ":
		m.click()
	case "r":
		if err := m.editor.Regenerate(m.ctx); err != nil {
			m.status, m.failed = err.Error(), true
		} else {
			m.status, m.failed = "regenerated", false
		}
	case "w":
		return m, m.save()
	}
	m.clamp()
	return m, nil
}

// click opens the prompt for the cell under the cursor.
func (m *editModel) click() {
	i, _, ok := m.floor()
	if !ok {
		return
	}
	var p editor.PendingEdit
	if m.col == 0 {
		p, ok = m.editor.ClickFloor(i)
	} else {
		p, ok = m.editor.ClickApartment(i, m.col-1)
	}
	if !ok {
		return
	}
	m.pending = &p
	m.input = []rune(p.Default)
	m.status = ""
}

func (m editModel) updatePrompt(msg tea.KeyMsg) editModel {
	p := *m.pending
	switch msg.Type {
	case tea.KeyEsc:
		m.editor.Commit(m.ctx, p, "", true)
		m.pending, m.input = nil, nil
		m.status, m.failed = "cancelled", false
	case tea.KeyEnter:
		if err := m.editor.Apply(m.ctx, p, string(m.input)); err != nil {
			m.status, m.failed = err.Error(), true
		} else {
			m.status, m.failed = "", false
		}
		m.pending, m.input = nil, nil
		m.clamp()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, msg.Runes...)
	}
	return m
}

// save writes the current diagram as SVG.
func (m editModel) save() tea.Cmd {
	ctx, d, path := m.ctx, m.editor.Drawing(), m.output
	return func() tea.Msg {
		data, err := sink.Render(ctx, sink.FormatSVG, d, sink.Options{})
		if err == nil {
			err = os.WriteFile(path, data, 0o644)
		}
		return savedMsg{path: path, err: err}
	}
}

func (m editModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Daire No"))
	b.WriteString("\n")
	b.WriteString(gridHelpStyle.Render("arrows/hjkl: move  enter: edit  r: regenerate  w: write svg  q: quit"))
	b.WriteString("\n\n")

	s := m.editor.Section()
	for r, i := range m.rows() {
		f := s.Floors[i]
		label := gridLabelStyle
		switch {
		case f.Basement:
			label = label.Foreground(colorOlive)
		case f.IsGround():
			label = label.Bold(true).Foreground(colorWhite)
		}
		cells := []string{m.cell(r, 0, label, f.Label)}
		for j, a := range f.Apartments {
			style := gridCellStyle
			if a.Custom() {
				style = style.Foreground(colorCyan)
			}
			cells = append(cells, m.cell(r, j+1, style, a.String()))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.pending != nil {
		b.WriteString(gridPromptStyle.Render(m.pending.Prompt))
		b.WriteString(" " + string(m.input) + "█\n")
		b.WriteString(gridHelpStyle.Render("enter: ok  esc: cancel"))
	} else if m.status != "" {
		if m.failed {
			b.WriteString(StyleWarning.Render(m.status))
		} else {
			b.WriteString(StyleSuccess.Render(m.status))
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (m editModel) cell(row, col int, style lipgloss.Style, text string) string {
	if row == m.row && col == m.col && m.pending == nil {
		return gridCursorStyle.Inherit(style).Render(text)
	}
	return style.Render(text)
}

// =============================================================================
// Helpers
// =============================================================================

// floorSummary describes a section in one line.
func floorSummary(s section.Section) string {
	var basements int
	for _, f := range s.Floors {
		if f.Basement {
			basements++
		}
	}
	return fmt.Sprintf("%d floors (%d basements), %d apartments",
		len(s.Floors), basements, s.TotalApartments())
}
