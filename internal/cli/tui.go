package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/wordladder/pkg/ladder"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ComponentListModel - Interactive component browser
// =============================================================================

// ComponentListModel is the bubbletea model for browsing components.
// Enter opens the selected component's word list; esc goes back.
type ComponentListModel struct {
	Components []ladder.Component
	Cursor     int
	Height     int
	Offset     int
	Open       bool
	Width      int
}

// NewComponentListModel creates a new component browser.
func NewComponentListModel(comps []ladder.Component) ComponentListModel {
	return ComponentListModel{
		Components: comps,
		Height:     15,
		Width:      80,
	}
}

func (m ComponentListModel) Init() tea.Cmd {
	return nil
}

func (m ComponentListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if !m.Open {
				return m, tea.Quit
			}
			m.Open = false
		case "up", "k":
			if !m.Open && m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if !m.Open && m.Cursor < len(m.Components)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Components) > 0 {
				m.Open = !m.Open
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
		m.Width = max(msg.Width, 20)
	}
	return m, nil
}

func (m ComponentListModel) View() string {
	if len(m.Components) == 0 {
		return listDimStyle.Render("Dictionary is empty") + "\n"
	}
	if m.Open {
		return m.detailView()
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render("Components"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ open  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Components))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		comp := m.Components[i]
		rows = append(rows, []string{cursor, fmt.Sprint(i), fmt.Sprint(len(comp)), preview(comp, previewWords)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Size", "Words").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if len(m.Components[m.Offset+row]) == 1 {
				return listDimStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Components))))
	return b.String()
}

func (m ComponentListModel) detailView() string {
	comp := m.Components[m.Cursor]

	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("Component %d", m.Cursor)))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d words", len(comp))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("esc back  q quit"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(m.Width).Render(strings.Join(comp, "  ")))
	b.WriteString("\n")
	return b.String()
}
