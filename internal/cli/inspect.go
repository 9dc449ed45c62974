package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/export"
	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/plan"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the inspect command for browsing saved layouts.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [layout.json]",
		Short: "Browse a saved layout interactively",
		Long: `Browse a layout document produced by the layout command.

Sections are listed with their wall, position, and height span; the
selected section's tapers, notches, corner cuts, and warnings are shown
below the table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := export.ImportJSON(args[0])
			if err != nil {
				return err
			}
			model := NewSectionListModel(doc)
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// SectionListModel is the bubbletea model for browsing placed sections.
type SectionListModel struct {
	Doc    *export.Document
	Cursor int
	Height int
	Offset int
}

// NewSectionListModel creates a section browser over a layout document.
func NewSectionListModel(doc *export.Document) SectionListModel {
	return SectionListModel{
		Doc:    doc,
		Height: 15,
	}
}

func (m SectionListModel) Init() tea.Cmd {
	return nil
}

func (m SectionListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Doc.Result.Sections)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 10
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m SectionListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Layout: " + m.Doc.Room))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	sections := m.Doc.Result.Sections
	end := m.Offset + m.Height
	if end > len(sections) {
		end = len(sections)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		s := sections[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		flags := sectionFlags(s)
		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("%d", s.SectionIndex),
			m.wallName(s.WallIndex),
			fmt.Sprintf("%.1f", s.X),
			fmt.Sprintf("%.1f", s.Width),
			fmt.Sprintf("%.1f–%.1f", s.Bottom, s.Top),
			string(s.HeightMode),
			flags,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Wall", "X", "Width", "Span", "Mode", "Flags").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(m.detailView())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(sections))))

	return b.String()
}

// detailView renders the selected section's adjustments and warnings.
func (m SectionListModel) detailView() string {
	if len(m.Doc.Result.Sections) == 0 {
		return listDimStyle.Render("  no sections placed")
	}
	s := m.Doc.Result.Sections[m.Cursor]

	var lines []string
	lines = append(lines, fmt.Sprintf("  position (%.1f, %.1f, %.1f)  rotation %.1f°",
		s.Transform.Position[0], s.Transform.Position[1], s.Transform.Position[2], s.Transform.RotationZ))

	if s.Taper != nil {
		lines = append(lines, fmt.Sprintf("  taper %.1f → %.1f (%s)",
			s.Taper.StartHeight, s.Taper.EndHeight, s.Taper.Direction))
	}
	for _, n := range s.Notches {
		lines = append(lines, fmt.Sprintf("  notch at %.1f width %.1f depth %.1f", n.XOffset, n.Width, n.Depth))
	}
	for _, cut := range s.Cuts {
		lines = append(lines, fmt.Sprintf("  %s edge cut %.1f°", cut.Edge, cut.Angle))
	}

	out := listDimStyle.Render(strings.Join(lines, "\n"))
	for _, w := range s.Warnings {
		out += "\n" + StyleWarning.Render("  ! "+w)
	}
	return out
}

// wallName resolves a wall index to its configured name for display.
func (m SectionListModel) wallName(i int) string {
	positions := m.Doc.Result.Positions
	if i < 0 || i >= len(positions) {
		return fmt.Sprintf("#%d", i)
	}
	return fmt.Sprintf("#%d", positions[i].WallIndex)
}

// sectionFlags summarizes a section's adjustments as short markers.
func sectionFlags(s plan.PlacedSection) string {
	var flags []string
	if s.Taper != nil {
		flags = append(flags, "taper")
	}
	if len(s.Notches) > 0 {
		flags = append(flags, "notch")
	}
	if len(s.Cuts) > 0 {
		flags = append(flags, "cut")
	}
	if len(s.Warnings) > 0 {
		flags = append(flags, "warn")
	}
	if len(flags) == 0 {
		return "—"
	}
	return strings.Join(flags, ",")
}
