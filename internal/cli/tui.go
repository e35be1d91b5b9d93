package cli

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/periodic/pkg/element"
	"github.com/matzehuels/periodic/pkg/render/styles"
	"github.com/matzehuels/periodic/pkg/table"
)

var (
	browseHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
	browseStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
)

// =============================================================================
// BrowseModel - Interactive periodic table
// =============================================================================

// BrowseModel is the bubbletea model for browsing the table. Arrow keys move
// between occupied cells, c cycles the category filter, t toggles the theme
// and enter opens the detail card.
type BrowseModel struct {
	catalog *element.Catalog

	// filters cycles through "all" followed by every non-empty category, plus
	// the starting filter when that category is empty.
	filters   []table.Filter
	filterIdx int

	theme      styles.Theme
	placements []table.Placement
	grid       *grid
	row, col   int
	detail     bool
}

// NewBrowseModel creates a browser over catalog starting with filter f.
func NewBrowseModel(catalog *element.Catalog, f table.Filter, theme styles.Theme) BrowseModel {
	counts := catalog.Count()
	filters := []table.Filter{table.NoFilter()}
	for _, c := range element.Categories() {
		if counts[c] > 0 {
			filters = append(filters, table.ByCategory(c))
		}
	}

	m := BrowseModel{catalog: catalog, filters: filters, theme: theme}
	m.filterIdx = slices.Index(filters, f)
	if m.filterIdx < 0 {
		// An empty category is still a valid request.
		m.filters = append(m.filters, f)
		m.filterIdx = len(m.filters) - 1
	}
	m.rebuild("")
	return m
}

// rebuild reclassifies with the current filter and keeps the cursor on
// symbol when it is still shown.
func (m *BrowseModel) rebuild(symbol string) {
	g := table.Classify(m.catalog.All(), m.filters[m.filterIdx])
	m.placements = table.Place(g)
	m.grid = newGrid(m.placements, m.theme)

	if r, c, ok := m.grid.find(symbol); ok {
		m.row, m.col = r, c
		return
	}
	m.row, m.col, _ = m.grid.first()
	if m.Selected() == nil {
		m.detail = false
	}
}

// Selected returns the placement under the cursor, or nil for an empty table.
func (m BrowseModel) Selected() *table.Placement {
	return m.grid.at(m.row, m.col)
}

// Filter returns the active category filter.
func (m BrowseModel) Filter() table.Filter {
	return m.filters[m.filterIdx]
}

// Theme returns the active theme.
func (m BrowseModel) Theme() styles.Theme {
	return m.theme
}

// Detail reports whether the detail card is open.
func (m BrowseModel) Detail() bool {
	return m.detail
}

func (m BrowseModel) selectedSymbol() string {
	if p := m.Selected(); p != nil {
		return p.Element.Symbol
	}
	return ""
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		if !m.detail {
			return m, tea.Quit
		}
		m.detail = false
	case "left", "h":
		m.moveHorizontal(-1)
	case "right", "l":
		m.moveHorizontal(1)
	case "up", "k":
		m.moveVertical(-1)
	case "down", "j":
		m.moveVertical(1)
	case "c":
		m.filterIdx = (m.filterIdx + 1) % len(m.filters)
		m.rebuild(m.selectedSymbol())
	case "t":
		m.theme = m.theme.Toggle()
		m.grid.theme = m.theme
	case "enter", " ":
		m.detail = !m.detail && m.Selected() != nil
	}
	return m, nil
}

// moveHorizontal moves to the next occupied cell in the current row.
func (m *BrowseModel) moveHorizontal(d int) {
	for c := m.col + d; c >= 0 && c < gridColumns; c += d {
		if m.grid.at(m.row, c) != nil {
			m.col = c
			return
		}
	}
}

// moveVertical moves to the nearest occupied cell in the next non-empty row.
func (m *BrowseModel) moveVertical(d int) {
	for r := m.row + d; r >= 0 && r < gridRows; r += d {
		best, bestDist := -1, gridColumns+1
		for c := 0; c < gridColumns; c++ {
			if m.grid.at(r, c) == nil {
				continue
			}
			dist := c - m.col
			if dist < 0 {
				dist = -dist
			}
			if dist < bestDist {
				best, bestDist = c, dist
			}
		}
		if best >= 0 {
			m.row, m.col = r, best
			return
		}
	}
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Interactive Periodic Table"))
	b.WriteString("  ")
	b.WriteString(browseStatusStyle.Render(fmt.Sprintf("%s · %s", m.Filter().String(), m.theme.Name)))
	b.WriteString("\n")
	b.WriteString(browseHelpStyle.Render("←↑↓→ move  ⏎ details  c category  t theme  q quit"))
	b.WriteString("\n\n")

	view := m.grid.render(m.selectedSymbol())
	if p := m.Selected(); p != nil && m.detail {
		view = lipgloss.JoinHorizontal(lipgloss.Top, view, "  ", detailCard(*p))
	}
	b.WriteString(view)
	b.WriteString("\n")

	if p := m.Selected(); p != nil {
		e := p.Element
		b.WriteString(browseStatusStyle.Render(fmt.Sprintf("  %d %s  %s  %s", e.AtomicNumber, e.Symbol, e.Name, e.Category)))
	} else {
		b.WriteString(browseStatusStyle.Render("  no elements"))
	}
	return b.String()
}

// =============================================================================
// Command
// =============================================================================

// browseCommand creates the browse command, which starts the interactive table.
func (c *CLI) browseCommand() *cobra.Command {
	var category, theme string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the periodic table interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.renderDefaults()
			opts.Category = category
			if theme != "" {
				opts.Theme = theme
			}
			opts.Logger = c.Logger
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}

			m := NewBrowseModel(element.Default(), opts.Filter(), opts.ResolvedTheme())
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "initial category filter")
	cmd.Flags().StringVar(&theme, "theme", "", "initial theme: light or dark")
	_ = cmd.RegisterFlagCompletionFunc("category", completeCategories)
	return cmd
}
