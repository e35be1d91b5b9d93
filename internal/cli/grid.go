package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/periodic/pkg/element"
	"github.com/matzehuels/periodic/pkg/render/styles"
	"github.com/matzehuels/periodic/pkg/table"
)

// Grid rows: 7 periods, a spacer, then the two f-block strips.
const (
	gridColumns     = 18
	gridMainRows    = 7
	gridLanthRow    = gridMainRows + 1
	gridActinRow    = gridMainRows + 2
	gridRows        = gridMainRows + 3
	gridCellWidth   = 4
	stripLabelLanth = "*"
	stripLabelActin = "**"
)

// grid is a terminal rendition of a classified table.
type grid struct {
	cells [gridRows][gridColumns]*table.Placement
	theme styles.Theme
}

// newGrid places every placement on the 10×18 terminal grid.
func newGrid(placements []table.Placement, theme styles.Theme) *grid {
	g := &grid{theme: theme}
	for i := range placements {
		p := &placements[i]
		row, col := gridCoords(p)
		if row < 0 || row >= gridRows || col < 0 || col >= gridColumns {
			continue
		}
		g.cells[row][col] = p
	}
	return g
}

// gridCoords maps a placement to zero-based grid coordinates.
func gridCoords(p *table.Placement) (row, col int) {
	col = p.Position.Column - 1
	switch p.Kind {
	case table.KindLanthanide:
		return gridLanthRow, col
	case table.KindActinide:
		return gridActinRow, col
	default:
		return p.Position.Row - 1, col
	}
}

// at returns the placement at a grid cell, or nil.
func (g *grid) at(row, col int) *table.Placement {
	if row < 0 || row >= gridRows || col < 0 || col >= gridColumns {
		return nil
	}
	return g.cells[row][col]
}

// find returns the grid coordinates of symbol.
func (g *grid) find(symbol string) (row, col int, ok bool) {
	for r := range g.cells {
		for c, p := range g.cells[r] {
			if p != nil && strings.EqualFold(p.Element.Symbol, symbol) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// first returns the first occupied cell in reading order.
func (g *grid) first() (row, col int, ok bool) {
	for r := range g.cells {
		for c, p := range g.cells[r] {
			if p != nil {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// render draws the grid. The cell holding selected, if any, is highlighted.
func (g *grid) render(selected string) string {
	headers := make([]string, gridColumns)
	for i := range headers {
		headers[i] = strconv.Itoa(i + 1)
	}

	rows := make([][]string, gridRows)
	for r := range g.cells {
		rows[r] = make([]string, gridColumns)
		for c, p := range g.cells[r] {
			if p != nil {
				rows[r][c] = p.Element.Symbol
			}
		}
	}
	if rows[gridLanthRow][1] == "" && hasAny(g.cells[gridLanthRow][:]) {
		rows[gridLanthRow][1] = stripLabelLanth
	}
	if rows[gridActinRow][1] == "" && hasAny(g.cells[gridActinRow][:]) {
		rows[gridActinRow][1] = stripLabelActin
	}

	text := lipgloss.Color(g.theme.Text)
	base := lipgloss.NewStyle().Width(gridCellWidth).Align(lipgloss.Center)
	empty := base.Foreground(text).Background(lipgloss.Color(g.theme.Background))

	t := ltable.New().
		Border(lipgloss.HiddenBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return empty.Faint(true)
			}
			p := g.at(row, col)
			if p == nil {
				return empty.Faint(true)
			}
			s := base.Background(lipgloss.Color(p.Color)).Foreground(colorInk)
			if selected != "" && strings.EqualFold(p.Element.Symbol, selected) {
				s = s.Bold(true).Underline(true).Reverse(true)
			}
			return s
		})
	return t.Render()
}

func hasAny(row []*table.Placement) bool {
	for _, p := range row {
		if p != nil {
			return true
		}
	}
	return false
}

// legend lists each category with its color swatch and the number of
// elements shown for it.
func legend(placements []table.Placement) string {
	counts := map[element.Category]int{}
	for _, p := range placements {
		counts[p.Element.Category]++
	}
	var parts []string
	for _, c := range element.Categories() {
		if counts[c] == 0 {
			continue
		}
		swatch := lipgloss.NewStyle().Background(categoryColor(c)).Render("  ")
		parts = append(parts, fmt.Sprintf("%s %s %s", swatch, string(c), StyleDim.Render(strconv.Itoa(counts[c]))))
	}
	return strings.Join(parts, "   ")
}

// =============================================================================
// Detail Card
// =============================================================================

// cardOf converts a placement to the card used by the rendered tooltips, so
// the terminal card shows the same rows.
func cardOf(p table.Placement) styles.Card {
	e := p.Element
	return styles.Card{
		ID:       strings.ToLower(e.Symbol),
		Number:   e.AtomicNumber,
		Symbol:   e.Symbol,
		Name:     e.Name,
		Mass:     e.AtomicMass,
		Category: string(e.Category),
		Block:    string(e.Block),
		Group:    e.Group,
		Period:   e.Period,
		Valence:  p.Valence,
		Color:    p.Color,
		Image:    e.ImagePath(),
	}
}

// placementOf computes the placement of a single element.
func placementOf(e element.Element) table.Placement {
	kind := table.KindOf(e)
	return table.Placement{
		Element:  e,
		Kind:     kind,
		Position: table.GridPosition(e, kind),
		Valence:  table.ValenceElectrons(e),
		Color:    e.Color(),
	}
}

// detailCard renders the element detail card: symbol, name, atomic number
// and the tooltip rows.
func detailCard(p table.Placement) string {
	card := cardOf(p)
	accent := lipgloss.Color(card.Color)

	symbol := lipgloss.NewStyle().Bold(true).Foreground(colorInk).Background(accent).Padding(0, 1).Render(card.Symbol)
	name := lipgloss.NewStyle().Bold(true).Render(card.Name)
	number := StyleDim.Render(fmt.Sprintf("Atomic Number: %d", card.Number))
	header := lipgloss.JoinHorizontal(lipgloss.Center, symbol, "  ", lipgloss.JoinVertical(lipgloss.Left, name, number))

	label := lipgloss.NewStyle().Foreground(colorGray).Width(19)
	var lines []string
	for _, row := range styles.TooltipRows(card) {
		lines = append(lines, label.Render(row.Label)+StyleValue.Render(row.Value))
	}
	lines = append(lines, label.Render("Position")+StyleDim.Render(fmt.Sprintf("%s %s", p.Kind, p.Position)))

	body := lipgloss.JoinVertical(lipgloss.Left, header, "", strings.Join(lines, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Render(body)
}
