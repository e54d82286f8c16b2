package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sworddrill/internal/bible"
	"github.com/abhisek/sworddrill/internal/ui/theme"
)

// gridColumns is the number of book cells per row.
const gridColumns = 3

// BookGrid lays out the answer options of a drill question as a grid of
// book cells. Navigation is row-major: left/right move within a row,
// up/down jump a full row.
type BookGrid struct {
	Books        []bible.Book
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewBookGrid creates a grid over the given options. correctIndex marks the
// cell holding the target book.
func NewBookGrid(books []bible.Book, correctIndex int) BookGrid {
	return BookGrid{
		Books:        books,
		CorrectIndex: correctIndex,
		Selected:     0,
		ChosenIndex:  -1,
	}
}

// Init returns nil.
func (g BookGrid) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. Once submitted the grid
// is frozen until replaced.
func (g BookGrid) Update(msg tea.Msg) (BookGrid, tea.Cmd) {
	if g.Submitted {
		return g, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if g.Selected%gridColumns > 0 {
			g.Selected--
		}
	case "right", "l":
		if g.Selected%gridColumns < gridColumns-1 && g.Selected+1 < len(g.Books) {
			g.Selected++
		}
	case "up", "k":
		if g.Selected-gridColumns >= 0 {
			g.Selected -= gridColumns
		}
	case "down", "j":
		if g.Selected+gridColumns < len(g.Books) {
			g.Selected += gridColumns
		}
	case "enter":
		g.Submitted = true
		g.ChosenIndex = g.Selected
	}

	return g, nil
}

// Chosen returns the book under the cursor at submit time.
func (g BookGrid) Chosen() (bible.Book, bool) {
	if !g.Submitted || g.ChosenIndex < 0 || g.ChosenIndex >= len(g.Books) {
		return bible.Book{}, false
	}
	return g.Books[g.ChosenIndex], true
}

// IsCorrect returns true if the chosen cell holds the target book.
func (g BookGrid) IsCorrect() bool {
	return g.Submitted && g.ChosenIndex == g.CorrectIndex
}

// View renders the grid of book cells.
func (g BookGrid) View(width int) string {
	cellWidth := width/gridColumns - 4
	if cellWidth < 14 {
		cellWidth = 14
	}
	if cellWidth > 22 {
		cellWidth = 22
	}

	var rows []string
	for start := 0; start < len(g.Books); start += gridColumns {
		end := start + gridColumns
		if end > len(g.Books) {
			end = len(g.Books)
		}

		var cells []string
		for i := start; i < end; i++ {
			cells = append(cells, g.renderCell(i, cellWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, grid)
}

func (g BookGrid) renderCell(i, cellWidth int) string {
	book := g.Books[i]

	cell := lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	if g.Submitted {
		switch {
		case i == g.CorrectIndex:
			return cell.
				BorderForeground(theme.Success).
				Foreground(theme.Success).
				Bold(true).
				Render(book.Name)
		case i == g.ChosenIndex:
			return cell.
				BorderForeground(theme.Error).
				Foreground(theme.Error).
				Bold(true).
				Render(book.Name)
		default:
			return cell.
				BorderForeground(theme.Border).
				Foreground(theme.TextDim).
				Render(book.Name)
		}
	}

	tint := theme.OldTestament
	if book.Testament == bible.NewTestament {
		tint = theme.NewTestament
	}

	if i == g.Selected {
		return cell.
			BorderForeground(theme.Primary).
			Foreground(theme.Primary).
			Bold(true).
			Render("▸ " + book.Name)
	}
	return cell.
		BorderForeground(theme.Border).
		Foreground(tint).
		Render(book.Name)
}
