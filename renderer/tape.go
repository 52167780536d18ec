package renderer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/pricechart"
)

// TapeStyles are the terminal styles of a ticker tape.
type TapeStyles struct {
	Symbol    lipgloss.Style
	Up        lipgloss.Style
	Down      lipgloss.Style
	Separator string
}

// DefaultTapeStyles returns bold symbols, green rises and red falls.
func DefaultTapeStyles() TapeStyles {
	return TapeStyles{
		Symbol:    lipgloss.NewStyle().Bold(true),
		Up:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Down:      lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Separator: "   ",
	}
}

// RenderTapeItem renders a single quote, like "AAPL 172.45 +1.23 (+0.72%)".
func RenderTapeItem(it pricechart.TickerItem, st TapeStyles) string {
	change := st.Down
	if it.Up {
		change = st.Up
	}
	return st.Symbol.Render(it.Symbol) + " " + it.Price + " " + change.Render(it.Change+" ("+it.ChangePercent+")")
}

// RenderTape renders items on a single line.
func RenderTape(items []pricechart.TickerItem, st TapeStyles) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = RenderTapeItem(it, st)
	}
	return strings.Join(parts, st.Separator)
}
