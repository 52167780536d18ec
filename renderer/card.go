package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/pricechart"
	"github.com/etnz/pricechart/geometry"
	md "github.com/nao1215/markdown"
)

// DefaultSparklineWidth is the number of characters of the card's sparkline.
const DefaultSparklineWidth = 60

// RenderCard renders f as a markdown card: title, window toggle, summary,
// sparkline and the table of the active point, if any.
func RenderCard(f pricechart.Frame) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := f.Title
	if title == "" {
		title = "Price chart"
	}
	doc.H1(title)
	if f.Description != "" {
		paragraph(doc, f.Description)
	}
	paragraph(doc, toggle(f.Window, f.Windows))
	paragraph(doc, summary(f))
	if line := Sparkline(f.Layout, DefaultSparklineWidth); line != "" {
		paragraph(doc, "`"+line+"`")
	}

	var tooltip bytes.Buffer
	ConditionalBlock(&tooltip, func(w io.Writer) bool {
		if len(f.Tooltip) == 0 {
			return false
		}
		table := md.TableSet{
			Header: []string{"Field", "Value"},
			Rows:   [][]string{},
		}
		for _, r := range f.Tooltip {
			table.Rows = append(table.Rows, []string{r.Label, r.Value})
		}
		fmt.Fprint(w, md.NewMarkdown(io.Discard).H2("Selected point").Table(table).String())
		return true
	})

	return doc.String() + "\n" + tooltip.String()
}

// paragraph writes text followed by an empty line.
func paragraph(doc *md.Markdown, text string) {
	doc.PlainText(text).PlainText("")
}

// toggle returns the window selector line, the selected window in bold.
func toggle(selected pricechart.Window, windows []pricechart.Window) string {
	labels := make([]string, 0, len(windows))
	for _, w := range windows {
		if w == selected {
			labels = append(labels, "**"+w.String()+"**")
			continue
		}
		labels = append(labels, w.String())
	}
	return "Window: " + strings.Join(labels, " · ")
}

// summary returns the line describing the last price and the change over the view.
func summary(f pricechart.Frame) string {
	if f.Layout == nil || f.Layout.Empty() {
		return "No data."
	}
	return fmt.Sprintf("Last **%s**, change %s (%s) over %s (%s).",
		f.Last.Format(2),
		f.Change.SignedString(),
		f.ChangePct.SignedString(),
		f.Window.Label(),
		f.Range,
	)
}

// blocks are the levels of a sparkline, lowest first.
var blocks = []rune("▁▂▃▄▅▆▇█")

// Sparkline returns a one-line drawing of the layout's price line, at most width characters.
//
// Points are sampled evenly when there are more points than characters.
// An empty layout gives an empty string.
func Sparkline(l *geometry.Layout, width int) string {
	if l == nil || l.Empty() || width <= 0 {
		return ""
	}
	n := len(l.Points)
	width = min(width, n)
	h := l.Plot.Height()
	var b strings.Builder
	for i := range width {
		p := l.Points[0]
		if width > 1 {
			p = l.Points[i*(n-1)/(width-1)]
		}
		level := 0
		if h > 0 {
			level = int((l.Plot.Bottom - p.Y) / h * float64(len(blocks)))
		}
		b.WriteRune(blocks[min(max(level, 0), len(blocks)-1)])
	}
	return b.String()
}
