package renderer

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/pricechart"
	"github.com/etnz/pricechart/date"
	"github.com/etnz/pricechart/transition"
	"github.com/google/go-cmp/cmp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// ramp returns a series of n points with price 100+i.
func ramp(n int) *pricechart.Series {
	points := make([]pricechart.Point, n)
	for i := range points {
		points[i] = pricechart.P(date.New(2025, 1, 1+i), 100+float64(i), 1000, "sector", "tech")
	}
	return pricechart.NewSeries(points)
}

// mounted returns a fully mounted chart.
func mounted(props pricechart.Props) *pricechart.Chart {
	c := pricechart.NewChart(props, pricechart.WithScheduler(transition.Immediate{}))
	c.Mount()
	return c
}

func hover(c *pricechart.Chart, i int) {
	p := c.Frame().Layout.Points[i]
	c.PointerMove(p.X, p.Y)
}

// wellFormed fails the test if doc is not a well formed XML document.
func wellFormed(t *testing.T, doc string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			t.Fatalf("invalid svg: %v\n%s", err, doc)
		}
	}
}

func TestRenderSVG(t *testing.T) {
	c := mounted(pricechart.Props{Title: "Q&A <1>", Description: "daily close", Class: "wide", Series: ramp(60)})
	hover(c, 5)
	svg := RenderSVG(c.Frame())
	wellFormed(t, svg)

	for _, want := range []string{
		`<title>Q&amp;A &lt;1&gt;</title>`,
		`<desc>daily close</desc>`,
		`class="wide"`,
		`width="800.00" height="400.00"`,
		`opacity="1.00" transform="translate(0 0.00)"`,
		`<path class="area" d="M`,
		`<path class="line" d="M`,
		`<circle class="halo"`,
		`<circle class="point"`,
		`Jan 6, 2025`,
		`$105.00`,
		`<tspan font-weight="bold">sector</tspan> tech`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg does not contain %q:\n%s", want, svg)
		}
	}
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("svg has %d circles, want 2", got)
	}
}

func TestRenderSVGNoActivePoint(t *testing.T) {
	svg := RenderSVG(mounted(pricechart.Props{Series: ramp(10)}).Frame())
	wellFormed(t, svg)
	if strings.Contains(svg, "<circle") || strings.Contains(svg, `class="tooltip"`) {
		t.Errorf("svg without active point has a highlight:\n%s", svg)
	}
	if strings.Contains(svg, "<title>") {
		t.Errorf("svg without title has a title element")
	}
}

func TestRenderSVGEmpty(t *testing.T) {
	svg := RenderSVG(mounted(pricechart.Props{Series: pricechart.NewSeries(nil)}).Frame())
	wellFormed(t, svg)
	if strings.Contains(svg, "<path") {
		t.Errorf("empty chart has a path:\n%s", svg)
	}
}

func TestRenderSVGDrawIn(t *testing.T) {
	s := &transition.ManualScheduler{}
	c := pricechart.NewChart(pricechart.Props{Series: ramp(60)}, pricechart.WithScheduler(s))
	c.Mount()
	defer c.Unmount()
	s.Advance(time.Second)

	f := c.Frame()
	if f.Draw <= 0 || f.Draw >= 1 {
		t.Fatalf("Draw = %v, want a draw-in in progress", f.Draw)
	}
	l := f.Layout
	want := fmt.Sprintf(`<rect x="0" y="0" width="%.2f" height="400.00"/>`, l.Plot.Left+l.Plot.Width()*f.Draw)
	if svg := RenderSVG(f); !strings.Contains(svg, want) {
		t.Errorf("svg does not reveal %q:\n%s", want, svg)
	}
}

func TestPlaceTooltip(t *testing.T) {
	c := mounted(pricechart.Props{Series: ramp(60)})
	hover(c, 59) // rightmost point, the box must flip to the left.
	f := c.Frame()
	tip := placeTooltip(f.Tooltip, f.Highlight.Core, f.Layout.Plot)
	if tip.X+tip.Width > f.Highlight.Core.X {
		t.Errorf("tooltip at x=%v width %v overlaps the point at %v", tip.X, tip.Width, f.Highlight.Core.X)
	}
	if tip.Y < f.Layout.Plot.Top || tip.Y+tip.Height > f.Layout.Plot.Bottom {
		t.Errorf("tooltip y=%v height %v is out of the plot %+v", tip.Y, tip.Height, f.Layout.Plot)
	}
	if len(tip.Rows) != len(f.Tooltip) {
		t.Errorf("tooltip has %d rows, want %d", len(tip.Rows), len(f.Tooltip))
	}
}

// parseCard returns the level 1 heading and the table rows of a markdown card.
func parseCard(t *testing.T, card string) (title string, rows [][]string) {
	t.Helper()
	src := []byte(card)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(src))
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			if n.Level == 1 && n.Lines().Len() > 0 {
				seg := n.Lines().At(0)
				title = string(seg.Value(src))
			}
		case *east.TableRow:
			var row []string
			for cell := n.FirstChild(); cell != nil; cell = cell.NextSibling() {
				var b strings.Builder
				for txt := cell.FirstChild(); txt != nil; txt = txt.NextSibling() {
					if tn, ok := txt.(*ast.Text); ok {
						b.Write(tn.Segment.Value(src))
					}
				}
				row = append(row, strings.TrimSpace(b.String()))
			}
			rows = append(rows, row)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return title, rows
}

func TestRenderCard(t *testing.T) {
	c := mounted(pricechart.Props{Title: "ACME", Description: "Daily close.", Series: ramp(60)})
	c.SelectWindow("1M")
	hover(c, 0)
	card := RenderCard(c.Frame())

	title, rows := parseCard(t, card)
	if title != "ACME" {
		t.Errorf("title = %q, want ACME", title)
	}
	want := [][]string{
		{"date", "Jan 31, 2025"},
		{"value", "$130.00"},
		{"volume", "1,000"},
		{"sector", "tech"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("tooltip table mismatch (-want +got):\n%s\ncard:\n%s", diff, card)
	}
	for _, s := range []string{
		"Daily close.",
		"Window: **1M** · 6M · 1Y",
		"Last **$159.00**, change +$29.00 (+22.31%) over 1 Month (Jan 31 - Mar 1, 2025).",
		"## Selected point",
	} {
		if !strings.Contains(card, s) {
			t.Errorf("card does not contain %q:\n%s", s, card)
		}
	}
}

func TestRenderCardWithoutActivePoint(t *testing.T) {
	card := RenderCard(mounted(pricechart.Props{Series: pricechart.NewSeries(nil)}).Frame())
	title, rows := parseCard(t, card)
	if title != "Price chart" || rows != nil {
		t.Errorf("card = %q with rows %v", title, rows)
	}
	if !strings.Contains(card, "No data.") || strings.Contains(card, "Selected point") {
		t.Errorf("unexpected card:\n%s", card)
	}
}

func TestSparkline(t *testing.T) {
	f := mounted(pricechart.Props{Series: ramp(60)}).Frame()
	tests := []struct {
		width int
		want  int
	}{
		{DefaultSparklineWidth, 60},
		{20, 20},
		{100, 60},
		{0, 0},
	}
	for _, tt := range tests {
		got := []rune(Sparkline(f.Layout, tt.width))
		if len(got) != tt.want {
			t.Errorf("Sparkline(%d) has %d runes, want %d", tt.width, len(got), tt.want)
			continue
		}
		if tt.want == 0 {
			continue
		}
		if got[0] != '▁' || got[len(got)-1] != '█' {
			t.Errorf("Sparkline(%d) = %q, want it to rise from ▁ to █", tt.width, string(got))
		}
		for i := 1; i < len(got); i++ {
			if got[i] < got[i-1] {
				t.Errorf("Sparkline(%d) = %q is not increasing", tt.width, string(got))
				break
			}
		}
	}
	if got := Sparkline(nil, 10); got != "" {
		t.Errorf("Sparkline(nil) = %q", got)
	}
}

func TestRenderTape(t *testing.T) {
	plain := TapeStyles{Symbol: lipgloss.NewStyle(), Up: lipgloss.NewStyle(), Down: lipgloss.NewStyle(), Separator: " | "}
	got := RenderTape(pricechart.DefaultTickerItems[:2], plain)
	want := "AAPL 172.45 +1.23 (+0.72%) | GOOGL 135.80 -0.54 (-0.40%)"
	if got != want {
		t.Errorf("RenderTape() = %q, want %q", got, want)
	}

	line := RenderTape(pricechart.DefaultTickerItems, DefaultTapeStyles())
	if i, j := strings.Index(line, "AAPL"), strings.Index(line, "ETH-USD"); i < 0 || j < i {
		t.Errorf("RenderTape() = %q, want every symbol in order", line)
	}
}
