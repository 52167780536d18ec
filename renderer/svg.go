package renderer

import (
	"unicode/utf8"

	"github.com/etnz/pricechart"
	"github.com/etnz/pricechart/geometry"
	"github.com/etnz/pricechart/interaction"
)

// SVGOptions holds the identity and colors of a rendered chart.
type SVGOptions struct {
	ID         string // prefix of the document ids, unique per page.
	Primary    string // line, area and highlight.
	Grid       string
	Axis       string // tick labels.
	Background string // tooltip box.
}

// DefaultSVGOptions are the options used by RenderSVG.
var DefaultSVGOptions = SVGOptions{
	ID:         "pchart",
	Primary:    "#6366f1",
	Grid:       "#e5e7eb",
	Axis:       "#6b7280",
	Background: "#111827",
}

// Tooltip box metrics, in pixels. Text width is estimated from the font size.
const (
	tooltipPadding    = 8.0
	tooltipLineHeight = 16.0
	tooltipCharWidth  = 7.0
	tooltipGap        = 12.0 // between the active point and the box.
)

type svgRow struct {
	Y            float64
	Label, Value string
}

type svgTooltip struct {
	X, Y, Width, Height float64
	Padding             float64
	Rows                []svgRow
}

type svgChart struct {
	SVGOptions
	Title, Description, Class string
	Width, Height             float64
	Opacity, OffsetY          float64
	Reveal                    float64 // width of the visible part of the area.
	Plot                      geometry.Rect
	Area, Line                string
	YTicks, XTicks            []geometry.Tick
	YLabelX, XLabelY          float64
	Highlight                 *interaction.Highlight
	Tooltip                   *svgTooltip
}

// RenderSVG renders f as a standalone SVG document with DefaultSVGOptions.
func RenderSVG(f pricechart.Frame) string {
	return RenderSVGWith(f, DefaultSVGOptions)
}

// RenderSVGWith renders f as a standalone SVG document.
func RenderSVGWith(f pricechart.Frame, opts SVGOptions) string {
	data := svgChart{
		SVGOptions:  opts,
		Title:       f.Title,
		Description: f.Description,
		Class:       f.Class,
		Opacity:     f.Opacity,
		OffsetY:     f.OffsetY,
		Highlight:   f.Highlight,
	}
	if l := f.Layout; l != nil {
		data.Width, data.Height = l.Viewport.Width, l.Viewport.Height
		data.Plot = l.Plot
		data.Reveal = l.Plot.Left + l.Plot.Width()*f.Draw
		data.YTicks, data.XTicks = l.YTicks, l.XTicks
		data.YLabelX, data.XLabelY = l.Plot.Left-6, l.Plot.Bottom+16
		if !l.Empty() {
			data.Area, data.Line = l.AreaPath(), l.LinePath()
		}
	}
	if f.Highlight != nil && len(f.Tooltip) > 0 {
		data.Tooltip = placeTooltip(f.Tooltip, f.Highlight.Core, data.Plot)
	}

	partials := map[string]string{
		"axes":    "chart_axes.svg",
		"tooltip": "chart_tooltip.svg",
	}
	return renderTemplate("chart", "chart.svg", partials, data)
}

// placeTooltip lays out the tooltip box next to the active point, inside the plot when possible.
//
// The box goes on the right of the point, or on its left when it would overflow the plot.
func placeTooltip(rows []pricechart.TooltipRow, at interaction.Circle, plot geometry.Rect) *svgTooltip {
	t := &svgTooltip{Padding: tooltipPadding}
	chars := 0
	for i, r := range rows {
		chars = max(chars, utf8.RuneCountInString(r.Label)+1+utf8.RuneCountInString(r.Value))
		t.Rows = append(t.Rows, svgRow{
			Y:     tooltipPadding + tooltipLineHeight*float64(i+1) - 4,
			Label: r.Label,
			Value: r.Value,
		})
	}
	t.Width = 2*tooltipPadding + tooltipCharWidth*float64(chars)
	t.Height = 2*tooltipPadding + tooltipLineHeight*float64(len(rows))

	t.X = at.X + tooltipGap
	if t.X+t.Width > plot.Right {
		t.X = at.X - tooltipGap - t.Width
	}
	t.Y = at.Y - t.Height/2
	t.Y = min(t.Y, plot.Bottom-t.Height)
	t.Y = max(t.Y, plot.Top)
	return t
}
