package pricechart

import (
	"math"

	"github.com/dustin/go-humanize"
	"github.com/etnz/pricechart/date"
)

// Reserved keys of a PointInfo, never rendered from auxiliary fields.
const (
	KeyDate   = "date"
	KeyValue  = "value"
	KeyVolume = "volume"
)

// Point is a single daily observation of a series.
type Point struct {
	On     date.Date
	Price  float64
	Volume int64
	Aux    Fields // auxiliary fields, in insertion order.
}

// P is a short constructor for a Point.
func P(on date.Date, price float64, volume int64, aux ...string) Point {
	return Point{On: on, Price: price, Volume: volume, Aux: F(aux...)}
}

// valid reports whether the price is usable above floor.
func (p Point) valid(floor float64) bool {
	return !math.IsNaN(p.Price) && !math.IsInf(p.Price, 0) && p.Price >= floor
}

// PointInfo is the display record of a point.
//
// Date and Value are reserved, everything else lives in Aux, in display order.
type PointInfo struct {
	Date  string
	Value float64
	Aux   Fields
}

// Info returns the display record of p: its volume first, then its auxiliary fields.
func (p Point) Info() PointInfo {
	aux := Fields{{KeyVolume, humanize.Comma(p.Volume)}}
	for k, v := range p.Aux.Without(KeyDate, KeyValue).All() {
		aux = aux.Set(k, v)
	}
	return PointInfo{
		Date:  p.On.Format("Jan 2, 2006"),
		Value: p.Price,
		Aux:   aux,
	}
}

// TooltipRow is a single label/value line of a tooltip.
type TooltipRow struct {
	Label string
	Value string
}

// Tooltip returns the rows to display for info: date, value formatted as money
// in currency, then every auxiliary field in order.
func (info PointInfo) Tooltip(currency string) []TooltipRow {
	rows := make([]TooltipRow, 0, 2+info.Aux.Len())
	rows = append(rows,
		TooltipRow{KeyDate, info.Date},
		TooltipRow{KeyValue, M(info.Value, currency).Format(2)},
	)
	for k, v := range info.Aux.All() {
		rows = append(rows, TooltipRow{k, v})
	}
	return rows
}
