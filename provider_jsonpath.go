package pricechart

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// JSONPath is a SeriesProvider extracting parallel arrays of dates, prices and
// volumes out of an arbitrary JSON document, typically a quote API answer saved
// on disk.
//
//	{"chart": {"t": ["2025-01-02", ...], "c": [101.2, ...], "v": [734012, ...]}}
//
// is read with Dates "$.chart.t", Prices "$.chart.c" and Volumes "$.chart.v".
// Dates are either date strings or unix timestamps in seconds. Volumes is optional.
type JSONPath struct {
	Doc     any
	Dates   string
	Prices  string
	Volumes string
}

// DecodeJSONPath reads the JSON document from r.
func DecodeJSONPath(r io.Reader, dates, prices, volumes string) (*JSONPath, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("not a correct json document: %w", err)
	}
	return &JSONPath{Doc: doc, Dates: dates, Prices: prices, Volumes: volumes}, nil
}

// Points implements SeriesProvider.
func (j *JSONPath) Points(ctx context.Context) ([]Point, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dates, err := j.list(j.Dates)
	if err != nil {
		return nil, err
	}
	prices, err := j.list(j.Prices)
	if err != nil {
		return nil, err
	}
	var volumes []any
	if j.Volumes != "" {
		if volumes, err = j.list(j.Volumes); err != nil {
			return nil, err
		}
	}
	if len(prices) != len(dates) || (volumes != nil && len(volumes) != len(dates)) {
		return nil, fmt.Errorf("mismatched lengths: %d dates, %d prices, %d volumes", len(dates), len(prices), len(volumes))
	}

	points := make([]Point, len(dates))
	for i, v := range dates {
		on, err := dateOf(v)
		if err != nil {
			return nil, fmt.Errorf("error parsing %q[%d]: %w", j.Dates, i, err)
		}
		points[i] = Point{On: on, Price: number(prices[i])}
		if volumes != nil {
			if vol := number(volumes[i]); !math.IsNaN(vol) {
				points[i].Volume = int64(vol)
			}
		}
	}
	return points, nil
}

// list evaluates path and returns the resulting list.
func (j *JSONPath) list(path string) ([]any, error) {
	jval, err := jsonpath.Get(path, j.Doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("error evaluating %q: not a list but %T", path, jval)
	}
	return jlist, nil
}

// number reads a loose json number, NaN when it's not one.
func number(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case string:
		// some APIs return numbers as strings
		x = strings.ReplaceAll(x, ",", "")
		if f, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil {
			return f
		}
	}
	return math.NaN()
}
