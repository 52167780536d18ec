package pricechart

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/pricechart/date"
)

// Series are persisted as JSONL, one point per line, in a way that is still
// human-readable and git-friendly:
//
//	{"on":"2025-01-02","price":101.25,"volume":734012,"sector":"tech"}
//
// "on", "price" and "volume" are the point's attributes, every other property is
// an auxiliary field, kept in the order of the line.
const (
	attrOn     = "on"
	attrPrice  = "price"
	attrVolume = "volume"
)

// EncodeSeries writes every point of s as a JSON line.
func EncodeSeries(w io.Writer, s *Series) error {
	for i := range s.Len() {
		p := s.At(i)
		var jw jsonObjectWriter
		jw.Append(attrOn, p.On)
		jw.Append(attrPrice, p.Price)
		jw.Append(attrVolume, p.Volume)
		for k, v := range p.Aux.All() {
			jw.Append(k, v)
		}
		b, err := jw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot encode point on %s: %w", p.On, err)
		}
		b = append(b, '\n')
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// DecodePoints reads JSONL points from r. Empty lines are ignored.
//
// filename is for error message only.
func DecodePoints(filename string, r io.Reader) ([]Point, error) {
	var points []Point
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		p, err := decodePoint(line)
		if err != nil {
			return nil, fmt.Errorf("parse error %s:%v: %w", filename, i, err)
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", filename, err)
	}
	return points, nil
}

// decodePoint decodes a single JSON object, keeping the order of auxiliary properties.
func decodePoint(line []byte) (p Point, err error) {
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return p, fmt.Errorf("not a json object")
	}

	p.Price = math.NaN() // a missing price is repaired by the series.
	hasDate := false
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return p, fmt.Errorf("not a correct json: %w", err)
		}
		key := tok.(string) // object keys are always strings
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return p, fmt.Errorf("not a correct json value for %q: %w", key, err)
		}

		switch key {
		case attrOn:
			if err := json.Unmarshal(raw, &p.On); err != nil {
				return p, fmt.Errorf("property %q must be a date: %w", attrOn, err)
			}
			hasDate = true
		case attrPrice:
			if string(raw) == "null" {
				continue
			}
			if p.Price, err = strconv.ParseFloat(unquote(raw), 64); err != nil {
				return p, fmt.Errorf("property %q must be a number: %w", attrPrice, err)
			}
		case attrVolume:
			if p.Volume, err = strconv.ParseInt(unquote(raw), 10, 64); err != nil {
				return p, fmt.Errorf("property %q must be an integer: %w", attrVolume, err)
			}
		default:
			p.Aux = p.Aux.Set(key, unquote(raw))
		}
	}
	if !hasDate {
		return p, fmt.Errorf("missing the property %q with a date", attrOn)
	}
	return p, nil
}

// unquote returns the content of a json string, or the raw json text of any other value.
func unquote(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

// JSONLFile is a SeriesProvider reading points from a JSONL file.
type JSONLFile struct {
	Path string
}

// Points implements SeriesProvider.
func (f JSONLFile) Points(ctx context.Context) ([]Point, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q for reading: %w", f.Path, err)
	}
	defer r.Close()
	return DecodePoints(f.Path, r)
}

// check that providers implement the interface.
var _ SeriesProvider = JSONLFile{}
var _ SeriesProvider = RandomWalk{}
var _ SeriesProvider = (*JSONPath)(nil)

// dateOf converts a loose json value into a Date: a date string or a unix timestamp in seconds.
func dateOf(v any) (date.Date, error) {
	switch x := v.(type) {
	case string:
		return date.Parse(x)
	case float64:
		return date.FromOrdinal(int(math.Floor(x / 86400))), nil
	default:
		return date.Date{}, fmt.Errorf("cannot read a date from %v", v)
	}
}
