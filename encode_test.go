package pricechart

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeSeries(t *testing.T) {
	s := NewSeries([]Point{
		P(day(0), 101.5, 1000, "sector", "tech", "rating", "A"),
		P(day(1), 102, 2000),
	})
	var buf bytes.Buffer
	if err := EncodeSeries(&buf, s); err != nil {
		t.Fatalf("EncodeSeries() error: %v", err)
	}
	want := `{"on":"2025-01-01","price":101.5,"volume":1000,"sector":"tech","rating":"A"}
{"on":"2025-01-02","price":102,"volume":2000}
`
	if got := buf.String(); got != want {
		t.Errorf("EncodeSeries() =\n%s\nwant\n%s", got, want)
	}
}

func TestDecodePointsKeepsOrder(t *testing.T) {
	in := `{"on":"2025-01-01","rating":"A","price":101.5,"volume":1000,"sector":"tech","score":12.5}

{"on":"2025-1-2","price":null}
`
	got, err := DecodePoints("test.jsonl", strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodePoints() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("DecodePoints() returned %d points, want 2", len(got))
	}
	if diff := cmp.Diff(F("rating", "A", "sector", "tech", "score", "12.5"), got[0].Aux); diff != "" {
		t.Errorf("aux mismatch (-want +got):\n%s", diff)
	}
	if got[0].Price != 101.5 || got[0].Volume != 1000 || got[0].On != day(0) {
		t.Errorf("first point = %+v", got[0])
	}
	// a missing price is clamped once in a series.
	if s := NewSeries(got, WithFloor(20)); s.At(1).Price != 20 {
		t.Errorf("null price became %v, want the floor", s.At(1).Price)
	}
}

func TestDecodePointsErrors(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"not json", "hello", "test.jsonl:1"},
		{"no date", `{"price":1}`, `missing the property "on"`},
		{"bad date", `{"on":"tomorrow"}`, `property "on" must be a date`},
		{"bad price", `{"on":"2025-01-01","price":"cheap"}`, `property "price" must be a number`},
		{"bad volume", "\n" + `{"on":"2025-01-01","volume":1.5}`, "test.jsonl:2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePoints("test.jsonl", strings.NewReader(tt.in))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("DecodePoints() error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestJSONLFileRoundTrip(t *testing.T) {
	s := walk(t, 30)
	path := filepath.Join(t.TempDir(), "series.jsonl")
	var buf bytes.Buffer
	if err := EncodeSeries(&buf, s); err != nil {
		t.Fatalf("EncodeSeries() error: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadSeries(context.Background(), JSONLFile{Path: path})
	if err != nil {
		t.Fatalf("LoadSeries() error: %v", err)
	}
	if got.Len() != s.Len() {
		t.Fatalf("round trip has %d points, want %d", got.Len(), s.Len())
	}
	for i := range s.Len() {
		if diff := cmp.Diff(s.At(i), got.At(i)); diff != "" {
			t.Errorf("point %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestJSONLFileMissing(t *testing.T) {
	_, err := JSONLFile{Path: filepath.Join(t.TempDir(), "nope.jsonl")}.Points(context.Background())
	if err == nil {
		t.Errorf("expected an error for a missing file")
	}
}
