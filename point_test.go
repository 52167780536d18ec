package pricechart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFields(t *testing.T) {
	f := F("sector", "tech", "rating", "A", "sector", "energy", "dangling")
	want := Fields{{"sector", "energy"}, {"rating", "A"}}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Errorf("F() mismatch (-want +got):\n%s", diff)
	}
	g := f.Set("rating", "B")
	if v, _ := f.Get("rating"); v != "A" {
		t.Errorf("Set() modified the original fields")
	}
	if v, ok := g.Get("rating"); !ok || v != "B" {
		t.Errorf("Get(rating) = %q, %v", v, ok)
	}
	if _, ok := g.Get("missing"); ok {
		t.Errorf("Get(missing) found a value")
	}
	if diff := cmp.Diff(Fields{{"rating", "A"}}, f.Without("sector")); diff != "" {
		t.Errorf("Without() mismatch (-want +got):\n%s", diff)
	}
}

func TestPointInfo(t *testing.T) {
	p := P(day(5), 105.456, 1234567, "sector", "tech", "date", "ignored", "value", "ignored", "exchange", "XNAS")
	info := p.Info()
	if info.Date != "Jan 6, 2025" || info.Value != 105.456 {
		t.Errorf("Info() = %+v", info)
	}
	want := Fields{{"volume", "1,234,567"}, {"sector", "tech"}, {"exchange", "XNAS"}}
	if diff := cmp.Diff(want, info.Aux); diff != "" {
		t.Errorf("Info().Aux mismatch (-want +got):\n%s", diff)
	}
}

func TestTooltip(t *testing.T) {
	p := P(day(5), 105.456, 1234567, "sector", "tech", "exchange", "XNAS")
	got := p.Info().Tooltip("USD")
	want := []TooltipRow{
		{"date", "Jan 6, 2025"},
		{"value", "$105.46"},
		{"volume", "1,234,567"},
		{"sector", "tech"},
		{"exchange", "XNAS"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tooltip() mismatch (-want +got):\n%s", diff)
	}
}

func TestTooltipVolumeField(t *testing.T) {
	// an auxiliary volume replaces the computed one in place, it is not duplicated.
	p := P(day(0), 50, 10, "volume", "n/a")
	rows := p.Info().Tooltip("USD")
	if len(rows) != 3 || rows[2] != (TooltipRow{"volume", "n/a"}) {
		t.Errorf("Tooltip() = %v", rows)
	}
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		in   string
		want Window
	}{
		{"1M", OneMonth},
		{" 6m ", SixMonths},
		{"1y", OneYear},
		{"3M", OneYear},
		{"", OneYear},
	}
	for _, tt := range tests {
		if got := ParseWindow(tt.in); got != tt.want {
			t.Errorf("ParseWindow(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if OneMonth.Count() != 30 || SixMonths.Count() != 180 || OneYear.Count() != -1 {
		t.Errorf("unexpected window counts")
	}
}
