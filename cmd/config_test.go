package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	want := &Config{
		Currency:     "USD",
		Floor:        20,
		Window:       "1Y",
		Width:        800,
		Height:       400,
		Seed:         1,
		Points:       365,
		TickerPeriod: time.Minute,
		LogLevel:     "info",
		JSONPath:     JSONPathConfig{Dates: "$.dates", Prices: "$.prices"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	content := `currency: EUR
floor: 5
window: 6M
ticker_period: 30s
jsonpath:
  dates: $.chart.t
  prices: $.chart.c
`
	if err := os.WriteFile(filepath.Join(dir, "pchart.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PCHART_CURRENCY", "GBP")
	t.Setenv("PCHART_JSONPATH_VOLUMES", "$.chart.v")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Currency != "GBP" || cfg.Floor != 5 || cfg.Window != "6M" || cfg.TickerPeriod != 30*time.Second {
		t.Errorf("LoadConfig() = %+v", cfg)
	}
	want := JSONPathConfig{Dates: "$.chart.t", Prices: "$.chart.c", Volumes: "$.chart.v"}
	if diff := cmp.Diff(want, cfg.JSONPath); diff != "" {
		t.Errorf("JSONPath mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("width: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name, path, want string
	}{
		{"missing file", filepath.Join(dir, "missing.yaml"), "error reading config file"},
		{"invalid value", bad, "viewport"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadConfig() error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	if _, err := NewLogger("debug"); err != nil {
		t.Errorf("NewLogger(debug) error: %v", err)
	}
	if _, err := NewLogger("loud"); err == nil {
		t.Errorf("NewLogger(loud) returned no error")
	}
}
