package cmd

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the pchart command.
func Completion() *complete.Command {
	window := predict.Set{"1M", "6M", "1Y"}
	series := predict.Or(predict.Files("*.jsonl"), predict.Files("*.json"))
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":    predict.Files("*.yaml"),
			"log-level": predict.Set{"debug", "info", "warn", "error"},
		},
		Sub: map[string]*complete.Command{
			"chart": {Flags: map[string]complete.Predictor{
				"w":   window,
				"i":   series,
				"svg": predict.Files("*.svg"),
				"x":   predict.Something,
			}},
			"hover": {Flags: map[string]complete.Predictor{
				"w": window,
				"i": series,
				"x": predict.Something,
			}},
			"watch": {Flags: map[string]complete.Predictor{
				"every": predict.Set{"@every 5s", "@every 1m", "@hourly", "@daily"},
				"w":     window,
				"i":     series,
				"runs":  predict.Something,
			}},
			"gen": {Flags: map[string]complete.Predictor{
				"seed": predict.Something,
				"n":    predict.Something,
				"end":  predict.Something,
				"o":    predict.Files("*.jsonl"),
			}},
			"ticker": {Flags: map[string]complete.Predictor{
				"items":   predict.Files("*.yaml"),
				"frames":  predict.Something,
				"fps":     predict.Something,
				"visible": predict.Something,
			}},
			"topic": {Args: predict.Set{"windows", "series", "ticker", "config", "extensions"}},
		},
	}
}
