package extract

import (
	"context"
	"log/slog"

	"github.com/hazwanhalim/suaraform/internal/form"
	"github.com/hazwanhalim/suaraform/internal/metrics"
)

type Extractor interface {
	Extract(ctx context.Context, transcript, fieldName string, kind form.Kind) (string, error)
}

// Chain tries each extractor in order, returning the first usable
// result. When all of them fail it falls back to the raw transcript so
// the conversation never blocks on the NLU service.
type Chain struct {
	Extractors []Extractor
}

func (c *Chain) Extract(ctx context.Context, transcript, fieldName string, kind form.Kind) (string, error) {
	for _, e := range c.Extractors {
		value, err := e.Extract(ctx, transcript, fieldName, kind)
		if err != nil {
			slog.Warn("field extraction attempt failed", "field", fieldName, "err", err)
			continue
		}

		if value != "" {
			return value, nil
		}
	}

	metrics.ExtractionFallbacks.Inc()

	return transcript, nil
}
