// Package api is the engine facade: it turns raw track file bytes into
// route statistics and a simplified rendering polyline.
//
// Statistics are always computed over the full-resolution point
// sequence; simplification runs independently and never feeds into the
// numbers.
package api

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/tourlog/trackd/geo/gpx"
	"github.com/tourlog/trackd/geo/simplify"
	"github.com/tourlog/trackd/params"
	"github.com/tourlog/trackd/types/routestats"
	"github.com/tourlog/trackd/types/trackpoint"
)

// Result is one complete analysis of one uploaded file. Immutable once
// built; cached results are shared across callers.
type Result struct {
	Stats      routestats.RouteStatistics `json:"stats"`
	Simplified trackpoint.SimplifiedTrack `json:"simplified"`
}

// Engine processes complete track files as single batch invocations.
// Each invocation is stateless and idempotent; the only cross-invocation
// state is a bounded cache of immutable results keyed by input hash,
// which determinism makes safe.
type Engine struct {
	config *params.Config
	cache  *lru.Cache[[sha256.Size]byte, *Result]
	logger *slog.Logger
}

func NewEngine(config *params.Config) (*Engine, error) {
	if config == nil {
		config = params.DefaultConfig()
	}
	cache, err := lru.New[[sha256.Size]byte, *Result](config.ResultCacheSize)
	if err != nil {
		return nil, err
	}
	return &Engine{
		config: config,
		cache:  cache,
		logger: slog.With("component", "engine"),
	}, nil
}

// Process analyzes one complete track file. Size gates run before any
// parsing. The input bytes are never mutated.
func (e *Engine) Process(ctx context.Context, data []byte) (*Result, error) {
	if int64(len(data)) > e.config.MaxUploadBytes {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)",
			ErrOversize, len(data), e.config.MaxUploadBytes)
	}
	if int64(len(data)) > e.config.MaxSyncBytes {
		return nil, fmt.Errorf("%w: %d bytes (sync limit %d)",
			ErrUnimplementedAsyncPath, len(data), e.config.MaxSyncBytes)
	}

	key := sha256.Sum256(data)
	if res, ok := e.cache.Get(key); ok {
		e.logger.Debug("Result cache hit", "bytes", len(data))
		return res, nil
	}

	points, err := gpx.Parse(data)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Stats: e.Aggregate(ctx, points),
		Simplified: simplify.DouglasPeucker(points,
			e.config.DouglasPeuckerThreshold),
	}

	e.cache.Add(key, res)
	e.logger.Info("Processed track",
		"points", len(points),
		"simplified", len(res.Simplified.Points),
		"km", res.Stats.TotalDistanceKM)
	return res, nil
}
