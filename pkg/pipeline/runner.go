package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/cache"
	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/config"
	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/errors"
	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/export"
	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/layout"
	"github.com/tyevans/builtin-cabinet-maker-sub005/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete decode → layout → export pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		RunID: uuid.NewString(),
	}

	// Stage 1: Decode
	decodeStart := time.Now()
	in, planHash, err := r.Decode(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Input = in
	result.PlanHash = planHash
	result.Stats.DecodeTime = time.Since(decodeStart)
	result.Stats.WallCount = len(in.Room.Walls)
	result.Stats.SectionCount = len(in.Specs)

	opts.Logger.Info("decoded plan",
		"run", result.RunID,
		"room", in.Room.Name,
		"walls", len(in.Room.Walls),
		"sections", len(in.Specs),
		"duration", result.Stats.DecodeTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	res, layoutHit, err := r.LayoutWithCacheInfo(ctx, in, planHash, opts)
	if err != nil {
		return nil, err
	}
	result.Layout = res
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.WarningCount = res.WarningCount()
	result.CacheInfo.LayoutHit = layoutHit

	opts.Logger.Info("computed layout",
		"run", result.RunID,
		"sections", len(res.Sections),
		"warnings", result.Stats.WarningCount,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Export
	exportStart := time.Now()
	observability.Pipeline().OnExportStart(ctx, "")
	var buf bytes.Buffer
	err = export.WriteJSON(export.NewDocument(*in, res), &buf)
	observability.Pipeline().OnExportComplete(ctx, "", time.Since(exportStart), err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "export layout")
	}
	result.Document = buf.Bytes()
	result.Stats.ExportTime = time.Since(exportStart)

	return result, nil
}

// Decode loads and validates the plan document and returns the layout
// input together with the content hash of the raw document. Option-level
// layout settings override the plan's own [layout] table.
func (r *Runner) Decode(ctx context.Context, opts Options) (*layout.Input, string, error) {
	r.applyLogger(&opts)

	source := opts.PlanPath
	if source == "" {
		source = "<inline>"
	}
	start := time.Now()
	observability.Pipeline().OnDecodeStart(ctx, source)

	raw := []byte(opts.PlanTOML)
	if opts.PlanPath != "" {
		if err := errors.ValidatePath(opts.PlanPath); err != nil {
			observability.Pipeline().OnDecodeComplete(ctx, source, 0, time.Since(start), err)
			return nil, "", err
		}
		data, err := os.ReadFile(opts.PlanPath)
		if os.IsNotExist(err) {
			err = errors.New(errors.ErrCodeFileNotFound, "plan file not found: %s", opts.PlanPath)
			observability.Pipeline().OnDecodeComplete(ctx, source, 0, time.Since(start), err)
			return nil, "", err
		}
		if err != nil {
			err = errors.Wrap(errors.ErrCodeInvalidPath, err, "read plan file %s", opts.PlanPath)
			observability.Pipeline().OnDecodeComplete(ctx, source, 0, time.Since(start), err)
			return nil, "", err
		}
		raw = data
	}

	in, err := config.Decode(raw)
	if err != nil {
		observability.Pipeline().OnDecodeComplete(ctx, source, 0, time.Since(start), err)
		return nil, "", err
	}

	if opts.DividerThickness > 0 {
		in.DividerThickness = opts.DividerThickness
	}
	if opts.CornerTreatment != "" {
		in.CornerTreatment = opts.CornerTreatment
	}

	observability.Pipeline().OnDecodeComplete(ctx, source, len(in.Room.Walls), time.Since(start), nil)
	return in, cache.Hash(raw), nil
}

// LayoutWithCacheInfo computes the layout with caching and returns cache
// hit info. The cache key covers the plan content hash and the effective
// layout options.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, in *layout.Input, planHash string, opts Options) (*layout.Result, bool, error) {
	r.applyLogger(&opts)

	cacheKey := r.Keyer.LayoutKey(planHash, layoutKeyOpts(in))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached layout.Result
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return &cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, in.Room.Name, len(in.Specs))
	res, err := layout.LayoutRoom(*in)
	observability.Pipeline().OnLayoutComplete(ctx, in.Room.Name, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache the result
	if data, err := json.Marshal(res); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return res, false, nil // Cache miss
}

// Layout is a convenience wrapper that calls LayoutWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Layout(ctx context.Context, in *layout.Input, planHash string, opts Options) (*layout.Result, error) {
	res, _, err := r.LayoutWithCacheInfo(ctx, in, planHash, opts)
	return res, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
