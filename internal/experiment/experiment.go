// Package experiment runs a configured spiral family end to end: sequence
// generation, synthesis, export and storage.
package experiment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/san-kum/spirals/internal/config"
	"github.com/san-kum/spirals/internal/export"
	"github.com/san-kum/spirals/internal/logging"
	"github.com/san-kum/spirals/internal/metrics"
	"github.com/san-kum/spirals/internal/palette"
	"github.com/san-kum/spirals/internal/sequence"
	"github.com/san-kum/spirals/internal/spiral"
	"github.com/san-kum/spirals/internal/storage"
)

var ErrEmptySequence = errors.New("sequence is empty")

// Summary describes a finished run.
type Summary struct {
	Run       string
	Sequence  []int
	Generated []int
	Skipped   []int
	Points    int
	Elapsed   time.Duration
	Metrics   map[int]map[string]float64
	// Results is only populated when figures are not saved, so callers can
	// show them instead.
	Results []spiral.Result
}

type Runner struct {
	Store    *storage.Store
	Logger   logging.Logger
	Recorder *metrics.Recorder
	SVG      export.SVGOptions
	// Palette overrides the palette chosen from the config.
	Palette palette.Palette
}

func NewRunner(store *storage.Store, logger logging.Logger) *Runner {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Runner{
		Store:    store,
		Logger:   logger,
		Recorder: metrics.NewRecorder(),
		SVG:      export.DefaultSVGOptions(),
	}
}

// PaletteFor picks the fixed palette or a seeded random one.
func PaletteFor(cfg *config.Config) palette.Palette {
	if cfg.Palette.Random {
		return palette.Random(cfg.Palette.Seed, cfg.Palette.Size)
	}
	return palette.Fixed()
}

// Sequence generates the integers a run would draw.
func Sequence(cfg *config.Config) (sequence.Sequence, error) {
	mode, err := cfg.SequenceMode()
	if err != nil {
		return nil, err
	}
	return sequence.Generate(mode, cfg.Low, cfg.High, cfg.Custom)
}

func (r *Runner) Run(ctx context.Context, cfg *config.Config) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.SaveFigure && r.Store == nil {
		return nil, fmt.Errorf("saving figures requires a store")
	}

	seq, err := Sequence(cfg)
	if err != nil {
		return nil, err
	}
	if len(seq) == 0 && cfg.RequireNonEmpty {
		return nil, ErrEmptySequence
	}

	mode, err := cfg.Mode()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	summary := &Summary{
		Run:      cfg.RunName(),
		Sequence: seq,
		Metrics:  make(map[int]map[string]float64),
	}
	meta := storage.NewRunMetadata(cfg)

	todo := make([]int, 0, len(seq))
	for _, p := range seq {
		if cfg.SaveFigure && r.Store.Exists(summary.Run, p) {
			summary.Skipped = append(summary.Skipped, p)
			r.recorder().Skipped()
			r.Logger.Debug("spiral exists, skipping", logging.Int("value", p))
			continue
		}
		todo = append(todo, p)
	}

	pal := r.Palette
	if pal == nil {
		pal = PaletteFor(cfg)
	}

	r.Logger.Info("run started",
		logging.String("run", summary.Run),
		logging.Int("values", len(seq)),
		logging.Int("pending", len(todo)),
		logging.String("plot_type", cfg.PlotType))

	handle := func(res spiral.Result) error {
		t0 := time.Now()
		ms := metrics.Defaults(cfg.Palette.Size)
		for _, m := range ms {
			m.Observe(res)
		}
		values := metrics.Summary(ms)

		if cfg.SaveFigure {
			svg := export.SpiralToSVG(res, pal, r.SVG)
			if err := r.Store.SaveSpiral(summary.Run, res.SourceValue, svg, export.Rows(res)); err != nil {
				return fmt.Errorf("save spiral %d: %w", res.SourceValue, err)
			}
		} else {
			summary.Results = append(summary.Results, res)
		}

		summary.Generated = append(summary.Generated, res.SourceValue)
		summary.Points += res.Len()
		summary.Metrics[res.SourceValue] = values
		meta.Spirals = append(meta.Spirals, storage.SpiralMetadata{
			Value:   res.SourceValue,
			Points:  res.Len(),
			Metrics: values,
		})

		elapsed := time.Since(t0)
		r.recorder().Generated(cfg.PlotType, res.Len(), elapsed)
		r.Logger.Debug("spiral generated",
			logging.Int("value", res.SourceValue),
			logging.Int("points", res.Len()),
			logging.Duration("elapsed", elapsed))
		return nil
	}

	params := cfg.Params()
	if cfg.Workers > 1 {
		results, err := spiral.SynthesizeAll(ctx, todo, params, mode, cfg.Palette.Size, cfg.Workers)
		if err != nil {
			r.recorder().Failed()
			return nil, err
		}
		for _, res := range results {
			if err := handle(res); err != nil {
				r.recorder().Failed()
				return nil, err
			}
		}
	} else {
		for res, err := range spiral.Family(todo, params, mode, cfg.Palette.Size) {
			if err != nil {
				r.recorder().Failed()
				return nil, err
			}
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := handle(res); err != nil {
				r.recorder().Failed()
				return nil, err
			}
		}
	}

	summary.Elapsed = time.Since(start)

	if cfg.SaveFigure {
		if err := r.Store.WriteParams(summary.Run, cfg); err != nil {
			return nil, fmt.Errorf("write params: %w", err)
		}
		meta.Spirals = storage.MergeSpirals(r.previousSpirals(summary.Run, summary.Skipped), meta.Spirals)
		meta.Skipped = summary.Skipped
		meta.Elapsed = summary.Elapsed.Seconds()
		if err := r.Store.SaveMetadata(meta); err != nil {
			return nil, fmt.Errorf("write metadata: %w", err)
		}
	}

	r.Logger.Info("run finished",
		logging.String("run", summary.Run),
		logging.Int("generated", len(summary.Generated)),
		logging.Int("skipped", len(summary.Skipped)),
		logging.Int("points", summary.Points),
		logging.Duration("elapsed", summary.Elapsed))

	return summary, nil
}

// previousSpirals returns what an earlier invocation recorded for run. Skipped
// values it has no entry for are counted from their stored points.
func (r *Runner) previousSpirals(run string, skipped []int) []storage.SpiralMetadata {
	var previous []storage.SpiralMetadata
	if meta, err := r.Store.Load(run); err == nil {
		previous = meta.Spirals
	}

	known := make(map[int]bool, len(previous))
	for _, sp := range previous {
		known[sp.Value] = true
	}
	for _, p := range skipped {
		if known[p] {
			continue
		}
		entry := storage.SpiralMetadata{Value: p}
		if rows, err := r.Store.LoadPoints(run, p); err == nil {
			entry.Points = len(rows)
		} else {
			r.Logger.Warn("no points for skipped spiral", logging.Int("value", p), logging.Err(err))
		}
		previous = append(previous, entry)
	}
	return previous
}

func (r *Runner) recorder() *metrics.Recorder {
	if r.Recorder == nil {
		r.Recorder = metrics.NewRecorder()
	}
	return r.Recorder
}
