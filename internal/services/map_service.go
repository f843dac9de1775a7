package services

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"cartographer.dev/internal/config"
	"cartographer.dev/internal/export"
	"cartographer.dev/internal/generation"
	"cartographer.dev/internal/models"
	"cartographer.dev/internal/render"
)

// Size is a raster resolution in pixels
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ExportResult is one delivered PNG
type ExportResult struct {
	Filename string `json:"filename"`
	Size     Size   `json:"size"`
	Bytes    int    `json:"bytes"`
	Data     []byte `json:"-"`
}

// MapService generates, renders and exports maps
type MapService struct {
	defaults generation.Params
	limits   config.RenderConfig
	notifier export.Notifier
	sink     export.Sink
	log      *zap.Logger
}

// NewMapService creates a new MapService. sink may be nil, in which case
// exports only return their bytes.
func NewMapService(cfg *config.Config, notifier export.Notifier, sink export.Sink, log *zap.Logger) *MapService {
	if log == nil {
		log = zap.NewNop()
	}
	if notifier == nil {
		notifier = export.NewLogNotifier(log)
	}
	return &MapService{
		defaults: cfg.Map,
		limits:   cfg.Render,
		notifier: notifier,
		sink:     sink,
		log:      log,
	}
}

// Defaults returns the configured starting parameters
func (s *MapService) Defaults() generation.Params {
	return s.defaults
}

// Controls returns the slider descriptions with the configured defaults
func (s *MapService) Controls() models.ControlList {
	return models.ControlList{Controls: generation.Controls(), Defaults: s.defaults}
}

// PreviewSize returns the configured preview resolution
func (s *MapService) PreviewSize() Size {
	return Size{Width: s.limits.PreviewWidth, Height: s.limits.PreviewHeight}
}

// RandomSeed returns a fresh seed from the wall clock
func RandomSeed() uint32 {
	return uint32(time.Now().UnixMilli())
}

// Generate validates p and runs one generation
func (s *MapService) Generate(seed uint32, p generation.Params) (*generation.Map, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	m := generation.Generate(seed, p)
	s.log.Debug("map generated",
		zap.Uint32("seed", seed),
		zap.Int("cities", len(m.Cities)),
		zap.Int("castles", len(m.Castles)),
		zap.Int("rivers", len(m.Rivers)),
		zap.Duration("took", time.Since(start)))
	return m, nil
}

// Summary generates a map and returns its JSON view
func (s *MapService) Summary(seed uint32, p generation.Params) (*models.MapSummary, error) {
	m, err := s.Generate(seed, p)
	if err != nil {
		return nil, err
	}
	return models.NewMapSummary(m, render.Filename(seed)), nil
}

// CheckSize rejects resolutions outside the configured limits
func (s *MapService) CheckSize(size Size) error {
	if err := render.ValidateSize(size.Width, size.Height); err != nil {
		return err
	}
	if size.Width > s.limits.MaxWidth || size.Height > s.limits.MaxHeight {
		return fmt.Errorf("%w: %s above limit %dx%d", render.ErrInvalidSize, size, s.limits.MaxWidth, s.limits.MaxHeight)
	}
	return nil
}

// Render generates a map and returns it as PNG bytes
func (s *MapService) Render(ctx context.Context, seed uint32, p generation.Params, size Size) ([]byte, error) {
	if err := s.CheckSize(size); err != nil {
		return nil, err
	}
	m, err := s.Generate(seed, p)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return render.RenderPNG(m, size.Width, size.Height)
}

// Preview renders at the configured preview size
func (s *MapService) Preview(ctx context.Context, seed uint32, p generation.Params) ([]byte, error) {
	return s.Render(ctx, seed, p, s.PreviewSize())
}

// Export renders one PNG, hands it to the sink and notifies the user.
// Failures are reported to the notifier and returned.
func (s *MapService) Export(ctx context.Context, seed uint32, p generation.Params, size Size) (*ExportResult, error) {
	results, err := s.ExportBatch(ctx, seed, p, []Size{size})
	if err != nil {
		return nil, err
	}
	return &results[0], nil
}

// ExportBatch composes the map once and rasterizes it at every size
// concurrently. Results come back in the order of sizes.
func (s *MapService) ExportBatch(ctx context.Context, seed uint32, p generation.Params, sizes []Size) ([]ExportResult, error) {
	results, err := s.exportBatch(ctx, seed, p, sizes)
	if err != nil {
		s.log.Error("export failed", zap.Uint32("seed", seed), zap.Error(err))
		if nerr := s.notifier.Notify(ctx, export.NewFailure(err)); nerr != nil {
			s.log.Warn("failure notification dropped", zap.Error(nerr))
		}
		return nil, err
	}
	if err := s.notifier.Notify(ctx, export.NewSuccess()); err != nil {
		s.log.Warn("success notification dropped", zap.Error(err))
	}
	return results, nil
}

func (s *MapService) exportBatch(ctx context.Context, seed uint32, p generation.Params, sizes []Size) ([]ExportResult, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: no sizes requested", render.ErrInvalidSize)
	}
	for _, size := range sizes {
		if err := s.CheckSize(size); err != nil {
			return nil, err
		}
	}
	m, err := s.Generate(seed, p)
	if err != nil {
		return nil, err
	}
	scene := render.Compose(m)

	results := make([]ExportResult, len(sizes))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())
	for i, size := range sizes {
		filename := ExportFilename(seed, size, len(sizes) > 1)
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			img, err := render.Rasterize(scene, size.Width, size.Height)
			if err != nil {
				return fmt.Errorf("rasterizing %s: %w", size, err)
			}
			data, err := render.EncodePNG(img)
			if err != nil {
				return err
			}
			if s.sink != nil {
				if err := s.sink.Write(egCtx, filename, data); err != nil {
					return fmt.Errorf("writing %s: %w", filename, err)
				}
			}
			results[i] = ExportResult{Filename: filename, Size: size, Bytes: len(data), Data: data}
			s.log.Info("map exported",
				zap.Uint32("seed", seed),
				zap.String("file", filename),
				zap.Int("bytes", len(data)))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ExportFilename names an exported PNG. Batches carry the size so that
// several resolutions of one seed can share a directory.
func ExportFilename(seed uint32, size Size, withSize bool) string {
	if !withSize {
		return render.Filename(seed)
	}
	return fmt.Sprintf("fantasy_map_%d_%s.png", seed, size)
}
