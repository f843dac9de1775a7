package services

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"cartographer.dev/internal/config"
	"cartographer.dev/internal/export"
	"cartographer.dev/internal/generation"
	"cartographer.dev/internal/render"
)

type brokenSink struct{}

func (brokenSink) Write(ctx context.Context, filename string, data []byte) error {
	return errors.New("disk full")
}

func newTestService(t *testing.T, sink export.Sink) (*MapService, *export.Recorder) {
	t.Helper()
	cfg := config.Default()
	cfg.Render.PreviewWidth = 128
	cfg.Render.PreviewHeight = 96
	cfg.Render.MaxWidth = 512
	cfg.Render.MaxHeight = 384
	rec := &export.Recorder{}
	return NewMapService(cfg, rec, sink, zap.NewNop()), rec
}

func TestGenerateValidates(t *testing.T) {
	svc, _ := newTestService(t, nil)

	p := generation.DefaultParams()
	p.WaterLevel = 0.95
	_, err := svc.Generate(1, p)
	assert.ErrorIs(t, err, generation.ErrInvalidParameter)

	m, err := svc.Generate(12345, generation.DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, uint32(12345), m.Seed)
}

func TestSummary(t *testing.T) {
	svc, _ := newTestService(t, nil)

	s, err := svc.Summary(12345, generation.DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, "fantasy_map_12345.png", s.Filename)
	assert.Equal(t, 200, s.Width)
	assert.Equal(t, 150, s.Height)
	assert.LessOrEqual(t, len(s.Cities), 8)
	assert.LessOrEqual(t, len(s.Castles), 4)
	if len(s.Cities) > 1 {
		assert.Len(t, s.Roads, len(s.Cities))
	} else {
		assert.Empty(t, s.Roads)
	}
	for _, r := range s.Rivers {
		assert.Contains(t, []string{"water", "lake"}, r.Terminus)
		assert.GreaterOrEqual(t, r.Length, 2)
	}

	again, err := svc.Summary(12345, generation.DefaultParams())
	require.NoError(t, err)
	assert.Equal(t, s, again)
}

func TestCheckSize(t *testing.T) {
	svc, _ := newTestService(t, nil)

	tests := []struct {
		name string
		size Size
		ok   bool
	}{
		{"preview", Size{128, 96}, true},
		{"at limit", Size{512, 384}, true},
		{"zero", Size{0, 96}, false},
		{"negative", Size{128, -1}, false},
		{"over limit", Size{513, 384}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CheckSize(tt.size)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, render.ErrInvalidSize)
			}
		})
	}
}

func TestPreview(t *testing.T) {
	svc, _ := newTestService(t, nil)

	data, err := svc.Preview(context.Background(), 7, generation.DefaultParams())
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 96, img.Bounds().Dy())
}

func TestRenderDeterministic(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	a, err := svc.Render(ctx, 99, generation.DefaultParams(), Size{160, 120})
	require.NoError(t, err)
	b, err := svc.Render(ctx, 99, generation.DefaultParams(), Size{160, 120})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestExportNotifiesSuccess(t *testing.T) {
	sink := export.NewMemorySink()
	svc, rec := newTestService(t, sink)

	res, err := svc.Export(context.Background(), 42, generation.DefaultParams(), Size{128, 96})
	require.NoError(t, err)

	assert.Equal(t, "fantasy_map_42.png", res.Filename)
	data, ok := sink.File(res.Filename)
	require.True(t, ok)
	assert.Equal(t, res.Data, data)

	notes := rec.Notifications()
	require.Len(t, notes, 1)
	assert.Equal(t, export.LevelSuccess, notes[0].Level)
	assert.Equal(t, export.SuccessTitle, notes[0].Title)
}

func TestExportNotifiesFailure(t *testing.T) {
	svc, rec := newTestService(t, brokenSink{})

	_, err := svc.Export(context.Background(), 42, generation.DefaultParams(), Size{128, 96})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	notes := rec.Notifications()
	require.Len(t, notes, 1)
	assert.Equal(t, export.LevelError, notes[0].Level)
}

func TestExportRejectsBadSize(t *testing.T) {
	sink := export.NewMemorySink()
	svc, rec := newTestService(t, sink)

	_, err := svc.Export(context.Background(), 42, generation.DefaultParams(), Size{4096, 96})
	assert.ErrorIs(t, err, render.ErrInvalidSize)
	assert.Equal(t, 0, sink.Len())
	require.Len(t, rec.Notifications(), 1)
}

func TestExportBatch(t *testing.T) {
	defer goleak.VerifyNone(t)

	sink := export.NewMemorySink()
	svc, rec := newTestService(t, sink)
	sizes := []Size{{64, 48}, {128, 96}, {256, 192}}

	results, err := svc.ExportBatch(context.Background(), 2024, generation.DefaultParams(), sizes)
	require.NoError(t, err)
	require.Len(t, results, len(sizes))

	for i, res := range results {
		assert.Equal(t, sizes[i], res.Size)
		assert.Equal(t, ExportFilename(2024, sizes[i], true), res.Filename)

		img, err := png.Decode(bytes.NewReader(res.Data))
		require.NoError(t, err)
		assert.Equal(t, sizes[i].Width, img.Bounds().Dx())
		assert.Equal(t, sizes[i].Height, img.Bounds().Dy())
	}
	assert.Equal(t, len(sizes), sink.Len())
	assert.Len(t, rec.Notifications(), 1)
}

func TestExportBatchCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	svc, rec := newTestService(t, export.NewMemorySink())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ExportBatch(ctx, 1, generation.DefaultParams(), []Size{{64, 48}, {128, 96}})
	assert.ErrorIs(t, err, context.Canceled)
	notes := rec.Notifications()
	require.Len(t, notes, 1)
	assert.Equal(t, export.LevelError, notes[0].Level)
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "fantasy_map_5.png", ExportFilename(5, Size{2048, 1536}, false))
	assert.Equal(t, "fantasy_map_5_2048x1536.png", ExportFilename(5, Size{2048, 1536}, true))
}

func TestControls(t *testing.T) {
	svc, _ := newTestService(t, nil)
	list := svc.Controls()
	assert.Len(t, list.Controls, 8)
	assert.Equal(t, generation.DefaultParams(), list.Defaults)
}
