package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewSuccess(t *testing.T) {
	a := NewSuccess()
	b := NewSuccess()

	assert.Equal(t, "Decree Issued", a.Title)
	assert.Equal(t, "The map has been inscribed into your archives.", a.Message)
	assert.Equal(t, SuccessDuration, a.Duration)
	assert.Equal(t, LevelSuccess, a.Level)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewFailure(t *testing.T) {
	n := NewFailure(errors.New("ink ran dry"))
	assert.Equal(t, LevelError, n.Level)
	assert.Equal(t, "ink ran dry", n.Message)
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := NewLogNotifier(zap.New(core))

	require.NoError(t, n.Notify(context.Background(), NewSuccess()))
	require.NoError(t, n.Notify(context.Background(), NewFailure(errors.New("boom"))))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, SuccessMessage, entries[0].Message)
	assert.Equal(t, "boom", entries[1].Message)
	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
}

func TestFileSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	sink, err := NewFileSink(dir)
	require.NoError(t, err)

	require.NoError(t, sink.Write(context.Background(), "fantasy_map_1.png", []byte("png")))
	data, err := os.ReadFile(filepath.Join(dir, "fantasy_map_1.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), data)

	_, err = os.Stat(filepath.Join(dir, "fantasy_map_1.png.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestFileSinkRejectsPaths(t *testing.T) {
	sink, err := NewFileSink(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", "../escape.png", "a/b.png", ".."} {
		err := sink.Write(context.Background(), name, nil)
		assert.ErrorIs(t, err, ErrInvalidFilename, name)
	}
}

func TestFileSinkCancelled(t *testing.T) {
	sink, err := NewFileSink(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sink.Write(ctx, "x.png", nil), context.Canceled)
}

func TestMemorySinkAndRecorder(t *testing.T) {
	sink := NewMemorySink()
	require.NoError(t, sink.Write(context.Background(), "a.png", []byte{1}))
	b, ok := sink.File("a.png")
	assert.True(t, ok)
	assert.Equal(t, []byte{1}, b)
	assert.Equal(t, 1, sink.Len())

	var r Recorder
	require.NoError(t, r.Notify(context.Background(), NewSuccess()))
	assert.Len(t, r.Notifications(), 1)
}
