// Package export delivers rendered maps and tells the user about it.
package export

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Level is the severity of a notification
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Success copy shown after an export
const (
	SuccessTitle    = "Decree Issued"
	SuccessMessage  = "The map has been inscribed into your archives."
	SuccessDuration = 3 * time.Second
	FailureTitle    = "The Scribes Have Failed"
)

// Notification is a transient message for the user
type Notification struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Message  string        `json:"message"`
	Duration time.Duration `json:"duration"`
	Level    Level         `json:"level"`
}

// Notifier receives notifications
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NewSuccess builds the export success notification
func NewSuccess() Notification {
	return Notification{
		ID:       uuid.NewString(),
		Title:    SuccessTitle,
		Message:  SuccessMessage,
		Duration: SuccessDuration,
		Level:    LevelSuccess,
	}
}

// NewFailure builds an error notification carrying err's message
func NewFailure(err error) Notification {
	return Notification{
		ID:       uuid.NewString(),
		Title:    FailureTitle,
		Message:  err.Error(),
		Duration: SuccessDuration,
		Level:    LevelError,
	}
}

// LogNotifier writes notifications to a zap logger
type LogNotifier struct {
	log *zap.Logger
}

// NewLogNotifier creates a notifier backed by log
func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, note Notification) error {
	fields := []zap.Field{
		zap.String("id", note.ID),
		zap.String("title", note.Title),
		zap.Duration("duration", note.Duration),
	}
	if note.Level == LevelError {
		n.log.Error(note.Message, fields...)
	} else {
		n.log.Info(note.Message, fields...)
	}
	return nil
}

// Recorder keeps every notification in memory
type Recorder struct {
	mu    sync.Mutex
	notes []Notification
}

func (r *Recorder) Notify(ctx context.Context, n Notification) error {
	r.mu.Lock()
	r.notes = append(r.notes, n)
	r.mu.Unlock()
	return nil
}

// Notifications returns a copy of what was recorded
func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.notes...)
}
