package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"cartographer.dev/internal/generation"
	"cartographer.dev/internal/models"
	"cartographer.dev/internal/store"
)

const presetPrefix = "preset/"

// ErrInvalidName is returned for preset names that are empty or contain
// characters outside [A-Za-z0-9_-]
var ErrInvalidName = errors.New("invalid preset name")

var presetName = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// PresetService saves named parameter sets
type PresetService struct {
	store store.Store
	log   *zap.Logger
}

// NewPresetService creates a new PresetService
func NewPresetService(st store.Store, log *zap.Logger) *PresetService {
	if log == nil {
		log = zap.NewNop()
	}
	return &PresetService{store: st, log: log}
}

func presetKey(name string) (string, error) {
	if !presetName.MatchString(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return presetPrefix + name, nil
}

// List returns the saved preset names in sorted order
func (s *PresetService) List(ctx context.Context) (*models.PresetList, error) {
	keys, err := s.store.Keys(ctx, presetPrefix)
	if err != nil {
		return nil, fmt.Errorf("listing presets: %w", err)
	}
	list := &models.PresetList{Presets: make([]string, 0, len(keys))}
	for _, k := range keys {
		list.Presets = append(list.Presets, strings.TrimPrefix(k, presetPrefix))
	}
	return list, nil
}

// Get loads a preset by name
func (s *PresetService) Get(ctx context.Context, name string) (*models.Preset, error) {
	key, err := presetKey(name)
	if err != nil {
		return nil, err
	}
	var p generation.Params
	if err := s.store.Get(ctx, key, &p); err != nil {
		return nil, fmt.Errorf("preset %s: %w", name, err)
	}
	return &models.Preset{Name: name, Params: p}, nil
}

// Save validates and stores a preset, replacing any previous one
func (s *PresetService) Save(ctx context.Context, name string, p generation.Params) (*models.Preset, error) {
	key, err := presetKey(name)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, key, p); err != nil {
		return nil, fmt.Errorf("saving preset %s: %w", name, err)
	}
	s.log.Info("preset saved", zap.String("name", name))
	return &models.Preset{Name: name, Params: p}, nil
}

// Delete removes a preset
func (s *PresetService) Delete(ctx context.Context, name string) error {
	key, err := presetKey(name)
	if err != nil {
		return err
	}
	if err := s.store.Remove(ctx, key); err != nil {
		return fmt.Errorf("preset %s: %w", name, err)
	}
	s.log.Info("preset deleted", zap.String("name", name))
	return nil
}
