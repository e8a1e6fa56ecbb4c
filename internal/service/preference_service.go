package service

import (
	"context"
	"errors"
	"strings"

	"airquote/internal/domain"
	"airquote/internal/port"
)

// preferenceDefaults are the values reported for keys never written.
var preferenceDefaults = map[string]string{
	domain.PrefSheetURL: "",
	domain.PrefAutoSync: "false",
	domain.PrefPageSize: "20",
}

// PreferenceService manages persisted user settings.
type PreferenceService interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	All(ctx context.Context) (map[string]string, error)
}

type preferenceService struct {
	repo port.PreferenceRepository
}

// NewPreferenceService creates a new PreferenceService implementation.
func NewPreferenceService(repo port.PreferenceRepository) PreferenceService {
	return &preferenceService{repo: repo}
}

func (s *preferenceService) Get(ctx context.Context, key string) (string, error) {
	def, known := preferenceDefaults[key]
	if !known {
		return "", domain.ErrNotFound
	}
	pref, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return def, nil
		}
		return "", err
	}
	return pref.Value, nil
}

func (s *preferenceService) Set(ctx context.Context, key, value string) error {
	if _, known := preferenceDefaults[key]; !known {
		return domain.ErrInvalidInput
	}
	// clearing the sheet URL also disables auto sync; a blank URL with
	// auto sync on would fail on every scheduled run
	if key == domain.PrefSheetURL && strings.TrimSpace(value) == "" {
		if err := s.repo.Set(ctx, domain.PrefAutoSync, "false"); err != nil {
			return err
		}
	}
	return s.repo.Set(ctx, key, value)
}

func (s *preferenceService) All(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string, len(preferenceDefaults))
	for k, v := range preferenceDefaults {
		out[k] = v
	}
	prefs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range prefs {
		if _, known := preferenceDefaults[p.Key]; known {
			out[p.Key] = p.Value
		}
	}
	return out, nil
}
