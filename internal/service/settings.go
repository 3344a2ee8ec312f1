package service

import (
	"context"

	"github.com/englishk12/backend/internal/domain/question"
	"github.com/englishk12/backend/internal/domain/settings"
)

// SettingsRepository reads and writes the settings record.
type SettingsRepository interface {
	Settings(ctx context.Context) (settings.AppSettings, error)
	SaveSettings(ctx context.Context, st settings.AppSettings) error
}

type Settings struct {
	repo SettingsRepository
}

func NewSettings(repo SettingsRepository) *Settings {
	return &Settings{repo: repo}
}

func (s *Settings) Get(ctx context.Context) (settings.AppSettings, error) {
	return s.repo.Settings(ctx)
}

// Save stores st. Values outside the recommended range are accepted; only a
// non-positive count is refused since no test could be drawn from it.
func (s *Settings) Save(ctx context.Context, st settings.AppSettings) (settings.AppSettings, error) {
	if err := validateSettings(st); err != nil {
		return settings.AppSettings{}, err
	}
	if err := s.repo.SaveSettings(ctx, st); err != nil {
		return settings.AppSettings{}, err
	}
	return st, nil
}

func validateSettings(st settings.AppSettings) error {
	if st.QuestionsPerTest <= 0 {
		return &question.ValidationError{Field: "questionsPerTest", Reason: "must be positive"}
	}
	return nil
}
