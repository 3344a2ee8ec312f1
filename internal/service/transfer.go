package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/englishk12/backend/internal/domain/question"
	"github.com/englishk12/backend/internal/domain/settings"
)

const exportVersion = "1.0"

// TransferRepository is what export and import touch.
type TransferRepository interface {
	QuestionRepository
	SettingsRepository
}

// Bundle is the exported question bank and settings.
type Bundle struct {
	Version    string                `json:"version"`
	ExportedAt string                `json:"exportedAt"`
	Questions  []question.Question   `json:"questions"`
	Settings   *settings.AppSettings `json:"settings,omitempty"`
}

// ImportResult counts what an import changed.
type ImportResult struct {
	QuestionsCreated int  `json:"questionsCreated"`
	QuestionsUpdated int  `json:"questionsUpdated"`
	SettingsApplied  bool `json:"settingsApplied"`
}

type Transfer struct {
	repo   TransferRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewTransfer(repo TransferRepository, logger *slog.Logger) *Transfer {
	return &Transfer{repo: repo, logger: logger, now: time.Now}
}

func (t *Transfer) Export(ctx context.Context) (Bundle, error) {
	qs, err := t.repo.Questions(ctx)
	if err != nil {
		return Bundle{}, err
	}
	st, err := t.repo.Settings(ctx)
	if err != nil {
		return Bundle{}, err
	}
	return Bundle{
		Version:    exportVersion,
		ExportedAt: t.now().UTC().Format(time.RFC3339),
		Questions:  qs,
		Settings:   &st,
	}, nil
}

// Import merges b into the bank. A question whose id already exists replaces
// it; others are appended, with a fresh id when they have none. The bundle is
// validated up front and nothing is written if any entry is invalid.
func (t *Transfer) Import(ctx context.Context, b Bundle) (ImportResult, error) {
	incoming := make([]question.Question, 0, len(b.Questions))
	for i, q := range b.Questions {
		var (
			built question.Question
			err   error
		)
		if q.ID == "" {
			built, err = question.New(q.Draft())
		} else {
			built, err = question.Replace(q.ID, q.Draft())
		}
		if err != nil {
			return ImportResult{}, fmt.Errorf("question %d: %w", i, err)
		}
		incoming = append(incoming, built)
	}
	if b.Settings != nil {
		if err := validateSettings(*b.Settings); err != nil {
			return ImportResult{}, err
		}
	}

	var res ImportResult
	err := t.repo.UpdateQuestions(ctx, func(qs []question.Question) ([]question.Question, error) {
		for _, q := range incoming {
			i := slices.IndexFunc(qs, func(existing question.Question) bool { return existing.ID == q.ID })
			if i >= 0 {
				qs[i] = q
				res.QuestionsUpdated++
				continue
			}
			qs = append(qs, q)
			res.QuestionsCreated++
		}
		return qs, nil
	})
	if err != nil {
		return ImportResult{}, err
	}

	if b.Settings != nil {
		if err := t.repo.SaveSettings(ctx, *b.Settings); err != nil {
			return res, err
		}
		res.SettingsApplied = true
	}

	t.logger.Info("import finished",
		"questions_created", res.QuestionsCreated,
		"questions_updated", res.QuestionsUpdated,
		"settings_applied", res.SettingsApplied,
	)
	return res, nil
}
