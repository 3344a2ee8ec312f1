package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/englishk12/backend/internal/author"
	"github.com/englishk12/backend/internal/domain/question"
)

// Authoring asks the generator for a draft. Nothing is saved: the teacher
// reviews the draft and submits it through the question bank.
type Authoring struct {
	gen    author.Generator
	logger *slog.Logger
}

func NewAuthoring(gen author.Generator, logger *slog.Logger) *Authoring {
	return &Authoring{gen: gen, logger: logger}
}

func (a *Authoring) Draft(ctx context.Context, req author.Request) (question.Draft, error) {
	start := time.Now()
	d, err := a.gen.GenerateDraft(ctx, req)
	if err != nil {
		a.logger.Warn("draft generation failed",
			"topic", req.Topic,
			"grade", req.Grade,
			"type", req.Type,
			"duration", time.Since(start),
			"error", err,
		)
		return question.Draft{}, err
	}
	a.logger.Info("draft generated",
		"topic", req.Topic,
		"grade", req.Grade,
		"type", req.Type,
		"duration", time.Since(start),
	)
	return d, nil
}
