package feed

import (
	"context"

	"lexify/models"
)

// FeedCache holds the homepage list of answered questions. Entries are keyed
// by generation: Invalidate advances the generation, so a list computed under
// an older one is never served again.
type FeedCache interface {
	Generation(ctx context.Context) (int64, error)
	GetAnswered(ctx context.Context, gen int64) ([]models.QuestionView, bool, error)
	SetAnswered(ctx context.Context, gen int64, views []models.QuestionView) error
	Invalidate(ctx context.Context) error
}
