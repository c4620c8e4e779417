package ledger

import (
	"context"

	"lexify/utils"

	"go.uber.org/zap"
)

// Reconcile repairs advice left without a back reference from its question.
// An orphan is linked only if its question is still open; the oldest orphan
// wins. Everything else is logged and left untouched. Returns the number of
// questions linked.
func (s *DefaultLedgerService) Reconcile(ctx context.Context) (int, error) {
	orphans, err := s.Repo.FindOrphanedAdvice(ctx)
	if err != nil {
		return 0, err
	}
	logger := utils.GetLogger()

	linked := 0
	claimed := map[string]bool{}
	for _, o := range orphans {
		fields := []zap.Field{zap.String("adviceID", o.Advice.ID), zap.String("questionID", o.Advice.QuestionID)}
		switch {
		case o.Question == nil:
			logger.Warn("Reconcile: advice references a missing question", fields...)
		case o.Question.Answered() || claimed[o.Question.ID]:
			logger.Warn("Reconcile: advice superseded on an answered question", fields...)
		default:
			ok, err := s.Repo.LinkAdvice(ctx, o.Question.ID, o.Advice.ID)
			if err != nil {
				return linked, err
			}
			claimed[o.Question.ID] = true
			if ok {
				linked++
				logger.Info("Reconcile: linked orphaned advice", fields...)
			} else {
				logger.Warn("Reconcile: question was answered concurrently", fields...)
			}
		}
	}

	if linked > 0 {
		if err := s.InvalidateFeed(ctx); err != nil {
			logger.Warn("Reconcile: feed invalidation failed", zap.Error(err))
		}
	}
	return linked, nil
}
