package ledger

import (
	"context"
	"errors"
	"strings"
	"time"

	"lexify/database/repository"
	ledgerRepo "lexify/database/repository/ledger"
	"lexify/models"
	"lexify/services/tasks"
	"lexify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PostAdvice answers an open question. The advice insert and the question
// update commit together; an answered question is never overwritten.
func (s *DefaultLedgerService) PostAdvice(ctx context.Context, questionID, lawyerID, text string) (*models.Advice, error) {
	text = strings.TrimSpace(text)
	switch {
	case questionID == "":
		return nil, utils.NewValidationError("id", "is required")
	case lawyerID == "":
		return nil, utils.NewValidationError("answeredBy", "is required")
	case text == "":
		return nil, utils.NewValidationError("adviceText", "is required")
	}

	advice := &models.Advice{
		ID:         uuid.New().String(),
		Text:       text,
		CreatedAt:  time.Now(),
		AnsweredBy: lawyerID,
		QuestionID: questionID,
	}
	if err := s.Repo.AttachAdvice(ctx, advice); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrQuestionNotFound
		case errors.Is(err, ledgerRepo.ErrQuestionAnswered):
			return nil, ErrAlreadyAnswered
		}
		utils.GetLogger().Error("PostAdvice: failed to attach advice",
			zap.String("questionID", questionID), zap.String("lawyerID", lawyerID), zap.Error(err))
		return nil, err
	}

	s.notifyAdvicePosted(ctx, advice)
	return advice, nil
}

// notifyAdvicePosted retires the cached feed before PostAdvice returns. The
// advice:posted task repeats the invalidation from the worker in case the
// inline one failed.
func (s *DefaultLedgerService) notifyAdvicePosted(ctx context.Context, advice *models.Advice) {
	if err := s.InvalidateFeed(ctx); err != nil {
		utils.GetLogger().Warn("PostAdvice: feed invalidation failed, leaving it to the worker",
			zap.String("questionID", advice.QuestionID), zap.Error(err))
	}
	if s.Tasks == nil {
		return
	}
	task, opts, err := tasks.NewAdvicePostedTask(tasks.AdvicePostedPayload{
		AdviceID:   advice.ID,
		QuestionID: advice.QuestionID,
		LawyerID:   advice.AnsweredBy,
	})
	if err == nil {
		_, err = s.Tasks.EnqueueContext(ctx, task, opts...)
	}
	if err != nil {
		utils.GetLogger().Warn("PostAdvice: failed to enqueue advice:posted", zap.Error(err))
	}
}

func (s *DefaultLedgerService) InvalidateFeed(ctx context.Context) error {
	if s.Cache == nil {
		return nil
	}
	return s.Cache.Invalidate(ctx)
}
