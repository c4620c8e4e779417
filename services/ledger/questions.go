package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lexify/database/repository"
	ledgerRepo "lexify/database/repository/ledger"
	"lexify/models"
	"lexify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Ask records a new open question for the client.
func (s *DefaultLedgerService) Ask(ctx context.Context, clientID string, in models.QuestionInput) (*models.Question, error) {
	if clientID == "" {
		return nil, utils.NewValidationError("askedBy", "is required")
	}
	in.Text = strings.TrimSpace(in.Text)
	in.Category = strings.TrimSpace(in.Category)
	in.City = strings.TrimSpace(in.City)
	switch {
	case in.Text == "":
		return nil, utils.NewValidationError("questionText", "is required")
	case in.Category == "":
		return nil, utils.NewValidationError("category", "is required")
	case in.City == "":
		return nil, utils.NewValidationError("city", "is required")
	}

	q := &models.Question{
		ID:        uuid.New().String(),
		Text:      in.Text,
		Category:  in.Category,
		City:      in.City,
		CreatedAt: time.Now(),
		AskedBy:   clientID,
	}
	if err := s.Repo.CreateQuestion(ctx, q); err != nil {
		utils.GetLogger().Error("Ask: failed to save question", zap.String("clientID", clientID), zap.Error(err))
		return nil, err
	}
	return q, nil
}

func (s *DefaultLedgerService) ListOpen(ctx context.Context) ([]models.QuestionView, error) {
	open := false
	return s.list(ctx, ledgerRepo.QuestionFilter{Answered: &open})
}

func (s *DefaultLedgerService) ListClientOpen(ctx context.Context, clientID string) ([]models.QuestionView, error) {
	open := false
	return s.list(ctx, ledgerRepo.QuestionFilter{Answered: &open, AskedBy: clientID})
}

// ListAnswered returns answered questions for the scope. The lawyer scope only
// includes questions whose linked advice was written by that lawyer.
func (s *DefaultLedgerService) ListAnswered(ctx context.Context, scope AnsweredScope) ([]models.QuestionView, error) {
	answered := true
	switch scope.Kind {
	case Homepage:
		return s.homepage(ctx)
	case ForClient:
		return s.list(ctx, ledgerRepo.QuestionFilter{Answered: &answered, AskedBy: scope.AccountID})
	case ForLawyer:
		return s.answeredBy(ctx, scope.AccountID)
	default:
		return nil, fmt.Errorf("unknown answered scope %d", scope.Kind)
	}
}

// homepage serves the cached feed. The generation is read before the store,
// so a list computed while advice was being posted lands under a generation
// that PostAdvice has already retired.
func (s *DefaultLedgerService) homepage(ctx context.Context) ([]models.QuestionView, error) {
	answered := true
	if s.Cache == nil {
		return s.list(ctx, ledgerRepo.QuestionFilter{Answered: &answered})
	}

	gen, err := s.Cache.Generation(ctx)
	if err != nil {
		utils.GetLogger().Warn("ListAnswered: feed generation read failed", zap.Error(err))
		return s.list(ctx, ledgerRepo.QuestionFilter{Answered: &answered})
	}
	views, ok, err := s.Cache.GetAnswered(ctx, gen)
	if err != nil {
		utils.GetLogger().Warn("ListAnswered: feed cache read failed", zap.Error(err))
	} else if ok {
		return views, nil
	}

	views, err = s.list(ctx, ledgerRepo.QuestionFilter{Answered: &answered})
	if err != nil {
		return nil, err
	}
	if err := s.Cache.SetAnswered(ctx, gen, views); err != nil {
		utils.GetLogger().Warn("ListAnswered: feed cache write failed", zap.Error(err))
	}
	return views, nil
}

func (s *DefaultLedgerService) answeredBy(ctx context.Context, lawyerID string) ([]models.QuestionView, error) {
	advice, err := s.Repo.GetAdviceByLawyer(ctx, lawyerID)
	if err != nil {
		return nil, err
	}
	if len(advice) == 0 {
		return []models.QuestionView{}, nil
	}

	own := make(map[string]bool, len(advice))
	questionIDs := make([]string, 0, len(advice))
	for _, a := range advice {
		own[a.ID] = true
		questionIDs = append(questionIDs, a.QuestionID)
	}

	answered := true
	questions, err := s.Repo.FindQuestions(ctx, ledgerRepo.QuestionFilter{Answered: &answered, IDs: questionIDs})
	if err != nil {
		return nil, err
	}
	// A question may hold a different lawyer's advice if this one is an orphan.
	kept := questions[:0]
	for _, q := range questions {
		if own[q.Advice] {
			kept = append(kept, q)
		}
	}
	return s.assemble(ctx, kept)
}

func (s *DefaultLedgerService) GetQuestion(ctx context.Context, id string) (*models.QuestionView, error) {
	q, err := s.Repo.GetQuestion(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	views, err := s.assemble(ctx, []models.Question{*q})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *DefaultLedgerService) list(ctx context.Context, filter ledgerRepo.QuestionFilter) ([]models.QuestionView, error) {
	questions, err := s.Repo.FindQuestions(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, questions)
}
