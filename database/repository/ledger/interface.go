package ledgerRepo

import (
	"context"
	"errors"

	"lexify/models"
)

// ErrQuestionAnswered is returned when advice is attached to a question that already has one.
var ErrQuestionAnswered = errors.New("question already answered")

// QuestionFilter narrows FindQuestions. Zero values do not filter.
type QuestionFilter struct {
	Answered *bool
	AskedBy  string
	IDs      []string
}

// OrphanedAdvice is an advice whose question does not reference it.
// Question is nil when the referenced question does not exist.
type OrphanedAdvice struct {
	Advice   models.Advice    `bson:",inline"`
	Question *models.Question `bson:"question,omitempty"`
}

// LedgerRepository stores questions and the advice that answers them.
type LedgerRepository interface {
	CreateQuestion(ctx context.Context, q *models.Question) error
	GetQuestion(ctx context.Context, id string) (*models.Question, error)
	// FindQuestions returns matching questions, newest first.
	FindQuestions(ctx context.Context, filter QuestionFilter) ([]models.Question, error)
	GetAdviceByIDs(ctx context.Context, ids []string) ([]models.Advice, error)
	GetAdviceByLawyer(ctx context.Context, lawyerID string) ([]models.Advice, error)
	// AttachAdvice inserts advice and links its question in one transaction.
	// Fails with repository.ErrNotFound or ErrQuestionAnswered and writes nothing.
	AttachAdvice(ctx context.Context, advice *models.Advice) error
	// FindOrphanedAdvice lists advice not referenced back by its question, oldest first.
	FindOrphanedAdvice(ctx context.Context) ([]OrphanedAdvice, error)
	// LinkAdvice points an open question at adviceID. Reports false if the question was not open.
	LinkAdvice(ctx context.Context, questionID, adviceID string) (bool, error)
}
