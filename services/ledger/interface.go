package ledger

import (
	"context"

	ledgerRepo "lexify/database/repository/ledger"
	"lexify/models"
	"lexify/services/feed"
	"lexify/services/tasks"
)

// AnsweredKind selects whose answered questions ListAnswered returns.
type AnsweredKind int

const (
	Homepage AnsweredKind = iota
	ForClient
	ForLawyer
)

// AnsweredScope pairs a kind with the account it applies to. AccountID is
// ignored for Homepage.
type AnsweredScope struct {
	Kind      AnsweredKind
	AccountID string
}

func HomepageScope() AnsweredScope { return AnsweredScope{Kind: Homepage} }
func ClientScope(id string) AnsweredScope { return AnsweredScope{Kind: ForClient, AccountID: id} }
func LawyerScope(id string) AnsweredScope { return AnsweredScope{Kind: ForLawyer, AccountID: id} }

type LedgerService interface {
	Ask(ctx context.Context, clientID string, in models.QuestionInput) (*models.Question, error)
	ListOpen(ctx context.Context) ([]models.QuestionView, error)
	ListClientOpen(ctx context.Context, clientID string) ([]models.QuestionView, error)
	ListAnswered(ctx context.Context, scope AnsweredScope) ([]models.QuestionView, error)
	GetQuestion(ctx context.Context, id string) (*models.QuestionView, error)
	PostAdvice(ctx context.Context, questionID, lawyerID, text string) (*models.Advice, error)

	// Maintenance, driven by the background worker.
	InvalidateFeed(ctx context.Context) error
	Reconcile(ctx context.Context) (int, error)
}

// NameLookup resolves account ids to display names.
type NameLookup interface {
	GetNamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

// DefaultLedgerService is the production implementation. Cache and Tasks are optional.
type DefaultLedgerService struct {
	Repo    ledgerRepo.LedgerRepository
	Clients NameLookup
	Lawyers NameLookup
	Cache   feed.FeedCache
	Tasks   tasks.Enqueuer
}
