package ledger

import (
	"context"
	"fmt"

	"lexify/models"
)

// assemble resolves asker names, advice and answerer names for each question.
// Dangling references render with empty names rather than failing the list.
func (s *DefaultLedgerService) assemble(ctx context.Context, questions []models.Question) ([]models.QuestionView, error) {
	views := make([]models.QuestionView, 0, len(questions))
	if len(questions) == 0 {
		return views, nil
	}

	askers := make([]string, 0, len(questions))
	adviceIDs := make([]string, 0, len(questions))
	for _, q := range questions {
		askers = append(askers, q.AskedBy)
		if q.Answered() {
			adviceIDs = append(adviceIDs, q.Advice)
		}
	}

	askerNames, err := s.Clients.GetNamesByIDs(ctx, unique(askers))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve askers: %w", err)
	}

	adviceByID := map[string]models.Advice{}
	answererNames := map[string]string{}
	if len(adviceIDs) > 0 {
		advice, err := s.Repo.GetAdviceByIDs(ctx, adviceIDs)
		if err != nil {
			return nil, err
		}
		lawyers := make([]string, 0, len(advice))
		for _, a := range advice {
			adviceByID[a.ID] = a
			lawyers = append(lawyers, a.AnsweredBy)
		}
		answererNames, err = s.Lawyers.GetNamesByIDs(ctx, unique(lawyers))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve answerers: %w", err)
		}
	}

	for _, q := range questions {
		view := models.QuestionView{Question: q, AskerName: askerNames[q.AskedBy]}
		if a, ok := adviceByID[q.Advice]; ok {
			a := a
			view.Advice = &a
			view.AnswererName = answererNames[a.AnsweredBy]
		}
		views = append(views, view)
	}
	return views, nil
}

func unique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
