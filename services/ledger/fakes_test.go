package ledger

import (
	"context"
	"errors"
	"sort"
	"sync"

	"lexify/database/repository"
	ledgerRepo "lexify/database/repository/ledger"
	"lexify/models"

	"github.com/hibiken/asynq"
)

type memLedger struct {
	mu        sync.Mutex
	questions map[string]models.Question
	advice    map[string]models.Advice
}

func newMemLedger() *memLedger {
	return &memLedger{questions: map[string]models.Question{}, advice: map[string]models.Advice{}}
}

func (m *memLedger) CreateQuestion(_ context.Context, q *models.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.questions[q.ID] = *q
	return nil
}

func (m *memLedger) GetQuestion(_ context.Context, id string) (*models.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.questions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &q, nil
}

func (m *memLedger) FindQuestions(_ context.Context, f ledgerRepo.QuestionFilter) ([]models.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids map[string]bool
	if f.IDs != nil {
		ids = map[string]bool{}
		for _, id := range f.IDs {
			ids[id] = true
		}
	}
	out := []models.Question{}
	for _, q := range m.questions {
		if f.Answered != nil && q.Answered() != *f.Answered {
			continue
		}
		if f.AskedBy != "" && q.AskedBy != f.AskedBy {
			continue
		}
		if ids != nil && !ids[q.ID] {
			continue
		}
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memLedger) GetAdviceByIDs(_ context.Context, ids []string) ([]models.Advice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Advice{}
	for _, id := range ids {
		if a, ok := m.advice[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memLedger) GetAdviceByLawyer(_ context.Context, lawyerID string) ([]models.Advice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Advice{}
	for _, a := range m.advice {
		if a.AnsweredBy == lawyerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memLedger) AttachAdvice(_ context.Context, a *models.Advice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.questions[a.QuestionID]
	if !ok {
		return repository.ErrNotFound
	}
	if q.Answered() {
		return ledgerRepo.ErrQuestionAnswered
	}
	q.Advice = a.ID
	m.questions[q.ID] = q
	m.advice[a.ID] = *a
	return nil
}

func (m *memLedger) FindOrphanedAdvice(_ context.Context) ([]ledgerRepo.OrphanedAdvice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []ledgerRepo.OrphanedAdvice{}
	for _, a := range m.advice {
		o := ledgerRepo.OrphanedAdvice{Advice: a}
		if q, ok := m.questions[a.QuestionID]; ok {
			if q.Advice == a.ID {
				continue
			}
			o.Question = &q
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Advice.CreatedAt.Before(out[j].Advice.CreatedAt) })
	return out, nil
}

func (m *memLedger) LinkAdvice(_ context.Context, questionID, adviceID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	q, ok := m.questions[questionID]
	if !ok || q.Answered() {
		return false, nil
	}
	q.Advice = adviceID
	m.questions[questionID] = q
	return true, nil
}

// seedAdvice writes advice without linking it, as the legacy two-step write could.
func (m *memLedger) seedAdvice(a models.Advice) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.advice[a.ID] = a
}

type names map[string]string

func (n names) GetNamesByIDs(_ context.Context, ids []string) (map[string]string, error) {
	out := map[string]string{}
	for _, id := range ids {
		if v, ok := n[id]; ok {
			out[id] = v
		}
	}
	return out, nil
}

type memCache struct {
	mu          sync.Mutex
	gen         int64
	entries     map[int64][]models.QuestionView
	invalidated int
}

func newMemCache() *memCache {
	return &memCache{entries: map[int64][]models.QuestionView{}}
}

func (c *memCache) Generation(context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen, nil
}

func (c *memCache) GetAnswered(_ context.Context, gen int64) ([]models.QuestionView, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[gen]
	return v, ok, nil
}

func (c *memCache) SetAnswered(_ context.Context, gen int64, v []models.QuestionView) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[gen] = v
	return nil
}

func (c *memCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.invalidated++
	return nil
}

// cached reports whether the current generation holds a feed.
func (c *memCache) cached() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[c.gen]
	return ok
}

type recordingQueue struct {
	fail  bool
	tasks []*asynq.Task
}

func (q *recordingQueue) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if q.fail {
		return nil, errors.New("queue unavailable")
	}
	q.tasks = append(q.tasks, task)
	return &asynq.TaskInfo{ID: "t1", Type: task.Type()}, nil
}

func newTestLedger() (*DefaultLedgerService, *memLedger) {
	repo := newMemLedger()
	svc := &DefaultLedgerService{
		Repo:    repo,
		Clients: names{"c1": "Asha", "c2": "Ravi"},
		Lawyers: names{"l1": "Arjun", "l2": "Meera"},
	}
	return svc, repo
}
