package account

import (
	"context"
	"sync"

	"lexify/database/repository"
	"lexify/models"
)

// memAccounts enforces the same unique constraints as the Mongo indexes.
type memAccounts[T any] struct {
	mu      sync.Mutex
	byID    map[string]*T
	account func(*T) *models.Account
	creates int
}

func newMemAccounts[T any](account func(*T) *models.Account) *memAccounts[T] {
	return &memAccounts[T]{byID: map[string]*T{}, account: account}
}

func (m *memAccounts[T]) create(v *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a := m.account(v)
	for _, existing := range m.byID {
		e := m.account(existing)
		if e.Username == a.Username || (a.GoogleID != "" && e.GoogleID == a.GoogleID) {
			return repository.ErrDuplicateKey
		}
	}
	cp := *v
	m.byID[a.ID] = &cp
	m.creates++
	return nil
}

func (m *memAccounts[T]) find(match func(*models.Account) bool) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.byID {
		if match(m.account(v)) {
			cp := *v
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memAccounts[T]) names(ids []string) map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := map[string]string{}
	for _, id := range ids {
		if v, ok := m.byID[id]; ok {
			names[id] = m.account(v).Name
		}
	}
	return names
}

type fakeClientRepo struct{ *memAccounts[models.Client] }

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{newMemAccounts(func(c *models.Client) *models.Account { return &c.Account })}
}

func (r *fakeClientRepo) Create(_ context.Context, c *models.Client) error { return r.create(c) }
func (r *fakeClientRepo) GetByID(_ context.Context, id string) (*models.Client, error) {
	return r.find(func(a *models.Account) bool { return a.ID == id })
}
func (r *fakeClientRepo) GetByUsername(_ context.Context, username string) (*models.Client, error) {
	return r.find(func(a *models.Account) bool { return a.Username == username })
}
func (r *fakeClientRepo) GetByGoogleID(_ context.Context, googleID string) (*models.Client, error) {
	return r.find(func(a *models.Account) bool { return a.GoogleID == googleID })
}
func (r *fakeClientRepo) GetNamesByIDs(_ context.Context, ids []string) (map[string]string, error) {
	return r.names(ids), nil
}

type fakeLawyerRepo struct{ *memAccounts[models.Lawyer] }

func newFakeLawyerRepo() *fakeLawyerRepo {
	return &fakeLawyerRepo{newMemAccounts(func(l *models.Lawyer) *models.Account { return &l.Account })}
}

func (r *fakeLawyerRepo) Create(_ context.Context, l *models.Lawyer) error { return r.create(l) }
func (r *fakeLawyerRepo) GetByID(_ context.Context, id string) (*models.Lawyer, error) {
	return r.find(func(a *models.Account) bool { return a.ID == id })
}
func (r *fakeLawyerRepo) GetByUsername(_ context.Context, username string) (*models.Lawyer, error) {
	return r.find(func(a *models.Account) bool { return a.Username == username })
}
func (r *fakeLawyerRepo) GetByGoogleID(_ context.Context, googleID string) (*models.Lawyer, error) {
	return r.find(func(a *models.Account) bool { return a.GoogleID == googleID })
}
func (r *fakeLawyerRepo) GetNamesByIDs(_ context.Context, ids []string) (map[string]string, error) {
	return r.names(ids), nil
}
func (r *fakeLawyerRepo) UpdateProfile(_ context.Context, id string, p models.LawyerProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	l.City = p.City
	l.RegistrationID = p.RegistrationID
	l.Experience = p.Experience
	if p.DateOfBirth != nil {
		l.DateOfBirth = p.DateOfBirth
	}
	return nil
}

func newTestService() (*DefaultAccountService, *fakeClientRepo, *fakeLawyerRepo) {
	clients := newFakeClientRepo()
	lawyers := newFakeLawyerRepo()
	return &DefaultAccountService{Clients: clients, Lawyers: lawyers}, clients, lawyers
}
