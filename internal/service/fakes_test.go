package service

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"bookmarks-api/internal/auth"
	"bookmarks-api/internal/domain"
	"bookmarks-api/internal/repository"
)

type memUsers struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]domain.User
	err    error
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[int64]domain.User{}}
}

func (m *memUsers) Create(_ context.Context, user *domain.User) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	for _, u := range m.byID {
		if u.Email == user.Email {
			return 0, repository.ErrAlreadyExists
		}
	}
	m.nextID++
	user.ID = m.nextID
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	m.byID[user.ID] = *user
	return user.ID, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.byID {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (m *memUsers) Update(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[user.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, u := range m.byID {
		if id != user.ID && u.Email == user.Email {
			return repository.ErrAlreadyExists
		}
	}
	user.UpdatedAt = time.Now().UTC()
	m.byID[user.ID] = *user
	return nil
}

func (m *memUsers) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type memBookmarks struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]domain.Bookmark
	err    error
}

func newMemBookmarks() *memBookmarks {
	return &memBookmarks{byID: map[int64]domain.Bookmark{}}
}

func (m *memBookmarks) Create(_ context.Context, b *domain.Bookmark) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	m.nextID++
	b.ID = m.nextID
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	m.byID[b.ID] = *b
	return b.ID, nil
}

func (m *memBookmarks) ListByOwner(_ context.Context, ownerID int64) ([]domain.Bookmark, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []domain.Bookmark{}
	for _, b := range m.byID {
		if b.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memBookmarks) GetByOwner(_ context.Context, ownerID, id int64) (*domain.Bookmark, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.byID[id]
	if !ok || b.OwnerID != ownerID {
		return nil, repository.ErrNotFound
	}
	return &b, nil
}

func (m *memBookmarks) Update(_ context.Context, b *domain.Bookmark) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.byID[b.ID]
	if !ok || cur.OwnerID != b.OwnerID {
		return repository.ErrNotFound
	}
	b.UpdatedAt = time.Now().UTC()
	m.byID[b.ID] = *b
	return nil
}

func (m *memBookmarks) Delete(_ context.Context, ownerID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.byID[id]
	if !ok || b.OwnerID != ownerID {
		return repository.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

// plainHasher stores passwords with a marker prefix so tests stay fast.
type plainHasher struct {
	err error
}

func (h plainHasher) Hash(password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + password, nil
}

func (plainHasher) Verify(digest, password string) bool {
	return digest == "hashed:"+password
}

// stubTokens encodes the subject and email directly into the token.
type stubTokens struct{}

func (stubTokens) Issue(userID int64, email string) (string, error) {
	return strconv.FormatInt(userID, 10) + "|" + email, nil
}

func (stubTokens) Verify(token string) (auth.Claims, error) {
	id, email, ok := strings.Cut(token, "|")
	if !ok {
		return auth.Claims{}, auth.ErrInvalidToken
	}
	uid, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return auth.Claims{}, errors.Join(auth.ErrInvalidToken, err)
	}
	return auth.Claims{UserID: uid, Email: email}, nil
}
