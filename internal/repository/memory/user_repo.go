// Package memory provides a process-local user store guarded by a single mutex,
// optionally persisted to a JSON file.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"reqres/internal/domain"
)

// UserStore is an in-memory domain.UserRepository. Users are kept ordered by ID.
type UserStore struct {
	mu    sync.RWMutex
	users []*domain.User
	path  string
	now   func() time.Time
}

// NewUserStore returns a store seeded with the reqres demo users.
func NewUserStore() *UserStore {
	return &UserStore{users: domain.SeedUsers(), now: time.Now}
}

// OpenUserStore returns a store persisted at path. An existing file is loaded;
// otherwise the store is seeded and the file written.
func OpenUserStore(path string) (*UserStore, error) {
	s := &UserStore{path: path, now: time.Now}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.users = domain.SeedUsers()
		if err := s.persist(); err != nil {
			return nil, err
		}
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var records []userRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	users := make([]*domain.User, 0, len(records))
	for _, rec := range records {
		users = append(users, rec.toUser())
	}
	slices.SortFunc(users, func(a, b *domain.User) int { return a.ID - b.ID })
	s.users = users
	return s, nil
}

// userRecord is the on-disk form of a user. Unlike the API shape it keeps
// the timestamps.
type userRecord struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Avatar    string    `json:"avatar"`
	Name      *string   `json:"name,omitempty"`
	Job       *string   `json:"job,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

func newUserRecord(u *domain.User) userRecord {
	return userRecord{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Avatar:    u.Avatar,
		Name:      u.Name,
		Job:       u.Job,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (r userRecord) toUser() *domain.User {
	return &domain.User{
		ID:        r.ID,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Avatar:    r.Avatar,
		Name:      r.Name,
		Job:       r.Job,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func (s *UserStore) All(_ context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.User, len(s.users))
	for i, u := range s.users {
		out[i] = u.Clone()
	}
	return out, nil
}

func (s *UserStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users), nil
}

func (s *UserStore) GetByID(_ context.Context, id int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return s.users[i].Clone(), nil
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u.Clone(), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Create assigns the next free ID and timestamps, then appends the user.
func (s *UserStore) Create(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.Email != "" && s.emailTaken(u.Email, 0) {
		return domain.ErrDuplicateEmail
	}
	u.ID = 1
	if n := len(s.users); n > 0 {
		u.ID = s.users[n-1].ID + 1
	}
	now := s.now()
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users = append(s.users, u.Clone())
	return s.persistLocked(func() { s.users = s.users[:len(s.users)-1] })
}

// Update replaces the stored record with the same ID.
func (s *UserStore) Update(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index(u.ID)
	if !ok {
		return domain.ErrUserNotFound
	}
	if u.Email != "" && s.emailTaken(u.Email, u.ID) {
		return domain.ErrDuplicateEmail
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.users[i].CreatedAt
	}
	prev := s.users[i]
	s.users[i] = u.Clone()
	return s.persistLocked(func() { s.users[i] = prev })
}

func (s *UserStore) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index(id)
	if !ok {
		return domain.ErrUserNotFound
	}
	prev := slices.Clone(s.users)
	s.users = slices.Delete(s.users, i, i+1)
	return s.persistLocked(func() { s.users = prev })
}

// Reset restores the seed users.
func (s *UserStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.users
	s.users = domain.SeedUsers()
	return s.persistLocked(func() { s.users = prev })
}

func (s *UserStore) index(id int) (int, bool) {
	return slices.BinarySearchFunc(s.users, id, func(u *domain.User, id int) int { return u.ID - id })
}

func (s *UserStore) emailTaken(email string, exceptID int) bool {
	for _, u := range s.users {
		if u.ID != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

// persistLocked writes the file and runs rollback when that fails, so memory
// and disk never diverge. Callers hold s.mu.
func (s *UserStore) persistLocked(rollback func()) error {
	if err := s.persist(); err != nil {
		rollback()
		return err
	}
	return nil
}

func (s *UserStore) persist() error {
	if s.path == "" {
		return nil
	}
	records := make([]userRecord, 0, len(s.users))
	for _, u := range s.users {
		records = append(records, newUserRecord(u))
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write users: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write users: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}
