// Package memory keeps users and files in process memory. It implements
// both record store interfaces and serves local runs (STORE_DRIVER=memory)
// and tests. Nothing survives a restart.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"file-registry-api/internal/domain/user"
	"file-registry-api/internal/domain/user_file"
)

type Store struct {
	mu         sync.RWMutex
	users      map[user.ID]*user.User
	byUsername map[string]user.ID
	files      map[user_file.ID]*user_file.UserFile
}

var (
	_ user.Repository      = (*Store)(nil)
	_ user_file.Repository = (*Store)(nil)
)

func New() *Store {
	return &Store{
		users:      make(map[user.ID]*user.User),
		byUsername: make(map[string]user.ID),
		files:      make(map[user_file.ID]*user_file.UserFile),
	}
}

func (s *Store) CreateUser(_ context.Context, req user.User) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byUsername[req.Username]; ok {
		return nil, user.ErrUsernameTaken
	}

	u := req
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	s.users[u.ID] = &u
	s.byUsername[u.Username] = u.ID

	out := u
	return &out, nil
}

func (s *Store) FetchUserByID(_ context.Context, id user.ID) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}

	out := *u
	return &out, nil
}

func (s *Store) FetchUserByUsername(ctx context.Context, username string) (*user.User, error) {
	s.mu.RLock()
	id, ok := s.byUsername[username]
	s.mu.RUnlock()
	if !ok {
		return nil, user.ErrUserNotFound
	}

	return s.FetchUserByID(ctx, id)
}

func (s *Store) TouchLastInteraction(_ context.Context, id user.ID, at time.Time) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	u.LastInteraction = at

	out := *u
	return &out, nil
}

func (s *Store) CreateUserFileWithinQuota(
	_ context.Context,
	req *user_file.UserFile,
	quota int,
) (*user_file.UserFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[req.UserID]; !ok {
		return nil, user.ErrUserNotFound
	}
	if s.countLocked(req.UserID) >= quota {
		return nil, user_file.ErrQuotaExceeded
	}

	uf := *req
	uf.ID = uuid.New()
	s.files[uf.ID] = &uf

	out := uf
	return &out, nil
}

func (s *Store) FetchUserFile(_ context.Context, userID user.ID, id user_file.ID) (*user_file.UserFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	uf, ok := s.files[id]
	if !ok || uf.UserID != userID {
		return nil, user_file.ErrFileNotFound
	}

	out := *uf
	return &out, nil
}

func (s *Store) FetchUserFiles(_ context.Context, userID user.ID) (user_file.UserFiles, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ufs user_file.UserFiles
	for _, uf := range s.files {
		if uf.UserID == userID {
			out := *uf
			ufs = append(ufs, &out)
		}
	}
	slices.SortFunc(ufs, func(a, b *user_file.UserFile) int {
		if c := a.UploadedAt.Compare(b.UploadedAt); c != 0 {
			return c
		}
		return slices.Compare(a.ID[:], b.ID[:])
	})

	return ufs, nil
}

func (s *Store) CountUserFiles(_ context.Context, userID user.ID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.countLocked(userID), nil
}

func (s *Store) DeleteUserFile(_ context.Context, userID user.ID, id user_file.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	uf, ok := s.files[id]
	if !ok || uf.UserID != userID {
		return user_file.ErrFileNotFound
	}
	delete(s.files, id)

	return nil
}

func (s *Store) countLocked(userID user.ID) int {
	n := 0
	for _, uf := range s.files {
		if uf.UserID == userID {
			n++
		}
	}
	return n
}
