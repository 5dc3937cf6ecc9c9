package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"file-registry-api/internal/application/ports"
	"file-registry-api/internal/domain/event"
	"file-registry-api/internal/domain/user"
)

type AccountService struct {
	userRepository user.Repository
	hasher         ports.CredentialHasher
	events         ports.EventPublisher
	mCounter       *prometheus.CounterVec
	now            func() time.Time
}

func NewAccountService(
	userRepository user.Repository,
	hasher ports.CredentialHasher,
	events ports.EventPublisher,
	mCounter *prometheus.CounterVec,
) *AccountService {
	return &AccountService{
		userRepository: userRepository,
		hasher:         hasher,
		events:         events,
		mCounter:       mCounter,
		now:            time.Now,
	}
}

func (as *AccountService) Register(ctx context.Context, username, password string) (*user.User, error) {
	username = user.NormalizeUsername(username)
	if username == "" {
		return nil, user.ErrInvalidUsername
	}
	if password == "" || len(password) > user.MaxPasswordBytes {
		return nil, user.ErrInvalidPassword
	}

	hash, err := as.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := as.userRepository.CreateUser(ctx, user.User{
		Username:        username,
		PasswordHash:    hash,
		LastInteraction: as.now(),
	})
	if err != nil {
		return nil, err
	}

	as.events.Publish(event.New(event.UserRegistered, u.ID, event.UserPayload{Username: u.Username}))
	as.mCounter.WithLabelValues("user_registered_total").Inc()

	return u, nil
}

// Authenticate reports ErrUserNotFound only for unknown usernames, a bad
// password for an existing user is always ErrInvalidCredentials. A successful
// call is the only place lastInteraction moves.
func (as *AccountService) Authenticate(ctx context.Context, username, password string) (*user.User, error) {
	u, err := as.userRepository.FetchUserByUsername(ctx, user.NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			as.mCounter.WithLabelValues("user_login_failed_total").Inc()
		}
		return nil, err
	}

	if !as.hasher.Verify(password, u.PasswordHash) {
		as.mCounter.WithLabelValues("user_login_failed_total").Inc()
		return nil, user.ErrInvalidCredentials
	}

	u, err = as.userRepository.TouchLastInteraction(ctx, u.ID, as.now())
	if err != nil {
		return nil, err
	}

	as.events.Publish(event.New(event.UserAuthenticated, u.ID, event.UserPayload{Username: u.Username}))
	as.mCounter.WithLabelValues("user_login_total").Inc()

	return u, nil
}

func (as *AccountService) FindUser(ctx context.Context, id user.ID) (*user.User, error) {
	return as.userRepository.FetchUserByID(ctx, id)
}
