package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"file-registry-api/internal/domain"
	"file-registry-api/internal/domain/event"
	"file-registry-api/internal/domain/user"
	"file-registry-api/internal/domain/user_file"
	"file-registry-api/internal/infrastructure/db/memory"
	"file-registry-api/internal/infrastructure/hasher"
)

var errDB = fmt.Errorf("%w: connection refused", domain.ErrStoreUnavailable)

type recordingPublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *recordingPublisher) Publish(e event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) actions() []event.Action {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]event.Action, len(p.events))
	for i, e := range p.events {
		out[i] = e.Action
	}
	return out
}

func newCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_counters"}, []string{"result"})
}

type fixture struct {
	store    *memory.Store
	events   *recordingPublisher
	accounts *AccountService
	files    *UserFileService
	clock    time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		store:  memory.New(),
		events: &recordingPublisher{},
		clock:  time.UnixMilli(1_700_000_000_000),
	}
	now := func() time.Time { return f.clock }

	f.accounts = NewAccountService(f.store, hasher.New(bcrypt.MinCost), f.events, newCounter())
	f.accounts.now = now
	f.files = NewUserFileService(f.store, f.events, newCounter())
	f.files.now = now

	return f
}

// failingUserRepo and failingFileRepo stand in for a store that is down.
type failingUserRepo struct{}

func (failingUserRepo) CreateUser(context.Context, user.User) (*user.User, error) { return nil, errDB }
func (failingUserRepo) FetchUserByID(context.Context, user.ID) (*user.User, error) {
	return nil, errDB
}
func (failingUserRepo) FetchUserByUsername(context.Context, string) (*user.User, error) {
	return nil, errDB
}
func (failingUserRepo) TouchLastInteraction(context.Context, user.ID, time.Time) (*user.User, error) {
	return nil, errDB
}

type failingFileRepo struct{}

func (failingFileRepo) CreateUserFileWithinQuota(context.Context, *user_file.UserFile, int) (*user_file.UserFile, error) {
	return nil, errDB
}
func (failingFileRepo) FetchUserFile(context.Context, user.ID, user_file.ID) (*user_file.UserFile, error) {
	return nil, errDB
}
func (failingFileRepo) FetchUserFiles(context.Context, user.ID) (user_file.UserFiles, error) {
	return nil, errDB
}
func (failingFileRepo) CountUserFiles(context.Context, user.ID) (int, error) { return 0, errDB }
func (failingFileRepo) DeleteUserFile(context.Context, user.ID, user_file.ID) error {
	return errDB
}
