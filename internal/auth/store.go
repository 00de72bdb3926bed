package auth

import (
	"context"
	"sync"

	"github.com/Tyyuu55/Crave-Now/internal/domain"
	"github.com/Tyyuu55/Crave-Now/internal/kvstore"
	"github.com/Tyyuu55/Crave-Now/internal/persist"
	"github.com/sirupsen/logrus"
)

type state struct {
	User *domain.User `json:"user"`
}

// Store holds the signed-in user, persisted under the auth key.
type Store struct {
	mu      sync.RWMutex
	user    *domain.User
	storage *persist.Value[state]
	log     *logrus.Logger
}

func Open(ctx context.Context, kv kvstore.Store, log *logrus.Logger) *Store {
	storage := persist.New(kv, persist.AuthKey, 0, func() state { return state{} }, log)
	restored := storage.Load(ctx)

	return &Store{
		user:    restored.User,
		storage: storage,
		log:     log,
	}
}

func (s *Store) Login(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	s.log.WithField("user_id", user.ID).Info("user signed in")
	return s.storage.Save(ctx, state{User: s.user})
}

func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	return s.storage.Save(ctx, state{})
}

func (s *Store) User() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return domain.User{}, false
	}
	return *s.user, true
}

// UserID is nil while nobody is signed in.
func (s *Store) UserID() *domain.ID {
	user, ok := s.User()
	if !ok {
		return nil
	}
	id := user.ID
	return &id
}
