package auth

import (
	"context"
	"io"
	"testing"

	"github.com/Tyyuu55/Crave-Now/internal/domain"
	"github.com/Tyyuu55/Crave-Now/internal/kvstore"
	"github.com/Tyyuu55/Crave-Now/internal/persist"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestOpen_NoUser(t *testing.T) {
	store := Open(context.Background(), kvstore.NewMemoryStore(), quietLogger())

	_, ok := store.User()
	assert.False(t, ok)
	assert.Nil(t, store.UserID())
}

func TestLoginPersistsAcrossRestart(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	ctx := context.Background()

	store := Open(ctx, kv, quietLogger())
	require.NoError(t, store.Login(ctx, domain.User{ID: "4", Name: "Asha", Email: "asha@example.com"}))

	reopened := Open(ctx, kv, quietLogger())
	user, ok := reopened.User()
	require.True(t, ok)
	assert.Equal(t, "Asha", user.Name)
	require.NotNil(t, reopened.UserID())
	assert.Equal(t, domain.ID("4"), *reopened.UserID())
}

func TestLogout(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	ctx := context.Background()
	store := Open(ctx, kv, quietLogger())
	require.NoError(t, store.Login(ctx, domain.User{ID: "4"}))

	require.NoError(t, store.Logout(ctx))

	raw, err := kv.Get(ctx, persist.AuthKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":{"user":null},"version":0}`, raw)
	_, ok := Open(ctx, kv, quietLogger()).User()
	assert.False(t, ok)
}

func TestOpen_LegacySnapshotWithNumericID(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, persist.AuthKey,
		`{"state":{"user":{"id":9,"name":"Ravi","email":"ravi@example.com","password":"secret1"}},"version":0}`))

	user, ok := Open(ctx, kv, quietLogger()).User()
	require.True(t, ok)
	assert.Equal(t, domain.ID("9"), user.ID)
	assert.Equal(t, "ravi@example.com", user.Email)
}
