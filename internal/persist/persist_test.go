package persist

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/Tyyuu55/Crave-Now/internal/kvstore"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counterState struct {
	Count int `json:"count"`
}

type failingStore struct {
	err error
}

func (f failingStore) Get(context.Context, string) (string, error) { return "", f.err }
func (f failingStore) Set(context.Context, string, string) error { return f.err }

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newCounter(kv kvstore.Store) *Value[counterState] {
	return New(kv, "counter", 0, func() counterState { return counterState{} }, quietLogger())
}

func TestLoad_Absent(t *testing.T) {
	v := newCounter(kvstore.NewMemoryStore())
	assert.Equal(t, counterState{}, v.Load(context.Background()))
}

func TestSaveThenLoad(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, newCounter(kv).Save(ctx, counterState{Count: 3}))

	raw, err := kv.Get(ctx, "counter")
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":{"count":3},"version":0}`, raw)

	assert.Equal(t, counterState{Count: 3}, newCounter(kv).Load(ctx))
}

func TestLoad_Malformed(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "counter", "{not json"))

	assert.Equal(t, counterState{}, newCounter(kv).Load(ctx))
}

func TestLoad_VersionMismatch(t *testing.T) {
	kv := kvstore.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "counter", `{"state":{"count":9},"version":4}`))

	assert.Equal(t, counterState{}, newCounter(kv).Load(ctx))
}

func TestLoad_BackendError(t *testing.T) {
	v := newCounter(failingStore{err: errors.New("disk gone")})
	assert.Equal(t, counterState{}, v.Load(context.Background()))
}

func TestSave_BackendError(t *testing.T) {
	v := newCounter(failingStore{err: errors.New("disk gone")})

	err := v.Save(context.Background(), counterState{Count: 1})
	require.Error(t, err)
	assert.ErrorContains(t, err, "save counter failed")
	assert.ErrorContains(t, err, "disk gone")
}

// deadlineStore fails like a network backend once its context is done.
type deadlineStore struct {
	*kvstore.MemoryStore
}

func (d deadlineStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("write without deadline")
	}
	return d.MemoryStore.Set(ctx, key, value)
}

func TestSave_IgnoresCallerCancellation(t *testing.T) {
	kv := deadlineStore{kvstore.NewMemoryStore()}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, newCounter(kv).Save(ctx, counterState{Count: 2}))
	assert.Equal(t, counterState{Count: 2}, newCounter(kv).Load(context.Background()))
}
