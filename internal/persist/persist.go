// Package persist keeps a piece of client state in a kvstore.Store using the
// same {"state": ..., "version": N} envelope the web storefront wrote to
// browser storage, so existing snapshots load unchanged.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Tyyuu55/Crave-Now/internal/kvstore"
	"github.com/sirupsen/logrus"
)

const (
	CartKey = "foody-cart"
	AuthKey = "foody-auth"
)

// writeTimeout bounds a save once it is detached from the caller.
const writeTimeout = 5 * time.Second

type envelope[T any] struct {
	State   T   `json:"state"`
	Version int `json:"version"`
}

// Value is a typed handle on one persisted key.
type Value[T any] struct {
	kv       kvstore.Store
	key      string
	version  int
	fallback func() T
	log      *logrus.Logger
}

func New[T any](kv kvstore.Store, key string, version int, fallback func() T, log *logrus.Logger) *Value[T] {
	return &Value[T]{
		kv:       kv,
		key:      key,
		version:  version,
		fallback: fallback,
		log:      log,
	}
}

// Load returns the persisted state, or the fallback when nothing usable is stored.
func (v *Value[T]) Load(ctx context.Context) T {
	raw, err := v.kv.Get(ctx, v.key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return v.fallback()
	}
	if err != nil {
		v.log.WithError(err).WithField("key", v.key).Warn("persisted state unreadable, starting empty")
		return v.fallback()
	}

	var env envelope[T]
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		v.log.WithError(err).WithField("key", v.key).Warn("persisted state malformed, starting empty")
		return v.fallback()
	}
	if env.Version != v.version {
		v.log.WithFields(logrus.Fields{
			"key":      v.key,
			"version":  env.Version,
			"expected": v.version,
		}).Warn("persisted state has unknown version, starting empty")
		return v.fallback()
	}

	return env.State
}

// Save writes state through. Cancelling ctx does not abort the write, so the
// stored copy keeps up with a change the caller already applied in memory.
func (v *Value[T]) Save(ctx context.Context, state T) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	data, err := json.Marshal(envelope[T]{State: state, Version: v.version})
	if err != nil {
		return fmt.Errorf("marshal %s failed: %w", v.key, err)
	}
	if err := v.kv.Set(ctx, v.key, string(data)); err != nil {
		return fmt.Errorf("save %s failed: %w", v.key, err)
	}
	return nil
}
