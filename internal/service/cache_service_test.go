package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type failingCache struct{}

func (failingCache) Get(context.Context, string, interface{}) error {
	return errors.New("connection refused")
}

func (failingCache) Set(context.Context, string, interface{}, time.Duration) error {
	return errors.New("connection refused")
}

func TestCacheServiceDisabled(t *testing.T) {
	store := newMemoryCache()
	svc := NewCacheService(store, nil, time.Minute, nil, false)

	svc.Set(context.Background(), "k", "v", 0)
	var out string
	assert.False(t, svc.Get(context.Background(), "k", &out))
	assert.Empty(t, store.items)

	var nilSvc *CacheService
	assert.False(t, nilSvc.Enabled())
}

func TestCacheServiceDefaultTTL(t *testing.T) {
	store := newMemoryCache()
	svc := NewCacheService(store, NewMetricsService(), 2*time.Minute, nil, true)

	svc.Set(context.Background(), "k", "v", 0)
	assert.Equal(t, 2*time.Minute, store.ttls["k"])

	var out string
	assert.True(t, svc.Get(context.Background(), "k", &out))
	assert.Equal(t, "v", out)
}

func TestCacheServiceBackendErrorsAreMisses(t *testing.T) {
	svc := NewCacheService(failingCache{}, NewMetricsService(), time.Minute, nil, true)

	svc.Set(context.Background(), "k", "v", 0)
	var out string
	assert.False(t, svc.Get(context.Background(), "k", &out))
}
