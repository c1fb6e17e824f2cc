package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/academy-api/internal/models"
	appErrors "github.com/noah-isme/academy-api/pkg/errors"
	"github.com/noah-isme/academy-api/pkg/signing"
)

type memoryCache struct {
	items map[string][]byte
	ttls  map[string]time.Duration
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := m.items[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.items[key] = raw
	m.ttls[key] = ttl
	return nil
}

func TestCalendarServiceCachesFeed(t *testing.T) {
	visitor := readyVisitor()
	store := newMemoryCache()
	cache := NewCacheService(store, NewMetricsService(), time.Minute, zap.NewNop(), true)
	svc := NewCalendarService(visitor, cache, nil, 30*time.Second, zap.NewNop())

	first, hit, err := svc.TeacherFeed(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Contains(t, first, "SUMMARY:Math A")
	assert.Contains(t, first, "UID:l1@academy-api")

	second, hit, err := svc.TeacherFeed(context.Background())
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, visitor.visits)
	assert.Equal(t, 30*time.Second, store.ttls[calendarCachePrefix+"2026-10-19"])
}

// midnightVisitor reports yesterday from Today while Visit already reads the next day.
type midnightVisitor struct {
	*stubVisitor
	today Window
}

func (m *midnightVisitor) Today() Window { return m.today }

func TestCalendarServiceCachesUnderVisitedDay(t *testing.T) {
	next := readyVisitor()
	visitor := &midnightVisitor{
		stubVisitor: next,
		today:       DayWindow(next.window.Start.Add(-time.Hour)),
	}
	store := newMemoryCache()
	cache := NewCacheService(store, nil, time.Minute, nil, true)
	svc := NewCalendarService(visitor, cache, nil, time.Minute, nil)

	_, hit, err := svc.TeacherFeed(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Contains(t, store.items, calendarCachePrefix+"2026-10-19")
	assert.NotContains(t, store.items, calendarCachePrefix+"2026-10-18")
}

func TestCalendarServiceWithoutCacheVisitsEveryTime(t *testing.T) {
	visitor := readyVisitor()
	svc := NewCalendarService(visitor, nil, nil, time.Minute, nil)

	_, _, err := svc.TeacherFeed(context.Background())
	require.NoError(t, err)
	_, _, err = svc.TeacherFeed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, visitor.visits)
}

func TestCalendarServiceDoesNotCacheFailures(t *testing.T) {
	visitor := &stubVisitor{state: models.Failed(&models.RemoteReadFailure{Collection: "class", Message: "timeout"})}
	store := newMemoryCache()
	cache := NewCacheService(store, nil, time.Minute, nil, true)
	svc := NewCalendarService(visitor, cache, nil, time.Minute, nil)

	_, _, err := svc.TeacherFeed(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrRemoteReadFailure.Code, appErrors.FromError(err).Code)
	assert.Empty(t, store.items)
}

func TestCalendarServiceSubscriptionLinkRoundTrip(t *testing.T) {
	signer := signing.NewSigner("secret", time.Hour)
	svc := NewCalendarService(readyVisitor(), nil, signer, time.Minute, nil)
	claims := &models.JWTClaims{}
	claims.Subject = "teacher-1"

	link, err := svc.SubscriptionLink(claims, "/calendar/teacher.ics")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(link.URL, "/calendar/teacher.ics?token="))

	token := strings.TrimPrefix(link.URL, "/calendar/teacher.ics?token=")
	body, _, err := svc.SubscribedFeed(context.Background(), token)
	require.NoError(t, err)
	assert.Contains(t, body, "SUMMARY:Math A")
}

func TestCalendarServiceSubscribedFeedRejectsBadTokens(t *testing.T) {
	signer := signing.NewSigner("secret", time.Hour)
	svc := NewCalendarService(readyVisitor(), nil, signer, time.Minute, nil)

	_, _, err := svc.SubscribedFeed(context.Background(), "garbage")
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)

	other, _, err := signer.Generate("teacher-1", "calendar:student")
	require.NoError(t, err)
	_, _, err = svc.SubscribedFeed(context.Background(), other)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)

	disabled := NewCalendarService(readyVisitor(), nil, nil, time.Minute, nil)
	_, err = disabled.SubscriptionLink(&models.JWTClaims{}, "/calendar/teacher.ics")
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
