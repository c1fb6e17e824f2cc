package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/academy-api/internal/dto"
	"github.com/noah-isme/academy-api/internal/models"
	"github.com/noah-isme/academy-api/pkg/calendar"
	appErrors "github.com/noah-isme/academy-api/pkg/errors"
	"github.com/noah-isme/academy-api/pkg/signing"
)

const (
	calendarCachePrefix = "calendar:teacher:"
	teacherFeedResource = "calendar:teacher"
)

type linkSigner interface {
	Generate(subject, resource string) (string, time.Time, error)
	Parse(token string) (signing.Claims, error)
}

// CalendarService publishes today's lessons as an iCalendar feed.
// Rendered feeds are cached per day; failed visits are never cached.
type CalendarService struct {
	home   teacherHomeVisitor
	cache  *CacheService
	signer linkSigner
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

// NewCalendarService constructs the service. A nil cache disables caching and
// a nil signer disables subscription links.
func NewCalendarService(home teacherHomeVisitor, cache *CacheService, signer linkSigner, ttl time.Duration, logger *zap.Logger) *CalendarService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalendarService{home: home, cache: cache, signer: signer, ttl: ttl, logger: logger, now: time.Now}
}

// SubscriptionLink issues a signed feed URL for the signed-in user.
func (s *CalendarService) SubscriptionLink(claims *models.JWTClaims, feedPath string) (*dto.CalendarLink, error) {
	if s.signer == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "calendar subscriptions are disabled")
	}
	if claims.UserID() == "" {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "token has no subject")
	}
	token, expiresAt, err := s.signer.Generate(claims.UserID(), teacherFeedResource)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign calendar link")
	}
	return &dto.CalendarLink{URL: feedPath + "?token=" + token, ExpiresAt: expiresAt}, nil
}

// SubscribedFeed serves TeacherFeed to the holder of a subscription token.
func (s *CalendarService) SubscribedFeed(ctx context.Context, token string) (string, bool, error) {
	if s.signer == nil {
		return "", false, appErrors.Clone(appErrors.ErrNotFound, "calendar subscriptions are disabled")
	}
	claims, err := s.signer.Parse(token)
	if err != nil {
		if errors.Is(err, signing.ErrExpired) {
			return "", false, appErrors.Clone(appErrors.ErrUnauthorized, "calendar link expired")
		}
		return "", false, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid calendar link")
	}
	if claims.Resource != teacherFeedResource {
		return "", false, appErrors.Clone(appErrors.ErrForbidden, "calendar link is for another feed")
	}
	s.logger.Debug("calendar subscription served", zap.String("user_id", claims.Subject))
	return s.TeacherFeed(ctx)
}

// TeacherFeed returns today's feed body and whether it was served from cache.
func (s *CalendarService) TeacherFeed(ctx context.Context) (string, bool, error) {
	var cached string
	if s.cache.Get(ctx, feedCacheKey(s.home.Today()), &cached) {
		return cached, true, nil
	}

	// the visit may land on the next day; cache under the window it actually read
	state, window := s.home.Visit(ctx)
	if state.Status != models.ScreenReady {
		return "", false, RemoteReadError(state.Failure)
	}

	loc := s.home.Location()
	feed := calendar.Feed{
		Name:     "Lessons " + window.Start.Format("2006-01-02"),
		Timezone: loc.String(),
		Stamp:    s.now(),
		Events:   make([]calendar.Event, 0, len(state.Lessons)),
	}
	for _, lesson := range state.Lessons {
		feed.Events = append(feed.Events, calendar.Event{
			UID:         lesson.ID + "@academy-api",
			Summary:     lesson.ClassName,
			Description: "class " + lesson.ClassID,
			Start:       lesson.StartsAt,
			End:         lesson.EndsAt,
		})
	}

	body, err := calendar.Render(feed)
	if err != nil {
		s.logger.Error("render calendar feed", zap.Error(err))
		return "", false, err
	}

	s.cache.Set(ctx, feedCacheKey(window), body, s.ttl)
	return body, false, nil
}

func feedCacheKey(window Window) string {
	return calendarCachePrefix + window.Start.Format("2006-01-02")
}
