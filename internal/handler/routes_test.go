package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/academy-api/internal/models"
	"github.com/noah-isme/academy-api/internal/service"
	appErrors "github.com/noah-isme/academy-api/pkg/errors"
	"github.com/noah-isme/academy-api/pkg/signing"
)

type tokenTable map[string]models.UserRole

func (t tokenTable) ValidateToken(token string) (*models.JWTClaims, error) {
	role, ok := t[token]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
	}
	claims := &models.JWTClaims{Role: role}
	claims.Subject = token + "-id"
	return claims, nil
}

type staticClasses struct{}

func (staticClasses) List(context.Context) ([]models.Class, error) {
	return []models.Class{{ID: "c1", Name: "Math A"}}, nil
}

type staticLessons struct{}

func (staticLessons) List(_ context.Context, filter models.LessonFilter) ([]models.Lesson, error) {
	start := filter.StartsFrom.Add(10 * time.Hour)
	return []models.Lesson{{ID: "l1", ClassID: "c1", StartsAt: start, EndsAt: start.Add(time.Hour)}}, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	metrics := service.NewMetricsService()
	home := service.NewTeacherHomeService(service.TeacherHomeServiceParams{
		Classes:  staticClasses{},
		Lessons:  staticLessons{},
		Metrics:  metrics,
		Location: seoul,
	})
	r := gin.New()
	Router{
		Auth:        tokenTable{"admin": models.RoleAdmin, "teacher": models.RoleTeacher, "parent": models.RoleParent},
		Tabs:        service.Tabs,
		Navigation:  NewNavigationHandler(service.NewNavigationService()),
		TeacherHome: NewTeacherHomeHandler(home, service.NewExportService(home, nil, nil), service.NewCalendarService(home, nil, signing.NewSigner("secret", time.Hour), time.Minute, nil)),
		Metrics:     NewMetricsHandler(metrics, nil),
	}.Register(r, "/api/v1")
	return r
}

func get(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRoutesRoleAccess(t *testing.T) {
	r := newTestRouter()

	cases := []struct {
		path  string
		token string
		want  int
	}{
		{"/api/v1/home/teacher", "", http.StatusUnauthorized},
		{"/api/v1/home/teacher", "nope", http.StatusUnauthorized},
		{"/api/v1/home/teacher", "teacher", http.StatusOK},
		{"/api/v1/home/teacher", "admin", http.StatusOK},
		{"/api/v1/home/teacher", "parent", http.StatusForbidden},
		{"/api/v1/home/academy", "teacher", http.StatusForbidden},
		{"/api/v1/home/academy", "admin", http.StatusOK},
		{"/api/v1/home/student", "parent", http.StatusOK},
		{"/api/v1/home/teacher/export?format=xlsx", "teacher", http.StatusOK},
		{"/api/v1/home/teacher/export?format=txt", "teacher", http.StatusBadRequest},
		{"/api/v1/home/teacher/calendar.ics", "teacher", http.StatusOK},
		{"/api/v1/navigation", "parent", http.StatusOK},
	}
	for _, tc := range cases {
		rec := get(r, tc.path, tc.token)
		assert.Equal(t, tc.want, rec.Code, "%s as %q", tc.path, tc.token)
	}
}

func TestRoutesTeacherDashboardJoinsLessons(t *testing.T) {
	rec := get(newTestRouter(), "/api/v1/home/teacher", "teacher")
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decode(t, rec)
	lessons := envelope.Data["lessons"].([]interface{})
	require.Len(t, lessons, 1)
	row := lessons[0].(map[string]interface{})
	assert.Equal(t, "Math A", row["class_name"])
	assert.Equal(t, "10:00 ~ 11:00", row["time_range"])
	assert.Contains(t, envelope.Meta, "processing_time_ms")
}

func TestRoutesProbes(t *testing.T) {
	r := newTestRouter()
	assert.Equal(t, http.StatusOK, get(r, "/health", "").Code)
	assert.Equal(t, http.StatusOK, get(r, "/ready", "").Code)

	get(r, "/api/v1/home/teacher", "teacher")
	rec := get(r, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "screen_state_transitions_total")
}

func TestRoutesCalendarSubscription(t *testing.T) {
	r := newTestRouter()

	assert.Equal(t, http.StatusUnauthorized, get(r, "/api/v1/calendar/teacher.ics?token=forged", "").Code)

	rec := get(r, "/api/v1/home/teacher/calendar-link", "teacher")
	require.Equal(t, http.StatusOK, rec.Code)
	link := decode(t, rec).Data["url"].(string)
	require.True(t, strings.HasPrefix(link, "/api/v1/calendar/teacher.ics?token="))

	feed := get(r, link, "")
	assert.Equal(t, http.StatusOK, feed.Code)
	assert.Contains(t, feed.Body.String(), "SUMMARY:Math A")
}
