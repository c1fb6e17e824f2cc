package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/academy-api/internal/dto"
	"github.com/noah-isme/academy-api/internal/middleware"
	"github.com/noah-isme/academy-api/internal/models"
	"github.com/noah-isme/academy-api/internal/service"
	appErrors "github.com/noah-isme/academy-api/pkg/errors"
	"github.com/noah-isme/academy-api/pkg/response"
)

type teacherHomeService interface {
	Visit(ctx context.Context) (models.ScreenState, service.Window)
	Location() *time.Location
}

type lessonExporter interface {
	Export(ctx context.Context, req dto.ExportRequest) (*service.ExportResult, error)
}

type calendarFeed interface {
	TeacherFeed(ctx context.Context) (string, bool, error)
	SubscriptionLink(claims *models.JWTClaims, feedPath string) (*dto.CalendarLink, error)
	SubscribedFeed(ctx context.Context, token string) (string, bool, error)
}

const (
	calendarLinkRoute   = "/home/teacher/calendar-link"
	subscribedFeedRoute = "/calendar/teacher.ics"
)

// TeacherHomeHandler serves the teacher dashboard and its downloads.
type TeacherHomeHandler struct {
	home     teacherHomeService
	exporter lessonExporter
	calendar calendarFeed
}

// NewTeacherHomeHandler constructs the handler.
func NewTeacherHomeHandler(home teacherHomeService, exporter lessonExporter, calendar calendarFeed) *TeacherHomeHandler {
	return &TeacherHomeHandler{home: home, exporter: exporter, calendar: calendar}
}

// Dashboard godoc
// @Summary Teacher home: classes and today's lessons
// @Description Every call is a fresh screen visit. A failed read answers 502 with a troubleshooting checklist in meta.
// @Tags Home
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=dto.TeacherHomeView}
// @Failure 502 {object} response.Envelope{meta=dto.TeacherHomeErrorMeta}
// @Router /home/teacher [get]
func (h *TeacherHomeHandler) Dashboard(c *gin.Context) {
	state, window := h.home.Visit(c.Request.Context())
	if state.Status != models.ScreenReady {
		h.failedVisit(c, state)
		return
	}
	view := dto.NewTeacherHomeView(state, window.Start, h.home.Location())
	response.JSON(c, http.StatusOK, view, middleware.ExtractMeta(c))
}

// Export godoc
// @Summary Download today's lessons
// @Tags Home
// @Produce octet-stream
// @Security BearerAuth
// @Param format query string true "csv, pdf or xlsx"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 502 {object} response.Envelope
// @Router /home/teacher/export [get]
func (h *TeacherHomeHandler) Export(c *gin.Context) {
	var req dto.ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid query"))
		return
	}
	result, err := h.exporter.Export(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Attachment(c, result.Filename, result.ContentType, result.Body)
}

// Calendar godoc
// @Summary Today's lessons as an iCalendar feed
// @Tags Home
// @Produce text/calendar
// @Security BearerAuth
// @Success 200 {string} string
// @Failure 502 {object} response.Envelope
// @Router /home/teacher/calendar.ics [get]
func (h *TeacherHomeHandler) Calendar(c *gin.Context) {
	body, hit, err := h.calendar.TeacherFeed(c.Request.Context())
	h.writeFeed(c, body, hit, err)
}

// CalendarLink godoc
// @Summary Signed subscription URL for today's lessons feed
// @Description Calendar apps cannot send bearer tokens, so the returned URL carries a signed token instead.
// @Tags Home
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=dto.CalendarLink}
// @Router /home/teacher/calendar-link [get]
func (h *TeacherHomeHandler) CalendarLink(c *gin.Context) {
	feedPath := strings.TrimSuffix(c.FullPath(), calendarLinkRoute) + subscribedFeedRoute
	link, err := h.calendar.SubscriptionLink(claimsFromContext(c), feedPath)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, link)
}

// SubscribedCalendar godoc
// @Summary Today's lessons feed for a subscription link
// @Tags Home
// @Produce text/calendar
// @Param token query string true "Signed link token"
// @Success 200 {string} string
// @Failure 401 {object} response.Envelope
// @Router /calendar/teacher.ics [get]
func (h *TeacherHomeHandler) SubscribedCalendar(c *gin.Context) {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "token is required"))
		return
	}
	body, hit, err := h.calendar.SubscribedFeed(c.Request.Context(), token)
	h.writeFeed(c, body, hit, err)
}

func (h *TeacherHomeHandler) writeFeed(c *gin.Context, body string, hit bool, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	if hit {
		c.Header("X-Cache", "HIT")
	} else {
		c.Header("X-Cache", "MISS")
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}

func (h *TeacherHomeHandler) failedVisit(c *gin.Context, state models.ScreenState) {
	meta := dto.NewTeacherHomeErrorMeta(state)
	response.Error(c, service.RemoteReadError(state.Failure), map[string]interface{}{
		"status":          meta.Status,
		"collection":      meta.Collection,
		"troubleshooting": meta.Troubleshooting,
	})
}

func (h *TeacherHomeHandler) fail(c *gin.Context, err error) {
	if appErrors.FromError(err).Code == appErrors.ErrRemoteReadFailure.Code {
		response.Error(c, err, map[string]interface{}{"troubleshooting": dto.TroubleshootingChecklist})
		return
	}
	response.Error(c, err)
}
