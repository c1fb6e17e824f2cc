package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/academy-api/internal/dto"
	"github.com/noah-isme/academy-api/internal/models"
	appErrors "github.com/noah-isme/academy-api/pkg/errors"
	"github.com/noah-isme/academy-api/pkg/response"
)

type navigationService interface {
	ForRole(role models.UserRole) (*dto.NavigationResponse, error)
	Home(name models.TabName) (models.HomeScreen, error)
}

// NavigationHandler serves the tab layout and the placeholder home screens.
type NavigationHandler struct {
	service navigationService
}

// NewNavigationHandler constructs the handler.
func NewNavigationHandler(service navigationService) *NavigationHandler {
	return &NavigationHandler{service: service}
}

// Tabs godoc
// @Summary Bottom navigation for the signed-in role
// @Tags Navigation
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=dto.NavigationResponse}
// @Failure 401 {object} response.Envelope
// @Router /navigation [get]
func (h *NavigationHandler) Tabs(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	nav, err := h.service.ForRole(claims.Role)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, nav)
}

// AcademyHome godoc
// @Summary Academy (admin) home screen
// @Tags Home
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=models.HomeScreen}
// @Failure 403 {object} response.Envelope
// @Router /home/academy [get]
func (h *NavigationHandler) AcademyHome(c *gin.Context) {
	h.home(c, models.TabAcademy)
}

// StudentHome godoc
// @Summary Student and parent home screen
// @Tags Home
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=models.HomeScreen}
// @Failure 403 {object} response.Envelope
// @Router /home/student [get]
func (h *NavigationHandler) StudentHome(c *gin.Context) {
	h.home(c, models.TabStudent)
}

func (h *NavigationHandler) home(c *gin.Context, tab models.TabName) {
	screen, err := h.service.Home(tab)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, screen)
}
