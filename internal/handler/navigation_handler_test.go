package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/academy-api/internal/middleware"
	"github.com/noah-isme/academy-api/internal/models"
	"github.com/noah-isme/academy-api/internal/service"
)

func TestNavigationTabsRequiresClaims(t *testing.T) {
	handler := NewNavigationHandler(service.NewNavigationService())
	c, rec := newTestContext("/navigation")

	handler.Tabs(c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNavigationTabsForStudent(t *testing.T) {
	handler := NewNavigationHandler(service.NewNavigationService())
	c, rec := newTestContext("/navigation")
	c.Set(middleware.ContextUserKey, &models.JWTClaims{Role: models.RoleStudent})

	handler.Tabs(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decode(t, rec)
	assert.Equal(t, "student", envelope.Data["landing"])
	tabs := envelope.Data["tabs"].([]interface{})
	assert.Len(t, tabs, 3)
	assert.Equal(t, false, tabs[1].(map[string]interface{})["accessible"])
	assert.Equal(t, true, tabs[2].(map[string]interface{})["accessible"])
}

func TestNavigationStudentHome(t *testing.T) {
	handler := NewNavigationHandler(service.NewNavigationService())
	c, rec := newTestContext("/home/student")

	handler.StudentHome(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "학생/학부모 홈", decode(t, rec).Data["title"])
}
