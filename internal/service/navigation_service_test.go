package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/academy-api/internal/models"
	appErrors "github.com/noah-isme/academy-api/pkg/errors"
)

func TestLandingTab(t *testing.T) {
	cases := map[models.UserRole]models.TabName{
		models.RoleAdmin:   models.TabAcademy,
		models.RoleTeacher: models.TabTeacher,
		models.RoleStudent: models.TabStudent,
		models.RoleParent:  models.TabStudent,
	}
	for role, want := range cases {
		assert.Equal(t, want, LandingTab(role), string(role))
	}
}

func TestNavigationForRole(t *testing.T) {
	svc := NewNavigationService()

	resp, err := svc.ForRole(models.RoleTeacher)
	require.NoError(t, err)
	require.Len(t, resp.Tabs, 3)
	assert.Equal(t, models.TabTeacher, resp.Landing)
	assert.Equal(t, []models.TabName{models.TabAcademy, models.TabTeacher, models.TabStudent},
		[]models.TabName{resp.Tabs[0].Name, resp.Tabs[1].Name, resp.Tabs[2].Name})
	assert.False(t, resp.Tabs[0].Accessible)
	assert.True(t, resp.Tabs[1].Accessible)
	assert.False(t, resp.Tabs[2].Accessible)
	assert.Equal(t, "강사", resp.Tabs[1].Title)

	resp, err = svc.ForRole(models.RoleAdmin)
	require.NoError(t, err)
	for _, tab := range resp.Tabs {
		assert.True(t, tab.Accessible, string(tab.Name))
	}

	resp, err = svc.ForRole(models.RoleParent)
	require.NoError(t, err)
	assert.True(t, resp.Tabs[2].Accessible)
	assert.False(t, resp.Tabs[1].Accessible)
}

func TestNavigationForUnknownRole(t *testing.T) {
	_, err := NewNavigationService().ForRole(models.UserRole("GUEST"))
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestNavigationHome(t *testing.T) {
	svc := NewNavigationService()

	screen, err := svc.Home(models.TabStudent)
	require.NoError(t, err)
	assert.Equal(t, "학생/학부모 홈", screen.Title)
	assert.Contains(t, screen.Description, "출결 기록")

	_, err = svc.Home(models.TabTeacher)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestNavigationTabLookup(t *testing.T) {
	tab, ok := NewNavigationService().Tab(models.TabTeacher)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"TEACHER", "ADMIN"}, tab.RoleStrings())
}
