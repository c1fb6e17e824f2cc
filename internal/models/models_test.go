package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadyNormalisesNilSlices(t *testing.T) {
	state := Ready(nil, nil)
	assert.Equal(t, ScreenReady, state.Status)
	assert.NotNil(t, state.Classes)
	assert.NotNil(t, state.Lessons)
	assert.Nil(t, state.Failure)
}

func TestFailedCarriesOnlyFailure(t *testing.T) {
	cause := errors.New("connection refused")
	state := Failed(NewRemoteReadFailure(CollectionLesson, cause))

	assert.Equal(t, ScreenError, state.Status)
	assert.Nil(t, state.Classes)
	assert.Nil(t, state.Lessons)
	assert.Equal(t, "connection refused", state.Failure.Message)
	assert.ErrorIs(t, state.Failure, cause)
	assert.Equal(t, "read lesson: connection refused", state.Failure.Error())
}

func TestTabAllows(t *testing.T) {
	tab := Tab{Name: TabTeacher, Roles: []UserRole{RoleTeacher, RoleAdmin}}
	assert.True(t, tab.Allows(RoleAdmin))
	assert.False(t, tab.Allows(RoleStudent))
	assert.Equal(t, []string{"TEACHER", "ADMIN"}, tab.RoleStrings())
}

func TestUserRoleValid(t *testing.T) {
	assert.True(t, RoleParent.Valid())
	assert.False(t, UserRole("SUPERADMIN").Valid())
}
