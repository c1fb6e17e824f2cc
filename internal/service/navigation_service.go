package service

import (
	"github.com/noah-isme/academy-api/internal/dto"
	"github.com/noah-isme/academy-api/internal/models"
	appErrors "github.com/noah-isme/academy-api/pkg/errors"
)

// Tabs is the bottom navigation in display order.
var Tabs = []models.Tab{
	{Name: models.TabAcademy, Title: "학원", Roles: []models.UserRole{models.RoleAdmin}},
	{Name: models.TabTeacher, Title: "강사", Roles: []models.UserRole{models.RoleTeacher, models.RoleAdmin}},
	{Name: models.TabStudent, Title: "학생", Roles: []models.UserRole{models.RoleStudent, models.RoleParent, models.RoleAdmin}},
}

var homeScreens = map[models.TabName]models.HomeScreen{
	models.TabAcademy: {
		Tab:         models.TabAcademy,
		Title:       "학원 홈",
		Description: "앞으로 이 화면에서 반 구성, 강사 배정, 학생 등록 현황 등 학원 운영 정보를 확인하게 됩니다.",
		Note:        "추후 Supabase 연동 후 실제 데이터를 보여주도록 바꿀 예정입니다.",
	},
	models.TabStudent: {
		Tab:         models.TabStudent,
		Title:       "학생/학부모 홈",
		Description: "앞으로 이 화면에서 내 수업 일정, 출결 기록, 시험 결과, 공지 등을 확인하게 됩니다.",
		Note:        "추후 Supabase 연동 후 실제 데이터를 보여주도록 바꿀 예정입니다.",
	},
}

// NavigationService answers which tabs a role sees and where it lands.
type NavigationService struct {
	tabs []models.Tab
}

// NewNavigationService constructs the service over the fixed tab layout.
func NewNavigationService() *NavigationService {
	return &NavigationService{tabs: Tabs}
}

// Tab returns the registered tab by name.
func (s *NavigationService) Tab(name models.TabName) (models.Tab, bool) {
	for _, tab := range s.tabs {
		if tab.Name == name {
			return tab, true
		}
	}
	return models.Tab{}, false
}

// LandingTab is the tab a role opens on sign-in.
func LandingTab(role models.UserRole) models.TabName {
	switch role {
	case models.RoleAdmin:
		return models.TabAcademy
	case models.RoleTeacher:
		return models.TabTeacher
	default:
		return models.TabStudent
	}
}

// ForRole lists every tab with the role's access flag.
func (s *NavigationService) ForRole(role models.UserRole) (*dto.NavigationResponse, error) {
	if !role.Valid() {
		return nil, appErrors.Clone(appErrors.ErrForbidden, "unknown role")
	}
	resp := &dto.NavigationResponse{
		Role:    role,
		Landing: LandingTab(role),
		Tabs:    make([]dto.NavigationTab, 0, len(s.tabs)),
	}
	for _, tab := range s.tabs {
		resp.Tabs = append(resp.Tabs, dto.NavigationTab{
			Name:       tab.Name,
			Title:      tab.Title,
			Accessible: tab.Allows(role),
		})
	}
	return resp, nil
}

// Home returns the static content of a placeholder home screen.
func (s *NavigationService) Home(name models.TabName) (models.HomeScreen, error) {
	screen, ok := homeScreens[name]
	if !ok {
		return models.HomeScreen{}, appErrors.Clone(appErrors.ErrNotFound, "home screen not found")
	}
	return screen, nil
}
