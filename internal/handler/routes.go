package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/academy-api/internal/middleware"
	"github.com/noah-isme/academy-api/internal/models"
)

// Router groups the handlers mounted under the API prefix.
type Router struct {
	Auth        middleware.TokenValidator
	Tabs        []models.Tab
	Navigation  *NavigationHandler
	TeacherHome *TeacherHomeHandler
	Metrics     *MetricsHandler
}

// Register mounts probes at the root and the API under prefix. Everything but
// the signed calendar subscription requires a bearer token.
func (rt Router) Register(r *gin.Engine, prefix string) {
	r.GET("/health", rt.Metrics.Health)
	r.GET("/ready", rt.Metrics.Ready)
	r.GET("/metrics", rt.Metrics.Prometheus)

	public := r.Group(prefix)
	public.GET(subscribedFeedRoute, rt.TeacherHome.SubscribedCalendar)

	api := r.Group(prefix)
	api.Use(middleware.WithResponseMeta(), middleware.JWT(rt.Auth))
	api.GET("/navigation", rt.Navigation.Tabs)

	home := api.Group("/home")
	home.GET("/academy", rt.tab(models.TabAcademy), rt.Navigation.AcademyHome)
	home.GET("/student", rt.tab(models.TabStudent), rt.Navigation.StudentHome)

	teacher := home.Group("/teacher", rt.tab(models.TabTeacher))
	teacher.GET("", rt.TeacherHome.Dashboard)
	teacher.GET("/export", rt.TeacherHome.Export)
	teacher.GET("/calendar.ics", rt.TeacherHome.Calendar)
	teacher.GET("/calendar-link", rt.TeacherHome.CalendarLink)
}

func (rt Router) tab(name models.TabName) gin.HandlerFunc {
	for _, tab := range rt.Tabs {
		if tab.Name == name {
			return middleware.RequireTab(tab)
		}
	}
	// unregistered tabs are closed to everyone
	return middleware.RequireRoles()
}
