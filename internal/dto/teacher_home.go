package dto

import (
	"time"

	"github.com/noah-isme/academy-api/internal/models"
)

// Empty-state and troubleshooting copy shown by the teacher home screen.
const (
	EmptyClassesMessage = "등록된 반이 없습니다."
	EmptyLessonsMessage = "오늘 예정된 수업이 없습니다."
)

// TroubleshootingChecklist is shown next to a raw remote read error.
var TroubleshootingChecklist = []string{
	"Check that the device is online.",
	"Check that the class and lesson tables exist in the data store.",
	"Check that row-level security policies allow reads with the anon key.",
	"Check that the data store URL and key are configured for this environment.",
}

// TeacherHomeView is the ready-state payload of the teacher home screen.
type TeacherHomeView struct {
	Status              models.ScreenStatus `json:"status"`
	Date                string              `json:"date"`
	Classes             []ClassRow          `json:"classes"`
	Lessons             []LessonRow         `json:"lessons"`
	EmptyClassesMessage string              `json:"empty_classes_message,omitempty"`
	EmptyLessonsMessage string              `json:"empty_lessons_message,omitempty"`
}

// ClassRow renders one class.
type ClassRow struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Subject     *string `json:"subject,omitempty"`
	Description *string `json:"description,omitempty"`
}

// LessonRow renders one of today's lessons.
type LessonRow struct {
	ID        string    `json:"id"`
	ClassID   string    `json:"class_id"`
	ClassName string    `json:"class_name"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	TimeRange string    `json:"time_range"`
}

// TeacherHomeErrorMeta accompanies the error envelope of a failed visit.
type TeacherHomeErrorMeta struct {
	Status          models.ScreenStatus `json:"status"`
	Collection      string              `json:"collection"`
	Troubleshooting []string            `json:"troubleshooting"`
}

// NewTeacherHomeView renders a ready state. Times are shown in loc.
func NewTeacherHomeView(state models.ScreenState, day time.Time, loc *time.Location) TeacherHomeView {
	view := TeacherHomeView{
		Status:  state.Status,
		Date:    day.In(loc).Format("2006-01-02"),
		Classes: make([]ClassRow, 0, len(state.Classes)),
		Lessons: make([]LessonRow, 0, len(state.Lessons)),
	}
	for _, class := range state.Classes {
		view.Classes = append(view.Classes, ClassRow{
			ID:          class.ID,
			Name:        class.Name,
			Subject:     class.Subject,
			Description: class.Description,
		})
	}
	for _, lesson := range state.Lessons {
		view.Lessons = append(view.Lessons, LessonRow{
			ID:        lesson.ID,
			ClassID:   lesson.ClassID,
			ClassName: lesson.ClassName,
			StartsAt:  lesson.StartsAt.In(loc),
			EndsAt:    lesson.EndsAt.In(loc),
			TimeRange: TimeRange(lesson.Lesson, loc),
		})
	}
	if len(view.Classes) == 0 {
		view.EmptyClassesMessage = EmptyClassesMessage
	}
	if len(view.Lessons) == 0 {
		view.EmptyLessonsMessage = EmptyLessonsMessage
	}
	return view
}

// NewTeacherHomeErrorMeta renders the meta block of an error state.
func NewTeacherHomeErrorMeta(state models.ScreenState) TeacherHomeErrorMeta {
	meta := TeacherHomeErrorMeta{Status: state.Status, Troubleshooting: TroubleshootingChecklist}
	if state.Failure != nil {
		meta.Collection = state.Failure.Collection
	}
	return meta
}

// TimeRange formats a lesson as "HH:MM ~ HH:MM" in loc.
func TimeRange(lesson models.Lesson, loc *time.Location) string {
	return lesson.StartsAt.In(loc).Format("15:04") + " ~ " + lesson.EndsAt.In(loc).Format("15:04")
}

// ExportRequest selects the download format of today's lessons.
type ExportRequest struct {
	Format string `form:"format" validate:"required,oneof=csv pdf xlsx"`
}

// CalendarLink is a subscription URL that works without a bearer header.
type CalendarLink struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
