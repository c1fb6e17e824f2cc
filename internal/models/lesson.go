package models

import "time"

// UnknownClassName labels lessons whose class is not in the loaded roster.
const UnknownClassName = "Unknown class"

// Lesson is a single scheduled session belonging to a class.
type Lesson struct {
	ID       string    `db:"id" json:"id"`
	ClassID  string    `db:"class_id" json:"class_id"`
	StartsAt time.Time `db:"starts_at" json:"starts_at"`
	EndsAt   time.Time `db:"ends_at" json:"ends_at"`
}

// DisplayLesson is a lesson joined with the name of its class.
type DisplayLesson struct {
	Lesson
	ClassName string `json:"class_name"`
}

// LessonFilter bounds lesson reads to a half-open start-time window.
type LessonFilter struct {
	StartsFrom   time.Time
	StartsBefore time.Time
}
