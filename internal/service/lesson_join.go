package service

import "github.com/noah-isme/academy-api/internal/models"

// JoinLessons labels each lesson with its class name, keeping lesson order.
// Lessons whose class is absent from classes get models.UnknownClassName.
func JoinLessons(lessons []models.Lesson, classes []models.Class) []models.DisplayLesson {
	names := make(map[string]string, len(classes))
	for _, class := range classes {
		if _, seen := names[class.ID]; !seen {
			names[class.ID] = class.Name
		}
	}

	out := make([]models.DisplayLesson, 0, len(lessons))
	for _, lesson := range lessons {
		name, ok := names[lesson.ClassID]
		if !ok {
			name = models.UnknownClassName
		}
		out = append(out, models.DisplayLesson{Lesson: lesson, ClassName: name})
	}
	return out
}
