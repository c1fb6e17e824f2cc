package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/academy-api/internal/models"
)

func TestJoinLessonsResolvesNames(t *testing.T) {
	classes := []models.Class{{ID: "c1", Name: "Math A"}, {ID: "c3", Name: "Sci C"}}
	lessons := []models.Lesson{
		{ID: "l1", ClassID: "c1"},
		{ID: "l2", ClassID: "c2"},
		{ID: "l3", ClassID: "c3"},
	}

	got := JoinLessons(lessons, classes)

	require.Len(t, got, 3)
	assert.Equal(t, "Math A", got[0].ClassName)
	assert.Equal(t, models.UnknownClassName, got[1].ClassName)
	assert.Equal(t, "Sci C", got[2].ClassName)
	assert.Equal(t, []string{"l1", "l2", "l3"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestJoinLessonsKeepsLessonFields(t *testing.T) {
	start := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	lesson := models.Lesson{ID: "l1", ClassID: "c1", StartsAt: start, EndsAt: start.Add(time.Hour)}

	got := JoinLessons([]models.Lesson{lesson}, nil)

	require.Len(t, got, 1)
	assert.Equal(t, lesson, got[0].Lesson)
	assert.Equal(t, models.UnknownClassName, got[0].ClassName)
}

func TestJoinLessonsMatchesNaiveLookup(t *testing.T) {
	classes := []models.Class{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "a", Name: "A-dup"}}
	lessons := []models.Lesson{{ClassID: "a"}, {ClassID: "b"}, {ClassID: "z"}, {ClassID: ""}}

	got := JoinLessons(lessons, classes)

	for i, lesson := range lessons {
		want := models.UnknownClassName
		for _, class := range classes {
			if class.ID == lesson.ClassID {
				want = class.Name
				break
			}
		}
		assert.Equal(t, want, got[i].ClassName)
	}
}

func TestJoinLessonsEmpty(t *testing.T) {
	got := JoinLessons(nil, []models.Class{{ID: "c1", Name: "Math A"}})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
