package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/noah-isme/academy-api/internal/models"
	"github.com/noah-isme/academy-api/pkg/postgrest"
)

// RemoteLessonRepository reads lesson sessions through the Supabase REST API.
type RemoteLessonRepository struct {
	client *postgrest.Client
}

// NewRemoteLessonRepository constructs a PostgREST-backed lesson repository.
func NewRemoteLessonRepository(client *postgrest.Client) *RemoteLessonRepository {
	return &RemoteLessonRepository{client: client}
}

// List returns lessons starting inside [StartsFrom, StartsBefore), earliest first.
func (r *RemoteLessonRepository) List(ctx context.Context, filter models.LessonFilter) ([]models.Lesson, error) {
	q := r.client.From(models.CollectionLesson).
		Select("id", "class_id", "starts_at", "ends_at").
		Gte("starts_at", filter.StartsFrom.Format(time.RFC3339)).
		Lt("starts_at", filter.StartsBefore.Format(time.RFC3339)).
		Order("starts_at", true)

	rows, err := r.client.Fetch(ctx, q)
	if err != nil {
		return nil, err
	}

	lessons := make([]models.Lesson, 0, len(rows.Array()))
	var parseErr error
	rows.ForEach(func(_, row gjson.Result) bool {
		lesson := models.Lesson{
			ID:      row.Get("id").String(),
			ClassID: row.Get("class_id").String(),
		}
		if lesson.StartsAt, parseErr = parseTimestamp(row, "starts_at"); parseErr != nil {
			return false
		}
		if lesson.EndsAt, parseErr = parseTimestamp(row, "ends_at"); parseErr != nil {
			return false
		}
		lessons = append(lessons, lesson)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return lessons, nil
}

func parseTimestamp(row gjson.Result, field string) (time.Time, error) {
	raw := row.Get(field).String()
	ts, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("lesson %s: invalid %s %q", row.Get("id").String(), field, raw)
	}
	return ts, nil
}
