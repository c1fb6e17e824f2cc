package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/academy-api/internal/models"
)

// LessonRepository reads scheduled lesson sessions from PostgreSQL.
type LessonRepository struct {
	db *sqlx.DB
}

// NewLessonRepository constructs a new lesson repository.
func NewLessonRepository(db *sqlx.DB) *LessonRepository {
	return &LessonRepository{db: db}
}

// List returns lessons starting inside [StartsFrom, StartsBefore), earliest first.
func (r *LessonRepository) List(ctx context.Context, filter models.LessonFilter) ([]models.Lesson, error) {
	const query = `SELECT id, class_id, starts_at, ends_at FROM lesson WHERE starts_at >= $1 AND starts_at < $2 ORDER BY starts_at ASC`
	lessons := []models.Lesson{}
	if err := r.db.SelectContext(ctx, &lessons, query, filter.StartsFrom, filter.StartsBefore); err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	return lessons, nil
}
