package repository

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/noah-isme/academy-api/internal/models"
	"github.com/noah-isme/academy-api/pkg/postgrest"
)

// RemoteClassRepository reads class rosters through the Supabase REST API.
type RemoteClassRepository struct {
	client *postgrest.Client
}

// NewRemoteClassRepository constructs a PostgREST-backed class repository.
func NewRemoteClassRepository(client *postgrest.Client) *RemoteClassRepository {
	return &RemoteClassRepository{client: client}
}

// List returns every class, newest first.
func (r *RemoteClassRepository) List(ctx context.Context) ([]models.Class, error) {
	q := r.client.From(models.CollectionClass).
		Select("id", "name", "subject", "description").
		Order("created_at", false)

	rows, err := r.client.Fetch(ctx, q)
	if err != nil {
		return nil, err
	}

	classes := make([]models.Class, 0, len(rows.Array()))
	rows.ForEach(func(_, row gjson.Result) bool {
		classes = append(classes, models.Class{
			ID:          row.Get("id").String(),
			Name:        row.Get("name").String(),
			Subject:     optionalString(row.Get("subject")),
			Description: optionalString(row.Get("description")),
		})
		return true
	})
	return classes, nil
}

func optionalString(value gjson.Result) *string {
	if !value.Exists() || value.Type == gjson.Null {
		return nil
	}
	s := value.String()
	return &s
}
