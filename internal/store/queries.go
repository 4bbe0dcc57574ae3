package store

import (
	"context"

	"wayfarer/internal/models"
)

func (s *Store) ListQueries(ctx context.Context) ([]models.Query, error) {
	return s.queries.list(ctx)
}

func (s *Store) AddQuery(ctx context.Context, query models.Query) error {
	return s.queries.prepend(ctx, query)
}

// AddQueryResponse appends to the query's embedded response list.
// Responses are accepted regardless of query status; blocking replies
// on resolved queries is the caller's concern.
func (s *Store) AddQueryResponse(ctx context.Context, queryID string, response models.QueryResponse) error {
	return s.queries.update(ctx, func(queries []models.Query) []models.Query {
		for i := range queries {
			if queries[i].ID == queryID {
				queries[i].Responses = append(queries[i].Responses, response)
				break
			}
		}
		return queries
	})
}

// SetQueryStatus overwrites the status field unconditionally. The
// one-way open→resolved transition is enforced by the query service,
// not here.
func (s *Store) SetQueryStatus(ctx context.Context, queryID, status string) error {
	return s.queries.update(ctx, func(queries []models.Query) []models.Query {
		for i := range queries {
			if queries[i].ID == queryID {
				queries[i].Status = status
				break
			}
		}
		return queries
	})
}
