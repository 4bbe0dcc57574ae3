package store

import (
	"context"

	"wayfarer/internal/models"
)

// ListUsers возвращает всех пользователей
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.list(ctx)
}

// SaveUser inserts the user or replaces an existing record with the
// same id.
func (s *Store) SaveUser(ctx context.Context, user models.User) error {
	return s.users.update(ctx, func(users []models.User) []models.User {
		for i := range users {
			if users[i].ID == user.ID {
				users[i] = user
				return users
			}
		}
		return append(users, user)
	})
}

// GetUserByEmail returns nil without error when no user matches.
// Email uniqueness relies on callers checking here before inserting.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := s.users.list(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// GetUserByID returns nil without error when no user matches.
func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	users, err := s.users.list(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}
