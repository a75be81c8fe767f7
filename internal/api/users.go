package api

import (
	"context"

	"github.com/jimezsa/eatcli/internal/models"
)

func (s *Service) SearchUsers(ctx context.Context, email string) ([]models.User, error) {
	var users []models.User
	if err := s.client.Get(ctx, SearchPath("/api/user/search", "email", email), &users); err != nil {
		return nil, err
	}
	return users, nil
}
