package api

import (
	"context"

	"github.com/jimezsa/eatcli/internal/models"
)

func (s *Service) RateMenu(ctx context.Context, menuID string, rating int, review string) error {
	var resp models.MenuRatingResponse
	path := "/api/menu/" + segment(menuID) + "/rate"
	if err := s.client.Post(ctx, path, models.MenuRatingRequest{Rating: rating, Review: review}, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return ErrRatingRejected
	}
	return nil
}

func (s *Service) ListMenu(ctx context.Context) (models.MenuMessage, error) {
	var msg models.MenuMessage
	err := s.client.Get(ctx, "/api/menu", &msg)
	return msg, err
}

// AddMenuItem posts an arbitrary JSON item to the menu stub service.
func (s *Service) AddMenuItem(ctx context.Context, item any) (models.MenuItemAdded, error) {
	var added models.MenuItemAdded
	err := s.client.Post(ctx, "/api/menu", item, &added)
	return added, err
}
