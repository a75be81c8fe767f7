package api

import (
	"context"
	"fmt"

	"github.com/jimezsa/eatcli/internal/models"
)

func (s *Service) CreateGroup(ctx context.Context, name string, description string) (models.Group, error) {
	var group models.Group
	err := s.client.Post(ctx, "/api/group/create", models.CreateGroupRequest{
		Name:        name,
		Description: description,
	}, &group)
	return group, err
}

// JoinGroup resolves a group invitation code.
func (s *Service) JoinGroup(ctx context.Context, code string) (models.Group, error) {
	var group models.Group
	err := s.client.Get(ctx, "/eat-together/group/"+segment(code), &group)
	return group, err
}

func (s *Service) AddMember(ctx context.Context, groupID string, memberID string) error {
	path := "/api/group/" + segment(groupID) + "/member"
	return s.client.Post(ctx, path, models.MemberRequest{MemberID: models.ID(memberID)}, nil)
}

func (s *Service) RemoveMember(ctx context.Context, groupID string, memberID string) error {
	path := "/api/group/" + segment(groupID) + "/member/" + segment(memberID)
	return s.client.Delete(ctx, path, nil)
}

// UpdatePreferences posts guest preference changes, e.g. {"vegetarian": true}.
func (s *Service) UpdatePreferences(ctx context.Context, groupID string, prefs map[string]any) error {
	path := "/eat-together/" + segment(groupID) + "/update-guest"
	return s.client.Post(ctx, path, prefs, nil)
}

func (s *Service) FoodMatches(ctx context.Context, groupID string) ([]models.FoodMatch, error) {
	var matches []models.FoodMatch
	if err := s.client.Get(ctx, "/eat-together/"+segment(groupID)+"/food-matches", &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// Roulette picks one of the group's food matches at random.
func (s *Service) Roulette(ctx context.Context, groupID string) (models.FoodMatch, error) {
	matches, err := s.FoodMatches(ctx, groupID)
	if err != nil {
		return models.FoodMatch{}, err
	}
	if len(matches) == 0 {
		return models.FoodMatch{}, fmt.Errorf("group %s: %w", groupID, ErrNoMatches)
	}
	return matches[s.intn(len(matches))], nil
}
