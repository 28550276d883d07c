package cricket

import (
	"context"
	"fmt"

	"github.com/Atharve03/pitchside/internal/models"
)

// TeamInput is the creation/update payload for a team.
type TeamInput struct {
	Name       string `json:"name"`
	ShortName  string `json:"shortName"`
	Captain    string `json:"captain,omitempty"`
	Coach      string `json:"coach,omitempty"`
	HomeGround string `json:"homeGround,omitempty"`
}

func (a *API) ListTeams(ctx context.Context) ([]models.Team, error) {
	var resp struct {
		Data []models.Team `json:"data"`
	}
	if err := a.client.Get(ctx, "/teams", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching teams: %w", err)
	}
	return resp.Data, nil
}

func (a *API) CreateTeam(ctx context.Context, t TeamInput) (*models.Team, error) {
	var resp struct {
		Data models.Team `json:"data"`
	}
	if err := a.client.Post(ctx, "/teams", t, &resp); err != nil {
		return nil, fmt.Errorf("creating team: %w", err)
	}
	return &resp.Data, nil
}

func (a *API) UpdateTeam(ctx context.Context, teamID string, t TeamInput) (*models.Team, error) {
	var resp struct {
		Data models.Team `json:"data"`
	}
	if err := a.client.Put(ctx, fmt.Sprintf("/teams/%s", teamID), t, &resp); err != nil {
		return nil, fmt.Errorf("updating team: %w", err)
	}
	return &resp.Data, nil
}

func (a *API) DeleteTeam(ctx context.Context, teamID string) error {
	if err := a.client.Delete(ctx, fmt.Sprintf("/teams/%s", teamID)); err != nil {
		return fmt.Errorf("deleting team: %w", err)
	}
	return nil
}
