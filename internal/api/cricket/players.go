package cricket

import (
	"context"
	"fmt"

	"github.com/Atharve03/pitchside/internal/models"
)

// PlayerInput is the creation/update payload for a player.
type PlayerInput struct {
	Name         string            `json:"name"`
	TeamID       string            `json:"team"`
	JerseyNumber int               `json:"jerseyNumber,omitempty"`
	Role         models.PlayerRole `json:"role"`
	BattingStyle string            `json:"battingStyle,omitempty"`
	BowlingStyle string            `json:"bowlingStyle,omitempty"`
}

func (a *API) ListPlayers(ctx context.Context) ([]models.Player, error) {
	var resp struct {
		Data []models.Player `json:"data"`
	}
	if err := a.client.Get(ctx, "/players", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching players: %w", err)
	}
	return resp.Data, nil
}

// PlayersByTeam lists the roster of one team, used when picking opening
// batters and bowlers.
func (a *API) PlayersByTeam(ctx context.Context, teamID string) ([]models.Player, error) {
	var resp struct {
		Data []models.Player `json:"data"`
	}
	if err := a.client.Get(ctx, fmt.Sprintf("/players/team/%s", teamID), nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching team players: %w", err)
	}
	return resp.Data, nil
}

func (a *API) CreatePlayer(ctx context.Context, p PlayerInput) (*models.Player, error) {
	var resp struct {
		Data models.Player `json:"data"`
	}
	if err := a.client.Post(ctx, "/players", p, &resp); err != nil {
		return nil, fmt.Errorf("creating player: %w", err)
	}
	return &resp.Data, nil
}

func (a *API) UpdatePlayer(ctx context.Context, playerID string, p PlayerInput) (*models.Player, error) {
	var resp struct {
		Data models.Player `json:"data"`
	}
	if err := a.client.Put(ctx, fmt.Sprintf("/players/%s", playerID), p, &resp); err != nil {
		return nil, fmt.Errorf("updating player: %w", err)
	}
	return &resp.Data, nil
}

func (a *API) DeletePlayer(ctx context.Context, playerID string) error {
	if err := a.client.Delete(ctx, fmt.Sprintf("/players/%s", playerID)); err != nil {
		return fmt.Errorf("deleting player: %w", err)
	}
	return nil
}
