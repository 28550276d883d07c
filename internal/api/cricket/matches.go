package cricket

import (
	"context"
	"fmt"
	"time"

	"github.com/Atharve03/pitchside/internal/models"
)

// API exposes the backend's typed operations over the shared Client.
type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

// envelope is the backend's standard response wrapper for CRUD routes.
type matchListEnvelope struct {
	Data []models.Match `json:"data"`
}

type matchEnvelope struct {
	Data models.Match `json:"data"`
}

type snapshotEnvelope struct {
	Data models.LiveSnapshot `json:"data"`
}

// NewMatch is the creation payload for a fixture.
type NewMatch struct {
	Team1ID         string             `json:"team1"`
	Team2ID         string             `json:"team2"`
	Venue           string             `json:"venue"`
	MatchDate       time.Time          `json:"matchDate"`
	Format          models.MatchFormat `json:"matchType"`
	OversPerInnings int                `json:"oversPerInnings"`
}

// TossCall transitions an upcoming match to live.
type TossCall struct {
	TossWinnerID string `json:"tossWinner"`
	TossDecision string `json:"tossDecision"`
}

// Delivery describes one scoring action submitted to the server. The
// server owns all ball-by-ball validation; this is just the wire shape.
type Delivery struct {
	InningsID     string           `json:"inningsId"`
	StrikerID     string           `json:"striker"`
	NonStrikerID  string           `json:"nonStriker"`
	BowlerID      string           `json:"bowler"`
	Runs          int              `json:"runs"`
	Extras        int              `json:"extras"`
	ExtraType     models.ExtraKind `json:"extraType,omitempty"`
	Wicket        bool             `json:"wicket"`
	DismissalType models.Dismissal `json:"dismissalType,omitempty"`
}

func (a *API) ListMatches(ctx context.Context) ([]models.Match, error) {
	var resp matchListEnvelope
	if err := a.client.Get(ctx, "/matches", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching matches: %w", err)
	}
	return resp.Data, nil
}

func (a *API) CreateMatch(ctx context.Context, m NewMatch) (*models.Match, error) {
	var resp matchEnvelope
	if err := a.client.Post(ctx, "/matches", m, &resp); err != nil {
		return nil, fmt.Errorf("creating match: %w", err)
	}
	return &resp.Data, nil
}

func (a *API) DeleteMatch(ctx context.Context, matchID string) error {
	if err := a.client.Delete(ctx, fmt.Sprintf("/matches/%s", matchID)); err != nil {
		return fmt.Errorf("deleting match: %w", err)
	}
	return nil
}

// StartMatch submits the toss result, transitioning the match to live.
func (a *API) StartMatch(ctx context.Context, matchID string, toss TossCall) (*models.Match, error) {
	var resp matchEnvelope
	if err := a.client.Post(ctx, fmt.Sprintf("/matches/%s/start", matchID), toss, &resp); err != nil {
		return nil, fmt.Errorf("starting match: %w", err)
	}
	return &resp.Data, nil
}

// LiveSnapshot pulls the current {match, currentInnings, recentBalls} view.
func (a *API) LiveSnapshot(ctx context.Context, matchID string) (*models.LiveSnapshot, error) {
	var resp snapshotEnvelope
	if err := a.client.Get(ctx, fmt.Sprintf("/matches/%s/live", matchID), nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching live match: %w", err)
	}
	return &resp.Data, nil
}

// SubmitDelivery applies one delivery outcome. The server echoes the
// updated snapshot, but callers refresh through the store so displayed
// state always comes from the same path.
func (a *API) SubmitDelivery(ctx context.Context, matchID string, d Delivery) (*models.LiveSnapshot, error) {
	var resp snapshotEnvelope
	if err := a.client.Post(ctx, fmt.Sprintf("/matches/%s/score", matchID), d, &resp); err != nil {
		return nil, fmt.Errorf("submitting delivery: %w", err)
	}
	return &resp.Data, nil
}

// OpeningBatter references a batter by player id with a zeroed scorecard.
type OpeningBatter struct {
	PlayerID   string `json:"player"`
	Runs       int    `json:"runs"`
	Balls      int    `json:"balls"`
	Fours      int    `json:"fours"`
	Sixes      int    `json:"sixes"`
	IsOnStrike bool   `json:"isOnStrike"`
	IsOut      bool   `json:"isOut"`
}

type OpeningBowler struct {
	PlayerID string `json:"player"`
	Balls    int    `json:"balls"`
	Runs     int    `json:"runs"`
	Wickets  int    `json:"wickets"`
}

// OpeningPlayers is the PUT /innings payload establishing both batters and
// the bowler. The striker entry carries the on-strike flag.
type OpeningPlayers struct {
	CurrentBatsmen []OpeningBatter `json:"currentBatsmen"`
	CurrentBowler  OpeningBowler   `json:"currentBowler"`
}

func (a *API) SetOpeningPlayers(ctx context.Context, inningsID string, players OpeningPlayers) error {
	if err := a.client.Put(ctx, fmt.Sprintf("/innings/%s", inningsID), players, nil); err != nil {
		return fmt.Errorf("setting opening players: %w", err)
	}
	return nil
}
