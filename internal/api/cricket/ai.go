package cricket

import (
	"context"
	"fmt"

	"github.com/Atharve03/pitchside/internal/models"
)

// DetectAnomalies asks the backend's anomaly detector for the current
// innings of a live match.
func (a *API) DetectAnomalies(ctx context.Context, matchID, inningsID string) (*models.AnomalyReport, error) {
	var resp struct {
		AnomalyReport models.AnomalyReport `json:"anomalyReport"`
	}
	endpoint := fmt.Sprintf("/api/ai/detect-anomalies/%s/%s", matchID, inningsID)
	if err := a.client.Get(ctx, endpoint, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching anomalies: %w", err)
	}
	return &resp.AnomalyReport, nil
}

func (a *API) PredictPlayer(ctx context.Context, playerID string) (*models.PlayerPrediction, error) {
	var resp struct {
		Prediction models.PlayerPrediction `json:"prediction"`
	}
	endpoint := fmt.Sprintf("/api/ai/predict-player/%s", playerID)
	if err := a.client.Get(ctx, endpoint, nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching player prediction: %w", err)
	}
	return &resp.Prediction, nil
}

// RecommendXI asks for a suggested playing eleven for a team and format.
func (a *API) RecommendXI(ctx context.Context, teamID string, format models.MatchFormat) (*models.TeamRecommendation, error) {
	body := struct {
		TeamID      string             `json:"teamId"`
		MatchFormat models.MatchFormat `json:"matchFormat"`
	}{TeamID: teamID, MatchFormat: format}

	var resp struct {
		Recommendation models.TeamRecommendation `json:"recommendation"`
	}
	if err := a.client.Post(ctx, "/api/ai/recommend-team-xi", body, &resp); err != nil {
		return nil, fmt.Errorf("fetching team recommendation: %w", err)
	}
	return &resp.Recommendation, nil
}

func (a *API) LeagueInsights(ctx context.Context) (*models.LeagueInsights, error) {
	var resp struct {
		Insights models.LeagueInsights `json:"insights"`
	}
	if err := a.client.Get(ctx, "/ai/insights", nil, &resp); err != nil {
		return nil, fmt.Errorf("fetching insights: %w", err)
	}
	return &resp.Insights, nil
}
