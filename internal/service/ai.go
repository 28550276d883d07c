package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Atharve03/pitchside/internal/models"
)

// Anomalies fetches and renders the anomaly report for the held live
// match's current innings.
func (s *MatchService) Anomalies(ctx context.Context) (string, error) {
	report, err := s.FetchAnomalies(ctx)
	if err != nil {
		return "", err
	}
	return renderAnomalies(report), nil
}

// FetchAnomalies pulls the raw anomaly report for the held match. Used by
// both the command handler and the poller.
func (s *MatchService) FetchAnomalies(ctx context.Context) (*models.AnomalyReport, error) {
	snap := s.store.Snapshot()
	if snap == nil || snap.CurrentInnings == nil {
		return nil, errors.New("no live match loaded; use /live first")
	}
	report, err := s.api.DetectAnomalies(ctx, snap.MatchID(), snap.CurrentInnings.ID)
	if err != nil {
		return nil, fmt.Errorf("error fetching anomalies: %w", err)
	}
	return report, nil
}

// NewAnomalies filters a report down to anomalies not yet relayed,
// advancing the de-duplication marker.
func (s *MatchService) NewAnomalies(report *models.AnomalyReport) []models.Anomaly {
	var fresh []models.Anomaly
	for _, a := range report.Anomalies {
		if s.repo.MarkAnomaly(a.Timestamp) {
			fresh = append(fresh, a)
		}
	}
	return fresh
}

func renderAnomalies(report *models.AnomalyReport) string {
	var sb strings.Builder
	sb.WriteString("🤖 *Live Match Anomaly Detector*\n\n")

	snap := report.InningsSnapshot
	if snap.BattingTeam != "" {
		sb.WriteString(fmt.Sprintf("%s  %d/%d • Overs %s • RR %s\n\n",
			snap.BattingTeam, snap.Runs, snap.Wickets, snap.Overs, snap.RunRate))
	}

	if len(report.Anomalies) == 0 {
		sb.WriteString("✨ No anomalies detected - Match proceeding normally")
		return sb.String()
	}

	for _, a := range report.Anomalies {
		sb.WriteString(RenderAnomaly(a))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderAnomaly renders a single anomaly, also used by the poller relay.
func RenderAnomaly(a models.Anomaly) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s *%s* [%s]\n", severityIcon(a.Severity), a.Type, a.Severity))
	sb.WriteString(fmt.Sprintf("%s\n", a.Message))
	if a.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("💡 %s\n", a.Suggestion))
	}
	sb.WriteString(fmt.Sprintf("🎯 Confidence: %d%% • 🕐 %s\n", a.Confidence, a.Timestamp.Format(time.Kitchen)))
	return sb.String()
}

func severityIcon(severity models.AnomalySeverity) string {
	switch severity {
	case models.SeverityHigh:
		return "🚨"
	case models.SeverityWarning:
		return "⚠️"
	case models.SeverityInfo:
		return "ℹ️"
	default:
		return "📌"
	}
}

// PredictPlayer renders the AI form prediction for a player name.
func (s *MatchService) PredictPlayer(ctx context.Context, name string) (string, error) {
	player, err := s.ResolvePlayer(ctx, name)
	if err != nil {
		return "", err
	}
	prediction, err := s.api.PredictPlayer(ctx, player.ID)
	if err != nil {
		return "", fmt.Errorf("error fetching prediction: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🤖 *Prediction for %s*\n\n", player.Name))
	sb.WriteString(fmt.Sprintf("Predicted runs: %d\n", prediction.PredictedRuns))
	sb.WriteString(fmt.Sprintf("Predicted wickets: %d\n", prediction.PredictedWkts))
	if prediction.FormRating != "" {
		sb.WriteString(fmt.Sprintf("Form: %s\n", prediction.FormRating))
	}
	sb.WriteString(fmt.Sprintf("Confidence: %.0f%%\n", prediction.Confidence))
	if prediction.Recommendation != "" {
		sb.WriteString(fmt.Sprintf("\n💡 %s", prediction.Recommendation))
	}
	return sb.String(), nil
}

// RecommendXI renders the AI playing-eleven recommendation for a team.
func (s *MatchService) RecommendXI(ctx context.Context, teamName string, format models.MatchFormat) (string, error) {
	team, err := s.ResolveTeam(ctx, teamName)
	if err != nil {
		return "", err
	}
	rec, err := s.api.RecommendXI(ctx, team.ID, format)
	if err != nil {
		return "", fmt.Errorf("error fetching recommendation: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🤖 *Recommended XI for %s* (%s)\n\n", team.Name, format))
	for i, p := range rec.PlayingXI {
		sb.WriteString(fmt.Sprintf("%d. %s — %s\n", i+1, p.Name, p.Role))
	}
	if rec.Strategy != "" {
		sb.WriteString(fmt.Sprintf("\n📋 %s", rec.Strategy))
	}
	return sb.String(), nil
}

// Insights renders the league-wide AI insight dashboard, preferring the
// poller-maintained cache.
func (s *MatchService) Insights(ctx context.Context) (string, error) {
	insights, at := s.repo.Insights()
	if insights == nil || time.Since(at) > cacheMaxAge {
		fresh, err := s.api.LeagueInsights(ctx)
		if err != nil {
			return "", fmt.Errorf("error fetching insights: %w", err)
		}
		s.repo.SaveInsights(fresh)
		insights = fresh
	}

	var sb strings.Builder
	sb.WriteString("🤖 *AI Insights*\n\n")
	sb.WriteString(fmt.Sprintf("📊 Players: %d\n", insights.TotalPlayers))
	sb.WriteString(fmt.Sprintf("🏆 Teams: %d\n", insights.TotalTeams))
	sb.WriteString(fmt.Sprintf("🎯 Matches: %d\n", insights.TotalMatches))

	if len(insights.TopPerformers) > 0 {
		sb.WriteString("\n⭐ *Top Performers*\n")
		for i, p := range insights.TopPerformers {
			sb.WriteString(fmt.Sprintf("%d. %s (%s) — %d runs\n", i+1, p.Name, p.Role, p.Runs))
		}
	}
	return sb.String(), nil
}

// RefreshPlayers re-pulls the player list into the cache. Poller entry.
func (s *MatchService) RefreshPlayers(ctx context.Context) error {
	players, err := s.api.ListPlayers(ctx)
	if err != nil {
		return fmt.Errorf("error refreshing players: %w", err)
	}
	s.repo.SavePlayers(players)
	return nil
}

// RefreshInsights re-pulls the insight dashboard into the cache.
func (s *MatchService) RefreshInsights(ctx context.Context) error {
	insights, err := s.api.LeagueInsights(ctx)
	if err != nil {
		return fmt.Errorf("error refreshing insights: %w", err)
	}
	s.repo.SaveInsights(insights)
	return nil
}
