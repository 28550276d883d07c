package memory

import (
	"testing"
	"time"

	"github.com/Atharve03/pitchside/internal/models"
)

func TestTeamsRoundTrip(t *testing.T) {
	repo := NewRepository()

	teams, at := repo.Teams()
	if teams != nil || !at.IsZero() {
		t.Errorf("fresh repository returned teams %v at %v", teams, at)
	}

	repo.SaveTeams([]models.Team{{ID: "t1", Name: "Mumbai Mavericks"}})
	teams, at = repo.Teams()
	if len(teams) != 1 || teams[0].ID != "t1" {
		t.Errorf("teams = %v", teams)
	}
	if at.IsZero() {
		t.Error("save did not stamp the cache time")
	}
}

func TestMarkAnomalyDeduplicates(t *testing.T) {
	repo := NewRepository()
	base := time.Date(2026, 8, 1, 14, 0, 0, 0, time.UTC)

	if !repo.MarkAnomaly(base) {
		t.Error("first anomaly not reported as new")
	}
	if repo.MarkAnomaly(base) {
		t.Error("same timestamp reported as new twice")
	}
	if repo.MarkAnomaly(base.Add(-time.Minute)) {
		t.Error("older anomaly reported as new")
	}
	if !repo.MarkAnomaly(base.Add(time.Minute)) {
		t.Error("newer anomaly not reported as new")
	}
}

func TestInsightsRoundTrip(t *testing.T) {
	repo := NewRepository()

	repo.SaveInsights(&models.LeagueInsights{TotalPlayers: 42})
	insights, at := repo.Insights()
	if insights == nil || insights.TotalPlayers != 42 {
		t.Errorf("insights = %+v", insights)
	}
	if at.IsZero() {
		t.Error("save did not stamp the cache time")
	}
}
