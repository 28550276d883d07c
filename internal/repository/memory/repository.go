package memory

import (
	"sync"
	"time"

	"github.com/Atharve03/pitchside/internal/models"
)

// Repository caches backend reads between polls so command handlers don't
// refetch lists the pollers just refreshed.
type Repository struct {
	mu sync.RWMutex

	teams   []models.Team
	teamsAt time.Time

	players   []models.Player
	playersAt time.Time

	insights   *models.LeagueInsights
	insightsAt time.Time

	lastAnomaly time.Time
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) SaveTeams(teams []models.Team) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams = teams
	r.teamsAt = time.Now()
}

func (r *Repository) Teams() ([]models.Team, time.Time) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.teams, r.teamsAt
}

func (r *Repository) SavePlayers(players []models.Player) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players = players
	r.playersAt = time.Now()
}

func (r *Repository) Players() ([]models.Player, time.Time) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.players, r.playersAt
}

func (r *Repository) SaveInsights(insights *models.LeagueInsights) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insights = insights
	r.insightsAt = time.Now()
}

func (r *Repository) Insights() (*models.LeagueInsights, time.Time) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.insights, r.insightsAt
}

// MarkAnomaly records that an anomaly with the given timestamp was relayed
// and reports whether it was new. Used to de-duplicate the anomaly poll.
func (r *Repository) MarkAnomaly(ts time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !ts.After(r.lastAnomaly) {
		return false
	}
	r.lastAnomaly = ts
	return true
}
