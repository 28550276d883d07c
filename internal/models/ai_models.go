package models

import "time"

type AnomalySeverity string

const (
	SeverityHigh    AnomalySeverity = "HIGH"
	SeverityWarning AnomalySeverity = "WARNING"
	SeverityInfo    AnomalySeverity = "INFO"
)

type Anomaly struct {
	Type       string          `json:"type"`
	Severity   AnomalySeverity `json:"severity"`
	Message    string          `json:"message"`
	Suggestion string          `json:"suggestion"`
	Confidence int             `json:"confidence"`
	Timestamp  time.Time       `json:"timestamp"`
}

type InningsSnapshot struct {
	Runs        int    `json:"runs"`
	Wickets     int    `json:"wickets"`
	Overs       string `json:"overs"`
	RunRate     string `json:"runRate"`
	BattingTeam string `json:"battingTeam"`
}

type AnomalyReport struct {
	Anomalies       []Anomaly       `json:"anomalies"`
	InningsSnapshot InningsSnapshot `json:"inningsSnapshot"`
}

type PlayerPrediction struct {
	PlayerName     string  `json:"playerName"`
	PredictedRuns  int     `json:"predictedRuns"`
	PredictedWkts  int     `json:"predictedWickets"`
	FormRating     string  `json:"formRating"`
	Confidence     float64 `json:"confidence"`
	Recommendation string  `json:"recommendation"`
}

type RecommendedPlayer struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Reason   string `json:"reason"`
}

type TeamRecommendation struct {
	TeamName    string              `json:"teamName"`
	MatchFormat string              `json:"matchFormat"`
	PlayingXI   []RecommendedPlayer `json:"playingXI"`
	Strategy    string              `json:"strategy"`
}

type TopPerformer struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Runs int    `json:"runs"`
}

type LeagueInsights struct {
	TotalPlayers  int            `json:"totalPlayers"`
	TotalTeams    int            `json:"totalTeams"`
	TotalMatches  int            `json:"totalMatches"`
	TopPerformers []TopPerformer `json:"topPerformers"`
}
