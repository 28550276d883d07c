package models

import "time"

type MatchStatus string

const (
	MatchUpcoming  MatchStatus = "upcoming"
	MatchLive      MatchStatus = "live"
	MatchCompleted MatchStatus = "completed"
	MatchAbandoned MatchStatus = "abandoned"
)

type MatchFormat string

const (
	FormatT20  MatchFormat = "T20"
	FormatODI  MatchFormat = "ODI"
	FormatTest MatchFormat = "Test"
)

// OversPerInnings returns the fixed overs cap for a format. Test matches
// are effectively uncapped; the server ends those innings by declaration.
func (f MatchFormat) OversPerInnings() int {
	switch f {
	case FormatT20:
		return 20
	case FormatODI:
		return 50
	default:
		return 0
	}
}

type ExtraKind string

const (
	ExtraWide   ExtraKind = "wide"
	ExtraNoBall ExtraKind = "noball"
	ExtraBye    ExtraKind = "bye"
	ExtraLegBye ExtraKind = "legbye"
)

type Dismissal string

const (
	DismissalBowled    Dismissal = "bowled"
	DismissalCaught    Dismissal = "caught"
	DismissalLBW       Dismissal = "lbw"
	DismissalRunOut    Dismissal = "run_out"
	DismissalStumped   Dismissal = "stumped"
	DismissalHitWicket Dismissal = "hit_wicket"
)

type PlayerRole string

const (
	RoleBatsman      PlayerRole = "batsman"
	RoleBowler       PlayerRole = "bowler"
	RoleAllRounder   PlayerRole = "all_rounder"
	RoleWicketKeeper PlayerRole = "wicket_keeper"
)

type Team struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	ShortName  string `json:"shortName"`
	Captain    string `json:"captain,omitempty"`
	Coach      string `json:"coach,omitempty"`
	HomeGround string `json:"homeGround,omitempty"`
}

// DisplayName prefers the short name, falling back to the full one.
func (t *Team) DisplayName() string {
	if t == nil {
		return "TBD"
	}
	if t.ShortName != "" {
		return t.ShortName
	}
	return t.Name
}

type PlayerStats struct {
	Matches    int     `json:"matches"`
	Runs       int     `json:"runs"`
	Average    float64 `json:"average"`
	StrikeRate float64 `json:"strikeRate"`
	Wickets    int     `json:"wickets"`
	Economy    float64 `json:"economy"`
}

type Player struct {
	ID           string      `json:"_id"`
	Name         string      `json:"name"`
	TeamID       string      `json:"team"`
	JerseyNumber int         `json:"jerseyNumber,omitempty"`
	Role         PlayerRole  `json:"role"`
	BattingStyle string      `json:"battingStyle,omitempty"`
	BowlingStyle string      `json:"bowlingStyle,omitempty"`
	Stats        PlayerStats `json:"stats"`
}

type Match struct {
	ID              string      `json:"_id"`
	Team1           *Team       `json:"team1"`
	Team2           *Team       `json:"team2"`
	Venue           string      `json:"venue,omitempty"`
	MatchDate       time.Time   `json:"matchDate"`
	Format          MatchFormat `json:"matchType"`
	OversPerInnings int         `json:"oversPerInnings"`
	Status          MatchStatus `json:"status"`

	TossWinnerID string `json:"tossWinner,omitempty"`
	TossDecision string `json:"tossDecision,omitempty"`

	Winner          *Team  `json:"winner,omitempty"`
	Result          string `json:"result,omitempty"`
	Team1FinalScore string `json:"team1FinalScore,omitempty"`
	Team2FinalScore string `json:"team2FinalScore,omitempty"`
	ManOfTheMatch   string `json:"manOfTheMatch,omitempty"`
}

// OversCap resolves the overs-per-innings for this match, preferring the
// explicit field and falling back to the format default.
func (m *Match) OversCap() int {
	if m.OversPerInnings > 0 {
		return m.OversPerInnings
	}
	return m.Format.OversPerInnings()
}

// Batter is one of the two current batters in an innings. Exactly one of
// the pair is on strike at any time.
type Batter struct {
	Player     *Player `json:"player"`
	Runs       int     `json:"runs"`
	Balls      int     `json:"balls"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
	IsOnStrike bool    `json:"isOnStrike"`
	IsOut      bool    `json:"isOut"`
}

// BowlerSpell tracks the current bowler's figures for this spell.
type BowlerSpell struct {
	Player  *Player `json:"player"`
	Balls   int     `json:"balls"`
	Runs    int     `json:"runs"`
	Wickets int     `json:"wickets"`
}

type Innings struct {
	ID             string       `json:"_id"`
	BattingTeam    *Team        `json:"battingTeam"`
	BowlingTeam    *Team        `json:"bowlingTeam"`
	TotalRuns      int          `json:"totalRuns"`
	TotalWickets   int          `json:"totalWickets"`
	TotalBalls     int          `json:"totalBalls"`
	CurrentRunRate float64      `json:"currentRunRate"`
	CurrentBatsmen []Batter     `json:"currentBatsmen"`
	CurrentBowler  *BowlerSpell `json:"currentBowler"`
}

// Striker returns the on-strike batter, or nil if none is set.
func (i *Innings) Striker() *Batter {
	for idx := range i.CurrentBatsmen {
		if i.CurrentBatsmen[idx].IsOnStrike {
			return &i.CurrentBatsmen[idx]
		}
	}
	return nil
}

// NonStriker returns the batter not on strike, or nil if none is set.
func (i *Innings) NonStriker() *Batter {
	for idx := range i.CurrentBatsmen {
		if !i.CurrentBatsmen[idx].IsOnStrike {
			return &i.CurrentBatsmen[idx]
		}
	}
	return nil
}

// Ball is the immutable record of one delivery in the recent-balls window.
type Ball struct {
	RunsScored    int       `json:"runsScored"`
	Extras        int       `json:"extras"`
	ExtraType     ExtraKind `json:"extraType,omitempty"`
	WicketTaken   bool      `json:"wicketTaken"`
	DismissalType Dismissal `json:"dismissalType,omitempty"`
}

// TotalRuns is what the delivery added to the innings total.
func (b Ball) TotalRuns() int {
	return b.RunsScored + b.Extras
}

// LiveSnapshot is the server's current view of a live match, as returned
// by the live endpoint and the push channel. Revision increases with every
// server-side mutation; zero means the backend predates sequencing.
type LiveSnapshot struct {
	Match          *Match   `json:"match"`
	CurrentInnings *Innings `json:"currentInnings"`
	RecentBalls    []Ball   `json:"recentBalls"`
	Revision       uint64   `json:"revision,omitempty"`
}

// MatchID returns the identity of the match this snapshot belongs to.
func (s *LiveSnapshot) MatchID() string {
	if s == nil || s.Match == nil {
		return ""
	}
	return s.Match.ID
}
