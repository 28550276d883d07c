package service

import (
	"strings"
	"testing"

	"github.com/Atharve03/pitchside/internal/models"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		query, candidate string
		min, max         float64
	}{
		{"Mumbai Mavericks", "Mumbai Mavericks", 1, 1},
		{"mumbai mavericks", "Mumbai Mavericks", 1, 1},
		{"Mumbai", "Chennai Chargers", 0, 0.4},
		{"", "Mumbai Mavericks", 0, 0},
	}

	for _, tt := range tests {
		got := similarity(tt.query, tt.candidate)
		if got < tt.min || got > tt.max {
			t.Errorf("similarity(%q, %q) = %v, want in [%v, %v]",
				tt.query, tt.candidate, got, tt.min, tt.max)
		}
	}
}

func TestBestIndex(t *testing.T) {
	names := []string{"Virat Kohli", "Rohit Sharma", "Jasprit Bumrah"}
	name := func(i int) string { return names[i] }

	if got := bestIndex("kohli", len(names), name, 0.3); got != 0 {
		t.Errorf("bestIndex(kohli) = %d, want 0", got)
	}
	if got := bestIndex("zzzzzz", len(names), name, 0.6); got != -1 {
		t.Errorf("bestIndex(zzzzzz) = %d, want -1", got)
	}
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     string
		min, max int
		want     []string
	}{
		{"two of two", "Mumbai; MUM", 2, 4, []string{"Mumbai", "MUM"}},
		{"optional tail", "Mumbai;MUM;Rohit", 2, 4, []string{"Mumbai", "MUM", "Rohit"}},
		{"too few", "Mumbai", 2, 4, nil},
		{"too many", "a;b;c;d;e", 2, 4, nil},
		{"empty", "   ", 2, 4, nil},
		{"blank required part", "Mumbai;;x", 3, 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitArgs(tt.args, tt.min, tt.max)
			if len(got) != len(tt.want) {
				t.Fatalf("splitArgs(%q) = %v, want %v", tt.args, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("part %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseRuns(t *testing.T) {
	if n, err := ParseRuns(" 4 "); err != nil || n != 4 {
		t.Errorf("ParseRuns(4) = %d, %v", n, err)
	}
	for _, bad := range []string{"", "seven", "-1", "7"} {
		if _, err := ParseRuns(bad); err == nil {
			t.Errorf("ParseRuns(%q) did not fail", bad)
		}
	}
}

func TestParseExtra(t *testing.T) {
	tests := []struct {
		in      string
		want    models.ExtraKind
		wantErr bool
	}{
		{"wide", models.ExtraWide, false},
		{"wd", models.ExtraWide, false},
		{"no-ball", models.ExtraNoBall, false},
		{"lb", models.ExtraLegBye, false},
		{"overthrow", "", true},
	}

	for _, tt := range tests {
		got, err := parseExtra(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseExtra(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseExtra(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDismissal(t *testing.T) {
	if got, err := parseDismissal(""); err != nil || got != models.DismissalBowled {
		t.Errorf("parseDismissal(\"\") = %q, %v, want bowled", got, err)
	}
	if got, err := parseDismissal("run-out"); err != nil || got != models.DismissalRunOut {
		t.Errorf("parseDismissal(run-out) = %q, %v", got, err)
	}
	if _, err := parseDismissal("retired"); err == nil {
		t.Error("parseDismissal(retired) did not fail")
	}
}

func liveSnapshot() *models.LiveSnapshot {
	return &models.LiveSnapshot{
		Match: &models.Match{
			ID:     "m1",
			Team1:  &models.Team{Name: "Mumbai Mavericks", ShortName: "MUM"},
			Team2:  &models.Team{Name: "Chennai Chargers", ShortName: "CHE"},
			Venue:  "Wankhede",
			Format: models.FormatT20,
			Status: models.MatchLive,
		},
		CurrentInnings: &models.Innings{
			ID:             "in1",
			BattingTeam:    &models.Team{Name: "Mumbai Mavericks", ShortName: "MUM"},
			TotalRuns:      95,
			TotalWickets:   3,
			TotalBalls:     69,
			CurrentRunRate: 8.26,
			CurrentBatsmen: []models.Batter{
				{Player: &models.Player{Name: "R Sharma"}, Runs: 48, Balls: 30, Fours: 5, Sixes: 2, IsOnStrike: true},
				{Player: &models.Player{Name: "S Yadav"}, Runs: 21, Balls: 15},
			},
			CurrentBowler: &models.BowlerSpell{
				Player: &models.Player{Name: "R Jadeja"}, Balls: 15, Runs: 22, Wickets: 1,
			},
		},
		RecentBalls: []models.Ball{
			{RunsScored: 4},
			{WicketTaken: true, DismissalType: models.DismissalCaught},
			{Extras: 1, ExtraType: models.ExtraWide},
		},
	}
}

func TestRenderSnapshotLive(t *testing.T) {
	s := &MatchService{}
	got := s.RenderSnapshot(liveSnapshot())

	for _, want := range []string{
		"MUM vs CHE",
		"95/3",
		"Overs: 11.3 / 20",
		"CRR: 8.26",
		"R Sharma ⭐",
		"R Jadeja",
		"This over: 4 W 1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered snapshot missing %q:\n%s", want, got)
		}
	}
}

func TestRenderSnapshotInningsOver(t *testing.T) {
	snap := liveSnapshot()
	snap.CurrentInnings.TotalBalls = 120

	s := &MatchService{}
	got := s.RenderSnapshot(snap)

	if !strings.Contains(got, "INNINGS OVER") {
		t.Errorf("rendered snapshot missing innings-over banner:\n%s", got)
	}
	if !strings.Contains(got, "Final Score: 95/3") {
		t.Errorf("rendered snapshot missing final score:\n%s", got)
	}
}

func TestRenderSnapshotNotStarted(t *testing.T) {
	snap := liveSnapshot()
	snap.CurrentInnings = nil

	s := &MatchService{}
	got := s.RenderSnapshot(snap)

	if !strings.Contains(got, "Waiting for match to begin") {
		t.Errorf("rendered snapshot missing waiting message:\n%s", got)
	}
}

func TestRenderSnapshotNil(t *testing.T) {
	s := &MatchService{}
	if got := s.RenderSnapshot(nil); got != "Match not found" {
		t.Errorf("RenderSnapshot(nil) = %q", got)
	}
}
