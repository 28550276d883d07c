package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Atharve03/pitchside/internal/models"
	"github.com/Atharve03/pitchside/internal/store"
)

// OpenLive loads the live view for a match reference and subscribes the
// push channel to it. Returns the rendered scoreboard.
func (s *MatchService) OpenLive(ctx context.Context, ref string) (string, error) {
	m, err := s.ResolveMatch(ctx, ref)
	if err != nil {
		return "", err
	}

	snap, err := s.store.Load(ctx, m.ID)
	if err != nil {
		if errors.Is(err, store.ErrSuperseded) {
			return "", nil
		}
		return "", fmt.Errorf("error loading live match: %w", err)
	}
	return s.RenderSnapshot(snap), nil
}

// CloseLive releases the live view and its push subscription.
func (s *MatchService) CloseLive() {
	s.store.Close()
}

// LiveReport renders the currently held snapshot.
func (s *MatchService) LiveReport() (string, error) {
	snap := s.store.Snapshot()
	if snap == nil {
		return "", errors.New("no live match loaded; use /live first")
	}
	return s.RenderSnapshot(snap), nil
}

// SetOpeners resolves the three names against the batting and bowling
// rosters and establishes them through the controller.
func (s *MatchService) SetOpeners(ctx context.Context, strikerName, nonStrikerName, bowlerName string) (string, error) {
	snap := s.store.Snapshot()
	if snap == nil || snap.CurrentInnings == nil {
		return "", errors.New("no live match loaded; use /live first")
	}
	in := snap.CurrentInnings
	if in.BattingTeam == nil || in.BowlingTeam == nil {
		return "", errors.New("innings teams not available yet")
	}

	batting, err := s.api.PlayersByTeam(ctx, in.BattingTeam.ID)
	if err != nil {
		return "", fmt.Errorf("error fetching batting roster: %w", err)
	}
	bowling, err := s.api.PlayersByTeam(ctx, in.BowlingTeam.ID)
	if err != nil {
		return "", fmt.Errorf("error fetching bowling roster: %w", err)
	}

	striker := pickPlayer(strikerName, batting)
	nonStriker := pickPlayer(nonStrikerName, batting)
	bowler := pickPlayer(bowlerName, bowling)
	if striker == nil {
		return "", fmt.Errorf("no batter found matching '%s'", strikerName)
	}
	if nonStriker == nil {
		return "", fmt.Errorf("no batter found matching '%s'", nonStrikerName)
	}
	if bowler == nil {
		return "", fmt.Errorf("no bowler found matching '%s'", bowlerName)
	}

	if err := s.controller.SetOpeningPlayers(ctx, striker.ID, nonStriker.ID, bowler.ID); err != nil {
		return "", err
	}

	return fmt.Sprintf("✅ Opening players set\n⭐ Striker: %s\nNon-striker: %s\n🎯 Bowler: %s",
		striker.Name, nonStriker.Name, bowler.Name), nil
}

func pickPlayer(name string, roster []models.Player) *models.Player {
	idx := bestIndex(name, len(roster), func(i int) string { return roster[i].Name }, 0.6)
	if idx < 0 {
		return nil
	}
	return &roster[idx]
}

// ScoreRuns records n runs off the bat.
func (s *MatchService) ScoreRuns(ctx context.Context, n int) (string, error) {
	if err := s.controller.RecordRuns(ctx, n); err != nil {
		return "", err
	}
	plural := "s"
	if n == 1 {
		plural = ""
	}
	return fmt.Sprintf("✅ %d run%s added", n, plural), nil
}

// ScoreExtra records an extra of the given kind.
func (s *MatchService) ScoreExtra(ctx context.Context, kind string, n int) (string, error) {
	extra, err := parseExtra(kind)
	if err != nil {
		return "", err
	}
	if n < 1 {
		n = 1
	}
	if err := s.controller.RecordExtra(ctx, extra, n); err != nil {
		return "", err
	}
	return fmt.Sprintf("✅ %d %s added", n, extra), nil
}

func parseExtra(kind string) (models.ExtraKind, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "wide", "wd":
		return models.ExtraWide, nil
	case "noball", "no-ball", "nb":
		return models.ExtraNoBall, nil
	case "bye", "b":
		return models.ExtraBye, nil
	case "legbye", "leg-bye", "lb":
		return models.ExtraLegBye, nil
	default:
		return "", fmt.Errorf("unknown extra '%s' (wide, noball, bye, legbye)", kind)
	}
}

// ScoreWicket records the fall of the striker's wicket.
func (s *MatchService) ScoreWicket(ctx context.Context, dismissal string) (string, error) {
	kind, err := parseDismissal(dismissal)
	if err != nil {
		return "", err
	}
	if err := s.controller.RecordWicket(ctx, kind); err != nil {
		return "", err
	}
	return "🏏 Wicket!", nil
}

func parseDismissal(dismissal string) (models.Dismissal, error) {
	switch strings.ToLower(strings.TrimSpace(dismissal)) {
	case "":
		return models.DismissalBowled, nil
	case "bowled":
		return models.DismissalBowled, nil
	case "caught":
		return models.DismissalCaught, nil
	case "lbw":
		return models.DismissalLBW, nil
	case "runout", "run-out", "run_out":
		return models.DismissalRunOut, nil
	case "stumped":
		return models.DismissalStumped, nil
	case "hitwicket", "hit-wicket", "hit_wicket":
		return models.DismissalHitWicket, nil
	default:
		return "", fmt.Errorf("unknown dismissal '%s'", dismissal)
	}
}
