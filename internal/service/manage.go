package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Atharve03/pitchside/internal/api/cricket"
	"github.com/Atharve03/pitchside/internal/models"
)

// CreateTeam creates a team from "name;shortName[;captain[;homeGround]]".
func (s *MatchService) CreateTeam(ctx context.Context, args string) (string, error) {
	parts := splitArgs(args, 2, 4)
	if parts == nil {
		return "", fmt.Errorf("usage: /newteam name;shortName[;captain[;homeGround]]")
	}
	input := cricket.TeamInput{Name: parts[0], ShortName: parts[1]}
	if len(parts) > 2 {
		input.Captain = parts[2]
	}
	if len(parts) > 3 {
		input.HomeGround = parts[3]
	}

	team, err := s.api.CreateTeam(ctx, input)
	if err != nil {
		return "", fmt.Errorf("error creating team: %w", err)
	}
	s.repo.SaveTeams(nil)
	return fmt.Sprintf("✅ Team *%s* (%s) created", team.Name, team.ShortName), nil
}

// CreatePlayer creates a player from "name;team;role[;battingStyle]".
func (s *MatchService) CreatePlayer(ctx context.Context, args string) (string, error) {
	parts := splitArgs(args, 3, 4)
	if parts == nil {
		return "", fmt.Errorf("usage: /newplayer name;team;role[;battingStyle]")
	}
	team, err := s.ResolveTeam(ctx, parts[1])
	if err != nil {
		return "", err
	}
	role, err := parseRole(parts[2])
	if err != nil {
		return "", err
	}
	input := cricket.PlayerInput{Name: parts[0], TeamID: team.ID, Role: role}
	if len(parts) > 3 {
		input.BattingStyle = parts[3]
	}

	player, err := s.api.CreatePlayer(ctx, input)
	if err != nil {
		return "", fmt.Errorf("error creating player: %w", err)
	}
	s.repo.SavePlayers(nil)
	return fmt.Sprintf("✅ Player *%s* added to %s", player.Name, team.Name), nil
}

func parseRole(role string) (models.PlayerRole, error) {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case "batsman", "bat":
		return models.RoleBatsman, nil
	case "bowler", "bowl":
		return models.RoleBowler, nil
	case "allrounder", "all-rounder", "all_rounder", "ar":
		return models.RoleAllRounder, nil
	case "wicketkeeper", "wicket-keeper", "wicket_keeper", "wk":
		return models.RoleWicketKeeper, nil
	default:
		return "", fmt.Errorf("unknown role '%s' (batsman, bowler, allrounder, wicketkeeper)", role)
	}
}

// CreateMatch creates a fixture from "team1;team2;venue[;format]". Both
// teams must differ; that is checked locally before any request.
func (s *MatchService) CreateMatch(ctx context.Context, args string) (string, error) {
	parts := splitArgs(args, 3, 4)
	if parts == nil {
		return "", fmt.Errorf("usage: /newmatch team1;team2;venue[;format]")
	}
	team1, err := s.ResolveTeam(ctx, parts[0])
	if err != nil {
		return "", err
	}
	team2, err := s.ResolveTeam(ctx, parts[1])
	if err != nil {
		return "", err
	}
	if team1.ID == team2.ID {
		return "", fmt.Errorf("please select different teams")
	}

	format := models.FormatT20
	if len(parts) > 3 {
		switch strings.ToUpper(strings.TrimSpace(parts[3])) {
		case "T20":
			format = models.FormatT20
		case "ODI":
			format = models.FormatODI
		case "TEST":
			format = models.FormatTest
		default:
			return "", fmt.Errorf("unknown format '%s' (T20, ODI, Test)", parts[3])
		}
	}

	match, err := s.api.CreateMatch(ctx, cricket.NewMatch{
		Team1ID:         team1.ID,
		Team2ID:         team2.ID,
		Venue:           parts[2],
		MatchDate:       time.Now(),
		Format:          format,
		OversPerInnings: format.OversPerInnings(),
	})
	if err != nil {
		return "", fmt.Errorf("error creating match: %w", err)
	}

	return fmt.Sprintf("✅ Match created: *%s vs %s* at %s\nid: `%s`\nStart it with /toss",
		team1.Name, team2.Name, match.Venue, match.ID), nil
}

// DeleteMatch removes a fixture.
func (s *MatchService) DeleteMatch(ctx context.Context, ref string) (string, error) {
	m, err := s.ResolveMatch(ctx, ref)
	if err != nil {
		return "", err
	}
	if err := s.api.DeleteMatch(ctx, m.ID); err != nil {
		return "", err
	}
	return fmt.Sprintf("🗑 Match *%s vs %s* deleted", m.Team1.DisplayName(), m.Team2.DisplayName()), nil
}

// StartMatch submits the toss from "match;winner;bat|bowl" and transitions
// the fixture to live.
func (s *MatchService) StartMatch(ctx context.Context, args string) (string, error) {
	parts := splitArgs(args, 3, 3)
	if parts == nil {
		return "", fmt.Errorf("usage: /toss match;tossWinner;bat|bowl")
	}
	m, err := s.ResolveMatch(ctx, parts[0])
	if err != nil {
		return "", err
	}
	winner, err := s.ResolveTeam(ctx, parts[1])
	if err != nil {
		return "", err
	}
	decision := strings.ToLower(strings.TrimSpace(parts[2]))
	if decision != "bat" && decision != "bowl" {
		return "", fmt.Errorf("toss decision must be 'bat' or 'bowl'")
	}

	started, err := s.api.StartMatch(ctx, m.ID, cricket.TossCall{
		TossWinnerID: winner.ID,
		TossDecision: decision,
	})
	if err != nil {
		return "", fmt.Errorf("error starting match: %w", err)
	}

	return fmt.Sprintf("🚀 Match started: *%s vs %s*\n%s won the toss and chose to %s\nOpen it with /live %s",
		started.Team1.DisplayName(), started.Team2.DisplayName(), winner.Name, decision, started.ID), nil
}

// splitArgs splits a semicolon-separated argument string, trimming each
// part, and returns nil unless the count is within [min,max].
func splitArgs(args string, min, max int) []string {
	if strings.TrimSpace(args) == "" {
		return nil
	}
	raw := strings.Split(args, ";")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		parts = append(parts, strings.TrimSpace(p))
	}
	if len(parts) < min || len(parts) > max {
		return nil
	}
	for i := 0; i < min; i++ {
		if parts[i] == "" {
			return nil
		}
	}
	return parts
}

// ParseRuns parses the argument of /runs.
func ParseRuns(args string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil || n < 0 || n > 6 {
		return 0, fmt.Errorf("runs must be a number between 0 and 6")
	}
	return n, nil
}
