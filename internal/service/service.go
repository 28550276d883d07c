// Package service composes the REST API, the snapshot store and the
// scoring controller behind operator-facing operations that return
// rendered reports.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Atharve03/pitchside/internal/api/cricket"
	"github.com/Atharve03/pitchside/internal/models"
	"github.com/Atharve03/pitchside/internal/repository/memory"
	"github.com/Atharve03/pitchside/internal/scoring"
	"github.com/Atharve03/pitchside/internal/store"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// cacheMaxAge bounds how stale a cached list may be before a command
// handler refetches instead of trusting the pollers.
const cacheMaxAge = 30 * time.Second

type MatchService struct {
	api        *cricket.API
	repo       *memory.Repository
	store      *store.Store
	controller *scoring.Controller
}

func NewMatchService(api *cricket.API, repo *memory.Repository, st *store.Store, controller *scoring.Controller) *MatchService {
	return &MatchService{
		api:        api,
		repo:       repo,
		store:      st,
		controller: controller,
	}
}

// Store exposes the snapshot store to surfaces that subscribe directly.
func (s *MatchService) Store() *store.Store { return s.store }

// similarity is a normalized Levenshtein score in [0,1] used for
// resolving operator-typed names to entities.
func similarity(query, candidate string) float64 {
	query = strings.ToLower(strings.TrimSpace(query))
	candidate = strings.ToLower(candidate)
	if query == "" || candidate == "" {
		return 0
	}
	distance := fuzzy.LevenshteinDistance(query, candidate)
	maxLen := len(query)
	if len(candidate) > maxLen {
		maxLen = len(candidate)
	}
	return 1 - float64(distance)/float64(maxLen)
}

// bestIndex returns the index whose name scores highest above threshold,
// or -1 when nothing is close enough.
func bestIndex(query string, count int, name func(int) string, threshold float64) int {
	best := -1
	bestScore := threshold
	for i := 0; i < count; i++ {
		if sc := similarity(query, name(i)); sc > bestScore {
			bestScore = sc
			best = i
		}
	}
	return best
}

func (s *MatchService) teams(ctx context.Context) ([]models.Team, error) {
	teams, at := s.repo.Teams()
	if teams != nil && time.Since(at) <= cacheMaxAge {
		return teams, nil
	}
	teams, err := s.api.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching teams: %w", err)
	}
	s.repo.SaveTeams(teams)
	return teams, nil
}

func (s *MatchService) players(ctx context.Context) ([]models.Player, error) {
	players, at := s.repo.Players()
	if players != nil && time.Since(at) <= cacheMaxAge {
		return players, nil
	}
	players, err := s.api.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching players: %w", err)
	}
	s.repo.SavePlayers(players)
	return players, nil
}

// ResolveTeam finds a team by fuzzy name match.
func (s *MatchService) ResolveTeam(ctx context.Context, name string) (*models.Team, error) {
	teams, err := s.teams(ctx)
	if err != nil {
		return nil, err
	}
	idx := bestIndex(name, len(teams), func(i int) string { return teams[i].Name }, 0.6)
	if idx < 0 {
		idx = bestIndex(name, len(teams), func(i int) string { return teams[i].ShortName }, 0.6)
	}
	if idx < 0 {
		return nil, fmt.Errorf("team not found: %s", name)
	}
	return &teams[idx], nil
}

// ResolvePlayer finds a player by fuzzy name match across all teams.
func (s *MatchService) ResolvePlayer(ctx context.Context, name string) (*models.Player, error) {
	players, err := s.players(ctx)
	if err != nil {
		return nil, err
	}
	idx := bestIndex(name, len(players), func(i int) string { return players[i].Name }, 0.7)
	if idx < 0 {
		return nil, fmt.Errorf("player not found: %s", name)
	}
	return &players[idx], nil
}

// ResolveMatch accepts a match id or a fuzzy "Team1 vs Team2" label.
func (s *MatchService) ResolveMatch(ctx context.Context, ref string) (*models.Match, error) {
	matches, err := s.api.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching matches: %w", err)
	}
	for i := range matches {
		if matches[i].ID == ref {
			return &matches[i], nil
		}
	}
	idx := bestIndex(ref, len(matches), func(i int) string {
		return fmt.Sprintf("%s vs %s", matches[i].Team1.DisplayName(), matches[i].Team2.DisplayName())
	}, 0.5)
	if idx < 0 {
		return nil, fmt.Errorf("match not found: %s", ref)
	}
	return &matches[idx], nil
}
