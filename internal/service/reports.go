package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Atharve03/pitchside/internal/models"
	"github.com/Atharve03/pitchside/internal/score"
)

// GetMatches renders the fixture list.
func (s *MatchService) GetMatches(ctx context.Context) (string, error) {
	matches, err := s.api.ListMatches(ctx)
	if err != nil {
		return "", fmt.Errorf("error fetching matches: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("🏏 *Matches*\n\n")
	if len(matches) == 0 {
		sb.WriteString("No matches yet. Create one with /newmatch.")
		return sb.String(), nil
	}

	for _, m := range matches {
		sb.WriteString(fmt.Sprintf("*%s vs %s*\n", m.Team1.DisplayName(), m.Team2.DisplayName()))
		sb.WriteString(fmt.Sprintf("   %s • %d overs • %s\n", m.Format, m.OversCap(), statusBadge(m.Status)))
		if m.Venue != "" {
			sb.WriteString(fmt.Sprintf("   📍 %s\n", m.Venue))
		}
		if m.Status == models.MatchCompleted && m.Result != "" {
			sb.WriteString(fmt.Sprintf("   🏆 %s\n", m.Result))
		}
		sb.WriteString(fmt.Sprintf("   id: `%s`\n\n", m.ID))
	}

	return sb.String(), nil
}

func statusBadge(status models.MatchStatus) string {
	switch status {
	case models.MatchLive:
		return "● LIVE"
	case models.MatchCompleted:
		return "✅ Completed"
	case models.MatchAbandoned:
		return "🌧 Abandoned"
	default:
		return "⏳ Upcoming"
	}
}

// GetTeams renders the team list.
func (s *MatchService) GetTeams(ctx context.Context) (string, error) {
	teams, err := s.teams(ctx)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("🏆 *Teams*\n\n")
	if len(teams) == 0 {
		sb.WriteString("No teams yet. Create one with /newteam.")
		return sb.String(), nil
	}
	for _, t := range teams {
		sb.WriteString(fmt.Sprintf("*%s* (%s)\n", t.Name, t.ShortName))
		if t.Captain != "" {
			sb.WriteString(fmt.Sprintf("   Captain: %s\n", t.Captain))
		}
		if t.HomeGround != "" {
			sb.WriteString(fmt.Sprintf("   Home: %s\n", t.HomeGround))
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// GetPlayers renders the player list with aggregate stats.
func (s *MatchService) GetPlayers(ctx context.Context) (string, error) {
	players, err := s.players(ctx)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("👥 *Players*\n\n")
	if len(players) == 0 {
		sb.WriteString("No players yet. Create one with /newplayer.")
		return sb.String(), nil
	}
	for _, p := range players {
		sb.WriteString(fmt.Sprintf("*%s* — %s\n", p.Name, roleLabel(p.Role)))
		sb.WriteString(fmt.Sprintf("   %d matches • %d runs (SR %s) • %d wkts (econ %s)\n\n",
			p.Stats.Matches, p.Stats.Runs, score.FormatRunRate(p.Stats.StrikeRate),
			p.Stats.Wickets, score.FormatRunRate(p.Stats.Economy)))
	}
	return sb.String(), nil
}

func roleLabel(role models.PlayerRole) string {
	switch role {
	case models.RoleBatsman:
		return "Batsman"
	case models.RoleBowler:
		return "Bowler"
	case models.RoleAllRounder:
		return "All-rounder"
	case models.RoleWicketKeeper:
		return "Wicket-keeper"
	default:
		return string(role)
	}
}

// RenderSnapshot renders the live scoreboard for a snapshot. All derived
// quantities come from the score package; nothing is cached here.
func (s *MatchService) RenderSnapshot(snap *models.LiveSnapshot) string {
	if snap == nil || snap.Match == nil {
		return "Match not found"
	}
	m := snap.Match

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s vs %s* %s\n",
		m.Team1.DisplayName(), m.Team2.DisplayName(), statusBadge(m.Status)))
	venue := m.Venue
	if venue == "" {
		venue = "Venue TBD"
	}
	sb.WriteString(fmt.Sprintf("📍 %s • 🏏 %s • %d overs\n\n", venue, m.Format, m.OversCap()))

	if m.Status == models.MatchCompleted {
		writeResult(&sb, m)
	}

	in := snap.CurrentInnings
	if in == nil {
		sb.WriteString("⏳ Match has not started yet. Waiting for match to begin...")
		return sb.String()
	}

	if score.InningsOver(in.TotalWickets, in.TotalBalls, m.OversCap()) {
		writeInningsOver(&sb, in, m)
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("🏏 *%s*  %d/%d\n", in.BattingTeam.DisplayName(), in.TotalRuns, in.TotalWickets))
	sb.WriteString(fmt.Sprintf("📊 Overs: %s / %d\n", score.Overs(in.TotalBalls), m.OversCap()))
	sb.WriteString(fmt.Sprintf("⚡ CRR: %s\n", score.FormatRunRate(in.CurrentRunRate)))

	if len(in.CurrentBatsmen) > 0 {
		sb.WriteString("\n👥 *Batters*\n")
		for _, b := range in.CurrentBatsmen {
			name := "Unknown"
			if b.Player != nil {
				name = b.Player.Name
			}
			strike := ""
			if b.IsOnStrike {
				strike = " ⭐"
			}
			sb.WriteString(fmt.Sprintf("%s%s  %d (%d)", name, strike, b.Runs, b.Balls))
			if b.Fours > 0 {
				sb.WriteString(fmt.Sprintf(" | 4s: %d", b.Fours))
			}
			if b.Sixes > 0 {
				sb.WriteString(fmt.Sprintf(" | 6s: %d", b.Sixes))
			}
			sb.WriteString("\n")
		}
	}

	if in.CurrentBowler != nil && in.CurrentBowler.Player != nil {
		bw := in.CurrentBowler
		sb.WriteString(fmt.Sprintf("\n🎯 *Bowler*\n%s  %s - %d runs / %d wickets\n",
			bw.Player.Name, score.Overs(bw.Balls), bw.Runs, bw.Wickets))
	}

	if len(snap.RecentBalls) > 0 {
		sb.WriteString("\n🔄 This over: ")
		marks := make([]string, 0, len(snap.RecentBalls))
		for _, b := range snap.RecentBalls {
			if b.WicketTaken {
				marks = append(marks, "W")
			} else {
				marks = append(marks, fmt.Sprintf("%d", b.TotalRuns()))
			}
		}
		sb.WriteString(strings.Join(marks, " "))
		sb.WriteString("\n")
	}

	return sb.String()
}

func writeResult(sb *strings.Builder, m *models.Match) {
	sb.WriteString("🏆 *MATCH COMPLETED*\n")
	if m.Winner != nil {
		sb.WriteString(fmt.Sprintf("🎉 Winner: %s\n", m.Winner.Name))
	}
	if m.Result != "" {
		sb.WriteString(fmt.Sprintf("📊 %s\n", m.Result))
	}
	if m.Team1FinalScore != "" || m.Team2FinalScore != "" {
		sb.WriteString(fmt.Sprintf("📋 %s: %s • %s: %s\n",
			m.Team1.DisplayName(), finalScore(m.Team1FinalScore),
			m.Team2.DisplayName(), finalScore(m.Team2FinalScore)))
	}
	if m.ManOfTheMatch != "" {
		sb.WriteString(fmt.Sprintf("⭐ Man of the Match: %s\n", m.ManOfTheMatch))
	}
	sb.WriteString("\n")
}

func finalScore(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func writeInningsOver(sb *strings.Builder, in *models.Innings, m *models.Match) {
	sb.WriteString("⚠️ *INNINGS OVER*\n")
	if in.TotalWickets >= 10 {
		sb.WriteString("🏏 All Out - 10 Wickets Down\n")
	} else {
		sb.WriteString(fmt.Sprintf("⏱ Overs Completed - %d Overs\n", m.OversCap()))
	}
	sb.WriteString(fmt.Sprintf("\n*%s*  Final Score: %d/%d\n",
		in.BattingTeam.DisplayName(), in.TotalRuns, in.TotalWickets))
	sb.WriteString(fmt.Sprintf("Overs: %s • Run Rate: %s\n",
		score.Overs(in.TotalBalls), score.FormatRunRate(in.CurrentRunRate)))

	switch m.Status {
	case models.MatchCompleted:
		sb.WriteString("\n✅ Match has ended. Check the final result above.\n")
	case models.MatchLive:
		sb.WriteString("\n⏳ Waiting for next innings...\n")
	}
}
