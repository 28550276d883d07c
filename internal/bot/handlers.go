package bot

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/Atharve03/pitchside/internal/models"
	"github.com/Atharve03/pitchside/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Handler struct {
	matchService *service.MatchService
	watching     atomic.Bool
}

func NewHandler(matchService *service.MatchService) *Handler {
	return &Handler{matchService: matchService}
}

const helpText = `Available commands:

*Browsing*
/matches - List matches
/teams - List teams
/players - List players with stats
/live <match> - Open a match's live scoreboard
/score - Show the current scoreboard
/watch - Relay live events to this chat
/unwatch - Stop relaying live events

*Scoring*
/openers striker;nonStriker;bowler - Set opening players
/runs <0-6> - Record runs off the bat
/extra <wide|noball|bye|legbye> [runs] - Record an extra
/wicket [dismissal] - Record a wicket

*Management*
/newteam name;shortName[;captain[;homeGround]]
/newplayer name;team;role[;battingStyle]
/newmatch team1;team2;venue[;format]
/delmatch <match> - Delete a match
/toss match;winner;bat|bowl - Start a match

*AI Insights*
/insights - League-wide AI dashboard
/predict <player> - Player form prediction
/recommend <team> [format] - Recommended playing XI
/anomalies - Anomaly report for the live match`

func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := update.Message.CommandArguments()
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome to PitchSide! Use /help to see available commands."
	case "help":
		msg.Text = helpText
	case "matches":
		h.handleMatches(ctx, &msg)
	case "teams":
		h.handleTeams(ctx, &msg)
	case "players":
		h.handlePlayers(ctx, &msg)
	case "live":
		h.handleLive(ctx, &msg, args)
	case "score":
		h.handleScore(&msg)
	case "watch":
		h.watching.Store(true)
		msg.Text = "👀 Watching. Live events will be relayed here."
	case "unwatch":
		h.watching.Store(false)
		msg.Text = "Stopped watching live events."
	case "openers":
		h.handleOpeners(ctx, &msg, args)
	case "runs":
		h.handleRuns(ctx, &msg, args)
	case "extra":
		h.handleExtra(ctx, &msg, args)
	case "wicket":
		h.handleWicket(ctx, &msg, args)
	case "newteam":
		h.handleNewTeam(ctx, &msg, args)
	case "newplayer":
		h.handleNewPlayer(ctx, &msg, args)
	case "newmatch":
		h.handleNewMatch(ctx, &msg, args)
	case "delmatch":
		h.handleDelMatch(ctx, &msg, args)
	case "toss":
		h.handleToss(ctx, &msg, args)
	case "insights":
		h.handleInsights(ctx, &msg)
	case "predict":
		h.handlePredict(ctx, &msg, args)
	case "recommend":
		h.handleRecommend(ctx, &msg, args)
	case "anomalies":
		h.handleAnomalies(ctx, &msg)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) handleMatches(ctx context.Context, msg *tgbotapi.MessageConfig) {
	report, err := h.matchService.GetMatches(ctx)
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching matches: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleTeams(ctx context.Context, msg *tgbotapi.MessageConfig) {
	report, err := h.matchService.GetTeams(ctx)
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching teams: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handlePlayers(ctx context.Context, msg *tgbotapi.MessageConfig) {
	report, err := h.matchService.GetPlayers(ctx)
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching players: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleLive(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a match. Usage: /live <match id or teams>"
		return
	}
	report, err := h.matchService.OpenLive(ctx, args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error opening live match: %v", err)
		return
	}
	if report == "" {
		// A newer /live superseded this one while it was loading.
		return
	}
	msg.Text = report
}

func (h *Handler) handleScore(msg *tgbotapi.MessageConfig) {
	report, err := h.matchService.LiveReport()
	if err != nil {
		msg.Text = fmt.Sprintf("Error: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleOpeners(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	parts := strings.Split(args, ";")
	if len(parts) != 3 {
		msg.Text = "Usage: /openers striker;nonStriker;bowler"
		return
	}
	result, err := h.matchService.SetOpeners(ctx,
		strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2]))
	if err != nil {
		msg.Text = fmt.Sprintf("Error setting openers: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleRuns(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	n, err := service.ParseRuns(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error: %v", err)
		return
	}
	result, err := h.matchService.ScoreRuns(ctx, n)
	if err != nil {
		msg.Text = fmt.Sprintf("Error recording runs: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleExtra(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		msg.Text = "Usage: /extra <wide|noball|bye|legbye> [runs]"
		return
	}
	runs := 1
	if len(fields) > 1 {
		n, err := service.ParseRuns(fields[1])
		if err != nil {
			msg.Text = fmt.Sprintf("Error: %v", err)
			return
		}
		runs = n
	}
	result, err := h.matchService.ScoreExtra(ctx, fields[0], runs)
	if err != nil {
		msg.Text = fmt.Sprintf("Error recording extra: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleWicket(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	result, err := h.matchService.ScoreWicket(ctx, args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error recording wicket: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleNewTeam(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	result, err := h.matchService.CreateTeam(ctx, args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleNewPlayer(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	result, err := h.matchService.CreatePlayer(ctx, args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleNewMatch(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	result, err := h.matchService.CreateMatch(ctx, args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleDelMatch(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a match. Usage: /delmatch <match id or teams>"
		return
	}
	result, err := h.matchService.DeleteMatch(ctx, args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error deleting match: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleToss(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	result, err := h.matchService.StartMatch(ctx, args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error starting match: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleInsights(ctx context.Context, msg *tgbotapi.MessageConfig) {
	report, err := h.matchService.Insights(ctx)
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching insights: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handlePredict(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a player name. Usage: /predict <player name>"
		return
	}
	report, err := h.matchService.PredictPlayer(ctx, args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching prediction: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleRecommend(ctx context.Context, msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a team name. Usage: /recommend <team name> [T20|ODI|Test]"
		return
	}
	name := args
	format := models.FormatT20
	if i := strings.LastIndex(args, " "); i > 0 {
		switch strings.ToUpper(strings.TrimSpace(args[i+1:])) {
		case "T20":
			name, format = args[:i], models.FormatT20
		case "ODI":
			name, format = args[:i], models.FormatODI
		case "TEST":
			name, format = args[:i], models.FormatTest
		}
	}
	report, err := h.matchService.RecommendXI(ctx, strings.TrimSpace(name), format)
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching recommendation: %v", err)
	} else {
		msg.Text = report
	}
}

func (h *Handler) handleAnomalies(ctx context.Context, msg *tgbotapi.MessageConfig) {
	report, err := h.matchService.Anomalies(ctx)
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching anomalies: %v", err)
	} else {
		msg.Text = report
	}
}
