// Package scoring gates and serializes the operator's scoring actions. It
// never mutates the scoreboard locally: every action is one update request
// followed by a snapshot refresh, so the displayed state is always
// server-accepted history.
package scoring

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/Atharve03/pitchside/internal/api/cricket"
	"github.com/Atharve03/pitchside/internal/models"
	"github.com/Atharve03/pitchside/internal/score"
)

var (
	// ErrMissingParticipants is returned when the snapshot lacks a striker,
	// non-striker or bowler required for the action. Never hits the network.
	ErrMissingParticipants = errors.New("striker, non-striker and bowler must be set")

	// ErrActionInProgress rejects an action while another is in flight.
	// Actions are never queued, so delivery records cannot reorder.
	ErrActionInProgress = errors.New("another scoring action is in progress")

	// ErrInningsClosed rejects any action once the innings is over.
	ErrInningsClosed = errors.New("innings is over")

	// ErrInvalidSelection rejects an opening-player selection before any
	// request is made (empty id, or striker equals non-striker).
	ErrInvalidSelection = errors.New("invalid player selection")

	// ErrPlayersAlreadySet rejects opening-player selection outside the
	// awaiting-selection state.
	ErrPlayersAlreadySet = errors.New("opening players are already set")
)

// State is the controller's position in the scoring lifecycle, derived
// entirely from the held snapshot.
type State int

const (
	// StateAwaitingPlayers: the innings has no current batters or bowler;
	// the operator must pick them before scoring.
	StateAwaitingPlayers State = iota
	// StateScoring: both batters and a bowler are set.
	StateScoring
	// StateInningsOver: wickets or overs exhausted; terminal.
	StateInningsOver
)

func (s State) String() string {
	switch s {
	case StateAwaitingPlayers:
		return "awaiting players"
	case StateScoring:
		return "scoring"
	case StateInningsOver:
		return "innings over"
	default:
		return "unknown"
	}
}

// Submitter issues the two scoring mutations the backend accepts.
type Submitter interface {
	SubmitDelivery(ctx context.Context, matchID string, d cricket.Delivery) (*models.LiveSnapshot, error)
	SetOpeningPlayers(ctx context.Context, inningsID string, players cricket.OpeningPlayers) error
}

// View is the snapshot the controller reads from and refreshes after every
// accepted mutation.
type View interface {
	Snapshot() *models.LiveSnapshot
	Refresh(ctx context.Context) (*models.LiveSnapshot, error)
}

// Controller serializes scoring actions for one live match view. At most
// one mutation is outstanding at any time.
type Controller struct {
	api      Submitter
	view     View
	inFlight atomic.Bool
}

func NewController(api Submitter, view View) *Controller {
	return &Controller{api: api, view: view}
}

// State derives the current controller state from the held snapshot.
func (c *Controller) State() State {
	snap := c.view.Snapshot()
	if snap == nil || snap.CurrentInnings == nil {
		return StateAwaitingPlayers
	}
	in := snap.CurrentInnings
	if score.InningsOver(in.TotalWickets, in.TotalBalls, oversCap(snap)) {
		return StateInningsOver
	}
	if in.Striker() == nil || in.NonStriker() == nil ||
		in.CurrentBowler == nil || in.CurrentBowler.Player == nil {
		return StateAwaitingPlayers
	}
	return StateScoring
}

func oversCap(snap *models.LiveSnapshot) int {
	if snap.Match == nil {
		return 0
	}
	return snap.Match.OversCap()
}

// SetOpeningPlayers establishes both batters and the bowler in one update
// request, striker flagged on strike. Local validation happens before any
// network call.
func (c *Controller) SetOpeningPlayers(ctx context.Context, strikerID, nonStrikerID, bowlerID string) error {
	switch c.State() {
	case StateInningsOver:
		return ErrInningsClosed
	case StateScoring:
		return ErrPlayersAlreadySet
	}

	if strikerID == "" || nonStrikerID == "" || bowlerID == "" {
		return fmt.Errorf("%w: all three players are required", ErrInvalidSelection)
	}
	if strikerID == nonStrikerID {
		return fmt.Errorf("%w: striker and non-striker must be different", ErrInvalidSelection)
	}

	if !c.inFlight.CompareAndSwap(false, true) {
		return ErrActionInProgress
	}
	defer c.inFlight.Store(false)

	snap := c.view.Snapshot()
	if snap == nil || snap.CurrentInnings == nil {
		return ErrMissingParticipants
	}

	players := cricket.OpeningPlayers{
		CurrentBatsmen: []cricket.OpeningBatter{
			{PlayerID: strikerID, IsOnStrike: true},
			{PlayerID: nonStrikerID},
		},
		CurrentBowler: cricket.OpeningBowler{PlayerID: bowlerID},
	}
	if err := c.api.SetOpeningPlayers(ctx, snap.CurrentInnings.ID, players); err != nil {
		return err
	}

	if _, err := c.view.Refresh(ctx); err != nil {
		return fmt.Errorf("players set, refreshing snapshot: %w", err)
	}
	return nil
}

// RecordRuns scores n runs off the bat for the current striker.
func (c *Controller) RecordRuns(ctx context.Context, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative runs", ErrInvalidSelection)
	}
	return c.submit(ctx, cricket.Delivery{Runs: n})
}

// RecordExtra credits n extra runs of the given kind.
func (c *Controller) RecordExtra(ctx context.Context, kind models.ExtraKind, n int) error {
	switch kind {
	case models.ExtraWide, models.ExtraNoBall, models.ExtraBye, models.ExtraLegBye:
	default:
		return fmt.Errorf("%w: unknown extra %q", ErrInvalidSelection, kind)
	}
	if n < 1 {
		n = 1
	}
	return c.submit(ctx, cricket.Delivery{Extras: n, ExtraType: kind})
}

// RecordWicket records the fall of the striker's wicket.
func (c *Controller) RecordWicket(ctx context.Context, dismissal models.Dismissal) error {
	if dismissal == "" {
		dismissal = models.DismissalBowled
	}
	return c.submit(ctx, cricket.Delivery{Wicket: true, DismissalType: dismissal})
}

// submit fills in the participants from the held snapshot and issues
// exactly one update request, then waits for the snapshot refresh. No
// local mutation, no retry: a lost response must not double-count a
// delivery.
func (c *Controller) submit(ctx context.Context, d cricket.Delivery) error {
	if c.State() == StateInningsOver {
		return ErrInningsClosed
	}

	if !c.inFlight.CompareAndSwap(false, true) {
		return ErrActionInProgress
	}
	defer c.inFlight.Store(false)

	snap := c.view.Snapshot()
	if snap == nil || snap.CurrentInnings == nil {
		return ErrMissingParticipants
	}
	in := snap.CurrentInnings

	striker := in.Striker()
	nonStriker := in.NonStriker()
	bowler := in.CurrentBowler
	if striker == nil || striker.Player == nil ||
		nonStriker == nil || nonStriker.Player == nil ||
		bowler == nil || bowler.Player == nil {
		return ErrMissingParticipants
	}

	d.InningsID = in.ID
	d.StrikerID = striker.Player.ID
	d.NonStrikerID = nonStriker.Player.ID
	d.BowlerID = bowler.Player.ID

	if _, err := c.api.SubmitDelivery(ctx, snap.MatchID(), d); err != nil {
		return err
	}

	if _, err := c.view.Refresh(ctx); err != nil {
		return fmt.Errorf("delivery recorded, refreshing snapshot: %w", err)
	}
	return nil
}
