package scoring

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Atharve03/pitchside/internal/api/cricket"
	"github.com/Atharve03/pitchside/internal/models"
)

type fakeSubmitter struct {
	mu         sync.Mutex
	deliveries []cricket.Delivery
	openings   []cricket.OpeningPlayers
	started    chan struct{}
	release    chan struct{}
}

func (f *fakeSubmitter) SubmitDelivery(_ context.Context, _ string, d cricket.Delivery) (*models.LiveSnapshot, error) {
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deliveries = append(f.deliveries, d)
	return nil, nil
}

func (f *fakeSubmitter) SetOpeningPlayers(_ context.Context, _ string, players cricket.OpeningPlayers) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.openings = append(f.openings, players)
	return nil
}

func (f *fakeSubmitter) deliveryCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.deliveries)
}

type fakeView struct {
	mu        sync.Mutex
	snap      *models.LiveSnapshot
	refreshes int
}

func (f *fakeView) Snapshot() *models.LiveSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap
}

func (f *fakeView) Refresh(context.Context) (*models.LiveSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshes++
	return f.snap, nil
}

func player(id string) *models.Player {
	return &models.Player{ID: id, Name: id}
}

// scoringSnapshot is a mid-innings T20 snapshot with both batters and a
// bowler established.
func scoringSnapshot() *models.LiveSnapshot {
	return &models.LiveSnapshot{
		Match: &models.Match{ID: "m1", Format: models.FormatT20},
		CurrentInnings: &models.Innings{
			ID: "in1",
			CurrentBatsmen: []models.Batter{
				{Player: player("striker"), IsOnStrike: true},
				{Player: player("nonstriker")},
			},
			CurrentBowler: &models.BowlerSpell{Player: player("bowler")},
			TotalWickets:  2,
			TotalBalls:    30,
		},
		Revision: 7,
	}
}

func awaitingSnapshot() *models.LiveSnapshot {
	snap := scoringSnapshot()
	snap.CurrentInnings.CurrentBatsmen = nil
	snap.CurrentInnings.CurrentBowler = nil
	return snap
}

func TestState(t *testing.T) {
	allOut := scoringSnapshot()
	allOut.CurrentInnings.TotalWickets = 10

	oversDone := scoringSnapshot()
	oversDone.CurrentInnings.TotalBalls = 120

	tests := []struct {
		name string
		snap *models.LiveSnapshot
		want State
	}{
		{"no snapshot", nil, StateAwaitingPlayers},
		{"no participants", awaitingSnapshot(), StateAwaitingPlayers},
		{"participants set", scoringSnapshot(), StateScoring},
		{"all out", allOut, StateInningsOver},
		{"overs exhausted", oversDone, StateInningsOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(&fakeSubmitter{}, &fakeView{snap: tt.snap})
			if got := c.State(); got != tt.want {
				t.Errorf("State() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRecordRunsFillsParticipants(t *testing.T) {
	api := &fakeSubmitter{}
	view := &fakeView{snap: scoringSnapshot()}
	c := NewController(api, view)

	if err := c.RecordRuns(context.Background(), 4); err != nil {
		t.Fatalf("RecordRuns: %v", err)
	}

	if len(api.deliveries) != 1 {
		t.Fatalf("deliveries = %d, want 1", len(api.deliveries))
	}
	d := api.deliveries[0]
	if d.Runs != 4 || d.InningsID != "in1" ||
		d.StrikerID != "striker" || d.NonStrikerID != "nonstriker" || d.BowlerID != "bowler" {
		t.Errorf("unexpected delivery: %+v", d)
	}
	if view.refreshes != 1 {
		t.Errorf("refreshes = %d, want 1", view.refreshes)
	}
}

func TestConcurrentActionRejected(t *testing.T) {
	api := &fakeSubmitter{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	c := NewController(api, &fakeView{snap: scoringSnapshot()})

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- c.RecordRuns(context.Background(), 1)
	}()
	<-api.started

	if err := c.RecordRuns(context.Background(), 2); !errors.Is(err, ErrActionInProgress) {
		t.Fatalf("second action error = %v, want ErrActionInProgress", err)
	}
	close(api.release)

	if err := <-firstDone; err != nil {
		t.Fatalf("first action: %v", err)
	}
	if got := api.deliveryCount(); got != 1 {
		t.Errorf("deliveries = %d, want 1", got)
	}
}

func TestMissingParticipantsNoRequest(t *testing.T) {
	snap := scoringSnapshot()
	snap.CurrentInnings.CurrentBatsmen[0].IsOnStrike = false

	api := &fakeSubmitter{}
	c := NewController(api, &fakeView{snap: snap})

	if err := c.RecordRuns(context.Background(), 1); !errors.Is(err, ErrMissingParticipants) {
		t.Fatalf("error = %v, want ErrMissingParticipants", err)
	}
	if len(api.deliveries) != 0 {
		t.Errorf("deliveries = %d, want 0", len(api.deliveries))
	}
}

func TestInningsOverRejectsActions(t *testing.T) {
	snap := scoringSnapshot()
	snap.CurrentInnings.TotalWickets = 10

	api := &fakeSubmitter{}
	c := NewController(api, &fakeView{snap: snap})

	if err := c.RecordRuns(context.Background(), 1); !errors.Is(err, ErrInningsClosed) {
		t.Errorf("RecordRuns error = %v, want ErrInningsClosed", err)
	}
	if err := c.RecordWicket(context.Background(), models.DismissalCaught); !errors.Is(err, ErrInningsClosed) {
		t.Errorf("RecordWicket error = %v, want ErrInningsClosed", err)
	}
	if err := c.SetOpeningPlayers(context.Background(), "a", "b", "c"); !errors.Is(err, ErrInningsClosed) {
		t.Errorf("SetOpeningPlayers error = %v, want ErrInningsClosed", err)
	}
	if len(api.deliveries) != 0 || len(api.openings) != 0 {
		t.Error("requests issued after innings over")
	}
}

func TestUnlimitedOversNeverClosesOnBalls(t *testing.T) {
	snap := scoringSnapshot()
	snap.Match.Format = models.FormatTest
	snap.CurrentInnings.TotalBalls = 540

	c := NewController(&fakeSubmitter{}, &fakeView{snap: snap})
	if got := c.State(); got != StateScoring {
		t.Errorf("State() = %v, want StateScoring", got)
	}
}

func TestSetOpeningPlayersValidation(t *testing.T) {
	tests := []struct {
		name                        string
		striker, nonStriker, bowler string
	}{
		{"empty striker", "", "b", "c"},
		{"empty bowler", "a", "b", ""},
		{"striker equals non-striker", "a", "a", "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeSubmitter{}
			c := NewController(api, &fakeView{snap: awaitingSnapshot()})

			err := c.SetOpeningPlayers(context.Background(), tt.striker, tt.nonStriker, tt.bowler)
			if !errors.Is(err, ErrInvalidSelection) {
				t.Fatalf("error = %v, want ErrInvalidSelection", err)
			}
			if len(api.openings) != 0 {
				t.Error("request issued for invalid selection")
			}
		})
	}
}

func TestSetOpeningPlayersSubmitsAndRefreshes(t *testing.T) {
	api := &fakeSubmitter{}
	view := &fakeView{snap: awaitingSnapshot()}
	c := NewController(api, view)

	if err := c.SetOpeningPlayers(context.Background(), "s1", "n1", "b1"); err != nil {
		t.Fatalf("SetOpeningPlayers: %v", err)
	}

	if len(api.openings) != 1 {
		t.Fatalf("openings = %d, want 1", len(api.openings))
	}
	got := api.openings[0]
	if len(got.CurrentBatsmen) != 2 {
		t.Fatalf("batters = %d, want 2", len(got.CurrentBatsmen))
	}
	if got.CurrentBatsmen[0].PlayerID != "s1" || !got.CurrentBatsmen[0].IsOnStrike {
		t.Errorf("striker entry = %+v", got.CurrentBatsmen[0])
	}
	if got.CurrentBatsmen[1].PlayerID != "n1" || got.CurrentBatsmen[1].IsOnStrike {
		t.Errorf("non-striker entry = %+v", got.CurrentBatsmen[1])
	}
	if got.CurrentBowler.PlayerID != "b1" {
		t.Errorf("bowler entry = %+v", got.CurrentBowler)
	}
	if view.refreshes != 1 {
		t.Errorf("refreshes = %d, want 1", view.refreshes)
	}
}

func TestSetOpeningPlayersAlreadySet(t *testing.T) {
	api := &fakeSubmitter{}
	c := NewController(api, &fakeView{snap: scoringSnapshot()})

	err := c.SetOpeningPlayers(context.Background(), "a", "b", "c")
	if !errors.Is(err, ErrPlayersAlreadySet) {
		t.Fatalf("error = %v, want ErrPlayersAlreadySet", err)
	}
	if len(api.openings) != 0 {
		t.Error("request issued when players already set")
	}
}

func TestRecordExtra(t *testing.T) {
	api := &fakeSubmitter{}
	c := NewController(api, &fakeView{snap: scoringSnapshot()})

	if err := c.RecordExtra(context.Background(), "overthrow", 1); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("unknown kind error = %v, want ErrInvalidSelection", err)
	}

	if err := c.RecordExtra(context.Background(), models.ExtraWide, 0); err != nil {
		t.Fatalf("RecordExtra: %v", err)
	}
	d := api.deliveries[len(api.deliveries)-1]
	if d.Extras != 1 || d.ExtraType != models.ExtraWide {
		t.Errorf("wide delivery = %+v, want 1 wide", d)
	}
}

func TestRecordWicketDefaultsToBowled(t *testing.T) {
	api := &fakeSubmitter{}
	c := NewController(api, &fakeView{snap: scoringSnapshot()})

	if err := c.RecordWicket(context.Background(), ""); err != nil {
		t.Fatalf("RecordWicket: %v", err)
	}
	d := api.deliveries[0]
	if !d.Wicket || d.DismissalType != models.DismissalBowled {
		t.Errorf("delivery = %+v, want bowled wicket", d)
	}
}
