package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Atharve03/pitchside/internal/config"
	"github.com/Atharve03/pitchside/internal/models"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{}

// fakeBackend upgrades one connection, records the first frame it receives
// and then pushes the given frames to the client.
func fakeBackend(t *testing.T, firstFrame chan<- frame, push []frame) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()

		var fr frame
		if err := conn.ReadJSON(&fr); err != nil {
			return
		}
		firstFrame <- fr

		for _, p := range push {
			if err := conn.WriteJSON(p); err != nil {
				return
			}
		}
		// Keep the connection open until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestJoinReplayedOnConnectAndEventsDispatched(t *testing.T) {
	snap := &models.LiveSnapshot{
		Match:    &models.Match{ID: "m1"},
		Revision: 3,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatal(err)
	}

	firstFrame := make(chan frame, 1)
	srv := fakeBackend(t, firstFrame, []frame{
		{Event: EventScoreUpdate, MatchID: "m1", Data: data},
		{Event: "unknown-event", MatchID: "m1"},
		{Event: EventWicketFall, MatchID: "m1", Data: []byte(`{"matchId":"m1","batsman":"V Kohli","dismissalType":"caught"}`)},
		{Event: EventInningsEnd, MatchID: "m1", Data: []byte(`{"matchId":"m1","reason":"all out"}`)},
	})

	updates := make(chan *models.LiveSnapshot, 1)
	wickets := make(chan WicketInfo, 1)
	ends := make(chan InningsEndInfo, 1)
	f := New(config.Feed{URL: wsURL(srv)}, Handlers{
		OnScoreUpdate: func(s *models.LiveSnapshot) { updates <- s },
		OnWicketFall:  func(w WicketInfo) { wickets <- w },
		OnInningsEnd:  func(e InningsEndInfo) { ends <- e },
	})

	// Join before the dial; the subscription must be replayed on connect.
	if err := f.Join("m1"); err != nil {
		t.Fatalf("Join: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go f.Run(ctx)

	select {
	case fr := <-firstFrame:
		if fr.Event != "join-match" || fr.MatchID != "m1" {
			t.Fatalf("first frame = %+v, want join-match m1", fr)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no join frame received")
	}

	select {
	case got := <-updates:
		if got.MatchID() != "m1" || got.Revision != 3 {
			t.Errorf("score update = %+v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no score update dispatched")
	}

	select {
	case got := <-wickets:
		if got.Batsman != "V Kohli" || got.Dismissal != models.DismissalCaught {
			t.Errorf("wicket = %+v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no wicket dispatched")
	}

	select {
	case got := <-ends:
		if got.Reason != "all out" {
			t.Errorf("innings end = %+v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no innings end dispatched")
	}
}

func TestLeaveOnlyDropsCurrentSubscription(t *testing.T) {
	f := New(config.Feed{URL: "ws://unused"}, Handlers{})

	if err := f.Join("m1"); err != nil {
		t.Fatalf("Join: %v", err)
	}
	if err := f.Leave("other"); err != nil {
		t.Fatalf("Leave: %v", err)
	}

	f.mu.Lock()
	joined := f.joined
	f.mu.Unlock()
	if joined != "m1" {
		t.Errorf("joined = %q, want m1", joined)
	}

	if err := f.Leave("m1"); err != nil {
		t.Fatalf("Leave: %v", err)
	}
	f.mu.Lock()
	joined = f.joined
	f.mu.Unlock()
	if joined != "" {
		t.Errorf("joined = %q, want empty", joined)
	}
}
