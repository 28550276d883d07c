// Package feed owns the push channel to the cricket backend. The handle is
// connected once for the application lifetime; match subscriptions come and
// go with the live view that needs them.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Atharve03/pitchside/internal/config"
	"github.com/Atharve03/pitchside/internal/models"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	reconnectDelay = 3 * time.Second
)

// Named events delivered by the backend for a joined match.
const (
	EventScoreUpdate = "score-update"
	EventWicketFall  = "wicket-fall"
	EventInningsEnd  = "innings-end"
)

type WicketInfo struct {
	MatchID   string           `json:"matchId"`
	Batsman   string           `json:"batsman"`
	Dismissal models.Dismissal `json:"dismissalType"`
}

type InningsEndInfo struct {
	MatchID string `json:"matchId"`
	Reason  string `json:"reason"`
}

// Handlers receive decoded push events. Nil handlers are skipped. They are
// called from the feed's read loop, so they must not block.
type Handlers struct {
	OnScoreUpdate func(*models.LiveSnapshot)
	OnWicketFall  func(WicketInfo)
	OnInningsEnd  func(InningsEndInfo)
}

type frame struct {
	Event   string          `json:"event"`
	MatchID string          `json:"matchId,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Feed is a websocket client for the backend's live event stream.
type Feed struct {
	url      string
	handlers Handlers

	mu     sync.Mutex
	conn   *websocket.Conn
	joined string
	closed bool
}

func New(cfg config.Feed, handlers Handlers) *Feed {
	return &Feed{
		url:      cfg.URL,
		handlers: handlers,
	}
}

// Run dials the backend and pumps events until ctx is cancelled, redialing
// after transient failures. Joined match subscriptions survive reconnects.
func (f *Feed) Run(ctx context.Context) {
	for {
		if err := f.connectAndRead(ctx); err != nil && ctx.Err() == nil {
			slog.Error("Feed connection lost", "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (f *Feed) connectAndRead(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, f.url, nil)
	if err != nil {
		return fmt.Errorf("dialing feed: %w", err)
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		conn.Close()
		return nil
	}
	f.conn = conn
	joined := f.joined
	f.mu.Unlock()

	slog.Info("Feed connected", "url", f.url)

	if joined != "" {
		if err := f.writeFrame(frame{Event: "join-match", MatchID: joined}); err != nil {
			conn.Close()
			return err
		}
	}

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	pingCtx, stopPing := context.WithCancel(ctx)
	defer stopPing()
	go f.pingLoop(pingCtx, conn)

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		var fr frame
		if err := conn.ReadJSON(&fr); err != nil {
			f.mu.Lock()
			if f.conn == conn {
				f.conn = nil
			}
			f.mu.Unlock()
			return fmt.Errorf("reading feed: %w", err)
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))
		f.dispatch(fr)
	}
}

func (f *Feed) pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.mu.Lock()
			err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
			f.mu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

func (f *Feed) dispatch(fr frame) {
	switch fr.Event {
	case EventScoreUpdate:
		if f.handlers.OnScoreUpdate == nil {
			return
		}
		var snap models.LiveSnapshot
		if err := json.Unmarshal(fr.Data, &snap); err != nil {
			slog.Error("Feed: bad score-update payload", "error", err)
			return
		}
		f.handlers.OnScoreUpdate(&snap)
	case EventWicketFall:
		if f.handlers.OnWicketFall == nil {
			return
		}
		var info WicketInfo
		if err := json.Unmarshal(fr.Data, &info); err != nil {
			slog.Error("Feed: bad wicket-fall payload", "error", err)
			return
		}
		f.handlers.OnWicketFall(info)
	case EventInningsEnd:
		if f.handlers.OnInningsEnd == nil {
			return
		}
		var info InningsEndInfo
		if err := json.Unmarshal(fr.Data, &info); err != nil {
			slog.Error("Feed: bad innings-end payload", "error", err)
			return
		}
		f.handlers.OnInningsEnd(info)
	default:
		slog.Debug("Feed: ignoring event", "event", fr.Event)
	}
}

// Join subscribes this feed to one match's events, replacing any previous
// subscription.
func (f *Feed) Join(matchID string) error {
	f.mu.Lock()
	prev := f.joined
	f.joined = matchID
	f.mu.Unlock()

	if prev != "" && prev != matchID {
		if err := f.writeFrame(frame{Event: "leave-match", MatchID: prev}); err != nil {
			return err
		}
	}
	return f.writeFrame(frame{Event: "join-match", MatchID: matchID})
}

// Leave drops the subscription for matchID if it is the current one.
func (f *Feed) Leave(matchID string) error {
	f.mu.Lock()
	if f.joined != matchID {
		f.mu.Unlock()
		return nil
	}
	f.joined = ""
	f.mu.Unlock()

	return f.writeFrame(frame{Event: "leave-match", MatchID: matchID})
}

func (f *Feed) writeFrame(fr frame) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.conn == nil {
		// Not connected right now; the subscription is replayed on redial.
		return nil
	}
	f.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := f.conn.WriteJSON(fr); err != nil {
		return fmt.Errorf("writing %s: %w", fr.Event, err)
	}
	return nil
}

// Close tears the connection down for good.
func (f *Feed) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	if f.conn == nil {
		return nil
	}
	f.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
	err := f.conn.Close()
	f.conn = nil
	return err
}
