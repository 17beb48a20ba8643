package gameclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazewalker/engine"
)

// Maximum inbound frame size.
const maxMessageSize = 64 << 10

// Client talks to one game backend on behalf of one player.
type Client struct {
	token string
	opts  Options
	log   *zap.Logger
}

// New returns a client for the player identified by token.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Client{token: token, opts: o, log: o.Logger.Named("gameclient")}, nil
}

func (c *Client) httpScheme() string {
	if c.opts.Insecure {
		return "http"
	}
	return "https"
}

func (c *Client) wsScheme() string {
	if c.opts.Insecure {
		return "ws"
	}
	return "wss"
}

// CreateGame starts a new game on levelID and returns its id.
func (c *Client) CreateGame(ctx context.Context, levelID string) (string, error) {
	u := fmt.Sprintf("%s://%s/api/levels/%s", c.httpScheme(), c.opts.Backend, url.PathEscape(levelID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return "", fmt.Errorf("gameclient: building request: %w", err)
	}
	req.Header.Set("Authorization", c.token)

	res, err := c.opts.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCreateGame, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxMessageSize))
	if err != nil {
		return "", fmt.Errorf("%w: reading body: %v", ErrCreateGame, err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("%w: %d - %s", ErrCreateGame, res.StatusCode, strings.TrimSpace(string(body)))
	}

	var inst struct {
		EntityID string `json:"entityId"`
	}
	if err = json.Unmarshal(body, &inst); err != nil {
		return "", fmt.Errorf("%w: decoding game instance: %v", ErrCreateGame, err)
	}
	if inst.EntityID == "" {
		return "", fmt.Errorf("%w: response has no entityId", ErrCreateGame)
	}

	c.log.Info("game created", zap.String("level", levelID), zap.String("game", inst.EntityID))
	return inst.EntityID, nil
}

// GameURL returns the viewer address of a game.
func (c *Client) GameURL(gameID string) string {
	return fmt.Sprintf("%s://%s/?id=%s", c.httpScheme(), c.opts.Frontend, url.QueryEscape(gameID))
}

// Play subscribes to gameID and lets d drive it until d reports
// engine.ErrSolved (nil is returned), d fails, the connection drops, or ctx
// is cancelled.
func (c *Client) Play(ctx context.Context, gameID string, d engine.Decider) error {
	log := c.log.With(zap.String("game", gameID))

	u := fmt.Sprintf("%s://%s/%s/", c.wsScheme(), c.opts.Backend, url.PathEscape(c.token))
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u, nil)
	if err != nil {
		return fmt.Errorf("gameclient: dial: %w", err)
	}
	defer conn.Close()

	if err = send(conn, actionSubscribe, subscribe{ID: gameID}); err != nil {
		return err
	}
	log.Info("subscribed")

	group, groupCtx := errgroup.WithContext(ctx)
	ticks := make(chan engine.Tick)

	group.Go(func() error {
		return readFrames(groupCtx, conn, ticks, log)
	})
	group.Go(func() error {
		return c.decide(groupCtx, conn, gameID, d, ticks, log)
	})
	group.Go(func() error {
		return pingPong(groupCtx, conn)
	})
	group.Go(func() error {
		<-groupCtx.Done()
		closeConn(conn)
		return nil
	})

	err = group.Wait()
	if errors.Is(err, engine.ErrSolved) {
		log.Info("maze solved")
		return nil
	}
	if err == nil {
		err = ctx.Err()
	}
	return err
}

// readFrames decodes inbound frames and forwards game ticks.
// Errors returned by websocket read methods are permanent.
func readFrames(ctx context.Context, conn *websocket.Conn, ticks chan<- engine.Tick, log *zap.Logger) error {
	defer close(ticks)

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if isClosure(err) {
				return fmt.Errorf("%w: %v", ErrClosed, err)
			}
			return fmt.Errorf("gameclient: read: %w", err)
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))

		f, err := decodeFrame(msg)
		if err != nil {
			return err
		}
		if f.Action != actionGameInstance {
			log.Debug("frame ignored", zap.String("action", f.Action), zap.ByteString("payload", f.Payload))
			continue
		}
		tick, err := decodeTick(f.Payload)
		if err != nil {
			return err
		}

		select {
		case ticks <- tick:
		case <-ctx.Done():
			return nil
		}
	}
}

// decide answers each tick with one command, strictly in arrival order.
func (c *Client) decide(
	ctx context.Context,
	conn *websocket.Conn,
	gameID string,
	d engine.Decider,
	ticks <-chan engine.Tick,
	log *zap.Logger,
) error {
	for tick := range channerics.OrDone(ctx.Done(), ticks) {
		action, err := d.Decide(ctx, tick)
		if err != nil {
			return err
		}

		select {
		case <-time.After(c.opts.TickDelay):
		case <-ctx.Done():
			return nil
		}

		if err = send(conn, actionRunCommand, command{GameID: gameID, Payload: action}); err != nil {
			return err
		}
		log.Debug("command sent",
			zap.Stringer("position", tick.Position),
			zap.Stringer("action", action))
	}
	return nil
}

// pingPong keeps the connection alive; readFrames extends the read deadline
// on every pong.
func pingPong(ctx context.Context, conn *websocket.Conn) error {
	pinger := channerics.NewTicker(ctx.Done(), pingPeriod)
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-pinger:
			if !ok {
				return nil
			}
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("gameclient: ping failed: %w", err)
			}
		}
	}
}

// send writes one [action, payload] frame. Only one goroutine writes data
// frames at a time: Play before the group starts, decide afterwards.
func send(conn *websocket.Conn, action string, payload interface{}) error {
	b, err := encodeFrame(action, payload)
	if err != nil {
		return fmt.Errorf("gameclient: encoding %s: %w", action, err)
	}
	if err = conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("gameclient: failed to set deadline: %w", err)
	}
	if err = conn.WriteMessage(websocket.TextMessage, b); err != nil {
		return fmt.Errorf("gameclient: sending %s: %w", action, err)
	}
	return nil
}

func closeConn(conn *websocket.Conn) {
	_ = conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
	_ = conn.Close()
}

func isClosure(err error) bool {
	return err != nil && websocket.IsCloseError(
		err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway)
}
