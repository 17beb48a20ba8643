package gameclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/mazewalker/core"
	"github.com/katalvlaran/mazewalker/engine"
	"github.com/katalvlaran/mazewalker/gameclient"
	"github.com/katalvlaran/mazewalker/sim"
)

const token = "player-token"

const corridor = `
+---+---+---+---+
| S           T |
+---+---+---+---+`

var upgrader = websocket.Upgrader{}

// session is what the fake backend observed over one websocket.
type session struct {
	subscribed string
	commands   int
	solved     bool
	err        error
}

// backend serves game creation and plays m over the websocket, one state
// frame per received command.
func backend(t *testing.T, m *sim.Maze, done chan<- session) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/levels/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("Authorization") != token {
			http.Error(w, "bad token", http.StatusUnauthorized)
			return
		}
		level := strings.TrimPrefix(r.URL.Path, "/api/levels/")
		_ = json.NewEncoder(w).Encode(map[string]string{"entityId": "game-" + level})
	})
	mux.HandleFunc("/"+token+"/", func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			done <- session{err: err}
			return
		}
		defer ws.Close()
		done <- play(ws, sim.NewGame(m))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func play(ws *websocket.Conn, g *sim.Game) session {
	var s session
	var sub []json.RawMessage
	if s.err = ws.ReadJSON(&sub); s.err != nil {
		return s
	}
	var body struct {
		ID string `json:"id"`
	}
	if len(sub) != 2 || string(sub[0]) != `"sub-game"` {
		s.err = errors.New("first frame is not a subscription")
		return s
	}
	if s.err = json.Unmarshal(sub[1], &body); s.err != nil {
		return s
	}
	s.subscribed = body.ID

	// Frames other than game-instance must be ignored by the client.
	if s.err = ws.WriteJSON([]interface{}{"game-joined", map[string]string{"id": body.ID}}); s.err != nil {
		return s
	}

	for {
		if s.err = ws.WriteJSON(stateFrame(g.Tick())); s.err != nil {
			return s
		}
		var cmd []json.RawMessage
		if err := ws.ReadJSON(&cmd); err != nil {
			s.solved = g.AtTarget()
			return s
		}
		var run struct {
			GameID  string      `json:"gameId"`
			Payload core.Action `json:"payload"`
		}
		if len(cmd) != 2 || string(cmd[0]) != `"run-command"` {
			s.err = errors.New("unexpected command frame")
			return s
		}
		if s.err = json.Unmarshal(cmd[1], &run); s.err != nil {
			return s
		}
		if run.GameID != s.subscribed {
			s.err = errors.New("command for another game")
			return s
		}
		if s.err = g.Apply(run.Payload); s.err != nil {
			return s
		}
		s.commands++
	}
}

func stateFrame(t engine.Tick) []interface{} {
	state, _ := json.Marshal(map[string]interface{}{
		"player": map[string]interface{}{
			"position": map[string]int{"x": t.Position.X, "y": t.Position.Y},
			"rotation": int(t.Heading),
		},
		"target": map[string]int{"x": t.Target.X, "y": t.Target.Y},
		"square": int(t.Walls),
	})
	return []interface{}{"game-instance", map[string]string{"gameState": string(state)}}
}

func client(t *testing.T, srv *httptest.Server) *gameclient.Client {
	t.Helper()
	c, err := gameclient.New(token,
		gameclient.WithBackend(strings.TrimPrefix(srv.URL, "http://")),
		gameclient.WithFrontend("viewer.test"),
		gameclient.WithInsecure(),
		gameclient.WithTickDelay(0),
		gameclient.WithLogger(zaptest.NewLogger(t)),
	)
	require.NoError(t, err)
	return c
}

func TestNew_Options(t *testing.T) {
	_, err := gameclient.New("")
	assert.ErrorIs(t, err, gameclient.ErrNoToken)

	_, err = gameclient.New(token, gameclient.WithTickDelay(-time.Second))
	assert.ErrorIs(t, err, gameclient.ErrOptionViolation)

	_, err = gameclient.New(token, gameclient.WithBackend(""))
	assert.ErrorIs(t, err, gameclient.ErrOptionViolation)

	c, err := gameclient.New(token)
	require.NoError(t, err)
	assert.Equal(t, "https://goldrush.monad.fi/?id=abc", c.GameURL("abc"))
}

func TestCreateGame(t *testing.T) {
	m, err := sim.ParseString(corridor)
	require.NoError(t, err)
	srv := backend(t, m, make(chan session, 1))

	id, err := client(t, srv).CreateGame(context.Background(), "level-7")
	require.NoError(t, err)
	assert.Equal(t, "game-level-7", id)

	bad, err := gameclient.New("wrong",
		gameclient.WithBackend(strings.TrimPrefix(srv.URL, "http://")),
		gameclient.WithInsecure())
	require.NoError(t, err)
	_, err = bad.CreateGame(context.Background(), "level-7")
	require.ErrorIs(t, err, gameclient.ErrCreateGame)
	assert.Contains(t, err.Error(), "401")
}

func TestPlay_SolvesOverWebsocket(t *testing.T) {
	m, err := sim.ParseString(corridor)
	require.NoError(t, err)
	done := make(chan session, 1)
	srv := backend(t, m, done)
	c := client(t, srv)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id, err := c.CreateGame(ctx, "1")
	require.NoError(t, err)
	s, err := engine.New(engine.WithStrategy(engine.StrategyAStar), engine.WithValidation())
	require.NoError(t, err)

	require.NoError(t, c.Play(ctx, id, s))
	assert.Equal(t, engine.Solved, s.Mode())

	select {
	case got := <-done:
		require.NoError(t, got.err)
		assert.Equal(t, "game-1", got.subscribed)
		assert.True(t, got.solved)
		assert.Equal(t, s.Stats().Ticks-1, got.commands, "one command per tick except the solving one")
	case <-ctx.Done():
		t.Fatal("backend did not finish")
	}
}

// failing rejects every tick.
type failing struct{}

var errRefused = errors.New("refused")

func (failing) Decide(context.Context, engine.Tick) (core.Action, error) {
	return core.Action{}, errRefused
}

func TestPlay_DeciderErrorEndsRun(t *testing.T) {
	m, err := sim.ParseString(corridor)
	require.NoError(t, err)
	srv := backend(t, m, make(chan session, 1))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = client(t, srv).Play(ctx, "game-1", failing{})
	assert.ErrorIs(t, err, errRefused)
}

func TestPlay_ServerClosesEarly(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/"+token+"/", func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()
		var sub []json.RawMessage
		_ = ws.ReadJSON(&sub)
		_ = ws.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"))
		_, _, _ = ws.ReadMessage()
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s, err := engine.New()
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = client(t, srv).Play(ctx, "game-1", s)
	assert.ErrorIs(t, err, gameclient.ErrClosed)
}

func TestPlay_MalformedFrame(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/"+token+"/", func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()
		var sub []json.RawMessage
		_ = ws.ReadJSON(&sub)
		_ = ws.WriteJSON([]interface{}{"game-instance", map[string]string{"gameState": `{"player":{"rotation":30}}`}})
		_, _, _ = ws.ReadMessage()
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s, err := engine.New()
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = client(t, srv).Play(ctx, "game-1", s)
	assert.ErrorIs(t, err, gameclient.ErrBadFrame)
}
