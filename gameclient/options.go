package gameclient

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Sentinel errors for the client.
var (
	// ErrNoToken indicates a client built without a player token.
	ErrNoToken = errors.New("gameclient: player token required")

	// ErrCreateGame indicates the backend refused to create a game.
	ErrCreateGame = errors.New("gameclient: game creation failed")

	// ErrBadFrame indicates an inbound frame that does not decode.
	ErrBadFrame = errors.New("gameclient: malformed frame")

	// ErrClosed indicates the backend closed the session before the maze was solved.
	ErrClosed = errors.New("gameclient: connection closed before solve")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("gameclient: invalid option supplied")
)

// Defaults for the goldrush backend.
const (
	DefaultBackend   = "goldrush.monad.fi/backend"
	DefaultFrontend  = "goldrush.monad.fi"
	DefaultTickDelay = 100 * time.Millisecond
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 2 * time.Second
	// Time allowed between inbound messages or pongs.
	pongWait = 60 * time.Second
	// Pings go out well within pongWait.
	pingPeriod = pongWait * 9 / 10
)

// Option configures a Client.
type Option func(*Options)

// Options holds client settings.
type Options struct {
	Backend    string
	Frontend   string
	TickDelay  time.Duration
	Insecure   bool // http/ws instead of https/wss
	HTTPClient *http.Client
	Logger     *zap.Logger

	err error
}

// DefaultOptions returns the goldrush endpoints over TLS, a 100ms tick delay
// and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Backend:    DefaultBackend,
		Frontend:   DefaultFrontend,
		TickDelay:  DefaultTickDelay,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Logger:     zap.NewNop(),
	}
}

// WithBackend sets the backend host and path prefix, without scheme.
func WithBackend(host string) Option {
	return func(o *Options) {
		if host == "" {
			o.err = fmt.Errorf("%w: backend cannot be empty", ErrOptionViolation)
			return
		}
		o.Backend = host
	}
}

// WithFrontend sets the viewer host, without scheme.
func WithFrontend(host string) Option {
	return func(o *Options) {
		if host == "" {
			o.err = fmt.Errorf("%w: frontend cannot be empty", ErrOptionViolation)
			return
		}
		o.Frontend = host
	}
}

// WithTickDelay sets the pause before each command is sent.
func WithTickDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: tick delay must be non-negative (%v)", ErrOptionViolation, d)
			return
		}
		o.TickDelay = d
	}
}

// WithInsecure switches to plain http and ws. Meant for local servers.
func WithInsecure() Option {
	return func(o *Options) { o.Insecure = true }
}

// WithHTTPClient sets the client used for game creation; nil is ignored.
func WithHTTPClient(c *http.Client) Option {
	return func(o *Options) {
		if c != nil {
			o.HTTPClient = c
		}
	}
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
