package handlers

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"cribsim-go/internal/config"
	"cribsim-go/internal/game/common"
	"cribsim-go/internal/game/cribbage"
	"cribsim-go/internal/sim"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const watchWriteTimeout = 10 * time.Second

func watchUpgrader(cfg config.Config) websocket.Upgrader {
	allowed := map[string]bool{}
	for _, o := range cfg.WSAllowedOrigins {
		allowed[o] = true
	}
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" {
				// Non-browser clients (no Origin) are allowed.
				return true
			}
			if allowed[origin] {
				return true
			}
			return cfg.AppEnv == "development" && isLocalhostOrigin(origin)
		},
	}
}

func isLocalhostOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	host := u.Hostname()
	return host == "localhost" || host == "127.0.0.1" || host == "::1"
}

// watchFrame is one JSON message on the watch stream: a game event with
// its structured attributes.
type watchFrame struct {
	Event string         `json:"event"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// frameSink serializes frame writes onto one websocket connection. The
// first write error sticks, so later frames fail fast instead of piling
// onto a dead connection.
type frameSink struct {
	mu   sync.Mutex
	conn *websocket.Conn
	err  error
}

func (s *frameSink) send(frame watchFrame) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	_ = s.conn.SetWriteDeadline(time.Now().Add(watchWriteTimeout))
	s.err = s.conn.WriteJSON(frame)
	return s.err
}

// frameStream adapts the sink into a slog.Handler, so the engine's own
// narration becomes the wire protocol. Derived handlers (WithAttrs)
// share the parent's sink, keeping all writers behind one mutex.
type frameStream struct {
	sink  *frameSink
	attrs []slog.Attr
}

func (s *frameStream) Enabled(context.Context, slog.Level) bool { return true }

func (s *frameStream) Handle(_ context.Context, r slog.Record) error {
	frame := watchFrame{Event: r.Message, Attrs: map[string]any{}}
	for _, a := range s.attrs {
		frame.Attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		frame.Attrs[a.Key] = a.Value.Any()
		return true
	})
	return s.sink.send(frame)
}

func (s *frameStream) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &frameStream{
		sink:  s.sink,
		attrs: append(append([]slog.Attr(nil), s.attrs...), attrs...),
	}
}

func (s *frameStream) WithGroup(string) slog.Handler { return s }

// WatchHandler streams one live game over a websocket: every engine
// event (deals, plays, scores) as it happens, then a result frame.
// Strategies and seed come from query parameters.
func WatchHandler(cfg config.Config, logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	upgrader := watchUpgrader(cfg)
	return func(c *gin.Context) {
		stratAName := c.DefaultQuery("strategy_a", sim.DefaultStrategy)
		stratBName := c.DefaultQuery("strategy_b", sim.DefaultStrategy)
		stratA, err := sim.ResolveStrategy(stratAName)
		if err != nil {
			writeAPIError(c, err)
			return
		}
		stratB, err := sim.ResolveStrategy(stratBName)
		if err != nil {
			writeAPIError(c, err)
			return
		}
		seed := sim.DefaultSeed()
		if v := c.Query("seed"); v != "" {
			if n, err := strconv.ParseInt(v, 10, 64); err == nil {
				seed = n
			}
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Warn("watch upgrade failed",
				"remote", c.ClientIP(),
				"origin", c.Request.Header.Get("Origin"),
				"error", err)
			return
		}
		defer conn.Close()

		sink := &frameSink{conn: conn}
		gameLogger := slog.New(&frameStream{sink: sink})

		g := cribbage.NewGame(stratA, stratB, rand.New(rand.NewSource(seed)), gameLogger)
		winner, err := g.PlayGame(common.NewDeck())
		if err != nil {
			logger.Error("watch game failed", "error", err)
			_ = sink.send(watchFrame{Event: "error"})
			return
		}

		_ = sink.send(watchFrame{Event: "result", Attrs: map[string]any{
			"winner":    winner.String(),
			"strategyA": stratAName,
			"strategyB": stratBName,
			"seed":      seed,
			"scoreA":    g.Score(cribbage.PlayerA),
			"scoreB":    g.Score(cribbage.PlayerB),
		}})

		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(watchWriteTimeout),
		)
	}
}
