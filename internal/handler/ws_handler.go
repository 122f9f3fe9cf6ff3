package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/examtools/vceplay/internal/model"
	"github.com/examtools/vceplay/internal/player"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allowedOrigins slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// StreamFrame is one tick of the session stream: live progress plus the
// advisory countdown. The countdown is presentation state; expiry does not
// end the session server-side, the client is expected to call end itself.
type StreamFrame struct {
	Status           model.SessionStatus `json:"status"`
	Progress         model.Progress      `json:"progress"`
	RemainingSeconds *int                `json:"remaining_seconds,omitempty"`
}

// WSHandler streams session progress over a WebSocket.
type WSHandler struct {
	player   *player.Player
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(p *player.Player, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		player:   p,
		log:      log.With().Str("component", "ws_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// SessionStream godoc
// GET /ws/v1/session/stream
// Pushes a StreamFrame once per second until the client disconnects.
func (h *WSHandler) SessionStream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	// Drain client frames so pings and close messages are processed.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		frame := h.buildFrame()
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteJSON(frame); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Debug().Err(err).Msg("session stream ended")
			}
			return
		}

		select {
		case <-c.Request.Context().Done():
			return
		case <-ticker.C:
		}
	}
}

func (h *WSHandler) buildFrame() StreamFrame {
	frame := StreamFrame{}

	session, err := h.player.Session()
	if err != nil {
		if !errors.Is(err, player.ErrNoActiveSession) {
			h.log.Warn().Err(err).Msg("session read failed")
		}
		return frame
	}
	frame.Status = session.Status

	if progress, err := h.player.Progress(); err == nil {
		frame.Progress = progress
	}

	exam := h.player.Exam()
	if exam.TimeLimitMinutes != nil && session.Status == model.SessionStatusInProgress {
		deadline := session.StartTime.Add(time.Duration(*exam.TimeLimitMinutes) * time.Minute)
		remaining := int(time.Until(deadline).Seconds())
		if remaining < 0 {
			remaining = 0
		}
		frame.RemainingSeconds = &remaining
	}
	return frame
}
