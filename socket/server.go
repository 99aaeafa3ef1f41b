package socket

import (
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/zerolog/log"
)

// Events broadcast to a game room.
const (
	EventGoalRecorded    = "goalRecorded"
	EventPenaltyRecorded = "penaltyRecorded"
	EventGameSubmitted   = "gameSubmitted"
)

// NewSocketServer builds the live-scoreboard socket. Clients emit
// "join" with a gameId to follow one game; recorded events are
// broadcast to that room by the event service.
func NewSocketServer() *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(c socketio.Conn) error {
		log.Debug().Str("socket", c.ID()).Msg("socket connected")
		return nil
	})

	server.OnEvent("/", "join", func(c socketio.Conn, gameID string) {
		if gameID == "" {
			log.Warn().Str("socket", c.ID()).Msg("join without gameId")
			return
		}
		c.Join(gameID)
		log.Debug().Str("socket", c.ID()).Str("gameId", gameID).Msg("joined game room")
	})

	server.OnEvent("/", "leave", func(c socketio.Conn, gameID string) {
		if gameID != "" {
			c.Leave(gameID)
		}
	})

	server.OnDisconnect("/", func(c socketio.Conn, reason string) {
		log.Debug().Str("socket", c.ID()).Str("reason", reason).Msg("socket disconnected")
	})

	return server
}
