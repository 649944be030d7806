package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/NADEE-MJ/raddle.teams-sub001/internal/models"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/service"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // origin is checked by the reverse proxy in production
	},
}

// WebSocketHandler attaches player connections to the connection directory.
type WebSocketHandler struct {
	services *service.Services
}

func NewWebSocketHandler(services *service.Services) *WebSocketHandler {
	return &WebSocketHandler{services: services}
}

// HandleWebSocket upgrades the connection, registers the player and blocks
// until the connection drops. Reconnecting under the same token restores the
// player's team, cursor and score via a state_sync message instead of
// replaying the guess log.
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	player := c.MustGet("player").(*models.Player)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	directory := h.services.Directory
	returning := directory.HasSeen(player.ID)
	client := directory.Register(player.ID, conn)
	if player.TeamID != nil {
		directory.AssignTeam(player.ID, *player.TeamID)
	}

	h.setConnected(player, true)
	event := service.EventPlayerJoined
	if returning {
		event = service.EventPlayerReconnected
	}
	directory.Broadcast(service.Event{Type: event, Data: player})
	h.sendStateSync(player)

	directory.HandleClient(client)

	h.setConnected(player, false)
	directory.Broadcast(service.Event{Type: service.EventPlayerDisconnected, Data: player})
}

func (h *WebSocketHandler) setConnected(player *models.Player, connected bool) {
	player.Connected = connected
	if err := h.services.Players.Update(player); err != nil {
		log.Error().Err(err).Uint("player_id", player.ID).Msg("update connectivity flag")
	}
}

// sendStateSync pushes the player's current view of the game: session phase,
// team, cursor, score and the clues visible from the cursor.
func (h *WebSocketHandler) sendStateSync(player *models.Player) {
	session, err := h.services.Registry.GetSessionByID(player.SessionID)
	if err != nil {
		return
	}

	sync := map[string]any{
		"session": session,
		"player":  player,
	}
	if player.TeamID != nil {
		if team, err := h.services.Teams.FindByID(*player.TeamID); err == nil {
			sync["team"] = team
			if session.Phase == models.PhaseActive || session.Phase == models.PhaseFinished {
				if clues, err := h.services.Progression.CurrentClues(session, team); err == nil {
					sync["clues"] = clues
				}
			}
		}
	}

	h.services.Directory.Send(player.ID, service.Event{Type: service.EventStateSync, Data: sync})
}
