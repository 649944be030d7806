package service

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	maxMessageSize = 4096
	sendBufferSize = 256
)

// Conn is the connection surface the directory needs. *websocket.Conn
// satisfies it; tests substitute fakes.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
	Close() error
}

// Client is one live player connection. Outbound messages go through a
// buffered channel drained by the write pump so a slow connection never
// blocks the sender.
type Client struct {
	PlayerID uint

	conn   Conn
	mu     sync.Mutex
	closed bool
	send   chan []byte
}

func newClient(playerID uint, conn Conn) *Client {
	return &Client{
		PlayerID: playerID,
		conn:     conn,
		send:     make(chan []byte, sendBufferSize),
	}
}

// enqueue hands data to the write pump without blocking. It reports failure
// when the client is closed or its buffer is full; either way the caller
// treats the client as disconnected.
func (c *Client) enqueue(data []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// close is idempotent and safe to call concurrently with enqueue.
func (c *Client) close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	c.mu.Unlock()
	c.conn.Close()
}

// ConnectionDirectory maps connected players to live channels and teams. It
// is the single source of truth for who is online and on which team; game
// logic queries it instead of keeping shadow copies.
type ConnectionDirectory struct {
	mu      sync.RWMutex
	clients map[uint]*Client
	teams   map[uint]uint     // playerID -> teamID
	seen    map[uint]struct{} // players that have registered at least once
}

func NewConnectionDirectory() *ConnectionDirectory {
	return &ConnectionDirectory{
		clients: make(map[uint]*Client),
		teams:   make(map[uint]uint),
		seen:    make(map[uint]struct{}),
	}
}

// Register adds a player's connection, replacing any previous one for the
// same identity (reconnects land here).
func (d *ConnectionDirectory) Register(playerID uint, conn Conn) *Client {
	client := newClient(playerID, conn)

	d.mu.Lock()
	old := d.clients[playerID]
	d.clients[playerID] = client
	d.seen[playerID] = struct{}{}
	d.mu.Unlock()

	if old != nil {
		old.close()
	}
	return client
}

// Unregister removes a player's connection and team entry regardless of
// which client holds them. Unknown players are a no-op.
func (d *ConnectionDirectory) Unregister(playerID uint) {
	d.mu.Lock()
	client := d.clients[playerID]
	delete(d.clients, playerID)
	delete(d.teams, playerID)
	d.mu.Unlock()

	if client != nil {
		client.close()
	}
}

// unregisterClient removes one specific client. A handler shutting down
// after a reconnect replaced its client must not evict the replacement, so
// the maps are only touched while this client is still the registered one.
func (d *ConnectionDirectory) unregisterClient(client *Client) {
	d.mu.Lock()
	if d.clients[client.PlayerID] == client {
		delete(d.clients, client.PlayerID)
		delete(d.teams, client.PlayerID)
	}
	d.mu.Unlock()

	client.close()
}

// AssignTeam records which team a player is on, overwriting any prior
// assignment.
func (d *ConnectionDirectory) AssignTeam(playerID, teamID uint) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.teams[playerID] = teamID
}

// TeamOf returns the team a connected player is assigned to.
func (d *ConnectionDirectory) TeamOf(playerID uint) (uint, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	teamID, ok := d.teams[playerID]
	return teamID, ok
}

// IsConnected reports whether the player has a registered channel.
func (d *ConnectionDirectory) IsConnected(playerID uint) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.clients[playerID]
	return ok
}

// HasSeen reports whether the player has ever registered a connection, even
// if they are currently offline.
func (d *ConnectionDirectory) HasSeen(playerID uint) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.seen[playerID]
	return ok
}

// ListConnected returns the IDs of every registered player.
func (d *ConnectionDirectory) ListConnected() []uint {
	d.mu.RLock()
	defer d.mu.RUnlock()
	ids := make([]uint, 0, len(d.clients))
	for id := range d.clients {
		ids = append(ids, id)
	}
	return ids
}

// Send delivers an event to one player. Sending to an unregistered player is
// a no-op; a failed delivery prunes the connection.
func (d *ConnectionDirectory) Send(playerID uint, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("event", event.Type).Msg("encode event")
		return
	}

	d.mu.RLock()
	client := d.clients[playerID]
	d.mu.RUnlock()

	if client == nil {
		return
	}
	if !client.enqueue(data) {
		d.unregisterClient(client)
	}
}

// Broadcast delivers an event to every registered player. Failed recipients
// are collected during the sweep and pruned afterwards so one dead channel
// never aborts delivery to the rest.
func (d *ConnectionDirectory) Broadcast(event Event) {
	d.fanOut(event, func(uint) bool { return true })
}

// BroadcastToTeam delivers an event to every registered player on the team.
func (d *ConnectionDirectory) BroadcastToTeam(teamID uint, event Event) {
	d.fanOut(event, func(playerID uint) bool {
		return d.teams[playerID] == teamID
	})
}

func (d *ConnectionDirectory) fanOut(event Event, include func(playerID uint) bool) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("event", event.Type).Msg("encode event")
		return
	}

	d.mu.RLock()
	targets := make([]*Client, 0, len(d.clients))
	for playerID, client := range d.clients {
		if include(playerID) {
			targets = append(targets, client)
		}
	}
	d.mu.RUnlock()

	var failed []*Client
	for _, client := range targets {
		if !client.enqueue(data) {
			failed = append(failed, client)
		}
	}
	for _, client := range failed {
		log.Debug().Uint("player_id", client.PlayerID).Msg("pruning unreachable connection")
		d.unregisterClient(client)
	}
}

// HandleClient runs the read loop for a registered client and starts its
// write pump. It blocks until the connection drops, then unregisters the
// player. Inbound frames are discarded; gameplay actions arrive over HTTP.
func (d *ConnectionDirectory) HandleClient(client *Client) {
	defer d.unregisterClient(client)

	go d.writePump(client)

	client.conn.SetReadLimit(maxMessageSize)
	client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Debug().Err(err).Uint("player_id", client.PlayerID).Msg("websocket closed unexpectedly")
			}
			return
		}
	}
}

func (d *ConnectionDirectory) writePump(client *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case data, ok := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				d.unregisterClient(client)
				return
			}
		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				d.unregisterClient(client)
				return
			}
		}
	}
}
