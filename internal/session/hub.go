package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/layerpad/layerpad/internal/editor"
	"github.com/layerpad/layerpad/internal/engine"
	"github.com/layerpad/layerpad/internal/typeid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrForbidden       = errors.New("forbidden")
)

// Room is one shared editor and the clients watching it.
type Room struct {
	sessionID  string
	engine     *engine.Engine
	clients    map[string]*Client // clientID -> client
	presence   *PresenceManager
	lastFrame  int
	lastCursor string
	emptySince time.Time // zero while clients are connected
}

func NewRoom(sessionID string, width, height float64, now time.Time) *Room {
	e := engine.NewEngine(width, height)
	return &Room{
		sessionID:  sessionID,
		engine:     e,
		clients:    make(map[string]*Client),
		presence:   NewPresenceManager(),
		lastFrame:  e.Frame(),
		lastCursor: e.GetCursor(),
		emptySince: now,
	}
}

func (r *Room) frameMessage() *Message {
	return newMessage(TypeFrame, FramePayload{
		Frame:    r.engine.Frame(),
		Cursor:   r.engine.GetCursor(),
		Commands: r.engine.Commands(),
	})
}

type pointerEvent struct {
	client *Client
	event  editor.Event
}

type snapshotQuery struct {
	sessionID string
	reply     chan snapshotReply
}

type snapshotReply struct {
	snapshot editor.Snapshot
	err      error
}

// Hub owns every room. Engines are only touched from the goroutine
// running Run. A room without clients survives for idleTTL so a reload can
// rejoin it, then Run reaps it.
type Hub struct {
	mu         sync.RWMutex
	rooms      map[string]*Room // sessionID -> room
	width      float64
	height     float64
	idleTTL    time.Duration
	now        func() time.Time
	register   chan *Client
	unregister chan *Client
	events     chan pointerEvent
	queries    chan snapshotQuery
	done       chan struct{}
}

func NewHub(width, height float64, idleTTL time.Duration) *Hub {
	return &Hub{
		rooms:      make(map[string]*Room),
		width:      width,
		height:     height,
		idleTTL:    idleTTL,
		now:        time.Now,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan pointerEvent, 64),
		queries:    make(chan snapshotQuery),
		done:       make(chan struct{}),
	}
}

// CreateSession opens an empty room and returns its ID.
func (h *Hub) CreateSession() string {
	id := typeid.NewSessionID()

	h.mu.Lock()
	h.rooms[id] = NewRoom(id, h.width, h.height, h.now())
	h.mu.Unlock()

	slog.Info("session created", "session", id)
	return id
}

func (h *Hub) HasSession(id string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.rooms[id]
	return ok
}

// Run processes registrations, pointer events and queries until ctx ends.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	ticker := time.NewTicker(reapInterval(h.idleTTL))
	defer ticker.Stop()

	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case pe := <-h.events:
			h.handleEvent(pe.client, pe.event)
		case q := <-h.queries:
			snap, err := h.snapshot(q.sessionID)
			q.reply <- snapshotReply{snapshot: snap, err: err}
		case <-ticker.C:
			h.reap()
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Dispatch queues a pointer event from client for the hub loop.
func (h *Hub) Dispatch(client *Client, ev editor.Event) {
	select {
	case h.events <- pointerEvent{client: client, event: ev}:
	case <-h.done:
	}
}

func reapInterval(ttl time.Duration) time.Duration {
	return max(ttl/4, time.Second)
}

// reap drops rooms that have had no clients for longer than idleTTL.
func (h *Hub) reap() {
	cutoff := h.now().Add(-h.idleTTL)

	h.mu.Lock()
	defer h.mu.Unlock()
	for id, room := range h.rooms {
		if len(room.clients) == 0 && room.emptySince.Before(cutoff) {
			delete(h.rooms, id)
			slog.Info("session expired", "session", id)
		}
	}
}

// Snapshot asks the hub loop for a copy of a session's editor.
func (h *Hub) Snapshot(ctx context.Context, sessionID string) (editor.Snapshot, error) {
	q := snapshotQuery{sessionID: sessionID, reply: make(chan snapshotReply, 1)}
	select {
	case h.queries <- q:
	case <-h.done:
		return editor.Snapshot{}, ErrSessionNotFound
	case <-ctx.Done():
		return editor.Snapshot{}, ctx.Err()
	}

	select {
	case r := <-q.reply:
		return r.snapshot, r.err
	case <-ctx.Done():
		return editor.Snapshot{}, ctx.Err()
	}
}

func (h *Hub) snapshot(sessionID string) (editor.Snapshot, error) {
	room, ok := h.room(sessionID)
	if !ok {
		return editor.Snapshot{}, ErrSessionNotFound
	}
	return room.engine.Snapshot(), nil
}

func (h *Hub) room(sessionID string) (*Room, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	room, ok := h.rooms[sessionID]
	return room, ok
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.SessionID]
	if !ok {
		h.mu.Unlock()
		client.Send(newMessage(TypeError, ErrorPayload{Message: ErrSessionNotFound.Error()}))
		close(client.send)
		return
	}
	room.clients[client.ClientID] = client
	room.emptySince = time.Time{}
	h.mu.Unlock()

	room.presence.Join(client.ClientID, client.DisplayName)

	client.Send(newMessage(TypeWelcome, WelcomePayload{
		ClientID:  client.ClientID,
		SessionID: client.SessionID,
		Width:     h.width,
		Height:    h.height,
	}))
	if stateMsg := room.presence.StateMessage(); stateMsg != nil {
		client.Send(stateMsg)
	}
	// The first frame goes through the ordered queue so it follows the welcome.
	client.Send(room.frameMessage())

	joinMsg := newMessage(TypePresenceJoin, PresenceJoinPayload{
		ClientID:    client.ClientID,
		DisplayName: client.DisplayName,
	})
	joinMsg.ClientID = client.ClientID
	h.broadcastToRoom(client.SessionID, joinMsg, client.ClientID)

	slog.Info("client joined", "client", client.ClientID, "session", client.SessionID)
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	room, ok := h.rooms[client.SessionID]
	if !ok || room.clients[client.ClientID] != client {
		h.mu.Unlock()
		return
	}

	delete(room.clients, client.ClientID)
	close(client.send)
	room.presence.Remove(client.ClientID)

	if len(room.clients) == 0 {
		room.emptySince = h.now()
	}
	h.mu.Unlock()

	leaveMsg := newMessage(TypePresenceLeave, PresenceLeavePayload{ClientID: client.ClientID})
	leaveMsg.ClientID = client.ClientID
	h.broadcastToRoom(client.SessionID, leaveMsg, "")

	slog.Info("client left", "client", client.ClientID, "session", client.SessionID)
}

func (h *Hub) handleEvent(sender *Client, ev editor.Event) {
	room, ok := h.room(sender.SessionID)
	if !ok {
		return
	}

	room.engine.Dispatch(ev)

	if presence, ok := room.presence.Move(sender.ClientID, ev.Point); ok {
		updateMsg := newMessage(TypePresenceUpdate, presence)
		updateMsg.ClientID = sender.ClientID
		h.broadcastToRoom(sender.SessionID, updateMsg, sender.ClientID)
	}

	frame, cursor := room.engine.Frame(), room.engine.GetCursor()
	if frame == room.lastFrame && cursor == room.lastCursor {
		return
	}
	room.lastFrame, room.lastCursor = frame, cursor
	h.broadcastFrame(room)
}

func (h *Hub) broadcastFrame(room *Room) {
	msg := room.frameMessage()

	h.mu.RLock()
	clients := make([]*Client, 0, len(room.clients))
	for _, c := range room.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.SendFrame(msg)
	}
}

func (h *Hub) broadcastToRoom(sessionID string, msg *Message, excludeClientID string) {
	h.mu.RLock()
	room, ok := h.rooms[sessionID]
	if !ok {
		h.mu.RUnlock()
		return
	}

	clients := make([]*Client, 0, len(room.clients))
	for _, c := range room.clients {
		if c.ClientID != excludeClientID {
			clients = append(clients, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.Send(msg)
	}
}
