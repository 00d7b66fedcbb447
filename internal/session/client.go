package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/coder/websocket"

	"github.com/layerpad/layerpad/internal/editor"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	maxMsgSize = 16 * 1024
	sendBuffer = 256
)

// Client is one WebSocket connection attached to a session.
//
// Frames carry the whole canvas, so only the newest undelivered one is kept:
// a client that falls behind during a drag skips straight to the latest
// picture instead of replaying every intermediate mousemove.
type Client struct {
	hub         *Hub
	conn        *websocket.Conn
	send        chan []byte
	frame       chan []byte // holds at most the latest pending frame
	DisplayName string
	SessionID   string
	ClientID    string
}

func NewClient(hub *Hub, conn *websocket.Conn, displayName, sessionID, clientID string) *Client {
	return &Client{
		hub:         hub,
		conn:        conn,
		send:        make(chan []byte, sendBuffer),
		frame:       make(chan []byte, 1),
		DisplayName: displayName,
		SessionID:   sessionID,
		ClientID:    clientID,
	}
}

// ReadPump decodes pointer messages and hands valid events to the hub until
// the connection drops.
func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	c.conn.SetReadLimit(maxMsgSize)

	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
			default:
				slog.Debug("read error", "error", err, "client", c.ClientID)
			}
			return
		}

		ev, ok := c.decodePointer(data)
		if !ok {
			continue
		}
		c.hub.Dispatch(c, ev)
	}
}

// decodePointer turns a raw message into a pointer event. Anything else is
// answered with an error message and skipped.
func (c *Client) decodePointer(data []byte) (editor.Event, bool) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		slog.Warn("invalid message", "error", err, "client", c.ClientID)
		c.sendError("invalid message")
		return editor.Event{}, false
	}

	if msg.Type != TypePointer {
		slog.Warn("unknown message type", "type", msg.Type, "client", c.ClientID)
		c.sendError("unknown message type " + msg.Type)
		return editor.Event{}, false
	}

	var ev editor.Event
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		slog.Warn("invalid pointer payload", "error", err, "client", c.ClientID)
		c.sendError("invalid pointer payload")
		return editor.Event{}, false
	}
	return ev, true
}

// WritePump forwards queued messages and the latest frame, and keeps the
// connection alive.
func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.write(ctx, message); err != nil {
				return
			}

		case frame := <-c.frame:
			if err := c.write(ctx, frame); err != nil {
				return
			}

		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}

		case <-ctx.Done():
			return
		}
	}
}

func (c *Client) write(ctx context.Context, data []byte) error {
	writeCtx, cancel := context.WithTimeout(ctx, writeWait)
	defer cancel()
	if err := c.conn.Write(writeCtx, websocket.MessageText, data); err != nil {
		slog.Debug("write error", "error", err, "client", c.ClientID)
		return err
	}
	return nil
}

// Send queues msg without blocking; it is dropped when the buffer is full.
func (c *Client) Send(msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("marshal message", "error", err)
		return
	}

	select {
	case c.send <- data:
	default:
		slog.Warn("client send buffer full, dropping message", "client", c.ClientID, "type", msg.Type)
	}
}

// SendFrame replaces any frame the client has not received yet.
// Only the hub goroutine calls it.
func (c *Client) SendFrame(msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("marshal frame", "error", err)
		return
	}

	select {
	case <-c.frame:
		slog.Debug("superseded pending frame", "client", c.ClientID)
	default:
	}
	select {
	case c.frame <- data:
	default:
	}
}

func (c *Client) sendError(message string) {
	c.Send(newMessage(TypeError, ErrorPayload{Message: message}))
}
