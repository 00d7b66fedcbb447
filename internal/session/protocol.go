package session

import (
	"encoding/json"

	"github.com/layerpad/layerpad/internal/geom"
	"github.com/layerpad/layerpad/internal/render"
)

type Message struct {
	Type      string          `json:"type"`
	SessionID string          `json:"sessionId,omitempty"`
	ClientID  string          `json:"clientId,omitempty"`
	Payload   json.RawMessage `json:"payload"`
}

const (
	// Client → server
	TypePointer = "pointer"

	// Server → client
	TypeWelcome = "welcome"
	TypeFrame   = "frame"
	TypeError   = "error"

	TypePresenceUpdate = "presence.update"
	TypePresenceState  = "presence.state"
	TypePresenceJoin   = "presence.join"
	TypePresenceLeave  = "presence.leave"
)

type WelcomePayload struct {
	ClientID  string  `json:"clientId"`
	SessionID string  `json:"sessionId"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
}

// FramePayload carries everything a remote canvas needs to repaint.
type FramePayload struct {
	Frame    int                  `json:"frame"`
	Cursor   string               `json:"cursor"`
	Commands []render.DrawCommand `json:"commands"`
}

type PresencePayload struct {
	Pointer     *geom.Point `json:"pointer,omitempty"`
	DisplayName string      `json:"displayName,omitempty"`
}

type PresenceStatePayload struct {
	Presences map[string]*PresencePayload `json:"presences"`
}

type PresenceJoinPayload struct {
	ClientID    string `json:"clientId"`
	DisplayName string `json:"displayName"`
}

type PresenceLeavePayload struct {
	ClientID string `json:"clientId"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func newMessage(typ string, payload any) *Message {
	data, _ := json.Marshal(payload)
	return &Message{Type: typ, Payload: data}
}
