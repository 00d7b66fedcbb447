package session

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/layerpad/layerpad/internal/auth"
	"github.com/layerpad/layerpad/internal/typeid"
)

const defaultDisplayName = "Anonymous"

type Handler struct {
	hub            *Hub
	auth           *auth.Service
	originPatterns []string
}

func NewHandler(hub *Hub, authSvc *auth.Service, originPatterns []string) *Handler {
	return &Handler{hub: hub, auth: authSvc, originPatterns: originPatterns}
}

type createResponse struct {
	SessionID string  `json:"sessionId"`
	Token     string  `json:"token"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
}

// Create opens a new session and returns a token scoped to it.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	sessionID := h.hub.CreateSession()

	token, err := h.auth.IssueToken(sessionID)
	if err != nil {
		slog.Error("issue token failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	writeJSON(w, http.StatusCreated, createResponse{
		SessionID: sessionID,
		Token:     token,
		Width:     h.hub.width,
		Height:    h.hub.height,
	})
}

// Layers returns the session's current editor snapshot.
func (h *Handler) Layers(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if auth.SessionIDFromContext(r.Context()) != sessionID {
		handleServiceError(w, ErrForbidden)
		return
	}

	if err := typeid.Validate(sessionID, typeid.PrefixSession); err != nil {
		handleServiceError(w, ErrSessionNotFound)
		return
	}

	snap, err := h.hub.Snapshot(r.Context(), sessionID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// Connect upgrades to a WebSocket and joins the session's room.
func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	tokenSession, err := h.auth.ValidateToken(token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}
	if tokenSession != sessionID {
		http.Error(w, "token not valid for this session", http.StatusForbidden)
		return
	}
	if typeid.Validate(sessionID, typeid.PrefixSession) != nil || !h.hub.HasSession(sessionID) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	displayName := r.URL.Query().Get("name")
	if displayName == "" {
		displayName = defaultDisplayName
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	client := NewClient(h.hub, conn, displayName, sessionID, uuid.New().String())
	h.hub.Register(client)

	ctx := r.Context()
	go client.WritePump(ctx)
	client.ReadPump(ctx)
}

func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
	case errors.Is(err, ErrForbidden):
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
	default:
		slog.Error("service error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
