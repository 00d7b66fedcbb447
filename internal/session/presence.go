package session

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/layerpad/layerpad/internal/geom"
)

// PresenceManager tracks who is in a room and where their pointer last was.
type PresenceManager struct {
	mu        sync.RWMutex
	presences map[string]*PresencePayload // clientID -> presence
}

func NewPresenceManager() *PresenceManager {
	return &PresenceManager{
		presences: make(map[string]*PresencePayload),
	}
}

// Join records a client with no pointer yet.
func (pm *PresenceManager) Join(clientID, displayName string) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	pm.presences[clientID] = &PresencePayload{DisplayName: displayName}
}

// Move stores the client's pointer and returns the updated presence.
// Unknown clients are ignored.
func (pm *PresenceManager) Move(clientID string, p geom.Point) (PresencePayload, bool) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	presence, ok := pm.presences[clientID]
	if !ok {
		return PresencePayload{}, false
	}
	presence.Pointer = &p
	return *presence, true
}

func (pm *PresenceManager) Remove(clientID string) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	delete(pm.presences, clientID)
}

// Snapshot copies every presence.
func (pm *PresenceManager) Snapshot() map[string]*PresencePayload {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	result := make(map[string]*PresencePayload, len(pm.presences))
	for id, p := range pm.presences {
		cp := *p
		result[id] = &cp
	}
	return result
}

func (pm *PresenceManager) StateMessage() *Message {
	payload, err := json.Marshal(PresenceStatePayload{Presences: pm.Snapshot()})
	if err != nil {
		slog.Error("marshal presence state", "error", err)
		return nil
	}
	return &Message{
		Type:    TypePresenceState,
		Payload: payload,
	}
}
