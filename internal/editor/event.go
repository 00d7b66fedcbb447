package editor

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/layerpad/layerpad/internal/geom"
)

// EventKind is the kind of pointer event fed to the editor.
type EventKind int

const (
	MouseDown EventKind = iota + 1
	MouseMove
	MouseUp
)

var eventKindNames = map[EventKind]string{
	MouseDown: "mousedown",
	MouseMove: "mousemove",
	MouseUp:   "mouseup",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

func (k EventKind) MarshalText() ([]byte, error) {
	name, ok := eventKindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown event kind %d", int(k))
	}
	return []byte(name), nil
}

func (k *EventKind) UnmarshalText(text []byte) error {
	for kind, name := range eventKindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown event kind %q", text)
}

// Event is a pointer event in surface-local coordinates.
type Event struct {
	Kind  EventKind  `json:"kind"`
	Point geom.Point `json:"point"`
}

var errMissingKind = errors.New("pointer event has no kind")

// UnmarshalJSON decodes an event and rejects one without a kind.
func (e *Event) UnmarshalJSON(data []byte) error {
	type event Event
	var decoded event
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	if decoded.Kind == 0 {
		return errMissingKind
	}
	*e = Event(decoded)
	return nil
}
