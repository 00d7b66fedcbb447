package editor_test

import (
	"encoding/json"
	"testing"

	"github.com/layerpad/layerpad/internal/editor"
	"github.com/layerpad/layerpad/internal/geom"
	"github.com/stretchr/testify/require"
)

func TestEventJSON(t *testing.T) {
	var ev editor.Event
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"mousemove","point":{"x":1.5,"y":2}}`), &ev))
	require.Equal(t, editor.Event{Kind: editor.MouseMove, Point: geom.Pt(1.5, 2)}, ev)

	data, err := json.Marshal(editor.Event{Kind: editor.MouseUp, Point: geom.Pt(3, 4)})
	require.NoError(t, err)
	require.JSONEq(t, `{"kind":"mouseup","point":{"x":3,"y":4}}`, string(data))
}

func TestEventKindRejectsUnknown(t *testing.T) {
	var ev editor.Event
	err := json.Unmarshal([]byte(`{"kind":"wheel","point":{"x":0,"y":0}}`), &ev)
	require.Error(t, err)
	require.Equal(t, "EventKind(9)", editor.EventKind(9).String())
}

func TestEventRequiresKind(t *testing.T) {
	var ev editor.Event
	require.Error(t, json.Unmarshal([]byte(`{"point":{"x":5,"y":5}}`), &ev))

	var events []editor.Event
	err := json.Unmarshal([]byte(`[{"point":{"x":5,"y":5}},{"kind":"mousemove","point":{"x":6,"y":6}}]`), &events)
	require.Error(t, err)

	_, err = editor.EventKind(0).MarshalText()
	require.Error(t, err)
}
