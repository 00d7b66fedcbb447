package typeid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIDsCarryPrefix(t *testing.T) {
	layer := NewLayerID()
	require.True(t, strings.HasPrefix(layer, "layer_"))
	require.NoError(t, Validate(layer, PrefixLayer))

	sess := NewSessionID()
	require.NoError(t, Validate(sess, PrefixSession))
	require.NotEqual(t, sess, NewSessionID())
}

func TestValidateRejects(t *testing.T) {
	require.Error(t, Validate(NewLayerID(), PrefixSession))
	require.Error(t, Validate("not an id", PrefixLayer))
}
