package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavedPlayerRoundTrip(t *testing.T) {
	in := &SavedPlayer{X: 1234.5, Y: 250, Health: 7}

	data, err := EncodeSavedPlayer(in)
	require.NoError(t, err)

	out, err := DecodeSavedPlayer(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeSavedPlayerRejectsGarbage(t *testing.T) {
	_, err := DecodeSavedPlayer([]byte("not json"))
	assert.Error(t, err)
}

func TestDecodeSavedPlayerKeepsZeroHealth(t *testing.T) {
	// A save written mid-death has health at or below zero; it must decode
	// as-is so the load path can retrigger the death fade.
	out, err := DecodeSavedPlayer([]byte(`{"x":100,"y":250,"health":0}`))
	require.NoError(t, err)
	assert.Equal(t, 0, out.Health)
}
