package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenresValue_EmptyStoresNull(t *testing.T) {
	var g Genres
	v, err := g.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestGenresRoundTrip_PreservesOrder(t *testing.T) {
	g := Genres{"Jazz", "Reggae", "Swing"}
	v, err := g.Value()
	require.NoError(t, err)

	var got Genres
	require.NoError(t, got.Scan(v))
	assert.Equal(t, g, got)
}

func TestGenresScan_NullYieldsNil(t *testing.T) {
	g := Genres{"stale"}
	require.NoError(t, g.Scan(nil))
	assert.Nil(t, []string(g))
}

func TestGenresScan_StringInput(t *testing.T) {
	var g Genres
	require.NoError(t, g.Scan(`["Rock n Roll"]`))
	assert.Equal(t, Genres{"Rock n Roll"}, g)
}

func TestGenresScan_RejectsUnsupportedType(t *testing.T) {
	var g Genres
	assert.Error(t, g.Scan(42))
}
