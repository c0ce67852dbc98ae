//go:build cgo && geosteiner && !windows

package backend_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geosteiner-go/geosteiner/pkg/geosteiner/internal/backend"
)

func TestComputeESMTNative(t *testing.T) {
	require.NoError(t, backend.Open())
	defer func() {
		assert.NoError(t, backend.Close())
	}()

	coords := []float64{0, 0, 0, 1, 1, 0, 1, 1}
	tree, err := backend.ComputeESMT(coords, 4, true)
	require.NoError(t, err)

	assert.InDelta(t, 1+math.Sqrt(3), tree.Length, 1e-9)
	assert.Len(t, tree.SteinerPoints, 2)
	require.NoError(t, tree.CheckSpanningTree(4))

	basic, err := backend.ComputeESMT(coords, 4, false)
	require.NoError(t, err)
	assert.Nil(t, basic.Edges)
	assert.InDelta(t, tree.Length, basic.Length, 1e-12)
}

func TestComputeESMTNativeSizeMismatch(t *testing.T) {
	_, err := backend.ComputeESMT([]float64{0, 0, 1}, 2, true)
	require.ErrorIs(t, err, backend.ErrSizeMismatch)
}

func TestComputeESMTNativeTerminalCountOverflow(t *testing.T) {
	_, err := backend.ComputeESMT(nil, math.MaxInt32, true)
	require.ErrorIs(t, err, backend.ErrSizeMismatch)
}
