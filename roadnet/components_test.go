// SPDX-License-Identifier: MIT

package roadnet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ambroute/roadnet"
)

func TestComponents_Reference(t *testing.T) {
	t.Parallel()
	net := roadnet.Reference()

	comps := net.Components()
	require.Len(t, comps, 1)
	assert.Equal(t, []int{0, 1, 4, 2, 5, 3}, comps[0])
}

func TestComponents_Isolated(t *testing.T) {
	t.Parallel()
	net := roadnet.Reference()
	// cut Airport (3) off: Tech Park–Airport and Mall–Airport
	require.NoError(t, net.SetWeight(2, 3, roadnet.NoRoad))
	require.NoError(t, net.SetWeight(3, 4, roadnet.NoRoad))

	comps := net.Components()
	require.Len(t, comps, 2)
	assert.Equal(t, []int{3}, comps[1])
	assert.False(t, net.Connected(0, 3))
	assert.True(t, net.Connected(0, 5))

	reach, err := net.Reachable(3)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, reach)
}

func TestReachable_OutOfRange(t *testing.T) {
	t.Parallel()
	_, err := roadnet.Reference().Reachable(9)
	assert.ErrorIs(t, err, roadnet.ErrIndexOutOfRange)
}
