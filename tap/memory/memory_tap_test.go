package memory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSizeHint(t *testing.T) {
	size, ok := CreateTap("a", 3072).SizeHint()
	require.True(t, ok)
	require.EqualValues(t, 3072, size)

	_, ok = CreateTap("b", -1).SizeHint()
	require.False(t, ok)
	require.Equal(t, "memory:b", CreateTap("b", -1).Identifier())
}
