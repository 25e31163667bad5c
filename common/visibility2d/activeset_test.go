package visibility2d

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// depthComparator orders segments by a fixed depth, then by index.
type depthComparator map[int]float64

func (c depthComparator) Compare(a, b int) int {
	if c[a] < c[b] {
		return -1
	}

	if c[a] > c[b] {
		return 1
	}

	if a < b {
		return -1
	}

	if a > b {
		return 1
	}

	return 0
}

func TestActiveSetNearest(t *testing.T) {
	set := NewActiveSet(depthComparator{0: 3, 1: 1, 2: 2})

	_, ok := set.Nearest()
	assert.False(t, ok)

	require.NoError(t, set.Insert(0))
	require.NoError(t, set.Insert(1))
	require.NoError(t, set.Insert(2))

	nearest, ok := set.Nearest()
	assert.True(t, ok)
	assert.Equal(t, 1, nearest)
	assert.Equal(t, 3, set.Len())

	require.NoError(t, set.Remove(1))
	nearest, _ = set.Nearest()
	assert.Equal(t, 2, nearest)

	require.NoError(t, set.Remove(0))
	nearest, _ = set.Nearest()
	assert.Equal(t, 2, nearest)
	assert.False(t, set.Contains(0))
	assert.True(t, set.Contains(2))
}

func TestActiveSetInvariantViolations(t *testing.T) {
	set := NewActiveSet(depthComparator{})

	err := set.Remove(4)
	assert.True(t, IsInvariantViolation(err))

	require.NoError(t, set.Insert(4))
	err = set.Insert(4)
	assert.True(t, IsInvariantViolation(err))
	assert.False(t, IsDegenerate(err))
	assert.Contains(t, err.Error(), "segment #4")
}

func TestActiveSetTiesFollowIndex(t *testing.T) {
	set := NewActiveSet(depthComparator{5: 1, 2: 1, 9: 1})

	for _, segment := range []int{5, 9, 2} {
		require.NoError(t, set.Insert(segment))
	}

	nearest, _ := set.Nearest()
	assert.Equal(t, 2, nearest)
}

func TestActiveSetAgainstLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	depths := depthComparator{}
	for i := 0; i < 200; i++ {
		depths[i] = float64(rng.Intn(50))
	}

	set := NewActiveSet(depths)
	members := map[int]bool{}

	for step := 0; step < 2000; step++ {
		segment := rng.Intn(200)

		if members[segment] {
			require.NoError(t, set.Remove(segment))
			delete(members, segment)
		} else {
			require.NoError(t, set.Insert(segment))
			members[segment] = true
		}

		expected := -1
		for candidate := range members {
			if expected == -1 || depths.Compare(candidate, expected) < 0 {
				expected = candidate
			}
		}

		nearest, ok := set.Nearest()
		assert.Equal(t, len(members) > 0, ok)
		assert.Equal(t, expected, nearest)
		assert.Equal(t, len(members), set.Len())
	}
}
