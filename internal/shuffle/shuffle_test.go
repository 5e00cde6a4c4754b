package shuffle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandDeterministic(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)

	for i := 0; i < 100; i++ {
		va := a.Float64()
		vb := b.Float64()
		assert.Equal(t, va, vb, "draw %d diverged for identical seeds", i)
		assert.GreaterOrEqual(t, va, 0.0)
		assert.Less(t, va, 1.0)
	}
}

func TestRandDifferentSeedsDiverge(t *testing.T) {
	a := NewRand(1)
	b := NewRand(2)

	diverged := false
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			diverged = true
			break
		}
	}
	assert.True(t, diverged, "seeds 1 and 2 produced identical streams")
}

func TestDeriveSeedStable(t *testing.T) {
	assert.Equal(t, DeriveSeed("session-123"), DeriveSeed("session-123"))
	assert.Equal(t, DeriveSeed(""), DeriveSeed(""))
}

func TestDeriveSeedCaseSensitive(t *testing.T) {
	assert.NotEqual(t, DeriveSeed("UserID"), DeriveSeed("userid"))
}

func TestDeriveSeedDistinctIdentifiers(t *testing.T) {
	identifiers := []string{
		"session-1", "session-2", "session-3",
		"session-1700000000000-abc123",
		"session-1700000000001-abc123",
		"a", "b", "ab", "ba",
	}

	seen := make(map[uint32]string)
	for _, id := range identifiers {
		seed := DeriveSeed(id)
		if prev, ok := seen[seed]; ok {
			t.Fatalf("identifiers %q and %q collided on seed %d", prev, id, seed)
		}
		seen[seed] = id
	}
}

func TestShuffleDeterministic(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g"}

	first := Shuffle(items, 99)
	second := Shuffle(items, 99)
	assert.Equal(t, first, second)
}

func TestShufflePreservesElements(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}

	shuffled := Shuffle(items, 7)
	assert.ElementsMatch(t, items, shuffled)
	assert.Len(t, shuffled, len(items))
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	original := make([]string, len(items))
	copy(original, items)

	Shuffle(items, 12345)
	assert.Equal(t, original, items)
}

func TestShuffleEdgeCases(t *testing.T) {
	assert.Empty(t, Shuffle([]int{}, 5))
	assert.Equal(t, []int{42}, Shuffle([]int{42}, 5))
}

func TestShuffleVariesAcrossSeeds(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	firstElements := make(map[int]bool)
	allSame := true
	base := Shuffle(items, 0)
	for seed := uint32(0); seed < 20; seed++ {
		shuffled := Shuffle(items, seed)
		firstElements[shuffled[0]] = true
		if !assert.ObjectsAreEqual(base, shuffled) {
			allSame = false
		}
	}

	assert.False(t, allSame, "20 distinct seeds all produced the same order")
	assert.GreaterOrEqual(t, len(firstElements), 2, "first element never varied across seeds")
}
