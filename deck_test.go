package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDeck(m int) []Card {
	cards := make([]Card, 0, m)
	for i := 0; i < m; i++ {
		cards = append(cards, Card{
			Name:  fmt.Sprintf("card-%d", i),
			Image: fmt.Sprintf("img-%d.png", i),
		})
	}
	return cards
}

func nameCounts(slots []Card) map[string]int {
	counts := make(map[string]int)
	for _, s := range slots {
		counts[s.Name]++
	}
	return counts
}

func TestNewBoardDoublesEveryCard(t *testing.T) {
	for m := 1; m <= 6; m++ {
		board, err := newBoard(sampleDeck(m))
		require.NoError(t, err)
		require.Len(t, board, 2*m)

		counts := nameCounts(board)
		require.Len(t, counts, m)
		for name, count := range counts {
			assert.Equalf(t, 2, count, "name %q should appear exactly twice", name)
		}
	}
}

func TestNewBoardRejectsBadDecks(t *testing.T) {
	_, err := newBoard(nil)
	assert.Error(t, err, "empty deck should be rejected")

	_, err = newBoard([]Card{})
	assert.Error(t, err)

	_, err = newBoard([]Card{
		{Name: "dup", Image: "a.png"},
		{Name: "dup", Image: "b.png"},
	})
	assert.Error(t, err, "colliding names should be rejected")

	_, err = newBoard([]Card{
		{Name: "", Image: "a.png"},
	})
	assert.Error(t, err, "nameless cards should be rejected")
}

func TestNewBoardLeavesInputUntouched(t *testing.T) {
	deck := sampleDeck(5)
	original := make([]Card, len(deck))
	copy(original, deck)

	_, err := newBoard(deck)
	require.NoError(t, err)
	assert.Equal(t, original, deck)
}

func TestShuffleSlotsIsAPermutation(t *testing.T) {
	board, err := newBoard(sampleDeck(8))
	require.NoError(t, err)

	before := nameCounts(board)
	shuffleSlots(board)
	assert.Equal(t, before, nameCounts(board))
}

func TestRandIntStaysInBounds(t *testing.T) {
	for n := 1; n <= 10; n++ {
		for i := 0; i < 200; i++ {
			v := randInt(n)
			require.GreaterOrEqual(t, v, 0)
			require.Less(t, v, n)
		}
	}
}

func TestRandIntCoversLargeRanges(t *testing.T) {
	// Boards longer than 256 slots need draws beyond a single byte; make
	// sure the upper part of the range is actually reachable.
	const n = 300

	sawHigh := false
	for i := 0; i < 20000; i++ {
		v := randInt(n)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, n)
		if v >= 256 {
			sawHigh = true
		}
	}
	assert.True(t, sawHigh, "randInt(%d) never returned a value >= 256", n)
}
