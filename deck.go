package main

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
)

// Card is one card definition. Two board slots share a Name to form a
// matchable pair; Image is an opaque resource reference for the client.
type Card struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// randInt returns a uniform random int in [0, n) using crypto/rand,
// discarding draws above the largest multiple of n to avoid modulo bias.
func randInt(n int) int {
	if n <= 1 {
		return 0
	}

	limit := math.MaxUint64 - math.MaxUint64%uint64(n)
	buf := make([]byte, 8)

	for {
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		if v := binary.BigEndian.Uint64(buf); v < limit {
			return int(v % uint64(n))
		}
	}
}

// shuffleSlots permutes a board in place (Fisher-Yates).
func shuffleSlots(slots []Card) {
	for i := len(slots) - 1; i > 0; i-- {
		j := randInt(i + 1)
		slots[i], slots[j] = slots[j], slots[i]
	}
}

// newBoard validates a deck of card definitions and returns a fresh
// doubled, shuffled board. The input slice is left untouched. For a deck
// of M cards the board holds 2M slots, each name appearing exactly twice.
func newBoard(cards []Card) ([]Card, error) {
	if len(cards) == 0 {
		return nil, fmt.Errorf("deck is empty")
	}

	seen := make(map[string]bool, len(cards))
	for _, c := range cards {
		if c.Name == "" {
			return nil, fmt.Errorf("deck contains a card with no name")
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("deck contains duplicate card name %q", c.Name)
		}
		seen[c.Name] = true
	}

	board := make([]Card, 0, len(cards)*2)
	board = append(board, cards...)
	board = append(board, cards...)

	shuffleSlots(board)

	return board, nil
}
