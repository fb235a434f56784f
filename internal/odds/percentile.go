// Package odds computes exact hand-category frequencies by enumerating every
// hand that can be dealt from a deck.
package odds

import (
	"github.com/lox/handodds/internal/combin"
	"github.com/lox/handodds/poker"
)

// DefaultHandSize is the number of cards in a hand.
const DefaultHandSize = 5

// Percentile returns the percentage of five-card hands from deck for which
// pred holds. It visits every combination once, in lexicographic order, on
// the calling goroutine. A deck with fewer than five cards gives 0.
func Percentile(pred func(poker.Hand) bool, deck poker.Deck) float64 {
	total := combin.Binomial(len(deck), DefaultHandSize)
	if total == 0 {
		return 0
	}

	var matches uint64
	for cards := range combin.All(deck, DefaultHandSize) {
		if pred(cards) {
			matches++
		}
	}
	return percent(matches, total)
}

func percent(matches, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(matches) / float64(total) * 100
}
