package poker

import (
	"math/rand/v2"
	"slices"
)

// Deck is an ordered sequence of cards. Duplicates are allowed so callers
// can model decks with extra or missing cards.
type Deck []Card

// StandardDeck returns the 52 cards of the suit x rank cross-product,
// ordered by suit then rank.
func StandardDeck() Deck {
	d := make(Deck, 0, len(Suits)*len(Ranks))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			d = append(d, NewCard(suit, rank))
		}
	}
	return d
}

// With returns a copy of the deck with cards appended.
func (d Deck) With(cards ...Card) Deck {
	out := make(Deck, 0, len(d)+len(cards))
	out = append(out, d...)
	return append(out, cards...)
}

// Without returns a copy of the deck with one occurrence of each given card
// removed. Cards not present are ignored; the second return value reports
// how many were found.
func (d Deck) Without(cards ...Card) (Deck, int) {
	out := slices.Clone(d)
	removed := 0
	for _, card := range cards {
		if i := slices.Index(out, card); i >= 0 {
			out = slices.Delete(out, i, i+1)
			removed++
		}
	}
	return out, removed
}

// Shuffle randomizes the order of the deck in place using Fisher-Yates
func (d Deck) Shuffle(rng *rand.Rand) {
	for i := len(d) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Count returns how many copies of card the deck holds.
func (d Deck) Count(card Card) int {
	n := 0
	for _, c := range d {
		if c == card {
			n++
		}
	}
	return n
}
