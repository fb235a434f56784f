package poker

import (
	"fmt"
	"strings"
)

// Category enumerates the poker hands ordered from weakest to strongest.
// A larger value takes precedence when several categories hold at once.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
	FiveOfAKind
	FlushHouse
	FlushFive
)

// NumCategories is the number of hand categories.
const NumCategories = int(FlushFive) + 1

type categoryInfo struct {
	name      string
	baseChips int
	baseMult  int
	holds     func(Hand, Rules) bool
}

// Base scores are the level one chips and mult of each hand.
var categoryTable = [NumCategories]categoryInfo{
	HighCard:      {"High Card", 5, 1, func(h Hand, _ Rules) bool { return HasHighCard(h) }},
	Pair:          {"Pair", 10, 2, func(h Hand, _ Rules) bool { return HasPair(h) }},
	TwoPair:       {"Two Pair", 20, 2, func(h Hand, _ Rules) bool { return HasTwoPair(h) }},
	ThreeOfAKind:  {"Three of a Kind", 30, 3, func(h Hand, _ Rules) bool { return HasThreeOfAKind(h) }},
	Straight:      {"Straight", 30, 4, HasStraight},
	Flush:         {"Flush", 35, 4, HasFlush},
	FullHouse:     {"Full House", 40, 4, func(h Hand, _ Rules) bool { return HasFullHouse(h) }},
	FourOfAKind:   {"Four of a Kind", 60, 7, func(h Hand, _ Rules) bool { return HasFourOfAKind(h) }},
	StraightFlush: {"Straight Flush", 100, 8, HasStraightFlush},
	RoyalFlush:    {"Royal Flush", 100, 8, func(h Hand, _ Rules) bool { return HasRoyalFlush(h) }},
	FiveOfAKind:   {"Five of a Kind", 120, 12, func(h Hand, _ Rules) bool { return HasFiveOfAKind(h) }},
	FlushHouse:    {"Flush House", 140, 14, HasFlushHouse},
	FlushFive:     {"Flush Five", 160, 16, HasFlushFive},
}

// Categories returns every category in precedence order, strongest first.
func Categories() []Category {
	out := make([]Category, 0, NumCategories)
	for c := FlushFive; ; c-- {
		out = append(out, c)
		if c == HighCard {
			return out
		}
	}
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	return int(c) < NumCategories
}

// String returns the display name of the category
func (c Category) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return categoryTable[c].name
}

// BaseChips returns the base chip value scored by the hand.
func (c Category) BaseChips() int {
	if !c.Valid() {
		return 0
	}
	return categoryTable[c].baseChips
}

// BaseMult returns the base multiplier scored by the hand.
func (c Category) BaseMult() int {
	if !c.Valid() {
		return 0
	}
	return categoryTable[c].baseMult
}

// Holds reports whether the hand satisfies the category's predicate under
// the given rules. Categories are evaluated independently: a full house
// also holds Two Pair, Three of a Kind and Pair.
func (c Category) Holds(h Hand, r Rules) bool {
	if !c.Valid() {
		return false
	}
	return categoryTable[c].holds(h, r)
}

// Predicate binds the rules and returns the category's predicate.
func (c Category) Predicate(r Rules) func(Hand) bool {
	return func(h Hand) bool {
		return c.Holds(h, r)
	}
}

// Best returns the highest-precedence category that holds for the hand.
// ok is false only for an empty hand.
func Best(h Hand, r Rules) (Category, bool) {
	for c := FlushFive; ; c-- {
		if c.Holds(h, r) {
			return c, true
		}
		if c == HighCard {
			return HighCard, false
		}
	}
}

// ParseCategory resolves a category from its name. Matching ignores case,
// spaces, hyphens and underscores ("two-pair", "TwoPair", "two pair").
func ParseCategory(name string) (Category, error) {
	want := normalizeName(name)
	for c := HighCard; c.Valid(); c++ {
		if normalizeName(c.String()) == want {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown hand category %q", name)
}

func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		if r >= 'A' && r <= 'Z' {
			return r - 'A' + 'a'
		}
		return r
	}, s)
}
