package poker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when card notation cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in deck order.
var Suits = [...]Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the suit symbol
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Color folds the suit onto its colour: Hearts and Diamonds map to Hearts,
// Spades and Clubs map to Spades.
func (s Suit) Color() Suit {
	if s.IsRed() {
		return Hearts
	}
	return Spades
}

// Rank represents a card rank. The underlying value is the rank's
// numeric value with aces high.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank from Two to Ace.
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Value returns the numeric value of the rank (2-14)
func (r Rank) Value() int {
	return int(r)
}

// LowValue returns the value used for ace-low straights. Only the ace differs.
func (r Rank) LowValue() int {
	if r == Ace {
		return 1
	}
	return int(r)
}

// String returns the rank character used in card notation
func (r Rank) String() string {
	if r >= Two && r <= Ace {
		return string(rankChars[r-Two])
	}
	return "?"
}

const (
	rankChars = "23456789TJQKA"
	suitChars = "shdc"
)

// Card is an immutable (suit, rank) pair. Cards compare by value.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the display form of the card (e.g. "A♠")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Notation returns the two character ASCII form of the card (e.g. "As")
func (c Card) Notation() string {
	if c.Suit > Clubs {
		return c.Rank.String() + "?"
	}
	return c.Rank.String() + string(suitChars[c.Suit])
}

// ParseCard parses a single card such as "As", "Td" or "2c". Ranks and
// suits are case-insensitive; "10" is accepted for ten.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "10") {
		s = "T" + s[2:]
	}
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	idx := strings.IndexByte(rankChars, upper(s[0]))
	if idx < 0 {
		return Card{}, fmt.Errorf("%w: unknown rank %q in %q", ErrInvalidCard, s[0], s)
	}
	suit := strings.IndexByte(suitChars, lower(s[1]))
	if suit < 0 {
		return Card{}, fmt.Errorf("%w: unknown suit %q in %q", ErrInvalidCard, s[1], s)
	}

	return Card{Suit: Suit(suit), Rank: Two + Rank(idx)}, nil
}

// ParseCards parses a list of cards separated by spaces or commas
// ("As Kd, Qh"), or packed together ("AsKdQh").
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})

	var cards []Card
	for _, field := range fields {
		field = strings.ReplaceAll(field, "10", "T")
		if len(field)%2 != 0 {
			return nil, fmt.Errorf("%w: odd length token %q", ErrInvalidCard, field)
		}
		for i := 0; i < len(field); i += 2 {
			card, err := ParseCard(field[i : i+2])
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
		}
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
