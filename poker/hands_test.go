package poker

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/handodds/internal/randutil"
)

func hand(s string) Hand {
	return Hand(MustParseCards(s))
}

var (
	fourFingers = Rules{FourFingers: true}
	shortcut    = Rules{Shortcut: true}
	smeared     = Rules{Smeared: true}
)

func TestHighCardHand(t *testing.T) {
	t.Parallel()
	if HasHighCard(Hand{}) {
		t.Error("High Card needs cards")
	}
	for _, card := range StandardDeck() {
		if !HasHighCard(Hand{card}) {
			t.Errorf("High Card with %s", card)
		}
	}
}

func TestPairHand(t *testing.T) {
	t.Parallel()
	deck := StandardDeck()
	for _, c1 := range deck {
		if HasPair(Hand{c1}) {
			t.Errorf("Pair with only %s", c1)
		}
		for _, c2 := range deck {
			want := c1.Rank == c2.Rank
			if got := HasPair(Hand{c1, c2}); got != want {
				t.Errorf("Pair with %s and %s = %v, want %v", c1, c2, got, want)
			}
		}
	}
}

func TestRankCounts(t *testing.T) {
	t.Parallel()
	assert.Empty(t, Hand{}.RankCounts().Counts(), "no ranks")
	assert.Equal(t, []int{1}, hand("Ah").RankCounts().Counts())
	assert.Equal(t, []int{3}, hand("Ah Ad Ac").RankCounts().Counts())
	assert.Equal(t, []int{1, 1, 1}, hand("Ah 2h 3h").RankCounts().Counts())
	assert.Equal(t, []int{2, 2}, hand("Ah 2s Ac 2d").RankCounts().Counts())
	assert.Equal(t, []int{3, 2}, hand("2s Ah 2c Ad 2d").RankCounts().Counts())

	rc := hand("Ah 2s Ac 2d").RankCounts()
	assert.Equal(t, 2, rc[Ace])
	assert.Equal(t, 2, rc[Two])
	assert.Equal(t, 0, rc[King])
}

func TestCountedHands(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name                          string
		cards                         string
		pair, twoPair, trips          bool
		fullHouse, quads, fiveOfAKind bool
	}{
		{name: "empty", cards: ""},
		{name: "single", cards: "As"},
		{name: "pair", cards: "As Ad 4c", pair: true},
		{name: "two pair", cards: "Ah Ad 2s 2c", pair: true, twoPair: true},
		{name: "three of a kind short hand", cards: "2s 2c 2d", pair: true, trips: true},
		{name: "three of a kind", cards: "2s 2c 2d 9h Kc", pair: true, trips: true},
		{name: "full house", cards: "Ah Ad 2s 2c 2d", pair: true, twoPair: true, trips: true, fullHouse: true},
		{name: "four of a kind", cards: "As Ah Ad Ac 2s", pair: true, trips: true, quads: true},
		{name: "four of a kind alone", cards: "As Ah Ad Ac", pair: true, trips: true, quads: true},
		{name: "five of a kind", cards: "As Ah Ad Ac As", pair: true, trips: true, fiveOfAKind: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := hand(tt.cards)
			assert.Equal(t, tt.pair, HasPair(h), "Pair")
			assert.Equal(t, tt.twoPair, HasTwoPair(h), "Two Pair")
			assert.Equal(t, tt.trips, HasThreeOfAKind(h), "Three of a Kind")
			assert.Equal(t, tt.fullHouse, HasFullHouse(h), "Full House")
			assert.Equal(t, tt.quads, HasFourOfAKind(h), "Four of a Kind")
			assert.Equal(t, tt.fiveOfAKind, HasFiveOfAKind(h), "Five of a Kind")
		})
	}
}

func TestStraightHand(t *testing.T) {
	t.Parallel()
	straight4 := hand("As 2c 3d 4h")
	straight5 := hand("As 2c 3d 4h 5s")
	straight4Skipped := hand("As 2c 4d 5h")    // skips 3
	straight5Skipped := hand("As 2c 3d 5h 6s") // skips 4

	tests := []struct {
		hand        Hand
		fourFingers bool
		shortcut    bool
		want        bool
	}{
		{straight4, false, false, false},
		{straight5, false, false, true},
		{straight4Skipped, false, false, false},
		{straight5Skipped, false, false, false},

		{straight4, true, false, true},
		{straight5, true, false, true},
		{straight4Skipped, true, false, false},
		{straight5Skipped, true, false, false},

		{straight4, false, true, false},
		{straight5, false, true, true},
		{straight4Skipped, false, true, false},
		{straight5Skipped, false, true, true},

		{straight4, true, true, true},
		{straight5, true, true, true},
		{straight4Skipped, true, true, true},
		{straight5Skipped, true, true, true},
	}

	for i, tt := range tests {
		rules := Rules{FourFingers: tt.fourFingers, Shortcut: tt.shortcut}
		t.Run(fmt.Sprintf("%d_%s", i+1, tt.hand), func(t *testing.T) {
			if got := HasStraight(tt.hand, rules); got != tt.want {
				t.Errorf("HasStraight(%s, %+v) = %v, want %v", tt.hand, rules, got, tt.want)
			}
		})
	}
}

func TestStraightEdges(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
		rules Rules
		want  bool
	}{
		{"ace low mixed suits", "As 2c 3d 4h 5s", Rules{}, true},
		{"ace high", "Ts Jc Qd Kh As", Rules{}, true},
		{"no wrap around", "Qs Kc Ad 2h 3s", Rules{}, false},
		{"duplicate ranks ignored", "5s 6c 7d 7h 8s 9c", Rules{}, true},
		{"four cards base rules", "5s 6c 7d 8h", Rules{}, false},
		{"two rank gap with shortcut", "As 2c 5d 6h", Rules{FourFingers: true, Shortcut: true}, false},
		{"every other rank with shortcut", "2s 4c 6d 8h Ts", shortcut, true},
		{"one wide gap with shortcut", "2s 4c 6d 9h Js", shortcut, false},
		{"ace low gapped", "As 3c 5d 7h 9s", shortcut, true},
		{"empty", "", Rules{FourFingers: true, Shortcut: true}, false},
		{"single card", "As", Rules{FourFingers: true, Shortcut: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasStraight(hand(tt.cards), tt.rules))
		})
	}
}

func TestLongestRun(t *testing.T) {
	t.Parallel()
	tests := []struct {
		values   []int
		shortcut bool
		want     int
	}{
		{nil, false, 0},
		{nil, true, 0},
		{[]int{7}, false, 1},
		{[]int{1, 2, 3, 5, 6}, false, 3},
		{[]int{1, 2, 3, 5, 6}, true, 5},
		{[]int{1, 4}, true, 1},
		{[]int{2, 3, 4, 5, 6, 9, 10, 11, 12, 13, 14}, false, 6},
		{[]int{2, 4, 6, 8, 11, 13}, true, 4},
	}

	for _, tt := range tests {
		if got := LongestRun(tt.values, tt.shortcut); got != tt.want {
			t.Errorf("LongestRun(%v, %v) = %d, want %d", tt.values, tt.shortcut, got, tt.want)
		}
	}
}

func TestFlushHand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
		rules Rules
		want  bool
	}{
		{"five spades", "2s 5s 9s Js Ks", Rules{}, true},
		{"four spades", "2s 5s 9s Js 3h", Rules{}, false},
		{"four spades four fingers", "2s 5s 9s Js 3h", fourFingers, true},
		{"three spades four fingers", "2s 5s 9s 3h 4d", fourFingers, false},
		{"reds", "2h 5d 9h Jd Kh", Rules{}, false},
		{"reds smeared", "2h 5d 9h Jd Kh", smeared, true},
		{"blacks smeared", "2s 5c 9s Jc Ks", smeared, true},
		{"mixed colours smeared", "2s 5c 9h Jc Ks", smeared, false},
		{"mixed colours smeared four fingers", "2s 5c 9h Jc Ks", Rules{Smeared: true, FourFingers: true}, true},
		{"empty", "", fourFingers, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasFlush(hand(tt.cards), tt.rules))
		})
	}

	assert.False(t, HasFlush(hand("As 2c 3d 4h 5s"), Rules{}), "mixed suit straight is not a flush")
}

func TestStraightFlushAndRoyal(t *testing.T) {
	t.Parallel()
	royal := hand("Ts Js Qs Ks As")
	kingHigh := hand("9s Ts Js Qs Ks")
	broadway := hand("Ts Js Qs Ks Ah")
	steelWheel := hand("As 2s 3s 4s 5s")

	assert.True(t, HasStraightFlush(royal, Rules{}))
	assert.True(t, HasRoyalFlush(royal))

	assert.True(t, HasStraightFlush(kingHigh, Rules{}))
	assert.False(t, HasRoyalFlush(kingHigh), "9-K straight flush is not royal")

	assert.True(t, HasStraight(broadway, Rules{}))
	assert.False(t, HasStraightFlush(broadway, Rules{}))
	assert.False(t, HasRoyalFlush(broadway))

	assert.True(t, HasStraightFlush(steelWheel, Rules{}))
	assert.False(t, HasRoyalFlush(steelWheel))

	fourCard := hand("2s 3s 4s 5s 9h")
	assert.False(t, HasStraightFlush(fourCard, Rules{}))
	assert.True(t, HasStraightFlush(fourCard, fourFingers))

	assert.False(t, HasRoyalFlush(hand("Ts Js Qs Ks")), "royal flush ignores four fingers")
	assert.True(t, HasRoyalFlush(hand("Ts Js Qs Ks As Ts")), "a duplicate ten keeps the royal rank set")
}

func TestSecretHands(t *testing.T) {
	t.Parallel()
	assert.True(t, HasFlushFive(hand("As As As As As"), Rules{}))
	assert.False(t, HasFlushFive(hand("As As As As Ah"), Rules{}))
	assert.True(t, HasFiveOfAKind(hand("As As As As Ah")))
	assert.True(t, HasFlushFive(hand("As As As As Ah"), fourFingers))
	assert.True(t, HasFlushFive(hand("As As As Ac Ac"), smeared))

	assert.True(t, HasFlushHouse(hand("As As Ks Ks Ks"), Rules{}))
	assert.False(t, HasFlushHouse(hand("As Ah Ks Ks Ks"), Rules{}))
	assert.True(t, HasFlushHouse(hand("As Ah Ks Ks Ks"), fourFingers))
	assert.False(t, HasFlushHouse(hand("As As Ks Ks Qs"), Rules{}))
}

func TestEmptyHand(t *testing.T) {
	t.Parallel()
	all := Rules{FourFingers: true, Shortcut: true, Smeared: true}
	for _, c := range Categories() {
		assert.False(t, c.Holds(Hand{}, Rules{}), "%s with no cards", c)
		assert.False(t, c.Holds(Hand{}, all), "%s with no cards under all rules", c)
	}
	_, ok := Best(Hand{}, Rules{})
	assert.False(t, ok)
}

func TestClassificationIgnoresCardOrder(t *testing.T) {
	t.Parallel()
	rules := []Rules{{}, fourFingers, shortcut, smeared}
	deck := StandardDeck()

	for seed := int64(0); seed < 200; seed++ {
		deck.Shuffle(randutil.New(seed))
		h := Hand(deck[:5])

		perm := randutil.Perm(seed, len(h))
		shuffled := make(Hand, len(h))
		for i, j := range perm {
			shuffled[i] = h[j]
		}

		for _, r := range rules {
			for _, c := range Categories() {
				if c.Holds(h, r) != c.Holds(shuffled, r) {
					t.Fatalf("%s differs between %s and %s under %+v", c, h, shuffled, r)
				}
			}
		}
	}
}
