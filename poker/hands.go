package poker

import "strings"

// Hand is a selection of cards to classify. It is usually five cards but
// every predicate accepts any length, including zero.
type Hand []Card

// String returns the cards separated by spaces
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// RankCounts is the rank-count multiset of a hand, indexed by Rank.
type RankCounts [Ace + 1]int

// RankCounts counts the cards of each rank in the hand.
func (h Hand) RankCounts() RankCounts {
	var rc RankCounts
	for _, c := range h {
		if c.Rank <= Ace {
			rc[c.Rank]++
		}
	}
	return rc
}

// Counts returns the non-zero counts in descending order.
func (rc RankCounts) Counts() []int {
	var out []int
	for _, n := range rc {
		if n > 0 {
			out = append(out, n)
		}
	}
	// At most 13 entries.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] > out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// atLeast returns the number of distinct ranks appearing n or more times.
func (rc RankCounts) atLeast(n int) int {
	ranks := 0
	for _, c := range rc {
		if c >= n {
			ranks++
		}
	}
	return ranks
}

// exactly reports whether some rank appears exactly n times.
func (rc RankCounts) exactly(n int) bool {
	for _, c := range rc {
		if c == n {
			return true
		}
	}
	return false
}

// Rules holds the rule variants that alter classification thresholds.
// The zero value is the base game.
type Rules struct {
	// FourFingers allows flushes and straights to be made with four cards.
	FourFingers bool
	// Shortcut allows straights with gaps of one rank (e.g. 10 8 6 5 3).
	Shortcut bool
	// Smeared counts Hearts with Diamonds and Spades with Clubs for flushes.
	Smeared bool
}

// threshold is the number of cards needed for a flush or straight.
func (r Rules) threshold() int {
	if r.FourFingers {
		return 4
	}
	return 5
}

// HasHighCard reports whether the hand holds any card at all.
func HasHighCard(h Hand) bool {
	return len(h) > 0
}

// HasPair reports whether some rank appears at least twice.
func HasPair(h Hand) bool {
	return h.RankCounts().atLeast(2) >= 1
}

// HasTwoPair reports whether at least two distinct ranks appear twice or more.
func HasTwoPair(h Hand) bool {
	return h.RankCounts().atLeast(2) >= 2
}

// HasThreeOfAKind reports whether some rank appears at least three times.
func HasThreeOfAKind(h Hand) bool {
	return h.RankCounts().atLeast(3) >= 1
}

// HasStraight reports whether the distinct rank values contain a run of
// consecutive values at least as long as the rules' threshold. Aces are
// tried high (14) and low (1).
func HasStraight(h Hand, r Rules) bool {
	var present [Ace + 1]bool
	for _, c := range h {
		if c.Rank >= Two && c.Rank <= Ace {
			present[c.Rank] = true
		}
	}

	var high, low [len(Ranks)]int
	values := high[:0]
	for _, rank := range Ranks {
		if present[rank] {
			values = append(values, rank.Value())
		}
	}

	threshold := r.threshold()
	if LongestRun(values, r.Shortcut) >= threshold {
		return true
	}
	if !present[Ace] {
		return false
	}

	// The ace is last in values; as 1 it moves to the front.
	lowValues := append(low[:0], Ace.LowValue())
	lowValues = append(lowValues, values[:len(values)-1]...)
	return LongestRun(lowValues, r.Shortcut) >= threshold
}

// LongestRun returns the length of the longest run in ascending, distinct
// values where each step is exactly 1, or 1 or 2 when shortcut is set.
func LongestRun(values []int, shortcut bool) int {
	if len(values) == 0 {
		return 0
	}

	maxStep := 1
	if shortcut {
		maxStep = 2
	}

	longest, current := 1, 1
	for i := 1; i < len(values); i++ {
		diff := values[i] - values[i-1]
		if diff >= 1 && diff <= maxStep {
			current++
		} else {
			current = 1
		}
		longest = max(longest, current)
	}
	return longest
}

// HasFlush reports whether enough cards share a suit. Under Smeared rules
// suits of the same colour count together.
func HasFlush(h Hand, r Rules) bool {
	var counts [len(Suits)]int
	threshold := r.threshold()
	for _, c := range h {
		suit := c.Suit
		if r.Smeared {
			suit = suit.Color()
		}
		if suit > Clubs {
			continue
		}
		counts[suit]++
		if counts[suit] >= threshold {
			return true
		}
	}
	return false
}

// HasFullHouse reports whether one rank appears three or more times and
// another rank two or more times.
func HasFullHouse(h Hand) bool {
	counts := h.RankCounts().Counts()
	return len(counts) >= 2 && counts[0] >= 3 && counts[1] >= 2
}

// HasFourOfAKind reports whether some rank appears exactly four times.
func HasFourOfAKind(h Hand) bool {
	return h.RankCounts().exactly(4)
}

// HasStraightFlush reports whether the hand is both a straight and a flush
// under the same rules.
func HasStraightFlush(h Hand, r Rules) bool {
	return HasStraight(h, r) && HasFlush(h, r)
}

var royalRanks = [...]Rank{Ten, Jack, Queen, King, Ace}

// HasRoyalFlush reports whether the hand is a base-rules straight flush
// whose rank set is exactly {10, J, Q, K, A}.
func HasRoyalFlush(h Hand) bool {
	if !HasStraightFlush(h, Rules{}) {
		return false
	}
	rc := h.RankCounts()
	distinct := 0
	for _, c := range rc {
		if c > 0 {
			distinct++
		}
	}
	if distinct != len(royalRanks) {
		return false
	}
	for _, rank := range royalRanks {
		if rc[rank] == 0 {
			return false
		}
	}
	return true
}

// HasFiveOfAKind reports whether some rank appears exactly five times.
func HasFiveOfAKind(h Hand) bool {
	return h.RankCounts().exactly(5)
}

// HasFlushHouse reports a full house that is also a flush.
func HasFlushHouse(h Hand, r Rules) bool {
	return HasFullHouse(h) && HasFlush(h, r)
}

// HasFlushFive reports five of a kind that is also a flush.
func HasFlushFive(h Hand, r Rules) bool {
	return HasFiveOfAKind(h) && HasFlush(h, r)
}
