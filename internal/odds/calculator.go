package odds

import (
	"context"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/handodds/internal/combin"
	"github.com/lox/handodds/poker"
)

// ProgressReporter is told how many of the total combinations have been
// evaluated. Calls are serialised, so implementations need no locking.
type ProgressReporter func(done, total uint64)

// Config controls a Calculator. The zero value is usable.
type Config struct {
	// Workers bounds the number of partitions evaluated at once. Zero means
	// one per CPU.
	Workers int

	// HandSize is the number of cards per hand. Zero means DefaultHandSize.
	HandSize int

	Logger   *log.Logger
	Clock    quartz.Clock
	Progress ProgressReporter
}

// Calculator enumerates every hand of a deck in parallel and counts the
// hands matching each category exactly.
//
// Work is split by the deck index of a hand's first card: partition i holds
// deck[i] followed by every (k-1)-combination of deck[i+1:]. Each partition
// owns its counters and they are summed once all partitions finish, so the
// result is the same for any worker count.
type Calculator struct {
	workers  int
	handSize int
	logger   *log.Logger
	clock    quartz.Clock
	progress ProgressReporter
}

// New returns a Calculator for cfg.
func New(cfg Config) *Calculator {
	c := &Calculator{
		workers:  cfg.Workers,
		handSize: cfg.HandSize,
		logger:   cfg.Logger,
		clock:    cfg.Clock,
		progress: cfg.Progress,
	}
	if c.workers <= 0 {
		c.workers = runtime.NumCPU()
	}
	if c.handSize <= 0 {
		c.handSize = DefaultHandSize
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	c.logger = c.logger.WithPrefix("odds")
	if c.clock == nil {
		c.clock = quartz.NewReal()
	}
	return c
}

// HandSize returns the number of cards per enumerated hand.
func (c *Calculator) HandSize() int {
	return c.handSize
}

// Count returns how many hands from deck satisfy pred, and how many hands
// there are in total.
func (c *Calculator) Count(ctx context.Context, deck poker.Deck, pred func(poker.Hand) bool) (matches, total uint64, err error) {
	counts, total, err := c.enumerate(ctx, deck, 1, func(h poker.Hand, counts []uint64) {
		if pred(h) {
			counts[0]++
		}
	})
	if err != nil {
		return 0, 0, err
	}
	return counts[0], total, nil
}

// Percentile returns the percentage of hands from deck that satisfy pred.
func (c *Calculator) Percentile(ctx context.Context, deck poker.Deck, pred func(poker.Hand) bool) (float64, error) {
	matches, total, err := c.Count(ctx, deck, pred)
	if err != nil {
		return 0, err
	}
	return percent(matches, total), nil
}

// Table evaluates each category independently on every hand in a single
// pass. A hand may count towards several categories. Nil categories means
// all of them, strongest first.
func (c *Calculator) Table(ctx context.Context, deck poker.Deck, rules poker.Rules, categories []poker.Category) (*Report, error) {
	if categories == nil {
		categories = poker.Categories()
	}
	preds := make([]func(poker.Hand) bool, len(categories))
	for i, cat := range categories {
		preds[i] = cat.Predicate(rules)
	}

	started := c.clock.Now()
	counts, total, err := c.enumerate(ctx, deck, len(categories), func(h poker.Hand, counts []uint64) {
		for i, pred := range preds {
			if pred(h) {
				counts[i]++
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return c.report(deck, categories, counts, total, false, started), nil
}

// Distribution assigns every hand to its best category, so the percentages
// add up to 100 for any deck that deals at least one hand.
func (c *Calculator) Distribution(ctx context.Context, deck poker.Deck, rules poker.Rules) (*Report, error) {
	started := c.clock.Now()
	counts, total, err := c.enumerate(ctx, deck, poker.NumCategories, func(h poker.Hand, counts []uint64) {
		if best, ok := poker.Best(h, rules); ok {
			counts[best]++
		}
	})
	if err != nil {
		return nil, err
	}

	categories := poker.Categories()
	ordered := make([]uint64, len(categories))
	for i, cat := range categories {
		ordered[i] = counts[cat]
	}
	return c.report(deck, categories, ordered, total, true, started), nil
}

func (c *Calculator) report(deck poker.Deck, categories []poker.Category, counts []uint64, total uint64, exclusive bool, started time.Time) *Report {
	r := &Report{
		Results:   make([]Result, len(categories)),
		Total:     total,
		DeckSize:  len(deck),
		HandSize:  c.handSize,
		Exclusive: exclusive,
		Started:   started,
		Elapsed:   c.clock.Since(started),
	}
	for i, cat := range categories {
		r.Results[i] = Result{Category: cat, Matches: counts[i], Total: total}
	}
	return r
}

// enumerate calls eval once for every hand of the configured size and
// returns the summed counters of width slots along with the number of hands.
// eval must only touch the counters it is given.
func (c *Calculator) enumerate(ctx context.Context, deck poker.Deck, width int, eval func(poker.Hand, []uint64)) ([]uint64, uint64, error) {
	k, n := c.handSize, len(deck)
	total := combin.Binomial(n, k)
	counts := make([]uint64, width)
	if total == 0 {
		c.logger.Debug("no hands to enumerate", "deck", n, "hand_size", k)
		return counts, 0, nil
	}

	// Partition i starts with deck[i]; the last usable first index is n-k.
	partitions := n - k + 1
	partials := make([][]uint64, partitions)

	var (
		mu   sync.Mutex
		done uint64
	)
	report := func(size uint64) {
		if c.progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		done += size
		c.progress(done, total)
	}

	start := c.clock.Now()
	c.logger.Debug("enumerating hands",
		"deck", n, "hand_size", k, "hands", total,
		"partitions", partitions, "workers", c.workers)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i := range partitions {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			slot := make([]uint64, width)
			hand := make(poker.Hand, k)
			hand[0] = deck[i]

			gen := combin.NewGenerator(deck[i+1:], k-1)
			for gen.Next() {
				copy(hand[1:], gen.Combination())
				eval(hand, slot)
			}
			partials[i] = slot
			report(combin.Binomial(n-i-1, k-1))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	for _, slot := range partials {
		for j, v := range slot {
			counts[j] += v
		}
	}

	c.logger.Debug("enumeration complete", "hands", total, "elapsed", c.clock.Since(start))
	return counts, total, nil
}
