package odds

import (
	"time"

	"github.com/lox/handodds/poker"
)

// Result is the exact frequency of one category.
type Result struct {
	Category poker.Category
	Matches  uint64
	Total    uint64
}

// Percent returns Matches as a percentage of Total, or 0 when Total is 0.
func (r Result) Percent() float64 {
	return percent(r.Matches, r.Total)
}

// Report holds the results of one enumeration run.
type Report struct {
	Results   []Result
	Total     uint64
	DeckSize  int
	HandSize  int
	Exclusive bool
	Started   time.Time
	Elapsed   time.Duration
}

// Result returns the entry for category c.
func (r *Report) Result(c poker.Category) (Result, bool) {
	for _, res := range r.Results {
		if res.Category == c {
			return res, true
		}
	}
	return Result{}, false
}

// Matches returns the sum of matches over all categories. For an exclusive
// distribution it equals Total.
func (r *Report) Matches() uint64 {
	var sum uint64
	for _, res := range r.Results {
		sum += res.Matches
	}
	return sum
}
