// Package combin enumerates k-combinations of a sequence and counts them.
package combin

import "iter"

// Generator walks every k-combination of a sequence in lexicographic order
// of index vectors. It holds only the current index vector and one output
// buffer, so memory is O(k) whatever the number of combinations.
//
// A Generator is not safe for concurrent use.
type Generator[T any] struct {
	items   []T
	k       int
	idx     []int
	buf     []T
	started bool
	done    bool
}

// NewGenerator returns a generator over the k-combinations of items.
// For k < 0 or k > len(items) it yields nothing; for k == 0 it yields a
// single empty combination.
func NewGenerator[T any](items []T, k int) *Generator[T] {
	g := &Generator[T]{items: items, k: k}
	if k >= 0 && k <= len(items) {
		g.idx = make([]int, k)
		g.buf = make([]T, k)
	}
	return g
}

// Next advances to the next combination and reports whether there is one.
func (g *Generator[T]) Next() bool {
	if g.done {
		return false
	}
	n, k := len(g.items), g.k
	if !g.started {
		g.started = true
		if k < 0 || k > n {
			g.done = true
			return false
		}
		for i := range g.idx {
			g.idx[i] = i
		}
		g.fill(0)
		return true
	}

	// Rightmost index that has not reached its last position.
	i := k - 1
	for i >= 0 && g.idx[i] == n-k+i {
		i--
	}
	if i < 0 {
		g.done = true
		return false
	}
	g.idx[i]++
	for j := i + 1; j < k; j++ {
		g.idx[j] = g.idx[j-1] + 1
	}
	g.fill(i)
	return true
}

func (g *Generator[T]) fill(from int) {
	for j := from; j < g.k; j++ {
		g.buf[j] = g.items[g.idx[j]]
	}
}

// Combination returns the current combination. The slice is reused by the
// next call to Next; callers that keep it must copy it.
func (g *Generator[T]) Combination() []T {
	return g.buf
}

// Indices returns the current index vector. Like Combination it is only
// valid until the next call to Next.
func (g *Generator[T]) Indices() []int {
	return g.idx
}

// Reset rewinds the generator to before the first combination.
func (g *Generator[T]) Reset() {
	g.started = false
	g.done = false
}

// All returns a restartable sequence of the k-combinations of items. Each
// yielded slice is reused between iterations.
func All[T any](items []T, k int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		g := NewGenerator(items, k)
		for g.Next() {
			if !yield(g.Combination()) {
				return
			}
		}
	}
}
