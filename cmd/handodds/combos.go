package main

import (
	"fmt"

	"github.com/lox/handodds/internal/combin"
)

type CombosCmd struct {
	N *int `help:"Number of items (defaults to the deck size)"`
	K *int `help:"Items per combination (defaults to the hand size)"`
}

func (cmd *CombosCmd) Run(g *Globals) error {
	s, err := g.load()
	if err != nil {
		return err
	}

	n, k := len(s.deck), s.config.HandSize
	if cmd.N != nil {
		n = *cmd.N
	}
	if cmd.K != nil {
		k = *cmd.K
	}

	count, err := binomial(n, k)
	if err != nil {
		return err
	}
	fmt.Fprintf(g.out(), "C(%d, %d) = %s\n", n, k, countStyle.Render(formatCount(count)))
	return nil
}

// binomial reports overflow as an error instead of a panic
func binomial(n, k int) (count uint64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("C(%d, %d) does not fit in 64 bits", n, k)
		}
	}()
	return combin.Binomial(n, k), nil
}
