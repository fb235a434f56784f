package main

import (
	"fmt"

	"github.com/lox/handodds/poker"
)

type ClassifyCmd struct {
	Cards []string `arg:"" help:"Cards in the hand, e.g. 'As Ks Qs Js Ts'"`
}

func (cmd *ClassifyCmd) Run(g *Globals) error {
	s, err := g.load()
	if err != nil {
		return err
	}

	var hand poker.Hand
	for _, arg := range cmd.Cards {
		cards, err := poker.ParseCards(arg)
		if err != nil {
			return err
		}
		hand = append(hand, cards...)
	}
	if len(hand) == 0 {
		return fmt.Errorf("no cards given")
	}

	renderClassification(g.out(), hand, s.rules)
	return nil
}
