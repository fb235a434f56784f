package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/handodds/internal/odds"
	"github.com/lox/handodds/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func renderReport(w io.Writer, report *odds.Report, rules poker.Rules) {
	fmt.Fprintf(w, "%s  %d cards, %d per hand, %s hands\n",
		headerStyle.Render("deck "),
		report.DeckSize, report.HandSize, formatCount(report.Total))
	fmt.Fprintf(w, "%s  %s\n\n", headerStyle.Render("rules"), formatRules(rules))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("hand"),
		headerStyle.Render("hands"),
		headerStyle.Render("chance"),
		headerStyle.Render("chips x mult"))

	for _, res := range report.Results {
		chance := dimStyle.Render(".")
		if res.Matches > 0 {
			chance = percentStyle.Render(formatPercent(res.Percent()))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			categoryStyle.Render(res.Category.String()),
			countStyle.Render(formatCount(res.Matches)),
			chance,
			dimStyle.Render(fmt.Sprintf("%d x %d", res.Category.BaseChips(), res.Category.BaseMult())))
	}
	tw.Flush()

	mode := "independent"
	if report.Exclusive {
		mode = "exclusive"
	}
	fmt.Fprintf(w, "\n%s hands (%s) in %v\n", formatCount(report.Total), mode, report.Elapsed.Truncate(time.Millisecond))
}

func renderClassification(w io.Writer, hand poker.Hand, rules poker.Rules) {
	fmt.Fprintf(w, "%s  %s\n", headerStyle.Render("hand "), handStyle.Render(hand.String()))
	fmt.Fprintf(w, "%s  %s\n\n", headerStyle.Render("rules"), formatRules(rules))

	best, ok := poker.Best(hand, rules)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		headerStyle.Render("category"),
		headerStyle.Render("holds"),
		headerStyle.Render("chips x mult"))
	for _, c := range poker.Categories() {
		holds := dimStyle.Render(".")
		if c.Holds(hand, rules) {
			holds = percentStyle.Render("yes")
		}
		name := categoryStyle.Render(c.String())
		if ok && c == best {
			name = handStyle.Render(c.String() + " *")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, holds,
			dimStyle.Render(fmt.Sprintf("%d x %d", c.BaseChips(), c.BaseMult())))
	}
	tw.Flush()

	if ok {
		fmt.Fprintf(w, "\nbest: %s (%d chips x %d mult)\n", best, best.BaseChips(), best.BaseMult())
	}
}

func formatRules(r poker.Rules) string {
	var parts []string
	if r.FourFingers {
		parts = append(parts, "four fingers")
	}
	if r.Shortcut {
		parts = append(parts, "shortcut")
	}
	if r.Smeared {
		parts = append(parts, "smeared")
	}
	if len(parts) == 0 {
		return "standard"
	}
	return strings.Join(parts, ", ")
}

// formatPercent keeps enough precision for rare hands like royal flushes
func formatPercent(p float64) string {
	switch {
	case p >= 1:
		return fmt.Sprintf("%.2f%%", p)
	case p >= 0.01:
		return fmt.Sprintf("%.4f%%", p)
	default:
		return fmt.Sprintf("%.6f%%", p)
	}
}

// formatCount inserts thousands separators
func formatCount(n uint64) string {
	s := strconv.FormatUint(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
