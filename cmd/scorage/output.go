package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/scorage/internal/services/scorekeeper"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

type palette struct {
	header   *color.Color
	positive *color.Color
	negative *color.Color
	muted    *color.Color
	notice   *color.Color
	err      *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{
		header:   color.New(color.FgCyan, color.Bold),
		positive: color.New(color.FgGreen),
		negative: color.New(color.FgRed),
		muted:    color.New(color.Faint),
		notice:   color.New(color.FgYellow),
		err:      color.New(color.FgRed, color.Bold),
	}
	if !enabled {
		for _, c := range []*color.Color{p.header, p.positive, p.negative, p.muted, p.notice, p.err} {
			c.DisableColor()
		}
	}
	return p
}

// points colors a padded cell by the sign of value
func (p *palette) points(cell string, value *int) string {
	switch {
	case value == nil:
		return p.muted.Sprint(cell)
	case *value < 0:
		return p.negative.Sprint(cell)
	default:
		return p.positive.Sprint(cell)
	}
}

// printLedger writes the score table. Cells are padded before coloring so
// escape codes never skew the columns.
func printLedger(w io.Writer, p *palette, view *scorekeeper.LedgerView, notice string) {
	if notice != "" {
		fmt.Fprintln(w, p.notice.Sprint(notice)) //nolint:errcheck
	}

	header := []string{"#", "Hands"}
	for _, player := range view.Players {
		header = append(header, player.Name)
	}
	header = append(header, "Bids", "Tricks")

	type cell struct {
		text  string
		value *int
		score bool
	}

	rows := [][]cell{}
	for _, round := range view.Rounds {
		row := []cell{{text: strconv.Itoa(round.Number)}, {text: strconv.Itoa(round.Hands)}}
		for _, e := range round.Entries {
			row = append(row, cell{text: entryText(e), value: e.Points, score: true})
		}
		row = append(row, cell{text: intText(round.TotalBids)}, cell{text: intText(round.TotalTricks)})
		rows = append(rows, row)
	}

	total := []cell{{text: "Total"}, {}}
	for _, player := range view.Players {
		total = append(total, cell{text: intText(player.Score), value: player.Score, score: true})
	}
	total = append(total, cell{}, cell{})
	rows = append(rows, total)

	widths := make([]int, len(header))
	for c, h := range header {
		widths[c] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for c, x := range row {
			widths[c] = max(widths[c], runewidth.StringWidth(x.text))
		}
	}

	line := make([]string, len(header))
	for c, h := range header {
		line[c] = p.header.Sprint(runewidth.FillRight(h, widths[c]))
	}
	fmt.Fprintln(w, strings.Join(line, "  ")) //nolint:errcheck

	for _, row := range rows {
		for c, x := range row {
			padded := runewidth.FillRight(x.text, widths[c])
			if x.score {
				padded = p.points(padded, x.value)
			}
			line[c] = padded
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(line, "  "), " ")) //nolint:errcheck
	}

	fmt.Fprintln(w, p.muted.Sprintf("Rules: %s. Next round: %d hands.", view.RuleName, view.NextHands)) //nolint:errcheck
}

// printRules lists every rule variant, marking the active one
func printRules(w io.Writer, p *palette, rules []*scorekeeper.RuleView) {
	for _, rule := range rules {
		marker := "  "
		if rule.Active {
			marker = "* "
		}
		fmt.Fprintf(w, "%s%s %s\n", marker, p.header.Sprint(rule.Name), p.muted.Sprintf("(%s)", rule.Key)) //nolint:errcheck
		for _, detail := range rule.Details {
			fmt.Fprintf(w, "    - %s\n", detail) //nolint:errcheck
		}
	}
}

func entryText(e *scorekeeper.EntryView) string {
	if e.Bid == nil && e.Tricks == nil {
		return "."
	}
	text := intText(e.Bid) + "/" + intText(e.Tricks)
	if e.Points != nil {
		text += " " + strconv.Itoa(*e.Points)
	}
	return text
}

func intText(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}
