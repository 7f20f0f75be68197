package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/scorage/internal/services/scorekeeper"
	"github.com/bwmarrin/discordgo"
	"github.com/mattn/go-runewidth"
)

// maxColumnWidth caps player columns so long names don't wrap the code block
const maxColumnWidth = 12

// renderLedger renders the score table with its action buttons
func renderLedger(view *scorekeeper.LedgerView, notice string) *discordgo.InteractionResponseData {
	description := "```\n" + renderTable(view) + "\n```"
	if notice != "" {
		description = notice + "\n" + description
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Scores",
		Description: description,
		Color:       colorTable,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Rules: %s | Next round: %d hands", view.RuleName, view.NextHands),
		},
	}

	if leaders := leaders(view); len(leaders) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Leading",
			Value:  strings.Join(leaders, ", "),
			Inline: true,
		})
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Add Round",
						Style:    discordgo.PrimaryButton,
						CustomID: ButtonAddRound,
						Emoji: &discordgo.ComponentEmoji{
							Name: "➕",
						},
					},
					discordgo.Button{
						Label:    "Show Rules",
						Style:    discordgo.SecondaryButton,
						CustomID: ButtonShowRules,
						Emoji: &discordgo.ComponentEmoji{
							Name: "📜",
						},
					},
				},
			},
		},
	}
}

// renderTable lays the ledger out as fixed-width text: one row per round,
// a column per player holding bid/tricks and points, then the totals.
func renderTable(view *scorekeeper.LedgerView) string {
	header := []string{"#", "H"}
	for _, p := range view.Players {
		header = append(header, runewidth.Truncate(p.ShortName, maxColumnWidth, "…"))
	}
	header = append(header, "Bid", "Tk")

	rows := [][]string{header}
	for _, round := range view.Rounds {
		row := []string{strconv.Itoa(round.Number), strconv.Itoa(round.Hands)}
		for _, e := range round.Entries {
			row = append(row, entryCell(e))
		}
		row = append(row, optional(round.TotalBids, ""), optional(round.TotalTricks, ""))
		rows = append(rows, row)
	}

	total := []string{"Tot", ""}
	for _, p := range view.Players {
		total = append(total, optional(p.Score, "-"))
	}
	total = append(total, "", "")
	rows = append(rows, total)

	widths := make([]int, len(header))
	for _, row := range rows {
		for c, cell := range row {
			widths[c] = max(widths[c], runewidth.StringWidth(cell))
		}
	}

	lines := make([]string, len(rows))
	for r, row := range rows {
		cells := make([]string, len(row))
		for c, cell := range row {
			cells[c] = runewidth.FillRight(cell, widths[c])
		}
		lines[r] = strings.TrimRight(strings.Join(cells, "  "), " ")
	}

	return strings.Join(lines, "\n")
}

// entryCell renders "bid/tricks points", with "-" for a missing value and
// "." when nothing was entered
func entryCell(e *scorekeeper.EntryView) string {
	if e.Bid == nil && e.Tricks == nil {
		return "."
	}
	cell := optional(e.Bid, "-") + "/" + optional(e.Tricks, "-")
	if e.Points != nil {
		cell += " " + strconv.Itoa(*e.Points)
	}
	return cell
}

func optional(v *int, missing string) string {
	if v == nil {
		return missing
	}
	return strconv.Itoa(*v)
}

// leaders returns the names of the players sharing the top score
func leaders(view *scorekeeper.LedgerView) []string {
	var best *int
	var names []string
	for _, p := range view.Players {
		if p.Score == nil {
			continue
		}
		switch {
		case best == nil || *p.Score > *best:
			best = p.Score
			names = []string{p.Name}
		case *p.Score == *best:
			names = append(names, p.Name)
		}
	}
	return names
}

// renderRules lists the rule variants with a menu to switch between them
func renderRules(rules []*scorekeeper.RuleView, notice string) *discordgo.InteractionResponseData {
	embed := &discordgo.MessageEmbed{
		Title:       "Scoring rules",
		Description: notice,
		Color:       colorRules,
	}

	options := make([]discordgo.SelectMenuOption, 0, len(rules))
	for _, rule := range rules {
		name := rule.Name
		if rule.Active {
			name += " (active)"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  name,
			Value: "- " + strings.Join(rule.Details, "\n- "),
		})
		options = append(options, discordgo.SelectMenuOption{
			Label:   rule.Name,
			Value:   string(rule.Key),
			Default: rule.Active,
		})
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						CustomID:    SelectRules,
						Placeholder: "Switch rules",
						Options:     options,
					},
				},
			},
		},
		Flags: discordgo.MessageFlagsEphemeral,
	}
}
