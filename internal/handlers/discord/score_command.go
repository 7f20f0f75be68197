package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/scorage/internal/scoring"
	"github.com/KirkDiggler/scorage/internal/services/scorekeeper"
	"github.com/bwmarrin/discordgo"
)

// UI views recorded with the ledger
const (
	ViewScores = "scores"
	ViewRules  = "rules"
)

// Component custom IDs
const (
	ButtonAddRound  = "score_add_round"
	ButtonShowRules = "score_show_rules"
	SelectRules     = "score_select_rules"
)

// ScoreCommand handles the /score command. Each channel keeps its own ledger.
type ScoreCommand struct {
	BaseCommand
	scoreService scorekeeper.Service
}

// NewScoreCommand creates a new score command handler
func NewScoreCommand(scoreService scorekeeper.Service) *ScoreCommand {
	minRound := 1.0

	roundOption := func() *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "round",
			Description: "Round number",
			Required:    true,
			MinValue:    &minRound,
		}
	}
	playerOption := func() *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "player",
			Description: "Player name or the start of it",
			Required:    true,
		}
	}
	valueOption := func(description string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "value",
			Description: description,
			Required:    true,
		}
	}
	nameOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "name",
		Description: "Player name",
		Required:    true,
	}

	var ruleChoices []*discordgo.ApplicationCommandOptionChoice
	for _, rule := range scoring.Variants() {
		ruleChoices = append(ruleChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  rule.Name,
			Value: string(rule.Key),
		})
	}

	return &ScoreCommand{
		BaseCommand: BaseCommand{
			Name:        "score",
			Description: "Keep score for a trick-taking card game",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show the score table",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add-player",
					Description: "Add a player",
					Options:     []*discordgo.ApplicationCommandOption{nameOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove-player",
					Description: "Remove a player and their entries",
					Options:     []*discordgo.ApplicationCommandOption{playerOption()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "rename",
					Description: "Rename a player",
					Options:     []*discordgo.ApplicationCommandOption{playerOption(), nameOption},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add-round",
					Description: "Add the next round",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove-round",
					Description: "Remove a round",
					Options:     []*discordgo.ApplicationCommandOption{roundOption()},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reset-rounds",
					Description: "Remove every round and start over",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "bid",
					Description: "Enter a bid",
					Options: []*discordgo.ApplicationCommandOption{
						roundOption(), playerOption(), valueOption("Tricks bid, anything else clears it"),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "tricks",
					Description: "Enter tricks taken",
					Options: []*discordgo.ApplicationCommandOption{
						roundOption(), playerOption(), valueOption("Tricks taken, anything else clears it"),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "hands",
					Description: "Change how many hands a round has",
					Options: []*discordgo.ApplicationCommandOption{
						roundOption(), valueOption("Number of hands"),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "rules",
					Description: "Show or switch the scoring rules",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "variant",
							Description: "Rule variant to switch to",
							Choices:     ruleChoices,
						},
					},
				},
			},
		},
		scoreService: scoreService,
	}
}

// Handle processes a Discord interaction for the score command
func (c *ScoreCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	response, err := c.Execute(context.Background(), i.ChannelID, data.Options[0])
	if err != nil {
		log.Printf("Error handling /%s %s in channel %s: %v", c.Name, data.Options[0].Name, i.ChannelID, err)
		return RespondWithError(s, i, userMessage(err))
	}

	return RespondWithData(s, i, response)
}

// Execute runs one subcommand against the channel's ledger and renders the reply
func (c *ScoreCommand) Execute(ctx context.Context, ledgerID string, sub *discordgo.ApplicationCommandInteractionDataOption) (*discordgo.InteractionResponseData, error) {
	opts := optionMap(sub.Options)

	switch sub.Name {
	case "show":
		output, err := c.scoreService.SetView(ctx, &scorekeeper.SetViewInput{
			LedgerID: ledgerID,
			View:     ViewScores,
		})
		if err != nil {
			return nil, err
		}
		return renderLedger(output.Ledger, ""), nil

	case "add-player":
		name := stringOption(opts, "name")
		output, err := c.scoreService.AddPlayer(ctx, &scorekeeper.AddPlayerInput{
			LedgerID: ledgerID,
			Name:     name,
		})
		if err != nil {
			return nil, err
		}
		return renderLedger(output.Ledger, fmt.Sprintf("Added **%s**.", playerName(output.Ledger, output.PlayerID))), nil

	case "remove-player":
		player := stringOption(opts, "player")
		output, err := c.scoreService.RemovePlayer(ctx, &scorekeeper.RemovePlayerInput{
			LedgerID: ledgerID,
			Player:   player,
		})
		if err != nil {
			return nil, err
		}
		notice := fmt.Sprintf("Removed **%s**.", player)
		if !output.Removed {
			notice = fmt.Sprintf("No player matches **%s**.", player)
		}
		return renderLedger(output.Ledger, notice), nil

	case "rename":
		output, err := c.scoreService.EditPlayerName(ctx, &scorekeeper.EditPlayerNameInput{
			LedgerID: ledgerID,
			Player:   stringOption(opts, "player"),
			Name:     stringOption(opts, "name"),
		})
		if err != nil {
			return nil, err
		}
		return renderLedger(output.Ledger, fmt.Sprintf("Renamed to **%s**.", playerName(output.Ledger, output.PlayerID))), nil

	case "add-round":
		output, err := c.scoreService.AddRound(ctx, &scorekeeper.AddRoundInput{LedgerID: ledgerID})
		if err != nil {
			return nil, err
		}
		return renderLedger(output.Ledger, fmt.Sprintf("Round %d added with %d hands.", output.Round+1, output.Hands)), nil

	case "remove-round":
		round := roundOption(opts)
		output, err := c.scoreService.RemoveRound(ctx, &scorekeeper.RemoveRoundInput{
			LedgerID: ledgerID,
			Round:    round,
		})
		if err != nil {
			return nil, err
		}
		return renderLedger(output.Ledger, fmt.Sprintf("Round %d removed.", round+1)), nil

	case "reset-rounds":
		output, err := c.scoreService.RemoveAllRounds(ctx, &scorekeeper.RemoveAllRoundsInput{LedgerID: ledgerID})
		if err != nil {
			return nil, err
		}
		return renderLedger(output.Ledger, "All rounds removed."), nil

	case "bid":
		output, err := c.scoreService.EditBid(ctx, &scorekeeper.EditBidInput{
			LedgerID: ledgerID,
			Round:    roundOption(opts),
			Player:   stringOption(opts, "player"),
			Value:    stringOption(opts, "value"),
		})
		if err != nil {
			return nil, err
		}
		return renderLedger(output.Ledger, ""), nil

	case "tricks":
		output, err := c.scoreService.EditTrick(ctx, &scorekeeper.EditTrickInput{
			LedgerID: ledgerID,
			Round:    roundOption(opts),
			Player:   stringOption(opts, "player"),
			Value:    stringOption(opts, "value"),
		})
		if err != nil {
			return nil, err
		}
		return renderLedger(output.Ledger, ""), nil

	case "hands":
		output, err := c.scoreService.EditHands(ctx, &scorekeeper.EditHandsInput{
			LedgerID: ledgerID,
			Round:    roundOption(opts),
			Value:    stringOption(opts, "value"),
		})
		if err != nil {
			return nil, err
		}
		return renderLedger(output.Ledger, ""), nil

	case "rules":
		variant := stringOption(opts, "variant")
		if variant == "" {
			return c.showRules(ctx, ledgerID)
		}
		output, err := c.scoreService.SetRules(ctx, &scorekeeper.SetRulesInput{
			LedgerID: ledgerID,
			Rules:    scoring.RuleKey(variant),
		})
		if err != nil {
			return nil, err
		}
		return renderLedger(output.Ledger, fmt.Sprintf("Now scoring with **%s**.", output.Ledger.RuleName)), nil

	default:
		return nil, fmt.Errorf("unknown subcommand %q", sub.Name)
	}
}

// HandleComponent runs a button or menu click against the channel's ledger.
// The returned flag tells whether the reply replaces the clicked message.
func (c *ScoreCommand) HandleComponent(ctx context.Context, ledgerID string, data discordgo.MessageComponentInteractionData) (*discordgo.InteractionResponseData, bool, error) {
	switch data.CustomID {
	case ButtonAddRound:
		output, err := c.scoreService.AddRound(ctx, &scorekeeper.AddRoundInput{LedgerID: ledgerID})
		if err != nil {
			return nil, false, err
		}
		return renderLedger(output.Ledger, fmt.Sprintf("Round %d added with %d hands.", output.Round+1, output.Hands)), true, nil

	case ButtonShowRules:
		response, err := c.showRules(ctx, ledgerID)
		return response, false, err

	case SelectRules:
		if len(data.Values) == 0 {
			return nil, false, scorekeeper.ErrUnknownRule
		}
		output, err := c.scoreService.SetRules(ctx, &scorekeeper.SetRulesInput{
			LedgerID: ledgerID,
			Rules:    scoring.RuleKey(data.Values[0]),
		})
		if err != nil {
			return nil, false, err
		}
		rules, err := c.scoreService.ListRules(ctx, &scorekeeper.ListRulesInput{LedgerID: ledgerID})
		if err != nil {
			return nil, false, err
		}
		return renderRules(rules.Rules, fmt.Sprintf("Now scoring with **%s**.", output.Ledger.RuleName)), true, nil

	default:
		return nil, false, fmt.Errorf("unknown component %q", data.CustomID)
	}
}

func (c *ScoreCommand) showRules(ctx context.Context, ledgerID string) (*discordgo.InteractionResponseData, error) {
	if _, err := c.scoreService.SetView(ctx, &scorekeeper.SetViewInput{
		LedgerID: ledgerID,
		View:     ViewRules,
	}); err != nil {
		return nil, err
	}

	output, err := c.scoreService.ListRules(ctx, &scorekeeper.ListRulesInput{LedgerID: ledgerID})
	if err != nil {
		return nil, err
	}

	return renderRules(output.Rules, ""), nil
}

// userMessage turns a service error into something to show in the channel
func userMessage(err error) string {
	switch {
	case errors.Is(err, scorekeeper.ErrUnknownPlayer):
		return "No player matches that name."
	case errors.Is(err, scorekeeper.ErrAmbiguousPlayer):
		return "More than one player matches that name, type more of it."
	case errors.Is(err, scorekeeper.ErrRoundNotFound):
		return "There is no such round."
	case errors.Is(err, scorekeeper.ErrInvalidHands):
		return fmt.Sprintf("Hands must be a whole number of at least %d.", scoring.MinHands)
	case errors.Is(err, scorekeeper.ErrUnknownRule):
		return "Unknown rule variant."
	case errors.Is(err, scorekeeper.ErrEmptyName):
		return "Player names cannot be empty."
	default:
		return "Something went wrong keeping score."
	}
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	opt, ok := opts[name]
	if !ok {
		return ""
	}
	return opt.StringValue()
}

// roundOption converts the 1-based round option to a ledger index
func roundOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) int {
	opt, ok := opts["round"]
	if !ok {
		return -1
	}
	return int(opt.IntValue()) - 1
}

func playerName(view *scorekeeper.LedgerView, playerID string) string {
	for _, p := range view.Players {
		if p.ID == playerID {
			return p.Name
		}
	}
	return playerID
}
