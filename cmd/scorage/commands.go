package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/scorage/internal/scoring"
	"github.com/KirkDiggler/scorage/internal/services/scorekeeper"
	"github.com/spf13/cobra"
)

// Version can be overridden at build time via -ldflags
var Version = "0.1.0-dev"

const defaultLedgerID = "default"

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "scorage",
		Short:         "Score keeper for trick-taking card games",
		Long:          "scorage keeps bids, tricks taken and scores for trick-taking card games, round by round.",
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", defaultConfigPath(), "path to the TOML config file")
	root.PersistentFlags().StringVar(&a.ledgerID, "ledger", defaultLedgerID, "name of the score sheet to use")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newShowCmd(a),
		newPlayerCmd(a),
		newRoundCmd(a),
		newEntryCmd(a, "bid", "Enter a player's bid for a round"),
		newEntryCmd(a, "tricks", "Enter the tricks a player took in a round"),
		newRulesCmd(a),
		newVersionCmd(),
	)

	return root
}

// ledgerCmd wraps a service call that returns a ledger view and prints it
func ledgerCmd(a *app, run func(cmd *cobra.Command, svc scorekeeper.Service, args []string) (*scorekeeper.LedgerView, string, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		svc, err := a.scores(cmd.Context())
		if err != nil {
			return err
		}

		view, notice, err := run(cmd, svc, args)
		if err != nil {
			return describe(err)
		}

		printLedger(cmd.OutOrStdout(), newPalette(a.colorEnabled()), view, notice)
		return nil
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the score table",
		Args:  cobra.NoArgs,
		RunE: ledgerCmd(a, func(cmd *cobra.Command, svc scorekeeper.Service, _ []string) (*scorekeeper.LedgerView, string, error) {
			output, err := svc.GetLedger(cmd.Context(), &scorekeeper.GetLedgerInput{LedgerID: a.ledgerID})
			if err != nil {
				return nil, "", err
			}
			return output.Ledger, "", nil
		}),
	}
}

func newPlayerCmd(a *app) *cobra.Command {
	player := &cobra.Command{
		Use:   "player",
		Short: "Manage the players",
	}

	player.AddCommand(
		&cobra.Command{
			Use:   "add <name>",
			Short: "Add a player",
			Args:  cobra.MinimumNArgs(1),
			RunE: ledgerCmd(a, func(cmd *cobra.Command, svc scorekeeper.Service, args []string) (*scorekeeper.LedgerView, string, error) {
				name := strings.Join(args, " ")
				output, err := svc.AddPlayer(cmd.Context(), &scorekeeper.AddPlayerInput{
					LedgerID: a.ledgerID,
					Name:     name,
				})
				if err != nil {
					return nil, "", err
				}
				return output.Ledger, fmt.Sprintf("Added %s.", strings.TrimSpace(name)), nil
			}),
		},
		&cobra.Command{
			Use:   "remove <player>",
			Short: "Remove a player and their entries",
			Args:  cobra.ExactArgs(1),
			RunE: ledgerCmd(a, func(cmd *cobra.Command, svc scorekeeper.Service, args []string) (*scorekeeper.LedgerView, string, error) {
				output, err := svc.RemovePlayer(cmd.Context(), &scorekeeper.RemovePlayerInput{
					LedgerID: a.ledgerID,
					Player:   args[0],
				})
				if err != nil {
					return nil, "", err
				}
				if !output.Removed {
					return output.Ledger, fmt.Sprintf("No player matches %q.", args[0]), nil
				}
				return output.Ledger, fmt.Sprintf("Removed %s.", args[0]), nil
			}),
		},
		&cobra.Command{
			Use:   "rename <player> <name>",
			Short: "Rename a player",
			Args:  cobra.MinimumNArgs(2),
			RunE: ledgerCmd(a, func(cmd *cobra.Command, svc scorekeeper.Service, args []string) (*scorekeeper.LedgerView, string, error) {
				output, err := svc.EditPlayerName(cmd.Context(), &scorekeeper.EditPlayerNameInput{
					LedgerID: a.ledgerID,
					Player:   args[0],
					Name:     strings.Join(args[1:], " "),
				})
				if err != nil {
					return nil, "", err
				}
				return output.Ledger, "", nil
			}),
		},
	)

	return player
}

func newRoundCmd(a *app) *cobra.Command {
	round := &cobra.Command{
		Use:   "round",
		Short: "Manage the rounds",
	}

	round.AddCommand(
		&cobra.Command{
			Use:   "add",
			Short: "Add the next round",
			Args:  cobra.NoArgs,
			RunE: ledgerCmd(a, func(cmd *cobra.Command, svc scorekeeper.Service, _ []string) (*scorekeeper.LedgerView, string, error) {
				output, err := svc.AddRound(cmd.Context(), &scorekeeper.AddRoundInput{LedgerID: a.ledgerID})
				if err != nil {
					return nil, "", err
				}
				return output.Ledger, fmt.Sprintf("Round %d added with %d hands.", output.Round+1, output.Hands), nil
			}),
		},
		&cobra.Command{
			Use:   "remove <round>",
			Short: "Remove a round",
			Args:  cobra.ExactArgs(1),
			RunE: ledgerCmd(a, func(cmd *cobra.Command, svc scorekeeper.Service, args []string) (*scorekeeper.LedgerView, string, error) {
				index, err := parseRound(args[0])
				if err != nil {
					return nil, "", err
				}
				output, err := svc.RemoveRound(cmd.Context(), &scorekeeper.RemoveRoundInput{
					LedgerID: a.ledgerID,
					Round:    index,
				})
				if err != nil {
					return nil, "", err
				}
				return output.Ledger, fmt.Sprintf("Round %d removed.", index+1), nil
			}),
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Remove every round and start over",
			Args:  cobra.NoArgs,
			RunE: ledgerCmd(a, func(cmd *cobra.Command, svc scorekeeper.Service, _ []string) (*scorekeeper.LedgerView, string, error) {
				output, err := svc.RemoveAllRounds(cmd.Context(), &scorekeeper.RemoveAllRoundsInput{LedgerID: a.ledgerID})
				if err != nil {
					return nil, "", err
				}
				return output.Ledger, "All rounds removed.", nil
			}),
		},
		&cobra.Command{
			Use:   "hands <round> <hands>",
			Short: "Change how many hands a round has",
			Args:  cobra.ExactArgs(2),
			RunE: ledgerCmd(a, func(cmd *cobra.Command, svc scorekeeper.Service, args []string) (*scorekeeper.LedgerView, string, error) {
				index, err := parseRound(args[0])
				if err != nil {
					return nil, "", err
				}
				output, err := svc.EditHands(cmd.Context(), &scorekeeper.EditHandsInput{
					LedgerID: a.ledgerID,
					Round:    index,
					Value:    args[1],
				})
				if err != nil {
					return nil, "", err
				}
				return output.Ledger, "", nil
			}),
		},
	)

	return round
}

// newEntryCmd builds the bid and tricks commands. Leaving out the value
// clears the entry.
func newEntryCmd(a *app, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <round> <player> [value]",
		Short: short,
		Args:  cobra.RangeArgs(2, 3),
		RunE: ledgerCmd(a, func(cmd *cobra.Command, svc scorekeeper.Service, args []string) (*scorekeeper.LedgerView, string, error) {
			index, err := parseRound(args[0])
			if err != nil {
				return nil, "", err
			}
			value := ""
			if len(args) == 3 {
				value = args[2]
			}

			if use == "bid" {
				output, err := svc.EditBid(cmd.Context(), &scorekeeper.EditBidInput{
					LedgerID: a.ledgerID,
					Round:    index,
					Player:   args[1],
					Value:    value,
				})
				if err != nil {
					return nil, "", err
				}
				return output.Ledger, "", nil
			}

			output, err := svc.EditTrick(cmd.Context(), &scorekeeper.EditTrickInput{
				LedgerID: a.ledgerID,
				Round:    index,
				Player:   args[1],
				Value:    value,
			})
			if err != nil {
				return nil, "", err
			}
			return output.Ledger, "", nil
		}),
	}
}

func newRulesCmd(a *app) *cobra.Command {
	var keys []string
	for _, rule := range scoring.Variants() {
		keys = append(keys, string(rule.Key))
	}

	return &cobra.Command{
		Use:       "rules [" + strings.Join(keys, "|") + "]",
		Short:     "List the scoring rules or switch to another variant",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: keys,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.scores(cmd.Context())
			if err != nil {
				return err
			}
			p := newPalette(a.colorEnabled())

			if len(args) == 1 {
				output, err := svc.SetRules(cmd.Context(), &scorekeeper.SetRulesInput{
					LedgerID: a.ledgerID,
					Rules:    scoring.RuleKey(strings.ToLower(args[0])),
				})
				if err != nil {
					return describe(err)
				}
				printLedger(cmd.OutOrStdout(), p, output.Ledger, fmt.Sprintf("Now scoring with %s.", output.Ledger.RuleName))
				return nil
			}

			output, err := svc.ListRules(cmd.Context(), &scorekeeper.ListRulesInput{LedgerID: a.ledgerID})
			if err != nil {
				return describe(err)
			}
			printRules(cmd.OutOrStdout(), p, output.Rules)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the scorage version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "scorage %s\n", Version) //nolint:errcheck
		},
	}
}

// parseRound converts a 1-based round number to a ledger index
func parseRound(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("round must be a number from 1, got %q", arg)
	}
	return n - 1, nil
}

// describe adds the user-facing hint for the errors people hit by mistyping
func describe(err error) error {
	switch {
	case errors.Is(err, scorekeeper.ErrAmbiguousPlayer):
		return fmt.Errorf("%w: type more of the name", err)
	case errors.Is(err, scorekeeper.ErrUnknownRule):
		return fmt.Errorf("%w: see `scorage rules`", err)
	default:
		return err
	}
}
