package scorekeeper

import (
	"github.com/KirkDiggler/scorage/internal/ledger"
)

func buildView(ledgerID string, e *entry) *LedgerView {
	l := e.ledger
	rule := l.Rule()
	players := l.Players()

	view := &LedgerView{
		LedgerID:    ledgerID,
		View:        e.view,
		Rules:       rule.Key,
		RuleName:    rule.Name,
		RuleDetails: append([]string(nil), rule.Details...),
		Players:     make([]*PlayerView, len(players)),
		Rounds:      make([]*RoundView, l.NumRounds()),
		NextHands:   l.NextHands(),
	}

	for i, p := range players {
		view.Players[i] = &PlayerView{
			ID:        p.ID,
			Name:      p.Name,
			ShortName: p.ShortName,
			Score:     l.ScoreFor(p.ID),
		}
	}

	for i := range view.Rounds {
		round, err := l.Round(i)
		if err != nil {
			continue
		}

		rv := &RoundView{
			Number:      i + 1,
			Hands:       round.Hands,
			Entries:     make([]*EntryView, len(players)),
			TotalBids:   l.SumRound(i, ledger.SumBids),
			TotalTricks: l.SumRound(i, ledger.SumTricks),
		}
		for j, p := range players {
			rv.Entries[j] = &EntryView{
				PlayerID: p.ID,
				Bid:      round.Bids[p.ID],
				Tricks:   round.TricksTaken[p.ID],
				Points:   l.PointsFor(i, p.ID),
			}
		}
		view.Rounds[i] = rv
	}

	return view
}
