package ledger

import (
	"fmt"
	"testing"

	"github.com/KirkDiggler/scorage/internal/common/uuid/mocks"
	"github.com/KirkDiggler/scorage/internal/models"
	"github.com/KirkDiggler/scorage/internal/scoring"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LedgerTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockUUID *mocks.MockUUID
	nextID   int

	ledger *Ledger
}

func (s *LedgerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUUID = mocks.NewMockUUID(s.mockCtrl)

	s.nextID = 0
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		s.nextID++
		return fmt.Sprintf("player-%d", s.nextID)
	}).AnyTimes()

	l, err := Default(s.mockUUID)
	s.Require().NoError(err)
	l.TakeChanges()
	s.ledger = l
}

func (s *LedgerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func intPtr(v int) *int {
	return &v
}

func (s *LedgerTestSuite) TestNew_NilUUID() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilUUID)
}

func (s *LedgerTestSuite) TestDefault() {
	l, err := Default(s.mockUUID)
	s.Require().NoError(err)

	players := l.Players()
	s.Require().Len(players, 1)
	s.Equal(DefaultPlayerName, players[0].Name)
	s.Equal(scoring.RuleShing, l.Rules())
	s.Equal(1, l.NumRounds())

	round, err := l.Round(0)
	s.Require().NoError(err)
	s.Equal(DefaultHands, round.Hands)
	s.Empty(round.Bids)
	s.Empty(round.TricksTaken)

	s.Equal(AllFields, l.TakeChanges())
	s.Equal(Field(0), l.TakeChanges())
}

func (s *LedgerTestSuite) TestAddPlayer() {
	player := s.ledger.AddPlayer("  Amanda ")

	s.Equal("player-2", player.ID)
	s.Equal("Amanda", player.Name)
	s.Equal(FieldPlayerMap|FieldPlayerOrder, s.ledger.TakeChanges())

	players := s.ledger.Players()
	s.Require().Len(players, 2)
	s.Equal("player-2", players[1].ID)

	round, err := s.ledger.Round(0)
	s.Require().NoError(err)
	s.NotContains(round.Bids, "player-2")
	s.NotContains(round.TricksTaken, "player-2")
}

func (s *LedgerTestSuite) TestPlayers_ShortNames() {
	s.Require().NoError(s.ledger.EditPlayerName("player-1", "Amy"))
	s.ledger.AddPlayer("Amanda")
	s.ledger.AddPlayer("Bob")

	players := s.ledger.Players()
	s.Require().Len(players, 3)
	s.Equal("Amy", players[0].ShortName)
	s.Equal("Ama", players[1].ShortName)
	s.Equal("B", players[2].ShortName)
}

func (s *LedgerTestSuite) TestRemovePlayer_PrunesRounds() {
	p2 := s.ledger.AddPlayer("Second")
	s.ledger.AddRound()

	for round := 0; round < 2; round++ {
		s.Require().NoError(s.ledger.EditBid(round, "player-1", "1"))
		s.Require().NoError(s.ledger.EditTrick(round, "player-1", "1"))
		s.Require().NoError(s.ledger.EditBid(round, p2.ID, "0"))
		s.Require().NoError(s.ledger.EditTrick(round, p2.ID, "2"))
	}
	before := s.ledger.ScoreFor("player-1")
	s.ledger.TakeChanges()

	s.True(s.ledger.RemovePlayer(p2.ID))

	s.Equal(FieldPlayerMap|FieldPlayerOrder|FieldRounds, s.ledger.TakeChanges())
	for round := 0; round < s.ledger.NumRounds(); round++ {
		r, err := s.ledger.Round(round)
		s.Require().NoError(err)
		s.NotContains(r.Bids, p2.ID)
		s.NotContains(r.TricksTaken, p2.ID)
	}
	s.Equal(before, s.ledger.ScoreFor("player-1"))
	_, ok := s.ledger.Player(p2.ID)
	s.False(ok)
}

func (s *LedgerTestSuite) TestRemovePlayer_UnknownIsNoop() {
	s.False(s.ledger.RemovePlayer("nobody"))
	s.False(s.ledger.RemovePlayer("nobody"))
	s.Equal(Field(0), s.ledger.TakeChanges())
	s.Len(s.ledger.Players(), 1)
}

func (s *LedgerTestSuite) TestEditPlayerName() {
	s.Require().NoError(s.ledger.EditPlayerName("player-1", " Zed "))
	player, ok := s.ledger.Player("player-1")
	s.Require().True(ok)
	s.Equal("Zed", player.Name)
	s.Equal(FieldPlayerMap, s.ledger.TakeChanges())

	s.ErrorIs(s.ledger.EditPlayerName("nobody", "x"), ErrUnknownPlayer)
	s.Equal(Field(0), s.ledger.TakeChanges())
}

func (s *LedgerTestSuite) TestAddRound_PredictsHands() {
	expected := []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 1}
	for _, hands := range expected {
		round := s.ledger.AddRound()
		s.Equal(hands, round.Hands)
		s.Empty(round.Bids)
	}
	s.Equal(len(expected)+1, s.ledger.NumRounds())
	s.Equal(FieldRounds, s.ledger.TakeChanges())
}

func (s *LedgerTestSuite) TestRemoveRound() {
	s.ledger.AddRound()
	s.ledger.AddRound()
	s.ledger.TakeChanges()

	s.Require().NoError(s.ledger.RemoveRound(1))
	s.Equal(2, s.ledger.NumRounds())
	last, err := s.ledger.Round(1)
	s.Require().NoError(err)
	s.Equal(3, last.Hands)
	s.Equal(FieldRounds, s.ledger.TakeChanges())

	s.ErrorIs(s.ledger.RemoveRound(2), ErrRoundNotFound)
	s.ErrorIs(s.ledger.RemoveRound(-1), ErrRoundNotFound)
}

func (s *LedgerTestSuite) TestRemoveRound_NeverEmpty() {
	s.Require().NoError(s.ledger.EditBid(0, "player-1", "3"))
	s.ledger.AddRound()

	s.ledger.RemoveAllRounds()
	s.Require().NoError(s.ledger.RemoveRound(0))

	s.Equal(1, s.ledger.NumRounds())
	round, err := s.ledger.Round(0)
	s.Require().NoError(err)
	s.Equal(DefaultHands, round.Hands)
	s.Empty(round.Bids)
	s.Empty(round.TricksTaken)
}

func (s *LedgerTestSuite) TestEditBid() {
	s.Require().NoError(s.ledger.EditBid(0, "player-1", "2"))
	round, err := s.ledger.Round(0)
	s.Require().NoError(err)
	s.Equal(intPtr(2), round.Bids["player-1"])

	// Unparseable text clears the entry rather than failing
	s.Require().NoError(s.ledger.EditBid(0, "player-1", "two"))
	round, err = s.ledger.Round(0)
	s.Require().NoError(err)
	s.Contains(round.Bids, "player-1")
	s.Nil(round.Bids["player-1"])

	s.ErrorIs(s.ledger.EditBid(4, "player-1", "1"), ErrRoundNotFound)
	s.ErrorIs(s.ledger.EditBid(0, "nobody", "1"), ErrUnknownPlayer)
}

func (s *LedgerTestSuite) TestEditHands() {
	s.Require().NoError(s.ledger.EditHands(0, "7"))
	round, err := s.ledger.Round(0)
	s.Require().NoError(err)
	s.Equal(7, round.Hands)
	s.Equal(8, s.ledger.AddRound().Hands)

	s.ErrorIs(s.ledger.EditHands(0, "0"), ErrInvalidHands)
	s.ErrorIs(s.ledger.EditHands(0, "many"), ErrInvalidHands)
	s.ErrorIs(s.ledger.EditHands(5, "3"), ErrRoundNotFound)
}

func (s *LedgerTestSuite) TestSetRules() {
	s.Require().NoError(s.ledger.SetRules(scoring.RuleRegular))
	s.Equal(scoring.RuleRegular, s.ledger.Rules())
	s.Equal(FieldRules, s.ledger.TakeChanges())

	s.ErrorIs(s.ledger.SetRules("poker"), scoring.ErrUnknownRule)
	s.Equal(scoring.RuleRegular, s.ledger.Rules())
	s.Equal(Field(0), s.ledger.TakeChanges())
}

func (s *LedgerTestSuite) TestScenario_TwoPlayersShing() {
	p2 := s.ledger.AddPlayer("Player 2")

	s.Require().NoError(s.ledger.EditBid(0, "player-1", "2"))
	s.Require().NoError(s.ledger.EditTrick(0, "player-1", "2"))
	s.Require().NoError(s.ledger.EditBid(0, p2.ID, "0"))
	s.Require().NoError(s.ledger.EditTrick(0, p2.ID, "0"))

	s.Equal(intPtr(12), s.ledger.ScoreFor("player-1"))
	s.Equal(intPtr(5), s.ledger.ScoreFor(p2.ID))
}

func (s *LedgerTestSuite) TestScores_FollowRuleChange() {
	s.Require().NoError(s.ledger.EditBid(0, "player-1", "0"))
	s.Require().NoError(s.ledger.EditTrick(0, "player-1", "0"))
	s.Equal(intPtr(5), s.ledger.PointsFor(0, "player-1"))

	s.Require().NoError(s.ledger.SetRules(scoring.RuleAlternate))
	s.Equal(intPtr(10), s.ledger.PointsFor(0, "player-1"))
	s.Equal(intPtr(10), s.ledger.ScoreFor("player-1"))
}

func (s *LedgerTestSuite) TestScoreFor_NoDataIsNil() {
	s.Nil(s.ledger.ScoreFor("player-1"))

	s.Require().NoError(s.ledger.EditBid(0, "player-1", "1"))
	s.Nil(s.ledger.ScoreFor("player-1"))

	// A legitimate zero is not nil
	s.Require().NoError(s.ledger.SetRules(scoring.RuleRegular))
	s.Require().NoError(s.ledger.EditTrick(0, "player-1", "0"))
	s.Equal(intPtr(0), s.ledger.ScoreFor("player-1"))
}

func (s *LedgerTestSuite) TestScoreFor_SumsAcrossRounds() {
	s.ledger.AddRound()
	s.Require().NoError(s.ledger.EditBid(0, "player-1", "1"))
	s.Require().NoError(s.ledger.EditTrick(0, "player-1", "1"))
	s.Require().NoError(s.ledger.EditBid(1, "player-1", "2"))
	s.Require().NoError(s.ledger.EditTrick(1, "player-1", "0"))

	// 11 for the made bid, -5 for the miss
	s.Equal(intPtr(6), s.ledger.ScoreFor("player-1"))
}

func (s *LedgerTestSuite) TestSumRound() {
	p2 := s.ledger.AddPlayer("Second")

	s.Nil(s.ledger.SumRound(0, SumBids))
	s.Nil(s.ledger.SumRound(0, SumTricks))

	s.Require().NoError(s.ledger.EditBid(0, "player-1", "1"))
	s.Equal(intPtr(1), s.ledger.SumRound(0, SumBids))

	s.Require().NoError(s.ledger.EditBid(0, p2.ID, "0"))
	s.Require().NoError(s.ledger.EditTrick(0, p2.ID, "1"))
	s.Equal(intPtr(1), s.ledger.SumRound(0, SumBids))
	s.Equal(intPtr(1), s.ledger.SumRound(0, SumTricks))

	s.Nil(s.ledger.SumRound(3, SumBids))
}

func (s *LedgerTestSuite) TestFindPlayer() {
	s.Require().NoError(s.ledger.EditPlayerName("player-1", "Amy"))
	s.ledger.AddPlayer("Amanda")
	s.ledger.AddPlayer("Bob")

	tests := []struct {
		ref  string
		want string
		err  error
	}{
		{ref: "player-2", want: "player-2"},
		{ref: "amy", want: "player-1"},
		{ref: "AMA", want: "player-2"},
		{ref: " b ", want: "player-3"},
		{ref: "Am", err: ErrAmbiguousPlayer},
		{ref: "Carol", err: ErrUnknownPlayer},
		{ref: "", err: ErrUnknownPlayer},
	}

	for _, tt := range tests {
		got, err := s.ledger.FindPlayer(tt.ref)
		if tt.err != nil {
			s.ErrorIs(err, tt.err, tt.ref)
			continue
		}
		s.Require().NoError(err, tt.ref)
		s.Equal(tt.want, got, tt.ref)
	}
}

func (s *LedgerTestSuite) TestFindPlayer_ExactNameBeatsPrefix() {
	s.Require().NoError(s.ledger.EditPlayerName("player-1", "Al"))
	s.ledger.AddPlayer("Alan")

	id, err := s.ledger.FindPlayer("al")
	s.Require().NoError(err)
	s.Equal("player-1", id)
}

func (s *LedgerTestSuite) TestStateRoundTrip() {
	p2 := s.ledger.AddPlayer("Second")
	s.ledger.AddRound()
	s.Require().NoError(s.ledger.EditBid(1, p2.ID, "2"))
	s.Require().NoError(s.ledger.SetRules(scoring.RuleAlternate))
	s.ledger.TakeChanges()

	rebuilt, err := FromState(s.mockUUID, s.ledger.State())
	s.Require().NoError(err)

	s.Equal(s.ledger.State(), rebuilt.State())
	s.Equal(Field(0), rebuilt.TakeChanges())
}

func (s *LedgerTestSuite) TestFromState_Repairs() {
	state := State{
		Rules: "poker",
		PlayerMap: map[string]*models.Player{
			"a":      {ID: "a", Name: "Ann"},
			"orphan": {ID: "orphan", Name: "Nobody"},
		},
		PlayerOrder: []string{"a", "missing", "a"},
		Rounds: []*models.Round{
			{
				Hands:       3,
				Bids:        map[string]*int{"a": intPtr(1), "gone": intPtr(2)},
				TricksTaken: map[string]*int{"gone": intPtr(0)},
			},
		},
	}

	l, err := FromState(s.mockUUID, state)
	s.Require().NoError(err)

	s.Equal(scoring.DefaultRule, l.Rules())
	players := l.Players()
	s.Require().Len(players, 1)
	s.Equal("a", players[0].ID)

	round, err := l.Round(0)
	s.Require().NoError(err)
	s.Equal(map[string]*int{"a": intPtr(1)}, round.Bids)
	s.Empty(round.TricksTaken)

	s.Equal(AllFields, l.TakeChanges())
}

func (s *LedgerTestSuite) TestFromState_ClampsHands() {
	state := State{
		Rules:       scoring.RuleShing,
		PlayerMap:   map[string]*models.Player{"a": {ID: "a", Name: "Ann"}},
		PlayerOrder: []string{"a"},
		Rounds: []*models.Round{
			{Hands: 0, Bids: map[string]*int{"a": intPtr(1)}},
			{Hands: -2},
			{Hands: 5},
		},
	}

	l, err := FromState(s.mockUUID, state)
	s.Require().NoError(err)

	for i, want := range []int{DefaultHands, DefaultHands, 5} {
		round, err := l.Round(i)
		s.Require().NoError(err)
		s.Equal(want, round.Hands)
	}
	round, err := l.Round(0)
	s.Require().NoError(err)
	s.Equal(intPtr(1), round.Bids["a"])

	s.Equal(FieldRounds, l.TakeChanges())
}

func (s *LedgerTestSuite) TestFromState_NoRounds() {
	l, err := FromState(s.mockUUID, State{Rules: scoring.RuleShing})
	s.Require().NoError(err)

	s.Equal(1, l.NumRounds())
	s.Equal(FieldRounds, l.TakeChanges())
}

func (s *LedgerTestSuite) TestClone_IsIndependent() {
	clone := s.ledger.Clone()
	s.Require().NoError(clone.EditBid(0, "player-1", "4"))
	clone.AddPlayer("Other")

	round, err := s.ledger.Round(0)
	s.Require().NoError(err)
	s.NotContains(round.Bids, "player-1")
	s.Len(s.ledger.Players(), 1)
}

func (s *LedgerTestSuite) TestFieldString() {
	s.Equal("none", Field(0).String())
	s.Equal("rules,rounds", (FieldRules | FieldRounds).String())
	s.True(AllFields.Has(FieldPlayerMap | FieldRounds))
	s.False(FieldRules.Has(FieldRounds))
}
