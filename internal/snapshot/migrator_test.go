package snapshot

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/KirkDiggler/scorage/internal/common/uuid/mocks"
	"github.com/KirkDiggler/scorage/internal/ledger"
	"github.com/KirkDiggler/scorage/internal/repositories/store"
	storeMocks "github.com/KirkDiggler/scorage/internal/repositories/store/mocks"
	"github.com/KirkDiggler/scorage/internal/scoring"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MigratorTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockUUID *mocks.MockUUID
	nextID   int

	mr       *miniredis.Miniredis
	client   *redis.Client
	store    store.Repository
	migrator *Migrator
	ctx      context.Context

	testLedgerID string
}

func (s *MigratorTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUUID = mocks.NewMockUUID(s.mockCtrl)
	s.nextID = 0
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		s.nextID++
		return fmt.Sprintf("player-%d", s.nextID)
	}).AnyTimes()

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := store.NewRedis(&store.Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.store = repo

	migrator, err := New(&Config{
		Store:         s.store,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.migrator = migrator

	s.ctx = context.Background()
	s.testLedgerID = "test-ledger"
}

func (s *MigratorTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.mockCtrl.Finish()
}

func TestMigratorSuite(t *testing.T) {
	suite.Run(t, new(MigratorTestSuite))
}

func (s *MigratorTestSuite) redisKey(key string) string {
	return fmt.Sprintf("%s:%s:%s", store.DefaultKeyPrefix, s.testLedgerID, key)
}

func (s *MigratorTestSuite) requireDefaultLedger(l *ledger.Ledger) {
	players := l.Players()
	s.Require().Len(players, 1)
	s.Equal(ledger.DefaultPlayerName, players[0].Name)
	s.Equal(scoring.RuleShing, l.Rules())
	s.Require().Equal(1, l.NumRounds())
	round, err := l.Round(0)
	s.Require().NoError(err)
	s.Equal(1, round.Hands)
	s.Empty(round.Bids)
	s.Empty(round.TricksTaken)
}

func (s *MigratorTestSuite) TestNew_InvalidConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{UUIDGenerator: s.mockUUID})
	s.ErrorIs(err, ErrNilStore)

	_, err = New(&Config{Store: s.store})
	s.ErrorIs(err, ErrNilUUIDGenerator)
}

func (s *MigratorTestSuite) TestLoad_InvalidInput() {
	_, err := s.migrator.Load(s.ctx, &LoadInput{})
	s.ErrorIs(err, ErrInvalidLedgerID)
}

func (s *MigratorTestSuite) TestLoad_EmptyStoreMaterializesDefault() {
	output, err := s.migrator.Load(s.ctx, &LoadInput{LedgerID: s.testLedgerID})
	s.Require().NoError(err)

	s.True(output.Migrated)
	s.Equal(DefaultView, output.View)
	s.requireDefaultLedger(output.Ledger)
	s.Equal(ledger.Field(0), output.Ledger.TakeChanges())

	version, err := s.mr.Get(s.redisKey(store.KeyDataVersion))
	s.Require().NoError(err)
	s.Equal("2", version)

	rules, err := s.mr.Get(s.redisKey(store.KeyRules))
	s.Require().NoError(err)
	s.Equal(`"shing"`, rules)

	order, err := s.mr.Get(s.redisKey(store.KeyPlayerOrder))
	s.Require().NoError(err)
	s.Equal(`["player-1"]`, order)

	playerMap, err := s.mr.Get(s.redisKey(store.KeyPlayerMap))
	s.Require().NoError(err)
	s.JSONEq(`{"player-1":{"id":"player-1","name":"Player 1"}}`, playerMap)

	rounds, err := s.mr.Get(s.redisKey(store.KeyRounds))
	s.Require().NoError(err)
	s.JSONEq(`[{"hands":1,"bids":{},"tricksTaken":{}}]`, rounds)

	view, err := s.mr.Get(s.redisKey(store.KeyView))
	s.Require().NoError(err)
	s.Equal(`"setup"`, view)
}

func (s *MigratorTestSuite) TestLoad_StaleVersionDiscardsData() {
	// Version 1 snapshot in the old array-indexed shape
	s.Require().NoError(s.mr.Set(s.redisKey(store.KeyDataVersion), "1"))
	s.Require().NoError(s.mr.Set(s.redisKey("players"), `[{"name":"Old","bids":[1],"tricks":[1]}]`))
	s.Require().NoError(s.mr.Set(s.redisKey(store.KeyRules), `"regular"`))

	output, err := s.migrator.Load(s.ctx, &LoadInput{LedgerID: s.testLedgerID})
	s.Require().NoError(err)

	s.True(output.Migrated)
	s.requireDefaultLedger(output.Ledger)

	version, err := s.mr.Get(s.redisKey(store.KeyDataVersion))
	s.Require().NoError(err)
	s.Equal("2", version)

	rules, err := s.mr.Get(s.redisKey(store.KeyRules))
	s.Require().NoError(err)
	s.Equal(`"shing"`, rules)
}

func (s *MigratorTestSuite) TestRoundTrip_CurrentVersion() {
	first, err := s.migrator.Load(s.ctx, &LoadInput{LedgerID: s.testLedgerID})
	s.Require().NoError(err)

	l := first.Ledger
	p2 := l.AddPlayer("Amanda")
	l.AddRound()
	s.Require().NoError(l.EditBid(0, "player-1", "2"))
	s.Require().NoError(l.EditTrick(0, "player-1", "2"))
	s.Require().NoError(l.EditBid(1, p2.ID, "0"))
	s.Require().NoError(l.EditTrick(1, p2.ID, "nope"))
	s.Require().NoError(l.SetRules(scoring.RuleAlternate))

	s.Require().NoError(s.migrator.Save(s.ctx, &SaveInput{
		LedgerID: s.testLedgerID,
		Ledger:   l,
		Fields:   l.TakeChanges(),
	}))
	s.Require().NoError(s.migrator.SaveView(s.ctx, &SaveViewInput{
		LedgerID: s.testLedgerID,
		View:     "scores",
	}))

	second, err := s.migrator.Load(s.ctx, &LoadInput{LedgerID: s.testLedgerID})
	s.Require().NoError(err)

	s.False(second.Migrated)
	s.Equal("scores", second.View)
	s.Equal(l.State(), second.Ledger.State())
	s.Equal(l.Players(), second.Ledger.Players())
	s.Equal(l.ScoreFor("player-1"), second.Ledger.ScoreFor("player-1"))
	s.Equal(ledger.Field(0), second.Ledger.TakeChanges())
}

func (s *MigratorTestSuite) TestLoad_MissingFieldResets() {
	s.Require().NoError(s.mr.Set(s.redisKey(store.KeyDataVersion), "2"))
	s.Require().NoError(s.mr.Set(s.redisKey(store.KeyRules), `"regular"`))
	s.Require().NoError(s.mr.Set(s.redisKey(store.KeyPlayerMap), `{"a":{"id":"a","name":"Ann"}}`))
	s.Require().NoError(s.mr.Set(s.redisKey(store.KeyPlayerOrder), `["a"]`))

	output, err := s.migrator.Load(s.ctx, &LoadInput{LedgerID: s.testLedgerID})
	s.Require().NoError(err)

	s.True(output.Migrated)
	s.requireDefaultLedger(output.Ledger)
}

func (s *MigratorTestSuite) TestLoad_CorruptFieldResets() {
	s.Require().NoError(s.mr.Set(s.redisKey(store.KeyDataVersion), "2"))
	s.Require().NoError(s.mr.Set(s.redisKey(store.KeyRules), `"regular"`))
	s.Require().NoError(s.mr.Set(s.redisKey(store.KeyPlayerMap), `not json`))
	s.Require().NoError(s.mr.Set(s.redisKey(store.KeyPlayerOrder), `["a"]`))
	s.Require().NoError(s.mr.Set(s.redisKey(store.KeyRounds), `[]`))

	output, err := s.migrator.Load(s.ctx, &LoadInput{LedgerID: s.testLedgerID})
	s.Require().NoError(err)

	s.True(output.Migrated)
	s.requireDefaultLedger(output.Ledger)
}

func (s *MigratorTestSuite) TestLoad_RepairsDanglingEntries() {
	s.Require().NoError(s.mr.Set(s.redisKey(store.KeyDataVersion), "2"))
	s.Require().NoError(s.mr.Set(s.redisKey(store.KeyRules), `"regular"`))
	s.Require().NoError(s.mr.Set(s.redisKey(store.KeyPlayerMap), `{"a":{"id":"a","name":"Ann"}}`))
	s.Require().NoError(s.mr.Set(s.redisKey(store.KeyPlayerOrder), `["a"]`))
	s.Require().NoError(s.mr.Set(s.redisKey(store.KeyRounds), `[{"hands":4,"bids":{"a":1,"ghost":2},"tricksTaken":{"a":null}}]`))

	output, err := s.migrator.Load(s.ctx, &LoadInput{LedgerID: s.testLedgerID})
	s.Require().NoError(err)

	s.False(output.Migrated)
	s.False(output.Detached)
	s.Equal(DefaultView, output.View)
	s.Equal(scoring.RuleRegular, output.Ledger.Rules())

	round, err := output.Ledger.Round(0)
	s.Require().NoError(err)
	s.Equal(4, round.Hands)
	s.NotContains(round.Bids, "ghost")

	rounds, err := s.mr.Get(s.redisKey(store.KeyRounds))
	s.Require().NoError(err)
	s.JSONEq(`[{"hands":4,"bids":{"a":1},"tricksTaken":{"a":null}}]`, rounds)
}

func (s *MigratorTestSuite) TestSave_InvalidInput() {
	err := s.migrator.Save(s.ctx, &SaveInput{LedgerID: s.testLedgerID})
	s.ErrorIs(err, ErrNilLedger)

	err = s.migrator.Save(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidLedgerID)
}

func (s *MigratorTestSuite) TestSave_OnlyRequestedFields() {
	l, err := ledger.Default(s.mockUUID)
	s.Require().NoError(err)

	s.Require().NoError(s.migrator.Save(s.ctx, &SaveInput{
		LedgerID: s.testLedgerID,
		Ledger:   l,
		Fields:   ledger.FieldRules,
	}))

	s.True(s.mr.Exists(s.redisKey(store.KeyRules)))
	s.False(s.mr.Exists(s.redisKey(store.KeyRounds)))
	s.False(s.mr.Exists(s.redisKey(store.KeyPlayerMap)))
}

func (s *MigratorTestSuite) newMockMigrator() (*Migrator, *storeMocks.MockRepository) {
	mockStore := storeMocks.NewMockRepository(s.mockCtrl)
	migrator, err := New(&Config{
		Store:         mockStore,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	return migrator, mockStore
}

func (s *MigratorTestSuite) TestLoad_DisabledStoreNeverWrites() {
	migrator, mockStore := s.newMockMigrator()

	mockStore.EXPECT().Get(gomock.Any(), &store.GetInput{
		LedgerID: s.testLedgerID,
		Key:      store.KeyDataVersion,
	}).Return(&store.GetOutput{Found: false}, nil)
	mockStore.EXPECT().Enabled().Return(false).AnyTimes()
	mockStore.EXPECT().Set(gomock.Any(), gomock.Any()).Times(0)

	output, err := migrator.Load(s.ctx, &LoadInput{LedgerID: s.testLedgerID})
	s.Require().NoError(err)

	s.True(output.Migrated)
	s.requireDefaultLedger(output.Ledger)

	s.Require().NoError(migrator.Save(s.ctx, &SaveInput{
		LedgerID: s.testLedgerID,
		Ledger:   output.Ledger,
		Fields:   ledger.AllFields,
	}))
}

func (s *MigratorTestSuite) TestLoad_StoreReadErrorKeepsDataIntact() {
	migrator, mockStore := s.newMockMigrator()

	mockStore.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
	mockStore.EXPECT().Enabled().Return(true).AnyTimes()
	mockStore.EXPECT().Set(gomock.Any(), gomock.Any()).Times(0)

	output, err := migrator.Load(s.ctx, &LoadInput{LedgerID: s.testLedgerID})
	s.Require().NoError(err)

	s.False(output.Migrated)
	s.True(output.Detached)
	s.requireDefaultLedger(output.Ledger)
}

func (s *MigratorTestSuite) TestLoad_WriteFailureIsNotFatal() {
	migrator, mockStore := s.newMockMigrator()

	mockStore.EXPECT().Get(gomock.Any(), gomock.Any()).Return(&store.GetOutput{Found: false}, nil)
	mockStore.EXPECT().Enabled().Return(true).AnyTimes()
	mockStore.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("read only")).AnyTimes()

	output, err := migrator.Load(s.ctx, &LoadInput{LedgerID: s.testLedgerID})
	s.Require().NoError(err)

	s.True(output.Migrated)
	s.requireDefaultLedger(output.Ledger)
}

func (s *MigratorTestSuite) TestMigrate_VersionWrittenLast() {
	migrator, mockStore := s.newMockMigrator()

	mockStore.EXPECT().Get(gomock.Any(), gomock.Any()).Return(&store.GetOutput{Found: false}, nil)
	mockStore.EXPECT().Enabled().Return(true).AnyTimes()

	var keys []string
	mockStore.EXPECT().Set(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, input *store.SetInput) error {
		keys = append(keys, input.Key)
		return nil
	}).Times(6)

	_, err := migrator.Load(s.ctx, &LoadInput{LedgerID: s.testLedgerID})
	s.Require().NoError(err)

	s.Require().Len(keys, 6)
	s.Equal(store.KeyDataVersion, keys[5])
	s.ElementsMatch([]string{
		store.KeyRules,
		store.KeyPlayerMap,
		store.KeyPlayerOrder,
		store.KeyRounds,
		store.KeyView,
	}, keys[:5])
}

func (s *MigratorTestSuite) TestLoad_RepairsNonPositiveHands() {
	s.Require().NoError(s.mr.Set(s.redisKey(store.KeyDataVersion), "2"))
	s.Require().NoError(s.mr.Set(s.redisKey(store.KeyRules), `"shing"`))
	s.Require().NoError(s.mr.Set(s.redisKey(store.KeyPlayerMap), `{"a":{"id":"a","name":"Ann"}}`))
	s.Require().NoError(s.mr.Set(s.redisKey(store.KeyPlayerOrder), `["a"]`))
	s.Require().NoError(s.mr.Set(s.redisKey(store.KeyRounds), `[{"hands":0,"bids":{"a":1},"tricksTaken":{}},{"hands":-3,"bids":{},"tricksTaken":{}}]`))

	output, err := s.migrator.Load(s.ctx, &LoadInput{LedgerID: s.testLedgerID})
	s.Require().NoError(err)
	s.False(output.Migrated)

	for i := 0; i < 2; i++ {
		round, err := output.Ledger.Round(i)
		s.Require().NoError(err)
		s.Equal(ledger.DefaultHands, round.Hands)
	}

	rounds, err := s.mr.Get(s.redisKey(store.KeyRounds))
	s.Require().NoError(err)
	s.JSONEq(`[{"hands":1,"bids":{"a":1},"tricksTaken":{}},{"hands":1,"bids":{},"tricksTaken":{}}]`, rounds)
}
