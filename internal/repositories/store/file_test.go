package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type FileRepositoryTestSuite struct {
	suite.Suite
	dir  string
	repo Repository
	ctx  context.Context
}

func (s *FileRepositoryTestSuite) SetupTest() {
	s.dir = s.T().TempDir()

	repo, err := NewFile(&FileConfig{Dir: s.dir})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func TestFileRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(FileRepositoryTestSuite))
}

func (s *FileRepositoryTestSuite) TestNewFile_InvalidConfig() {
	_, err := NewFile(nil)
	s.Error(err)

	_, err = NewFile(&FileConfig{})
	s.Error(err)
}

func (s *FileRepositoryTestSuite) TestSetAndGet() {
	s.Require().NoError(s.repo.Set(s.ctx, &SetInput{LedgerID: "default", Key: KeyRules, Value: []byte(`"regular"`)}))
	s.Require().NoError(s.repo.Set(s.ctx, &SetInput{LedgerID: "default", Key: KeyDataVersion, Value: []byte(`2`)}))

	rules, err := s.repo.Get(s.ctx, &GetInput{LedgerID: "default", Key: KeyRules})
	s.Require().NoError(err)
	s.True(rules.Found)
	s.Equal(`"regular"`, string(rules.Value))

	version, err := s.repo.Get(s.ctx, &GetInput{LedgerID: "default", Key: KeyDataVersion})
	s.Require().NoError(err)
	s.True(version.Found)
	s.Equal(`2`, string(version.Value))

	s.FileExists(filepath.Join(s.dir, "default.mp"))
}

func (s *FileRepositoryTestSuite) TestSurvivesReopen() {
	s.Require().NoError(s.repo.Set(s.ctx, &SetInput{LedgerID: "game", Key: KeyView, Value: []byte(`"scores"`)}))

	reopened, err := NewFile(&FileConfig{Dir: s.dir})
	s.Require().NoError(err)

	output, err := reopened.Get(s.ctx, &GetInput{LedgerID: "game", Key: KeyView})
	s.Require().NoError(err)
	s.True(output.Found)
	s.Equal(`"scores"`, string(output.Value))
}

func (s *FileRepositoryTestSuite) TestGet_MissingLedger() {
	output, err := s.repo.Get(s.ctx, &GetInput{LedgerID: "nothing", Key: KeyRules})
	s.Require().NoError(err)
	s.False(output.Found)
}

func (s *FileRepositoryTestSuite) TestLedgerIDCannotEscapeDir() {
	s.Require().NoError(s.repo.Set(s.ctx, &SetInput{LedgerID: "../outside", Key: KeyRules, Value: []byte(`"shing"`)}))

	s.FileExists(filepath.Join(s.dir, "..%2Foutside.mp"))
	s.NoFileExists(filepath.Join(filepath.Dir(s.dir), "outside.mp"))
}

func (s *FileRepositoryTestSuite) TestLedgerIDsWithSameBaseAreSeparate() {
	s.Require().NoError(s.repo.Set(s.ctx, &SetInput{LedgerID: "default", Key: KeyRules, Value: []byte(`"shing"`)}))
	s.Require().NoError(s.repo.Set(s.ctx, &SetInput{LedgerID: "x/default", Key: KeyRules, Value: []byte(`"regular"`)}))

	plain, err := s.repo.Get(s.ctx, &GetInput{LedgerID: "default", Key: KeyRules})
	s.Require().NoError(err)
	s.Equal(`"shing"`, string(plain.Value))

	nested, err := s.repo.Get(s.ctx, &GetInput{LedgerID: "x/default", Key: KeyRules})
	s.Require().NoError(err)
	s.Equal(`"regular"`, string(nested.Value))
}

func (s *FileRepositoryTestSuite) TestGet_CorruptFile() {
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, "broken.mp"), []byte{0xc1}, 0o644))

	_, err := s.repo.Get(s.ctx, &GetInput{LedgerID: "broken", Key: KeyRules})
	s.Error(err)
}

func (s *FileRepositoryTestSuite) TestDisabled() {
	repo, err := NewFile(&FileConfig{Dir: s.dir, Disabled: true})
	s.Require().NoError(err)
	s.False(repo.Enabled())

	s.Require().NoError(repo.Set(s.ctx, &SetInput{LedgerID: "off", Key: KeyRules, Value: []byte(`"shing"`)}))
	s.NoFileExists(filepath.Join(s.dir, "off.mp"))
}

func (s *FileRepositoryTestSuite) TestInvalidInput() {
	_, err := s.repo.Get(s.ctx, &GetInput{Key: KeyRules})
	s.ErrorIs(err, ErrInvalidInput)

	err = s.repo.Set(s.ctx, nil)
	s.ErrorIs(err, ErrInvalidInput)
}
