package armylist_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/waaagh-api/internal/errors"
	armylist "github.com/KirkDiggler/waaagh-api/internal/repositories/army_list"
	"github.com/KirkDiggler/waaagh-api/internal/testutils"
	"github.com/KirkDiggler/waaagh-api/internal/testutils/builders"
)

// RepositoryTestSuite runs the same lifecycle checks against every backend
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func(t *testing.T) (armylist.Repository, func())
	repo    armylist.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.repo, s.cleanup = s.newRepo(s.T())
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(_ *testing.T) (armylist.Repository, func()) {
			return armylist.NewInMemory(), nil
		},
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(t *testing.T) (armylist.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			repo, err := armylist.NewRedis(&armylist.RedisConfig{Client: client})
			if err != nil {
				t.Fatalf("failed to create redis repository: %v", err)
			}
			return repo, cleanup
		},
	})
}

func TestSQLiteRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(t *testing.T) (armylist.Repository, func()) {
			repo, err := armylist.NewSQLite(&armylist.SQLiteConfig{})
			if err != nil {
				t.Fatalf("failed to create sqlite repository: %v", err)
			}
			return repo, func() { _ = repo.Close() }
		},
	})
}

func (s *RepositoryTestSuite) TestLifecycle() {
	army := builders.NewArmyBuilder().
		WithID("army_1").
		WithDetachment(testutils.DetachmentHorde).
		WithUnitInstance(builders.NewUnitBuilder(testutils.UnitBoss).
			WithInstanceID("u1").
			WithPoints(75).
			WithEnhancement(testutils.EnhancementFollowMe).
			WithWargear(testutils.OptionBossWeapon, testutils.ChoiceChoppa).
			Build()).
		Build()

	created, err := s.repo.Create(s.ctx, armylist.CreateInput{Army: army})
	s.Require().NoError(err)
	s.Equal(army, created.Army)

	got, err := s.repo.Get(s.ctx, armylist.GetInput{ID: "army_1"})
	s.Require().NoError(err)
	s.Equal(army, got.Army)

	army.Name = "Renamed"
	army.Units[0].ComputedPoints = 80
	army.UpdatedAt++
	_, err = s.repo.Update(s.ctx, armylist.UpdateInput{Army: army})
	s.Require().NoError(err)

	got, err = s.repo.Get(s.ctx, armylist.GetInput{ID: "army_1"})
	s.Require().NoError(err)
	s.Equal("Renamed", got.Army.Name)
	s.Equal(80, got.Army.Units[0].ComputedPoints)

	_, err = s.repo.Delete(s.ctx, armylist.DeleteInput{ID: "army_1"})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, armylist.GetInput{ID: "army_1"})
	s.True(errors.IsNotFound(err))

	list, err := s.repo.List(s.ctx, armylist.ListInput{})
	s.Require().NoError(err)
	s.Empty(list.Armies)
}

func (s *RepositoryTestSuite) TestNilDetachmentRoundTrips() {
	army := builders.NewArmyBuilder().WithID("army_nil").Build()

	_, err := s.repo.Create(s.ctx, armylist.CreateInput{Army: army})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, armylist.GetInput{ID: "army_nil"})
	s.Require().NoError(err)
	s.Nil(got.Army.DetachmentID)
}

func (s *RepositoryTestSuite) TestCreateTwice() {
	army := builders.NewArmyBuilder().WithID("dup").Build()

	_, err := s.repo.Create(s.ctx, armylist.CreateInput{Army: army})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, armylist.CreateInput{Army: army})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RepositoryTestSuite) TestMissingArmy() {
	_, err := s.repo.Get(s.ctx, armylist.GetInput{ID: "ghost"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Update(s.ctx, armylist.UpdateInput{Army: builders.NewArmyBuilder().WithID("ghost").Build()})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, armylist.DeleteInput{ID: "ghost"})
	s.True(errors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestInvalidInput() {
	_, err := s.repo.Create(s.ctx, armylist.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, armylist.CreateInput{Army: builders.NewArmyBuilder().WithID("").Build()})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, armylist.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Update(s.ctx, armylist.UpdateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, armylist.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestListOrdersByCreation() {
	for _, a := range []struct {
		id        string
		createdAt int64
	}{
		{"c", 300},
		{"a", 100},
		{"b2", 200},
		{"b1", 200},
	} {
		army := builders.NewArmyBuilder().WithID(a.id).WithTimestamps(a.createdAt, a.createdAt).Build()
		_, err := s.repo.Create(s.ctx, armylist.CreateInput{Army: army})
		s.Require().NoError(err)
	}

	list, err := s.repo.List(s.ctx, armylist.ListInput{})
	s.Require().NoError(err)

	ids := make([]string, len(list.Armies))
	for i, a := range list.Armies {
		ids[i] = a.ID
	}
	s.Equal([]string{"a", "b1", "b2", "c"}, ids)
}

func (s *RepositoryTestSuite) TestReturnedValuesAreCopies() {
	army := builders.NewArmyBuilder().WithID("copy").WithUnit(testutils.UnitMob, 10, 85).Build()
	_, err := s.repo.Create(s.ctx, armylist.CreateInput{Army: army})
	s.Require().NoError(err)

	army.Units[0].ComputedPoints = 9999

	got, err := s.repo.Get(s.ctx, armylist.GetInput{ID: "copy"})
	s.Require().NoError(err)
	s.Equal(85, got.Army.Units[0].ComputedPoints)

	got.Army.Units[0].ComputedPoints = 1
	again, err := s.repo.Get(s.ctx, armylist.GetInput{ID: "copy"})
	s.Require().NoError(err)
	s.Equal(85, again.Army.Units[0].ComputedPoints)
}
