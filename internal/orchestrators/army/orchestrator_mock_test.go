package army_test

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
	"github.com/KirkDiggler/waaagh-api/internal/errors"
	orchestrator "github.com/KirkDiggler/waaagh-api/internal/orchestrators/army"
	"github.com/KirkDiggler/waaagh-api/internal/pkg/clock"
	"github.com/KirkDiggler/waaagh-api/internal/pkg/idgen"
	armylistrepo "github.com/KirkDiggler/waaagh-api/internal/repositories/army_list"
	armylistmock "github.com/KirkDiggler/waaagh-api/internal/repositories/army_list/mock"
	"github.com/KirkDiggler/waaagh-api/internal/services/army"
	"github.com/KirkDiggler/waaagh-api/internal/testutils"
	"github.com/KirkDiggler/waaagh-api/internal/testutils/builders"
	"github.com/KirkDiggler/waaagh-api/internal/testutils/mocks"
)

type RepositoryErrorsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *armylistmock.MockRepository
	orch     *orchestrator.Orchestrator
	ctx      context.Context
}

func TestRepositoryErrorsTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryErrorsTestSuite))
}

func (s *RepositoryErrorsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = armylistmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	orch, err := orchestrator.New(&orchestrator.Config{
		ArmyRepo:  s.mockRepo,
		Catalogue: testutils.TestCatalogue(s.T()),
		ArmyIDGen: idgen.NewSequential("army"),
		UnitIDGen: idgen.NewSequential("unit"),
		Clock:     clock.NewFixed(time.UnixMilli(startMillis)),
	})
	s.Require().NoError(err)
	s.orch = orch
}

func (s *RepositoryErrorsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RepositoryErrorsTestSuite) TestCreatePassesBuiltArmy() {
	mocks.ExpectArmyCreate(s.ctx, s.mockRepo)

	out, err := s.orch.CreateArmy(s.ctx, &army.CreateArmyInput{Name: "Speed Freeks"})
	s.Require().NoError(err)
	s.Equal("army_1", out.Army.ID)
	s.Equal("Speed Freeks", out.Army.Name)
	s.NotNil(out.Army.Units)
}

func (s *RepositoryErrorsTestSuite) TestCreateDuplicate() {
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil, errors.AlreadyExists("army army_1 already exists"))

	_, err := s.orch.CreateArmy(s.ctx, &army.CreateArmyInput{Name: "Speed Freeks"})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RepositoryErrorsTestSuite) TestGetUnavailable() {
	mocks.ExpectArmyGet(s.ctx, s.mockRepo, "army_1", nil, errors.Unavailable("redis is down"))

	_, err := s.orch.GetArmy(s.ctx, &army.GetArmyInput{ArmyID: "army_1"})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
	s.Equal("army_1", errors.GetMeta(err)["army_id"])
}

func (s *RepositoryErrorsTestSuite) TestListPlainErrorBecomesInternal() {
	s.mockRepo.EXPECT().
		List(s.ctx, armylistrepo.ListInput{}).
		Return(nil, stderrors.New("boom"))

	_, err := s.orch.ListArmies(s.ctx, &army.ListArmiesInput{})
	s.True(errors.IsInternal(err))
}

func (s *RepositoryErrorsTestSuite) TestMutationSaveFailure() {
	stored := builders.NewArmyBuilder().WithID("army_1").Build()

	mocks.ExpectArmyGet(s.ctx, s.mockRepo, "army_1", stored, nil)
	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		Return(nil, stderrors.New("disk full"))

	_, err := s.orch.AddUnit(s.ctx, &army.AddUnitInput{ArmyID: "army_1", DatasheetID: testutils.UnitMob})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
	s.Contains(err.Error(), "failed to save army after add unit")
	s.Empty(stored.Units)
}

func (s *RepositoryErrorsTestSuite) TestMutationSavesRecomputedArmy() {
	stored := builders.NewArmyBuilder().
		WithID("army_1").
		WithUnit(testutils.UnitSquad, 5, 100).
		Build()
	count := 7

	mocks.ExpectArmyGet(s.ctx, s.mockRepo, "army_1", stored, nil)
	mocks.ExpectArmyUpdate(s.ctx, s.mockRepo, func(saved *wh40k.ArmyList) {
		s.Equal(7, saved.Units[0].ModelCount)
		s.Equal(140, saved.Units[0].ComputedPoints)
		s.Equal(startMillis, saved.UpdatedAt)
	})

	out, err := s.orch.UpdateUnit(s.ctx, &army.UpdateUnitInput{
		ArmyID:     "army_1",
		InstanceID: "unit-1",
		ModelCount: &count,
	})
	s.Require().NoError(err)
	s.Equal(140, out.TotalPoints)
	s.Equal(5, stored.Units[0].ModelCount)
}

func (s *RepositoryErrorsTestSuite) TestMutationValidationSkipsRepository() {
	// No repository calls expected
	_, err := s.orch.SelectWargear(s.ctx, &army.SelectWargearInput{ArmyID: "army_1", InstanceID: "unit_1"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.AddUnit(s.ctx, &army.AddUnitInput{ArmyID: "army_1", DatasheetID: "unknown"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.GetArmy(s.ctx, &army.GetArmyInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryErrorsTestSuite) TestDeleteNotFound() {
	mocks.ExpectArmyDelete(s.ctx, s.mockRepo, "army_9", errors.NotFound("army army_9 not found"))

	_, err := s.orch.DeleteArmy(s.ctx, &army.DeleteArmyInput{ArmyID: "army_9"})
	s.True(errors.IsNotFound(err))
}
