// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
	armylistrepo "github.com/KirkDiggler/waaagh-api/internal/repositories/army_list"
	armylistmock "github.com/KirkDiggler/waaagh-api/internal/repositories/army_list/mock"
)

// ExpectArmyGet sets up a mock expectation for loading an army.
// The repository hands back a copy so callers cannot alias the fixture.
func ExpectArmyGet(
	ctx context.Context, mockRepo *armylistmock.MockRepository,
	armyID string, army *wh40k.ArmyList, err error,
) *gomock.Call {
	if err != nil {
		return mockRepo.EXPECT().
			Get(ctx, armylistrepo.GetInput{ID: armyID}).
			Return(nil, err)
	}

	return mockRepo.EXPECT().
		Get(ctx, armylistrepo.GetInput{ID: armyID}).
		DoAndReturn(func(_ context.Context, _ armylistrepo.GetInput) (*armylistrepo.GetOutput, error) {
			return &armylistrepo.GetOutput{Army: army.Clone()}, nil
		})
}

// ExpectArmyCreate sets up a mock expectation for storing a new army
func ExpectArmyCreate(ctx context.Context, mockRepo *armylistmock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input armylistrepo.CreateInput) (*armylistrepo.CreateOutput, error) {
			return &armylistrepo.CreateOutput{Army: input.Army}, nil
		})
}

// ExpectArmyUpdate sets up a mock expectation for saving an army and passes
// the saved value to inspect when it is not nil.
func ExpectArmyUpdate(
	ctx context.Context, mockRepo *armylistmock.MockRepository,
	inspect func(saved *wh40k.ArmyList),
) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input armylistrepo.UpdateInput) (*armylistrepo.UpdateOutput, error) {
			if inspect != nil {
				inspect(input.Army)
			}
			return &armylistrepo.UpdateOutput{Army: input.Army}, nil
		})
}

// ExpectArmyDelete sets up a mock expectation for deleting an army
func ExpectArmyDelete(ctx context.Context, mockRepo *armylistmock.MockRepository, armyID string, err error) {
	if err != nil {
		mockRepo.EXPECT().
			Delete(ctx, armylistrepo.DeleteInput{ID: armyID}).
			Return(nil, err)
		return
	}

	mockRepo.EXPECT().
		Delete(ctx, armylistrepo.DeleteInput{ID: armyID}).
		Return(&armylistrepo.DeleteOutput{}, nil)
}
