// Package armylist defines the interface for army list persistence
package armylist

//go:generate mockgen -destination=mock/mock_repository.go -package=armylistmock github.com/KirkDiggler/waaagh-api/internal/repositories/army_list Repository

import (
	"context"
	"sort"

	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
	"github.com/KirkDiggler/waaagh-api/internal/errors"
)

const (
	// Error messages
	errArmyNil     = "army cannot be nil"
	errArmyIDEmpty = "army ID cannot be empty"
)

// Repository defines the interface for army list persistence.
// Records are stored verbatim, cached unit points included.
type Repository interface {
	// Create stores a new army
	// Returns errors.InvalidArgument for nil armies or empty IDs
	// Returns errors.AlreadyExists if the ID is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an army by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the army doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing army
	// Returns errors.InvalidArgument for nil armies or empty IDs
	// Returns errors.NotFound if the army doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes an army by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the army doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns every army, oldest first
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating an army
type CreateInput struct {
	Army *wh40k.ArmyList
}

// CreateOutput defines the output for creating an army
type CreateOutput struct {
	Army *wh40k.ArmyList
}

// GetInput defines the input for getting an army
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an army
type GetOutput struct {
	Army *wh40k.ArmyList
}

// UpdateInput defines the input for updating an army
type UpdateInput struct {
	Army *wh40k.ArmyList
}

// UpdateOutput defines the output for updating an army
type UpdateOutput struct {
	Army *wh40k.ArmyList
}

// DeleteInput defines the input for deleting an army
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an army
type DeleteOutput struct {
	// Empty for now, can be extended later
}

// ListInput defines the input for listing armies
type ListInput struct{}

// ListOutput defines the output for listing armies
type ListOutput struct {
	Armies []*wh40k.ArmyList
}

func validateArmy(army *wh40k.ArmyList) error {
	if army == nil {
		return errors.InvalidArgument(errArmyNil)
	}
	if army.ID == "" {
		return errors.InvalidArgument(errArmyIDEmpty)
	}
	return nil
}

// sortArmies orders by creation time, then ID for armies created in the same
// millisecond.
func sortArmies(armies []*wh40k.ArmyList) {
	sort.SliceStable(armies, func(i, j int) bool {
		if armies[i].CreatedAt != armies[j].CreatedAt {
			return armies[i].CreatedAt < armies[j].CreatedAt
		}
		return armies[i].ID < armies[j].ID
	})
}
