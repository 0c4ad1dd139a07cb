package armylist

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
	"github.com/KirkDiggler/waaagh-api/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage.
// Values are copied on the way in and out.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*wh40k.ArmyList
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*wh40k.ArmyList),
	}
}

// Create stores a new army
func (r *InMemoryRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateArmy(input.Army); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Army.ID]; exists {
		return nil, errors.AlreadyExistsf("army with ID %s already exists", input.Army.ID)
	}

	r.store[input.Army.ID] = input.Army.Clone()

	slog.DebugContext(ctx, "stored army in memory", "army_id", input.Army.ID)

	return &CreateOutput{Army: input.Army.Clone()}, nil
}

// Get retrieves an army by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errArmyIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	army, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("army with ID %s not found", input.ID)
	}

	return &GetOutput{Army: army.Clone()}, nil
}

// Update replaces an existing army
func (r *InMemoryRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateArmy(input.Army); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Army.ID]; !exists {
		return nil, errors.NotFoundf("army with ID %s not found", input.Army.ID)
	}

	r.store[input.Army.ID] = input.Army.Clone()

	slog.DebugContext(ctx, "updated army in memory", "army_id", input.Army.ID)

	return &UpdateOutput{Army: input.Army.Clone()}, nil
}

// Delete removes an army by ID
func (r *InMemoryRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errArmyIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("army with ID %s not found", input.ID)
	}

	delete(r.store, input.ID)

	slog.DebugContext(ctx, "deleted army from memory", "army_id", input.ID)

	return &DeleteOutput{}, nil
}

// List returns every army, oldest first
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	armies := make([]*wh40k.ArmyList, 0, len(r.store))
	for _, army := range r.store {
		armies = append(armies, army.Clone())
	}
	sortArmies(armies)

	return &ListOutput{Armies: armies}, nil
}
