package armylist

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/waaagh-api/internal/entities/wh40k"
	"github.com/KirkDiggler/waaagh-api/internal/errors"
	redisclient "github.com/KirkDiggler/waaagh-api/internal/redis"
)

const (
	// KeyPrefix prefixes every stored army key
	KeyPrefix = "army:"
	// IndexKey is the set holding every army ID
	IndexKey = "army:index"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis army repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed army repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateArmy(input.Army); err != nil {
		return nil, err
	}

	key := KeyPrefix + input.Army.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("army with ID %s already exists", input.Army.ID)
	}

	data, err := json.Marshal(input.Army)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal army")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, IndexKey, input.Army.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create army")
	}

	slog.DebugContext(ctx, "stored army in redis",
		"army_id", input.Army.ID,
		"key", key)

	return &CreateOutput{Army: input.Army.Clone()}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errArmyIDEmpty)
	}

	result, err := r.client.Get(ctx, KeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("army with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get army")
	}

	var army wh40k.ArmyList
	if err := json.Unmarshal([]byte(result), &army); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal army %s", input.ID)
	}

	return &GetOutput{Army: &army}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateArmy(input.Army); err != nil {
		return nil, err
	}

	key := KeyPrefix + input.Army.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("army with ID %s not found", input.Army.ID)
	}

	data, err := json.Marshal(input.Army)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal army")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update army")
	}

	slog.DebugContext(ctx, "updated army in redis", "army_id", input.Army.ID)

	return &UpdateOutput{Army: input.Army.Clone()}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errArmyIDEmpty)
	}

	key := KeyPrefix + input.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("army with ID %s not found", input.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, IndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete army")
	}

	slog.DebugContext(ctx, "deleted army from redis", "army_id", input.ID)

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, IndexKey).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to get army IDs from Redis",
			"index_key", IndexKey,
			"error", err.Error())
		return nil, errors.Wrapf(err, "failed to list armies")
	}

	slog.DebugContext(ctx, "found army IDs in index",
		"index_key", IndexKey,
		"count", len(ids))

	armies := make([]*wh40k.ArmyList, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "army not found, cleaning up index",
					"army_id", id,
					"index_key", IndexKey)
				r.client.SRem(ctx, IndexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get army %s", id)
		}
		armies = append(armies, out.Army)
	}

	sortArmies(armies)

	return &ListOutput{Armies: armies}, nil
}
