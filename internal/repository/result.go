package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/gamehub/internal/entity"
)

// sessions are short lived; the key expires even if the hub never cleans up
const resultTTL = 24 * time.Hour

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	ListBySession(ctx context.Context, sessionID string) ([]*entity.Result, error)
	DeleteBySession(ctx context.Context, sessionID string) error
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

func resultKey(sessionID string) string {
	return "results:" + sessionID
}

func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	key := resultKey(result.SessionID)

	pipe := that.client.TxPipeline()
	pipe.RPush(ctx, key, resultJSON)
	pipe.Expire(ctx, key, resultTTL)
	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to push result: %w", err)
	}

	return nil
}

func (that *dbResult) ListBySession(ctx context.Context, sessionID string) ([]*entity.Result, error) {
	response, err := that.client.LRange(ctx, resultKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	results := make([]*entity.Result, 0, len(response))
	for _, raw := range response {
		var result entity.Result
		if err = json.Unmarshal([]byte(raw), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}
		results = append(results, &result)
	}

	return results, nil
}

func (that *dbResult) DeleteBySession(ctx context.Context, sessionID string) error {
	if err := that.client.Del(ctx, resultKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete results: %w", err)
	}

	return nil
}
