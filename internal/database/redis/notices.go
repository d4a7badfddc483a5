package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ds124wfegd/listings/internal/database/repository"
	"github.com/ds124wfegd/listings/internal/entity"
	"github.com/go-redis/redis/v8"
)

const noticeKeyPrefix = "notices:"

type noticeRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewNoticeRepository(client *redis.Client, ttl time.Duration) repository.NoticeRepository {
	return &noticeRepository{client: client, ttl: ttl}
}

func noticeKey(sessionID string) string {
	return noticeKeyPrefix + sessionID
}

func (r *noticeRepository) Push(ctx context.Context, sessionID string, notice entity.Notice) error {
	data, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("failed to encode notice: %w", err)
	}

	key := noticeKey(sessionID)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, data)
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to push notice: %w", err)
	}
	return nil
}

func (r *noticeRepository) Pop(ctx context.Context, sessionID string) ([]entity.Notice, error) {
	key := noticeKey(sessionID)

	var items *redis.StringSliceCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		items = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to pop notices: %w", err)
	}

	return decodeNotices(items.Val())
}

func decodeNotices(items []string) ([]entity.Notice, error) {
	notices := make([]entity.Notice, 0, len(items))
	for _, item := range items {
		var notice entity.Notice
		if err := json.Unmarshal([]byte(item), &notice); err != nil {
			return nil, fmt.Errorf("failed to decode notice: %w", err)
		}
		notices = append(notices, notice)
	}
	return notices, nil
}
