package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"takeaway/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the queue as a list of order records and the history as
// a hash from customer to a JSON array of records.
type RedisStore struct {
	Client *redis.Client
	Prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{Client: client, Prefix: prefix}
}

func (s *RedisStore) QueueKey() string {
	return s.Prefix + ":pending"
}

func (s *RedisStore) HistoryKey() string {
	return s.Prefix + ":history"
}

func (s *RedisStore) LoadQueue(ctx context.Context) ([]*domain.Order, error) {
	values, err := s.Client.LRange(ctx, s.QueueKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load queue: %w", err)
	}

	records := make([]OrderRecord, 0, len(values))
	for _, value := range values {
		var rec OrderRecord
		if err := json.Unmarshal([]byte(value), &rec); err != nil {
			return nil, fmt.Errorf("decode queued order: %w", err)
		}
		records = append(records, rec)
	}
	return decodeOrders(records)
}

func (s *RedisStore) LoadHistory(ctx context.Context) (map[string][]*domain.Order, error) {
	values, err := s.Client.HGetAll(ctx, s.HistoryKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	records := make(map[string][]OrderRecord, len(values))
	for customer, value := range values {
		var recs []OrderRecord
		if err := json.Unmarshal([]byte(value), &recs); err != nil {
			return nil, fmt.Errorf("decode history of %q: %w", customer, err)
		}
		records[customer] = recs
	}
	return decodeHistory(records)
}

func (s *RedisStore) SaveQueue(ctx context.Context, queue []*domain.Order) error {
	values := make([]any, 0, len(queue))
	for _, rec := range encodeOrders(queue) {
		payload, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encode order %s: %w", rec.ID, err)
		}
		values = append(values, payload)
	}

	_, err := s.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.QueueKey())
		if len(values) > 0 {
			pipe.RPush(ctx, s.QueueKey(), values...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save queue: %w", err)
	}
	return nil
}

func (s *RedisStore) SaveHistory(ctx context.Context, history map[string][]*domain.Order) error {
	fields := make(map[string]any, len(history))
	for customer, recs := range encodeHistory(history) {
		payload, err := json.Marshal(recs)
		if err != nil {
			return fmt.Errorf("encode history of %q: %w", customer, err)
		}
		fields[customer] = payload
	}

	_, err := s.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.HistoryKey())
		if len(fields) > 0 {
			pipe.HSet(ctx, s.HistoryKey(), fields)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}
