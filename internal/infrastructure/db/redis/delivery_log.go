package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/talentcast/jobposting-api/internal/core/domain"
)

const defaultReceiptTTL = 7 * 24 * time.Hour

// DeliveryLog keeps the notification outcomes of each job posting in a Redis
// list, one JSON entry per recipient in dispatch order.
// Key format: receipts:<job_id>
type DeliveryLog struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDeliveryLog creates a DeliveryLog whose entries expire after ttl.
func NewDeliveryLog(client *redis.Client, ttl time.Duration) *DeliveryLog {
	if ttl <= 0 {
		ttl = defaultReceiptTTL
	}
	return &DeliveryLog{client: client, ttl: ttl}
}

// Record replaces the outcomes stored for jobID.
func (l *DeliveryLog) Record(ctx context.Context, jobID string, outcomes []domain.NotificationOutcome) error {
	if len(outcomes) == 0 {
		return nil
	}

	values := make([]any, 0, len(outcomes))
	for _, o := range outcomes {
		b, err := json.Marshal(o)
		if err != nil {
			return fmt.Errorf("encode receipt: %w", err)
		}
		values = append(values, b)
	}

	key := l.key(jobID)
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.RPush(ctx, key, values...)
		pipe.Expire(ctx, key, l.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("record receipts: %w", err)
	}
	return nil
}

// List returns the outcomes recorded for jobID, or an empty slice when none
// were recorded or they have expired.
func (l *DeliveryLog) List(ctx context.Context, jobID string) ([]domain.NotificationOutcome, error) {
	raw, err := l.client.LRange(ctx, l.key(jobID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}

	outcomes := make([]domain.NotificationOutcome, 0, len(raw))
	for _, r := range raw {
		var o domain.NotificationOutcome
		if err := json.Unmarshal([]byte(r), &o); err != nil {
			return nil, fmt.Errorf("decode receipt: %w", err)
		}
		outcomes = append(outcomes, o)
	}
	return outcomes, nil
}

func (l *DeliveryLog) key(jobID string) string {
	return "receipts:" + jobID
}
