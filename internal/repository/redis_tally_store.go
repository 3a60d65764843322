package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/uxpulse/ux-pulse-backend/internal/entity"
)

const (
	tallyEventsKey     = "tally:events"
	tallySessionsKey   = "tally:sessions"
	tallyEventTypesKey = "tally:event_types"
	tallyPageEventsKey = "tally:page_events"
	tallyPageClicksKey = "tally:page_clicks"
)

// redisTallyStore keeps the tally counters in Redis so they survive process
// restarts and can be shared between instances. Distinct sessions are a set,
// everything else lives in hashes.
type redisTallyStore struct {
	client *redis.Client
}

func NewRedisTallyStore(client *redis.Client) TallyStore {
	return &redisTallyStore{client: client}
}

func (s *redisTallyStore) Record(ctx context.Context, event entity.Event) error {
	pipe := s.client.Pipeline()

	pipe.Incr(ctx, tallyEventsKey)
	if sid := string(event.SessionID); sid != "" {
		pipe.SAdd(ctx, tallySessionsKey, sid)
	}
	if et := string(event.EventType); et != "" {
		pipe.HIncrBy(ctx, tallyEventTypesKey, et, 1)
	}
	if page := event.Page(); page != "" {
		pipe.HIncrBy(ctx, tallyPageEventsKey, page, 1)
		if n := len(event.Clicks); n > 0 {
			pipe.HIncrBy(ctx, tallyPageClicksKey, page, int64(n))
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record tally: %w", err)
	}
	return nil
}

func (s *redisTallyStore) Counts(ctx context.Context) (entity.TallyCounts, error) {
	var counts entity.TallyCounts

	total, err := s.client.Get(ctx, tallyEventsKey).Int64()
	if err != nil && err != redis.Nil {
		return counts, fmt.Errorf("failed to read event counter: %w", err)
	}

	sessions, err := s.client.SCard(ctx, tallySessionsKey).Result()
	if err != nil {
		return counts, fmt.Errorf("failed to read session set: %w", err)
	}

	counts.TotalEvents = total
	counts.Sessions = sessions

	if counts.EventTypes, err = s.readHash(ctx, tallyEventTypesKey); err != nil {
		return counts, err
	}
	if counts.PageEvents, err = s.readHash(ctx, tallyPageEventsKey); err != nil {
		return counts, err
	}
	if counts.PageClicks, err = s.readHash(ctx, tallyPageClicksKey); err != nil {
		return counts, err
	}
	return counts, nil
}

func (s *redisTallyStore) readHash(ctx context.Context, key string) (map[string]int64, error) {
	raw, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	out := make(map[string]int64, len(raw))
	for field, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			continue
		}
		out[field] = n
	}
	return out, nil
}

func (s *redisTallyStore) Reset(ctx context.Context) error {
	keys := []string{tallyEventsKey, tallySessionsKey, tallyEventTypesKey, tallyPageEventsKey, tallyPageClicksKey}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to reset tally: %w", err)
	}
	return nil
}
