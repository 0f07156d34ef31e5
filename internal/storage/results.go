// Package storage keeps finished-game records in Redis.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/palemoky/sequence/internal/game"
)

const (
	// Redis key
	resultKey    = "sequence:result:"
	recentKey    = "sequence:results:recent"
	maxRecentLen = 1000
)

// GameRecord 对局记录
type GameRecord struct {
	ID         string   `json:"id"`
	Winner     string   `json:"winner"`
	Turns      int      `json:"turns"`
	Players    []string `json:"players"` // strategy per seat
	Teams      int      `json:"teams"`
	Seed       uint64   `json:"seed,omitempty"`
	FinishedAt int64    `json:"finished_at"`
}

// NewRecord builds the record for a finished game.
func NewRecord(res game.Result, players []string, teams int, seed uint64) *GameRecord {
	return &GameRecord{
		ID:         res.GameID.String(),
		Winner:     res.Winner.String(),
		Turns:      res.Turns,
		Players:    players,
		Teams:      teams,
		Seed:       seed,
		FinishedAt: time.Now().Unix(),
	}
}

// ResultStore 对局结果存储
type ResultStore struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewResultStore stores records in client. Records expire after ttl; zero
// keeps them forever.
func NewResultStore(client *redis.Client, ttl time.Duration) *ResultStore {
	return &ResultStore{redis: client, ttl: ttl}
}

// Ping checks the connection.
func (s *ResultStore) Ping(ctx context.Context) error {
	return s.redis.Ping(ctx).Err()
}

// SaveResult stores rec and indexes it by finish time in one transaction.
func (s *ResultStore) SaveResult(ctx context.Context, rec *GameRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	_, err = s.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resultKey+rec.ID, data, s.ttl)
		pipe.ZAdd(ctx, recentKey, redis.Z{Score: float64(rec.FinishedAt), Member: rec.ID})
		pipe.ZRemRangeByRank(ctx, recentKey, 0, -maxRecentLen-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("save result %s: %w", rec.ID, err)
	}
	return nil
}

// LoadResult returns the record for id, or nil when it is unknown or expired.
func (s *ResultStore) LoadResult(ctx context.Context, id string) (*GameRecord, error) {
	data, err := s.redis.Get(ctx, resultKey+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var rec GameRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// RecentResults returns up to limit records, newest first. Expired records are skipped.
func (s *ResultStore) RecentResults(ctx context.Context, limit int) ([]*GameRecord, error) {
	if limit <= 0 {
		return nil, nil
	}
	ids, err := s.redis.ZRevRange(ctx, recentKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	records := make([]*GameRecord, 0, len(ids))
	for _, id := range ids {
		rec, err := s.LoadResult(ctx, id)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
