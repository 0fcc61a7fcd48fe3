package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/skillpassport/backend/internal/domain"
)

// PrefStore persists per-client UI preferences without a TTL; like the
// browser storage it replaces, values live until overwritten.
type PrefStore struct {
	client *goredis.Client
}

func NewPrefStore(client *goredis.Client) *PrefStore {
	return &PrefStore{client: client}
}

func prefKey(clientID string) string {
	return "prefs:" + clientID
}

func (s *PrefStore) Get(ctx context.Context, clientID string) (*domain.ClientPrefs, error) {
	val, err := s.client.Get(ctx, prefKey(clientID)).Result()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var prefs domain.ClientPrefs
	if err := json.Unmarshal([]byte(val), &prefs); err != nil {
		return nil, fmt.Errorf("unmarshaling prefs: %w", err)
	}
	return &prefs, nil
}

func (s *PrefStore) Set(ctx context.Context, clientID string, prefs *domain.ClientPrefs) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("marshaling prefs: %w", err)
	}
	return s.client.Set(ctx, prefKey(clientID), data, 0).Err()
}
