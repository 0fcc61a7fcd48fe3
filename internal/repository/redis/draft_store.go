package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/skillpassport/backend/internal/domain"
)

// draftTTL keeps abandoned wizard drafts from piling up. Every save
// refreshes the clock, so an active wizard never expires mid-flow.
const draftTTL = 24 * time.Hour

type DraftStore struct {
	client *goredis.Client
}

func NewDraftStore(client *goredis.Client) *DraftStore {
	return &DraftStore{client: client}
}

func draftKey(userID, draftID uuid.UUID) string {
	return fmt.Sprintf("draft:%s:%s", userID, draftID)
}

func (s *DraftStore) Save(ctx context.Context, draft *domain.CredentialDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("marshaling draft: %w", err)
	}
	return s.client.Set(ctx, draftKey(draft.UserID, draft.ID), data, draftTTL).Err()
}

func (s *DraftStore) Get(ctx context.Context, userID, draftID uuid.UUID) (*domain.CredentialDraft, error) {
	val, err := s.client.Get(ctx, draftKey(userID, draftID)).Result()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var draft domain.CredentialDraft
	if err := json.Unmarshal([]byte(val), &draft); err != nil {
		return nil, fmt.Errorf("unmarshaling draft: %w", err)
	}
	return &draft, nil
}

func (s *DraftStore) Delete(ctx context.Context, userID, draftID uuid.UUID) error {
	return s.client.Del(ctx, draftKey(userID, draftID)).Err()
}
