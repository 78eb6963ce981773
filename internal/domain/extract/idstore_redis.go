package extract

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// admissionIDStoreRedis keeps one Redis set of accepted admission identifiers
// per provider, so duplicate detection can span earlier extracts.
type admissionIDStoreRedis struct {
	client *redis.Client
	prefix string
}

// NewAdmissionIDStoreRedis creates a Redis-backed AdmissionIDStore.
func NewAdmissionIDStoreRedis(client *redis.Client) AdmissionIDStore {
	return &admissionIDStoreRedis{client: client, prefix: "teds:admission_ids"}
}

func (s *admissionIDStoreRedis) key(providerID string) string {
	return fmt.Sprintf("%s:%s", s.prefix, providerID)
}

func (s *admissionIDStoreRedis) Snapshot(ctx context.Context, providerID string) (map[string]struct{}, error) {
	members, err := s.client.SMembers(ctx, s.key(providerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("snapshot admission ids for %s: %w", providerID, err)
	}
	ids := make(map[string]struct{}, len(members))
	for _, m := range members {
		ids[m] = struct{}{}
	}
	return ids, nil
}

func (s *admissionIDStoreRedis) Add(ctx context.Context, providerID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	members := make([]interface{}, len(ids))
	for i, id := range ids {
		members[i] = id
	}
	if err := s.client.SAdd(ctx, s.key(providerID), members...).Err(); err != nil {
		return fmt.Errorf("add admission ids for %s: %w", providerID, err)
	}
	return nil
}
