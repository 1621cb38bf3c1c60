package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each collection in one redis hash: the hash key is the
// collection name, each field is a record id and each value the record
// encoded as JSON. HGetAll of a collection is exactly the children map the
// repositories expect.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps an already-connected redis client. prefix namespaces
// the hash keys ("crm" gives keys like "crm:clientes") and may be empty.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(collection string) string {
	if s.prefix == "" {
		return collection
	}
	return s.prefix + ":" + collection
}

// Put writes the complete record, overwriting whatever was there.
func (s *RedisStore) Put(ctx context.Context, collection, id string, doc Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding record %s/%s: %w", collection, id, err)
	}
	return s.client.HSet(ctx, s.key(collection), id, data).Err()
}

// Get returns the record, or (nil, nil) if it does not exist.
func (s *RedisStore) Get(ctx context.Context, collection, id string) (Document, error) {
	data, err := s.client.HGet(ctx, s.key(collection), id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding record %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

// Patch shallow-merges partial into the stored record. A missing record
// is treated as empty, so the merge result is just the partial fields.
func (s *RedisStore) Patch(ctx context.Context, collection, id string, partial Document) error {
	doc, err := s.Get(ctx, collection, id)
	if err != nil {
		return err
	}
	if doc == nil {
		doc = Document{}
	}
	for k, v := range partial {
		doc[k] = v
	}
	return s.Put(ctx, collection, id, doc)
}

// Ping checks the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Remove deletes the record. Removing an absent record is not an error.
func (s *RedisStore) Remove(ctx context.Context, collection, id string) error {
	return s.client.HDel(ctx, s.key(collection), id).Err()
}

// List returns the collection's children map, empty if the collection is
// absent. Records that fail to decode are skipped rather than failing the
// whole listing.
func (s *RedisStore) List(ctx context.Context, collection string) (map[string]Document, error) {
	raw, err := s.client.HGetAll(ctx, s.key(collection)).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string]Document, len(raw))
	for id, data := range raw {
		var doc Document
		if err := json.Unmarshal([]byte(data), &doc); err != nil {
			continue
		}
		out[id] = doc
	}
	return out, nil
}
