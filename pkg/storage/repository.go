package storage

import (
	"context"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// DefaultKey is the save slot used for a game's primary save data.
const DefaultKey = "data"

// ErrNotFound is returned when a key has no saved data.
var ErrNotFound = errors.New("no saved data for key")

// Repository persists opaque save-data blobs by key.
type Repository interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Close(ctx context.Context) error
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadJSON loads and unmarshals the blob stored under key into v.
func LoadJSON(ctx context.Context, r Repository, key string, v interface{}) error {
	data, err := r.Load(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal save data: %v", err)
	}
	return nil
}

// SaveJSON marshals v and stores it under key.
func SaveJSON(ctx context.Context, r Repository, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal save data: %v", err)
	}
	return r.Save(ctx, key, data)
}

func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("invalid key %q: only [a-zA-Z0-9_-] allowed", key)
		}
	}
	return nil
}
