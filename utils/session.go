package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/asimmohammad/corptravel/config"
	"github.com/asimmohammad/corptravel/models"
)

// SessionKey is the single key the signed-in user is persisted under.
const SessionKey = "corptravel_user"

// SessionStore persists the authenticated user between runs. It is a cache
// re-read at startup and deleted on logout, never the source of truth.
type SessionStore interface {
	Save(user models.User) error
	Load() (*models.User, error)
	Clear() error
}

// NewSessionStore picks the backend from config: a local file by default, or
// Redis when SESSION_BACKEND is "redis".
func NewSessionStore() SessionStore {
	if config.AppConfig.SessionBackend == "redis" {
		return &RedisSessionStore{
			Client: redis.NewClient(&redis.Options{
				Addr:     config.AppConfig.RedisAddr,
				Password: config.AppConfig.RedisPassword,
				DB:       config.AppConfig.RedisSessionDB,
			}),
			Key: SessionKey,
		}
	}
	return &FileSessionStore{Path: config.AppConfig.SessionFile}
}

// FileSessionStore keeps the session as a JSON file on disk.
type FileSessionStore struct {
	Path string
}

func (s *FileSessionStore) Save(user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

func (s *FileSessionStore) Load() (*models.User, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &user, nil
}

func (s *FileSessionStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// RedisSessionStore keeps the session in Redis, for environments where runs
// do not share a filesystem.
type RedisSessionStore struct {
	Client *redis.Client
	Key    string
	// TTL of zero persists until logout.
	TTL time.Duration
}

func (s *RedisSessionStore) Save(user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	ctx := context.Background()
	if err := s.Client.Set(ctx, s.Key, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Load() (*models.User, error) {
	ctx := context.Background()
	data, err := s.Client.Get(ctx, s.Key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var user models.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &user, nil
}

func (s *RedisSessionStore) Clear() error {
	ctx := context.Background()
	return s.Client.Del(ctx, s.Key).Err()
}
