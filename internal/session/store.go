package session

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Usman-Ashfaq/Banking-Core-Engine/internal/model"
	"github.com/Usman-Ashfaq/Banking-Core-Engine/pkg/redis"
)

var ErrSessionNotFound = errors.New("session not found")

const keyPrefix = "session:"

// Store keeps server-side sessions in redis: an opaque token handed to the
// browser maps to the caller identity, with a sliding TTL. Nothing about the
// identity leaves the server.
type Store struct {
	redis redis.RedisAdapter
	ttl   time.Duration
}

func NewStore(adapter redis.RedisAdapter, ttl time.Duration) *Store {
	return &Store{
		redis: adapter,
		ttl:   ttl,
	}
}

func (s *Store) Create(identity model.Identity) (string, error) {
	token := uuid.NewString()

	payload, err := json.Marshal(identity)
	if err != nil {
		return "", err
	}

	if err := s.redis.Set(keyPrefix+token, payload, s.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Get resolves the token and slides the TTL forward so active sessions stay
// alive.
func (s *Store) Get(token string) (*model.Identity, error) {
	payload, err := s.redis.Get(keyPrefix + token)
	if err != nil {
		if errors.Is(err, redis.NilError) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var identity model.Identity
	if err := json.Unmarshal(payload, &identity); err != nil {
		return nil, err
	}

	if err := s.redis.Expire(keyPrefix+token, s.ttl); err != nil {
		return nil, err
	}
	return &identity, nil
}

func (s *Store) Destroy(token string) error {
	return s.redis.Del(keyPrefix + token)
}
