package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// SessionRegistryKeyPrefix is the Redis key prefix for active sessions.
const SessionRegistryKeyPrefix = "session:"

// SessionService is the server-side session registry. A JWT alone is not
// enough to authenticate: the session key must still exist in Redis. This
// is what makes logout and revoke-on-password-change effective before the
// token's natural expiry.
type SessionService interface {
	Register(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error
	IsActive(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error)
	Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error
	// RevokeAll removes every session for a user (logout everywhere).
	RevokeAll(ctx context.Context, userID uuid.UUID) error
}

type sessionService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewSessionService(redisClient *redis.Client, log *logrus.Logger) SessionService {
	return &sessionService{
		redisClient: redisClient,
		log:         log,
	}
}

func sessionKey(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s%s:%s", SessionRegistryKeyPrefix, userID.String(), tokenID)
}

func (s *sessionService) Register(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	key := sessionKey(userID, tokenID)
	if err := s.redisClient.Set(ctx, key, "valid", ttl).Err(); err != nil {
		s.log.Warnf("Failed to register session in Redis: %+v", err)
		return err
	}
	return nil
}

func (s *sessionService) IsActive(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	exists, err := s.redisClient.Exists(ctx, sessionKey(userID, tokenID)).Result()
	if err != nil {
		s.log.Warnf("Failed to check session in Redis: %+v", err)
		return false, err
	}
	return exists > 0, nil
}

func (s *sessionService) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error {
	if err := s.redisClient.Del(ctx, sessionKey(userID, tokenID)).Err(); err != nil {
		s.log.Warnf("Failed to revoke session: %+v", err)
		return err
	}
	return nil
}

func (s *sessionService) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	pattern := fmt.Sprintf("%s%s:*", SessionRegistryKeyPrefix, userID.String())
	keys, err := s.redisClient.Keys(ctx, pattern).Result()
	if err != nil {
		s.log.Warnf("Failed to list sessions for user %s: %+v", userID, err)
		return err
	}
	if len(keys) > 0 {
		if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
			s.log.Warnf("Failed to revoke sessions for user %s: %+v", userID, err)
			return err
		}
	}
	return nil
}
