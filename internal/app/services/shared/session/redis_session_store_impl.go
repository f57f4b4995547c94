package session

import (
	"context"
	"physiocare-client/internal/app/contracts"
	"physiocare-client/internal/app/models"
	"physiocare-client/internal/pkg/constvars"
	"physiocare-client/internal/pkg/exceptions"
	"physiocare-client/internal/pkg/observable"
	"physiocare-client/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type redisSessionStore struct {
	client *redis.Client
	key    string
	log    *zap.Logger
	mu     sync.Mutex
	state  *observable.Value[models.Session]
}

// NewRedisSessionStore keeps the session as one JSON document under key.
func NewRedisSessionStore(ctx context.Context, client *redis.Client, key string, log *zap.Logger) (contracts.SessionStore, error) {
	store := &redisSessionStore{
		client: client,
		key:    key,
		log:    log,
	}

	session, err := store.load(ctx)
	if err != nil {
		return nil, err
	}
	store.state = observable.NewValue(session)
	return store, nil
}

func (s *redisSessionStore) Current() models.Session {
	return s.state.Get()
}

func (s *redisSessionStore) Subscribe(fn func(models.Session)) func() {
	return s.state.Subscribe(fn)
}

func (s *redisSessionStore) Save(ctx context.Context, token, userID string, role models.Role) error {
	requestID := utils.GetRequestID(ctx)
	s.log.Info("redisSessionStore.Save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, s.key),
	)

	// subscribers run after the store lock is released
	defer s.state.Flush()
	s.mu.Lock()
	defer s.mu.Unlock()

	session := sessionFromEntries(token, userID, string(role))
	jsonValue, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.client.Set(ctx, s.key, jsonValue, 0).Err()
	if err != nil {
		s.log.Error("redisSessionStore.Save error setting key",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRedisSet(err)
	}

	s.state.Stage(session)
	s.log.Info("redisSessionStore.Save succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (s *redisSessionStore) Clear(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)
	s.log.Info("redisSessionStore.Clear called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, s.key),
	)

	defer s.state.Flush()
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.client.Del(ctx, s.key).Err()
	if err != nil {
		s.log.Error("redisSessionStore.Clear error deleting key",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRedisDelete(err)
	}

	s.state.Stage(models.Session{})
	s.log.Info("redisSessionStore.Clear succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (s *redisSessionStore) load(ctx context.Context) (models.Session, error) {
	data, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return models.Session{}, nil
	} else if err != nil {
		return models.Session{}, exceptions.ErrRedisGet(err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return models.Session{}, exceptions.ErrCannotParseJSON(err)
	}
	return sessionFromEntries(session.Token, session.UserID, string(session.Role)), nil
}
