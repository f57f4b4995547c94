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

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

type boltSessionStore struct {
	db    *bolt.DB
	log   *zap.Logger
	mu    sync.Mutex
	state *observable.Value[models.Session]
}

// NewBoltSessionStore keeps the session in the settings bucket of the preferences file.
func NewBoltSessionStore(db *bolt.DB, log *zap.Logger) (contracts.SessionStore, error) {
	store := &boltSessionStore{
		db:  db,
		log: log,
	}

	session, err := store.load()
	if err != nil {
		return nil, err
	}
	store.state = observable.NewValue(session)
	return store, nil
}

func (s *boltSessionStore) Current() models.Session {
	return s.state.Get()
}

func (s *boltSessionStore) Subscribe(fn func(models.Session)) func() {
	return s.state.Subscribe(fn)
}

func (s *boltSessionStore) Save(ctx context.Context, token, userID string, role models.Role) error {
	requestID := utils.GetRequestID(ctx)
	s.log.Info("boltSessionStore.Save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingRoleKey, string(role)),
	)

	// subscribers run after the store lock is released
	defer s.state.Flush()
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := map[string]string{
		constvars.PreferenceKeyToken:  token,
		constvars.PreferenceKeyUserID: userID,
		constvars.PreferenceKeyRole:   string(role),
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(constvars.PreferencesBucketName))
		if err != nil {
			return err
		}
		for key, value := range entries {
			if value == "" {
				err = bucket.Delete([]byte(key))
			} else {
				err = bucket.Put([]byte(key), []byte(value))
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error("boltSessionStore.Save error writing preferences",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrBoltWrite(err)
	}

	s.state.Stage(sessionFromEntries(token, userID, string(role)))
	s.log.Info("boltSessionStore.Save succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (s *boltSessionStore) Clear(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)
	s.log.Info("boltSessionStore.Clear called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	defer s.state.Flush()
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(constvars.PreferencesBucketName))
		if bucket == nil {
			return nil
		}
		for _, key := range []string{constvars.PreferenceKeyToken, constvars.PreferenceKeyUserID, constvars.PreferenceKeyRole} {
			if err := bucket.Delete([]byte(key)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error("boltSessionStore.Clear error writing preferences",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrBoltWrite(err)
	}

	s.state.Stage(models.Session{})
	s.log.Info("boltSessionStore.Clear succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (s *boltSessionStore) load() (models.Session, error) {
	var token, userID, role string
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(constvars.PreferencesBucketName))
		if bucket == nil {
			return nil
		}
		token = string(bucket.Get([]byte(constvars.PreferenceKeyToken)))
		userID = string(bucket.Get([]byte(constvars.PreferenceKeyUserID)))
		role = string(bucket.Get([]byte(constvars.PreferenceKeyRole)))
		return nil
	})
	if err != nil {
		return models.Session{}, exceptions.ErrBoltRead(err)
	}
	return sessionFromEntries(token, userID, role), nil
}

// sessionFromEntries drops userID and role when no token is present.
func sessionFromEntries(token, userID, role string) models.Session {
	if token == "" {
		return models.Session{}
	}
	return models.Session{
		Token:  token,
		UserID: userID,
		Role:   models.Role(role),
	}
}
