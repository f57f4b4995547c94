package database

import (
	"physiocare-client/internal/app/config"
	"physiocare-client/internal/pkg/constvars"
	"physiocare-client/internal/pkg/exceptions"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// NewBoltDB opens (or creates) the preferences file and makes sure the settings bucket exists.
func NewBoltDB(driverConfig *config.DriverConfig, log *zap.Logger) (*bolt.DB, error) {
	db, err := bolt.Open(driverConfig.Bolt.Path, 0600, &bolt.Options{
		Timeout: time.Duration(driverConfig.Bolt.TimeoutInSeconds) * time.Second,
	})
	if err != nil {
		return nil, exceptions.ErrBoltOpen(err, driverConfig.Bolt.Path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(constvars.PreferencesBucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, exceptions.ErrBoltWrite(err)
	}

	log.Debug("Preferences file opened",
		zap.String(constvars.LoggingPreferencesFileKey, driverConfig.Bolt.Path),
	)
	return db, nil
}
