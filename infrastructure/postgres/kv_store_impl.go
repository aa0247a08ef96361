package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wedding-invitation/domain/models"
	"wedding-invitation/domain/repositories"
)

type KVStoreImpl struct {
	db *gorm.DB
}

func NewKVStore(db *gorm.DB) repositories.KVStore {
	return &KVStoreImpl{db: db}
}

func (r *KVStoreImpl) Get(ctx context.Context, key string) (string, error) {
	var entry models.KVEntry
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", repositories.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return entry.Value, nil
}

func (r *KVStoreImpl) Set(ctx context.Context, key, value string) error {
	entry := models.KVEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (r *KVStoreImpl) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("key = ?", key).Delete(&models.KVEntry{}).Error
}

func (r *KVStoreImpl) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *KVStoreImpl) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (r *KVStoreImpl) Driver() string { return "postgres" }
