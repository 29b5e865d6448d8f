package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/beleza-studio/internal/models"
)

// Gorm guarda os blobs na tabela kv_blobs.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (g *Gorm) Get(ctx context.Context, key string) ([]byte, error) {
	var row models.KVBlob
	err := g.db.WithContext(ctx).
		Where("key = ?", key).
		First(&row).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return row.Value, nil
}

func (g *Gorm) Put(ctx context.Context, key string, value []byte) error {
	row := models.KVBlob{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}

	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
}
