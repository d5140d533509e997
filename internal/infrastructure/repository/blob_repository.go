package repository

import (
	"context"
	"errors"

	"github.com/siamtrans/backoffice-api/internal/domain/entity"
	domainRepo "github.com/siamtrans/backoffice-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type blobRepository struct {
	db *gorm.DB
}

// NewBlobRepository creates a new client blob repository
func NewBlobRepository(db *gorm.DB) domainRepo.BlobRepository {
	return &blobRepository{db: db}
}

func (r *blobRepository) Get(ctx context.Context, key string) (*entity.ClientBlob, error) {
	var blob entity.ClientBlob
	err := r.db.WithContext(ctx).First(&blob, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &blob, err
}

func (r *blobRepository) Set(ctx context.Context, blob *entity.ClientBlob) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(blob).Error
}

func (r *blobRepository) Remove(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Delete(&entity.ClientBlob{}, "key = ?", key).Error
}
