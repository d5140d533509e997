package repository

import (
	"context"

	"github.com/siamtrans/backoffice-api/internal/domain/entity"
)

// BlobRepository defines the interface for the client blob store
type BlobRepository interface {
	Get(ctx context.Context, key string) (*entity.ClientBlob, error)
	Set(ctx context.Context, blob *entity.ClientBlob) error
	Remove(ctx context.Context, key string) error
}
