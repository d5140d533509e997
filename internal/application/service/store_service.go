package service

import (
	"context"
	"encoding/json"

	"github.com/siamtrans/backoffice-api/internal/domain/entity"
	"github.com/siamtrans/backoffice-api/internal/domain/repository"
	"github.com/siamtrans/backoffice-api/pkg/apperror"
)

// StoreService handles the client-side document store. The UI keeps its
// lighter collections (bookings, job orders, expenses) as opaque JSON blobs
// keyed by collection name.
type StoreService struct {
	blobRepo repository.BlobRepository
}

// NewStoreService creates a new store service
func NewStoreService(blobRepo repository.BlobRepository) *StoreService {
	return &StoreService{blobRepo: blobRepo}
}

// Get returns the raw JSON stored under key, or nil when the key is unset
func (s *StoreService) Get(ctx context.Context, key string) (json.RawMessage, error) {
	blob, err := s.blobRepo.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return nil, nil
	}
	return json.RawMessage(blob.Value), nil
}

// Set stores a JSON value under key, replacing any previous value
func (s *StoreService) Set(ctx context.Context, key string, value json.RawMessage) error {
	if key == "" {
		return apperror.NewBadRequestError("Store key is required")
	}
	if !json.Valid(value) {
		return apperror.NewBadRequestError("Store value must be valid JSON")
	}

	return s.blobRepo.Set(ctx, &entity.ClientBlob{
		Key:   key,
		Value: string(value),
	})
}

// Remove deletes the value stored under key. Removing an unset key is a no-op.
func (s *StoreService) Remove(ctx context.Context, key string) error {
	return s.blobRepo.Remove(ctx, key)
}
