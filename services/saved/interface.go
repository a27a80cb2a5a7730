package saved

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// SavedSetService maintains each device's persisted set of saved listing
// ids. Insertion order is preserved; ids are unique within a set.
type SavedSetService interface {
	List(ctx context.Context, deviceID string) ([]string, error)
	Toggle(ctx context.Context, deviceID, listingID string) (bool, error)
	Remove(ctx context.Context, deviceID, listingID string) error
	Contains(ctx context.Context, deviceID, listingID string) (bool, error)
}

// SlotStore is the durable single-slot blob storage behind a saved set. Read
// returns (nil, nil) when the slot has never been written.
type SlotStore interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
}

// DefaultSavedSetService is the production implementation.
type DefaultSavedSetService struct {
	Store  SlotStore
	Logger *zap.Logger

	writers writerLocks
}

// NewDefaultSavedSetService wires the saved-set service with its slot store.
func NewDefaultSavedSetService(store SlotStore, logger *zap.Logger) (*DefaultSavedSetService, error) {
	if store == nil || logger == nil {
		return nil, fmt.Errorf("saved-set service initialization error: one or more dependencies are nil")
	}
	return &DefaultSavedSetService{Store: store, Logger: logger}, nil
}
