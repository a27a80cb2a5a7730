package saved

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// SavedSetPrefix namespaces each device's slot key.
const SavedSetPrefix = "savedSales:"

// writerLocks hands out one mutex per slot key so concurrent mutations of
// the same saved set serialize without cross-device contention.
type writerLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (w *writerLocks) forKey(key string) *sync.Mutex {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.locks == nil {
		w.locks = make(map[string]*sync.Mutex)
	}
	l, ok := w.locks[key]
	if !ok {
		l = &sync.Mutex{}
		w.locks[key] = l
	}
	return l
}

// load reads and decodes a device's saved set. A missing slot is an empty
// set; a corrupt blob degrades to an empty set and is logged, never surfaced.
func (s *DefaultSavedSetService) load(ctx context.Context, deviceID string) ([]string, error) {
	data, err := s.Store.Read(ctx, SavedSetPrefix+deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to read saved set for device %s: %w", deviceID, err)
	}
	if data == nil {
		return []string{}, nil
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		s.Logger.Warn("Corrupt saved-set blob, resetting to empty",
			zap.String("deviceId", deviceID), zap.Error(err))
		return []string{}, nil
	}
	return ids, nil
}

// persist overwrites the device's slot wholesale with the full ordered list.
func (s *DefaultSavedSetService) persist(ctx context.Context, deviceID string, ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to marshal saved set: %w", err)
	}
	if err := s.Store.Write(ctx, SavedSetPrefix+deviceID, data); err != nil {
		return fmt.Errorf("failed to persist saved set for device %s: %w", deviceID, err)
	}
	return nil
}

// List returns the device's saved listing ids in insertion order.
func (s *DefaultSavedSetService) List(ctx context.Context, deviceID string) ([]string, error) {
	return s.load(ctx, deviceID)
}

// Toggle adds the id when absent and removes it when present, persisting the
// result. It reports whether the listing is saved afterwards.
func (s *DefaultSavedSetService) Toggle(ctx context.Context, deviceID, listingID string) (bool, error) {
	lock := s.writers.forKey(deviceID)
	lock.Lock()
	defer lock.Unlock()

	ids, err := s.load(ctx, deviceID)
	if err != nil {
		return false, err
	}

	next := make([]string, 0, len(ids)+1)
	removed := false
	for _, id := range ids {
		if id == listingID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, listingID)
	}

	if err := s.persist(ctx, deviceID, next); err != nil {
		return false, err
	}
	return !removed, nil
}

// Remove deletes the id from the device's saved set. Removing an id that is
// not present is a no-op.
func (s *DefaultSavedSetService) Remove(ctx context.Context, deviceID, listingID string) error {
	lock := s.writers.forKey(deviceID)
	lock.Lock()
	defer lock.Unlock()

	ids, err := s.load(ctx, deviceID)
	if err != nil {
		return err
	}

	next := make([]string, 0, len(ids))
	found := false
	for _, id := range ids {
		if id == listingID {
			found = true
			continue
		}
		next = append(next, id)
	}
	if !found {
		return nil
	}
	return s.persist(ctx, deviceID, next)
}

// Contains reports whether the device has saved the listing.
func (s *DefaultSavedSetService) Contains(ctx context.Context, deviceID, listingID string) (bool, error) {
	ids, err := s.load(ctx, deviceID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == listingID {
			return true, nil
		}
	}
	return false, nil
}
