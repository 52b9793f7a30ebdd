package controllers_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"kbs-store/models"
)

// In-memory repositories backing the route tests. They honor the same
// contracts as the Mongo implementations, including read-time expiry of
// PIN records.

type memItemRepo struct {
	mu    sync.Mutex
	items map[string]models.Item
	seq   int
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: make(map[string]models.Item)}
}

func (r *memItemRepo) List(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Item, 0, len(r.items))
	for _, item := range r.items {
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.Featured != nil && item.Featured != *filter.Featured {
			continue
		}
		if filter.InStock != nil && item.InStock != *filter.InStock {
			continue
		}
		out = append(out, item)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *memItemRepo) GetByID(ctx context.Context, id string) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &item, nil
}

func (r *memItemRepo) Create(ctx context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; ok {
		return models.ErrDuplicateID
	}

	r.seq++
	item.CreatedAt = time.Unix(int64(r.seq), 0)
	item.UpdatedAt = item.CreatedAt
	r.items[item.ID] = *item
	return nil
}

func (r *memItemRepo) Update(ctx context.Context, item *models.Item) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[item.ID]
	if !ok {
		return nil, models.ErrNotFound
	}

	item.CreatedAt = stored.CreatedAt
	item.UpdatedAt = time.Now()
	r.items[item.ID] = *item

	updated := *item
	return &updated, nil
}

func (r *memItemRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memItemRepo) EnsureIndexes(ctx context.Context) error { return nil }

type memPinRepo struct {
	mu      sync.Mutex
	records map[string]models.PinRecord
}

func newMemPinRepo() *memPinRepo {
	return &memPinRepo{records: make(map[string]models.PinRecord)}
}

func (r *memPinRepo) Upsert(ctx context.Context, record *models.PinRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.Phone] = *record
	return nil
}

func (r *memPinRepo) Find(ctx context.Context, phone, pin string) (*models.PinRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[phone]
	if !ok || record.Pin != pin || record.Expired(time.Now()) {
		return nil, models.ErrNotFound
	}
	return &record, nil
}

func (r *memPinRepo) MarkVerified(ctx context.Context, phone, pin string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[phone]
	if !ok || record.Pin != pin || record.Expired(time.Now()) {
		return models.ErrNotFound
	}
	record.Verified = true
	r.records[phone] = record
	return nil
}

func (r *memPinRepo) DeleteExpired(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	now := time.Now()
	for phone, record := range r.records {
		if record.Expired(now) {
			delete(r.records, phone)
			deleted++
		}
	}
	return deleted, nil
}

func (r *memPinRepo) EnsureIndexes(ctx context.Context) error { return nil }

// expire backdates the record so expiry paths are testable without sleeping.
func (r *memPinRepo) expire(phone string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[phone]
	if !ok {
		return
	}
	record.ExpiresAt = time.Now().Add(-time.Second)
	r.records[phone] = record
}
