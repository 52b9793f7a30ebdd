package services

import (
	"context"
	"errors"
	"mime/multipart"
	"sort"
	"time"

	"kbs-store/models"
)

type memPinRepo struct {
	records map[string]*models.PinRecord
}

func newMemPinRepo() *memPinRepo {
	return &memPinRepo{records: map[string]*models.PinRecord{}}
}

func (m *memPinRepo) Upsert(_ context.Context, record *models.PinRecord) error {
	cp := *record
	m.records[record.Phone] = &cp
	return nil
}

func (m *memPinRepo) Find(_ context.Context, phone, pin string) (*models.PinRecord, error) {
	record, ok := m.records[phone]
	if !ok || record.Pin != pin || record.Expired(time.Now()) {
		return nil, models.ErrNotFound
	}
	cp := *record
	return &cp, nil
}

func (m *memPinRepo) MarkVerified(_ context.Context, phone, pin string) error {
	record, ok := m.records[phone]
	if !ok || record.Pin != pin || record.Expired(time.Now()) {
		return models.ErrNotFound
	}
	record.Verified = true
	return nil
}

func (m *memPinRepo) DeleteExpired(_ context.Context) (int64, error) {
	var removed int64
	now := time.Now()
	for phone, record := range m.records {
		if record.Expired(now) {
			delete(m.records, phone)
			removed++
		}
	}
	return removed, nil
}

func (m *memPinRepo) EnsureIndexes(context.Context) error { return nil }

func (m *memPinRepo) expire(phone string) {
	if record, ok := m.records[phone]; ok {
		record.ExpiresAt = time.Now().Add(-time.Second)
	}
}

type memItemRepo struct {
	items map[string]models.Item
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: map[string]models.Item{}}
}

func (m *memItemRepo) List(_ context.Context, filter models.ItemFilter) ([]models.Item, error) {
	out := []models.Item{}
	for _, item := range m.items {
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

func (m *memItemRepo) GetByID(_ context.Context, id string) (*models.Item, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &item, nil
}

func (m *memItemRepo) Create(_ context.Context, item *models.Item) error {
	if _, ok := m.items[item.ID]; ok {
		return models.ErrDuplicateID
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	m.items[item.ID] = *item
	return nil
}

func (m *memItemRepo) Update(_ context.Context, item *models.Item) (*models.Item, error) {
	existing, ok := m.items[item.ID]
	if !ok {
		return nil, models.ErrNotFound
	}
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now()
	m.items[item.ID] = *item
	cp := *item
	return &cp, nil
}

func (m *memItemRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return models.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memItemRepo) EnsureIndexes(context.Context) error { return nil }

type mockSender struct {
	sent [][2]string
	err  error
}

func (m *mockSender) SendPin(phone, pin string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, [2]string{phone, pin})
	return nil
}

type mockUploader struct {
	url string
	err error
}

func (m *mockUploader) ValidateImageFile(*multipart.FileHeader) error { return nil }

func (m *mockUploader) Upload(context.Context, multipart.File, string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if m.url != "" {
		return m.url, nil
	}
	return "https://assets.example.com/kbs-items/upload.jpg", nil
}

var errUploadDown = errors.New("asset store unreachable")

func floatPtr(v float64) *float64 { return &v }
func strPtr(s string) *string     { return &s }
func boolPtr(b bool) *bool        { return &b }
