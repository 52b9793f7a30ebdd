package client

import (
	"encoding/json"
	"os"
	"path/filepath"
)

const (
	cartFile        = "kbs_cart.json"
	preferencesFile = "kbs_user_preferences.json"
)

// Storage is the durable client-side store for the cart snapshot and user
// preferences. Implementations tolerate absence and corruption: loads of
// missing or unreadable data return zero values, not errors.
type Storage interface {
	SaveCart(lines []Line) error
	LoadCart() ([]Line, error)
	ClearCart() error
	SavePreferences(info CustomerInfo) error
	LoadPreferences() (CustomerInfo, error)
}

// FileStorage keeps snapshots as JSON files under a directory, the desktop
// analog of the browser's localStorage.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) SaveCart(lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, cartFile), data, 0o644)
}

func (s *FileStorage) LoadCart() ([]Line, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, cartFile))
	if err != nil {
		return nil, nil
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		// Corrupt snapshot: start over with an empty cart.
		return nil, nil
	}
	return lines, nil
}

func (s *FileStorage) ClearCart() error {
	err := os.Remove(filepath.Join(s.dir, cartFile))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *FileStorage) SavePreferences(info CustomerInfo) error {
	data, err := json.Marshal(info)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, preferencesFile), data, 0o644)
}

func (s *FileStorage) LoadPreferences() (CustomerInfo, error) {
	var info CustomerInfo
	data, err := os.ReadFile(filepath.Join(s.dir, preferencesFile))
	if err != nil {
		return info, nil
	}
	if err := json.Unmarshal(data, &info); err != nil {
		return CustomerInfo{}, nil
	}
	return info, nil
}
