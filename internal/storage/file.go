package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore reads the campaign and catalog tables from JSON files in a
// data directory. It is the default backing store; a CMS-backed store
// (see PGStore) can replace it without changing callers.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) LoadCampaigns(_ context.Context) ([]CampaignRow, error) {
	var rows []CampaignRow
	if err := s.readJSON("campaigns.json", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *FileStore) LoadCatalog(_ context.Context) ([]ProductRow, []ImageRow, error) {
	var products []ProductRow
	if err := s.readJSON("products.json", &products); err != nil {
		return nil, nil, err
	}
	var images []ImageRow
	if err := s.readJSON("images.json", &images); err != nil {
		return nil, nil, err
	}
	return products, images, nil
}

func (s *FileStore) readJSON(name string, out any) error {
	path := filepath.Join(s.dir, name)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
