package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"reddys-kitchen/storefront-svc/internal/domain"
)

// FileCatalog reads the restaurant catalog from a JSON or YAML file. The file
// is read on every Load so edits show up without a restart.
type FileCatalog struct {
	Path string
}

func NewFileCatalog(path string) *FileCatalog {
	return &FileCatalog{Path: path}
}

func (c *FileCatalog) Load() ([]domain.Restaurant, error) {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, err
	}

	var restaurants []domain.Restaurant
	switch strings.ToLower(filepath.Ext(c.Path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &restaurants)
	default:
		err = json.Unmarshal(data, &restaurants)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(c.Path), err)
	}

	if restaurants == nil {
		restaurants = []domain.Restaurant{}
	}
	return restaurants, nil
}
