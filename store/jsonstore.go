// Package store persists the purchase history, recipe catalog and current
// recommendation set as JSON documents on disk. Every write replaces the
// whole document; there is no partial patching.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/feohuman/squishcart/models"
)

const (
	historyFile         = "history.json"
	recipesFile         = "recipes.json"
	recommendationsFile = "recommendations.json"
)

type JSONStore struct {
	dir string
	mu  sync.Mutex // gin serves requests concurrently; one writer at a time
}

// New opens (and if needed seeds) a document directory.
func New(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &JSONStore{dir: dir}

	seeds := map[string]any{
		historyFile:         models.HistoryDocument{History: []models.PurchaseEntry{}},
		recipesFile:         models.RecipesDocument{Recipes: []models.Recipe{}},
		recommendationsFile: models.RecipesDocument{Recipes: []models.Recipe{}},
	}
	for name, doc := range seeds {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := s.write(name, doc); err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *JSONStore) History() (models.HistoryDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var doc models.HistoryDocument
	err := s.read(historyFile, &doc)
	return doc, err
}

// AppendHistory adds checkout entries to the append-only history document.
func (s *JSONStore) AppendHistory(entries []models.PurchaseEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var doc models.HistoryDocument
	if err := s.read(historyFile, &doc); err != nil {
		return err
	}
	doc.History = append(doc.History, entries...)
	return s.write(historyFile, doc)
}

func (s *JSONStore) Recipes() (models.RecipesDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var doc models.RecipesDocument
	err := s.read(recipesFile, &doc)
	return doc, err
}

func (s *JSONStore) SaveRecipes(doc models.RecipesDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(recipesFile, doc)
}

func (s *JSONStore) Recommendations() (models.RecipesDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var doc models.RecipesDocument
	err := s.read(recommendationsFile, &doc)
	return doc, err
}

func (s *JSONStore) SaveRecommendations(doc models.RecipesDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(recommendationsFile, doc)
}

func (s *JSONStore) read(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func (s *JSONStore) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
