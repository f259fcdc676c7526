package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/feohuman/squishcart/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeedsEmptyDocuments(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	for _, name := range []string{"history.json", "recipes.json", "recommendations.json"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	history, err := s.History()
	require.NoError(t, err)
	assert.Empty(t, history.History)
}

func TestNewKeepsExistingDocuments(t *testing.T) {
	dir := t.TempDir()
	seed := `{"recipes": [{"name": "Omelette", "ingredients": ["Eggs"], "popularity": 7}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "recipes.json"), []byte(seed), 0o644))

	s, err := New(dir)
	require.NoError(t, err)

	doc, err := s.Recipes()
	require.NoError(t, err)
	require.Len(t, doc.Recipes, 1)
	assert.Equal(t, "Omelette", doc.Recipes[0].Name)
	assert.Equal(t, 7, doc.Recipes[0].Popularity)
}

func TestAppendHistoryIsAppendOnly(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.AppendHistory([]models.PurchaseEntry{{Name: "Milk", Quantity: 2, Price: 1.5}}))
	require.NoError(t, s.AppendHistory([]models.PurchaseEntry{{Name: "Bread", Quantity: 1, Price: 2.0}}))

	doc, err := s.History()
	require.NoError(t, err)
	require.Len(t, doc.History, 2)
	assert.Equal(t, "Milk", doc.History[0].Name)
	assert.Equal(t, "Bread", doc.History[1].Name)
}

func TestSaveRecommendationsReplacesDocument(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	first := models.RecipesDocument{Recipes: []models.Recipe{{Name: "A"}, {Name: "B"}, {Name: "C"}}}
	require.NoError(t, s.SaveRecommendations(first))

	second := models.RecipesDocument{Recipes: []models.Recipe{{Name: "X"}, {Name: "Y"}, {Name: "Z"}}}
	require.NoError(t, s.SaveRecommendations(second))

	doc, err := s.Recommendations()
	require.NoError(t, err)
	require.Len(t, doc.Recipes, 3)
	assert.Equal(t, "X", doc.Recipes[0].Name)
}

func TestReadRejectsCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "recipes.json"), []byte("{not json"), 0o644))
	_, err = s.Recipes()
	assert.Error(t, err)
}
