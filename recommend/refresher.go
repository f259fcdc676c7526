package recommend

import (
	"time"

	"github.com/feohuman/squishcart/models"
)

// Store is the document persistence the refresher needs. The JSON-file store
// satisfies it; anything with get/put document semantics would do.
type Store interface {
	History() (models.HistoryDocument, error)
	Recipes() (models.RecipesDocument, error)
	SaveRecipes(models.RecipesDocument) error
	SaveRecommendations(models.RecipesDocument) error
}

// Refresher reloads history and recipes, reranks, and persists both the
// updated scores and the current top-3 document. It runs after every checkout
// and on demand from the admin API.
type Refresher struct {
	store Store
	now   func() time.Time
}

func NewRefresher(store Store) *Refresher {
	return &Refresher{store: store, now: time.Now}
}

func (r *Refresher) Refresh() ([]models.Recipe, error) {
	history, err := r.store.History()
	if err != nil {
		return nil, err
	}
	catalog, err := r.store.Recipes()
	if err != nil {
		return nil, err
	}

	top, err := Rank(history.History, catalog.Recipes, r.now())
	if err != nil {
		return nil, err
	}

	if err := r.store.SaveRecipes(catalog); err != nil {
		return nil, err
	}
	if err := r.store.SaveRecommendations(models.RecipesDocument{Recipes: top}); err != nil {
		return nil, err
	}
	return top, nil
}
