package recommend

import (
	"errors"
	"testing"
	"time"

	"github.com/feohuman/squishcart/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 11, 12, 10, 30, 0, 0, time.UTC)

func catalog() []models.Recipe {
	return []models.Recipe{
		{Name: "A", Ingredients: []string{"Milk"}},
		{Name: "B", Ingredients: []string{}},
		{Name: "C", Ingredients: []string{"Milk"}},
	}
}

func TestRankScoresByPurchasedQuantity(t *testing.T) {
	history := []models.PurchaseEntry{{Name: "Milk", Quantity: 3}}
	recipes := catalog()

	top, err := Rank(history, recipes, today)
	require.NoError(t, err)

	assert.Equal(t, 3, recipes[0].Popularity)
	assert.Equal(t, 0, recipes[1].Popularity)
	assert.Equal(t, 3, recipes[2].Popularity)

	// A and C tie at 3; catalog order keeps A ahead of C, B trails.
	require.Len(t, top, 3)
	assert.Equal(t, "A", top[0].Name)
	assert.Equal(t, "C", top[1].Name)
	assert.Equal(t, "B", top[2].Name)
}

func TestRankEmptyHistoryReturnsCatalogOrder(t *testing.T) {
	recipes := []models.Recipe{
		{Name: "First"}, {Name: "Second"}, {Name: "Third"}, {Name: "Fourth"},
	}

	top, err := Rank(nil, recipes, today)
	require.NoError(t, err)

	assert.Equal(t, "First", top[0].Name)
	assert.Equal(t, "Second", top[1].Name)
	assert.Equal(t, "Third", top[2].Name)
	for _, r := range recipes {
		assert.Zero(t, r.Popularity)
	}
}

func TestRankSmallCatalogFails(t *testing.T) {
	_, err := Rank(nil, []models.Recipe{{Name: "A"}, {Name: "B"}}, today)
	assert.ErrorIs(t, err, ErrInsufficientCatalog)
}

func TestRankExpiryBonusWindow(t *testing.T) {
	cases := []struct {
		daysOut int
		want    int
	}{
		{0, 2},  // expiring today: no bonus
		{1, 3},  // inside the window
		{3, 3},  // inside the window
		{4, 3},  // last day of the window
		{5, 2},  // exactly five days out: no bonus
		{9, 2},  // far out: no bonus
		{-1, 2}, // already expired: no bonus
	}

	for _, tc := range cases {
		history := []models.PurchaseEntry{{
			Name:           "Milk",
			Quantity:       2,
			ExpirationDate: today.AddDate(0, 0, tc.daysOut),
		}}
		recipes := catalog()

		_, err := Rank(history, recipes, today)
		require.NoError(t, err)
		assert.Equal(t, tc.want, recipes[0].Popularity, "%d days out", tc.daysOut)
	}
}

func TestRankIgnoresBlankEntries(t *testing.T) {
	history := []models.PurchaseEntry{
		{},
		{Name: "Milk", Quantity: 1},
	}
	recipes := catalog()

	_, err := Rank(history, recipes, today)
	require.NoError(t, err)
	assert.Equal(t, 1, recipes[0].Popularity)
}

func TestRankIsIdempotentAcrossRepeatedPasses(t *testing.T) {
	history := []models.PurchaseEntry{{Name: "Milk", Quantity: 4}}
	recipes := catalog()

	_, err := Rank(history, recipes, today)
	require.NoError(t, err)
	first := recipes[0].Popularity

	_, err = Rank(history, recipes, today)
	require.NoError(t, err)
	assert.Equal(t, first, recipes[0].Popularity)
}

func TestRankHigherScoresDisplaceEarlierRecipes(t *testing.T) {
	history := []models.PurchaseEntry{
		{Name: "Flour", Quantity: 7},
		{Name: "Milk", Quantity: 2},
	}
	recipes := []models.Recipe{
		{Name: "Porridge", Ingredients: []string{"Milk"}},
		{Name: "Toast", Ingredients: []string{}},
		{Name: "Pancakes", Ingredients: []string{"Flour", "Milk"}},
		{Name: "Bread", Ingredients: []string{"Flour"}},
	}

	top, err := Rank(history, recipes, today)
	require.NoError(t, err)

	assert.Equal(t, "Pancakes", top[0].Name) // 9
	assert.Equal(t, "Bread", top[1].Name)    // 7
	assert.Equal(t, "Porridge", top[2].Name) // 2
}

type fakeStore struct {
	history models.HistoryDocument
	recipes models.RecipesDocument

	savedRecipes *models.RecipesDocument
	savedTop     *models.RecipesDocument
	historyErr   error
}

func (f *fakeStore) History() (models.HistoryDocument, error) {
	return f.history, f.historyErr
}
func (f *fakeStore) Recipes() (models.RecipesDocument, error) { return f.recipes, nil }
func (f *fakeStore) SaveRecipes(d models.RecipesDocument) error {
	f.savedRecipes = &d
	return nil
}
func (f *fakeStore) SaveRecommendations(d models.RecipesDocument) error {
	f.savedTop = &d
	return nil
}

func TestRefresherPersistsScoresAndTopThree(t *testing.T) {
	store := &fakeStore{
		history: models.HistoryDocument{History: []models.PurchaseEntry{{Name: "Milk", Quantity: 2}}},
		recipes: models.RecipesDocument{Recipes: catalog()},
	}

	top, err := NewRefresher(store).Refresh()
	require.NoError(t, err)

	require.Len(t, top, 3)
	assert.Equal(t, "A", top[0].Name)

	require.NotNil(t, store.savedRecipes)
	assert.Equal(t, 2, store.savedRecipes.Recipes[0].Popularity)
	require.NotNil(t, store.savedTop)
	assert.Len(t, store.savedTop.Recipes, 3)
}

func TestRefresherPropagatesStoreErrors(t *testing.T) {
	store := &fakeStore{historyErr: errors.New("disk gone")}
	_, err := NewRefresher(store).Refresh()
	assert.Error(t, err)
}
