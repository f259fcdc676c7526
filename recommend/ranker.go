package recommend

import (
	"errors"
	"time"

	"github.com/feohuman/squishcart/models"
)

// ErrInsufficientCatalog is returned when the recipe catalog holds fewer
// recipes than a recommendation set.
var ErrInsufficientCatalog = errors.New("recipe catalog needs at least 3 recipes")

// Soon-to-expire purchases earn matching recipes one bonus point when the
// expiration date falls strictly inside this window.
const expiryBonusDays = 5

// Rank recomputes every recipe's popularity from the full purchase history
// and returns the three most popular recipes. Scores are zeroed first so a
// repeated pass over the same history yields the same result. Ties are broken
// by catalog order: an equal-scoring later recipe never displaces an earlier
// one. With an empty history the first three catalog entries are returned in
// order.
func Rank(history []models.PurchaseEntry, recipes []models.Recipe, today time.Time) ([]models.Recipe, error) {
	if len(recipes) < 3 {
		return nil, ErrInsufficientCatalog
	}

	for i := range recipes {
		recipes[i].Popularity = 0
	}

	for _, entry := range history {
		if entry.Name == "" {
			continue
		}
		points := entry.Quantity
		if !entry.ExpirationDate.IsZero() {
			if days := daysBetween(today, entry.ExpirationDate); days > 0 && days < expiryBonusDays {
				points++
			}
		}
		for i := range recipes {
			if usesIngredient(recipes[i], entry.Name) {
				recipes[i].Popularity += points
			}
		}
	}

	// Running top-3 sweep; strict > keeps the first-seen recipe on ties.
	top := [3]int{-1, -1, -1}
	score := func(idx int) int {
		if idx < 0 {
			return -1 << 31
		}
		return recipes[idx].Popularity
	}
	for i := range recipes {
		switch {
		case recipes[i].Popularity > score(top[0]):
			top[2], top[1], top[0] = top[1], top[0], i
		case recipes[i].Popularity > score(top[1]):
			top[2], top[1] = top[1], i
		case recipes[i].Popularity > score(top[2]):
			top[2] = i
		}
	}

	return []models.Recipe{recipes[top[0]], recipes[top[1]], recipes[top[2]]}, nil
}

func usesIngredient(r models.Recipe, name string) bool {
	for _, ing := range r.Ingredients {
		if ing == name {
			return true
		}
	}
	return false
}

// daysBetween compares calendar days, ignoring the time of day on either
// side.
func daysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay) / (24 * time.Hour))
}
