package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/feohuman/squishcart/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrInsufficientStock is returned when a decrement would drive a
	// product's stock below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalidQuantity is returned for non-positive quantities and for
	// removals exceeding the current line quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrNotFound        = errors.New("not found")
	ErrEmptyBasket     = errors.New("basket is empty")
)

// Service applies stock and basket mutations in lockstep. Every operation
// runs inside a single transaction with the product row locked, so two
// concurrent adds against the last unit of stock cannot both succeed.
type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service {
	return &Service{db: db}
}

// applyAdd moves qty units from product stock into the basket line. All four
// records are mutated together or not at all.
func applyAdd(p *models.Product, b *models.Basket, item *models.BasketItem, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if p.Stock < qty {
		return fmt.Errorf("%w: product %q has %d, requested %d", ErrInsufficientStock, p.Name, p.Stock, qty)
	}
	subtotal := p.Price * float64(qty)
	p.Stock -= qty
	item.Quantity += qty
	item.TotalPrice += subtotal
	b.Quantity += qty
	b.TotalPrice += subtotal
	return nil
}

// applyRemove returns qty units from the basket line to product stock.
func applyRemove(p *models.Product, b *models.Basket, item *models.BasketItem, qty int) error {
	if qty <= 0 || qty > item.Quantity {
		return fmt.Errorf("%w: line has %d, requested removal of %d", ErrInvalidQuantity, item.Quantity, qty)
	}
	subtotal := p.Price * float64(qty)
	p.Stock += qty
	item.Quantity -= qty
	item.TotalPrice -= subtotal
	b.Quantity -= qty
	b.TotalPrice -= subtotal
	return nil
}

// applyDelete restores the full line to product stock and drops it from the
// basket totals.
func applyDelete(p *models.Product, b *models.Basket, item *models.BasketItem) {
	p.Stock += item.Quantity
	b.Quantity -= item.Quantity
	b.TotalPrice -= item.TotalPrice
	item.Quantity = 0
	item.TotalPrice = 0
}

// AddItem decrements product stock and upserts the basket line for that
// product. An existing line is incremented at the product's current unit
// price; the original capture on the line is kept as-is.
func (s *Service) AddItem(basketID, productID uint, qty int) (*models.BasketItem, error) {
	var result models.BasketItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, "id = ?", productID).Error; err != nil {
			return notFound(err, "product")
		}

		var basket models.Basket
		if err := tx.First(&basket, "id = ?", basketID).Error; err != nil {
			return notFound(err, "basket")
		}

		var item models.BasketItem
		err := tx.Where("basket_id = ? AND product_id = ?", basketID, productID).First(&item).Error
		newLine := errors.Is(err, gorm.ErrRecordNotFound)
		if err != nil && !newLine {
			return err
		}
		if newLine {
			item = models.BasketItem{BasketID: basketID, ProductID: productID, AddedAt: time.Now()}
		}

		if err := applyAdd(&product, &basket, &item, qty); err != nil {
			return err
		}

		if err := tx.Save(&product).Error; err != nil {
			return err
		}
		if err := tx.Save(&basket).Error; err != nil {
			return err
		}
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		result = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RemoveItem returns qty units from a basket line to stock. A line that
// reaches zero quantity is deleted.
func (s *Service) RemoveItem(basketID, itemID uint, qty int) (*models.BasketItem, error) {
	var result models.BasketItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		item, product, basket, err := lockLine(tx, basketID, itemID)
		if err != nil {
			return err
		}

		if err := applyRemove(product, basket, item, qty); err != nil {
			return err
		}

		if item.Quantity == 0 {
			if err := tx.Delete(item).Error; err != nil {
				return err
			}
		} else if err := tx.Save(item).Error; err != nil {
			return err
		}
		if err := tx.Save(product).Error; err != nil {
			return err
		}
		if err := tx.Save(basket).Error; err != nil {
			return err
		}
		result = *item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteItem restores the full line quantity to stock and removes the line.
func (s *Service) DeleteItem(basketID, itemID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		item, product, basket, err := lockLine(tx, basketID, itemID)
		if err != nil {
			return err
		}

		applyDelete(product, basket, item)

		if err := tx.Delete(item).Error; err != nil {
			return err
		}
		if err := tx.Save(product).Error; err != nil {
			return err
		}
		return tx.Save(basket).Error
	})
}

// IncreaseStock is a catalog-level restock, independent of any basket.
func (s *Service) IncreaseStock(productID uint, amount int) (*models.Product, error) {
	return s.adjustStock(productID, amount, false)
}

// DecreaseStock is a catalog-level write-off; it fails rather than going
// negative.
func (s *Service) DecreaseStock(productID uint, amount int) (*models.Product, error) {
	return s.adjustStock(productID, amount, true)
}

func (s *Service) adjustStock(productID uint, amount int, decrease bool) (*models.Product, error) {
	if amount <= 0 {
		return nil, ErrInvalidQuantity
	}
	var result models.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, "id = ?", productID).Error; err != nil {
			return notFound(err, "product")
		}
		if decrease {
			if product.Stock < amount {
				return fmt.Errorf("%w: product %q has %d, requested %d", ErrInsufficientStock, product.Name, product.Stock, amount)
			}
			product.Stock -= amount
		} else {
			product.Stock += amount
		}
		if err := tx.Save(&product).Error; err != nil {
			return err
		}
		result = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Checkout snapshots every basket line into a purchase entry, empties the
// basket and zeroes its totals in the same transaction. Stock was already
// deducted when the lines were added, so checkout only moves the lines into
// history. The record callback runs inside the transaction: if persisting the
// entries fails, the basket is left untouched.
func (s *Service) Checkout(basketID uint, record func([]models.PurchaseEntry) error) ([]models.PurchaseEntry, string, error) {
	var entries []models.PurchaseEntry
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var basket models.Basket
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Items").First(&basket, "id = ?", basketID).Error; err != nil {
			return notFound(err, "basket")
		}
		if len(basket.Items) == 0 {
			return ErrEmptyBasket
		}

		for _, item := range basket.Items {
			var product models.Product
			if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
				return notFound(err, "product")
			}
			entries = append(entries, models.PurchaseEntry{
				Name:           product.Name,
				Quantity:       item.Quantity,
				Price:          product.Price,
				ExpirationDate: product.ExpirationDate,
			})
		}

		if err := tx.Where("basket_id = ?", basket.ID).Delete(&models.BasketItem{}).Error; err != nil {
			return err
		}
		basket.Quantity = 0
		basket.TotalPrice = 0
		if err := tx.Save(&basket).Error; err != nil {
			return err
		}
		if record != nil {
			return record(entries)
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	ref := time.Now().Format("20060102150405") + "-" + uuid.NewString()
	return entries, ref, nil
}

// lockLine fetches a basket line with its product row locked, verifying the
// line belongs to the given basket.
func lockLine(tx *gorm.DB, basketID, itemID uint) (*models.BasketItem, *models.Product, *models.Basket, error) {
	var item models.BasketItem
	if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
		return nil, nil, nil, notFound(err, "basket item")
	}
	if item.BasketID != basketID {
		return nil, nil, nil, fmt.Errorf("%w: basket item %d", ErrNotFound, itemID)
	}

	var product models.Product
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "id = ?", item.ProductID).Error; err != nil {
		return nil, nil, nil, notFound(err, "product")
	}

	var basket models.Basket
	if err := tx.First(&basket, "id = ?", basketID).Error; err != nil {
		return nil, nil, nil, notFound(err, "basket")
	}
	return &item, &product, &basket, nil
}

func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	}
	return err
}
