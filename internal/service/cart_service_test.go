package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shophub-next/internal/models"
	"github.com/shophub-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	svc := NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))
	return svc, db
}

func seedCartTestProduct(t *testing.T, db *gorm.DB, slug, price string, stock int) *models.Product {
	t.Helper()
	category := &models.Category{Name: "Clothing", Slug: "clothing-" + slug}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := &models.Product{
		CategoryID: category.ID,
		Name:       slug,
		Slug:       slug,
		Price:      models.NewMoneyFromDecimal(decimal.RequireFromString(price)),
		Stock:      stock,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestAddToCartMergesQuantity(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartTestProduct(t, db, "blue-shirt", "29.99", 50)
	session := "session_1700000000000_abc123def"

	if _, err := svc.AddToCart(session, product.ID, 1); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	item, err := svc.AddToCart(session, product.ID, 2)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if item == nil || item.Quantity != 3 {
		t.Fatalf("expected merged quantity 3, got %+v", item)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("session_id = ?", session).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected single row after merge, got %d", count)
	}
}

func TestAddToCartUnknownProduct(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	_, err := svc.AddToCart("session_1700000000000_abc123def", 999, 1)
	if !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("expected ErrProductNotAvailable, got %v", err)
	}
}

func TestAddToCartInvalidInput(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartTestProduct(t, db, "red-hat", "14.99", 80)

	if _, err := svc.AddToCart("", product.ID, 1); !errors.Is(err, ErrInvalidCartItem) {
		t.Fatalf("expected ErrInvalidCartItem for empty session, got %v", err)
	}
	if _, err := svc.AddToCart("session_1700000000000_abc123def", product.ID, 0); !errors.Is(err, ErrInvalidCartItem) {
		t.Fatalf("expected ErrInvalidCartItem for zero quantity, got %v", err)
	}
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartTestProduct(t, db, "denim-jacket", "79.50", 20)
	session := "session_1700000000000_abc123def"

	item, err := svc.AddToCart(session, product.ID, 2)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := svc.UpdateQuantity(session, item.ID, 0); err != nil {
		t.Fatalf("update to zero failed: %v", err)
	}
	items, err := svc.ListBySession(session)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart after zero update, got %d items", len(items))
	}
}

func TestUpdateQuantityChangesValue(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartTestProduct(t, db, "white-sneakers", "89.99", 25)
	session := "session_1700000000000_abc123def"

	item, err := svc.AddToCart(session, product.ID, 1)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.UpdateQuantity(session, item.ID, 5); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	items, err := svc.ListBySession(session)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %+v", items)
	}
}

func TestUpdateQuantityNotFound(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	err := svc.UpdateQuantity("session_1700000000000_abc123def", 42, 3)
	if !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestRemoveFromCartSessionIsolation(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartTestProduct(t, db, "canvas-tote-bag", "19.00", 35)
	owner := "session_1700000000000_abc123def"
	other := "session_1700000000001_zzz999zzz"

	item, err := svc.AddToCart(owner, product.ID, 1)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := svc.RemoveFromCart(other, item.ID); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound for foreign session, got %v", err)
	}
	if err := svc.RemoveFromCart(owner, item.ID); err != nil {
		t.Fatalf("owner remove failed: %v", err)
	}
}

func TestClearCart(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	first := seedCartTestProduct(t, db, "wireless-earbuds", "59.90", 40)
	second := seedCartTestProduct(t, db, "portable-speaker", "45.00", 10)
	session := "session_1700000000000_abc123def"

	if _, err := svc.AddToCart(session, first.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.AddToCart(session, second.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := svc.ClearCart(session); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	var count int64
	if err := db.Model(&models.CartItem{}).Where("session_id = ?", session).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no rows after clear, got %d", count)
	}
}

func TestSummarize(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	shirt := seedCartTestProduct(t, db, "blue-shirt", "29.99", 50)
	hat := seedCartTestProduct(t, db, "red-hat", "14.99", 80)
	session := "session_1700000000000_abc123def"

	if _, err := svc.AddToCart(session, shirt.ID, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.AddToCart(session, hat.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	items, err := svc.ListBySession(session)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	summary := svc.Summarize(items)
	if summary.Count != 3 {
		t.Fatalf("count want 3 got %d", summary.Count)
	}
	if summary.Total.String() != "74.97" {
		t.Fatalf("total want 74.97 got %s", summary.Total.String())
	}
}

func TestListBySessionPrunesDanglingRows(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := seedCartTestProduct(t, db, "denim-jacket", "79.50", 20)
	session := "session_1700000000000_abc123def"

	if _, err := svc.AddToCart(session, product.ID, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := db.Delete(&models.Product{}, product.ID).Error; err != nil {
		t.Fatalf("delete product failed: %v", err)
	}

	items, err := svc.ListBySession(session)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected dangling row dropped, got %d items", len(items))
	}
	var count int64
	if err := db.Model(&models.CartItem{}).Where("session_id = ?", session).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected dangling row pruned from store, got %d", count)
	}
}
