package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/shophub-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartRepositoryTest(t *testing.T) (*GormCartRepository, *gorm.DB, *models.Product) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_repository_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	category := &models.Category{Name: "Clothing", Slug: "clothing"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := &models.Product{
		CategoryID: category.ID,
		Name:       "Blue Shirt",
		Slug:       "blue-shirt",
		Price:      models.NewMoneyFromDecimal(decimal.RequireFromString("29.99")),
		Stock:      50,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return NewCartRepository(db), db, product
}

func TestAddQuantityUpsertIncrements(t *testing.T) {
	repo, db, product := setupCartRepositoryTest(t)
	session := "session_1700000000000_abc123def"
	now := time.Now()

	for _, quantity := range []int{1, 2, 4} {
		item := &models.CartItem{
			SessionID: session,
			ProductID: product.ID,
			Quantity:  quantity,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.AddQuantity(item); err != nil {
			t.Fatalf("add quantity failed: %v", err)
		}
	}

	var rows []models.CartItem
	if err := db.Where("session_id = ?", session).Find(&rows).Error; err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected single row after upserts, got %d", len(rows))
	}
	if rows[0].Quantity != 7 {
		t.Fatalf("quantity want 7 got %d", rows[0].Quantity)
	}
}

func TestAddQuantityIsolatedPerSession(t *testing.T) {
	repo, db, product := setupCartRepositoryTest(t)
	now := time.Now()

	for _, session := range []string{"session_1_a", "session_2_b"} {
		item := &models.CartItem{
			SessionID: session,
			ProductID: product.ID,
			Quantity:  1,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.AddQuantity(item); err != nil {
			t.Fatalf("add quantity failed: %v", err)
		}
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected one row per session, got %d", count)
	}
}

func TestUpdateQuantityScopedBySession(t *testing.T) {
	repo, _, product := setupCartRepositoryTest(t)
	now := time.Now()
	item := &models.CartItem{
		SessionID: "session_1700000000000_abc123def",
		ProductID: product.ID,
		Quantity:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.AddQuantity(item); err != nil {
		t.Fatalf("add quantity failed: %v", err)
	}
	stored, err := repo.GetBySessionAndProduct(item.SessionID, product.ID)
	if err != nil || stored == nil {
		t.Fatalf("fetch stored item failed: %v", err)
	}

	affected, err := repo.UpdateQuantity("session_other_x", stored.ID, 5, time.Now())
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("foreign session update should touch no rows, got %d", affected)
	}

	affected, err = repo.UpdateQuantity(item.SessionID, stored.ID, 5, time.Now())
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("owner update should touch one row, got %d", affected)
	}
}

func TestClearBySession(t *testing.T) {
	repo, db, product := setupCartRepositoryTest(t)
	now := time.Now()
	keep := "session_keep_a"
	clear := "session_clear_b"
	for _, session := range []string{keep, clear} {
		item := &models.CartItem{
			SessionID: session,
			ProductID: product.ID,
			Quantity:  1,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.AddQuantity(item); err != nil {
			t.Fatalf("add quantity failed: %v", err)
		}
	}

	if err := repo.ClearBySession(clear); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	var count int64
	if err := db.Model(&models.CartItem{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("only the cleared session should lose rows, got %d remaining", count)
	}
}
