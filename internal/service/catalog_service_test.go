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

func setupCatalogServiceTest(t *testing.T) (*CatalogService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:catalog_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	svc := NewCatalogService(repository.NewCategoryRepository(db), repository.NewProductRepository(db))
	return svc, db
}

func seedCatalog(t *testing.T, db *gorm.DB) (models.Category, models.Category) {
	t.Helper()
	zeta := models.Category{Name: "Zeta", Slug: "zeta"}
	alpha := models.Category{Name: "Alpha", Slug: "alpha"}
	if err := db.Create(&zeta).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	if err := db.Create(&alpha).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	products := []models.Product{
		{
			CategoryID: zeta.ID,
			Name:       "Old Plain",
			Slug:       "old-plain",
			Price:      models.NewMoneyFromDecimal(decimal.RequireFromString("10.00")),
			Featured:   false,
			CreatedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			CategoryID: alpha.ID,
			Name:       "New Featured",
			Slug:       "new-featured",
			Price:      models.NewMoneyFromDecimal(decimal.RequireFromString("20.00")),
			Featured:   true,
			CreatedAt:  time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			CategoryID: alpha.ID,
			Name:       "New Plain",
			Slug:       "new-plain",
			Price:      models.NewMoneyFromDecimal(decimal.RequireFromString("30.00")),
			Featured:   false,
			CreatedAt:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}
	return zeta, alpha
}

func TestCatalogServiceReadyAfterLoad(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	seedCatalog(t, db)

	if svc.Ready() {
		t.Fatal("catalog should not be ready before load")
	}
	svc.Load()
	if !svc.Ready() {
		t.Fatal("catalog should be ready after load")
	}
}

func TestCatalogServiceCategoriesOrderedByName(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	seedCatalog(t, db)
	svc.Load()

	categories := svc.Categories()
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if categories[0].Name != "Alpha" || categories[1].Name != "Zeta" {
		t.Fatalf("expected name ascending order, got %s, %s", categories[0].Name, categories[1].Name)
	}
}

func TestCatalogServiceProductsOrderedFeaturedFirst(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	seedCatalog(t, db)
	svc.Load()

	products := svc.Products(0, "")
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	if products[0].Slug != "new-featured" {
		t.Fatalf("featured product should come first, got %s", products[0].Slug)
	}
	if products[1].Slug != "new-plain" || products[2].Slug != "old-plain" {
		t.Fatalf("non-featured products should be newest first, got %s, %s", products[1].Slug, products[2].Slug)
	}
}

func TestCatalogServiceProductsFiltered(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	_, alpha := seedCatalog(t, db)
	svc.Load()

	products := svc.Products(alpha.ID, "plain")
	if len(products) != 1 || products[0].Slug != "new-plain" {
		t.Fatalf("expected only new-plain, got %+v", products)
	}
}

func TestCatalogServiceGetProductBySlug(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	seedCatalog(t, db)
	svc.Load()

	product, err := svc.GetProductBySlug("new-featured")
	if err != nil {
		t.Fatalf("get by slug failed: %v", err)
	}
	if product == nil || product.Name != "New Featured" {
		t.Fatalf("unexpected product: %+v", product)
	}

	if _, err := svc.GetProductBySlug("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
