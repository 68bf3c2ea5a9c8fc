package main

import (
	"github.com/shophub-next/internal/config"
	"github.com/shophub-next/internal/logger"
	"github.com/shophub-next/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Name: "Clothing", Slug: "clothing", Description: "Shirts, jackets and everyday wear"},
		{Name: "Accessories", Slug: "accessories", Description: "Hats, bags and small goods"},
		{Name: "Footwear", Slug: "footwear", Description: "Sneakers and boots"},
		{Name: "Electronics", Slug: "electronics", Description: "Gadgets and audio gear"},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			// 不存在则创建
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	// 获取分类ID
	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("slug IN ?", []string{"clothing", "accessories", "footwear", "electronics"}).Find(&categoryList).Error; err != nil {
		stdLog.Fatalf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}

	// 添加商品
	products := []models.Product{
		{
			CategoryID:  categoryIDs["clothing"],
			Name:        "Blue Shirt",
			Slug:        "blue-shirt",
			Description: "Classic cotton shirt in navy blue",
			Price:       mustMoney("29.99"),
			ImageURL:    "https://images.shophub.dev/products/blue-shirt.jpg",
			Stock:       50,
			Featured:    true,
		},
		{
			CategoryID:  categoryIDs["clothing"],
			Name:        "Denim Jacket",
			Slug:        "denim-jacket",
			Description: "Washed denim jacket with brass buttons",
			Price:       mustMoney("79.50"),
			ImageURL:    "https://images.shophub.dev/products/denim-jacket.jpg",
			Stock:       20,
			Featured:    false,
		},
		{
			CategoryID:  categoryIDs["accessories"],
			Name:        "Red Hat",
			Slug:        "red-hat",
			Description: "Wool beanie in bright red",
			Price:       mustMoney("14.99"),
			ImageURL:    "https://images.shophub.dev/products/red-hat.jpg",
			Stock:       80,
			Featured:    true,
		},
		{
			CategoryID:  categoryIDs["accessories"],
			Name:        "Canvas Tote Bag",
			Slug:        "canvas-tote-bag",
			Description: "Heavy duty tote for daily errands",
			Price:       mustMoney("19.00"),
			ImageURL:    "https://images.shophub.dev/products/canvas-tote-bag.jpg",
			Stock:       35,
			Featured:    false,
		},
		{
			CategoryID:  categoryIDs["footwear"],
			Name:        "White Sneakers",
			Slug:        "white-sneakers",
			Description: "Minimal low-top sneakers",
			Price:       mustMoney("89.99"),
			ImageURL:    "https://images.shophub.dev/products/white-sneakers.jpg",
			Stock:       25,
			Featured:    true,
		},
		{
			CategoryID:  categoryIDs["electronics"],
			Name:        "Wireless Earbuds",
			Slug:        "wireless-earbuds",
			Description: "Bluetooth earbuds with charging case",
			Price:       mustMoney("59.90"),
			ImageURL:    "https://images.shophub.dev/products/wireless-earbuds.jpg",
			Stock:       40,
			Featured:    false,
		},
		{
			CategoryID:  categoryIDs["electronics"],
			Name:        "Portable Speaker",
			Slug:        "portable-speaker",
			Description: "Water resistant speaker with 12h battery",
			Price:       mustMoney("45.00"),
			ImageURL:    "https://images.shophub.dev/products/portable-speaker.jpg",
			Stock:       0,
			Featured:    false,
		},
	}

	for _, product := range products {
		if product.CategoryID == 0 {
			stdLog.Printf("Skip product %s: category missing", product.Slug)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("slug = ?", product.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Slug, err)
			} else {
				stdLog.Printf("Created product: %s", product.Slug)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Slug)
		}
	}

	stdLog.Println("Seed finished")
}

func mustMoney(s string) models.Money {
	return models.NewMoneyFromDecimal(decimal.RequireFromString(s))
}
