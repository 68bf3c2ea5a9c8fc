package service

import (
	"sync"

	"github.com/shophub-next/internal/logger"
	"github.com/shophub-next/internal/models"
	"github.com/shophub-next/internal/repository"
)

// CatalogService 商品目录服务。
// 启动时整体加载分类与商品两份列表，此后只读提供给展示层；
// 任一加载失败仅记录日志，对应列表保持为空。
type CatalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository

	mu         sync.RWMutex
	categories []models.Category
	products   []models.Product
	loading    bool
}

// NewCatalogService 创建目录服务
func NewCatalogService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		loading:      true,
	}
}

// Load 执行两次独立的一次性加载。商品加载结束（无论成败）后目录视为就绪。
func (s *CatalogService) Load() {
	categories, err := s.categoryRepo.List()
	if err != nil {
		logger.Errorw("catalog_load_categories_failed", "error", err)
		categories = nil
	}
	s.mu.Lock()
	s.categories = categories
	s.mu.Unlock()

	products, err := s.productRepo.List()
	if err != nil {
		logger.Errorw("catalog_load_products_failed", "error", err)
		products = nil
	}
	s.mu.Lock()
	s.products = products
	s.loading = false
	s.mu.Unlock()
}

// Ready 目录是否加载完成
func (s *CatalogService) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.loading
}

// Categories 分类列表（按名称升序，加载时已排好）
func (s *CatalogService) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.categories == nil {
		return []models.Category{}
	}
	result := make([]models.Category, len(s.categories))
	copy(result, s.categories)
	return result
}

// Products 按分类与搜索词过滤后的商品列表
func (s *CatalogService) Products(categoryID uint, query string) []models.Product {
	s.mu.RLock()
	products := s.products
	s.mu.RUnlock()
	return FilterProducts(products, categoryID, query)
}

// GetProductBySlug 商品详情
func (s *CatalogService) GetProductBySlug(slug string) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}
