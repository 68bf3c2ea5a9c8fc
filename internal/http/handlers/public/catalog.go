package public

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shophub-next/internal/cache"
	"github.com/shophub-next/internal/http/response"
	"github.com/shophub-next/internal/models"
	"github.com/shophub-next/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	catalogCategoriesCacheKey = "catalog:categories"
	catalogProductsCacheKey   = "catalog:products"
)

func (h *Handler) catalogCacheTTL() time.Duration {
	seconds := 60
	if h.Config != nil && h.Config.Catalog.CacheSeconds > 0 {
		seconds = h.Config.Catalog.CacheSeconds
	}
	return time.Duration(seconds) * time.Second
}

// GetCategories 获取全部分类（按名称升序）
func (h *Handler) GetCategories(c *gin.Context) {
	if !h.CatalogService.Ready() {
		respondError(c, response.CodeUnavailable, "catalog is loading", nil)
		return
	}

	var cached []models.Category
	if hit, err := cache.GetJSON(c.Request.Context(), catalogCategoriesCacheKey, &cached); err == nil && hit {
		response.Success(c, gin.H{"categories": cached})
		return
	}

	categories := h.CatalogService.Categories()
	_ = cache.SetJSON(c.Request.Context(), catalogCategoriesCacheKey, categories, h.catalogCacheTTL())
	response.Success(c, gin.H{"categories": categories})
}

// GetProducts 获取商品列表，支持分类与关键字过滤
func (h *Handler) GetProducts(c *gin.Context) {
	if !h.CatalogService.Ready() {
		respondError(c, response.CodeUnavailable, "catalog is loading", nil)
		return
	}

	var categoryID uint
	if raw := strings.TrimSpace(c.Query("category_id")); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(c, response.CodeBadRequest, "category id invalid", nil)
			return
		}
		categoryID = uint(parsed)
	}
	query := strings.TrimSpace(c.Query("q"))

	// 未过滤的全量列表走缓存快照
	if categoryID == 0 && query == "" {
		var cached []models.Product
		if hit, err := cache.GetJSON(c.Request.Context(), catalogProductsCacheKey, &cached); err == nil && hit {
			response.Success(c, gin.H{"items": cached})
			return
		}
		items := h.CatalogService.Products(0, "")
		_ = cache.SetJSON(c.Request.Context(), catalogProductsCacheKey, items, h.catalogCacheTTL())
		response.Success(c, gin.H{"items": items})
		return
	}

	items := h.CatalogService.Products(categoryID, query)
	response.Success(c, gin.H{"items": items})
}

// GetProductBySlug 按 slug 获取商品详情
func (h *Handler) GetProductBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "slug required", nil)
		return
	}
	product, err := h.CatalogService.GetProductBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "product not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "product fetch failed", err)
		return
	}
	response.Success(c, gin.H{"product": product})
}
