package service

import (
	"strings"

	"github.com/shophub-next/internal/models"
)

// FilterProducts 按分类与搜索词过滤商品列表。
// 纯函数：不修改入参，保持原有相对顺序。规则依次为
// 分类精确匹配、名称或描述的大小写不敏感子串匹配。
func FilterProducts(products []models.Product, categoryID uint, query string) []models.Product {
	filtered := products

	if categoryID != 0 {
		next := make([]models.Product, 0, len(filtered))
		for _, p := range filtered {
			if p.CategoryID == categoryID {
				next = append(next, p)
			}
		}
		filtered = next
	}

	if q := strings.ToLower(strings.TrimSpace(query)); q != "" {
		next := make([]models.Product, 0, len(filtered))
		for _, p := range filtered {
			if strings.Contains(strings.ToLower(p.Name), q) ||
				strings.Contains(strings.ToLower(p.Description), q) {
				next = append(next, p)
			}
		}
		filtered = next
	}

	if filtered == nil {
		return []models.Product{}
	}
	// 顶层未过滤时也复制一份，避免调用方改动共享切片
	result := make([]models.Product, len(filtered))
	copy(result, filtered)
	return result
}
