package service

import (
	"strings"
	"time"

	"github.com/shophub-next/internal/logger"
	"github.com/shophub-next/internal/models"
	"github.com/shophub-next/internal/repository"
)

// CartSummary 购物车汇总
type CartSummary struct {
	Count int          `json:"count"` // 数量合计
	Total models.Money `json:"total"` // 金额合计（单价 × 数量求和）
}

// CartService 购物车服务。
// 会话标识由调用方显式传入，所有操作返回结果或错误；
// 远端写入失败时不产生任何可见状态变化。
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// ListBySession 获取会话购物车（关联商品）。
// 商品已被下架删除的行直接丢弃并尽力清理。
func (s *CartService) ListBySession(sessionID string) ([]models.CartItem, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidCartItem
	}
	items, err := s.cartRepo.ListBySession(sessionID)
	if err != nil {
		return nil, err
	}
	result := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.Product == nil || item.Product.ID == 0 {
			if err := s.cartRepo.DeleteBySessionAndProduct(sessionID, item.ProductID); err != nil {
				logger.Warnw("cart_prune_dangling_item_failed",
					"session_id", sessionID,
					"product_id", item.ProductID,
					"error", err,
				)
			}
			continue
		}
		result = append(result, item)
	}
	return result, nil
}

// AddToCart 加入购物车。同商品合并数量，从不产生重复行。
func (s *CartService) AddToCart(sessionID string, productID uint, quantity int) (*models.CartItem, error) {
	if strings.TrimSpace(sessionID) == "" || productID == 0 || quantity <= 0 {
		return nil, ErrInvalidCartItem
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotAvailable
	}

	now := time.Now()
	item := &models.CartItem{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.cartRepo.AddQuantity(item); err != nil {
		return nil, err
	}
	return s.cartRepo.GetBySessionAndProduct(sessionID, productID)
}

// UpdateQuantity 更新购物车项数量；数量 <= 0 时等同于删除
func (s *CartService) UpdateQuantity(sessionID string, itemID uint, quantity int) error {
	if strings.TrimSpace(sessionID) == "" || itemID == 0 {
		return ErrInvalidCartItem
	}
	if quantity <= 0 {
		return s.RemoveFromCart(sessionID, itemID)
	}
	affected, err := s.cartRepo.UpdateQuantity(sessionID, itemID, quantity, time.Now())
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// RemoveFromCart 删除购物车项
func (s *CartService) RemoveFromCart(sessionID string, itemID uint) error {
	if strings.TrimSpace(sessionID) == "" || itemID == 0 {
		return ErrInvalidCartItem
	}
	affected, err := s.cartRepo.DeleteByID(sessionID, itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// ClearCart 清空会话购物车（结算完成后调用）
func (s *CartService) ClearCart(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrInvalidCartItem
	}
	return s.cartRepo.ClearBySession(sessionID)
}

// Summarize 计算购物车汇总（数量合计与金额合计）
func (s *CartService) Summarize(items []models.CartItem) CartSummary {
	summary := CartSummary{Total: models.Money{}}
	for _, item := range items {
		summary.Count += item.Quantity
		if item.Product != nil {
			summary.Total = summary.Total.AddMoney(item.Product.Price.MulInt(item.Quantity))
		}
	}
	return summary
}
