package public

import (
	"strconv"

	"github.com/shophub-next/internal/http/response"
	"github.com/shophub-next/internal/models"
	"github.com/shophub-next/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加购请求
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// UpdateCartItemRequest 改数量请求
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartProduct 购物车商品摘要
type CartProduct struct {
	ID       uint         `json:"id"`
	Name     string       `json:"name"`
	Slug     string       `json:"slug"`
	Price    models.Money `json:"price"`
	ImageURL string       `json:"image_url"`
	Stock    int          `json:"stock"`
}

// CartItemResponse 购物车项响应
type CartItemResponse struct {
	ID        uint        `json:"id"`
	ProductID uint        `json:"product_id"`
	Quantity  int         `json:"quantity"`
	Product   CartProduct `json:"product"`
}

// CartResponse 购物车响应（列表加汇总）
type CartResponse struct {
	Items   []CartItemResponse  `json:"items"`
	Summary service.CartSummary `json:"summary"`
}

func (h *Handler) buildCartResponse(items []models.CartItem) CartResponse {
	respItems := make([]CartItemResponse, 0, len(items))
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		respItems = append(respItems, CartItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Product: CartProduct{
				ID:       item.Product.ID,
				Name:     item.Product.Name,
				Slug:     item.Product.Slug,
				Price:    item.Product.Price,
				ImageURL: item.Product.ImageURL,
				Stock:    item.Product.Stock,
			},
		})
	}
	return CartResponse{
		Items:   respItems,
		Summary: h.CartService.Summarize(items),
	}
}

func (h *Handler) respondCart(c *gin.Context, sessionID string) {
	items, err := h.CartService.ListBySession(sessionID)
	if err != nil {
		respondError(c, response.CodeInternal, "cart fetch failed", err)
		return
	}
	response.Success(c, h.buildCartResponse(items))
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	h.respondCart(c, sessionID)
}

// AddCartItem 加入购物车，已有同商品则合并数量
func (h *Handler) AddCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if _, err := h.CartService.AddToCart(sessionID, req.ProductID, quantity); err != nil {
		respondCartWriteError(c, err)
		return
	}
	h.respondCart(c, sessionID)
}

// UpdateCartItem 更新购物车项数量，数量小于等于零时移除
func (h *Handler) UpdateCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	itemID, ok := parseItemID(c)
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	if err := h.CartService.UpdateQuantity(sessionID, itemID, req.Quantity); err != nil {
		respondCartWriteError(c, err)
		return
	}
	h.respondCart(c, sessionID)
}

// DeleteCartItem 移除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	itemID, ok := parseItemID(c)
	if !ok {
		return
	}
	if err := h.CartService.RemoveFromCart(sessionID, itemID); err != nil {
		respondCartWriteError(c, err)
		return
	}
	h.respondCart(c, sessionID)
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	if err := h.CartService.ClearCart(sessionID); err != nil {
		respondCartWriteError(c, err)
		return
	}
	h.respondCart(c, sessionID)
}

func parseItemID(c *gin.Context) (uint, bool) {
	rawID := c.Param("id")
	itemID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || itemID == 0 {
		respondError(c, response.CodeBadRequest, "cart item invalid", nil)
		return 0, false
	}
	return uint(itemID), true
}
