package public

import (
	"github.com/shophub-next/internal/http/response"
	"github.com/shophub-next/internal/service"

	"github.com/gin-gonic/gin"
)

// StartCheckout 开启（或重置）结算向导
func (h *Handler) StartCheckout(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	state, err := h.CheckoutService.Start(sessionID)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, gin.H{"checkout": state})
}

// GetCheckout 获取结算向导当前状态
func (h *Handler) GetCheckout(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	state, err := h.CheckoutService.Get(sessionID)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, gin.H{"checkout": state})
}

// SubmitCheckoutDetails 提交第一步表单并前进到支付步骤
func (h *Handler) SubmitCheckoutDetails(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req service.CheckoutDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	state, err := h.CheckoutService.SubmitDetails(sessionID, req)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, gin.H{"checkout": state})
}

// BackCheckout 从支付步骤退回详情步骤
func (h *Handler) BackCheckout(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	state, err := h.CheckoutService.Back(sessionID)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, gin.H{"checkout": state})
}

// SubmitCheckoutPayment 提交支付信息，清空购物车并进入确认步骤
func (h *Handler) SubmitCheckoutPayment(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req service.CheckoutPayment
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	state, err := h.CheckoutService.SubmitPayment(sessionID, req)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.SuccessWithMsg(c, "order confirmed", gin.H{"checkout": state})
}

// CloseCheckout 关闭结算向导并丢弃表单状态
func (h *Handler) CloseCheckout(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	h.CheckoutService.Close(sessionID)
	response.Success(c, gin.H{"closed": true})
}
