package service

import "errors"

// 业务哨兵错误，handlers 通过 errors.Is 映射为响应码
var (
	ErrNotFound               = errors.New("record not found")
	ErrProductNotAvailable    = errors.New("product not available")
	ErrInvalidCartItem        = errors.New("invalid cart item")
	ErrCartItemNotFound       = errors.New("cart item not found")
	ErrCheckoutNotStarted     = errors.New("checkout not started")
	ErrCheckoutStepInvalid    = errors.New("checkout step not allowed")
	ErrCheckoutFormIncomplete = errors.New("checkout form incomplete")
)
