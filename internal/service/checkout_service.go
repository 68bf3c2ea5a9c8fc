package service

import (
	"strings"
	"sync"

	"github.com/shophub-next/internal/constants"
	"github.com/shophub-next/internal/logger"
	"github.com/shophub-next/internal/queue"
)

// CheckoutDetails 收货与联系人信息（第一步表单）
type CheckoutDetails struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	ZipCode  string `json:"zip_code"`
}

// CheckoutPayment 支付信息（第二步表单）。
// 仅做必填校验，不发起真实扣款，校验后即丢弃不留存。
type CheckoutPayment struct {
	CardNumber string `json:"card_number"`
	CardExpiry string `json:"card_expiry"`
	CardCVV    string `json:"card_cvv"`
}

// CheckoutState 结算向导状态（仅存在于内存，关闭即丢弃）
type CheckoutState struct {
	Step    string          `json:"step"`
	Details CheckoutDetails `json:"details"`
	Summary *CartSummary    `json:"summary,omitempty"` // 确认步骤的订单摘要
}

// CheckoutService 结算向导服务。
// 步骤严格线性：details → payment → confirmation，
// 仅允许从 payment 退回 details；重新开始总是回到 details。
type CheckoutService struct {
	cartService *CartService
	queueClient *queue.Client

	mu      sync.Mutex
	wizards map[string]*CheckoutState
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(cartService *CartService, queueClient *queue.Client) *CheckoutService {
	return &CheckoutService{
		cartService: cartService,
		queueClient: queueClient,
		wizards:     make(map[string]*CheckoutState),
	}
}

// Start 开启（或重置）会话的结算向导
func (s *CheckoutService) Start(sessionID string) (*CheckoutState, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidCartItem
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	state := &CheckoutState{Step: constants.CheckoutStepDetails}
	s.wizards[sessionID] = state
	return cloneCheckoutState(state), nil
}

// Get 获取会话当前的向导状态
func (s *CheckoutService) Get(sessionID string) (*CheckoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.wizards[sessionID]
	if !ok {
		return nil, ErrCheckoutNotStarted
	}
	return cloneCheckoutState(state), nil
}

// SubmitDetails 提交收货信息，进入支付步骤
func (s *CheckoutService) SubmitDetails(sessionID string, details CheckoutDetails) (*CheckoutState, error) {
	if err := validateCheckoutDetails(details); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.wizards[sessionID]
	if !ok {
		return nil, ErrCheckoutNotStarted
	}
	if state.Step != constants.CheckoutStepDetails {
		return nil, ErrCheckoutStepInvalid
	}
	state.Details = details
	state.Step = constants.CheckoutStepPayment
	return cloneCheckoutState(state), nil
}

// Back 从支付步骤退回收货信息步骤（唯一允许的回退）
func (s *CheckoutService) Back(sessionID string) (*CheckoutState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.wizards[sessionID]
	if !ok {
		return nil, ErrCheckoutNotStarted
	}
	if state.Step != constants.CheckoutStepPayment {
		return nil, ErrCheckoutStepInvalid
	}
	state.Step = constants.CheckoutStepDetails
	return cloneCheckoutState(state), nil
}

// SubmitPayment 提交支付信息并完成下单模拟：
// 校验通过后清空购物车（恰好一次），推送完成通知任务，进入确认步骤。
func (s *CheckoutService) SubmitPayment(sessionID string, payment CheckoutPayment) (*CheckoutState, error) {
	if err := validateCheckoutPayment(payment); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.wizards[sessionID]
	if !ok {
		return nil, ErrCheckoutNotStarted
	}
	if state.Step != constants.CheckoutStepPayment {
		return nil, ErrCheckoutStepInvalid
	}

	items, err := s.cartService.ListBySession(sessionID)
	if err != nil {
		return nil, err
	}
	summary := s.cartService.Summarize(items)

	if err := s.cartService.ClearCart(sessionID); err != nil {
		return nil, err
	}
	state.Step = constants.CheckoutStepConfirmation
	state.Summary = &summary

	// 通知任务尽力而为，失败不影响确认结果
	if err := s.queueClient.EnqueueCheckoutCompleted(queue.CheckoutCompletedPayload{
		SessionID: sessionID,
		Email:     state.Details.Email,
		ItemCount: summary.Count,
		Total:     summary.Total.String(),
	}); err != nil {
		logger.Warnw("checkout_enqueue_completed_failed",
			"session_id", sessionID,
			"error", err,
		)
	}
	return cloneCheckoutState(state), nil
}

// Close 关闭向导并丢弃全部表单状态
func (s *CheckoutService) Close(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wizards, sessionID)
}

func validateCheckoutDetails(details CheckoutDetails) error {
	fields := []string{
		details.FullName,
		details.Email,
		details.Phone,
		details.Address,
		details.City,
		details.ZipCode,
	}
	for _, field := range fields {
		if strings.TrimSpace(field) == "" {
			return ErrCheckoutFormIncomplete
		}
	}
	return nil
}

func validateCheckoutPayment(payment CheckoutPayment) error {
	fields := []string{
		payment.CardNumber,
		payment.CardExpiry,
		payment.CardCVV,
	}
	for _, field := range fields {
		if strings.TrimSpace(field) == "" {
			return ErrCheckoutFormIncomplete
		}
	}
	return nil
}

func cloneCheckoutState(state *CheckoutState) *CheckoutState {
	if state == nil {
		return nil
	}
	cloned := *state
	return &cloned
}
