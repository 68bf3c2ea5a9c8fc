package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/shophub-next/internal/logger"
	"github.com/shophub-next/internal/provider"
	"github.com/shophub-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskCheckoutCompleted, c.handleCheckoutCompleted)
}

func (c *Consumer) handleCheckoutCompleted(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_checkout_completed_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.CheckoutCompletedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_checkout_completed_unmarshal_failed", "error", err)
		return err
	}
	if strings.TrimSpace(payload.SessionID) == "" {
		logger.Debugw("worker_checkout_completed_skip_invalid_payload")
		return nil
	}
	receiverEmail := strings.TrimSpace(payload.Email)
	if receiverEmail == "" {
		logger.Debugw("worker_checkout_completed_skip_empty_receiver", "session_id", payload.SessionID)
		return nil
	}
	// 演示环境不接真实邮件网关, 仅记录确认邮件投递
	logger.Infow("worker_checkout_confirmation_email",
		"session_id", payload.SessionID,
		"receiver_email", receiverEmail,
		"item_count", payload.ItemCount,
		"total", payload.Total,
	)
	return nil
}
