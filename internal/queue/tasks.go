package queue

import (
	"encoding/json"

	"github.com/shophub-next/internal/constants"

	"github.com/hibiken/asynq"
)

// TaskCheckoutCompleted 结算完成通知任务
const TaskCheckoutCompleted = constants.TaskCheckoutCompleted

// CheckoutCompletedPayload 结算完成任务载荷
type CheckoutCompletedPayload struct {
	SessionID string `json:"session_id"`
	Email     string `json:"email"`
	ItemCount int    `json:"item_count"`
	Total     string `json:"total"`
}

// NewCheckoutCompletedTask 创建结算完成任务
func NewCheckoutCompletedTask(payload CheckoutCompletedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCheckoutCompleted, body), nil
}
