package constants

// 结算向导步骤常量
const (
	CheckoutStepDetails      = "details"
	CheckoutStepPayment      = "payment"
	CheckoutStepConfirmation = "confirmation"
)

// 队列与任务常量
const (
	QueueDefault          = "default"
	TaskCheckoutCompleted = "checkout:completed"
)

// SessionTokenPrefix 会话令牌前缀
const SessionTokenPrefix = "session_"
