package public

import "github.com/shophub-next/internal/provider"

// Handler 店面公开接口处理器入口
// 说明：全部接口面向匿名会话，无登录态。
type Handler struct {
	*provider.Container
}

// New 创建店面处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
