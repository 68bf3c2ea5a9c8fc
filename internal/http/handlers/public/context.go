package public

import (
	"github.com/shophub-next/internal/http/response"
	"github.com/shophub-next/internal/session"

	"github.com/gin-gonic/gin"
)

// getSessionID 从上下文读取购物会话标识。
// 会话中间件保证已注入，缺失说明路由装配有误。
func getSessionID(c *gin.Context) (string, bool) {
	id, ok := session.FromContext(c)
	if !ok || id == "" {
		respondError(c, response.CodeInternal, "session missing", nil)
		return "", false
	}
	return id, true
}
