package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/shophub-next/internal/config"
	"github.com/shophub-next/internal/constants"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const contextKey = "session_id"

// NewToken 生成会话令牌：时间分量 + 随机分量。
// 令牌仅作为购物车分区键，服务端不做任何校验。
func NewToken() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s%d_%s", constants.SessionTokenPrefix, time.Now().UnixMilli(), random)
}

// Middleware 会话中间件：读取持久 Cookie，缺失时签发新令牌。
// 客户端拒绝持久化 Cookie 时每次请求仍能拿到可用（非持久）令牌。
func Middleware(cfg config.SessionConfig) gin.HandlerFunc {
	cookieName := strings.TrimSpace(cfg.CookieName)
	if cookieName == "" {
		cookieName = "cart_session_id"
	}
	maxAgeDays := cfg.MaxAgeDays
	if maxAgeDays <= 0 {
		maxAgeDays = 365
	}
	maxAge := maxAgeDays * 24 * 60 * 60

	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || strings.TrimSpace(token) == "" {
			token = NewToken()
			c.SetCookie(cookieName, token, maxAge, "/", "", cfg.Secure, false)
		}
		c.Set(contextKey, token)
		c.Next()
	}
}

// FromContext 读取当前请求的会话令牌
func FromContext(c *gin.Context) (string, bool) {
	value, ok := c.Get(contextKey)
	if !ok {
		return "", false
	}
	token, ok := value.(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
