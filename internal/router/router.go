package router

import (
	"fmt"
	"strings"

	"github.com/shophub-next/internal/cache"
	"github.com/shophub-next/internal/config"
	publichandlers "github.com/shophub-next/internal/http/handlers/public"
	"github.com/shophub-next/internal/logger"
	"github.com/shophub-next/internal/provider"
	"github.com/shophub-next/internal/session"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "shophub"
	}
	redisClient := cache.Client()
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxAttempts,
		Message:       "too many checkout attempts, retry in %d seconds",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组，全部接口依赖购物会话
	apiV1 := r.Group("/api/v1")
	apiV1.Use(session.Middleware(cfg.Session))
	{
		// 商品目录
		catalog := apiV1.Group("/catalog")
		{
			catalog.GET("/categories", publicHandler.GetCategories)
			catalog.GET("/products", publicHandler.GetProducts)
			catalog.GET("/products/:slug", publicHandler.GetProductBySlug)
		}

		// 购物车
		cart := apiV1.Group("/cart")
		{
			cart.GET("", publicHandler.GetCart)
			cart.POST("/items", publicHandler.AddCartItem)
			cart.PUT("/items/:id", publicHandler.UpdateCartItem)
			cart.DELETE("/items/:id", publicHandler.DeleteCartItem)
			cart.DELETE("", publicHandler.ClearCart)
		}

		// 结算向导
		checkout := apiV1.Group("/checkout")
		{
			checkout.POST("", publicHandler.StartCheckout)
			checkout.GET("", publicHandler.GetCheckout)
			checkout.POST("/details", publicHandler.SubmitCheckoutDetails)
			checkout.POST("/back", publicHandler.BackCheckout)
			checkout.POST("/payment", RateLimitMiddleware(redisClient, checkoutRule, KeyBySession), publicHandler.SubmitCheckoutPayment)
			checkout.DELETE("", publicHandler.CloseCheckout)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
