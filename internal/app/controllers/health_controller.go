package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/AlenKJ01/Mediconnect/internal/app/middleware"
	"github.com/AlenKJ01/Mediconnect/internal/domain/services/container"
	"github.com/AlenKJ01/Mediconnect/internal/error/response"
	"github.com/AlenKJ01/Mediconnect/internal/infrastructure/database"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// HealthController 健康检查控制器
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController 创建健康检查控制器实例
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc 返回一个处理健康检查请求的Gin处理函数
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// Ping 健康检查端点
// @Summary      健康检查
// @Tags         Health
// @Produce      json
// @Success      200  {object}  ErrorResponse
// @Router       /ping [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// Status 系统状态
// @Summary      系统状态
// @Description  数据库、Redis连接状态和连接池、缓存统计信息
// @Tags         Health
// @Produce      json
// @Success      200  {object}  ErrorResponse
// @Router       /health/status [get]
func (c *HealthController) Status() {
	pool := c.Container.GetService("pool").(*database.ConnectionPool)

	dbStatus := "up"
	if err := pool.HealthCheck(); err != nil {
		dbStatus = "down"
	}

	var poolStats map[string]interface{}
	if stats, err := pool.Stats(); err == nil {
		poolStats = stats
	}

	redisStatus := "disabled"
	if redisClient, ok := c.Container.GetService("redis").(*redis.Client); ok && redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			redisStatus = "down"
		} else {
			redisStatus = "up"
		}
	}

	response.Success(c.Ctx, gin.H{
		"database":    dbStatus,
		"redis":       redisStatus,
		"pool_stats":  poolStats,
		"cache_stats": middleware.CacheStats(),
	})
}
