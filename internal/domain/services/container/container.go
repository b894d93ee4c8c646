package container

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/AlenKJ01/Mediconnect/internal/domain/services"
	"github.com/AlenKJ01/Mediconnect/internal/domain/storage"
	"github.com/AlenKJ01/Mediconnect/internal/infrastructure/config"
	"github.com/AlenKJ01/Mediconnect/internal/infrastructure/database"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	pool   *database.ConnectionPool
	config *config.Config
	redis  *redis.Client

	// 存储层
	accountStore storage.InterfaceAccountStore
	requestStore storage.InterfaceRequestStore

	// 业务服务
	accountService services.InterfaceAccountService
	sessionService services.InterfaceSessionService
	requestService services.InterfaceRequestService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(pool *database.ConnectionPool, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if pool == nil {
		panic("数据库连接池为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	// 测试Redis连接
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis连接测试失败: %v，注销黑名单功能将不可用", err)
			redisClient = nil
		}
	}

	container := &ServiceContainer{
		db:     pool.GetDB(),
		pool:   pool,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化存储层
	c.accountStore = storage.NewAccountStore(c.db)
	c.requestStore = storage.NewRequestStore(c.db)

	// 初始化业务服务
	c.accountService = services.NewAccountService(c.accountStore, c.config)
	c.sessionService = services.NewSessionService(c.config, c.redis)
	c.requestService = services.NewRequestService(c.requestStore)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "pool":
		return c.pool
	case "redis":
		return c.redis
	case "account_store":
		return c.accountStore
	case "request_store":
		return c.requestStore
	case "account":
		return c.accountService
	case "session":
		return c.sessionService
	case "request":
		return c.requestService
	default:
		return nil
	}
}
