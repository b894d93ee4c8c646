package routes

import (
	"time"

	"github.com/AlenKJ01/Mediconnect/internal/app/controllers"
	"github.com/AlenKJ01/Mediconnect/internal/app/middleware"
	"github.com/AlenKJ01/Mediconnect/internal/domain/services/container"
	"github.com/AlenKJ01/Mediconnect/internal/infrastructure/config"
	"github.com/AlenKJ01/Mediconnect/internal/infrastructure/database"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(pool *database.ConnectionPool, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost:3000")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})

	// 创建服务容器
	serviceContainer := container.NewServiceContainer(pool, cfg, redisClient)
	// 初始化会话中间件
	middleware.InitSessionMiddleware(cfg, redisClient)
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// 注册公共路由
	registerPublicRoutes(r, container)
	// 注册用户路由
	registerUserRoutes(r, container)
	// 注册管理员路由
	registerAdminRoutes(r, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// 健康检查路由
	r.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	r.GET("/health/status", controllers.HandleHealthFunc(container, "status"))

	// 首页：已登录跳转到首页，未登录跳转到登录页
	r.GET("/", controllers.HandleAuthFunc(container, "index"))

	// 认证路由 - 每秒5个请求，最多突发10个，减缓撞库
	authGroup := r.Group("/")
	authGroup.Use(middleware.PathRateLimiter(5, 10))
	authGroup.GET("/register", controllers.HandleAuthFunc(container, "registerForm"))
	authGroup.POST("/register", controllers.HandleAuthFunc(container, "register"))
	authGroup.GET("/login", controllers.HandleAuthFunc(container, "loginForm"))
	authGroup.POST("/login", controllers.HandleAuthFunc(container, "login"))
	authGroup.GET("/logout", controllers.HandleAuthFunc(container, "logout"))
	authGroup.GET("/admin/login", controllers.HandleAuthFunc(container, "adminLoginForm"))
	authGroup.POST("/admin/login", controllers.HandleAuthFunc(container, "adminLogin"))
}

// registerUserRoutes 注册需要用户会话的路由
func registerUserRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	user := r.Group("/")
	user.Use(middleware.RequireUser())
	// 每秒30个请求，最多突发50个
	user.Use(middleware.IPRateLimiter(30, 50))

	user.GET("/dashboard", controllers.HandleRequestFunc(container, "dashboard"))
	user.GET("/book", controllers.HandleRequestFunc(container, "bookForm"))
	user.POST("/book", controllers.HandleRequestFunc(container, "book"))
	// 只读跟踪视图带5秒短缓存，缓存键按会话隔离
	user.GET("/track",
		middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Second, KeyFunc: middleware.SessionKeyFunc}),
		controllers.HandleRequestFunc(container, "track"))
}

// registerAdminRoutes 注册需要管理员会话的路由
func registerAdminRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	admin.Use(middleware.IPRateLimiter(30, 50))

	admin.GET("", controllers.HandleAdminFunc(container, "dashboard"))
	admin.POST("/update", controllers.HandleAdminFunc(container, "update"))
}
