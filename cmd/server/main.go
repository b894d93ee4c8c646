// @title           Mediconnect API
// @version         1.0
// @description     A session-authenticated medical service booking and tracking platform

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/AlenKJ01/Mediconnect/internal/app/routes"
	"github.com/AlenKJ01/Mediconnect/internal/domain/models"
	"github.com/AlenKJ01/Mediconnect/internal/domain/services"
	"github.com/AlenKJ01/Mediconnect/internal/domain/storage"
	"github.com/AlenKJ01/Mediconnect/internal/infrastructure/config"
	"github.com/AlenKJ01/Mediconnect/internal/infrastructure/database"
	Logger "github.com/AlenKJ01/Mediconnect/pkg/logger"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 设置最大处理器数量，提高并发性能
	runtime.GOMAXPROCS(runtime.NumCPU())

	// 初始化日志配置
	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}

	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		Logger.Warning("无法加载.env文件: %v", err)
		// 即使加载失败也继续执行，可能环境变量已经通过其他方式设置
	} else {
		Logger.Info("成功加载.env文件")
	}

	// 获取配置
	cfg := config.GetConfig()

	// 创建优化的数据库连接池
	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("无法创建数据库连接池: %v", err)
	}
	db := pool.GetDB()

	// 自动迁移，只添加新列和新表
	if err := autoMigrate(db); err != nil {
		log.Fatalf("自动迁移失败: %v", err)
	}

	// 确保系统中有预留邮箱的管理员账户
	ensureAdminExists(db, cfg)

	// 创建Redis客户端，用于会话注销黑名单
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	// 初始化路由
	r := routes.SetupRouter(pool, cfg, redisClient)

	// 使用配置中的端口
	port := cfg.ServerPort

	// 启动服务器 - 监听所有接口(0.0.0.0)而不是只监听localhost
	Logger.Info("服务器启动在: http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("启动服务器失败: %v", err)
		os.Exit(1)
	}
}

// autoMigrate 自动迁移所有模型
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Account{},
		&models.ServiceRequest{},
	)

	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// ensureAdminExists 确保系统中有管理员账户。
// 默认凭据仅用于首次引导，上线前必须更换。
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	accountService := services.NewAccountService(storage.NewAccountStore(db), cfg)
	if err := accountService.EnsureDefaultAdmin(); err != nil {
		log.Fatalf("创建默认管理员失败: %v", err)
	}
	Logger.Info("管理员账户就绪: %s", cfg.DefaultAdminEmail)
}
