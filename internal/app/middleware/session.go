package middleware

import (
	"strings"

	"github.com/AlenKJ01/Mediconnect/internal/domain/services"
	"github.com/AlenKJ01/Mediconnect/internal/error/response"
	"github.com/AlenKJ01/Mediconnect/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// SessionCookieName 会话令牌Cookie名称
const SessionCookieName = "mediconnect_session"

// 受保护页面被拒绝后的跳转目标
const (
	PathLogin      = "/login"
	PathAdminLogin = "/admin/login"
)

// AccessLevel 访问级别
type AccessLevel int

const (
	// LevelPublic 公开访问
	LevelPublic AccessLevel = iota
	// LevelUser 需要已登录的用户会话
	LevelUser
	// LevelAdmin 需要管理员会话
	LevelAdmin
)

// Decision 访问决策：放行，或拒绝并给出跳转目标
type Decision struct {
	Allowed        bool
	RedirectTarget string
}

// Decide 访问控制门。纯函数，只依据会话状态和要求的访问级别做决策：
// public 一律放行；user 要求非空会话，否则跳转登录页；
// admin 要求会话缓存的管理员标志为真，否则跳转管理员登录页。
func Decide(session *services.Session, level AccessLevel) Decision {
	switch level {
	case LevelUser:
		if session == nil {
			return Decision{Allowed: false, RedirectTarget: PathLogin}
		}
	case LevelAdmin:
		if session == nil || !session.IsAdmin {
			return Decision{Allowed: false, RedirectTarget: PathAdminLogin}
		}
	}
	return Decision{Allowed: true}
}

var sessionService services.InterfaceSessionService

// InitSessionMiddleware 初始化会话中间件
func InitSessionMiddleware(cfg *config.Config, redisClient *redis.Client) {
	sessionService = services.NewSessionService(cfg, redisClient)
}

// ExtractToken 从请求中提取会话令牌：优先读Cookie，其次读Authorization头
func ExtractToken(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// CurrentSession 解析当前请求的会话。未携带令牌或令牌无效时返回nil，
// 视同未登录，不产生错误。
func CurrentSession(c *gin.Context) *services.Session {
	tokenString := ExtractToken(c)
	if tokenString == "" {
		return nil
	}

	session, err := sessionService.ParseToken(tokenString)
	if err != nil {
		return nil
	}
	return session
}

// requireLevel 在受保护操作前应用访问决策
func requireLevel(level AccessLevel) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentSession(c)

		decision := Decide(session, level)
		if !decision.Allowed {
			response.Redirect(c, decision.RedirectTarget)
			return
		}

		// 存储会话信息到上下文
		if session != nil {
			c.Set("accountID", session.AccountID)
			c.Set("isAdmin", session.IsAdmin)
			c.Set("session", session)
		}
		c.Next()
	}
}

// RequireUser 要求已登录的用户会话
func RequireUser() gin.HandlerFunc {
	return requireLevel(LevelUser)
}

// RequireAdmin 要求管理员会话
func RequireAdmin() gin.HandlerFunc {
	return requireLevel(LevelAdmin)
}
