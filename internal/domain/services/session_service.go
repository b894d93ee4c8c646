package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlenKJ01/Mediconnect/internal/domain/models"
	"github.com/AlenKJ01/Mediconnect/internal/infrastructure/config"
	"github.com/AlenKJ01/Mediconnect/utils"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt/v4"
)

// revokedKeyPrefix 注销令牌在Redis中的键前缀
const revokedKeyPrefix = "session:revoked:"

// Session 表示一次已认证的会话：引用的账户ID和登录时缓存的管理员标志
type Session struct {
	AccountID uint
	IsAdmin   bool
	TokenID   string
}

// SessionClaims 定义会话令牌的声明结构
type SessionClaims struct {
	AccountID uint `json:"account_id"`
	IsAdmin   bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// InterfaceSessionService 会话服务接口
type InterfaceSessionService interface {
	IssueToken(account *models.Account) (string, error)
	ParseToken(tokenString string) (*Session, error)
	RevokeToken(tokenString string) error
	TTL() time.Duration
}

// SessionService 提供会话令牌的签发、校验和注销
type SessionService struct {
	secretKey string
	issuer    string
	ttl       time.Duration
	redis     *redis.Client
}

// NewSessionService 创建一个新的会话服务。redisClient 可以为 nil，
// 此时注销只依赖客户端清除Cookie，令牌在自然过期前仍然有效。
func NewSessionService(cfg *config.Config, redisClient *redis.Client) InterfaceSessionService {
	return &SessionService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "mediconnect",
		ttl:       time.Duration(cfg.SessionTTLHours) * time.Hour,
		redis:     redisClient,
	}
}

// TTL 返回会话令牌有效期
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// IssueToken 为账户签发新的会话令牌，登录时缓存账户当前的管理员标志
func (s *SessionService) IssueToken(account *models.Account) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		AccountID: account.ID,
		IsAdmin:   account.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        utils.NewTokenID(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ParseToken 校验会话令牌并返回会话。签名无效、令牌过期或已注销时返回错误。
func (s *SessionService) ParseToken(tokenString string) (*Session, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	if s.isRevoked(claims.ID) {
		return nil, errors.New("会话已注销")
	}

	return &Session{
		AccountID: claims.AccountID,
		IsAdmin:   claims.IsAdmin,
		TokenID:   claims.ID,
	}, nil
}

// RevokeToken 注销会话令牌。令牌ID写入Redis黑名单，保留到令牌自然过期为止。
// 令牌本身无效或已注销时静默返回，保证注销操作幂等。
func (s *SessionService) RevokeToken(tokenString string) error {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	if s.redis == nil || claims.ID == "" {
		return nil
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return s.redis.Set(ctx, revokedKeyPrefix+claims.ID, 1, remaining).Err()
}

// isRevoked 检查令牌ID是否在注销黑名单中
func (s *SessionService) isRevoked(tokenID string) bool {
	if s.redis == nil || tokenID == "" {
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	n, err := s.redis.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		// Redis不可用时放行，令牌签名校验仍然有效
		return false
	}
	return n > 0
}
