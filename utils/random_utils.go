package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewTokenID 生成一个新的会话令牌ID (jti)
func NewTokenID() string {
	return uuid.NewString()
}

// NewShortID 生成一个不带连字符的短ID，用于日志关联
func NewShortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}
