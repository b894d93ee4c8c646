package services

import "errors"

// 业务错误分类。控制器在边界处将这些错误翻译为统一响应码和提示消息。
var (
	// ErrValidation 缺少必填字段或参数不合法
	ErrValidation = errors.New("请求参数验证错误")
	// ErrConflict 唯一字段冲突（邮箱或手机号已注册）
	ErrConflict = errors.New("唯一字段已被注册")
	// ErrAuth 凭证无效或角色不符
	ErrAuth = errors.New("用户名或密码错误")
	// ErrNotFound 引用的记录不存在
	ErrNotFound = errors.New("记录不存在")
	// ErrForbidden 会话有效但权限不足
	ErrForbidden = errors.New("权限不足")
)
