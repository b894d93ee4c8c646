package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusConflict - 409: 资源冲突.
	StatusConflict = 409
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 账户相关错误码 (101xxx).
const (
	// ErrAccountNotFound - 404: 账户不存在.
	ErrAccountNotFound int = iota + 101000
	// ErrAccountAlreadyExist - 409: 邮箱或手机号已注册.
	ErrAccountAlreadyExist
	// ErrAccountAuthFailed - 401: 用户名或密码错误.
	ErrAccountAuthFailed
	// ErrAccountForbidden - 403: 权限不足.
	ErrAccountForbidden
)

// 服务请求相关错误码 (102xxx).
const (
	// ErrRequestNotFound - 404: 服务请求不存在.
	ErrRequestNotFound int = iota + 102000
	// ErrRequestActionInvalid - 400: 无法识别的状态操作.
	ErrRequestActionInvalid
)

// 数据库相关错误码 (103xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 103000
)
