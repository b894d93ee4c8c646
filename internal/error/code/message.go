package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "成功",
	ErrUnknown:         "未知错误",
	ErrBind:            "请求参数绑定错误",
	ErrValidation:      "请求参数验证错误",
	ErrTokenInvalid:    "无效的认证令牌",
	ErrTooManyRequests: "请求频率过高",

	// 账户相关错误码
	ErrAccountNotFound:     "账户不存在",
	ErrAccountAlreadyExist: "邮箱或手机号已注册",
	ErrAccountAuthFailed:   "用户名或密码错误",
	ErrAccountForbidden:    "权限不足",

	// 服务请求相关错误码
	ErrRequestNotFound:      "服务请求不存在",
	ErrRequestActionInvalid: "无法识别的状态操作",

	// 数据库相关错误码
	ErrDatabase: "数据库错误",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// 账户相关错误码
	ErrAccountNotFound:     StatusNotFound,
	ErrAccountAlreadyExist: StatusConflict,
	ErrAccountAuthFailed:   StatusUnauthorized,
	ErrAccountForbidden:    StatusForbidden,

	// 服务请求相关错误码
	ErrRequestNotFound:      StatusNotFound,
	ErrRequestActionInvalid: StatusBadRequest,

	// 数据库相关错误码
	ErrDatabase: StatusInternalServerError,
}

// GetMessage 获取错误码对应的消息
func GetMessage(errorCode int) string {
	if message, exists := codeMessageMap[errorCode]; exists {
		return message
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(errorCode int) int {
	if status, exists := codeStatusMap[errorCode]; exists {
		return status
	}
	return StatusInternalServerError
}
