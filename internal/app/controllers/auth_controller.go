package controllers

import (
	"errors"
	"net/http"

	"github.com/AlenKJ01/Mediconnect/internal/app/middleware"
	"github.com/AlenKJ01/Mediconnect/internal/domain/models"
	"github.com/AlenKJ01/Mediconnect/internal/domain/services"
	"github.com/AlenKJ01/Mediconnect/internal/domain/services/container"
	"github.com/AlenKJ01/Mediconnect/internal/error/code"
	"github.com/AlenKJ01/Mediconnect/internal/error/response"

	"github.com/gin-gonic/gin"
)

// AuthController 处理注册、登录和注销相关的请求
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController 创建一个新的认证控制器
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// RegisterRequest 表示注册请求
type RegisterRequest struct {
	Name     string `form:"name" json:"name" example:"张三"`
	Email    string `form:"email" json:"email" binding:"omitempty,email" example:"zhangsan@example.com"`
	Phone    string `form:"phone" json:"phone" example:"13812345678"`
	Password string `form:"password" json:"password" example:"secret"`
}

// LoginRequest 表示登录请求，标识符可以是邮箱或手机号
type LoginRequest struct {
	Identifier string `form:"identifier" json:"identifier" binding:"required" example:"zhangsan@example.com"`
	Password   string `form:"password" json:"password" binding:"required" example:"secret"`
}

// AdminLoginRequest 表示管理员登录请求
type AdminLoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required" example:"admin@example.com"`
	Password string `form:"password" json:"password" binding:"required" example:"adminpass"`
}

// LoginData 登录成功返回的数据
type LoginData struct {
	Token     string `json:"token"`
	AccountID uint   `json:"account_id"`
	Name      string `json:"name"`
	IsAdmin   bool   `json:"is_admin"`
	Redirect  string `json:"redirect"`
}

// HandleAuthFunc 返回一个处理认证请求的Gin处理函数
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "index":
			controller.Index()
		case "registerForm":
			controller.RegisterForm()
		case "register":
			controller.Register()
		case "loginForm":
			controller.LoginForm()
		case "login":
			controller.Login()
		case "logout":
			controller.Logout()
		case "adminLoginForm":
			controller.AdminLoginForm()
		case "adminLogin":
			controller.AdminLogin()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// Index 首页入口
// @Summary      首页
// @Description  已登录跳转到用户首页，未登录跳转到登录页
// @Tags         Auth
// @Produce      json
// @Success      302
// @Router       / [get]
func (c *AuthController) Index() {
	if session := middleware.CurrentSession(c.Ctx); session != nil {
		if session.IsAdmin {
			response.Redirect(c.Ctx, "/admin")
			return
		}
		response.Redirect(c.Ctx, "/dashboard")
		return
	}
	response.Redirect(c.Ctx, middleware.PathLogin)
}

// RegisterForm 注册页
// @Summary      注册页
// @Description  返回注册所需的字段说明
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  ErrorResponse
// @Router       /register [get]
func (c *AuthController) RegisterForm() {
	response.Success(c.Ctx, gin.H{
		"fields": []string{"name", "email", "phone", "password"},
		"notes":  "邮箱和手机号至少填写一项",
	})
}

// Register 提交注册
// @Summary      注册新账户
// @Description  创建新账户，邮箱和手机号至少填写一项；注册成功后需要登录
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "注册参数"
// @Success      200  {object}  ErrorResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /register [post]
func (c *AuthController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBind(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	accountService := c.Container.GetService("account").(services.InterfaceAccountService)
	account, err := accountService.Register(req.Name, req.Email, req.Phone, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			response.FailWithMessage(c.Ctx, code.ErrValidation, "请提供邮箱或手机号以及密码", nil)
		case errors.Is(err, services.ErrConflict):
			response.Fail(c.Ctx, code.ErrAccountAlreadyExist, nil)
		default:
			response.ServerError(c.Ctx)
		}
		return
	}

	response.SuccessWithMessage(c.Ctx, "注册成功，请登录", gin.H{
		"account_id": account.ID,
		"redirect":   middleware.PathLogin,
	})
}

// LoginForm 登录页
// @Summary      登录页
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  ErrorResponse
// @Router       /login [get]
func (c *AuthController) LoginForm() {
	response.Success(c.Ctx, gin.H{
		"fields": []string{"identifier", "password"},
		"notes":  "标识符可以是邮箱或手机号",
	})
}

// Login 用户登录
// @Summary      用户登录
// @Description  标识符含 "@" 时按邮箱查找账户，否则按手机号查找；成功后签发会话令牌
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "登录参数"
// @Success      200  {object}  ErrorResponse{data=LoginData}
// @Failure      401  {object}  ErrorResponse
// @Router       /login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBind(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	accountService := c.Container.GetService("account").(services.InterfaceAccountService)
	account, landing, err := accountService.Login(req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuth) {
			response.Fail(c.Ctx, code.ErrAccountAuthFailed, nil)
			return
		}
		response.ServerError(c.Ctx)
		return
	}

	token, err := c.issueSession(account)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.SuccessWithMessage(c.Ctx, "登录成功", LoginData{
		Token:     token,
		AccountID: account.ID,
		Name:      account.Name,
		IsAdmin:   account.IsAdmin,
		Redirect:  landing,
	})
}

// Logout 注销会话
// @Summary      退出登录
// @Description  注销当前会话令牌并清除Cookie，重复调用无副作用
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  ErrorResponse
// @Router       /logout [get]
func (c *AuthController) Logout() {
	sessionService := c.Container.GetService("session").(services.InterfaceSessionService)

	if tokenString := middleware.ExtractToken(c.Ctx); tokenString != "" {
		// 注销失败不阻塞退出流程，令牌会自然过期
		_ = sessionService.RevokeToken(tokenString)
	}

	c.Ctx.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	response.SuccessWithMessage(c.Ctx, "已退出登录", gin.H{
		"redirect": middleware.PathLogin,
	})
}

// AdminLoginForm 管理员登录页
// @Summary      管理员登录页
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  ErrorResponse
// @Router       /admin/login [get]
func (c *AuthController) AdminLoginForm() {
	response.Success(c.Ctx, gin.H{
		"fields": []string{"email", "password"},
	})
}

// AdminLogin 管理员登录
// @Summary      管理员登录
// @Description  只按邮箱查找且要求账户具有管理员标志
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body AdminLoginRequest true "管理员登录参数"
// @Success      200  {object}  ErrorResponse{data=LoginData}
// @Failure      401  {object}  ErrorResponse
// @Router       /admin/login [post]
func (c *AuthController) AdminLogin() {
	var req AdminLoginRequest
	if err := c.Ctx.ShouldBind(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	accountService := c.Container.GetService("account").(services.InterfaceAccountService)
	account, err := accountService.AdminLogin(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuth) {
			response.Fail(c.Ctx, code.ErrAccountAuthFailed, nil)
			return
		}
		response.ServerError(c.Ctx)
		return
	}

	token, err := c.issueSession(account)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.SuccessWithMessage(c.Ctx, "管理员登录成功", LoginData{
		Token:     token,
		AccountID: account.ID,
		Name:      account.Name,
		IsAdmin:   true,
		Redirect:  services.LandingAdmin,
	})
}

// issueSession 签发会话令牌并写入Cookie，替换之前的会话
func (c *AuthController) issueSession(account *models.Account) (string, error) {
	sessionService := c.Container.GetService("session").(services.InterfaceSessionService)

	token, err := sessionService.IssueToken(account)
	if err != nil {
		return "", err
	}

	maxAge := int(sessionService.TTL().Seconds())
	c.Ctx.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", false, true)
	return token, nil
}
