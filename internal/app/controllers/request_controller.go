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

// RequestController 处理用户的服务预约和状态跟踪请求
type RequestController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRequestController 创建一个新的服务请求控制器
func NewRequestController(ctx *gin.Context, container *container.ServiceContainer) *RequestController {
	return &RequestController{
		Ctx:       ctx,
		Container: container,
	}
}

// BookRequest 表示服务预约请求
type BookRequest struct {
	ServiceType string `form:"service_type" json:"service_type" example:"上门护理"`
	Details     string `form:"details" json:"details" example:"术后护理，每周两次"`
}

// HandleRequestFunc 返回一个处理服务请求操作的Gin处理函数
func HandleRequestFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRequestController(ctx, container)

		switch method {
		case "dashboard":
			controller.Dashboard()
		case "bookForm":
			controller.BookForm()
		case "book":
			controller.Book()
		case "track":
			controller.Track()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// currentAccount 从上下文获取当前会话引用的账户，并确认账户仍然存在。
// 账户已被移除时会话降级为未登录，跳转到登录页。
func (c *RequestController) currentAccount() (*models.Account, bool) {
	accountID := c.Ctx.GetUint("accountID")

	accountService := c.Container.GetService("account").(services.InterfaceAccountService)
	account, err := accountService.GetAccountByID(accountID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.Ctx.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
			response.Redirect(c.Ctx, middleware.PathLogin)
			return nil, false
		}
		response.ServerError(c.Ctx)
		return nil, false
	}
	return account, true
}

// Dashboard 用户首页
// @Summary      用户首页
// @Description  列出当前账户的所有服务请求，最新的在前
// @Tags         Request
// @Produce      json
// @Success      200  {object}  ErrorResponse
// @Failure      302  {object}  nil  "未登录时跳转到登录页"
// @Router       /dashboard [get]
func (c *RequestController) Dashboard() {
	account, ok := c.currentAccount()
	if !ok {
		return
	}

	requestService := c.Container.GetService("request").(services.InterfaceRequestService)
	requests, err := requestService.ListOwn(account.ID)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{
		"account":  account,
		"requests": requests,
	})
}

// BookForm 预约页
// @Summary      预约页
// @Tags         Request
// @Produce      json
// @Success      200  {object}  ErrorResponse
// @Router       /book [get]
func (c *RequestController) BookForm() {
	response.Success(c.Ctx, gin.H{
		"fields": []string{"service_type", "details"},
	})
}

// Book 提交服务预约
// @Summary      预约医疗服务
// @Description  以当前账户的名义创建服务请求，初始状态为 Pending
// @Tags         Request
// @Accept       json
// @Produce      json
// @Param        request body BookRequest true "预约参数"
// @Success      200  {object}  ErrorResponse
// @Failure      302  {object}  nil  "未登录时跳转到登录页"
// @Router       /book [post]
func (c *RequestController) Book() {
	account, ok := c.currentAccount()
	if !ok {
		return
	}

	var req BookRequest
	if err := c.Ctx.ShouldBind(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	requestService := c.Container.GetService("request").(services.InterfaceRequestService)
	request, err := requestService.Book(account.ID, req.ServiceType, req.Details)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.SuccessWithMessage(c.Ctx, "服务预约成功", gin.H{
		"request":  request,
		"redirect": "/dashboard",
	})
}

// Track 跟踪服务请求状态
// @Summary      跟踪服务请求
// @Description  只读视图，列出当前账户的所有服务请求及状态
// @Tags         Request
// @Produce      json
// @Success      200  {object}  ErrorResponse
// @Failure      302  {object}  nil  "未登录时跳转到登录页"
// @Router       /track [get]
func (c *RequestController) Track() {
	account, ok := c.currentAccount()
	if !ok {
		return
	}

	requestService := c.Container.GetService("request").(services.InterfaceRequestService)
	requests, err := requestService.ListOwn(account.ID)
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{
		"requests": requests,
	})
}
