package controllers

import (
	"errors"
	"net/http"

	"github.com/AlenKJ01/Mediconnect/internal/domain/services"
	"github.com/AlenKJ01/Mediconnect/internal/domain/services/container"
	"github.com/AlenKJ01/Mediconnect/internal/error/code"
	"github.com/AlenKJ01/Mediconnect/internal/error/response"

	"github.com/gin-gonic/gin"
)

// AdminController 处理管理员的请求审核操作
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController 创建一个新的管理员控制器
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// UpdateStatusRequest 表示管理员状态更新请求
type UpdateStatusRequest struct {
	RequestID uint   `form:"request_id" json:"request_id" binding:"required" example:"1"`
	Action    string `form:"action" json:"action" binding:"required" example:"accept"`
}

// HandleAdminFunc 返回一个处理管理员操作的Gin处理函数
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "dashboard":
			controller.Dashboard()
		case "update":
			controller.Update()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// Dashboard 管理员首页
// @Summary      管理员首页
// @Description  列出所有账户的服务请求，最新的在前
// @Tags         Admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ErrorResponse
// @Failure      302  {object}  nil  "非管理员会话跳转到管理员登录页"
// @Router       /admin [get]
func (c *AdminController) Dashboard() {
	requestService := c.Container.GetService("request").(services.InterfaceRequestService)
	requests, err := requestService.ListAll()
	if err != nil {
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{
		"requests": requests,
	})
}

// Update 更新服务请求状态
// @Summary      更新服务请求状态
// @Description  action 为 accept 时置为 Accepted，为 complete 时置为 Completed；其他值被拒绝
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateStatusRequest true "状态更新参数"
// @Success      200  {object}  ErrorResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/update [post]
func (c *AdminController) Update() {
	var req UpdateStatusRequest
	if err := c.Ctx.ShouldBind(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	requestService := c.Container.GetService("request").(services.InterfaceRequestService)
	request, err := requestService.UpdateStatus(req.RequestID, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			response.Fail(c.Ctx, code.ErrRequestNotFound, nil)
		case errors.Is(err, services.ErrValidation):
			response.Fail(c.Ctx, code.ErrRequestActionInvalid, nil)
		default:
			response.ServerError(c.Ctx)
		}
		return
	}

	response.SuccessWithMessage(c.Ctx, "状态已更新", gin.H{
		"request":  request,
		"redirect": "/admin",
	})
}
