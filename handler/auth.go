package handler

import (
	"Plume/pkg/context"
	"Plume/pkg/response"
	"Plume/service"
	"Plume/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	AuthService service.IAuthService
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/auth")
	g.POST("/register", context.Wrap(h.Register))
	g.POST("/login", context.Wrap(h.Login))
}

// Register 注册
func (h *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	user, err := h.AuthService.Register(c.Request.Context(), &service.UserRegisterOpt{
		Name:     req.Name,
		Nickname: req.Nickname,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	response.Success(c, user)
	return nil
}

// Login 登录，返回访问令牌
func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	result, err := h.AuthService.Login(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		return err
	}

	response.Success(c, types.LoginResponse{
		Token:  result.Token,
		UserID: result.UserID,
	})
	return nil
}
