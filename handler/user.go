package handler

import (
	"Plume/config"
	"Plume/middleware"
	"Plume/pkg/context"
	"Plume/pkg/response"
	"Plume/service"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (h *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/users")
	g.GET("/:user_id", context.Wrap(h.GetUser))
	g.PUT("/:user_id", authorize, context.Wrap(h.UpdateUser))
	g.DELETE("/:user_id", authorize, context.Wrap(h.DeleteUser))
}

func (h *User) GetUser(c *gin.Context) error {
	userID, err := parseID(c.Param("user_id"))
	if err != nil {
		return response.BadRequest("user_id 参数错误")
	}

	user, err := h.UserService.GetUser(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}

// UpdateUser 更新资料。带头像时用 multipart 表单，否则 JSON
func (h *User) UpdateUser(c *gin.Context) error {
	callerID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未认证")
	}
	userID, err := parseID(c.Param("user_id"))
	if err != nil {
		return response.BadRequest("user_id 参数错误")
	}

	opt := &service.UserUpdateOpt{}
	var iconFile *multipart.FileHeader

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if nickname, ok := c.GetPostForm("nickname"); ok {
			opt.Nickname = &nickname
		}
		if file, err := c.FormFile("icon"); err == nil {
			iconFile = file
		}
	} else {
		if err := c.ShouldBindJSON(opt); err != nil {
			return response.BadRequest("参数格式错误: " + err.Error())
		}
	}

	user, err := h.UserService.UpdateUser(c.Request.Context(), callerID, userID, opt, iconFile)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}

func (h *User) DeleteUser(c *gin.Context) error {
	callerID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未认证")
	}
	userID, err := parseID(c.Param("user_id"))
	if err != nil {
		return response.BadRequest("user_id 参数错误")
	}

	if err := h.UserService.DeleteUser(c.Request.Context(), callerID, userID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
