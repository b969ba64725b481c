package handler

import (
	"Plume/config"
	"Plume/middleware"
	"Plume/pkg/context"
	"Plume/pkg/response"
	"Plume/service"
	"Plume/types"

	"github.com/gin-gonic/gin"
)

type Comment struct {
	Config         *config.Config
	CommentService service.ICommentService
}

func (h *Comment) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/comments")
	g.GET("/list/:blog_id", context.Wrap(h.ListByBlog))
	g.GET("/:comment_id", context.Wrap(h.GetComment))
	g.POST("", authorize, context.Wrap(h.CreateComment))
	g.DELETE("/:comment_id", authorize, context.Wrap(h.DeleteComment))
}

// CreateComment 创建评论
func (h *Comment) CreateComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未认证")
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	comment, err := h.CommentService.CreateComment(c.Request.Context(), req.BlogID, userID, req.Content)
	if err != nil {
		return err
	}

	response.Success(c, comment)
	return nil
}

func (h *Comment) GetComment(c *gin.Context) error {
	commentID, err := parseID(c.Param("comment_id"))
	if err != nil {
		return response.BadRequest("comment_id 参数错误")
	}

	comment, err := h.CommentService.GetComment(c.Request.Context(), commentID)
	if err != nil {
		return err
	}
	response.Success(c, comment)
	return nil
}

func (h *Comment) ListByBlog(c *gin.Context) error {
	blogID, err := parseID(c.Param("blog_id"))
	if err != nil {
		return response.BadRequest("blog_id 参数错误")
	}

	comments, err := h.CommentService.ListByBlog(c.Request.Context(), blogID)
	if err != nil {
		return err
	}
	response.Success(c, comments)
	return nil
}

func (h *Comment) DeleteComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未认证")
	}
	commentID, err := parseID(c.Param("comment_id"))
	if err != nil {
		return response.BadRequest("comment_id 参数错误")
	}

	if err := h.CommentService.DeleteComment(c.Request.Context(), userID, commentID); err != nil {
		return err
	}

	response.Success(c, nil)
	return nil
}
