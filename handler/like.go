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

// Like 博客点赞和评论点赞两套注册，语义一致，存储独立
type Like struct {
	Config             *config.Config
	BlogLikeService    service.IBlogLikeService
	CommentLikeService service.ICommentLikeService
}

func (h *Like) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	blogs := r.Group("/v1/blogs")
	blogs.POST("/:blog_id/like", authorize, context.Wrap(h.LikeBlog))
	blogs.DELETE("/:blog_id/like", authorize, context.Wrap(h.UnlikeBlog))
	blogs.GET("/:blog_id/likes", context.Wrap(h.ListBlogLikes))
	blogs.GET("/:blog_id/likes/count", context.Wrap(h.BlogLikeCount))

	comments := r.Group("/v1/comments")
	comments.POST("/:comment_id/like", authorize, context.Wrap(h.LikeComment))
	comments.DELETE("/:comment_id/like", authorize, context.Wrap(h.UnlikeComment))
	comments.GET("/:comment_id/likes", context.Wrap(h.ListCommentLikes))
	comments.GET("/:comment_id/likes/count", context.Wrap(h.CommentLikeCount))
}

func (h *Like) LikeBlog(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未认证")
	}
	blogID, err := parseID(c.Param("blog_id"))
	if err != nil {
		return response.BadRequest("blog_id 参数错误")
	}

	like, err := h.BlogLikeService.Like(c.Request.Context(), blogID, userID)
	if err != nil {
		return err
	}
	response.Success(c, like)
	return nil
}

func (h *Like) UnlikeBlog(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未认证")
	}
	blogID, err := parseID(c.Param("blog_id"))
	if err != nil {
		return response.BadRequest("blog_id 参数错误")
	}

	if err := h.BlogLikeService.Unlike(c.Request.Context(), blogID, userID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Like) ListBlogLikes(c *gin.Context) error {
	blogID, err := parseID(c.Param("blog_id"))
	if err != nil {
		return response.BadRequest("blog_id 参数错误")
	}

	likes, err := h.BlogLikeService.ListByBlog(c.Request.Context(), blogID)
	if err != nil {
		return err
	}
	response.Success(c, likes)
	return nil
}

func (h *Like) BlogLikeCount(c *gin.Context) error {
	blogID, err := parseID(c.Param("blog_id"))
	if err != nil {
		return response.BadRequest("blog_id 参数错误")
	}

	count, err := h.BlogLikeService.LikeCount(c.Request.Context(), blogID)
	if err != nil {
		return err
	}
	response.Success(c, types.LikeCountResponse{Count: count})
	return nil
}

func (h *Like) LikeComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未认证")
	}
	commentID, err := parseID(c.Param("comment_id"))
	if err != nil {
		return response.BadRequest("comment_id 参数错误")
	}

	like, err := h.CommentLikeService.Like(c.Request.Context(), commentID, userID)
	if err != nil {
		return err
	}
	response.Success(c, like)
	return nil
}

func (h *Like) UnlikeComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未认证")
	}
	commentID, err := parseID(c.Param("comment_id"))
	if err != nil {
		return response.BadRequest("comment_id 参数错误")
	}

	if err := h.CommentLikeService.Unlike(c.Request.Context(), commentID, userID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Like) ListCommentLikes(c *gin.Context) error {
	commentID, err := parseID(c.Param("comment_id"))
	if err != nil {
		return response.BadRequest("comment_id 参数错误")
	}

	likes, err := h.CommentLikeService.ListByComment(c.Request.Context(), commentID)
	if err != nil {
		return err
	}
	response.Success(c, likes)
	return nil
}

func (h *Like) CommentLikeCount(c *gin.Context) error {
	commentID, err := parseID(c.Param("comment_id"))
	if err != nil {
		return response.BadRequest("comment_id 参数错误")
	}

	count, err := h.CommentLikeService.LikeCount(c.Request.Context(), commentID)
	if err != nil {
		return err
	}
	response.Success(c, types.LikeCountResponse{Count: count})
	return nil
}
