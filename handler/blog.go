package handler

import (
	"Plume/config"
	"Plume/middleware"
	"Plume/pkg/context"
	"Plume/pkg/response"
	"Plume/service"
	"Plume/types"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type Blog struct {
	Config      *config.Config
	BlogService service.IBlogService
}

func (h *Blog) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	g := r.Group("/v1/blogs")
	g.GET("", context.Wrap(h.ListBlogs))
	g.GET("/search", context.Wrap(h.SearchByTags))
	g.GET("/user/:user_id", context.Wrap(h.ListByUser))
	g.GET("/:blog_id", context.Wrap(h.GetBlog))
	g.GET("/:blog_id/tags", context.Wrap(h.GetBlogTags))
	g.POST("", authorize, context.Wrap(h.CreateBlog))
	g.PUT("/:blog_id", authorize, context.Wrap(h.UpdateBlog))
	g.DELETE("/:blog_id", authorize, context.Wrap(h.DeleteBlog))
}

// CreateBlog 发布博客，标签自动生成
func (h *Blog) CreateBlog(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未认证")
	}

	var req types.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	blog, err := h.BlogService.CreateBlog(c.Request.Context(), userID, req.Content)
	if err != nil {
		return err
	}

	response.Success(c, blog)
	return nil
}

func (h *Blog) GetBlog(c *gin.Context) error {
	blogID, err := parseID(c.Param("blog_id"))
	if err != nil {
		return response.BadRequest("blog_id 参数错误")
	}

	blog, err := h.BlogService.GetBlog(c.Request.Context(), blogID)
	if err != nil {
		return err
	}

	response.Success(c, blog)
	return nil
}

func (h *Blog) ListBlogs(c *gin.Context) error {
	blogs, err := h.BlogService.ListBlogs(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, blogs)
	return nil
}

func (h *Blog) ListByUser(c *gin.Context) error {
	userID, err := parseID(c.Param("user_id"))
	if err != nil {
		return response.BadRequest("user_id 参数错误")
	}

	blogs, err := h.BlogService.ListBlogsByUser(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, blogs)
	return nil
}

// UpdateBlog 更新正文并重打标签
func (h *Blog) UpdateBlog(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未认证")
	}
	blogID, err := parseID(c.Param("blog_id"))
	if err != nil {
		return response.BadRequest("blog_id 参数错误")
	}

	var req types.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BadRequest("参数格式错误: " + err.Error())
	}

	blog, err := h.BlogService.UpdateBlog(c.Request.Context(), userID, blogID, req.Content)
	if err != nil {
		return err
	}

	response.Success(c, blog)
	return nil
}

func (h *Blog) DeleteBlog(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.Unauthorized("未认证")
	}
	blogID, err := parseID(c.Param("blog_id"))
	if err != nil {
		return response.BadRequest("blog_id 参数错误")
	}

	if err := h.BlogService.DeleteBlog(c.Request.Context(), userID, blogID); err != nil {
		return err
	}

	response.Success(c, nil)
	return nil
}

func (h *Blog) GetBlogTags(c *gin.Context) error {
	blogID, err := parseID(c.Param("blog_id"))
	if err != nil {
		return response.BadRequest("blog_id 参数错误")
	}

	tags, err := h.BlogService.TagsForBlog(c.Request.Context(), blogID)
	if err != nil {
		return err
	}
	response.Success(c, tags)
	return nil
}

// SearchByTags 标签搜索，?tags=a,b 或重复的 tags 参数都支持
func (h *Blog) SearchByTags(c *gin.Context) error {
	var names []string
	for _, v := range c.QueryArray("tags") {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}
	if len(names) == 0 {
		return response.BadRequest("tags 参数不能为空")
	}

	blogs, err := h.BlogService.SearchBlogsByTags(c.Request.Context(), names)
	if err != nil {
		return err
	}
	response.Success(c, blogs)
	return nil
}

func parseID(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}
